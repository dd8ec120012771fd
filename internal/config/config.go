// SPDX-License-Identifier: MIT
// Package config layers cinegraph settings from defaults, an optional TOML
// file, CINEGRAPH_* environment variables and command-line flags.
// Priority: flags > env > file > defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/cinegraph/internal/logging"
	"github.com/katalvlaran/cinegraph/matrix"
	"github.com/katalvlaran/cinegraph/movielens"
)

// DefaultFile is read when present and no other file is named.
const DefaultFile = "cinegraph.toml"

const envPrefix = "CINEGRAPH_"

// ErrInvalid wraps every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds everything the CLI needs.
type Config struct {
	Ratings         string `koanf:"ratings"`
	Movies          string `koanf:"movies"`
	Adjacency       string `koanf:"adjacency"`
	Threshold       int    `koanf:"threshold"`
	MaxAPSPVertices int    `koanf:"max-apsp-vertices"`
	Radius          int    `koanf:"radius"`
	LogLevel        string `koanf:"log-level"`
	LogFormat       string `koanf:"log-format"`
	File            string `koanf:"config"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"ratings":           "ratings.csv",
		"movies":            "movies.csv",
		"adjacency":         movielens.SameRating.String(),
		"threshold":         movielens.DefaultThreshold,
		"max-apsp-vertices": matrix.DefaultMaxVertices,
		"radius":            1,
		"log-level":         "info",
		"log-format":        logging.FormatText,
		"config":            "",
	}
}

// RegisterFlags declares the flags Load understands on f. Flag defaults are
// only help text; unset flags never override lower layers.
func RegisterFlags(f *pflag.FlagSet) {
	d := defaults()
	f.String("ratings", d["ratings"].(string), "path to ratings.csv")
	f.String("movies", d["movies"].(string), "path to movies.csv")
	f.String("adjacency", d["adjacency"].(string), "edge policy: same-rating (1) or shared-raters (2)")
	f.Int("threshold", d["threshold"].(int), "minimum supporting users per edge")
	f.Int("max-apsp-vertices", d["max-apsp-vertices"].(int), "refuse all-pairs statistics above this many vertices (0 = no limit)")
	f.Int("radius", d["radius"].(int), "hop radius for node listings")
	f.String("log-level", d["log-level"].(string), "debug, info, warn or error")
	f.String("log-format", d["log-format"].(string), "text or json")
	f.String("config", "", "TOML config file (default "+DefaultFile+" when present)")
}

// Load builds a Config from every layer. f may be nil.
func Load(f *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(mapProvider(defaults()), nil); err != nil {
		return nil, fmt.Errorf("config: defaults: %w", err)
	}

	// 2. File
	path, explicit := configPath(f)
	if _, err := os.Stat(path); err == nil {
		if err = k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config: %w", err)
	}

	// 3. Environment, e.g. CINEGRAPH_LOG_LEVEL=debug
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config: env: %w", err)
	}

	// 4. Flags
	if f != nil {
		if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
			return nil, fmt.Errorf("config: flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	return &cfg, nil
}

// configPath picks the file named by --config, then CINEGRAPH_CONFIG, then
// DefaultFile. explicit is false only for the fallback.
func configPath(f *pflag.FlagSet) (path string, explicit bool) {
	if f != nil && f.Changed("config") {
		if p, err := f.GetString("config"); err == nil && p != "" {
			return p, true
		}
	}
	if p := os.Getenv(envPrefix + "CONFIG"); p != "" {
		return p, true
	}

	return DefaultFile, false
}

func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", "-")
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if _, err := movielens.ParseAdjacency(c.Adjacency); err != nil {
		return fmt.Errorf("%w: adjacency: %w", ErrInvalid, err)
	}
	if c.Threshold < 1 {
		return fmt.Errorf("%w: threshold %d must be >= 1", ErrInvalid, c.Threshold)
	}
	if c.MaxAPSPVertices < 0 {
		return fmt.Errorf("%w: max-apsp-vertices %d must be >= 0", ErrInvalid, c.MaxAPSPVertices)
	}
	if c.Radius < 1 {
		return fmt.Errorf("%w: radius %d must be >= 1", ErrInvalid, c.Radius)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log-level: %w", ErrInvalid, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("%w: log-format %q", ErrInvalid, c.LogFormat)
	}
	if c.Ratings == "" || c.Movies == "" {
		return fmt.Errorf("%w: ratings and movies paths are required", ErrInvalid)
	}

	return nil
}

// mapProvider serves a static map as a koanf provider.
type mapProvider map[string]interface{}

func (p mapProvider) Read() (map[string]interface{}, error) { return p, nil }

func (p mapProvider) ReadBytes() ([]byte, error) {
	return nil, errors.New("config: map provider does not support ReadBytes")
}
