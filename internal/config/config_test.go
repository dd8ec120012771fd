// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/cinegraph/internal/config"
)

type LoadSuite struct {
	suite.Suite
	dir string
}

func TestLoadSuite(t *testing.T) { suite.Run(t, new(LoadSuite)) }

func (s *LoadSuite) SetupTest() {
	s.dir = s.T().TempDir()
	// equivalent of testing.T.Chdir, which needs Go 1.24.
	wd, err := os.Getwd()
	s.Require().NoError(err)
	s.Require().NoError(os.Chdir(s.dir))
	s.T().Cleanup(func() { _ = os.Chdir(wd) })
}

func (s *LoadSuite) flags(args ...string) *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	s.Require().NoError(fs.Parse(args))

	return fs
}

func (s *LoadSuite) writeFile(name, body string) string {
	p := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(p, []byte(body), 0o600))

	return p
}

func (s *LoadSuite) TestDefaults() {
	cfg, err := config.Load(s.flags())
	s.Require().NoError(err)

	s.Equal("ratings.csv", cfg.Ratings)
	s.Equal("same-rating", cfg.Adjacency)
	s.Equal(12, cfg.Threshold)
	s.Equal(5000, cfg.MaxAPSPVertices)
	s.Equal(1, cfg.Radius)
	s.Equal("info", cfg.LogLevel)
	s.Equal("text", cfg.LogFormat)
	s.NoError(cfg.Validate())
}

func (s *LoadSuite) TestNilFlagSet() {
	cfg, err := config.Load(nil)
	s.Require().NoError(err)
	s.Equal(12, cfg.Threshold)
}

func (s *LoadSuite) TestDefaultFilePickedUp() {
	s.writeFile(config.DefaultFile, "threshold = 20\nadjacency = \"shared-raters\"\n")

	cfg, err := config.Load(s.flags())
	s.Require().NoError(err)
	s.Equal(20, cfg.Threshold)
	s.Equal("shared-raters", cfg.Adjacency)
}

func (s *LoadSuite) TestPrecedence() {
	p := s.writeFile("custom.toml", "threshold = 20\nradius = 2\nlog-level = \"warn\"\n")
	s.T().Setenv("CINEGRAPH_THRESHOLD", "30")
	s.T().Setenv("CINEGRAPH_LOG_LEVEL", "debug")

	cfg, err := config.Load(s.flags("--config", p, "--threshold", "40"))
	s.Require().NoError(err)

	s.Equal(40, cfg.Threshold, "flag beats env")
	s.Equal("debug", cfg.LogLevel, "env beats file")
	s.Equal(2, cfg.Radius, "file beats default")
	s.Equal(p, cfg.File)
}

func (s *LoadSuite) TestUnsetFlagDoesNotMaskEnv() {
	s.T().Setenv("CINEGRAPH_MAX_APSP_VERTICES", "0")

	cfg, err := config.Load(s.flags("--radius", "3"))
	s.Require().NoError(err)
	s.Equal(0, cfg.MaxAPSPVertices)
	s.Equal(3, cfg.Radius)
}

func (s *LoadSuite) TestMissingExplicitFile() {
	_, err := config.Load(s.flags("--config", filepath.Join(s.dir, "nope.toml")))
	s.Require().ErrorIs(err, os.ErrNotExist)
}

func (s *LoadSuite) TestBrokenFile() {
	p := s.writeFile("bad.toml", "threshold = = 3\n")
	_, err := config.Load(s.flags("--config", p))
	s.Require().Error(err)
}

func TestValidate(t *testing.T) {
	base := func() config.Config {
		return config.Config{
			Ratings: "r.csv", Movies: "m.csv",
			Adjacency: "2", Threshold: 1, MaxAPSPVertices: 0, Radius: 1,
			LogLevel: "info", LogFormat: "json",
		}
	}
	ok := base()
	require.NoError(t, ok.Validate())

	cases := map[string]func(*config.Config){
		"adjacency":  func(c *config.Config) { c.Adjacency = "cosine" },
		"threshold":  func(c *config.Config) { c.Threshold = 0 },
		"max apsp":   func(c *config.Config) { c.MaxAPSPVertices = -1 },
		"radius":     func(c *config.Config) { c.Radius = 0 },
		"log level":  func(c *config.Config) { c.LogLevel = "trace" },
		"log format": func(c *config.Config) { c.LogFormat = "xml" },
		"paths":      func(c *config.Config) { c.Movies = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := base()
			mutate(&c)
			assert.ErrorIs(t, c.Validate(), config.ErrInvalid)
		})
	}
}
