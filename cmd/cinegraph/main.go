// SPDX-License-Identifier: MIT
// Command cinegraph builds a movie-similarity graph from a MovieLens export
// and answers statistics, neighborhood and shortest-path queries on it.
//
// Usage:
//
//	cinegraph [flags] [stats | node <movieId> | path <fromId> <toId> | interactive]
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/cinegraph/internal/app"
	"github.com/katalvlaran/cinegraph/internal/config"
	"github.com/katalvlaran/cinegraph/internal/logging"
)

// errUsage marks command-line mistakes.
var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("cinegraph", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	config.RegisterFlags(fs)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: cinegraph [flags] [stats | node <movieId> | path <fromId> <toId> | interactive]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return err
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger, err := logging.New(stderr, level, cfg.LogFormat)
	if err != nil {
		return err
	}

	cmd := fs.Args()
	if len(cmd) == 0 {
		cmd = []string{"interactive"}
	}
	ids, err := commandArgs(cmd)
	if err != nil {
		fs.Usage()
		return err
	}

	a, err := app.New(cfg, logger)
	if err != nil {
		return err
	}

	switch cmd[0] {
	case "stats":
		return a.Stats(stdout)
	case "node":
		return a.Node(stdout, ids[0], cfg.Radius)
	case "path":
		return a.Path(stdout, ids[0], ids[1])
	default:
		fmt.Fprintln(stdout, "========================= Welcome to cinegraph =========================")
		fmt.Fprintf(stdout, "Ratings: %s\nMovies:  %s\n", cfg.Ratings, cfg.Movies)
		return a.Interactive(ctx, stdin, stdout)
	}
}

// commandArgs checks the positional command and parses its movie IDs before
// any file is loaded.
func commandArgs(cmd []string) ([]int, error) {
	want := map[string]int{"stats": 0, "interactive": 0, "node": 1, "path": 2}
	n, ok := want[cmd[0]]
	if !ok {
		return nil, fmt.Errorf("%w: unknown command %q", errUsage, cmd[0])
	}
	if len(cmd)-1 != n {
		return nil, fmt.Errorf("%w: %s takes %d argument(s), got %d", errUsage, cmd[0], n, len(cmd)-1)
	}

	ids := make([]int, n)
	for i := range ids {
		id, err := strconv.Atoi(cmd[i+1])
		if err != nil {
			return nil, fmt.Errorf("%w: movie id %q", errUsage, cmd[i+1])
		}
		ids[i] = id
	}

	return ids, nil
}
