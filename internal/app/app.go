// SPDX-License-Identifier: MIT
// Package app wires the MovieLens loader, the similarity graph and the
// shortest-path packages behind the cinegraph commands. Every command writes
// its report to an io.Writer; logging goes to the injected slog.Logger.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/cinegraph/core"
	"github.com/katalvlaran/cinegraph/internal/config"
	"github.com/katalvlaran/cinegraph/movielens"
)

// ErrUnknownMovie reports a movie ID that is not part of the loaded dataset.
var ErrUnknownMovie = errors.New("app: unknown movie")

// App holds the loaded dataset and the graph built from it.
type App struct {
	cfg *config.Config
	log *slog.Logger

	ds  *movielens.Dataset
	g   *core.Graph
	idx *movielens.Index
}

// New loads cfg.Movies and cfg.Ratings and builds the similarity graph.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	ds, err := movielens.LoadFiles(cfg.Ratings, cfg.Movies)
	if err != nil {
		return nil, fmt.Errorf("app: load: %w", err)
	}
	logger.Info("dataset loaded",
		"movies", ds.Len(),
		"ratings", ds.RatingCount(),
		"skipped", ds.SkippedRatings,
		"took", time.Since(start).Round(time.Millisecond))

	return FromDataset(ds, cfg, logger)
}

// FromDataset builds the similarity graph over an already loaded dataset.
func FromDataset(ds *movielens.Dataset, cfg *config.Config, logger *slog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	adj, err := movielens.ParseAdjacency(cfg.Adjacency)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	g, idx, err := movielens.BuildGraph(ds,
		movielens.WithAdjacency(adj),
		movielens.WithThreshold(cfg.Threshold))
	if err != nil {
		return nil, fmt.Errorf("app: build: %w", err)
	}
	logger.Info("graph built",
		"adjacency", adj.String(),
		"threshold", cfg.Threshold,
		"vertices", g.VertexCount(),
		"arcs", g.EdgeCount(),
		"took", time.Since(start).Round(time.Millisecond))

	return &App{cfg: cfg, log: logger, ds: ds, g: g, idx: idx}, nil
}

// Graph returns the similarity graph; vertices are Index-assigned.
func (a *App) Graph() *core.Graph { return a.g }

// Index returns the movie ID ↔ vertex mapping.
func (a *App) Index() *movielens.Index { return a.idx }

func (a *App) vertex(movieID int) (int, error) {
	v, ok := a.idx.Vertex(movieID)
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownMovie, movieID)
	}

	return v, nil
}

// movie returns the movie behind vertex v. Vertices always come from idx, so
// the lookups cannot miss.
func (a *App) movie(v int) *movielens.Movie {
	id, _ := a.idx.MovieID(v)
	m, _ := a.ds.Movie(id)

	return m
}
