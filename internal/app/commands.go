// SPDX-License-Identifier: MIT
package app

import (
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/cinegraph/bfs"
	"github.com/katalvlaran/cinegraph/dijkstra"
	"github.com/katalvlaran/cinegraph/matrix"
	"github.com/katalvlaran/cinegraph/pathstats"
)

// Stats prints vertex and edge counts, density, the maximum-degree movie,
// the diameter and the average shortest-path length.
func (a *App) Stats(w io.Writer) error {
	n := a.g.VertexCount()
	cost := matrix.EstimateCost(n)
	a.log.Debug("all-pairs estimate", "vertices", n, "cost", cost.String())

	start := time.Now()
	s, err := pathstats.Summarize(a.g, matrix.WithMaxVertices(a.cfg.MaxAPSPVertices))
	if err != nil {
		return fmt.Errorf("app: stats: %w", err)
	}
	a.log.Info("statistics computed", "took", time.Since(start).Round(time.Millisecond))

	maxMovie := a.movie(s.MaxDegreeVertex)
	from, to := a.movie(s.DiameterFrom), a.movie(s.DiameterTo)

	fmt.Fprintf(w, "Number of nodes: %d\n", s.Vertices)
	fmt.Fprintf(w, "Number of edges: %d\n", s.Edges)
	fmt.Fprintf(w, "Density of the graph: %.6f\n", s.Density)
	fmt.Fprintf(w, "Maximum degree: %d (node %d: %s)\n", s.MaxDegree, maxMovie.ID, maxMovie.Title)
	fmt.Fprintf(w, "Diameter: %d (from %d to %d)\n", s.Diameter, from.ID, to.ID)
	_, err = fmt.Fprintf(w, "Average length of the shortest paths: %.4f\n", s.AveragePath)

	return err
}

// Node prints the movie and the movies within radius hops of it. Radius 1
// lists direct neighbors; larger radii group movies by hop distance.
func (a *App) Node(w io.Writer, movieID, radius int) error {
	v, err := a.vertex(movieID)
	if err != nil {
		return err
	}
	if radius < 1 {
		radius = 1
	}

	res, err := bfs.BFS(a.g, v, bfs.WithMaxDepth(radius))
	if err != nil {
		return fmt.Errorf("app: node %d: %w", movieID, err)
	}
	levels := res.Levels()

	fmt.Fprintln(w, a.movie(v).String())
	if radius == 1 {
		fmt.Fprintln(w, "Neighbors:")
		if len(levels) > 1 {
			a.printTitles(w, levels[1])
		}
		return nil
	}
	for d := 1; d <= radius; d++ {
		fmt.Fprintf(w, "Within %d hop(s):\n", d)
		if d < len(levels) {
			a.printTitles(w, levels[d])
		}
	}

	return nil
}

func (a *App) printTitles(w io.Writer, vertices []int) {
	for _, u := range vertices {
		fmt.Fprintf(w, "\t%s\n", a.movie(u).Title)
	}
}

// Path prints a shortest path from one movie to another as
// "Title A ==> Title B" lines, start first.
//
// Errors: ErrUnknownMovie, dijkstra.ErrUnreachable.
func (a *App) Path(w io.Writer, fromMovie, toMovie int) error {
	src, err := a.vertex(fromMovie)
	if err != nil {
		return err
	}
	dst, err := a.vertex(toMovie)
	if err != nil {
		return err
	}

	res, err := dijkstra.Run(a.g, src)
	if err != nil {
		return fmt.Errorf("app: path: %w", err)
	}
	path, err := res.PathTo(dst)
	if err != nil {
		return fmt.Errorf("app: path %d→%d: %w", fromMovie, toMovie, err)
	}
	a.log.Debug("path found", "from", fromMovie, "to", toMovie, "hops", len(path)-1)

	if len(path) == 1 {
		_, err = fmt.Fprintln(w, a.movie(src).Title)
		return err
	}
	for i := 1; i < len(path); i++ {
		fmt.Fprintf(w, "%s ==> %s\n", a.movie(path[i-1]).Title, a.movie(path[i]).Title)
	}

	return nil
}
