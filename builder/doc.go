// Package builder assembles deterministic core.Graph fixtures from small
// topology constructors.
//
// Every constructor inserts both arcs of each edge and numbers its vertices
// as a fresh block after the graph's current maximum ID, so
//
//	g, err := builder.BuildGraph(nil, nil, builder.Path(4), builder.Isolated(1))
//
// yields the path 1-2-3-4 plus the isolated vertex 5.
//
// Constructors: Path, Cycle, Complete, Star, Wheel, CompleteBipartite,
// Isolated, RandomSparse.
// Options: WithSeed, WithRand (for RandomSparse).
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed.
package builder
