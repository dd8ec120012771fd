// SPDX-License-Identifier: MIT
// Package: cinegraph/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p).
//
// Model:
//   - Erdős–Rényi-like: each unordered pair {i<j} is linked independently
//     with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng required when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Trials run i asc, j asc; fixed seed ⇒ identical graph.
//
// Complexity: O(n²) trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cinegraph/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a random graph over n
// vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return tooFew(methodRandomSparse, n, minRandomSparseVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		base, err := addBlock(g, methodRandomSparse, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !trial(cfg, p) {
					continue
				}
				if err = link(g, methodRandomSparse, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// trial draws one Bernoulli(p); p ∈ {0,1} needs no RNG.
func trial(cfg builderConfig, p float64) bool {
	switch {
	case p <= probMin:
		return false
	case p >= probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
