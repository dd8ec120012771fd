// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cinegraph/dijkstra"
)

const (
	moviesCSV = "movieId,title,genres\n1,Toy Story (1995),Animation\n2,Jumanji (1995),Fantasy\n3,Heat (1995),Crime\n4,Sabrina (1995),Comedy\n"
	// movies 1-2 and 2-3 share a rater; 4 stands alone.
	ratingsCSV = "userId,movieId,rating,timestamp\n1,1,4.0,1\n1,2,4.0,2\n2,2,3.0,3\n2,3,3.0,4\n"
)

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func fixtureFlags(t *testing.T) []string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	movies := filepath.Join(dir, "movies.csv")
	ratings := filepath.Join(dir, "ratings.csv")
	require.NoError(t, os.WriteFile(movies, []byte(moviesCSV), 0o600))
	require.NoError(t, os.WriteFile(ratings, []byte(ratingsCSV), 0o600))

	return []string{"--movies", movies, "--ratings", ratings, "--threshold", "1", "--log-level", "error"}
}

func TestRun_Commands(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"stats", []string{"stats"}, "Number of nodes: 4\nNumber of edges: 4\n"},
		{"node", []string{"node", "2"}, "Neighbors:\n\tToy Story (1995)\n\tHeat (1995)\n"},
		{"node radius", []string{"--radius", "2", "node", "1"}, "Within 2 hop(s):\n\tHeat (1995)\n"},
		{"path", []string{"--adjacency", "2", "path", "1", "3"}, "Toy Story (1995) ==> Jumanji (1995)\nJumanji (1995) ==> Heat (1995)\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			args := append(fixtureFlags(t), tc.args...)

			require.NoError(t, run(context.Background(), args, strings.NewReader(""), &stdout, &stderr))
			assert.Contains(t, stdout.String(), tc.want)
			assert.Empty(t, stderr.String())
		})
	}
}

func TestRun_InteractiveIsDefault(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), fixtureFlags(t), strings.NewReader("4\n"), &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Welcome to cinegraph")
	assert.Contains(t, stdout.String(), "Exiting... bye.")
}

func TestRun_Errors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	ctx := context.Background()
	none := strings.NewReader("")

	err := run(ctx, append(fixtureFlags(t), "path", "1", "4"), none, &stdout, &stderr)
	require.ErrorIs(t, err, dijkstra.ErrUnreachable)

	err = run(ctx, append(fixtureFlags(t), "node"), none, &stdout, &stderr)
	require.ErrorIs(t, err, errUsage)

	err = run(ctx, append(fixtureFlags(t), "node", "one"), none, &stdout, &stderr)
	require.ErrorIs(t, err, errUsage)

	err = run(ctx, append(fixtureFlags(t), "rank"), none, &stdout, &stderr)
	require.ErrorIs(t, err, errUsage)

	err = run(ctx, []string{"--threshold", "0", "stats"}, none, &stdout, &stderr)
	require.Error(t, err)

	err = run(ctx, []string{"--bogus"}, none, &stdout, &stderr)
	require.Error(t, err)
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"--help"}, strings.NewReader(""), &stdout, &stderr))
	assert.Contains(t, stderr.String(), "--max-apsp-vertices")
}
