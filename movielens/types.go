// SPDX-License-Identifier: MIT
// File: types.go
// Role: MovieLens records, the in-memory Dataset and sentinel errors.
package movielens

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Sentinel errors.
var (
	// ErrMalformedRecord indicates a CSV row that cannot be parsed; the
	// wrapping error carries the line number.
	ErrMalformedRecord = errors.New("movielens: malformed record")

	// ErrDuplicateMovie indicates a movie ID listed twice.
	ErrDuplicateMovie = errors.New("movielens: duplicate movie")

	// ErrUnknownMovie indicates a rating for a movie absent from the dataset.
	ErrUnknownMovie = errors.New("movielens: unknown movie")

	// ErrUnknownAdjacency indicates an adjacency policy name that does not parse.
	ErrUnknownAdjacency = errors.New("movielens: unknown adjacency policy")

	// ErrNilDataset indicates a nil *Dataset.
	ErrNilDataset = errors.New("movielens: dataset is nil")
)

// Movie is one row of movies.csv plus every rating it received.
type Movie struct {
	ID      int
	Title   string // as listed, year suffix included
	Year    int    // 0 when the title carries no "(YYYY)"
	Genres  []string
	Ratings map[int]float64 // user ID → rating
}

// String renders the movie for node listings.
func (m *Movie) String() string {
	genres := "none"
	if len(m.Genres) > 0 {
		genres = strings.Join(m.Genres, ", ")
	}

	return fmt.Sprintf("[%d] %s | genres: %s | ratings: %d", m.ID, m.Title, genres, len(m.Ratings))
}

// Rating is one row of ratings.csv.
type Rating struct {
	UserID    int
	MovieID   int
	Value     float64
	Timestamp int64
}

// Dataset holds movies keyed by ID with their ratings attached.
type Dataset struct {
	movies map[int]*Movie

	// SkippedRatings counts ratings dropped because their movie is unknown.
	SkippedRatings int
}

// NewDataset returns an empty dataset.
func NewDataset() *Dataset {
	return &Dataset{movies: make(map[int]*Movie)}
}

// AddMovie stores m. A nil Ratings map is allocated.
func (ds *Dataset) AddMovie(m Movie) error {
	if _, ok := ds.movies[m.ID]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateMovie, m.ID)
	}
	if m.Ratings == nil {
		m.Ratings = make(map[int]float64)
	}
	ds.movies[m.ID] = &m

	return nil
}

// AddRating attaches r to its movie. A user rating the same movie twice
// keeps the later value.
func (ds *Dataset) AddRating(r Rating) error {
	m, ok := ds.movies[r.MovieID]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownMovie, r.MovieID)
	}
	m.Ratings[r.UserID] = r.Value

	return nil
}

// Movie returns the movie with the given ID.
func (ds *Dataset) Movie(id int) (*Movie, bool) {
	m, ok := ds.movies[id]
	return m, ok
}

// MovieIDs returns every movie ID in ascending order.
func (ds *Dataset) MovieIDs() []int {
	ids := make([]int, 0, len(ds.movies))
	for id := range ds.movies {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// Len returns the number of movies.
func (ds *Dataset) Len() int { return len(ds.movies) }

// RatingCount returns the number of stored ratings.
func (ds *Dataset) RatingCount() int {
	n := 0
	for _, m := range ds.movies {
		n += len(m.Ratings)
	}

	return n
}
