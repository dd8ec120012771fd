// SPDX-License-Identifier: MIT
// File: loader.go
// Role: MovieLens CSV readers.
//
// Formats (header row required, skipped):
//
//	movies.csv:  movieId,title,genres      genres separated by '|'
//	ratings.csv: userId,movieId,rating,timestamp
//
// Titles containing commas arrive quoted; encoding/csv handles that.
package movielens

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

const noGenres = "(no genres listed)"

// yearSuffix captures a trailing "(1995)" and tolerates trailing spaces.
var yearSuffix = regexp.MustCompile(`\((\d{4})\)\s*$`)

// LoadMovies reads movies.csv into a new Dataset.
//
// Errors: ErrMalformedRecord (with line), ErrDuplicateMovie, read errors.
func LoadMovies(r io.Reader) (*Dataset, error) {
	cr := newReader(r, 3)
	ds := NewDataset()

	err := eachRecord(cr, func(rec []string, line int) error {
		id, err := strconv.Atoi(strings.TrimSpace(rec[0]))
		if err != nil {
			return malformed(line, "movieId %q", rec[0])
		}
		m := Movie{
			ID:     id,
			Title:  strings.TrimSpace(rec[1]),
			Genres: parseGenres(rec[2]),
		}
		m.Year = parseYear(m.Title)
		if err = ds.AddMovie(m); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return ds, nil
}

// LoadRatings reads ratings.csv into ds. Ratings for unknown movies are
// counted in ds.SkippedRatings and otherwise ignored.
//
// Errors: ErrNilDataset, ErrMalformedRecord (with line), read errors.
func LoadRatings(r io.Reader, ds *Dataset) error {
	if ds == nil {
		return ErrNilDataset
	}
	cr := newReader(r, 4)

	return eachRecord(cr, func(rec []string, line int) error {
		rt, err := parseRating(rec, line)
		if err != nil {
			return err
		}
		if err = ds.AddRating(rt); err != nil {
			if errors.Is(err, ErrUnknownMovie) {
				ds.SkippedRatings++
				return nil
			}
			return fmt.Errorf("line %d: %w", line, err)
		}

		return nil
	})
}

// LoadFiles opens both files and loads movies first, then ratings.
func LoadFiles(ratingsPath, moviesPath string) (*Dataset, error) {
	mf, err := os.Open(moviesPath)
	if err != nil {
		return nil, fmt.Errorf("movielens: %w", err)
	}
	defer mf.Close()

	ds, err := LoadMovies(mf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", moviesPath, err)
	}

	rf, err := os.Open(ratingsPath)
	if err != nil {
		return nil, fmt.Errorf("movielens: %w", err)
	}
	defer rf.Close()

	if err = LoadRatings(rf, ds); err != nil {
		return nil, fmt.Errorf("%s: %w", ratingsPath, err)
	}

	return ds, nil
}

func newReader(r io.Reader, fields int) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = fields
	cr.ReuseRecord = true

	return cr
}

// eachRecord skips the header and calls fn with every following record and
// its starting line number.
func eachRecord(cr *csv.Reader, fn func(rec []string, line int) error) error {
	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return csvError(err)
	}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return csvError(err)
		}
		line, _ := cr.FieldPos(0)
		if err = fn(rec, line); err != nil {
			return err
		}
	}
}

// csvError maps csv parse failures (wrong field count, bad quotes) onto
// ErrMalformedRecord and keeps everything else as is.
func csvError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return fmt.Errorf("%w: line %d: %v", ErrMalformedRecord, pe.StartLine, pe.Err)
	}

	return fmt.Errorf("movielens: %w", err)
}

func malformed(line int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformedRecord, line, fmt.Sprintf(format, args...))
}

func parseRating(rec []string, line int) (Rating, error) {
	var (
		rt  Rating
		err error
	)
	if rt.UserID, err = strconv.Atoi(strings.TrimSpace(rec[0])); err != nil {
		return rt, malformed(line, "userId %q", rec[0])
	}
	if rt.MovieID, err = strconv.Atoi(strings.TrimSpace(rec[1])); err != nil {
		return rt, malformed(line, "movieId %q", rec[1])
	}
	if rt.Value, err = strconv.ParseFloat(strings.TrimSpace(rec[2]), 64); err != nil {
		return rt, malformed(line, "rating %q", rec[2])
	}
	if rt.Timestamp, err = strconv.ParseInt(strings.TrimSpace(rec[3]), 10, 64); err != nil {
		return rt, malformed(line, "timestamp %q", rec[3])
	}

	return rt, nil
}

func parseGenres(field string) []string {
	field = strings.TrimSpace(field)
	if field == "" || field == noGenres {
		return nil
	}

	return strings.Split(field, "|")
}

func parseYear(title string) int {
	m := yearSuffix.FindStringSubmatch(title)
	if m == nil {
		return 0
	}
	y, _ := strconv.Atoi(m[1])

	return y
}
