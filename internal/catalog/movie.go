package catalog

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	ColumnTitle       = "Title"
	ColumnReleaseYear = "Release Year"
	ColumnPlot        = "Plot"
)

type Movie struct {
	Title       string `json:"title"`
	ReleaseYear int    `json:"release_year"`
	Plot        string `json:"plot"`
}

// LoadMovies reads the cleaned movie table. The header must name the Title,
// Release Year and Plot columns; other columns are ignored.
func LoadMovies(path string) ([]Movie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	movies, err := ReadMovies(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return movies, nil
}

func ReadMovies(r io.Reader) ([]Movie, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("empty file")
	}
	if err != nil {
		return nil, err
	}

	cols, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var movies []Movie
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		year, err := parseYear(rec[cols.year])
		if err != nil {
			return nil, &csv.ParseError{StartLine: line, Line: line, Column: cols.year + 1, Err: err}
		}

		movies = append(movies, Movie{
			Title:       rec[cols.title],
			ReleaseYear: year,
			Plot:        rec[cols.plot],
		})
	}

	return movies, nil
}

type columns struct {
	title, year, plot int
}

func columnIndex(header []string) (columns, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}

	var cols columns
	for _, c := range []struct {
		name string
		dst  *int
	}{
		{ColumnTitle, &cols.title},
		{ColumnReleaseYear, &cols.year},
		{ColumnPlot, &cols.plot},
	} {
		i, ok := idx[c.name]
		if !ok {
			return columns{}, &missingColumnError{name: c.name}
		}
		*c.dst = i
	}

	return cols, nil
}

type missingColumnError struct {
	name string
}

func (e *missingColumnError) Error() string {
	return ErrMissingColumn.Error() + " " + strconv.Quote(e.name)
}

func (e *missingColumnError) Unwrap() error {
	return ErrMissingColumn
}

// parseYear accepts "1994" as well as the "1994.0" pandas writes for
// float-typed columns.
func parseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	if y, err := strconv.Atoi(s); err == nil {
		return y, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int(f)) {
		return 0, errors.New("release year " + strconv.Quote(s) + " is not an integer")
	}
	return int(f), nil
}
