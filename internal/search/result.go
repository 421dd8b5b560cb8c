package search

import (
	"fmt"
	"math"

	"github.com/drew-myers/moviematch/internal/catalog"
)

type Result struct {
	Rank  int           `json:"rank"`
	Index int           `json:"index"`
	Movie catalog.Movie `json:"movie"`
	Score float64       `json:"score"`
}

// Percent renders the score as a whole percentage, e.g. "87%".
func (r Result) Percent() string {
	return fmt.Sprintf("%.0f%%", r.Score*100)
}

// Progress is the score clamped to [0, 1] for progress bars.
func (r Result) Progress() float64 {
	return math.Max(0, math.Min(1, r.Score))
}

// Heading is the one-line summary shown above each plot.
func (r Result) Heading() string {
	return fmt.Sprintf("%s (%d) - Match: %s", r.Movie.Title, r.Movie.ReleaseYear, r.Percent())
}
