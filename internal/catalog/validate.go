package catalog

import (
	"fmt"
	"math"
	"strings"
)

// Rating bounds used when strict validation is enabled.
const (
	MinRating = 0.0
	MaxRating = 10.0
)

// ValidationError lists every problem found with an entry.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid entry: " + strings.Join(e.Problems, "; ")
}

// Is makes errors.Is(err, ErrInvalidEntry) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidEntry
}

// Validate checks a new entry. Title, type and a finite rating are always
// checked; strict additionally enforces the rating range and episode count
// conventions.
func Validate(n *NewEntry, strict bool) error {
	var problems []string

	if strings.TrimSpace(n.Title) == "" {
		problems = append(problems, "title: required")
	}
	if !n.Type.Valid() {
		problems = append(problems, fmt.Sprintf("type: must be one of movie, series, anime; got %q", n.Type))
	}
	finite := !math.IsNaN(n.Rating) && !math.IsInf(n.Rating, 0)
	if !finite {
		problems = append(problems, "rating: not a number")
	}

	if strict {
		if finite && (n.Rating < MinRating || n.Rating > MaxRating) {
			problems = append(problems, fmt.Sprintf("rating: must be between %.1f and %.1f, got %.1f", MinRating, MaxRating, n.Rating))
		}
		if n.EpisodeCount != nil {
			if *n.EpisodeCount <= 0 {
				problems = append(problems, fmt.Sprintf("episode_count: must be positive, got %d", *n.EpisodeCount))
			}
			if n.Type == MediaMovie {
				problems = append(problems, "episode_count: not allowed for movies")
			}
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
