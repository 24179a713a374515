// Package catalog holds the video catalog: entries, the session's search
// query and active view, and the projections derived from them.
package catalog

import (
	"fmt"
	"time"
)

// MediaType distinguishes movies, series and anime.
type MediaType string

const (
	MediaMovie  MediaType = "movie"
	MediaSeries MediaType = "series"
	MediaAnime  MediaType = "anime"
)

// Valid reports whether t is one of the known media types.
func (t MediaType) Valid() bool {
	switch t {
	case MediaMovie, MediaSeries, MediaAnime:
		return true
	}
	return false
}

// ParseMediaType converts a string to a MediaType.
func ParseMediaType(s string) (MediaType, error) {
	t := MediaType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMediaType, s)
	}
	return t, nil
}

// ParseTypeFilter converts a catalog type tab to a MediaType. The empty
// string and "all" select every type and return "".
func ParseTypeFilter(s string) (MediaType, error) {
	if s == "" || s == "all" {
		return "", nil
	}
	return ParseMediaType(s)
}

// View selects which subset of entries the session shows.
type View string

const (
	ViewHome      View = "home"
	ViewCatalog   View = "catalog"
	ViewMine      View = "mine"
	ViewFavorites View = "favorites"
)

// Views lists all views in tab order.
var Views = []View{ViewHome, ViewCatalog, ViewMine, ViewFavorites}

// Valid reports whether v is one of the known views.
func (v View) Valid() bool {
	switch v {
	case ViewHome, ViewCatalog, ViewMine, ViewFavorites:
		return true
	}
	return false
}

// ParseView converts a string to a View.
func ParseView(s string) (View, error) {
	v := View(s)
	if !v.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidView, s)
	}
	return v, nil
}

// Entry is a single video in the catalog.
type Entry struct {
	ID                 int64
	Title              string
	CoverURL           string
	Type               MediaType
	Year               int
	Rating             float64
	EpisodeCount       *int // nil for movies
	Description        string
	Watched            bool
	OwnedByCurrentUser bool
	AddedAt            time.Time
}

// NewEntry carries the user-supplied fields of an entry being added.
// ID, Watched and AddedAt are always assigned by the store.
type NewEntry struct {
	Title              string
	CoverURL           string
	Type               MediaType
	Year               int
	Rating             float64
	EpisodeCount       *int
	Description        string
	OwnedByCurrentUser bool
}

// Projection is the ordered result of deriving a view. Query and Type are
// the session state the entries were derived under; Type is "" for all.
type Projection struct {
	View    View
	Query   string
	Type    MediaType
	Entries []*Entry
}

// Empty reports whether the projection has no entries. Renderers show an
// empty-state message instead of an empty grid when this is true.
func (p Projection) Empty() bool {
	return len(p.Entries) == 0
}

// SearchResult is the query-filtered collection together with the query
// that produced it.
type SearchResult struct {
	Query   string
	Entries []*Entry
}
