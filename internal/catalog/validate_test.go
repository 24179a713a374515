package catalog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		entry   NewEntry
		strict  bool
		wantErr string
	}{
		{"valid movie", NewEntry{Title: "Movie", Type: MediaMovie, Rating: 7.5}, true, ""},
		{"valid series", NewEntry{Title: "Show", Type: MediaSeries, Rating: 10, EpisodeCount: ptr(8)}, true, ""},
		{"missing title", NewEntry{Title: "  ", Type: MediaMovie}, false, "title: required"},
		{"unknown type", NewEntry{Title: "X", Type: "cartoon"}, false, "type: must be one of"},
		{"rating too high strict", NewEntry{Title: "X", Type: MediaMovie, Rating: 10.1}, true, "rating"},
		{"rating negative strict", NewEntry{Title: "X", Type: MediaMovie, Rating: -1}, true, "rating"},
		{"rating ignored permissive", NewEntry{Title: "X", Type: MediaMovie, Rating: 42}, false, ""},
		{"NaN rating strict", NewEntry{Title: "X", Type: MediaMovie, Rating: math.NaN()}, true, "rating: not a number"},
		{"NaN rating permissive", NewEntry{Title: "X", Type: MediaMovie, Rating: math.NaN()}, false, "rating: not a number"},
		{"infinite rating permissive", NewEntry{Title: "X", Type: MediaMovie, Rating: math.Inf(1)}, false, "rating: not a number"},
		{"negative infinite rating strict", NewEntry{Title: "X", Type: MediaMovie, Rating: math.Inf(-1)}, true, "rating: not a number"},
		{"zero episodes strict", NewEntry{Title: "X", Type: MediaAnime, EpisodeCount: ptr(0)}, true, "episode_count: must be positive"},
		{"movie with episodes strict", NewEntry{Title: "X", Type: MediaMovie, EpisodeCount: ptr(3)}, true, "not allowed for movies"},
		{"movie with episodes permissive", NewEntry{Title: "X", Type: MediaMovie, EpisodeCount: ptr(3)}, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.entry, tt.strict)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidEntry)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestParseView(t *testing.T) {
	for _, v := range Views {
		got, err := ParseView(string(v))
		assert.NoError(t, err)
		assert.Equal(t, v, got)
	}

	_, err := ParseView("main")
	assert.ErrorIs(t, err, ErrInvalidView)
}

func TestParseMediaType(t *testing.T) {
	got, err := ParseMediaType("anime")
	assert.NoError(t, err)
	assert.Equal(t, MediaAnime, got)

	_, err = ParseMediaType("Movie")
	assert.ErrorIs(t, err, ErrInvalidMediaType)
}

func TestParseTypeFilter(t *testing.T) {
	for _, in := range []string{"", "all"} {
		got, err := ParseTypeFilter(in)
		assert.NoError(t, err)
		assert.Equal(t, MediaType(""), got)
	}

	got, err := ParseTypeFilter("series")
	assert.NoError(t, err)
	assert.Equal(t, MediaSeries, got)

	_, err = ParseTypeFilter("cartoon")
	assert.ErrorIs(t, err, ErrInvalidMediaType)
}
