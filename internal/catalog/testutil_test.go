package catalog

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmunix/reelshelf/internal/events"
)

func setupTestStore(t *testing.T, strict bool) *Store {
	t.Helper()
	db, err := OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewStore(db, strict)
}

func ptr[T any](v T) *T { return &v }

// recorder collects published events.
type recorder struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recorder) Publish(_ context.Context, e events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recorder) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.EventType()
	}
	return out
}

func newSeededSession(t *testing.T) (*Session, *recorder) {
	t.Helper()
	store := setupTestStore(t, true)
	require.NoError(t, Seed(store, DefaultSeed()))
	rec := &recorder{}
	s, err := NewSession(store, rec, nil)
	require.NoError(t, err)
	return s, rec
}

func ids(entries []*Entry) []int64 {
	out := make([]int64, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}
