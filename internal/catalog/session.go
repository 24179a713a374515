package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/vmunix/reelshelf/internal/events"
)

// Publisher receives change notifications from a Session.
type Publisher interface {
	Publish(ctx context.Context, e events.Event) error
}

// Session owns the catalog entries of one browsing session together with
// the current search query and view. Presentation reads its projections
// and forwards user intents back through its setters.
//
// Operations run one at a time; the mutex only guards against the HTTP
// server dispatching requests on several goroutines.
type Session struct {
	mu     sync.Mutex
	id     string
	store  *Store
	bus    Publisher
	logger *slog.Logger

	query      string
	view       View
	typeFilter MediaType // "" shows every type
}

// NewSession creates a session over store, starting on the home view with
// an empty query. bus may be nil.
func NewSession(store *Store, bus Publisher, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("session id: %w", err)
	}
	return &Session{
		id:     id.String(),
		store:  store,
		bus:    bus,
		logger: logger.With("session", id.String()),
		view:   ViewHome,
	}, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Query returns the current search query.
func (s *Session) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// View returns the current view.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// TypeFilter returns the catalog type tab; "" means all types.
func (s *Session) TypeFilter() MediaType {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.typeFilter
}

func (s *Session) publish(ctx context.Context, e events.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, e); err != nil {
		s.logger.Warn("publish failed", "type", e.EventType(), "error", err)
	}
}

// ToggleWatched flips the watched flag of the entry with the given ID.
// An unknown ID is a no-op.
func (s *Session) ToggleWatched(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.store.Begin()
	if err != nil {
		return err
	}
	changed, err := tx.ToggleWatched(id)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	if !changed {
		_ = tx.Rollback()
		s.logger.Debug("toggle ignored, no such entry", "entry_id", id)
		return nil
	}
	e, err := tx.GetEntry(id)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit toggle: %w", err)
	}

	s.logger.Info("watched toggled", "entry_id", id, "watched", e.Watched)
	s.publish(ctx, &events.WatchedToggled{
		BaseEvent: events.NewBaseEvent(events.EventWatchedToggled, events.EntityEntry, id),
		EntryID:   id,
		Watched:   e.Watched,
	})
	return nil
}

// SetSearchQuery replaces the search query. Any string is accepted; the
// empty string matches every entry.
func (s *Session) SetSearchQuery(ctx context.Context, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.query
	s.query = text
	if old == text {
		return
	}
	s.publish(ctx, &events.QueryChanged{
		BaseEvent: events.NewBaseEvent(events.EventQueryChanged, events.EntitySession, 0),
		SessionID: s.id,
		OldQuery:  old,
		NewQuery:  text,
	})
}

// SetView switches the active view. It leaves the query and entries alone.
func (s *Session) SetView(ctx context.Context, v View) error {
	if !v.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidView, v)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.view
	s.view = v
	if old == v {
		return nil
	}
	s.publish(ctx, &events.ViewChanged{
		BaseEvent: events.NewBaseEvent(events.EventViewChanged, events.EntitySession, 0),
		SessionID: s.id,
		OldView:   string(old),
		NewView:   string(v),
	})
	return nil
}

// SetTypeFilter narrows the catalog view to one media type. The empty type
// selects all types. Other views, the query and the entries are untouched.
func (s *Session) SetTypeFilter(ctx context.Context, t MediaType) error {
	if t != "" && !t.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidMediaType, t)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.typeFilter
	s.typeFilter = t
	if old == t {
		return nil
	}
	s.publish(ctx, &events.TypeFilterChanged{
		BaseEvent: events.NewBaseEvent(events.EventTypeChanged, events.EntitySession, 0),
		SessionID: s.id,
		OldType:   string(old),
		NewType:   string(t),
	})
	return nil
}

// Entries returns every entry in insertion order.
func (s *Session) Entries(_ context.Context) ([]*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.ListEntries(EntryFilter{})
}

// Entry returns one entry. Returns ErrNotFound if it does not exist.
func (s *Session) Entry(_ context.Context, id int64) (*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.GetEntry(id)
}

// FilteredByQuery returns the entries whose title contains the current
// query, ignoring case, in insertion order.
func (s *Session) FilteredByQuery(_ context.Context) ([]*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filteredByQuery()
}

func (s *Session) filteredByQuery() ([]*Entry, error) {
	all, err := s.store.ListEntries(EntryFilter{})
	if err != nil {
		return nil, err
	}
	return FilterByQuery(all, s.query), nil
}

// Search returns FilteredByQuery together with the query it ran under.
func (s *Session) Search(_ context.Context) (SearchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.filteredByQuery()
	if err != nil {
		return SearchResult{}, err
	}
	return SearchResult{Query: s.query, Entries: entries}, nil
}

// ViewProjection derives the entries shown by the current view:
//
//	home       every entry, query ignored
//	catalog    entries of the selected type matching the query
//	mine       entries owned by the current user
//	favorites  watched entries
func (s *Session) ViewProjection(_ context.Context) (Projection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := Projection{View: s.view, Query: s.query, Type: s.typeFilter}
	var err error
	switch s.view {
	case ViewCatalog:
		var f EntryFilter
		if s.typeFilter != "" {
			t := s.typeFilter
			f.Type = &t
		}
		var all []*Entry
		if all, err = s.store.ListEntries(f); err == nil {
			p.Entries = FilterByQuery(all, s.query)
		}
	case ViewMine:
		owned := true
		p.Entries, err = s.store.ListEntries(EntryFilter{Owned: &owned})
	case ViewFavorites:
		watched := true
		p.Entries, err = s.store.ListEntries(EntryFilter{Watched: &watched})
	default:
		p.Entries, err = s.store.ListEntries(EntryFilter{})
	}
	if err != nil {
		return Projection{}, fmt.Errorf("project %s: %w", s.view, err)
	}
	return p, nil
}

// AddResult is the outcome of adding an entry.
type AddResult struct {
	Entry   *Entry
	Similar []string // existing titles that look like duplicates
}

// AddEntry validates and stores a new entry with a fresh ID and Watched
// false. Similar existing titles are reported but do not block the add.
func (s *Session) AddEntry(ctx context.Context, n NewEntry) (*AddResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.store.ListEntries(EntryFilter{})
	if err != nil {
		return nil, err
	}

	e, err := s.store.AddEntry(&n)
	if err != nil {
		return nil, err
	}

	similar := SimilarTitles(e.Title, existing)
	if len(similar) > 0 {
		s.logger.Warn("added entry resembles existing titles", "entry_id", e.ID, "title", e.Title, "similar", similar)
	} else {
		s.logger.Info("entry added", "entry_id", e.ID, "title", e.Title, "type", e.Type)
	}

	s.publish(ctx, &events.EntryAdded{
		BaseEvent: events.NewBaseEvent(events.EventEntryAdded, events.EntityEntry, e.ID),
		EntryID:   e.ID,
		Title:     e.Title,
		MediaType: string(e.Type),
		Similar:   similar,
	})
	return &AddResult{Entry: e, Similar: similar}, nil
}

// Count returns the number of entries.
func (s *Session) Count(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.CountEntries()
}
