package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmunix/reelshelf/internal/events"
)

func TestNewSession_Defaults(t *testing.T) {
	s, _ := newSeededSession(t)

	assert.NotEmpty(t, s.ID())
	assert.Equal(t, ViewHome, s.View())
	assert.Empty(t, s.Query())
}

func TestSession_FilteredByQuery_EmptyReturnsAll(t *testing.T) {
	s, _ := newSeededSession(t)
	ctx := context.Background()

	got, err := s.FilteredByQuery(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids(got))
}

func TestSession_FilteredByQuery_CaseInsensitive(t *testing.T) {
	s, _ := newSeededSession(t)
	ctx := context.Background()

	s.SetSearchQuery(ctx, "титан")
	got, err := s.FilteredByQuery(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Атака Титанов", got[0].Title)
}

func TestSession_ToggleWatched_Involution(t *testing.T) {
	s, _ := newSeededSession(t)
	ctx := context.Background()

	before, err := s.Entries(ctx)
	require.NoError(t, err)

	for _, e := range before {
		require.NoError(t, s.ToggleWatched(ctx, e.ID))
		flipped, err := s.Entry(ctx, e.ID)
		require.NoError(t, err)
		assert.Equal(t, !e.Watched, flipped.Watched)

		require.NoError(t, s.ToggleWatched(ctx, e.ID))
		restored, err := s.Entry(ctx, e.ID)
		require.NoError(t, err)
		assert.Equal(t, e.Watched, restored.Watched)
	}
}

func TestSession_ToggleWatched_OnlyTarget(t *testing.T) {
	s, _ := newSeededSession(t)
	ctx := context.Background()

	require.NoError(t, s.ToggleWatched(ctx, 1))

	all, err := s.Entries(ctx)
	require.NoError(t, err)
	assert.True(t, all[0].Watched)
	assert.False(t, all[1].Watched)
	assert.True(t, all[2].Watched)
}

func TestSession_ToggleWatched_UnknownIDIsNoop(t *testing.T) {
	s, rec := newSeededSession(t)
	ctx := context.Background()

	before, err := s.Entries(ctx)
	require.NoError(t, err)

	require.NoError(t, s.ToggleWatched(ctx, 404))

	after, err := s.Entries(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Empty(t, rec.types(), "no event for a missing entry")
}

func TestSession_ViewProjection_Favorites(t *testing.T) {
	store := setupTestStore(t, true)
	require.NoError(t, Seed(store, []SeedEntry{
		{NewEntry: NewEntry{Title: "One", Type: MediaMovie}},
		{NewEntry: NewEntry{Title: "Two", Type: MediaMovie}, Watched: true},
		{NewEntry: NewEntry{Title: "Three", Type: MediaMovie}, Watched: true},
	}))
	s, err := NewSession(store, nil, nil)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.SetView(ctx, ViewFavorites))
	p, err := s.ViewProjection(ctx)
	require.NoError(t, err)
	assert.Equal(t, ViewFavorites, p.View)
	assert.Equal(t, []int64{2, 3}, ids(p.Entries))
	assert.False(t, p.Empty())
}

func TestSession_ViewProjection_FavoritesEmpty(t *testing.T) {
	s, _ := newSeededSession(t)
	ctx := context.Background()

	require.NoError(t, s.ToggleWatched(ctx, 3))
	require.NoError(t, s.SetView(ctx, ViewFavorites))

	p, err := s.ViewProjection(ctx)
	require.NoError(t, err)
	assert.True(t, p.Empty())
}

func TestSession_ViewProjection_HomeIgnoresQuery(t *testing.T) {
	s, _ := newSeededSession(t)
	ctx := context.Background()

	s.SetSearchQuery(ctx, "ничего такого нет")
	p, err := s.ViewProjection(ctx)
	require.NoError(t, err)
	assert.Equal(t, ViewHome, p.View)
	assert.Equal(t, []int64{1, 2, 3}, ids(p.Entries))
}

func TestSession_ViewProjection_Mine(t *testing.T) {
	s, _ := newSeededSession(t)
	ctx := context.Background()

	require.NoError(t, s.SetView(ctx, ViewMine))
	p, err := s.ViewProjection(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids(p.Entries))

	res, err := s.AddEntry(ctx, NewEntry{Title: "Моё видео", Type: MediaMovie, OwnedByCurrentUser: true})
	require.NoError(t, err)

	p, err = s.ViewProjection(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, res.Entry.ID}, ids(p.Entries))
}

func TestSession_CatalogScenario(t *testing.T) {
	s, _ := newSeededSession(t)
	ctx := context.Background()

	s.SetSearchQuery(ctx, "Тёмные")
	require.NoError(t, s.SetView(ctx, ViewCatalog))

	p, err := s.ViewProjection(ctx)
	require.NoError(t, err)
	require.Len(t, p.Entries, 1)
	assert.Equal(t, int64(3), p.Entries[0].ID)
}

func TestSession_CatalogTypeFilter(t *testing.T) {
	s, rec := newSeededSession(t)
	ctx := context.Background()

	require.NoError(t, s.SetView(ctx, ViewCatalog))
	require.NoError(t, s.SetTypeFilter(ctx, MediaAnime))

	p, err := s.ViewProjection(ctx)
	require.NoError(t, err)
	assert.Equal(t, MediaAnime, p.Type)
	assert.Equal(t, []int64{2}, ids(p.Entries))

	// Type and query combine.
	s.SetSearchQuery(ctx, "Тёмные")
	p, err = s.ViewProjection(ctx)
	require.NoError(t, err)
	assert.True(t, p.Empty())
	assert.Equal(t, "Тёмные", p.Query)

	require.NoError(t, s.SetTypeFilter(ctx, MediaSeries))
	p, err = s.ViewProjection(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, ids(p.Entries))

	// Other views ignore the type tab.
	require.NoError(t, s.SetView(ctx, ViewHome))
	p, err = s.ViewProjection(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids(p.Entries))

	require.NoError(t, s.SetTypeFilter(ctx, ""))
	assert.Equal(t, MediaType(""), s.TypeFilter())

	var changes []*events.TypeFilterChanged
	for _, e := range rec.events {
		if c, ok := e.(*events.TypeFilterChanged); ok {
			changes = append(changes, c)
		}
	}
	require.Len(t, changes, 3)
	assert.Equal(t, "anime", changes[0].NewType)
	assert.Equal(t, "series", changes[2].OldType)
	assert.Equal(t, "", changes[2].NewType)
}

func TestSession_SetTypeFilter_Invalid(t *testing.T) {
	s, rec := newSeededSession(t)

	err := s.SetTypeFilter(context.Background(), MediaType("cartoon"))
	assert.ErrorIs(t, err, ErrInvalidMediaType)
	assert.Equal(t, MediaType(""), s.TypeFilter())
	assert.Empty(t, rec.types())
}

func TestSession_Search_ReturnsQuery(t *testing.T) {
	s, _ := newSeededSession(t)
	ctx := context.Background()

	s.SetSearchQuery(ctx, "воды")
	res, err := s.Search(ctx)
	require.NoError(t, err)
	assert.Equal(t, "воды", res.Query)
	assert.Equal(t, []int64{3}, ids(res.Entries))
}

func TestSession_StateIndependence(t *testing.T) {
	s, _ := newSeededSession(t)
	ctx := context.Background()

	s.SetSearchQuery(ctx, "титан")
	before, err := s.Entries(ctx)
	require.NoError(t, err)

	for _, v := range Views {
		require.NoError(t, s.SetView(ctx, v))
		assert.Equal(t, "титан", s.Query(), "SetView must not touch the query")
	}
	after, err := s.Entries(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after, "SetView must not touch entries")

	s.SetSearchQuery(ctx, "другое")
	assert.Equal(t, ViewFavorites, s.View(), "SetSearchQuery must not touch the view")

	require.NoError(t, s.ToggleWatched(ctx, 1))
	assert.Equal(t, ViewFavorites, s.View())
	assert.Equal(t, "другое", s.Query())
}

func TestSession_SetView_Invalid(t *testing.T) {
	s, rec := newSeededSession(t)

	err := s.SetView(context.Background(), View("main"))
	assert.ErrorIs(t, err, ErrInvalidView)
	assert.Equal(t, ViewHome, s.View())
	assert.Empty(t, rec.types())
}

func TestSession_PublishesChanges(t *testing.T) {
	s, rec := newSeededSession(t)
	ctx := context.Background()

	require.NoError(t, s.ToggleWatched(ctx, 2))
	s.SetSearchQuery(ctx, "a")
	s.SetSearchQuery(ctx, "a") // unchanged, no event
	require.NoError(t, s.SetView(ctx, ViewCatalog))
	require.NoError(t, s.SetView(ctx, ViewCatalog)) // unchanged, no event
	_, err := s.AddEntry(ctx, NewEntry{Title: "New", Type: MediaMovie})
	require.NoError(t, err)

	assert.Equal(t, []string{
		events.EventWatchedToggled,
		events.EventQueryChanged,
		events.EventViewChanged,
		events.EventEntryAdded,
	}, rec.types())

	toggled, ok := rec.events[0].(*events.WatchedToggled)
	require.True(t, ok)
	assert.Equal(t, int64(2), toggled.EntryID)
	assert.True(t, toggled.Watched)
}

func TestSession_AddEntry(t *testing.T) {
	s, rec := newSeededSession(t)
	ctx := context.Background()

	res, err := s.AddEntry(ctx, NewEntry{
		Title:        "  атака титанов ",
		Type:         MediaAnime,
		Year:         2013,
		Rating:       9.0,
		EpisodeCount: ptr(25),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(4), res.Entry.ID)
	assert.Equal(t, "атака титанов", res.Entry.Title, "title is trimmed")
	assert.False(t, res.Entry.Watched)
	assert.Equal(t, []string{"Атака Титанов"}, res.Similar)

	added, ok := rec.events[0].(*events.EntryAdded)
	require.True(t, ok)
	assert.Equal(t, []string{"Атака Титанов"}, added.Similar)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestSession_AddEntry_Invalid(t *testing.T) {
	s, rec := newSeededSession(t)

	_, err := s.AddEntry(context.Background(), NewEntry{Title: "Фильм", Type: MediaMovie, Rating: 12})
	assert.ErrorIs(t, err, ErrInvalidEntry)
	assert.Empty(t, rec.types())
}

func TestSession_WithBus(t *testing.T) {
	store := setupTestStore(t, true)
	require.NoError(t, Seed(store, DefaultSeed()))
	log := events.NewEventLog(store.db)
	bus := events.NewBus(log, nil)
	defer bus.Close()
	ch := bus.Subscribe(events.EventWatchedToggled, 1)

	s, err := NewSession(store, bus, nil)
	require.NoError(t, err)
	require.NoError(t, s.ToggleWatched(context.Background(), 1))

	e := <-ch
	assert.Equal(t, int64(1), e.EntityID())

	recorded, err := log.ForEntity(events.EntityEntry, 1)
	require.NoError(t, err)
	assert.Len(t, recorded, 1)
}
