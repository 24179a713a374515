package v1

import (
	"context"
	"errors"
	"log/slog"

	"github.com/vmunix/reelshelf/internal/catalog"
	"github.com/vmunix/reelshelf/internal/events"
)

//go:generate mockgen -destination=mocks/mock_catalog.go -package=mocks . Catalog

// Catalog is the session state the API reads and mutates.
type Catalog interface {
	ID() string
	Query() string
	View() catalog.View
	TypeFilter() catalog.MediaType
	SetSearchQuery(ctx context.Context, text string)
	SetView(ctx context.Context, v catalog.View) error
	SetTypeFilter(ctx context.Context, t catalog.MediaType) error
	ToggleWatched(ctx context.Context, id int64) error
	Entries(ctx context.Context) ([]*catalog.Entry, error)
	Entry(ctx context.Context, id int64) (*catalog.Entry, error)
	Search(ctx context.Context) (catalog.SearchResult, error)
	ViewProjection(ctx context.Context) (catalog.Projection, error)
	AddEntry(ctx context.Context, n catalog.NewEntry) (*catalog.AddResult, error)
	Count(ctx context.Context) (int, error)
}

// ServerDeps contains all dependencies for the API server.
// Required dependencies must be non-nil; optional dependencies may be nil.
type ServerDeps struct {
	// Required
	Catalog Catalog

	// Optional
	EventLog *events.EventLog
	Logger   *slog.Logger
}

// Validate checks that all required dependencies are provided.
func (d ServerDeps) Validate() error {
	if d.Catalog == nil {
		return errors.New("catalog is required")
	}
	return nil
}
