package events

// Entity types
const (
	EntityEntry   = "entry"
	EntitySession = "session"
)

// Event type constants
const (
	EventEntryAdded     = "entry.added"
	EventWatchedToggled = "entry.watched.toggled"
	EventQueryChanged   = "session.query.changed"
	EventViewChanged    = "session.view.changed"
	EventTypeChanged    = "session.type.changed"
)

// EntryAdded is emitted when an entry is added through the upload form or API.
type EntryAdded struct {
	BaseEvent
	EntryID   int64    `json:"entry_id"`
	Title     string   `json:"title"`
	MediaType string   `json:"media_type"`
	Similar   []string `json:"similar,omitempty"` // titles that look like duplicates
}

// WatchedToggled is emitted when an entry's watched flag flips.
type WatchedToggled struct {
	BaseEvent
	EntryID int64 `json:"entry_id"`
	Watched bool  `json:"watched"`
}

// QueryChanged is emitted when the session's search query is replaced.
// Session events use entity ID 0; the session is identified by SessionID.
type QueryChanged struct {
	BaseEvent
	SessionID string `json:"session_id"`
	OldQuery  string `json:"old_query"`
	NewQuery  string `json:"new_query"`
}

// ViewChanged is emitted when the session switches views.
type ViewChanged struct {
	BaseEvent
	SessionID string `json:"session_id"`
	OldView   string `json:"old_view"`
	NewView   string `json:"new_view"`
}

// TypeFilterChanged is emitted when the catalog type tab changes. An empty
// type means all types.
type TypeFilterChanged struct {
	BaseEvent
	SessionID string `json:"session_id"`
	OldType   string `json:"old_type"`
	NewType   string `json:"new_type"`
}
