package v1

import "time"

// entryResponse is the API representation of a catalog entry.
type entryResponse struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	CoverURL     string    `json:"cover_url"`
	Type         string    `json:"type"`
	Year         int       `json:"year"`
	Rating       float64   `json:"rating"`
	EpisodeCount *int      `json:"episode_count,omitempty"`
	Description  string    `json:"description,omitempty"`
	Watched      bool      `json:"watched"`
	Owned        bool      `json:"owned"`
	AddedAt      time.Time `json:"added_at"`
}

// listEntriesResponse is the response for entry listings.
type listEntriesResponse struct {
	Items []entryResponse `json:"items"`
	Total int             `json:"total"`
}

// searchResponse is the response for GET /search.
type searchResponse struct {
	Query string          `json:"query"`
	Type  string          `json:"type,omitempty"`
	Items []entryResponse `json:"items"`
	Total int             `json:"total"`
}

// viewResponse is the response for GET /view.
type viewResponse struct {
	View  string          `json:"view"`
	Query string          `json:"query"`
	Type  string          `json:"type,omitempty"`
	Items []entryResponse `json:"items"`
	Empty bool            `json:"empty"`
}

// addEntryRequest is the request body for POST /entries.
type addEntryRequest struct {
	Title        string  `json:"title"`
	CoverURL     string  `json:"cover_url"`
	Type         string  `json:"type"`
	Year         int     `json:"year"`
	Rating       float64 `json:"rating"`
	EpisodeCount *int    `json:"episode_count,omitempty"`
	Description  string  `json:"description"`
	Owned        bool    `json:"owned"`
}

// addEntryResponse is the response for POST /entries.
type addEntryResponse struct {
	Entry   entryResponse `json:"entry"`
	Similar []string      `json:"similar,omitempty"`
}

// sessionResponse is the response for GET /session.
type sessionResponse struct {
	ID    string `json:"id"`
	Query string `json:"query"`
	View  string `json:"view"`
	Type  string `json:"type"`
}

type setQueryRequest struct {
	Query string `json:"query"`
}

type setViewRequest struct {
	View string `json:"view"`
}

type setTypeRequest struct {
	Type string `json:"type"`
}

// statusResponse is the response for GET /status.
type statusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Session string `json:"session"`
	Entries int    `json:"entries"`
}

// EventResponse is the API representation of a recorded event.
type EventResponse struct {
	ID         int64  `json:"id"`
	EventType  string `json:"event_type"`
	EntityType string `json:"entity_type"`
	EntityID   int64  `json:"entity_id"`
	Payload    string `json:"payload"`
	OccurredAt string `json:"occurred_at"`
}

type listEventsResponse struct {
	Items  []EventResponse `json:"items"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}
