package v1

import (
	"net/http"
	"time"

	"github.com/vmunix/reelshelf/internal/events"
)

func (s *Server) listEvents(w http.ResponseWriter, r *http.Request) {
	if sinceStr := r.URL.Query().Get("since"); sinceStr != "" {
		since, err := time.Parse(time.RFC3339, sinceStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_SINCE", "since must be an RFC3339 timestamp")
			return
		}
		evts, err := s.deps.EventLog.Since(since)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "EVENT_ERROR", err.Error())
			return
		}
		writeJSON(w, http.StatusOK, listEventsResponse{
			Items: eventsToResponse(evts),
			Total: len(evts),
			Limit: len(evts),
		})
		return
	}

	limit := queryInt(r, "limit", 50)
	offset := queryInt(r, "offset", 0)

	if limit < 0 || offset < 0 {
		writeError(w, http.StatusBadRequest, "INVALID_RANGE", "limit and offset must be non-negative")
		return
	}
	const maxLimit = 1000
	if limit > maxLimit {
		limit = maxLimit
	}

	evts, total, err := s.deps.EventLog.Recent(limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "EVENT_ERROR", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, listEventsResponse{
		Items:  eventsToResponse(evts),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

// entryEvents returns the history of one entry, oldest first.
func (s *Server) entryEvents(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}

	evts, err := s.deps.EventLog.ForEntity(events.EntityEntry, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "EVENT_ERROR", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, listEventsResponse{
		Items: eventsToResponse(evts),
		Total: len(evts),
		Limit: len(evts),
	})
}

func eventsToResponse(evts []events.RawEvent) []EventResponse {
	out := make([]EventResponse, len(evts))
	for i, e := range evts {
		out[i] = EventResponse{
			ID:         e.ID,
			EventType:  e.EventType,
			EntityType: e.EntityType,
			EntityID:   e.EntityID,
			Payload:    e.Payload,
			OccurredAt: e.OccurredAt.Format(time.RFC3339),
		}
	}
	return out
}
