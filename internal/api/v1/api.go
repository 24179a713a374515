// Package v1 implements the JSON API over the catalog session.
package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/vmunix/reelshelf/internal/catalog"
)

// Config holds API server configuration.
type Config struct {
	Version string
	// RateLimit is requests per second across the API; 0 disables limiting.
	RateLimit float64
	Burst     int
}

// Server is the v1 API server.
type Server struct {
	deps    ServerDeps
	cfg     Config
	logger  *slog.Logger
	limiter *rate.Limiter
}

// New creates a new v1 API server.
func New(deps ServerDeps, cfg Config) (*Server, error) {
	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingDependency, err)
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{deps: deps, cfg: cfg, logger: logger}
	if cfg.RateLimit > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.Burst)
	}
	return s, nil
}

// ErrMissingDependency is returned when a required dependency is nil.
var ErrMissingDependency = errors.New("missing required dependency")

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	api := http.NewServeMux()

	// Entries
	api.HandleFunc("GET /api/v1/entries", s.listEntries)
	api.HandleFunc("GET /api/v1/entries/{id}", s.getEntry)
	api.HandleFunc("POST /api/v1/entries", s.addEntry)
	api.HandleFunc("POST /api/v1/entries/{id}/toggle", s.toggleWatched)
	api.HandleFunc("GET /api/v1/entries/{id}/events", s.requireEventLog(s.entryEvents))

	// Session state and projections
	api.HandleFunc("GET /api/v1/search", s.search)
	api.HandleFunc("GET /api/v1/session", s.getSession)
	api.HandleFunc("PUT /api/v1/session/query", s.setQuery)
	api.HandleFunc("PUT /api/v1/session/view", s.setView)
	api.HandleFunc("PUT /api/v1/session/type", s.setType)
	api.HandleFunc("GET /api/v1/view", s.getView)

	// System
	api.HandleFunc("GET /api/v1/events", s.requireEventLog(s.listEvents))
	api.HandleFunc("GET /api/v1/status", s.getStatus)

	mux.Handle("/api/v1/", rateLimit(s.limiter, api))
}

// Error response
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// pathID extracts the {id} path parameter.
func pathID(r *http.Request) (int64, error) {
	idStr := r.PathValue("id")
	if idStr == "" {
		return 0, fmt.Errorf("missing path parameter: id")
	}
	return strconv.ParseInt(idStr, 10, 64)
}

// queryInt extracts an optional integer from query string.
func queryInt(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}

// queryType extracts the optional ?type= narrowing. Empty and "all" mean
// every type.
func queryType(r *http.Request) (catalog.MediaType, error) {
	return catalog.ParseTypeFilter(r.URL.Query().Get("type"))
}

func entryToResponse(e *catalog.Entry) entryResponse {
	return entryResponse{
		ID:           e.ID,
		Title:        e.Title,
		CoverURL:     e.CoverURL,
		Type:         string(e.Type),
		Year:         e.Year,
		Rating:       e.Rating,
		EpisodeCount: e.EpisodeCount,
		Description:  e.Description,
		Watched:      e.Watched,
		Owned:        e.OwnedByCurrentUser,
		AddedAt:      e.AddedAt,
	}
}

func entriesToResponse(entries []*catalog.Entry) []entryResponse {
	out := make([]entryResponse, len(entries))
	for i, e := range entries {
		out[i] = entryToResponse(e)
	}
	return out
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
}

func (s *Server) listEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := s.deps.Catalog.Entries(r.Context())
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listEntriesResponse{
		Items: entriesToResponse(entries),
		Total: len(entries),
	})
}

func (s *Server) getEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}

	e, err := s.deps.Catalog.Entry(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Entry not found")
			return
		}
		s.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entryToResponse(e))
}

func (s *Server) addEntry(w http.ResponseWriter, r *http.Request) {
	var req addEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	res, err := s.deps.Catalog.AddEntry(r.Context(), catalog.NewEntry{
		Title:              req.Title,
		CoverURL:           req.CoverURL,
		Type:               catalog.MediaType(req.Type),
		Year:               req.Year,
		Rating:             req.Rating,
		EpisodeCount:       req.EpisodeCount,
		Description:        req.Description,
		OwnedByCurrentUser: req.Owned,
	})
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidEntry) {
			writeError(w, http.StatusBadRequest, "INVALID_ENTRY", err.Error())
			return
		}
		s.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, addEntryResponse{
		Entry:   entryToResponse(res.Entry),
		Similar: res.Similar,
	})
}

func (s *Server) toggleWatched(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}

	// Unknown IDs are a no-op, not an error.
	if err := s.deps.Catalog.ToggleWatched(r.Context(), id); err != nil {
		s.internalError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	t, err := queryType(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_TYPE", err.Error())
		return
	}

	res, err := s.deps.Catalog.Search(r.Context())
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	entries := catalog.FilterByType(res.Entries, t)
	writeJSON(w, http.StatusOK, searchResponse{
		Query: res.Query,
		Type:  string(t),
		Items: entriesToResponse(entries),
		Total: len(entries),
	})
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sessionResponse{
		ID:    s.deps.Catalog.ID(),
		Query: s.deps.Catalog.Query(),
		View:  string(s.deps.Catalog.View()),
		Type:  string(s.deps.Catalog.TypeFilter()),
	})
}

func (s *Server) setQuery(w http.ResponseWriter, r *http.Request) {
	var req setQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	s.deps.Catalog.SetSearchQuery(r.Context(), req.Query)
	s.getSession(w, r)
}

func (s *Server) setView(w http.ResponseWriter, r *http.Request) {
	var req setViewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	v, err := catalog.ParseView(req.View)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_VIEW", err.Error())
		return
	}
	if err := s.deps.Catalog.SetView(r.Context(), v); err != nil {
		s.internalError(w, r, err)
		return
	}
	s.getSession(w, r)
}

func (s *Server) setType(w http.ResponseWriter, r *http.Request) {
	var req setTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	t, err := catalog.ParseTypeFilter(req.Type)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_TYPE", err.Error())
		return
	}
	if err := s.deps.Catalog.SetTypeFilter(r.Context(), t); err != nil {
		s.internalError(w, r, err)
		return
	}
	s.getSession(w, r)
}

// getView returns the current projection. ?type= narrows it further
// without touching the session's own type tab.
func (s *Server) getView(w http.ResponseWriter, r *http.Request) {
	t, err := queryType(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_TYPE", err.Error())
		return
	}

	p, err := s.deps.Catalog.ViewProjection(r.Context())
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	if t != "" {
		p.Entries = catalog.FilterByType(p.Entries, t)
		p.Type = t
	}
	writeJSON(w, http.StatusOK, viewResponse{
		View:  string(p.View),
		Query: p.Query,
		Type:  string(p.Type),
		Items: entriesToResponse(p.Entries),
		Empty: p.Empty(),
	})
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	n, err := s.deps.Catalog.Count(r.Context())
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{
		Status:  "ok",
		Version: s.cfg.Version,
		Session: s.deps.Catalog.ID(),
		Entries: n,
	})
}
