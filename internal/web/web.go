// Package web renders the catalog session as a single HTML page and turns
// form posts back into session operations.
package web

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/vmunix/reelshelf/internal/catalog"
)

// Catalog is the session state the page reads and mutates.
type Catalog interface {
	SetSearchQuery(ctx context.Context, text string)
	SetView(ctx context.Context, v catalog.View) error
	SetTypeFilter(ctx context.Context, t catalog.MediaType) error
	ToggleWatched(ctx context.Context, id int64) error
	ViewProjection(ctx context.Context) (catalog.Projection, error)
	AddEntry(ctx context.Context, n catalog.NewEntry) (*catalog.AddResult, error)
}

// Handler serves the page and its form endpoints.
type Handler struct {
	catalog Catalog
	logger  *slog.Logger
	tpl     *template.Template
}

// New creates a page handler over c.
func New(c Catalog, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		catalog: c,
		logger:  logger.With("component", "web"),
		tpl:     template.Must(template.New("page").Funcs(funcs).Parse(pageTpl)),
	}
}

// RegisterRoutes registers page routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.page)
	mux.HandleFunc("POST /view", h.setView)
	mux.HandleFunc("POST /type", h.setType)
	mux.HandleFunc("POST /search", h.search)
	mux.HandleFunc("POST /entries/{id}/toggle", h.toggle)
	mux.HandleFunc("POST /entries", h.add)
}

type tab struct {
	View   catalog.View
	Label  string
	Active bool
}

type typeTab struct {
	Value  string
	Label  string
	Active bool
}

type pageData struct {
	Tabs     []tab
	TypeTabs []typeTab
	View     catalog.View
	Heading  string
	Query    string
	Entries  []*catalog.Entry
	Empty    bool
	Notice   string
	Similar  []string
	FormErr  string
	Types    []catalog.MediaType
	Featured *catalog.Entry
}

var tabLabels = map[catalog.View]string{
	catalog.ViewHome:      "Главная",
	catalog.ViewCatalog:   "Каталог",
	catalog.ViewMine:      "Мои",
	catalog.ViewFavorites: "Избранное",
}

var headings = map[catalog.View]string{
	catalog.ViewHome:      "Популярное сейчас",
	catalog.ViewCatalog:   "Каталог",
	catalog.ViewMine:      "Мои видео",
	catalog.ViewFavorites: "Избранное",
}

var typeLabels = map[catalog.MediaType]string{
	catalog.MediaMovie:  "Фильм",
	catalog.MediaSeries: "Сериал",
	catalog.MediaAnime:  "Аниме",
}

var typeTabLabels = []typeTab{
	{Value: "all", Label: "Все"},
	{Value: string(catalog.MediaMovie), Label: "Фильмы"},
	{Value: string(catalog.MediaSeries), Label: "Сериалы"},
	{Value: string(catalog.MediaAnime), Label: "Аниме"},
}

var funcs = template.FuncMap{
	"typeLabel": func(t catalog.MediaType) string { return typeLabels[t] },
	"rating":    func(r float64) string { return strconv.FormatFloat(r, 'f', 1, 64) },
}

func (h *Handler) page(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "")
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, formErr string) {
	p, err := h.catalog.ViewProjection(r.Context())
	if err != nil {
		h.logger.Error("project view", "error", err)
		httpError(w, http.StatusInternalServerError, "unable to load catalog")
		return
	}

	data := pageData{
		View:    p.View,
		Heading: headings[p.View],
		Query:   p.Query,
		Entries: p.Entries,
		Empty:   p.Empty(),
		Similar: r.URL.Query()["similar"],
		FormErr: formErr,
		Types:   []catalog.MediaType{catalog.MediaMovie, catalog.MediaSeries, catalog.MediaAnime},
	}
	if added := r.URL.Query().Get("added"); added != "" {
		data.Notice = "Видео «" + added + "» добавлено"
	}
	for _, v := range catalog.Views {
		data.Tabs = append(data.Tabs, tab{View: v, Label: tabLabels[v], Active: v == p.View})
	}
	if p.View == catalog.ViewCatalog {
		active := string(p.Type)
		if active == "" {
			active = "all"
		}
		for _, tt := range typeTabLabels {
			tt.Active = tt.Value == active
			data.TypeTabs = append(data.TypeTabs, tt)
		}
	}
	if p.View == catalog.ViewHome && len(p.Entries) > 0 {
		data.Featured = p.Entries[0]
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.tpl.Execute(w, data); err != nil {
		h.logger.Error("render page", "error", err)
	}
}

func (h *Handler) setView(w http.ResponseWriter, r *http.Request) {
	v, err := catalog.ParseView(r.FormValue("view"))
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.catalog.SetView(r.Context(), v); err != nil {
		httpError(w, http.StatusInternalServerError, err.Error())
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) setType(w http.ResponseWriter, r *http.Request) {
	t, err := catalog.ParseTypeFilter(r.FormValue("type"))
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.catalog.SetTypeFilter(r.Context(), t); err != nil {
		httpError(w, http.StatusInternalServerError, err.Error())
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	h.catalog.SetSearchQuery(r.Context(), r.FormValue("q"))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) toggle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.catalog.ToggleWatched(r.Context(), id); err != nil {
		h.logger.Error("toggle watched", "entry_id", id, "error", err)
		httpError(w, http.StatusInternalServerError, "unable to toggle")
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	n, err := parseNewEntry(r)
	if err != nil {
		h.render(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.catalog.AddEntry(r.Context(), *n)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidEntry) {
			h.render(w, r, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("add entry", "error", err)
		httpError(w, http.StatusInternalServerError, "unable to add entry")
		return
	}

	q := url.Values{"added": {res.Entry.Title}}
	for _, s := range res.Similar {
		q.Add("similar", s)
	}
	http.Redirect(w, r, "/?"+q.Encode(), http.StatusSeeOther)
}

// parseNewEntry reads the upload form. Blank numeric fields are zero, and
// a blank episode count means none.
func parseNewEntry(r *http.Request) (*catalog.NewEntry, error) {
	n := &catalog.NewEntry{
		Title:              r.FormValue("title"),
		CoverURL:           strings.TrimSpace(r.FormValue("cover_url")),
		Type:               catalog.MediaType(r.FormValue("type")),
		Description:        strings.TrimSpace(r.FormValue("description")),
		OwnedByCurrentUser: r.FormValue("owned") != "",
	}

	if s := strings.TrimSpace(r.FormValue("year")); s != "" {
		y, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("year: %q is not a number", s)
		}
		n.Year = y
	}
	if s := strings.TrimSpace(r.FormValue("rating")); s != "" {
		v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
		if err != nil {
			return nil, fmt.Errorf("rating: %q is not a number", s)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.New("rating: not a number")
		}
		n.Rating = v
	}
	if s := strings.TrimSpace(r.FormValue("episodes")); s != "" {
		e, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("episodes: %q is not a number", s)
		}
		n.EpisodeCount = &e
	}
	return n, nil
}

func httpError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(msg))
}
