package main

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientStatus_Success(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/status").
		ExpectGET().
		RespondJSON(StatusResponse{
			Status:  "ok",
			Version: "1.0.0",
			Entries: 3,
		}).
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	status, err := client.Status()
	require.NoError(t, err)
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, "1.0.0", status.Version)
	assert.Equal(t, 3, status.Entries)
}

func TestClientStatus_ServerError(t *testing.T) {
	srv := newMockServer(t).
		RespondError(http.StatusInternalServerError, "internal server error").
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Status()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "internal server error")
}

func TestClientStatus_ConnectionError(t *testing.T) {
	// Create a server and immediately close it to simulate connection error
	srv := newMockServer(t).Build()
	srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Status()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
}

func TestClientStatus_InvalidJSON(t *testing.T) {
	srv := newMockServer(t).
		Handler(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("not valid json"))
		}).
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Status()
	require.Error(t, err)
}

func TestClientEntries(t *testing.T) {
	eps := 24
	srv := newMockServer(t).
		ExpectPath("/api/v1/entries").
		ExpectGET().
		RespondJSON(ListEntriesResponse{
			Items: []EntryResponse{
				{ID: 1, Title: "Космическая Одиссея", Type: "movie", Year: 2024, Rating: 8.9},
				{ID: 2, Title: "Атака Титанов", Type: "anime", Year: 2023, Rating: 9.2, EpisodeCount: &eps},
			},
			Total: 2,
		}).
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	resp, err := client.Entries()
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Items, 2)
	require.NotNil(t, resp.Items[1].EpisodeCount)
	assert.Equal(t, 24, *resp.Items[1].EpisodeCount)
}

func TestClientToggleWatched_NoContent(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/entries/3/toggle").
		ExpectPOST().
		RespondStatus(http.StatusNoContent).
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	require.NoError(t, client.ToggleWatched(3))
}

func TestClientSetView(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/session/view").
		ExpectPUT().
		Handler(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "favorites", body["view"])
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			respondJSON(t, w, SessionResponse{ID: "s", View: body["view"]})
		}).
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	resp, err := client.SetView("favorites")
	require.NoError(t, err)
	assert.Equal(t, "favorites", resp.View)
}

func TestClientSetView_Rejected(t *testing.T) {
	srv := newMockServer(t).
		RespondError(http.StatusBadRequest, `{"error":"invalid view: \"x\"","code":"INVALID_VIEW"}`).
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.SetView("x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_VIEW")
}

func TestClientView(t *testing.T) {
	tests := []struct {
		name      string
		mediaType string
	}{
		{"current view", ""},
		{"narrowed to anime", "anime"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newMockServer(t).
				ExpectPath("/api/v1/view").
				ExpectGET().
				ExpectQuery("type", tt.mediaType).
				RespondJSON(ViewResponse{View: "catalog", Type: tt.mediaType, Items: []EntryResponse{{ID: 2}}}).
				Build()
			defer srv.Close()

			client := NewClient(srv.URL)
			resp, err := client.View(tt.mediaType)
			require.NoError(t, err)
			assert.Equal(t, "catalog", resp.View)
			assert.Equal(t, tt.mediaType, resp.Type)
		})
	}
}

func TestClientSearch(t *testing.T) {
	var calls []string
	srv := newMockServer(t).
		Handler(func(w http.ResponseWriter, r *http.Request) {
			calls = append(calls, r.Method+" "+r.URL.Path)
			switch r.URL.Path {
			case "/api/v1/session/query":
				var body map[string]string
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "титан", body["query"])
				respondJSON(t, w, SessionResponse{Query: body["query"]})
			case "/api/v1/search":
				respondJSON(t, w, SearchResponse{
					Query: "титан",
					Items: []EntryResponse{{ID: 2, Title: "Атака Титанов"}},
					Total: 1,
				})
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}).
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	resp, err := client.Search("титан", "")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, []string{"PUT /api/v1/session/query", "GET /api/v1/search"}, calls)
}

func TestClientSearch_WithType(t *testing.T) {
	var rawQuery string
	srv := newMockServer(t).
		Handler(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/api/v1/search" {
				rawQuery = r.URL.RawQuery
				respondJSON(t, w, SearchResponse{Query: "воды", Type: "series", Items: []EntryResponse{{ID: 3}}, Total: 1})
				return
			}
			respondJSON(t, w, SessionResponse{Query: "воды"})
		}).
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	resp, err := client.Search("воды", "series")
	require.NoError(t, err)
	assert.Equal(t, "type=series", rawQuery)
	assert.Equal(t, "series", resp.Type)
}

func TestClientAddEntry(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/entries").
		ExpectPOST().
		Handler(func(w http.ResponseWriter, r *http.Request) {
			var req AddEntryRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "Атака титанов", req.Title)
			require.NotNil(t, req.EpisodeCount)
			assert.Equal(t, 25, *req.EpisodeCount)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(AddEntryResponse{
				Entry:   EntryResponse{ID: 4, Title: req.Title},
				Similar: []string{"Атака Титанов"},
			})
		}).
		Build()
	defer srv.Close()

	eps := 25
	client := NewClient(srv.URL)
	resp, err := client.AddEntry(&AddEntryRequest{Title: "Атака титанов", Type: "anime", EpisodeCount: &eps})
	require.NoError(t, err)
	assert.Equal(t, int64(4), resp.Entry.ID)
	assert.Equal(t, []string{"Атака Титанов"}, resp.Similar)
}

func TestClientEvents(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/events").
		Handler(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "5", r.URL.Query().Get("limit"))
			respondJSON(t, w, ListEventsResponse{
				Items: []EventResponse{{ID: 1, EventType: "entry.watched.toggled", EntityType: "entry", EntityID: 3}},
				Total: 1,
				Limit: 5,
			})
		}).
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	resp, err := client.Events(5)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "entry.watched.toggled", resp.Items[0].EventType)
}

func TestRunToggleCmd_UnknownID(t *testing.T) {
	srv := newMockServer(t).
		Handler(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"Entry not found","code":"NOT_FOUND"}`))
		}).
		Build()
	defer srv.Close()
	defer withServerURL(srv.URL)()

	require.NoError(t, runToggleCmd(toggleCmd, []string{"42"}))
}

func TestRunToggleCmd_InvalidID(t *testing.T) {
	err := runToggleCmd(toggleCmd, []string{"abc"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid entry ID")
}
