package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client wraps HTTP calls to the reelshelf server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new reelshelf API client.
func NewClient(serverURL string) *Client {
	return &Client{
		baseURL: serverURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) get(path string, result any) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

func (c *Client) post(path string, body any, result any) error {
	return c.send(http.MethodPost, path, body, result)
}

func (c *Client) put(path string, body any, result any) error {
	return c.send(http.MethodPut, path, body, result)
}

func (c *Client) send(method, path string, body any, result any) error {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal error: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("request creation failed: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil && resp.StatusCode != http.StatusNoContent {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

// API response types (mirror server types)

type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Session string `json:"session"`
	Entries int    `json:"entries"`
}

type EntryResponse struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	CoverURL     string  `json:"cover_url"`
	Type         string  `json:"type"`
	Year         int     `json:"year"`
	Rating       float64 `json:"rating"`
	EpisodeCount *int    `json:"episode_count,omitempty"`
	Description  string  `json:"description,omitempty"`
	Watched      bool    `json:"watched"`
	Owned        bool    `json:"owned"`
	AddedAt      string  `json:"added_at"`
}

type ListEntriesResponse struct {
	Items []EntryResponse `json:"items"`
	Total int             `json:"total"`
}

type SearchResponse struct {
	Query string          `json:"query"`
	Type  string          `json:"type,omitempty"`
	Items []EntryResponse `json:"items"`
	Total int             `json:"total"`
}

type ViewResponse struct {
	View  string          `json:"view"`
	Query string          `json:"query"`
	Type  string          `json:"type,omitempty"`
	Items []EntryResponse `json:"items"`
	Empty bool            `json:"empty"`
}

type SessionResponse struct {
	ID    string `json:"id"`
	Query string `json:"query"`
	View  string `json:"view"`
	Type  string `json:"type"`
}

type AddEntryRequest struct {
	Title        string  `json:"title"`
	CoverURL     string  `json:"cover_url,omitempty"`
	Type         string  `json:"type"`
	Year         int     `json:"year,omitempty"`
	Rating       float64 `json:"rating,omitempty"`
	EpisodeCount *int    `json:"episode_count,omitempty"`
	Description  string  `json:"description,omitempty"`
	Owned        bool    `json:"owned"`
}

type AddEntryResponse struct {
	Entry   EntryResponse `json:"entry"`
	Similar []string      `json:"similar,omitempty"`
}

type EventResponse struct {
	ID         int64  `json:"id"`
	EventType  string `json:"event_type"`
	EntityType string `json:"entity_type"`
	EntityID   int64  `json:"entity_id"`
	Payload    string `json:"payload"`
	OccurredAt string `json:"occurred_at"`
}

type ListEventsResponse struct {
	Items  []EventResponse `json:"items"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// API methods

func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.get("/api/v1/status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Entries() (*ListEntriesResponse, error) {
	var resp ListEntriesResponse
	if err := c.get("/api/v1/entries", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Entry(id int64) (*EntryResponse, error) {
	var resp EntryResponse
	if err := c.get(fmt.Sprintf("/api/v1/entries/%d", id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) AddEntry(req *AddEntryRequest) (*AddEntryResponse, error) {
	var resp AddEntryResponse
	if err := c.post("/api/v1/entries", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ToggleWatched(id int64) error {
	return c.post(fmt.Sprintf("/api/v1/entries/%d/toggle", id), nil, nil)
}

// withType appends a ?type= narrowing to path when mediaType is set.
func withType(path, mediaType string) string {
	if mediaType == "" {
		return path
	}
	return path + "?" + url.Values{"type": {mediaType}}.Encode()
}

// Search sets the session query and returns the matching entries,
// optionally narrowed to one media type.
func (c *Client) Search(query, mediaType string) (*SearchResponse, error) {
	if err := c.put("/api/v1/session/query", map[string]string{"query": query}, nil); err != nil {
		return nil, err
	}
	var resp SearchResponse
	if err := c.get(withType("/api/v1/search", mediaType), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Session() (*SessionResponse, error) {
	var resp SessionResponse
	if err := c.get("/api/v1/session", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) SetView(view string) (*SessionResponse, error) {
	var resp SessionResponse
	if err := c.put("/api/v1/session/view", map[string]string{"view": view}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) View(mediaType string) (*ViewResponse, error) {
	var resp ViewResponse
	if err := c.get(withType("/api/v1/view", mediaType), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Events(limit int) (*ListEventsResponse, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	var resp ListEventsResponse
	if err := c.get("/api/v1/events?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
