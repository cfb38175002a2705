// Package openlibrary fetches best-effort bibliographic metadata for an
// ISBN from the Open Library API.
package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"booki/internal/config"
)

// HTTPDoer describes the HTTP client used by the Open Library client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Metadata is a partial bibliographic record. Any field may be empty; the
// caller fills gaps through the editor flow.
type Metadata struct {
	ISBN      string
	Title     string
	Author    string
	PageCount string
}

// Client talks to an Open Library-compatible endpoint.
type Client struct {
	baseURL string
	client  HTTPDoer
}

// NewClient builds a client from configuration.
func NewClient(cfg *config.Config) *Client {
	return New(cfg.OpenLibrary.BaseURL, &http.Client{
		Timeout: time.Duration(cfg.OpenLibrary.RequestTimeout) * time.Second,
	})
}

// New constructs a client against baseURL using the provided HTTP doer.
func New(baseURL string, client HTTPDoer) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		client:  client,
	}
}

type editionPayload struct {
	Title         string `json:"title"`
	NumberOfPages int    `json:"number_of_pages"`
	ByStatement   string `json:"by_statement"`
	Authors       []struct {
		Key string `json:"key"`
	} `json:"authors"`
}

type authorPayload struct {
	Name string `json:"name"`
}

// Lookup fetches metadata for an ISBN. Missing fields degrade to empty
// strings; only failure to fetch or decode the edition record is an error.
// The author name lookup is best effort, falling back to the edition's
// by_statement.
func (c *Client) Lookup(ctx context.Context, isbn string) (Metadata, error) {
	meta := Metadata{ISBN: isbn}

	var edition editionPayload
	if err := c.getJSON(ctx, "/isbn/"+isbn+".json", &edition); err != nil {
		return meta, fmt.Errorf("look up isbn %s: %w", isbn, err)
	}

	meta.Title = strings.TrimSpace(edition.Title)
	if edition.NumberOfPages > 0 {
		meta.PageCount = strconv.Itoa(edition.NumberOfPages)
	}
	meta.Author = strings.TrimSpace(edition.ByStatement)

	if len(edition.Authors) > 0 && edition.Authors[0].Key != "" {
		var author authorPayload
		if err := c.getJSON(ctx, edition.Authors[0].Key+".json", &author); err == nil {
			if name := strings.TrimSpace(author.Name); name != "" {
				meta.Author = name
			}
		}
	}

	return meta, nil
}

func (c *Client) getJSON(ctx context.Context, path string, target any) error {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("fetch %s: status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
