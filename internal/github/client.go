package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"reposcout/internal/domain"
)

const defaultBaseURL = "https://api.github.com/search/repositories"

// Client performs repository searches against the GitHub search API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client against the public GitHub API.
func NewClient() *Client {
	return NewClientWithBaseURL(defaultBaseURL)
}

// NewClientWithBaseURL creates a client against a specific endpoint.
func NewClientWithBaseURL(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Search performs a repository search. rawQuery is the pre-built query
// string and is passed through verbatim.
func (c *Client) Search(ctx context.Context, rawQuery string) ([]domain.SearchResult, error) {
	url := c.baseURL + "?" + rawQuery
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search request failed with status %d", resp.StatusCode)
	}

	return decodeSearchResponse(resp.Body)
}

// searchResponse mirrors the wire shape. Pointer fields distinguish absent
// values from zero values so a partial payload fails the whole response.
type searchResponse struct {
	Items *[]searchItem `json:"items"`
}

type searchItem struct {
	ID       *int64  `json:"id"`
	FullName *string `json:"full_name"`
	Stars    *int    `json:"stargazers_count"`
}

func decodeSearchResponse(r io.Reader) ([]domain.SearchResult, error) {
	var payload searchResponse
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	if payload.Items == nil {
		return nil, fmt.Errorf("search response missing items")
	}

	results := make([]domain.SearchResult, 0, len(*payload.Items))
	for i, item := range *payload.Items {
		switch {
		case item.ID == nil:
			return nil, fmt.Errorf("search response item %d missing id", i)
		case item.FullName == nil:
			return nil, fmt.Errorf("search response item %d missing full_name", i)
		case item.Stars == nil:
			return nil, fmt.Errorf("search response item %d missing stargazers_count", i)
		}
		results = append(results, domain.SearchResult{
			ID:    *item.ID,
			Name:  *item.FullName,
			Stars: *item.Stars,
		})
	}

	return results, nil
}
