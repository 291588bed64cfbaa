package photos

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultPexelsBaseURL is the production Pexels API endpoint.
const DefaultPexelsBaseURL = "https://api.pexels.com/v1"

// PexelsClient is a Source backed by the Pexels search API.
type PexelsClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewPexelsClient creates a client for the Pexels API.
func NewPexelsClient(apiKey string) *PexelsClient {
	return &PexelsClient{
		apiKey:  apiKey,
		baseURL: DefaultPexelsBaseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// SetBaseURL overrides the API endpoint. Used by tests.
func (c *PexelsClient) SetBaseURL(u string) {
	c.baseURL = u
}

// Search queries the Pexels search endpoint for one page of photos.
func (c *PexelsClient) Search(ctx context.Context, query string, perPage int) (*SearchResult, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("per_page", strconv.Itoa(perPage))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("photo search failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("photo search returned %d: %s", resp.StatusCode, string(body))
	}

	var result SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}
	return &result, nil
}
