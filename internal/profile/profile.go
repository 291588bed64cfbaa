// Package profile resolves author identities for generated posts.
package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jacksmith/mb/internal/model"
)

// DefaultRandomUserURL is the production randomuser.me endpoint.
const DefaultRandomUserURL = "https://randomuser.me/api/"

// PlaceholderName is the author name used when lookup fails or is disabled.
const PlaceholderName = "Anonymous User"

// Source resolves a random author profile for a synthesized post.
type Source interface {
	Lookup(ctx context.Context) (model.Author, error)
}

// Fallback returns the deterministic placeholder author for a seed.
// The avatar is a generated dicebear image keyed by the seed, so the
// system stays usable with zero external dependencies.
func Fallback(seed string) model.Author {
	return model.Author{
		Name:   PlaceholderName,
		Avatar: fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", seed),
	}
}

// RandomUserClient is a Source backed by the randomuser.me API.
type RandomUserClient struct {
	baseURL string
	client  *http.Client
}

// NewRandomUserClient creates a client for randomuser.me.
func NewRandomUserClient() *RandomUserClient {
	return &RandomUserClient{
		baseURL: DefaultRandomUserURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// SetBaseURL overrides the API endpoint. Used by tests.
func (c *RandomUserClient) SetBaseURL(u string) {
	c.baseURL = u
}

// randomUserResponse mirrors the subset of the randomuser.me payload we use.
type randomUserResponse struct {
	Results []struct {
		Name struct {
			First string `json:"first"`
			Last  string `json:"last"`
		} `json:"name"`
		Picture struct {
			Thumbnail string `json:"thumbnail"`
		} `json:"picture"`
	} `json:"results"`
}

// Lookup fetches one random profile.
func (c *RandomUserClient) Lookup(ctx context.Context) (model.Author, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return model.Author{}, fmt.Errorf("failed to build profile request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return model.Author{}, fmt.Errorf("profile lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
		return model.Author{}, fmt.Errorf("profile lookup returned %d", resp.StatusCode)
	}

	var parsed randomUserResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return model.Author{}, fmt.Errorf("failed to parse profile response: %w", err)
	}
	if len(parsed.Results) == 0 {
		return model.Author{}, fmt.Errorf("profile lookup returned no results")
	}

	r := parsed.Results[0]
	return model.Author{
		Name:   r.Name.First + " " + r.Name.Last,
		Avatar: r.Picture.Thumbnail,
	}, nil
}

// Disabled is a Source that always fails, forcing the fallback author.
// Used when lookup_authors is off in the user config.
type Disabled struct{}

// Lookup always returns an error.
func (Disabled) Lookup(context.Context) (model.Author, error) {
	return model.Author{}, fmt.Errorf("author lookup disabled")
}
