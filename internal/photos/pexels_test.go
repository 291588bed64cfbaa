package photos

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPexelsSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "sunset view", r.URL.Query().Get("query"))
		assert.Equal(t, "3", r.URL.Query().Get("per_page"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"page": 1,
			"per_page": 3,
			"total_results": 8000,
			"photos": [
				{
					"id": 101,
					"width": 4000,
					"height": 3000,
					"photographer": "Jane Doe",
					"avg_color": "#9A7B4F",
					"src": {"medium": "https://images.example/101-medium.jpg", "original": "https://images.example/101.jpg"}
				},
				{"id": 102, "photographer": "Bob", "src": {"medium": "https://images.example/102-medium.jpg"}},
				{"id": 103, "photographer": "Cleo", "src": {"medium": "https://images.example/103-medium.jpg"}}
			]
		}`))
	}))
	defer srv.Close()

	c := NewPexelsClient("test-key")
	c.SetBaseURL(srv.URL)

	result, err := c.Search(context.Background(), "sunset view", 3)
	require.NoError(t, err)
	assert.Equal(t, 8000, result.TotalResults)
	require.Len(t, result.Photos, 3)
	assert.Equal(t, "Jane Doe", result.Photos[0].Photographer)
	assert.Equal(t, "https://images.example/101-medium.jpg", result.Photos[0].Src.Medium)
	assert.Equal(t, int64(101), result.Photos[0].ID)
}

func TestPexelsSearchNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "invalid key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewPexelsClient("bad-key")
	c.SetBaseURL(srv.URL)

	_, err := c.Search(context.Background(), "food", 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestPexelsSearchNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // server already gone

	c := NewPexelsClient("key")
	c.SetBaseURL(srv.URL)

	_, err := c.Search(context.Background(), "food", 3)
	assert.Error(t, err)
}

func TestPexelsSearchBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	c := NewPexelsClient("key")
	c.SetBaseURL(srv.URL)

	_, err := c.Search(context.Background(), "food", 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}
