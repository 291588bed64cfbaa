package profile

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomUserLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"results": [{
				"name": {"first": "Aiko", "last": "Tanaka"},
				"picture": {"thumbnail": "https://randomuser.me/api/portraits/thumb/women/1.jpg"}
			}]
		}`))
	}))
	defer srv.Close()

	c := NewRandomUserClient()
	c.SetBaseURL(srv.URL)

	author, err := c.Lookup(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Aiko Tanaka", author.Name)
	assert.Equal(t, "https://randomuser.me/api/portraits/thumb/women/1.jpg", author.Avatar)
}

func TestRandomUserLookupFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"non-200", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		}},
		{"bad json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("{not json"))
		}},
		{"empty results", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"results": []}`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c := NewRandomUserClient()
			c.SetBaseURL(srv.URL)

			_, err := c.Lookup(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestFallbackDeterministic(t *testing.T) {
	a := Fallback("seed-1")
	b := Fallback("seed-1")
	c := Fallback("seed-2")

	assert.Equal(t, a, b, "same seed must produce the same author")
	assert.NotEqual(t, a.Avatar, c.Avatar, "different seeds get different avatars")
	assert.Equal(t, PlaceholderName, a.Name)
	assert.Contains(t, a.Avatar, "seed-1")
}

func TestDisabled(t *testing.T) {
	_, err := Disabled{}.Lookup(context.Background())
	assert.Error(t, err)
}
