package photos

import (
	"context"
	"fmt"
	"math/rand"
)

// MockSource generates plausible search results locally using
// picsum.photos placeholder URLs. It needs no API key and no network at
// generation time, so a fresh checkout works out of the box.
type MockSource struct {
	rng *rand.Rand
}

// NewMockSource creates a mock source seeded for varied output.
func NewMockSource(seed int64) *MockSource {
	return &MockSource{rng: rand.New(rand.NewSource(seed))}
}

// Search fabricates perPage photo results for the query.
func (s *MockSource) Search(_ context.Context, query string, perPage int) (*SearchResult, error) {
	if perPage < 1 {
		return nil, fmt.Errorf("per_page must be at least 1, got %d", perPage)
	}

	photos := make([]Photo, perPage)
	for i := range photos {
		n := s.rng.Int63n(1_000_000)
		photos[i] = Photo{
			ID:           n,
			Width:        400 + s.rng.Intn(400),
			Height:       300 + s.rng.Intn(500),
			URL:          s.picsum(400, 300+s.rng.Intn(200), n),
			Photographer: fmt.Sprintf("Photographer %d", i+1),
			AvgColor:     fmt.Sprintf("#%06x", s.rng.Intn(0xffffff+1)),
			Src: SrcSet{
				Original:  s.picsum(800, 600+s.rng.Intn(400), n),
				Large2x:   s.picsum(800, 600+s.rng.Intn(400), n),
				Large:     s.picsum(600, 450+s.rng.Intn(300), n),
				Medium:    s.picsum(400, 300+s.rng.Intn(200), n),
				Small:     s.picsum(300, 225+s.rng.Intn(150), n),
				Portrait:  s.picsum(400, 600+s.rng.Intn(200), n),
				Landscape: s.picsum(600, 400+s.rng.Intn(100), n),
				Tiny:      s.picsum(200, 150+s.rng.Intn(100), n),
			},
		}
	}

	return &SearchResult{
		Page:         1,
		PerPage:      perPage,
		Photos:       photos,
		TotalResults: 1000,
	}, nil
}

func (s *MockSource) picsum(w, h int, n int64) string {
	return fmt.Sprintf("https://picsum.photos/%d/%d?random=%d", w, h, n)
}
