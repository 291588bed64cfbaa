package photos

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
)

// Breaker wraps a Source in a circuit breaker so repeated remote
// failures (dead network, revoked key) fail fast instead of hanging a
// generation call on every retry.
type Breaker struct {
	src Source
	cb  *gobreaker.CircuitBreaker
}

// NewBreaker wraps src in a circuit breaker. The breaker trips after a
// majority of recent requests fail and probes again after a cooldown.
func NewBreaker(src Source) *Breaker {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "photo-source",
		MaxRequests: 1,
		Interval:    30 * time.Second,
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 3 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
	})
	return &Breaker{src: src, cb: cb}
}

// Search delegates to the wrapped source through the breaker.
func (b *Breaker) Search(ctx context.Context, query string, perPage int) (*SearchResult, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.src.Search(ctx, query, perPage)
	})
	if err != nil {
		return nil, err
	}
	return out.(*SearchResult), nil
}
