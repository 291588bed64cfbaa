// Package photos provides photo search backends for post generation.
package photos

import "context"

// SrcSet holds the size variants a photo is available in.
type SrcSet struct {
	Original  string `json:"original"`
	Large2x   string `json:"large2x"`
	Large     string `json:"large"`
	Medium    string `json:"medium"`
	Small     string `json:"small"`
	Portrait  string `json:"portrait"`
	Landscape string `json:"landscape"`
	Tiny      string `json:"tiny"`
}

// Photo is one search result.
type Photo struct {
	ID           int64  `json:"id"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	URL          string `json:"url"`
	Photographer string `json:"photographer"`
	AvgColor     string `json:"avg_color"`
	Src          SrcSet `json:"src"`
}

// SearchResult is one page of search results.
type SearchResult struct {
	Page         int     `json:"page"`
	PerPage      int     `json:"per_page"`
	Photos       []Photo `json:"photos"`
	TotalResults int     `json:"total_results"`
}

// Source searches for photos matching a query. Implementations may be
// remote (Pexels) or local (the mock generator); callers treat both
// identically and must handle any call failing as a single "search
// failed" outcome.
type Source interface {
	Search(ctx context.Context, query string, perPage int) (*SearchResult, error)
}
