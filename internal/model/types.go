// Package model defines the core data structures for mb.
package model

import "time"

// Author is a snapshot of the person credited on a post, captured at
// creation time and never updated afterwards.
type Author struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Cluster is a named grouping bucket that posts can be assigned to.
type Cluster struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	// PostCount caches how many posts currently reference this cluster.
	// It is maintained incrementally by board.Store and must always match
	// the number of posts whose ClusterID equals ID.
	PostCount    int       `json:"postCount"`
	Color        string    `json:"color"`
	Icon         string    `json:"icon,omitempty"`
	GradientFrom string    `json:"gradientFrom,omitempty"`
	GradientTo   string    `json:"gradientTo,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Post is an image-bearing item, optionally assigned to one cluster.
// Content fields are immutable after creation; only ClusterID changes.
type Post struct {
	ID          string `json:"id"`
	ImageURL    string `json:"imageUrl"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	// ClusterID is a weak reference to a Cluster by id. Empty means
	// unassigned. Deleting a cluster clears this field on its posts.
	ClusterID string    `json:"clusterId,omitempty"`
	Author    Author    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
	Tags      []string  `json:"tags,omitempty"`
}

// Moodboard is the root aggregate. Exactly one instance is persisted at
// a time; it exclusively owns its clusters and posts.
type Moodboard struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Clusters    []Cluster `json:"clusters"`
	Posts       []Post    `json:"posts"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Cluster returns a pointer to the cluster with the given id, or nil.
func (m *Moodboard) Cluster(id string) *Cluster {
	for i := range m.Clusters {
		if m.Clusters[i].ID == id {
			return &m.Clusters[i]
		}
	}
	return nil
}

// Post returns a pointer to the post with the given id, or nil.
func (m *Moodboard) Post(id string) *Post {
	for i := range m.Posts {
		if m.Posts[i].ID == id {
			return &m.Posts[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the moodboard. The store mutates copies
// only, so readers holding an older snapshot never see partial updates.
func (m *Moodboard) Clone() *Moodboard {
	if m == nil {
		return nil
	}
	out := *m
	out.Clusters = make([]Cluster, len(m.Clusters))
	copy(out.Clusters, m.Clusters)
	out.Posts = make([]Post, len(m.Posts))
	for i, p := range m.Posts {
		if p.Tags != nil {
			tags := make([]string, len(p.Tags))
			copy(tags, p.Tags)
			p.Tags = tags
		}
		out.Posts[i] = p
	}
	return &out
}
