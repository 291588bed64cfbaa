// Package board implements the moodboard store: the sole mutator of the
// moodboard aggregate. Every operation computes a new snapshot from the
// current one, swaps it in, and writes it through the persisted slot.
package board

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/jacksmith/mb/internal/model"
	"github.com/jacksmith/mb/internal/photos"
	"github.com/jacksmith/mb/internal/profile"
	"github.com/jacksmith/mb/internal/storage"
)

// ErrGenerationInFlight is returned when a generation call targets a
// cluster that already has one running. Generation is serialized per
// cluster so concurrent calls cannot lose each other's appended posts.
var ErrGenerationInFlight = errors.New("a generation is already running for this cluster")

// Store owns the moodboard aggregate. It is safe for concurrent use:
// synchronous operations run under one mutex, and the snapshot is
// replaced wholesale (copy-on-write) so readers never observe a
// partially updated board.
//
// The in-memory snapshot is the source of truth; slot writes are best
// effort and their failures are reported through Warnf, never raised.
type Store struct {
	slot    *storage.Slot
	backup  *storage.Slot
	photos  photos.Source
	authors profile.Source

	// Warnf receives recoverable persistence failures. Defaults to stderr.
	Warnf func(format string, args ...any)

	mu         sync.Mutex
	board      *model.Moodboard
	generating map[string]bool // cluster ids with an in-flight generation
	subs       []func(*model.Moodboard)
}

// ClusterOptions contains optional display attributes for a new cluster.
type ClusterOptions struct {
	Description  string
	Icon         string
	GradientFrom string
	GradientTo   string
}

// ClusterChanges represents fields that can be updated on a cluster.
// ID, PostCount, Color and CreatedAt are store-internal and cannot be
// changed through this path.
type ClusterChanges struct {
	Title        *string
	Description  *string
	Icon         *string
	GradientFrom *string
	GradientTo   *string
}

// NewStore creates a store fronting the given slots and sources. The
// initial snapshot is read from the primary slot; a missing or corrupt
// slot yields an absent board.
func NewStore(slot, backup *storage.Slot, photoSrc photos.Source, authorSrc profile.Source) *Store {
	return &Store{
		slot:    slot,
		backup:  backup,
		photos:  photoSrc,
		authors: authorSrc,
		Warnf: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
		},
		board:      slot.Read(),
		generating: make(map[string]bool),
	}
}

// ValidateTitle checks that a title is not empty or whitespace-only.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title must not be empty")
	}
	return nil
}

// Board returns the current snapshot, or nil if no moodboard exists.
// Callers must treat the returned value as read-only.
func (s *Store) Board() *model.Moodboard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board
}

// commit swaps in the new snapshot and writes it through the slot.
// A failed write is recoverable: the in-memory snapshot stays
// authoritative and the failure is reported through Warnf.
// Callers must hold s.mu.
func (s *Store) commit(m *model.Moodboard) {
	s.board = m
	if err := s.slot.Write(m); err != nil {
		s.Warnf("moodboard not persisted: %v", err)
	}
}

// CreateBoard replaces any existing moodboard with a brand-new empty
// one. Confirmation of an overwrite is the caller's concern.
func (s *Store) CreateBoard(title, description string) (*model.Moodboard, error) {
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}

	m := &model.Moodboard{
		ID:          model.NewID(),
		Title:       title,
		Description: description,
		Clusters:    []model.Cluster{},
		Posts:       []model.Post{},
		CreatedAt:   time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.commit(m)
	return m, nil
}

// DeleteBoard removes the moodboard and clears the persisted slot.
// Clusters and posts are discarded with it; there is no recovery short
// of restoring a backup.
func (s *Store) DeleteBoard() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.board = nil
	return s.slot.Clear()
}

// CreateCluster appends a new cluster with zero posts. The fallback
// color is chosen from the fixed palette by creation position. Returns
// (nil, nil) when no moodboard exists; stale calls are tolerated, not
// reported.
func (s *Store) CreateCluster(title string, opts ClusterOptions) (*model.Cluster, error) {
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.board == nil {
		return nil, nil
	}

	icon := opts.Icon
	if icon == "" {
		icon = model.DefaultClusterIcon
	}

	c := model.Cluster{
		ID:           model.NewID(),
		Title:        title,
		Description:  opts.Description,
		PostCount:    0,
		Color:        model.ColorFor(len(s.board.Clusters)),
		Icon:         icon,
		GradientFrom: opts.GradientFrom,
		GradientTo:   opts.GradientTo,
		CreatedAt:    time.Now().UTC(),
	}

	next := s.board.Clone()
	next.Clusters = append(next.Clusters, c)
	s.commit(next)
	return &c, nil
}

// UpdateCluster merges the given changes into the matching cluster.
// Unknown ids are a silent no-op.
func (s *Store) UpdateCluster(clusterID string, ch ClusterChanges) error {
	if ch.Title != nil {
		if err := ValidateTitle(*ch.Title); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.board == nil || s.board.Cluster(clusterID) == nil {
		return nil
	}

	next := s.board.Clone()
	c := next.Cluster(clusterID)
	if ch.Title != nil {
		c.Title = *ch.Title
	}
	if ch.Description != nil {
		c.Description = *ch.Description
	}
	if ch.Icon != nil {
		c.Icon = *ch.Icon
	}
	if ch.GradientFrom != nil {
		c.GradientFrom = *ch.GradientFrom
	}
	if ch.GradientTo != nil {
		c.GradientTo = *ch.GradientTo
	}
	s.commit(next)
	return nil
}

// DeleteCluster removes the cluster and clears the cluster reference on
// every post that pointed at it, so no post is left dangling. Unknown
// ids are a silent no-op.
func (s *Store) DeleteCluster(clusterID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.board == nil || s.board.Cluster(clusterID) == nil {
		return
	}

	next := s.board.Clone()
	kept := next.Clusters[:0]
	for _, c := range next.Clusters {
		if c.ID != clusterID {
			kept = append(kept, c)
		}
	}
	next.Clusters = kept
	for i := range next.Posts {
		if next.Posts[i].ClusterID == clusterID {
			next.Posts[i].ClusterID = ""
		}
	}
	s.commit(next)
}

// AssignPost sets the post's cluster reference, or clears it when
// clusterID is empty. Both affected post counts are adjusted within the
// same snapshot; reassigning a post to its current cluster is a no-op.
// Unknown post or cluster ids are a silent no-op.
func (s *Store) AssignPost(postID, clusterID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.board == nil {
		return
	}
	p := s.board.Post(postID)
	if p == nil {
		return
	}
	if clusterID != "" && s.board.Cluster(clusterID) == nil {
		return
	}
	if p.ClusterID == clusterID {
		return
	}
	oldClusterID := p.ClusterID

	next := s.board.Clone()
	next.Post(postID).ClusterID = clusterID
	if old := next.Cluster(oldClusterID); old != nil && old.PostCount > 0 {
		old.PostCount--
	}
	if c := next.Cluster(clusterID); c != nil {
		c.PostCount++
	}
	s.commit(next)
}

// Generate fetches count photos for the query, synthesizes posts from
// them, and appends them to the target cluster in one snapshot.
//
// The photo search and per-post author lookups run outside the store
// lock, so other operations may interleave. Generation is serialized
// per cluster; if the cluster is deleted mid-flight the fetched posts
// are dropped. On search failure nothing is appended and the error is
// returned. Returns the number of posts added.
func (s *Store) Generate(ctx context.Context, clusterID, query string, count int) (int, error) {
	if count < 1 {
		return 0, fmt.Errorf("count must be at least 1, got %d", count)
	}

	s.mu.Lock()
	if s.board == nil || s.board.Cluster(clusterID) == nil {
		s.mu.Unlock()
		return 0, nil
	}
	if s.generating[clusterID] {
		s.mu.Unlock()
		return 0, ErrGenerationInFlight
	}
	s.generating[clusterID] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.generating, clusterID)
		s.mu.Unlock()
	}()

	result, err := s.photos.Search(ctx, query, count)
	if err != nil {
		return 0, fmt.Errorf("failed to generate posts: %w", err)
	}

	now := time.Now().UTC()
	newPosts := make([]model.Post, 0, len(result.Photos))
	for _, photo := range result.Photos {
		id := model.NewID()
		author, err := s.authors.Lookup(ctx)
		if err != nil {
			author = profile.Fallback(id)
		}
		newPosts = append(newPosts, model.Post{
			ID:          id,
			ImageURL:    photo.Src.Medium,
			Title:       fmt.Sprintf("%s inspiration", query),
			Description: fmt.Sprintf("Beautiful %s photo by %s", query, photo.Photographer),
			ClusterID:   clusterID,
			Author:      author,
			CreatedAt:   now,
			Tags:        []string{query},
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.board == nil || s.board.Cluster(clusterID) == nil {
		// Cluster deleted while we were fetching. Drop the posts rather
		// than recreate a reference the user just removed.
		return 0, nil
	}

	next := s.board.Clone()
	next.Posts = append(next.Posts, newPosts...)
	next.Cluster(clusterID).PostCount += len(newPosts)
	s.commit(next)
	return len(newPosts), nil
}

// FilteredPosts returns the posts assigned to the given cluster, or all
// posts when clusterID is empty. The returned slice is a fresh view;
// callers must not assume identity stability across calls.
func (s *Store) FilteredPosts(clusterID string) []model.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.board == nil {
		return nil
	}

	out := make([]model.Post, 0, len(s.board.Posts))
	for _, p := range s.board.Posts {
		if clusterID == "" || p.ClusterID == clusterID {
			out = append(out, p)
		}
	}
	return out
}

// SaveBackup writes the current snapshot to the backup slot. Errors are
// returned (not soft-failed): an explicit save the user asked for must
// not silently do nothing.
func (s *Store) SaveBackup() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.board == nil {
		return fmt.Errorf("no moodboard to save")
	}
	return s.backup.Write(s.board)
}

// RestoreBackup replaces the current snapshot with the backup slot's
// contents and rewrites the primary slot.
func (s *Store) RestoreBackup() error {
	m := s.backup.Read()
	if m == nil {
		return fmt.Errorf("no backup snapshot found")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.commit(m)
	return nil
}

// Subscribe registers a callback for externally written snapshots
// observed by Watch.
func (s *Store) Subscribe(fn func(*model.Moodboard)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Watch follows the primary slot for writes made by other processes,
// adopting each external snapshot as the current one and notifying
// subscribers. Blocks until the context is cancelled.
func (s *Store) Watch(ctx context.Context) error {
	w, err := storage.NewWatcher(s.slot)
	if err != nil {
		return err
	}
	w.Subscribe(func(m *model.Moodboard) {
		s.mu.Lock()
		s.board = m
		subs := make([]func(*model.Moodboard), len(s.subs))
		copy(subs, s.subs)
		s.mu.Unlock()

		for _, fn := range subs {
			fn(m)
		}
	})
	return w.Run(ctx)
}
