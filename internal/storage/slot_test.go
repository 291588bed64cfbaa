package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacksmith/mb/internal/model"
)

func testBoard() *model.Moodboard {
	created := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	return &model.Moodboard{
		ID:          "board-1",
		Title:       "東京 Trip 🗼",
		Description: "food & sights",
		CreatedAt:   created,
		Clusters: []model.Cluster{
			{
				ID:           "c1",
				Title:        "Food",
				Icon:         "🍽️",
				Color:        "orange",
				PostCount:    1,
				GradientFrom: "#f97316",
				GradientTo:   "#ea580c",
				CreatedAt:    created,
			},
			{ID: "c2", Title: "Parks", Icon: "🌳", Color: "pink", CreatedAt: created},
		},
		Posts: []model.Post{
			{
				ID:        "p1",
				ImageURL:  "https://example.com/1.jpg",
				Title:     "ramen inspiration",
				ClusterID: "c1",
				Author:    model.Author{Name: "Aiko Tanaka", Avatar: "https://example.com/a.jpg"},
				CreatedAt: created,
				Tags:      []string{"ramen", "食べ物"},
			},
			{ID: "p2", ImageURL: "https://example.com/2.jpg", Title: "park", CreatedAt: created},
		},
	}
}

func TestSlotRoundTrip(t *testing.T) {
	slot := NewSlot(filepath.Join(t.TempDir(), "board.json"))

	m := testBoard()
	require.NoError(t, slot.Write(m))

	got := slot.Read()
	require.NotNil(t, got)
	assert.Equal(t, m, got, "round-trip must preserve every field and slice order")
}

func TestSlotReadMissing(t *testing.T) {
	slot := NewSlot(filepath.Join(t.TempDir(), "board.json"))

	warned := false
	slot.Warnf = func(format string, args ...any) { warned = true }

	assert.Nil(t, slot.Read())
	assert.False(t, warned, "a missing slot is the normal empty case, not a warning")
}

func TestSlotReadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	slot := NewSlot(path)
	warned := false
	slot.Warnf = func(format string, args ...any) { warned = true }

	assert.Nil(t, slot.Read(), "corrupt slot falls back to the default")
	assert.True(t, warned, "corruption must be reported")
}

func TestSlotClear(t *testing.T) {
	slot := NewSlot(filepath.Join(t.TempDir(), "board.json"))

	require.NoError(t, slot.Write(testBoard()))
	require.NotNil(t, slot.Read())

	require.NoError(t, slot.Clear())
	assert.Nil(t, slot.Read())

	// Clearing an already-empty slot is fine
	assert.NoError(t, slot.Clear())
}

func TestSlotWriteFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	// Parent path is a regular file, so the write must fail.
	slot := NewSlot(filepath.Join(blocker, "board.json"))
	assert.Error(t, slot.Write(testBoard()))
}
