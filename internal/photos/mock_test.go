package photos

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockSearch(t *testing.T) {
	src := NewMockSource(1)

	result, err := src.Search(context.Background(), "food", 5)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 5, result.PerPage)
	assert.Len(t, result.Photos, 5)
	assert.Equal(t, 1000, result.TotalResults)

	for _, p := range result.Photos {
		assert.NotEmpty(t, p.Photographer)
		assert.True(t, strings.HasPrefix(p.Src.Medium, "https://picsum.photos/"))
		assert.True(t, strings.HasPrefix(p.Src.Original, "https://picsum.photos/"))
		assert.GreaterOrEqual(t, p.Width, 400)
		assert.GreaterOrEqual(t, p.Height, 300)
		assert.True(t, strings.HasPrefix(p.AvgColor, "#"))
	}
}

func TestMockSearchInvalidPerPage(t *testing.T) {
	src := NewMockSource(1)

	_, err := src.Search(context.Background(), "food", 0)
	assert.Error(t, err)
	_, err = src.Search(context.Background(), "food", -1)
	assert.Error(t, err)
}
