package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSplitsIntoFixedPages(t *testing.T) {
	// 13 items at size 10: a full first page and 3 leftovers.
	first := New(13, 10, 1)
	assert.Equal(t, 1, first.Number)
	assert.Equal(t, 10, first.Limit())
	assert.Equal(t, 0, first.Offset())
	assert.Equal(t, 2, first.TotalPages)
	assert.True(t, first.HasNext)
	assert.False(t, first.HasPrev)

	second := New(13, 10, 2)
	assert.Equal(t, 2, second.Number)
	assert.Equal(t, 10, second.Offset())
	assert.False(t, second.HasNext)
	assert.True(t, second.HasPrev)
	// 13 - 10 = 3 items remain on the last page
	assert.Equal(t, int64(3), second.Total-int64(second.Offset()))
}

func TestNewClampsOutOfRangePages(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		requested int
		want      int
	}{
		{"past the end", 25, 99, 3},
		{"zero", 25, 0, 1},
		{"negative", 25, -5, 1},
		{"exact last", 25, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := New(tt.total, 10, tt.requested)
			assert.Equal(t, tt.want, page.Number)
		})
	}
}

func TestNewEmptySetHasOnePage(t *testing.T) {
	page := New(0, 10, 1)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 1, page.TotalPages)
	assert.False(t, page.HasNext)
	assert.False(t, page.HasPrev)
	assert.Equal(t, 0, page.Offset())
}

func TestNewGuardsAgainstZeroSize(t *testing.T) {
	page := New(5, 0, 1)
	assert.Equal(t, 1, page.Size)
	assert.Equal(t, 5, page.TotalPages)
}
