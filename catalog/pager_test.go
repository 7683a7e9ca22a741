package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitPageRoundTrip(t *testing.T) {
	for _, pageSize := range []int{1, 10, 24, 50, 100} {
		for global := 1; global <= 200; global++ {
			coords := SplitPage(global, pageSize)
			assert.Equal(t, global, coords.Global(pageSize),
				"pageSize=%d global=%d -> %+v", pageSize, global, coords)
			assert.GreaterOrEqual(t, coords.Batch, 1)
			assert.GreaterOrEqual(t, coords.Page, 1)
			assert.LessOrEqual(t, coords.Page, MaxPagesInBatch(pageSize))
		}
	}
}

func TestSplitPageBoundaries(t *testing.T) {
	// 24 per page: 41 pages per batch.
	assert.Equal(t, Coords{Batch: 1, Page: 1}, SplitPage(1, 24))
	assert.Equal(t, Coords{Batch: 1, Page: 41}, SplitPage(41, 24))
	assert.Equal(t, Coords{Batch: 2, Page: 1}, SplitPage(42, 24))
	assert.Equal(t, Coords{Batch: 2, Page: 41}, SplitPage(82, 24))
	assert.Equal(t, Coords{Batch: 3, Page: 1}, SplitPage(83, 24))

	// Page numbers below 1 land on the first page.
	assert.Equal(t, Coords{Batch: 1, Page: 1}, SplitPage(0, 24))
	assert.Equal(t, Coords{Batch: 1, Page: 1}, SplitPage(-5, 24))
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 10))
	assert.Equal(t, 1, ClampPage(-2, 10))
	assert.Equal(t, 10, ClampPage(11, 10))
	assert.Equal(t, 7, ClampPage(7, 10))
	// Empty result set still navigates to page 1.
	assert.Equal(t, 1, ClampPage(3, 0))
}

func TestBuildNavWindow(t *testing.T) {
	t.Run("centered", func(t *testing.T) {
		nav := BuildNav(10, 41, 41)
		assert.Equal(t, []int{8, 9, 10, 11, 12}, nav.Pages)
		assert.True(t, nav.ShowFirst)
		assert.True(t, nav.ShowLast)
		assert.True(t, nav.HasPrev)
		assert.True(t, nav.HasNext)
	})

	t.Run("at start", func(t *testing.T) {
		nav := BuildNav(1, 41, 41)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, nav.Pages)
		assert.False(t, nav.ShowFirst)
		assert.True(t, nav.ShowLast)
		assert.False(t, nav.HasPrev)
	})

	t.Run("at end", func(t *testing.T) {
		nav := BuildNav(41, 41, 41)
		assert.Equal(t, []int{37, 38, 39, 40, 41}, nav.Pages)
		assert.True(t, nav.ShowFirst)
		assert.False(t, nav.ShowLast)
		assert.False(t, nav.HasNext)
	})

	t.Run("few pages", func(t *testing.T) {
		nav := BuildNav(2, 3, 41)
		assert.Equal(t, []int{1, 2, 3}, nav.Pages)
		assert.False(t, nav.ShowFirst)
		assert.False(t, nav.ShowLast)
	})

	t.Run("window capped by batch capacity", func(t *testing.T) {
		nav := BuildNav(41, 60, 41)
		assert.Equal(t, 41, nav.Current)
		assert.Equal(t, []int{37, 38, 39, 40, 41}, nav.Pages)
		assert.False(t, nav.HasNext)
	})

	t.Run("empty listing", func(t *testing.T) {
		nav := BuildNav(1, 0, 41)
		assert.Equal(t, []int{1}, nav.Pages)
		assert.False(t, nav.HasPrev)
		assert.False(t, nav.HasNext)
	})

	t.Run("out of range current clamps", func(t *testing.T) {
		nav := BuildNav(99, 10, 41)
		assert.Equal(t, 10, nav.Current)
	})
}
