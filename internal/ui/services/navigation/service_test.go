package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newNav(count *int, height int) *Service {
	s := NewService(func() int { return *count })
	s.SetViewportHeight(height)
	return s
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		name       string
		count      int
		height     int
		cursor     int
		expectFrom int
		expectTo   int
	}{
		{name: "first page", count: 100, height: 20, cursor: 0, expectFrom: 0, expectTo: 20},
		{name: "cursor past first page", count: 100, height: 20, cursor: 25, expectFrom: 6, expectTo: 26},
		{name: "last row", count: 100, height: 20, cursor: 99, expectFrom: 80, expectTo: 100},
		{name: "fewer rows than window", count: 10, height: 20, cursor: 5, expectFrom: 0, expectTo: 10},
		{name: "empty list", count: 0, height: 20, cursor: 3, expectFrom: 0, expectTo: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count := tt.count
			s := newNav(&count, tt.height)
			s.MoveToIndex(tt.cursor)

			from, to := s.VisibleRange()
			assert.Equal(t, tt.expectFrom, from)
			assert.Equal(t, tt.expectTo, to)
		})
	}
}

func TestNavigateBounds(t *testing.T) {
	count := 5
	s := newNav(&count, 3)

	s.Navigate(DirectionUp)
	assert.Equal(t, 0, s.Cursor())

	s.Navigate(DirectionEnd)
	assert.Equal(t, 4, s.Cursor())
	assert.Equal(t, 2, s.ViewportOffset())

	s.Navigate(DirectionDown)
	assert.Equal(t, 4, s.Cursor())

	s.Navigate(DirectionPageUp)
	assert.Equal(t, 2, s.Cursor())

	s.Navigate(DirectionHome)
	assert.Equal(t, 0, s.Cursor())
	assert.Equal(t, 0, s.ViewportOffset())

	s.Navigate(DirectionPageDown)
	assert.Equal(t, 2, s.Cursor())
}

func TestNavigateOnEmptyList(t *testing.T) {
	count := 0
	s := newNav(&count, 3)

	s.Navigate(DirectionDown)
	s.Navigate(DirectionEnd)
	assert.Equal(t, 0, s.Cursor())
}

func TestScrollByDragsCursor(t *testing.T) {
	count := 50
	s := newNav(&count, 10)

	s.ScrollBy(5)
	assert.Equal(t, 5, s.ViewportOffset())
	assert.Equal(t, 5, s.Cursor())

	s.ScrollBy(100)
	assert.Equal(t, 40, s.ViewportOffset())

	s.ScrollBy(-100)
	assert.Equal(t, 0, s.ViewportOffset())
	assert.Equal(t, 9, s.Cursor())
}

func TestSyncAfterShrink(t *testing.T) {
	count := 50
	s := newNav(&count, 10)
	s.MoveToIndex(45)

	count = 3
	s.Sync()

	assert.Equal(t, 2, s.Cursor())
	assert.Equal(t, 0, s.ViewportOffset())
	from, to := s.VisibleRange()
	assert.Equal(t, 0, from)
	assert.Equal(t, 3, to)
}
