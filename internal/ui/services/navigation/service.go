package navigation

// Service handles the cursor and the visible window over the filtered rows.
// Only rows inside the window are ever rendered.
type Service struct {
	state   *State
	countFn func() int
}

// NewService creates a new navigation service. countFn reports how many
// rows are currently in the list.
func NewService(countFn func() int) *Service {
	return &Service{
		state: &State{
			ViewportHeight: 20, // updated on first resize
		},
		countFn: countFn,
	}
}

// Cursor returns current cursor position
func (s *Service) Cursor() int {
	return s.state.Cursor
}

// ViewportOffset returns the index of the first visible row
func (s *Service) ViewportOffset() int {
	return s.state.ViewportOffset
}

// ViewportHeight returns how many rows fit in the window
func (s *Service) ViewportHeight() int {
	return s.state.ViewportHeight
}

// SetViewportHeight updates the window size
func (s *Service) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	s.state.ViewportHeight = height
	s.Sync()
}

// VisibleRange returns the [from, to) row indices inside the window
func (s *Service) VisibleRange() (int, int) {
	count := s.count()
	from := s.state.ViewportOffset
	to := from + s.state.ViewportHeight
	if to > count {
		to = count
	}
	if from > to {
		from = to
	}
	return from, to
}

// Navigate moves the cursor in a direction
func (s *Service) Navigate(direction Direction) {
	if s.count() == 0 {
		return
	}

	switch direction {
	case DirectionUp:
		s.MoveToIndex(s.state.Cursor - 1)
	case DirectionDown:
		s.MoveToIndex(s.state.Cursor + 1)
	case DirectionPageUp:
		s.MoveToIndex(s.state.Cursor - s.pageSize())
	case DirectionPageDown:
		s.MoveToIndex(s.state.Cursor + s.pageSize())
	case DirectionHome:
		s.MoveToIndex(0)
	case DirectionEnd:
		s.MoveToIndex(s.count() - 1)
	}
}

// MoveToIndex moves cursor to specific index and scrolls it into view
func (s *Service) MoveToIndex(index int) {
	s.state.Cursor = s.clampIndex(index)
	s.ensureVisible()
}

// ScrollBy moves the window by delta rows without changing the list
// contents. The cursor is dragged along so it stays on screen.
func (s *Service) ScrollBy(delta int) {
	s.state.ViewportOffset = s.clampOffset(s.state.ViewportOffset + delta)

	from, to := s.VisibleRange()
	if to == from {
		return
	}
	if s.state.Cursor < from {
		s.state.Cursor = from
	} else if s.state.Cursor >= to {
		s.state.Cursor = to - 1
	}
}

// Sync re-clamps the cursor and window after the row count changed
func (s *Service) Sync() {
	s.state.Cursor = s.clampIndex(s.state.Cursor)
	s.state.ViewportOffset = s.clampOffset(s.state.ViewportOffset)
	s.ensureVisible()
}

// Reset moves the cursor and window back to the top
func (s *Service) Reset() {
	s.state.Cursor = 0
	s.state.ViewportOffset = 0
}

func (s *Service) count() int {
	if s.countFn == nil {
		return 0
	}
	return s.countFn()
}

func (s *Service) pageSize() int {
	if s.state.ViewportHeight > 1 {
		return s.state.ViewportHeight - 1
	}
	return 1
}

func (s *Service) clampIndex(index int) int {
	maxIndex := s.count() - 1
	if index > maxIndex {
		index = maxIndex
	}
	if index < 0 {
		return 0
	}
	return index
}

func (s *Service) clampOffset(offset int) int {
	maxOffset := s.count() - s.state.ViewportHeight
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		return 0
	}
	return offset
}

func (s *Service) ensureVisible() {
	if s.state.Cursor < s.state.ViewportOffset {
		s.state.ViewportOffset = s.state.Cursor
	} else if s.state.Cursor >= s.state.ViewportOffset+s.state.ViewportHeight {
		s.state.ViewportOffset = s.state.Cursor - s.state.ViewportHeight + 1
	}
}
