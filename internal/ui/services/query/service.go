package query

import (
	"selectbox/internal/domain"
)

// Service answers layout questions about the child list: where each
// child sits in the host's coordinate space, which part of the list is
// visible, and which child a point hits. Bounds are computed from the
// current viewport on every call; nothing is cached across events.
type Service struct {
	offset int // index of the first visible row
	height int // visible rows
	width  int // content width in cells

	lenFn func() int
}

// NewService creates a new layout query service
func NewService() *Service {
	return &Service{height: 20, width: 80}
}

// SetQueryFunction sets the function to query the child count
func (s *Service) SetQueryFunction(fn func() int) {
	s.lenFn = fn
}

// SetViewport updates the visible window dimensions
func (s *Service) SetViewport(height, width int) {
	if height < 1 {
		height = 1
	}
	if width < 1 {
		width = 1
	}
	s.height = height
	s.width = width
	s.clampOffset()
}

// Offset returns the index of the first visible row
func (s *Service) Offset() int {
	return s.offset
}

// Height returns the number of visible rows
func (s *Service) Height() int {
	return s.height
}

// ItemBounds returns the rectangle of the child at an index, one row
// per child, in host coordinates
func (s *Service) ItemBounds(index int) domain.Rect {
	return domain.Rect{X: 0, Y: index, Width: s.width, Height: 1}
}

// VisibleRegion returns the rectangle of the visible window in host
// coordinates
func (s *Service) VisibleRegion() domain.Rect {
	return domain.Rect{X: 0, Y: s.offset, Width: s.width, Height: s.height}
}

// HitTest maps a point relative to the list origin to a child index.
// Points on the background or outside the window resolve to -1.
func (s *Service) HitTest(x, y int) int {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return -1
	}
	index := s.offset + y
	if index >= s.length() {
		return -1
	}
	return index
}

// ScrollTo brings a row into view with a nearest-edge adjustment
func (s *Service) ScrollTo(index int) {
	if index < 0 || index >= s.length() {
		return
	}
	if index < s.offset {
		s.offset = index
	} else if index >= s.offset+s.height {
		s.offset = index - s.height + 1
	}
}

// ScrollBy moves the visible window without touching the selection
func (s *Service) ScrollBy(delta int) {
	s.offset += delta
	s.clampOffset()
}

func (s *Service) clampOffset() {
	if max := s.length() - s.height; s.offset > max {
		s.offset = max
	}
	if s.offset < 0 {
		s.offset = 0
	}
}

func (s *Service) length() int {
	if s.lenFn == nil {
		return 0
	}
	return s.lenFn()
}
