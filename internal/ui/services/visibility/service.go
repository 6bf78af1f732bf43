package visibility

import (
	"selectbox/internal/domain"
)

// BoundsFunc returns the rectangle of the child at an index, computed
// from the current layout at call time. Bounds are never cached here.
type BoundsFunc func(index int) domain.Rect

// RegionFunc returns the control's visible-region rectangle.
type RegionFunc func() domain.Rect

// LenFunc returns the current child count.
type LenFunc func() int

// Service answers page-navigation queries from geometry snapshots taken
// at the moment of the key press. It finds the first neighbor of the
// reference item that would fall outside one "page window": the visible
// region translated so its near edge lines up with the reference item.
type Service struct {
	lenFn    LenFunc
	boundsFn BoundsFunc
	regionFn RegionFunc
}

// NewService creates a new visibility service
func NewService() *Service {
	return &Service{}
}

// SetQueryFunctions sets the geometry query functions
func (s *Service) SetQueryFunctions(lenFn LenFunc, boundsFn BoundsFunc, regionFn RegionFunc) {
	s.lenFn = lenFn
	s.boundsFn = boundsFn
	s.regionFn = regionFn
}

// NextPageBoundary scans items after selectedIndex in increasing order
// and returns the first whose rectangle escapes the forward-shifted page
// window. Returns the last valid index if nothing escapes, and -1 when
// selectedIndex is -1.
func (s *Service) NextPageBoundary(selectedIndex int) int {
	if selectedIndex == -1 || s.lenFn == nil {
		return -1
	}
	length := s.lenFn()

	ref := s.boundsFn(selectedIndex)
	region := s.regionFn()
	// Shift the region forward so its top/left edge sits on the
	// reference item's top/left edge
	window := region.Translate(ref.Left()-region.Left(), ref.Top()-region.Top())

	for i := selectedIndex + 1; i < length; i++ {
		if !window.Contains(s.boundsFn(i)) {
			return i
		}
	}
	return length - 1
}

// PreviousPageBoundary is the symmetric scan in decreasing order using
// the backward-shifted window; the window's bottom/right edge sits on
// the reference item's bottom/right edge. Returns 0 if nothing escapes,
// and -1 when selectedIndex is -1.
func (s *Service) PreviousPageBoundary(selectedIndex int) int {
	if selectedIndex == -1 || s.lenFn == nil {
		return -1
	}

	ref := s.boundsFn(selectedIndex)
	region := s.regionFn()
	window := region.Translate(ref.Right()-region.Right(), ref.Bottom()-region.Bottom())

	for i := selectedIndex - 1; i >= 0; i-- {
		if !window.Contains(s.boundsFn(i)) {
			return i
		}
	}
	return 0
}
