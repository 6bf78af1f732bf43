package visibility

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"selectbox/internal/domain"
)

func newFixture(region domain.Rect, bounds []domain.Rect) *Service {
	s := NewService()
	s.SetQueryFunctions(
		func() int { return len(bounds) },
		func(i int) domain.Rect { return bounds[i] },
		func() domain.Rect { return region },
	)
	return s
}

func TestNextPageBoundaryFindsFirstEscapingItem(t *testing.T) {
	region := domain.Rect{X: 0, Y: 0, Width: 100, Height: 100}
	bounds := []domain.Rect{
		{X: 10, Y: 10, Width: 10, Height: 10},   // reference, inside region
		{X: 30, Y: 30, Width: 10, Height: 10},   // inside the shifted window
		{X: 150, Y: 150, Width: 10, Height: 10}, // escapes
	}
	s := newFixture(region, bounds)

	assert.Equal(t, 2, s.NextPageBoundary(0))
}

func TestNextPageBoundaryFallsBackToLastIndex(t *testing.T) {
	region := domain.Rect{X: 0, Y: 0, Width: 100, Height: 100}
	bounds := []domain.Rect{
		{X: 0, Y: 0, Width: 10, Height: 10},
		{X: 0, Y: 20, Width: 10, Height: 10},
		{X: 0, Y: 40, Width: 10, Height: 10},
	}
	s := newFixture(region, bounds)

	assert.Equal(t, 2, s.NextPageBoundary(0))
}

func TestNextPageBoundaryWithNoSelection(t *testing.T) {
	s := newFixture(domain.Rect{Width: 100, Height: 100}, []domain.Rect{{Width: 10, Height: 10}})

	assert.Equal(t, -1, s.NextPageBoundary(-1))
	assert.Equal(t, -1, s.PreviousPageBoundary(-1))
}

func TestForwardWindowAlignsNearEdgeWithReference(t *testing.T) {
	// Region rows 0-9; reference occupies row 4. The forward window
	// covers rows 4-13, so row 13 is still contained and row 14 is the
	// boundary.
	region := domain.Rect{X: 0, Y: 0, Width: 50, Height: 10}
	var bounds []domain.Rect
	for i := 0; i < 20; i++ {
		bounds = append(bounds, domain.Rect{X: 0, Y: i, Width: 50, Height: 1})
	}
	s := newFixture(region, bounds)

	assert.Equal(t, 14, s.NextPageBoundary(4))
}

func TestBackwardWindowAlignsFarEdgeWithReference(t *testing.T) {
	// The backward window's bottom edge sits on the reference item's
	// bottom edge: for a reference in row 14 and a 10-row region, rows
	// 5-14 are contained and row 4 is the boundary.
	region := domain.Rect{X: 0, Y: 10, Width: 50, Height: 10}
	var bounds []domain.Rect
	for i := 0; i < 20; i++ {
		bounds = append(bounds, domain.Rect{X: 0, Y: i, Width: 50, Height: 1})
	}
	s := newFixture(region, bounds)

	assert.Equal(t, 4, s.PreviousPageBoundary(14))
}

func TestPreviousPageBoundaryFallsBackToZero(t *testing.T) {
	region := domain.Rect{X: 0, Y: 0, Width: 100, Height: 100}
	bounds := []domain.Rect{
		{X: 0, Y: 0, Width: 10, Height: 10},
		{X: 0, Y: 20, Width: 10, Height: 10},
		{X: 0, Y: 40, Width: 10, Height: 10},
	}
	s := newFixture(region, bounds)

	assert.Equal(t, 0, s.PreviousPageBoundary(2))
}

func TestHorizontalEscapeIsDetected(t *testing.T) {
	// Items laid out in a row; the window shifts on both axes, so an
	// item past the right edge of the shifted window escapes
	region := domain.Rect{X: 0, Y: 0, Width: 100, Height: 20}
	bounds := []domain.Rect{
		{X: 0, Y: 0, Width: 30, Height: 10},
		{X: 40, Y: 0, Width: 30, Height: 10},
		{X: 120, Y: 0, Width: 30, Height: 10},
	}
	s := newFixture(region, bounds)

	assert.Equal(t, 2, s.NextPageBoundary(0))
}
