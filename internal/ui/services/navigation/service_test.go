package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selectbox/internal/domain"
	"selectbox/internal/ui/services/events"
	"selectbox/internal/ui/services/selection"
	"selectbox/internal/ui/services/visibility"
)

type fixture struct {
	nav      *Service
	sel      *selection.Service
	children []*domain.Item

	moved   []SelectionMovedEvent
	scrolls []ScrollRequestEvent
}

// newFixture builds the controller over n one-row items with a visible
// window of height rows
func newFixture(n, height int) *fixture {
	f := &fixture{}
	for i := 0; i < n; i++ {
		f.children = append(f.children, domain.NewItem("item"))
	}

	lenFn := func() int { return len(f.children) }
	itemFn := func(i int) *domain.Item {
		if i < 0 || i >= len(f.children) {
			return nil
		}
		return f.children[i]
	}
	indexFn := func(item *domain.Item) int {
		for i, child := range f.children {
			if child == item {
				return i
			}
		}
		return -1
	}

	f.sel = selection.NewService("data-selected")
	f.sel.SetQueryFunctions(lenFn, itemFn, indexFn)

	vis := visibility.NewService()
	vis.SetQueryFunctions(
		lenFn,
		func(i int) domain.Rect { return domain.Rect{X: 0, Y: i, Width: 40, Height: 1} },
		func() domain.Rect { return domain.Rect{X: 0, Y: 0, Width: 40, Height: height} },
	)

	bus := events.NewBus()
	bus.Subscribe("navigation.SelectionMovedEvent", func(e interface{}) {
		f.moved = append(f.moved, e.(SelectionMovedEvent))
	})
	bus.Subscribe("navigation.ScrollRequestEvent", func(e interface{}) {
		f.scrolls = append(f.scrolls, e.(ScrollRequestEvent))
	})

	f.nav = NewService(bus, f.sel, vis)
	f.nav.SetQueryFunction(lenFn)
	return f
}

func TestDownFromEmptySelectionSelectsFirst(t *testing.T) {
	f := newFixture(5, 3)

	claimed := f.nav.Navigate(DirectionDown)

	assert.True(t, claimed)
	assert.Equal(t, 0, f.sel.SelectedIndex())
	require.Len(t, f.moved, 1, "exactly one notification")
	assert.Equal(t, SelectionMovedEvent{OldIndex: -1, NewIndex: 0}, f.moved[0])
}

func TestDownClampsAtLastIndex(t *testing.T) {
	f := newFixture(3, 3)

	for i := 0; i < 10; i++ {
		f.nav.Navigate(DirectionDown)
		assert.Less(t, f.sel.SelectedIndex(), 3)
	}

	assert.Equal(t, 2, f.sel.SelectedIndex())
	assert.Len(t, f.moved, 3, "no notification once clamped")
}

func TestUpClampsAtZero(t *testing.T) {
	f := newFixture(3, 3)
	f.sel.SetExclusive(0)

	claimed := f.nav.Navigate(DirectionUp)

	assert.True(t, claimed, "key stays claimed without a transition")
	assert.Equal(t, 0, f.sel.SelectedIndex())
	assert.Empty(t, f.moved)
}

func TestUpFromEmptySelectionSelectsFirst(t *testing.T) {
	f := newFixture(3, 3)

	f.nav.Navigate(DirectionUp)

	assert.Equal(t, 0, f.sel.SelectedIndex())
}

func TestHomeAndEnd(t *testing.T) {
	f := newFixture(10, 3)
	f.sel.SetExclusive(4)

	f.nav.Navigate(DirectionHome)
	assert.Equal(t, 0, f.sel.SelectedIndex())

	f.nav.Navigate(DirectionEnd)
	assert.Equal(t, 9, f.sel.SelectedIndex())
}

func TestPageDownJumpsOneScreenful(t *testing.T) {
	f := newFixture(20, 5)
	f.sel.SetExclusive(0)

	f.nav.Navigate(DirectionPageDown)

	// Rows 0-4 fit in the forward window; row 5 is the boundary
	assert.Equal(t, 5, f.sel.SelectedIndex())
	require.Len(t, f.scrolls, 1)
	assert.Equal(t, 5, f.scrolls[0].Index)
}

func TestPageNavigationWithoutSelectionIsIgnored(t *testing.T) {
	f := newFixture(20, 5)

	assert.True(t, f.nav.Navigate(DirectionPageDown))
	assert.True(t, f.nav.Navigate(DirectionPageUp))

	assert.Equal(t, -1, f.sel.SelectedIndex())
	assert.Empty(t, f.moved)
	assert.Empty(t, f.scrolls)
}

func TestPageUpStopsAtZero(t *testing.T) {
	f := newFixture(20, 5)
	f.sel.SetExclusive(2)

	f.nav.Navigate(DirectionPageUp)

	assert.Equal(t, 0, f.sel.SelectedIndex())
}

func TestUnknownDirectionIsNotClaimed(t *testing.T) {
	f := newFixture(3, 3)

	assert.False(t, f.nav.Navigate(Direction("select-all")))
	assert.Empty(t, f.moved)
}

func TestEmptyListClaimsWithoutTransition(t *testing.T) {
	f := newFixture(0, 3)

	assert.True(t, f.nav.Navigate(DirectionDown))
	assert.True(t, f.nav.Navigate(DirectionHome))
	assert.Empty(t, f.moved)
	assert.Empty(t, f.scrolls)
}

func TestNavigationIsExclusiveEvenInMultiMode(t *testing.T) {
	f := newFixture(5, 3)
	f.sel.SetMultiple(true)
	f.sel.Select(f.children[1])
	f.sel.Select(f.children[3])

	f.nav.Navigate(DirectionDown)

	// Lowest selected index was 1; down moves to 2 and drops the rest
	assert.Equal(t, []int{2}, f.sel.SelectedIndices())
}
