package coordinator

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selectbox/internal/config"
	"selectbox/internal/domain"
	"selectbox/internal/eventbus"
	"selectbox/internal/items"
	"selectbox/internal/ui/input"
	"selectbox/internal/ui/services/query"
)

// recordingBus delivers synchronously so tests can assert on ordering
// without waiting on the real bus's dispatcher goroutine
type recordingBus struct {
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(event eventbus.DomainEvent) {
	b.events = append(b.events, event)
}

func (b *recordingBus) Subscribe(eventType eventbus.EventType, handler eventbus.EventHandler) func() {
	return func() {}
}

func (b *recordingBus) types() []eventbus.EventType {
	var out []eventbus.EventType
	for _, e := range b.events {
		out = append(out, e.Type())
	}
	return out
}

func newFixture(labels ...string) (*Control, *recordingBus, *items.MemoryChildStore) {
	store := items.NewMemoryChildStore()
	for _, label := range labels {
		store.Append(domain.NewItem(label))
	}
	bus := &recordingBus{}
	return NewControl(bus, store, config.DefaultConfig()), bus, store
}

func TestKeyboardMovePublishesChangeThenInput(t *testing.T) {
	c, bus, _ := newFixture("a", "b", "c")
	d := input.NewDispatcher()
	c.FocusGained(d)
	bus.events = nil

	claimed := d.Dispatch(tea.KeyMsg{Type: tea.KeyDown})

	assert.True(t, claimed)
	assert.Equal(t, 0, c.SelectedIndex())
	assert.Equal(t, []eventbus.EventType{eventbus.EventChange, eventbus.EventInput}, bus.types())
}

func TestClampedMovePublishesNothing(t *testing.T) {
	c, bus, _ := newFixture("a", "b")
	c.SetSelectedIndex(1)
	d := input.NewDispatcher()
	c.FocusGained(d)
	bus.events = nil

	claimed := d.Dispatch(tea.KeyMsg{Type: tea.KeyDown})

	assert.True(t, claimed, "key is still suppressed at the boundary")
	assert.Empty(t, bus.events)
}

func TestNonNavigationKeyIsNotClaimed(t *testing.T) {
	c, _, _ := newFixture("a", "b")
	d := input.NewDispatcher()
	c.FocusGained(d)

	assert.False(t, d.Dispatch(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}))
}

func TestPointerPressPublishesChangeThenInput(t *testing.T) {
	c, bus, _ := newFixture("a", "b", "c")
	c.SetResolveFunction(func(x, y int) int { return y })
	bus.events = nil

	c.HandlePress(0, 1, false, false)

	assert.Equal(t, 1, c.SelectedIndex())
	assert.Equal(t, []eventbus.EventType{eventbus.EventChange, eventbus.EventInput}, bus.types())
}

func TestPropertySettersPublishNothing(t *testing.T) {
	c, bus, store := newFixture("a", "b", "c")

	c.SetSelectedIndex(2)
	c.SetSelectedChild(store.At(0))
	c.SetSelectedIndex(-1)

	assert.Empty(t, bus.events, "programmatic assignment stays silent")
}

func TestSetSelectedIndexOutOfRangeEmptiesSelection(t *testing.T) {
	c, _, _ := newFixture("a", "b", "c")
	c.SetSelectedIndex(1)

	c.SetSelectedIndex(5)

	assert.Equal(t, -1, c.SelectedIndex())
	assert.Nil(t, c.SelectedChild())
}

func TestSetSelectedChildIgnoresNonChild(t *testing.T) {
	c, _, store := newFixture("a", "b")
	c.SetSelectedIndex(1)

	c.SetSelectedChild(domain.NewItem("stranger"))

	assert.Equal(t, 1, c.SelectedIndex())
	assert.Equal(t, store.At(1), c.SelectedChild())
}

func TestSelectedChildrenAreInIndexOrder(t *testing.T) {
	c, _, store := newFixture("a", "b", "c", "d")
	c.SetMultiple(true)
	c.SetResolveFunction(func(x, y int) int { return y })
	c.HandlePress(0, 3, true, false)
	c.HandlePress(0, 1, true, false)

	selected := c.SelectedChildren()

	require.Len(t, selected, 2)
	assert.Equal(t, store.At(1), selected[0])
	assert.Equal(t, store.At(3), selected[1])
}

func TestFocusAttachIsIdempotent(t *testing.T) {
	c, _, _ := newFixture("a")
	d := input.NewDispatcher()

	c.FocusGained(d)
	c.FocusGained(d)

	assert.True(t, c.Focused())
	assert.Equal(t, 1, d.HandlerCount())
}

func TestFocusLossDetachesExactlyOnce(t *testing.T) {
	c, bus, _ := newFixture("a")
	d := input.NewDispatcher()
	c.FocusGained(d)
	bus.events = nil

	c.FocusLost()
	c.FocusLost()

	assert.False(t, c.Focused())
	assert.Equal(t, 0, d.HandlerCount())
	assert.Equal(t, []eventbus.EventType{eventbus.EventFocusLost}, bus.types())

	// A fresh focus cycle attaches again
	c.FocusGained(d)
	assert.Equal(t, 1, d.HandlerCount())
}

func TestKeysIgnoredAfterFocusLoss(t *testing.T) {
	c, bus, _ := newFixture("a", "b")
	d := input.NewDispatcher()
	c.FocusGained(d)
	c.FocusLost()
	bus.events = nil

	claimed := d.Dispatch(tea.KeyMsg{Type: tea.KeyDown})

	assert.False(t, claimed)
	assert.Equal(t, -1, c.SelectedIndex())
	assert.Empty(t, bus.events)
}

func TestAdoptInitialSelection(t *testing.T) {
	c, bus, store := newFixture("a", "b", "c", "d")
	store.At(2).SetAttr(c.MarkerName(), "")

	c.AdoptInitialSelection([]int{3})

	// Single mode keeps only the lowest marked index
	assert.Equal(t, 2, c.SelectedIndex())
	assert.Equal(t, []eventbus.EventType{eventbus.EventSelectionAdopted}, bus.types())
}

func TestAdoptInitialSelectionKeepsAllInMultiMode(t *testing.T) {
	c, _, _ := newFixture("a", "b", "c", "d")
	c.SetMultiple(true)

	c.AdoptInitialSelection([]int{1, 3, 9})

	assert.Equal(t, []int{1, 3}, c.Selection.SelectedIndices(), "out-of-range index skipped")
}

func TestSetMultiplePublishesModeAndConfigEvents(t *testing.T) {
	c, bus, _ := newFixture("a")

	c.SetMultiple(true)
	c.SetMultiple(true)

	assert.Equal(t, []eventbus.EventType{eventbus.EventModeChanged, eventbus.EventConfigChanged}, bus.types(), "repeat assignment is a no-op")
}

func TestDisablingMultipleCollapsesSelection(t *testing.T) {
	c, _, _ := newFixture("a", "b", "c")
	c.SetMultiple(true)
	c.SetResolveFunction(func(x, y int) int { return y })
	c.HandlePress(0, 1, true, false)
	c.HandlePress(0, 2, true, false)

	c.SetMultiple(false)

	assert.Equal(t, []int{1}, c.Selection.SelectedIndices())
}

func TestPageNavigationThroughLayout(t *testing.T) {
	labels := make([]string, 20)
	for i := range labels {
		labels[i] = "item"
	}
	c, _, store := newFixture(labels...)

	layout := query.NewService()
	layout.SetQueryFunction(store.Len)
	layout.SetViewport(5, 40)
	c.SetGeometryFunctions(layout.ItemBounds, layout.VisibleRegion)
	c.SetScrollFunction(layout.ScrollTo)

	c.SetSelectedIndex(0)
	c.Navigation.Navigate("pagedown")

	assert.Equal(t, 5, c.SelectedIndex())
	assert.Equal(t, 1, layout.Offset(), "boundary row scrolled onto the bottom edge")

	// The new selection sits on the bottom edge, so the backward window
	// covers rows 1-5 and row 0 is the boundary
	c.Navigation.Navigate("pageup")
	assert.Equal(t, 0, c.SelectedIndex())
	assert.Equal(t, 0, layout.Offset())
}

func TestLength(t *testing.T) {
	c, _, store := newFixture("a", "b")
	assert.Equal(t, 2, c.Length())

	store.Append(domain.NewItem("c"))
	assert.Equal(t, 3, c.Length(), "length tracks the live collection")
}
