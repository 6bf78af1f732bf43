package coordinator

import (
	"selectbox/internal/config"
	"selectbox/internal/domain"
	"selectbox/internal/eventbus"
	"selectbox/internal/items"
	"selectbox/internal/ui/input"
	"selectbox/internal/ui/services/events"
	"selectbox/internal/ui/services/navigation"
	"selectbox/internal/ui/services/pointer"
	"selectbox/internal/ui/services/selection"
	"selectbox/internal/ui/services/visibility"
)

// Control composes the selection services over the host's live child
// collection and exposes the host-facing property surface. Change and
// input notifications bubble on the application bus only for pointer-
// and keyboard-driven changes, never for the property setters.
type Control struct {
	// Services
	Selection  *selection.Service
	Visibility *visibility.Service
	Navigation *navigation.Service
	Pointer    *pointer.Service

	// Dependencies
	bus   eventbus.EventBus
	uiBus *events.Bus
	store items.ChildStore

	scrollFn    func(index int)
	releaseKeys func()
}

// NewControl creates a control over the given child store
func NewControl(bus eventbus.EventBus, store items.ChildStore, cfg *config.Config) *Control {
	markerName := cfg.MarkerName
	if markerName == "" {
		markerName = config.DefaultMarkerName
	}

	uiBus := events.NewBus()
	sel := selection.NewService(markerName)
	vis := visibility.NewService()

	c := &Control{
		Selection:  sel,
		Visibility: vis,
		Navigation: navigation.NewService(uiBus, sel, vis),
		Pointer:    pointer.NewService(uiBus, sel),
		bus:        bus,
		uiBus:      uiBus,
		store:      store,
	}

	c.Selection.SetMultiple(cfg.Multiple)

	// Wire up service dependencies
	c.wireServices()

	// Subscribe to service events
	c.subscribeToEvents()

	return c
}

// wireServices connects services to the live child collection
func (c *Control) wireServices() {
	lenFn := func() int { return c.store.Len() }

	c.Selection.SetQueryFunctions(lenFn, c.store.At, c.store.IndexOf)
	c.Navigation.SetQueryFunction(lenFn)
}

// subscribeToEvents forwards controller notifications to the host
func (c *Control) subscribeToEvents() {
	// Keyboard navigation committed a new selection
	c.uiBus.Subscribe("navigation.SelectionMovedEvent", func(e interface{}) {
		c.notifyChanged()
	})

	// The new selection should be brought into view
	c.uiBus.Subscribe("navigation.ScrollRequestEvent", func(e interface{}) {
		if ev, ok := e.(navigation.ScrollRequestEvent); ok && c.scrollFn != nil {
			c.scrollFn(ev.Index)
		}
	})

	// Pointer toggled or replaced the selection
	c.uiBus.Subscribe("pointer.SelectionToggledEvent", func(e interface{}) {
		c.notifyChanged()
	})
	c.uiBus.Subscribe("pointer.SelectionReplacedEvent", func(e interface{}) {
		c.notifyChanged()
	})
}

// notifyChanged publishes one change and one input event for a single
// logical selection change
func (c *Control) notifyChanged() {
	c.bus.Publish(eventbus.ChangeEvent{})
	c.bus.Publish(eventbus.InputEvent{})
}

// SetGeometryFunctions wires the on-demand bounds and visible-region
// queries used for page navigation
func (c *Control) SetGeometryFunctions(boundsFn visibility.BoundsFunc, regionFn visibility.RegionFunc) {
	c.Visibility.SetQueryFunctions(func() int { return c.store.Len() }, boundsFn, regionFn)
}

// SetResolveFunction wires the pointer hit-test
func (c *Control) SetResolveFunction(fn pointer.ResolveFunc) {
	c.Pointer.SetResolveFunction(fn)
}

// SetScrollFunction wires the host's bring-into-view scroll
func (c *Control) SetScrollFunction(fn func(index int)) {
	c.scrollFn = fn
}

// AdoptInitialSelection honors markers already present on children plus
// any configured indices, then re-applies the mode invariant
func (c *Control) AdoptInitialSelection(indices []int) {
	for _, idx := range indices {
		if item := c.store.At(idx); item != nil {
			item.SetAttr(c.Selection.MarkerName(), "")
		}
	}
	c.Selection.Normalize()

	if selected := c.Selection.SelectedIndices(); len(selected) > 0 {
		c.bus.Publish(eventbus.SelectionAdoptedEvent{Indices: selected})
	}
}

// FocusGained attaches the control's key handler to the ambient
// dispatcher. Attaching while already focused is a no-op.
func (c *Control) FocusGained(d *input.Dispatcher) {
	if c.releaseKeys != nil {
		return
	}
	c.releaseKeys = d.Attach(c.handleKey)
	c.bus.Publish(eventbus.FocusGainedEvent{})
}

// FocusLost detaches the key handler exactly once
func (c *Control) FocusLost() {
	if c.releaseKeys == nil {
		return
	}
	c.releaseKeys()
	c.releaseKeys = nil
	c.bus.Publish(eventbus.FocusLostEvent{})
}

// Focused reports whether the control currently holds the keyboard
func (c *Control) Focused() bool {
	return c.releaseKeys != nil
}

// handleKey is the single keyboard listener installed while focused
func (c *Control) handleKey(msg input.KeyMsg) bool {
	dir, ok := input.DirectionForKey(msg)
	if !ok {
		return false
	}
	return c.Navigation.Navigate(dir)
}

// HandlePress routes a pointer press into the pointer controller
func (c *Control) HandlePress(x, y int, additive bool, claimed bool) bool {
	return c.Pointer.HandlePress(x, y, additive, claimed)
}

// Length returns the child count
func (c *Control) Length() int {
	return c.store.Len()
}

// SelectedChildren returns the currently selected children in index
// order
func (c *Control) SelectedChildren() []*domain.Item {
	var selected []*domain.Item
	for _, idx := range c.Selection.SelectedIndices() {
		if item := c.store.At(idx); item != nil {
			selected = append(selected, item)
		}
	}
	return selected
}

// SelectedIndex returns the lowest selected index, or -1
func (c *Control) SelectedIndex() int {
	return c.Selection.SelectedIndex()
}

// SetSelectedIndex performs an exclusive selection. Out-of-range values
// leave the selection empty; no events are emitted for programmatic
// assignment.
func (c *Control) SetSelectedIndex(index int) {
	c.Selection.SetExclusive(index)
}

// SelectedChild returns the child at the selected index, or nil
func (c *Control) SelectedChild() *domain.Item {
	idx := c.Selection.SelectedIndex()
	if idx < 0 {
		return nil
	}
	return c.store.At(idx)
}

// SetSelectedChild selects the given child exclusively if it is a
// direct child; otherwise the selection is left unchanged
func (c *Control) SetSelectedChild(item *domain.Item) {
	idx := c.store.IndexOf(item)
	if idx < 0 {
		return
	}
	c.Selection.SetExclusive(idx)
}

// MarkerName returns the selected-attribute name
func (c *Control) MarkerName() string {
	return c.Selection.MarkerName()
}

// Multiple reports whether multi-selection mode is enabled
func (c *Control) Multiple() bool {
	return c.Selection.Multiple()
}

// SetMultiple toggles multi-selection mode; disabling it collapses any
// multi-selection down to its lowest index
func (c *Control) SetMultiple(multiple bool) {
	if c.Selection.Multiple() == multiple {
		return
	}
	c.Selection.SetMultiple(multiple)
	c.bus.Publish(eventbus.ModeChangedEvent{Multiple: multiple})
	c.bus.Publish(eventbus.ConfigChangedEvent{Multiple: multiple})
}
