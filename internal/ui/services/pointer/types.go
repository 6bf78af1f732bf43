package pointer

// ResolveFunc maps a press position to the index of the direct child it
// landed on. Presses on an item's decorations resolve to that item;
// presses on the container background or chrome resolve to -1.
type ResolveFunc func(x, y int) int

// SelectionToggledEvent is published when an additive press toggles one
// item without affecting the others
type SelectionToggledEvent struct {
	Index    int
	Selected bool
}

// SelectionReplacedEvent is published when an exclusive press replaces
// the selection
type SelectionReplacedEvent struct {
	Index int
}
