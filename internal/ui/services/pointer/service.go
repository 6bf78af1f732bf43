package pointer

import (
	"selectbox/internal/ui/services/events"
	"selectbox/internal/ui/services/selection"
)

// Service handles pointer-driven selection: additive toggles when the
// press carries the multi-select modifier, exclusive selection
// otherwise.
type Service struct {
	bus       events.EventBus
	selection *selection.Service
	resolveFn ResolveFunc
}

// NewService creates a new pointer service
func NewService(bus events.EventBus, sel *selection.Service) *Service {
	return &Service{
		bus:       bus,
		selection: sel,
	}
}

// SetResolveFunction sets the press-position resolver
func (s *Service) SetResolveFunction(fn ResolveFunc) {
	s.resolveFn = fn
}

// HandlePress processes a pointer press at the given position. claimed
// reports whether another handler already consumed the event; such
// presses are left alone. Returns true when the press changed the
// selection.
func (s *Service) HandlePress(x, y int, additive bool, claimed bool) bool {
	if claimed || s.resolveFn == nil {
		return false
	}

	index := s.resolveFn(x, y)
	if index < 0 {
		return false
	}
	item := s.selection.ItemAt(index)
	if item == nil {
		return false
	}

	if s.selection.Multiple() && additive {
		s.selection.Toggle(item)
		s.bus.Publish(SelectionToggledEvent{
			Index:    index,
			Selected: s.selection.IsSelected(item),
		})
		return true
	}

	// Re-pressing the sole selection is a no-op, not a deselect
	if current := s.selection.SelectedIndices(); len(current) == 1 && current[0] == index {
		return false
	}

	s.selection.SetExclusive(index)
	s.bus.Publish(SelectionReplacedEvent{Index: index})
	return true
}
