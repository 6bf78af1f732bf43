package navigation

import (
	"selectbox/internal/ui/services/events"
	"selectbox/internal/ui/services/selection"
	"selectbox/internal/ui/services/visibility"
)

// Service handles all keyboard navigation logic. Navigation is always
// exclusive-selection, even when multi-selection mode is enabled for
// pointer input.
type Service struct {
	bus        events.EventBus
	selection  *selection.Service
	visibility *visibility.Service
	lenFn      func() int
}

// NewService creates a new navigation service
func NewService(bus events.EventBus, sel *selection.Service, vis *visibility.Service) *Service {
	return &Service{
		bus:        bus,
		selection:  sel,
		visibility: vis,
	}
}

// SetQueryFunction sets the function to query the child count
func (s *Service) SetQueryFunction(fn func() int) {
	s.lenFn = fn
}

// Navigate handles navigation in a direction. Returns true when the key
// was claimed so the host can suppress its default handling; a claimed
// key does not imply the selection moved.
func (s *Service) Navigate(direction Direction) bool {
	length := s.length()
	if length == 0 {
		// Still claim the key so an empty control swallows navigation
		return true
	}

	current := s.selection.SelectedIndex()
	target := current

	switch direction {
	case DirectionHome:
		target = 0
	case DirectionEnd:
		target = length - 1
	case DirectionPageUp:
		target = s.visibility.PreviousPageBoundary(current)
		if target == -1 {
			return true
		}
	case DirectionPageDown:
		target = s.visibility.NextPageBoundary(current)
		if target == -1 {
			return true
		}
	case DirectionDown, DirectionRight:
		target = s.clampIndex(current + 1)
	case DirectionUp, DirectionLeft:
		target = s.clampIndex(current - 1)
	default:
		return false
	}

	if target == current {
		// No transition, no redundant notification
		return true
	}

	s.selection.SetExclusive(target)
	s.bus.Publish(ScrollRequestEvent{Index: target})
	s.bus.Publish(SelectionMovedEvent{OldIndex: current, NewIndex: target})
	return true
}

// clampIndex keeps an index inside [0, length)
func (s *Service) clampIndex(index int) int {
	if index < 0 {
		return 0
	}
	if max := s.length() - 1; index > max {
		return max
	}
	return index
}

func (s *Service) length() int {
	if s.lenFn == nil {
		return 0
	}
	return s.lenFn()
}
