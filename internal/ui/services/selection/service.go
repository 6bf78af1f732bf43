package selection

import (
	"selectbox/internal/domain"
)

// Service handles selection state. Selection is stored as a marker
// attribute on the items themselves, never in a parallel set, so
// external code can pre-mark items and style off the marker.
type Service struct {
	markerName string
	multiple   bool

	lenFn   LenFunc
	itemFn  ItemFunc
	indexFn IndexFunc
}

// NewService creates a new selection service using the given marker
// attribute name
func NewService(markerName string) *Service {
	return &Service{
		markerName: markerName,
	}
}

// SetQueryFunctions sets the functions used to reach the host's children
func (s *Service) SetQueryFunctions(lenFn LenFunc, itemFn ItemFunc, indexFn IndexFunc) {
	s.lenFn = lenFn
	s.itemFn = itemFn
	s.indexFn = indexFn
}

// MarkerName returns the attribute used to flag selected items
func (s *Service) MarkerName() string {
	return s.markerName
}

// Multiple reports whether multi-selection mode is enabled
func (s *Service) Multiple() bool {
	return s.multiple
}

// SetMultiple toggles multi-selection mode. Leaving multi mode collapses
// the selection to the single item that held the lowest selected index.
func (s *Service) SetMultiple(multiple bool) {
	if s.multiple == multiple {
		return
	}
	s.multiple = multiple
	if !multiple {
		s.Normalize()
	}
}

// IsSelected checks if an item carries the selection marker
func (s *Service) IsSelected(item *domain.Item) bool {
	return item != nil && item.HasAttr(s.markerName)
}

// SelectedIndices returns the indices of all selected items in
// ascending order
func (s *Service) SelectedIndices() []int {
	var selected []int
	for i := 0; i < s.length(); i++ {
		if s.IsSelected(s.item(i)) {
			selected = append(selected, i)
		}
	}
	return selected
}

// SelectedIndex returns the lowest selected index, or -1 when nothing
// is selected
func (s *Service) SelectedIndex() int {
	for i := 0; i < s.length(); i++ {
		if s.IsSelected(s.item(i)) {
			return i
		}
	}
	return -1
}

// Select marks an item selected. In single-selection mode any previous
// selection is cleared first; selection is exclusive, not additive.
func (s *Service) Select(item *domain.Item) {
	if item == nil {
		return
	}
	if !s.multiple {
		for _, idx := range s.SelectedIndices() {
			if other := s.item(idx); other != nil && other != item {
				other.RemoveAttr(s.markerName)
			}
		}
	}
	item.SetAttr(s.markerName, "")
}

// Deselect clears the marker. No-op if the item is not selected.
func (s *Service) Deselect(item *domain.Item) {
	if item == nil {
		return
	}
	item.RemoveAttr(s.markerName)
}

// Toggle flips an item's selection. Only meaningful in multi-selection
// mode; callers gate on Multiple.
func (s *Service) Toggle(item *domain.Item) {
	if item == nil {
		return
	}
	if s.IsSelected(item) {
		s.Deselect(item)
	} else {
		s.Select(item)
	}
}

// ClearAll deselects every currently selected item
func (s *Service) ClearAll() {
	for _, idx := range s.SelectedIndices() {
		if item := s.item(idx); item != nil {
			item.RemoveAttr(s.markerName)
		}
	}
}

// SetExclusive clears all selections, then selects the item at index.
// Out-of-range indices leave the selection empty.
func (s *Service) SetExclusive(index int) {
	s.ClearAll()
	if index < 0 || index >= s.length() {
		return
	}
	if item := s.item(index); item != nil {
		item.SetAttr(s.markerName, "")
	}
}

// Normalize re-applies the single-selection invariant after external
// marker changes, keeping only the lowest selected index. Used when
// adopting markers present on children at startup.
func (s *Service) Normalize() {
	if s.multiple {
		return
	}
	selected := s.SelectedIndices()
	if len(selected) <= 1 {
		return
	}
	for _, idx := range selected[1:] {
		if item := s.item(idx); item != nil {
			item.RemoveAttr(s.markerName)
		}
	}
}

func (s *Service) length() int {
	if s.lenFn == nil {
		return 0
	}
	return s.lenFn()
}

func (s *Service) item(index int) *domain.Item {
	if s.itemFn == nil {
		return nil
	}
	return s.itemFn(index)
}

// ItemAt returns the child at an index, or nil when out of range
func (s *Service) ItemAt(index int) *domain.Item {
	if index < 0 || index >= s.length() {
		return nil
	}
	return s.item(index)
}

// IndexOf returns the index of an item among the host's children, or -1
func (s *Service) IndexOf(item *domain.Item) int {
	if s.indexFn == nil || item == nil {
		return -1
	}
	return s.indexFn(item)
}
