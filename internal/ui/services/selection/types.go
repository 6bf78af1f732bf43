package selection

import "selectbox/internal/domain"

// Query functions wired in by the coordinator. The service never keeps
// its own copy of the child list; every operation re-derives state from
// the host's live children.
type (
	// LenFunc returns the current child count
	LenFunc func() int
	// ItemFunc returns the child at an index, or nil when out of range
	ItemFunc func(index int) *domain.Item
	// IndexFunc returns the index of a child, or -1 for non-children
	IndexFunc func(item *domain.Item) int
)
