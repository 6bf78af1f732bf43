package items

import (
	"sync"

	"selectbox/internal/domain"
)

// ChildStore is the host's live child collection. Indices are positional
// and shift whenever children are added, removed or reordered; callers
// must not hold on to them across mutations.
type ChildStore interface {
	Len() int
	At(index int) *domain.Item
	IndexOf(item *domain.Item) int
	All() []*domain.Item
	Append(item *domain.Item)
	Insert(index int, item *domain.Item)
	Remove(index int) *domain.Item
}

// MemoryChildStore is an in-memory implementation of ChildStore
type MemoryChildStore struct {
	mu       sync.RWMutex
	children []*domain.Item
}

// NewMemoryChildStore creates a new memory-based child store
func NewMemoryChildStore() *MemoryChildStore {
	return &MemoryChildStore{}
}

func (s *MemoryChildStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.children)
}

func (s *MemoryChildStore) At(index int) *domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.children) {
		return nil
	}
	return s.children[index]
}

func (s *MemoryChildStore) IndexOf(item *domain.Item) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i, child := range s.children {
		if child == item {
			return i
		}
	}
	return -1
}

func (s *MemoryChildStore) All() []*domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return a copy to prevent external modification
	result := make([]*domain.Item, len(s.children))
	copy(result, s.children)
	return result
}

func (s *MemoryChildStore) Append(item *domain.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.children = append(s.children, item)
}

func (s *MemoryChildStore) Insert(index int, item *domain.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 {
		index = 0
	}
	if index > len(s.children) {
		index = len(s.children)
	}
	s.children = append(s.children, nil)
	copy(s.children[index+1:], s.children[index:])
	s.children[index] = item
}

func (s *MemoryChildStore) Remove(index int) *domain.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.children) {
		return nil
	}
	item := s.children[index]
	s.children = append(s.children[:index], s.children[index+1:]...)
	return item
}
