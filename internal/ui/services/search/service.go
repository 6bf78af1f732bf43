package search

import (
	"log"
	"strings"

	"selectbox/internal/ui/services/events"
)

// Service matches children by label for the jump prompt. Matching is a
// case-insensitive substring test; navigation between matches goes
// through the host's programmatic setter, so no change events fire.
type Service struct {
	state      *State
	bus        events.EventBus
	lenFn      LenFunc
	labelFn    LabelFunc
	navigateFn NavigateFunc
}

// NewService creates a new search service
func NewService(bus events.EventBus) *Service {
	return &Service{
		state: &State{},
		bus:   bus,
	}
}

// SetQueryFunctions wires the service to the live child collection
func (s *Service) SetQueryFunctions(lenFn LenFunc, labelFn LabelFunc) {
	s.lenFn = lenFn
	s.labelFn = labelFn
}

// SetNavigateFunction sets the function used to jump to a match
func (s *Service) SetNavigateFunction(fn NavigateFunc) {
	s.navigateFn = fn
}

// StartSearch computes the matches for a query and jumps to the first
// one. An empty query clears the search.
func (s *Service) StartSearch(query string) {
	s.state.Query = query
	s.bus.Publish(SearchStartedEvent{Query: query})

	if query == "" {
		s.clearSearch()
		return
	}

	s.performSearch()
	s.navigateToCurrentMatch()
}

// ClearSearch clears the current search
func (s *Service) ClearSearch() {
	s.clearSearch()
}

// NavigateNext moves to the next match, wrapping at the end
func (s *Service) NavigateNext() {
	if len(s.state.Matches) == 0 {
		return
	}

	old := s.state.Matches[s.state.CurrentMatch]
	s.state.CurrentMatch = (s.state.CurrentMatch + 1) % len(s.state.Matches)
	s.navigateToCurrentMatch()

	s.bus.Publish(SearchNavigatedEvent{
		OldIndex: old,
		NewIndex: s.state.Matches[s.state.CurrentMatch],
	})
}

// NavigatePrevious moves to the previous match, wrapping at the start
func (s *Service) NavigatePrevious() {
	if len(s.state.Matches) == 0 {
		return
	}

	old := s.state.Matches[s.state.CurrentMatch]
	s.state.CurrentMatch--
	if s.state.CurrentMatch < 0 {
		s.state.CurrentMatch = len(s.state.Matches) - 1
	}
	s.navigateToCurrentMatch()

	s.bus.Publish(SearchNavigatedEvent{
		OldIndex: old,
		NewIndex: s.state.Matches[s.state.CurrentMatch],
	})
}

// Query returns the current search query
func (s *Service) Query() string {
	return s.state.Query
}

// MatchCount returns the number of matches
func (s *Service) MatchCount() int {
	return len(s.state.Matches)
}

// CurrentMatch returns the child index of the current match, or -1
func (s *Service) CurrentMatch() int {
	if len(s.state.Matches) == 0 {
		return -1
	}
	return s.state.Matches[s.state.CurrentMatch]
}

// IsMatch reports whether a child index is among the matches
func (s *Service) IsMatch(index int) bool {
	for _, match := range s.state.Matches {
		if match == index {
			return true
		}
	}
	return false
}

// ShouldHighlight reports whether a label matches the active query
func (s *Service) ShouldHighlight(label string) bool {
	if s.state.Query == "" {
		return false
	}
	return strings.Contains(strings.ToLower(label), strings.ToLower(s.state.Query))
}

func (s *Service) performSearch() {
	s.state.Matches = nil
	s.state.CurrentMatch = 0
	if s.lenFn == nil || s.labelFn == nil {
		return
	}

	needle := strings.ToLower(s.state.Query)
	for i := 0; i < s.lenFn(); i++ {
		if strings.Contains(strings.ToLower(s.labelFn(i)), needle) {
			s.state.Matches = append(s.state.Matches, i)
		}
	}

	log.Printf("Search completed for %q: found %d matches", s.state.Query, len(s.state.Matches))

	firstMatch := -1
	if len(s.state.Matches) > 0 {
		firstMatch = s.state.Matches[0]
	}
	s.bus.Publish(SearchCompletedEvent{
		Query:      s.state.Query,
		MatchCount: len(s.state.Matches),
		FirstMatch: firstMatch,
	})
}

func (s *Service) clearSearch() {
	s.state.Query = ""
	s.state.Matches = nil
	s.state.CurrentMatch = 0

	s.bus.Publish(SearchClearedEvent{})
}

func (s *Service) navigateToCurrentMatch() {
	if s.navigateFn == nil || len(s.state.Matches) == 0 {
		return
	}
	s.navigateFn(s.state.Matches[s.state.CurrentMatch])
}
