package search

// State holds the search state
type State struct {
	Query        string
	Matches      []int // child indices, ascending
	CurrentMatch int   // position within Matches
}

// LenFunc returns the number of children
type LenFunc func() int

// LabelFunc returns the label of the child at an index
type LabelFunc func(index int) string

// NavigateFunc moves the host selection to a child index
type NavigateFunc func(index int)

// Events published by the search service

// SearchStartedEvent is published when a new query begins
type SearchStartedEvent struct {
	Query string
}

// SearchCompletedEvent is published after the matches are computed
type SearchCompletedEvent struct {
	Query      string
	MatchCount int
	FirstMatch int // -1 when nothing matched
}

// SearchNavigatedEvent is published when n/N moves between matches
type SearchNavigatedEvent struct {
	OldIndex int
	NewIndex int
}

// SearchClearedEvent is published when the search is dismissed
type SearchClearedEvent struct{}
