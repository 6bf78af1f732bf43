package navigation

// Direction represents movement directions
type Direction string

const (
	DirectionUp       Direction = "up"
	DirectionDown     Direction = "down"
	DirectionLeft     Direction = "left"
	DirectionRight    Direction = "right"
	DirectionPageUp   Direction = "pageup"
	DirectionPageDown Direction = "pagedown"
	DirectionHome     Direction = "home"
	DirectionEnd      Direction = "end"
)

// SelectionMovedEvent is published when keyboard navigation commits a
// new exclusive selection
type SelectionMovedEvent struct {
	OldIndex int
	NewIndex int
}

// ScrollRequestEvent asks the host to bring an item into view with a
// nearest-edge scroll on both axes
type ScrollRequestEvent struct {
	Index int
}
