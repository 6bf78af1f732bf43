package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"selectbox/internal/ui/services/navigation"
)

// DirectionForKey maps a key message to a navigation direction. The
// second return value is false for keys navigation does not own; those
// keys stay unclaimed and fall through to the host.
func DirectionForKey(msg tea.KeyMsg) (navigation.Direction, bool) {
	switch msg.Type {
	case tea.KeyHome:
		return navigation.DirectionHome, true
	case tea.KeyEnd:
		return navigation.DirectionEnd, true
	case tea.KeyPgUp:
		return navigation.DirectionPageUp, true
	case tea.KeyPgDown:
		return navigation.DirectionPageDown, true
	case tea.KeyUp:
		return navigation.DirectionUp, true
	case tea.KeyDown:
		return navigation.DirectionDown, true
	case tea.KeyLeft:
		return navigation.DirectionLeft, true
	case tea.KeyRight:
		return navigation.DirectionRight, true
	}
	return "", false
}
