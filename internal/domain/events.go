package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventChange           EventType = "Change"
	EventInput            EventType = "Input"
	EventFocusGained      EventType = "FocusGained"
	EventFocusLost        EventType = "FocusLost"
	EventChildrenChanged  EventType = "ChildrenChanged"
	EventModeChanged      EventType = "ModeChanged"
	EventSelectionAdopted EventType = "SelectionAdopted"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
	EventConfigChanged    EventType = "ConfigChanged"
	EventError            EventType = "Error"
	EventAppReady         EventType = "AppReady"
	EventScanStarted      EventType = "ScanStarted"
	EventItemDiscovered   EventType = "ItemDiscovered"
	EventScanCompleted    EventType = "ScanCompleted"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ChangeEvent is emitted when a user-driven action changes the selection.
// It carries no payload; observers read the selection from the control.
type ChangeEvent struct{}

func (e ChangeEvent) Type() EventType { return EventChange }

// InputEvent accompanies every ChangeEvent, mirroring the paired
// change/input notification of native choice controls.
type InputEvent struct{}

func (e InputEvent) Type() EventType { return EventInput }

// FocusGainedEvent is emitted when the control acquires input focus
type FocusGainedEvent struct{}

func (e FocusGainedEvent) Type() EventType { return EventFocusGained }

// FocusLostEvent is emitted when the control loses input focus
type FocusLostEvent struct{}

func (e FocusLostEvent) Type() EventType { return EventFocusLost }

// ChildrenChangedEvent is emitted when items are added or removed
type ChildrenChangedEvent struct {
	Length int
}

func (e ChildrenChangedEvent) Type() EventType { return EventChildrenChanged }

// ModeChangedEvent is emitted when multi-selection mode is toggled
type ModeChangedEvent struct {
	Multiple bool
}

func (e ModeChangedEvent) Type() EventType { return EventModeChanged }

// SelectionAdoptedEvent is emitted once at startup when markers already
// present on children are adopted as the initial selection
type SelectionAdoptedEvent struct {
	Indices []int
}

func (e SelectionAdoptedEvent) Type() EventType { return EventSelectionAdopted }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Multiple   bool
	MarkerName string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when configuration needs to be saved
type ConfigChangedEvent struct {
	Multiple bool
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// AppReadyEvent is emitted when the app is fully initialized and ready
type AppReadyEvent struct {
	ItemCount int
}

func (e AppReadyEvent) Type() EventType { return EventAppReady }

// ScanStartedEvent is emitted when a directory scan begins
type ScanStartedEvent struct {
	Root string
}

func (e ScanStartedEvent) Type() EventType { return EventScanStarted }

// ItemDiscoveredEvent is emitted for each entry found during a scan
type ItemDiscoveredEvent struct {
	Label string
	Value string
}

func (e ItemDiscoveredEvent) Type() EventType { return EventItemDiscovered }

// ScanCompletedEvent is emitted when a directory scan finishes
type ScanCompletedEvent struct {
	ItemsFound int
}

func (e ScanCompletedEvent) Type() EventType { return EventScanCompleted }
