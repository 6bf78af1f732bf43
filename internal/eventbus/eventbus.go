package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"selectbox/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventChange           = domain.EventChange
	EventInput            = domain.EventInput
	EventFocusGained      = domain.EventFocusGained
	EventFocusLost        = domain.EventFocusLost
	EventChildrenChanged  = domain.EventChildrenChanged
	EventModeChanged      = domain.EventModeChanged
	EventSelectionAdopted = domain.EventSelectionAdopted
	EventConfigLoaded     = domain.EventConfigLoaded
	EventConfigSaved      = domain.EventConfigSaved
	EventConfigChanged    = domain.EventConfigChanged
	EventError            = domain.EventError
	EventAppReady         = domain.EventAppReady
	EventScanStarted      = domain.EventScanStarted
	EventItemDiscovered   = domain.EventItemDiscovered
	EventScanCompleted    = domain.EventScanCompleted
)

// Re-export domain event types
type ChangeEvent = domain.ChangeEvent
type InputEvent = domain.InputEvent
type FocusGainedEvent = domain.FocusGainedEvent
type FocusLostEvent = domain.FocusLostEvent
type ChildrenChangedEvent = domain.ChildrenChangedEvent
type ModeChangedEvent = domain.ModeChangedEvent
type SelectionAdoptedEvent = domain.SelectionAdoptedEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent
type ConfigChangedEvent = domain.ConfigChangedEvent
type ErrorEvent = domain.ErrorEvent
type AppReadyEvent = domain.AppReadyEvent
type ScanStartedEvent = domain.ScanStartedEvent
type ItemDiscoveredEvent = domain.ItemDiscoveredEvent
type ScanCompletedEvent = domain.ScanCompletedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

// registration pairs a handler with an identity for unsubscription
type registration struct {
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]*registration
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
}

// New creates a new event bus
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType][]*registration),
		eventChan: make(chan DomainEvent, 1000),
		quit:      make(chan struct{}),
	}

	// Start the event dispatcher
	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	// Skip logging for high-frequency events
	switch event.Type() {
	case EventChange, EventInput:
		// Selection churn is too frequent to log
	default:
		log.Printf("EventBus: Publishing event %s", event.Type())
	}

	select {
	case b.eventChan <- event:
		// Event sent successfully
	default:
		// Channel full, log and drop
		log.Printf("Event bus channel full, dropping event: %v", event.Type())
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	reg := &registration{handler: handler}
	b.handlers[eventType] = append(b.handlers[eventType], reg)

	// Return unsubscribe function
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		handlers := b.handlers[eventType]
		for i, r := range handlers {
			if r == reg {
				b.handlers[eventType] = append(handlers[:i], handlers[i+1:]...)
				break
			}
		}
	}
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			handlers := b.handlers[event.Type()]
			// Make a copy to avoid holding lock during handler execution
			handlersCopy := make([]*registration, len(handlers))
			copy(handlersCopy, handlers)
			b.mu.RUnlock()

			// Handlers run in subscription order; a panic in one must
			// not take down the dispatcher
			for _, reg := range handlersCopy {
				func(h EventHandler, eventType EventType) {
					defer func() {
						if r := recover(); r != nil {
							log.Printf("Event handler panic for %s: %v\nStack: %s", eventType, r, debug.Stack())
						}
					}()
					h(event)
				}(reg.handler, event.Type())
			}

		case <-b.quit:
			// Drain remaining events
			for {
				select {
				case <-b.eventChan:
					// Discard event
				default:
					return
				}
			}
		}
	}
}
