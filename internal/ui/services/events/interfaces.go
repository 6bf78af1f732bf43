package events

// EventBus is the interface for UI service event communication
type EventBus interface {
	Subscribe(eventType string, handler func(interface{}))
	Publish(event interface{})
}
