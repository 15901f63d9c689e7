package pubsub

// Topic routes an Event to the handlers subscribed to it.
type Topic string

// Event is anything observers can subscribe to. Concrete event types live
// with the module that emits them.
type Event interface {
	GetTopic() Topic
}

// Handler consumes one event. Handlers run on publisher goroutines and must
// not block indefinitely.
type Handler func(Event)
