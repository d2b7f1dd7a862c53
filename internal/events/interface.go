package events

// Publisher defines the interface for publishing club events to
// downstream consumers. Publishing is fire-and-forget from the caller's
// perspective: a failed publish is logged, never retried.
type Publisher interface {
	Publish(topic EventType, data any) error
	Decode(data []byte, returnValue any) error
}
