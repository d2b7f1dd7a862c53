package events

import (
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// MockPublisher is a mock implementation of Publisher for testing.
// It is safe for concurrent use.
type MockPublisher struct {
	mu sync.Mutex

	// Spies for method calls
	PublishFunc func(topic EventType, data any) error

	// Call records
	PublishCalls []PublishCall
}

// PublishCall holds the arguments for a call to Publish.
type PublishCall struct {
	Topic EventType
	Data  any
}

// NewMock creates a new mock Publisher.
func NewMock() *MockPublisher {
	return &MockPublisher{}
}

// Reset clears all call records.
func (m *MockPublisher) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PublishCalls = nil
}

// Publish records the call and executes the mock function if provided.
func (m *MockPublisher) Publish(topic EventType, data any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PublishCalls = append(m.PublishCalls, PublishCall{Topic: topic, Data: data})
	if m.PublishFunc != nil {
		return m.PublishFunc(topic, data)
	}
	return nil
}

// Decode unmarshals msgpack data, same as the real client.
func (m *MockPublisher) Decode(data []byte, returnValue any) error {
	return msgpack.Unmarshal(data, returnValue)
}

// Published returns a copy of the recorded publish calls.
func (m *MockPublisher) Published() []PublishCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]PublishCall(nil), m.PublishCalls...)
}
