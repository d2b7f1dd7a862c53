package payment

import (
	"context"
	"sync"
)

// MockGateway is a mock implementation of the Gateway interface for
// testing. It is safe for concurrent use.
type MockGateway struct {
	mu sync.Mutex

	// Spies for method calls
	ChargeFunc func(ctx context.Context, amountMinor int64, currency string) (ChargeResult, error)

	// Call records
	ChargeCalls []ChargeCall
}

// ChargeCall holds the arguments for a call to Charge.
type ChargeCall struct {
	AmountMinor int64
	Currency    string
}

// NewMock creates a new mock instance.
func NewMock() *MockGateway {
	return &MockGateway{}
}

// Reset clears all call records.
func (m *MockGateway) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ChargeCalls = nil
}

func (m *MockGateway) Charge(ctx context.Context, amountMinor int64, currency string) (ChargeResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ChargeCalls = append(m.ChargeCalls, ChargeCall{AmountMinor: amountMinor, Currency: currency})
	if m.ChargeFunc != nil {
		return m.ChargeFunc(ctx, amountMinor, currency)
	}
	return ChargeResult{IntentID: "pi_mock", Status: "succeeded"}, nil
}
