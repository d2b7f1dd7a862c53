package payment

import "context"

// ChargeResult holds the outcome of a successful charge.
type ChargeResult struct {
	IntentID string
	Status   string
}

// Gateway defines the interface for the external payment processor.
// Amounts are in minor units (cents).
type Gateway interface {
	Charge(ctx context.Context, amountMinor int64, currency string) (ChargeResult, error)
}
