package sheet

import "context"

// SheetClient defines the interface for the spreadsheet acting as the
// backing store. Ranges use A1 notation including the tab name, e.g.
// "Partidos!A2:M". This allows for fake implementations in tests.
type SheetClient interface {
	GetRange(ctx context.Context, a1Range string) ([][]string, error)
	UpdateRange(ctx context.Context, a1Range string, values [][]string) error
	AppendRange(ctx context.Context, a1Range string, values [][]string) error
}
