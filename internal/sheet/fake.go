package sheet

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Fake is an in-memory SheetClient for testing. It stores one grid of
// cells per tab and resolves A1 ranges against it. It is safe for
// concurrent use.
type Fake struct {
	mu   sync.Mutex
	tabs map[string][][]string

	// Spies for method calls
	GetRangeFunc    func(ctx context.Context, a1Range string) ([][]string, error)
	UpdateRangeFunc func(ctx context.Context, a1Range string, values [][]string) error
	AppendRangeFunc func(ctx context.Context, a1Range string, values [][]string) error

	// Call records
	GetRangeCalls    []string
	UpdateRangeCalls []UpdateRangeCall
	AppendRangeCalls []UpdateRangeCall
}

// UpdateRangeCall holds the arguments of a call to UpdateRange or AppendRange.
type UpdateRangeCall struct {
	Range  string
	Values [][]string
}

var _ SheetClient = (*Fake)(nil)

// NewFake creates an empty fake sheet.
func NewFake() *Fake {
	return &Fake{tabs: make(map[string][][]string)}
}

// Seed replaces the contents of a tab. Row 0 of the grid corresponds to
// sheet row 2, matching the data ranges the stores use (headers live in
// row 1 and are never fetched).
func (f *Fake) Seed(tab string, rows [][]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	grid := make([][]string, len(rows))
	for i, row := range rows {
		grid[i] = append([]string(nil), row...)
	}
	f.tabs[tab] = grid
}

// Rows returns a copy of the current contents of a tab.
func (f *Fake) Rows(tab string) [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	rows := make([][]string, len(f.tabs[tab]))
	for i, row := range f.tabs[tab] {
		rows[i] = append([]string(nil), row...)
	}
	return rows
}

func (f *Fake) GetRange(ctx context.Context, a1Range string) ([][]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.GetRangeCalls = append(f.GetRangeCalls, a1Range)
	if f.GetRangeFunc != nil {
		return f.GetRangeFunc(ctx, a1Range)
	}

	tab, startRow, err := parseRange(a1Range)
	if err != nil {
		return nil, err
	}
	grid := f.tabs[tab]
	// The stores address data rows starting at sheet row 2.
	offset := startRow - 2
	if offset < 0 || offset > len(grid) {
		return nil, nil
	}
	rows := make([][]string, 0, len(grid)-offset)
	for _, row := range grid[offset:] {
		rows = append(rows, append([]string(nil), row...))
	}
	return rows, nil
}

func (f *Fake) UpdateRange(ctx context.Context, a1Range string, values [][]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UpdateRangeCalls = append(f.UpdateRangeCalls, UpdateRangeCall{Range: a1Range, Values: values})
	if f.UpdateRangeFunc != nil {
		return f.UpdateRangeFunc(ctx, a1Range, values)
	}

	tab, startRow, err := parseRange(a1Range)
	if err != nil {
		return err
	}
	grid := f.tabs[tab]
	for i, row := range values {
		idx := startRow - 2 + i
		for idx >= len(grid) {
			grid = append(grid, nil)
		}
		grid[idx] = append([]string(nil), row...)
	}
	f.tabs[tab] = grid
	return nil
}

func (f *Fake) AppendRange(ctx context.Context, a1Range string, values [][]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.AppendRangeCalls = append(f.AppendRangeCalls, UpdateRangeCall{Range: a1Range, Values: values})
	if f.AppendRangeFunc != nil {
		return f.AppendRangeFunc(ctx, a1Range, values)
	}

	tab, _, err := parseRange(a1Range)
	if err != nil {
		return err
	}
	for _, row := range values {
		f.tabs[tab] = append(f.tabs[tab], append([]string(nil), row...))
	}
	return nil
}

// parseRange extracts the tab name and the first row number from an A1
// range like "Partidos!A2:M" or "Partidos!A5:M5".
func parseRange(a1Range string) (tab string, startRow int, err error) {
	tab, cells, ok := strings.Cut(a1Range, "!")
	if !ok {
		return "", 0, fmt.Errorf("invalid range %q: missing tab", a1Range)
	}
	start, _, _ := strings.Cut(cells, ":")
	digits := strings.TrimLeft(start, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	if digits == "" {
		return tab, 2, nil
	}
	startRow, err = strconv.Atoi(digits)
	if err != nil {
		return "", 0, fmt.Errorf("invalid range %q: %w", a1Range, err)
	}
	return tab, startRow, nil
}
