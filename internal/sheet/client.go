package sheet

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jorgebm/padel-partidos/internal/metrics"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client is a SheetClient backed by the Google Sheets API.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
	metrics       metrics.Metrics
}

var _ SheetClient = (*Client)(nil)

// NewClient creates a new Google Sheets client using a service account
// credentials file.
func NewClient(ctx context.Context, spreadsheetID, credentialsFile string, metrics metrics.Metrics) (*Client, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		metrics:       metrics,
	}, nil
}

// GetRange fetches the given range and returns it as a grid of strings.
// Empty trailing cells are omitted by the API, so rows may be ragged.
func (c *Client) GetRange(ctx context.Context, a1Range string) ([][]string, error) {
	start := time.Now()
	defer func() { c.metrics.ObserveSheetCallDuration(time.Since(start).Seconds()) }()

	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, a1Range).Context(ctx).Do()
	if err != nil {
		log.Error("Failed to get range from sheet", "range", a1Range, "error", err)
		return nil, fmt.Errorf("failed to get range %s: %w", a1Range, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, rawRow := range resp.Values {
		row := make([]string, 0, len(rawRow))
		for _, cell := range rawRow {
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	log.Debug("Fetched range from sheet", "range", a1Range, "rows", len(rows))
	return rows, nil
}

// UpdateRange overwrites the given range with the provided values using
// RAW input (no sheet-side parsing of the cell contents).
func (c *Client) UpdateRange(ctx context.Context, a1Range string, values [][]string) error {
	start := time.Now()
	defer func() { c.metrics.ObserveSheetCallDuration(time.Since(start).Seconds()) }()

	vr := &sheets.ValueRange{Values: toInterfaceGrid(values)}
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, a1Range, vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		log.Error("Failed to update range in sheet", "range", a1Range, "error", err)
		return fmt.Errorf("failed to update range %s: %w", a1Range, err)
	}
	log.Debug("Updated range in sheet", "range", a1Range, "rows", len(values))
	return nil
}

// AppendRange appends the provided values after the last row of the range.
func (c *Client) AppendRange(ctx context.Context, a1Range string, values [][]string) error {
	start := time.Now()
	defer func() { c.metrics.ObserveSheetCallDuration(time.Since(start).Seconds()) }()

	vr := &sheets.ValueRange{Values: toInterfaceGrid(values)}
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, a1Range, vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		log.Error("Failed to append to sheet", "range", a1Range, "error", err)
		return fmt.Errorf("failed to append to range %s: %w", a1Range, err)
	}
	log.Debug("Appended rows to sheet", "range", a1Range, "rows", len(values))
	return nil
}

func toInterfaceGrid(values [][]string) [][]any {
	grid := make([][]any, len(values))
	for i, row := range values {
		cells := make([]any, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		grid[i] = cells
	}
	return grid
}
