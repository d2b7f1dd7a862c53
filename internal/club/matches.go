package club

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/jorgebm/padel-partidos/internal/sheet"
)

const (
	matchesTab   = "Partidos"
	matchesRange = "Partidos!A2:M"
)

// NewMatchStore creates a new MatchStore on top of the sheet client.
func NewMatchStore(client sheet.SheetClient) MatchStore {
	return &matchStore{
		sheet: client,
	}
}

// FetchAll reads the full match range and parses every row. Rows without
// an id are skipped (trailing blank rows in the sheet).
func (s *matchStore) FetchAll(ctx context.Context) ([]*Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.sheet.GetRange(ctx, matchesRange)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStoreUnavailable, err)
	}

	matches := make([]*Match, 0, len(rows))
	for i, row := range rows {
		// Data starts at sheet row 2, directly under the header.
		match := parseMatchRow(row, i+2)
		if match.ID == "" {
			log.Debug("Skipping blank match row", "sheetRow", i+2)
			continue
		}
		matches = append(matches, match)
	}
	return matches, nil
}

// FetchByID is a linear scan over FetchAll. The dataset is a handful of
// rows, so no index is kept.
func (s *matchStore) FetchByID(ctx context.Context, id string) (*Match, error) {
	matches, err := s.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, m := range matches {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrMatchNotFound, id)
}

// Save serializes the match into its row and overwrites it. See the
// interface doc for the last-writer-wins semantics.
func (s *matchStore) Save(ctx context.Context, match *Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if match.Row < 2 {
		return fmt.Errorf("match %s has no sheet row, was it fetched?", match.ID)
	}
	if err := s.sheet.UpdateRange(ctx, matchRowRange(match), [][]string{matchToRow(match)}); err != nil {
		return fmt.Errorf("%w: %s", ErrStoreUnavailable, err)
	}
	log.Debug("Saved match", "matchID", match.ID, "sheetRow", match.Row)
	return nil
}
