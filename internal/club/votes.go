package club

import (
	"context"
	"fmt"
	"math"

	"github.com/jorgebm/padel-partidos/internal/sheet"
)

const votesRange = "Votaciones!A2:D"

// NewVoteStore creates a new VoteStore on top of the sheet client.
func NewVoteStore(client sheet.SheetClient) VoteStore {
	return &voteStore{
		sheet: client,
	}
}

func (s *voteStore) AverageLevel(ctx context.Context, userID string) (float64, error) {
	rows, err := s.sheet.GetRange(ctx, votesRange)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrStoreUnavailable, err)
	}

	var sum float64
	var count int
	for _, row := range rows {
		vote := parseVoteRow(row)
		if vote.TargetID != userID {
			continue
		}
		sum += vote.Score
		count++
	}
	if count == 0 {
		return 0, nil
	}
	return math.Round(sum/float64(count)*100) / 100, nil
}
