package club

import "context"

// MatchStore defines the interface for reading and writing matches
// against the backing sheet.
type MatchStore interface {
	FetchAll(ctx context.Context) ([]*Match, error)
	FetchByID(ctx context.Context, id string) (*Match, error)
	// Save overwrites the full sheet row of the match unconditionally.
	// Last writer wins: there is no version token and no compare-and-swap,
	// concurrent saves of the same match silently discard each other.
	Save(ctx context.Context, match *Match) error
}

// UserStore defines the interface for user accounts.
type UserStore interface {
	Register(ctx context.Context, user User) error
	FindByID(ctx context.Context, id string) (*User, error)
	// AddBalance adds amount to the stored balance of the user, coercing a
	// missing or non-numeric balance to 0, and returns the new balance.
	AddBalance(ctx context.Context, id string, amount float64) (float64, error)
}

// VoteStore defines the read-only interface for skill votes.
type VoteStore interface {
	// AverageLevel averages the scores of all votes targeting the user,
	// rounded to 2 decimals. It returns 0 when there are no votes.
	AverageLevel(ctx context.Context, userID string) (float64, error)
}
