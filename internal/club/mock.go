package club

import (
	"context"
	"sync"
)

// MockMatchStore is a mock implementation of the MatchStore interface for
// testing. It is safe for concurrent use.
type MockMatchStore struct {
	mu sync.Mutex

	// Spies for method calls
	FetchAllFunc  func(ctx context.Context) ([]*Match, error)
	FetchByIDFunc func(ctx context.Context, id string) (*Match, error)
	SaveFunc      func(ctx context.Context, match *Match) error

	// Call records
	FetchAllCalls  int
	FetchByIDCalls []string
	SaveCalls      []*Match
}

// NewMockMatchStore creates a new mock instance.
func NewMockMatchStore() *MockMatchStore {
	return &MockMatchStore{}
}

func (m *MockMatchStore) FetchAll(ctx context.Context) ([]*Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FetchAllCalls++
	if m.FetchAllFunc != nil {
		return m.FetchAllFunc(ctx)
	}
	return []*Match{}, nil
}

func (m *MockMatchStore) FetchByID(ctx context.Context, id string) (*Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FetchByIDCalls = append(m.FetchByIDCalls, id)
	if m.FetchByIDFunc != nil {
		return m.FetchByIDFunc(ctx, id)
	}
	return nil, ErrMatchNotFound
}

func (m *MockMatchStore) Save(ctx context.Context, match *Match) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalls = append(m.SaveCalls, match)
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, match)
	}
	return nil
}

// MockUserStore is a mock implementation of the UserStore interface for
// testing. It is safe for concurrent use.
type MockUserStore struct {
	mu sync.Mutex

	RegisterFunc   func(ctx context.Context, user User) error
	FindByIDFunc   func(ctx context.Context, id string) (*User, error)
	AddBalanceFunc func(ctx context.Context, id string, amount float64) (float64, error)

	RegisterCalls   []User
	FindByIDCalls   []string
	AddBalanceCalls []AddBalanceCall
}

// AddBalanceCall holds the arguments of a call to AddBalance.
type AddBalanceCall struct {
	ID     string
	Amount float64
}

// NewMockUserStore creates a new mock instance.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{}
}

func (m *MockUserStore) Register(ctx context.Context, user User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RegisterCalls = append(m.RegisterCalls, user)
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, user)
	}
	return nil
}

func (m *MockUserStore) FindByID(ctx context.Context, id string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FindByIDCalls = append(m.FindByIDCalls, id)
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrUserNotFound
}

func (m *MockUserStore) AddBalance(ctx context.Context, id string, amount float64) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddBalanceCalls = append(m.AddBalanceCalls, AddBalanceCall{ID: id, Amount: amount})
	if m.AddBalanceFunc != nil {
		return m.AddBalanceFunc(ctx, id, amount)
	}
	return amount, nil
}

// MockVoteStore is a mock implementation of the VoteStore interface for
// testing.
type MockVoteStore struct {
	mu sync.Mutex

	AverageLevelFunc  func(ctx context.Context, userID string) (float64, error)
	AverageLevelCalls []string
}

// NewMockVoteStore creates a new mock instance.
func NewMockVoteStore() *MockVoteStore {
	return &MockVoteStore{}
}

func (m *MockVoteStore) AverageLevel(ctx context.Context, userID string) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AverageLevelCalls = append(m.AverageLevelCalls, userID)
	if m.AverageLevelFunc != nil {
		return m.AverageLevelFunc(ctx, userID)
	}
	return 0, nil
}
