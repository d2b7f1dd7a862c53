package club

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/jorgebm/padel-partidos/internal/sheet"
)

const (
	usersTab   = "Usuarios"
	usersRange = "Usuarios!A2:H"
)

// NewUserStore creates a new UserStore on top of the sheet client.
func NewUserStore(client sheet.SheetClient) UserStore {
	return &userStore{
		sheet: client,
	}
}

func (s *userStore) fetchAll(ctx context.Context) ([]*User, error) {
	rows, err := s.sheet.GetRange(ctx, usersRange)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStoreUnavailable, err)
	}
	users := make([]*User, 0, len(rows))
	for i, row := range rows {
		user := parseUserRow(row, i+2)
		if user.Nickname == "" && user.Email == "" {
			continue
		}
		users = append(users, user)
	}
	return users, nil
}

// Register appends a new user row after checking the email is not taken.
func (s *userStore) Register(ctx context.Context, user User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.fetchAll(ctx)
	if err != nil {
		return err
	}
	for _, existing := range users {
		if existing.Email == user.Email {
			return fmt.Errorf("%w: %s", ErrDuplicateEmail, user.Email)
		}
	}

	if err := s.sheet.AppendRange(ctx, usersRange, [][]string{userToRow(user)}); err != nil {
		return fmt.Errorf("%w: %s", ErrStoreUnavailable, err)
	}
	log.Info("Registered new user", "nickname", user.Nickname)
	return nil
}

// FindByID looks a user up by nickname, the row key of the Usuarios tab.
func (s *userStore) FindByID(ctx context.Context, id string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users, err := s.fetchAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Nickname == id {
			return u, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUserNotFound, id)
}

// AddBalance performs the read-modify-write of the user's stored balance.
func (s *userStore) AddBalance(ctx context.Context, id string, amount float64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.fetchAll(ctx)
	if err != nil {
		return 0, err
	}
	var user *User
	for _, u := range users {
		if u.Nickname == id {
			user = u
			break
		}
	}
	if user == nil {
		return 0, fmt.Errorf("%w: %s", ErrUserNotFound, id)
	}

	user.Balance += amount
	if err := s.sheet.UpdateRange(ctx, userRowRange(user), [][]string{userToRow(*user)}); err != nil {
		return 0, fmt.Errorf("%w: %s", ErrStoreUnavailable, err)
	}
	log.Info("Updated user balance", "userID", id, "balance", user.Balance)
	return user.Balance, nil
}
