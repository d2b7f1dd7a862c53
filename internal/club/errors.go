package club

import "errors"

var (
	// ErrStoreUnavailable wraps a failed call to the backing sheet.
	ErrStoreUnavailable = errors.New("backing store unavailable")
	// ErrMatchNotFound is returned when no match has the requested id.
	ErrMatchNotFound = errors.New("match not found")
	// ErrMatchFull is returned when both the roster and the waitlist are full.
	ErrMatchFull = errors.New("match is full")
	// ErrAlreadyRegistered is returned when the player already holds a slot
	// on the roster or the waitlist of the match.
	ErrAlreadyRegistered = errors.New("player already registered")
	// ErrUserNotFound is returned when no user row matches the requested id.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when registering an email that already
	// has a user row.
	ErrDuplicateEmail = errors.New("email already registered")
)
