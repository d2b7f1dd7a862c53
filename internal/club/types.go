package club

import (
	"sync"

	"github.com/jorgebm/padel-partidos/internal/sheet"
)

// MatchCapacity is the number of slots in a match roster and in its
// waitlist.
const MatchCapacity = 4

// Match represents one scheduled game ("partido") parsed from a sheet row.
type Match struct {
	ID       string   `json:"id"`
	Place    string   `json:"lugar"`
	TimeSlot string   `json:"horario"`
	Date     string   `json:"fecha"`
	Duration string   `json:"duracion"`
	Roster   []string `json:"jugadores"`
	Waitlist []string `json:"reservas"`

	// Row is the 1-based sheet row the match was parsed from. It is used
	// to address the write-back and never leaves the process.
	Row int `json:"-"`
}

// IsRegistered reports whether the player holds a slot on the roster or
// the waitlist.
func (m *Match) IsRegistered(playerID string) bool {
	for _, p := range m.Roster {
		if p == playerID {
			return true
		}
	}
	for _, p := range m.Waitlist {
		if p == playerID {
			return true
		}
	}
	return false
}

// User represents a registered player account ("usuario").
type User struct {
	Nickname string  `json:"nickname"`
	Email    string  `json:"email"`
	Whatsapp string  `json:"whatsapp"`
	Level    string  `json:"nivel"`
	Category string  `json:"categoria"`
	Country  string  `json:"pais"`
	Flag     string  `json:"bandera"`
	Balance  float64 `json:"saldo"`

	// Row is the 1-based sheet row, set when the user was read back.
	Row int `json:"-"`
}

// Vote is a third-party rating of a user's skill level. Read-only.
type Vote struct {
	VoterID  string
	TargetID string
	Score    float64
	Comment  string
}

// matchStore handles all spreadsheet operations for matches.
type matchStore struct {
	sheet sheet.SheetClient
	mu    sync.RWMutex
}

// userStore handles all spreadsheet operations for user accounts.
type userStore struct {
	sheet sheet.SheetClient
	mu    sync.RWMutex
}

// voteStore reads the skill votes tab.
type voteStore struct {
	sheet sheet.SheetClient
}
