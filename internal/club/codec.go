package club

import (
	"fmt"
	"strconv"
	"strings"
)

// The canonical positional layouts of the three tabs. The repository owns
// these schemas; read and write paths must stay symmetric.
//
//	Partidos!A2:M   id, lugar, horario, fecha, duracion, 4x jugador, 4x reserva
//	Usuarios!A2:H   nickname, email, whatsapp, nivel, categoria, pais, bandera, saldo
//	Votaciones!A2:D voter, target, score, comment
const (
	matchRowWidth = 13
	userRowWidth  = 8
)

// cell returns the column at index i, tolerating short rows (the sheets
// API omits empty trailing cells).
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// parseMatchRow decodes one sheet row into a Match. sheetRow is the
// 1-based row the data came from. Blank player cells are skipped so
// insertion order is preserved without gaps.
func parseMatchRow(row []string, sheetRow int) *Match {
	m := &Match{
		ID:       cell(row, 0),
		Place:    cell(row, 1),
		TimeSlot: cell(row, 2),
		Date:     cell(row, 3),
		Duration: cell(row, 4),
		Roster:   []string{},
		Waitlist: []string{},
		Row:      sheetRow,
	}
	for i := 5; i < 5+MatchCapacity; i++ {
		if p := strings.TrimSpace(cell(row, i)); p != "" {
			m.Roster = append(m.Roster, p)
		}
	}
	for i := 9; i < 9+MatchCapacity; i++ {
		if p := strings.TrimSpace(cell(row, i)); p != "" {
			m.Waitlist = append(m.Waitlist, p)
		}
	}
	return m
}

// matchToRow serializes a Match back into exactly one 13-cell row,
// padding unused player slots with empty strings so a shrinking roster
// clears its old cells.
func matchToRow(m *Match) []string {
	row := make([]string, matchRowWidth)
	row[0] = m.ID
	row[1] = m.Place
	row[2] = m.TimeSlot
	row[3] = m.Date
	row[4] = m.Duration
	for i := 0; i < MatchCapacity && i < len(m.Roster); i++ {
		row[5+i] = m.Roster[i]
	}
	for i := 0; i < MatchCapacity && i < len(m.Waitlist); i++ {
		row[9+i] = m.Waitlist[i]
	}
	return row
}

// matchRowRange is the A1 range addressing exactly the row of the match.
func matchRowRange(m *Match) string {
	return fmt.Sprintf("%s!A%d:M%d", matchesTab, m.Row, m.Row)
}

func parseUserRow(row []string, sheetRow int) *User {
	balance, err := strconv.ParseFloat(strings.TrimSpace(cell(row, 7)), 64)
	if err != nil {
		// Missing or non-numeric balances coerce to 0.
		balance = 0
	}
	return &User{
		Nickname: cell(row, 0),
		Email:    cell(row, 1),
		Whatsapp: cell(row, 2),
		Level:    cell(row, 3),
		Category: cell(row, 4),
		Country:  cell(row, 5),
		Flag:     cell(row, 6),
		Balance:  balance,
		Row:      sheetRow,
	}
}

func userToRow(u User) []string {
	row := make([]string, userRowWidth)
	row[0] = u.Nickname
	row[1] = u.Email
	row[2] = u.Whatsapp
	row[3] = u.Level
	row[4] = u.Category
	row[5] = u.Country
	row[6] = u.Flag
	row[7] = strconv.FormatFloat(u.Balance, 'f', -1, 64)
	return row
}

func userRowRange(u *User) string {
	return fmt.Sprintf("%s!A%d:H%d", usersTab, u.Row, u.Row)
}

func parseVoteRow(row []string) Vote {
	score, err := strconv.ParseFloat(strings.TrimSpace(cell(row, 2)), 64)
	if err != nil {
		score = 0
	}
	return Vote{
		VoterID:  cell(row, 0),
		TargetID: cell(row, 1),
		Score:    score,
		Comment:  cell(row, 3),
	}
}
