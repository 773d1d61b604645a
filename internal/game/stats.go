package game

import "fmt"

// Stats holds the cumulative results for one profile.
type Stats struct {
	XWins int64 `json:"xWins" db:"x_wins"`
	OWins int64 `json:"oWins" db:"o_wins"`
	Draws int64 `json:"draws" db:"draws"`
}

// Stats counter names, shared by every storage backend.
const (
	FieldXWins = "xWins"
	FieldOWins = "oWins"
	FieldDraws = "draws"
)

// CounterFor names the counter a finished game increments. It returns
// false for a game still in progress.
func CounterFor(o Outcome) (string, bool) {
	switch {
	case o.Kind == Win && o.Winner == PlayerX:
		return FieldXWins, true
	case o.Kind == Win && o.Winner == PlayerO:
		return FieldOWins, true
	case o.Kind == Draw:
		return FieldDraws, true
	default:
		return "", false
	}
}

// Total is the number of finished games.
func (s Stats) Total() int64 {
	return s.XWins + s.OWins + s.Draws
}

// String renders the stats line shown under the board.
func (s Stats) String() string {
	return fmt.Sprintf("X: %d | O: %d | Draw: %d", s.XWins, s.OWins, s.Draws)
}
