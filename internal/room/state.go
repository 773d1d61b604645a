package room

// State is the turn controller's position in a single game.
type State int

const (
	// XTurn waits for the human to tap a cell.
	XTurn State = iota
	// OTurn is held only while the bot chooses its cell.
	OTurn
	// Finished ignores taps until the game is restarted.
	Finished
)

func (s State) String() string {
	switch s {
	case XTurn:
		return "x_turn"
	case OTurn:
		return "o_turn"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}
