package game

import "fmt"

// OutcomeKind classifies the state of a board.
type OutcomeKind int

const (
	InProgress OutcomeKind = iota
	Win
	Draw
)

func (k OutcomeKind) String() string {
	switch k {
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

// Outcome is the result of evaluating a board. Winner and Line are only
// meaningful when Kind is Win.
type Outcome struct {
	Kind   OutcomeKind
	Winner PlayerMark
	Line   [3]int
}

// Lines lists the eight winning triples: rows, columns, then diagonals.
var Lines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Evaluate scans every line for three equal non-empty marks; a full board
// without one is a draw.
func Evaluate(board Board) Outcome {
	for _, line := range Lines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != None && a == b && b == c {
			return Outcome{Kind: Win, Winner: a, Line: line}
		}
	}

	if board.Filled() == CellCount {
		return Outcome{Kind: Draw}
	}
	return Outcome{Kind: InProgress}
}

// ResultLabel is the short form used in notifications and metrics.
func (o Outcome) ResultLabel() string {
	switch o.Kind {
	case Win:
		return fmt.Sprintf("%s wins", o.Winner)
	case Draw:
		return "Draw"
	default:
		return ""
	}
}

// ResultText is the notification shown when a game ends.
func (o Outcome) ResultText() string {
	if o.Kind == InProgress {
		return ""
	}
	return "Result: " + o.ResultLabel()
}
