package game

import (
	"errors"
	"fmt"
)

// PlayerMark represents the mark of a player (X, O) or an empty cell.
type PlayerMark string

const (
	// Player marks
	None    PlayerMark = ""
	PlayerX PlayerMark = "X"
	PlayerO PlayerMark = "O"

	// Board geometry
	Size      = 3
	CellCount = Size * Size
	BorderMin = 0
	BorderMax = Size - 1
)

var (
	// ErrInvalidMove is matched by every rejected move.
	ErrInvalidMove = errors.New("invalid move")

	ErrOutOfBounds  = fmt.Errorf("%w: cell index out of range", ErrInvalidMove)
	ErrCellOccupied = fmt.Errorf("%w: cell already occupied", ErrInvalidMove)
	ErrNotYourTurn  = fmt.Errorf("%w: not this player's turn", ErrInvalidMove)
	ErrGameFinished = fmt.Errorf("%w: game already finished", ErrInvalidMove)
)

// Board is the 3x3 grid stored row-major; index = row*3 + col.
type Board [CellCount]PlayerMark

// Game is the authoritative state of a single match.
type Game struct {
	Board   Board
	Outcome Outcome
}

func NewGame() *Game {
	return &Game{}
}

// Reset clears the board so that X moves next.
func (g *Game) Reset() {
	g.Board = Board{}
	g.Outcome = Outcome{}
}

// ActivePlayer derives the player to move from the number of filled cells.
func (g *Game) ActivePlayer() PlayerMark {
	if g.Board.Filled()%2 == 0 {
		return PlayerX
	}
	return PlayerO
}

// Terminal reports whether the game has been won or drawn.
func (g *Game) Terminal() bool {
	return g.Outcome.Kind != InProgress
}

// SetCell places mark at index and re-evaluates the outcome.
// The board is left untouched when an error is returned.
func (g *Game) SetCell(index int, mark PlayerMark) error {
	if g.Terminal() {
		return ErrGameFinished
	}
	if !ValidIndex(index) {
		return ErrOutOfBounds
	}
	if g.Board[index] != None {
		return ErrCellOccupied
	}
	if mark != g.ActivePlayer() {
		return ErrNotYourTurn
	}

	g.Board[index] = mark
	g.Outcome = Evaluate(g.Board)
	return nil
}

// Cell returns the mark at index, or None for an index off the board.
func (g *Game) Cell(index int) PlayerMark {
	if !ValidIndex(index) {
		return None
	}
	return g.Board[index]
}

// EmptyCells returns the indices still open, in ascending order.
func (g *Game) EmptyCells() []int {
	return g.Board.EmptyCells()
}

// EmptyCells returns the indices still open, in ascending order.
func (b Board) EmptyCells() []int {
	cells := make([]int, 0, CellCount)
	for i, mark := range b {
		if mark == None {
			cells = append(cells, i)
		}
	}
	return cells
}

// Filled counts the occupied cells.
func (b Board) Filled() int {
	n := 0
	for _, mark := range b {
		if mark != None {
			n++
		}
	}
	return n
}
