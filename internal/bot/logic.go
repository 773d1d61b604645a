package bot

import (
	"ctchen222/Tic-Tac-Toe-Solo/internal/game"
	"math/rand/v2"
	"sync"
)

// NoMove is returned when the board has no empty cell left.
const NoMove = -1

// RandomMover picks uniformly among the empty cells.
// It implements the room.MoveCalculator interface.
type RandomMover struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomMover creates a mover drawing from src. A nil src uses a
// randomly seeded PCG source.
func NewRandomMover(src rand.Source) *RandomMover {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &RandomMover{rng: rand.New(src)}
}

// CalculateNextMove returns the index of a random empty cell, or NoMove.
func (m *RandomMover) CalculateNextMove(board game.Board) int {
	availableMoves := board.EmptyCells()
	if len(availableMoves) == 0 {
		return NoMove
	}

	m.mu.Lock()
	pick := m.rng.IntN(len(availableMoves))
	m.mu.Unlock()

	return availableMoves[pick]
}
