package bot

import (
	"ctchen222/Tic-Tac-Toe-Solo/internal/game"
	"math/rand/v2"
	"testing"
)

func TestRandomMover_OnlyOneSpotLeft(t *testing.T) {
	board := game.Board{
		game.PlayerX, game.PlayerO, game.PlayerX,
		game.PlayerO, game.PlayerX, game.PlayerO,
		game.PlayerO, game.None, game.PlayerX,
	}
	m := NewRandomMover(nil)
	if got := m.CalculateNextMove(board); got != 7 {
		t.Errorf("CalculateNextMove should pick the only available spot 7, got %d", got)
	}
}

func TestRandomMover_FullBoard(t *testing.T) {
	board := game.Board{
		game.PlayerX, game.PlayerO, game.PlayerX,
		game.PlayerX, game.PlayerO, game.PlayerO,
		game.PlayerO, game.PlayerX, game.PlayerX,
	}
	m := NewRandomMover(nil)
	if got := m.CalculateNextMove(board); got != NoMove {
		t.Errorf("CalculateNextMove on a full board should return NoMove, got %d", got)
	}
}

func TestRandomMover_PicksOnlyEmptyCells(t *testing.T) {
	board := game.Board{
		game.PlayerX, game.None, game.None,
		game.None, game.PlayerO, game.None,
		game.None, game.None, game.PlayerX,
	}
	m := NewRandomMover(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		got := m.CalculateNextMove(board)
		if !game.ValidIndex(got) || board[got] != game.None {
			t.Fatalf("CalculateNextMove returned a non-empty cell %d", got)
		}
	}
}

func TestRandomMover_CoversEveryEmptyCell(t *testing.T) {
	// Not a statistical test, just that no cell is unreachable.
	board := game.Board{}
	m := NewRandomMover(rand.NewPCG(7, 11))
	seen := make(map[int]int)
	for i := 0; i < 900; i++ {
		seen[m.CalculateNextMove(board)]++
	}
	for idx := 0; idx < game.CellCount; idx++ {
		if seen[idx] == 0 {
			t.Errorf("cell %d was never chosen in 900 draws: %v", idx, seen)
		}
	}
}

func TestRandomMover_SameSeedSameSequence(t *testing.T) {
	a := NewRandomMover(rand.NewPCG(42, 42))
	b := NewRandomMover(rand.NewPCG(42, 42))
	board := game.Board{}
	for i := 0; i < 20; i++ {
		if x, y := a.CalculateNextMove(board), b.CalculateNextMove(board); x != y {
			t.Fatalf("draw %d differs: %d != %d", i, x, y)
		}
	}
}
