package game

import (
	"errors"
	"testing"
)

const (
	X = PlayerX
	O = PlayerO
	E = None
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  Outcome
	}{
		{
			name:  "In progress - empty board",
			board: Board{},
			want:  Outcome{Kind: InProgress},
		},
		{
			name: "In progress - partial board",
			board: Board{
				X, E, E,
				E, O, E,
				E, E, E,
			},
			want: Outcome{Kind: InProgress},
		},
		{
			name: "X wins - first row",
			board: Board{
				X, X, X,
				E, O, E,
				E, E, O,
			},
			want: Outcome{Kind: Win, Winner: X, Line: [3]int{0, 1, 2}},
		},
		{
			name: "O wins - third row",
			board: Board{
				X, E, X,
				E, X, E,
				O, O, O,
			},
			want: Outcome{Kind: Win, Winner: O, Line: [3]int{6, 7, 8}},
		},
		{
			name: "O wins - second column",
			board: Board{
				X, O, E,
				X, O, E,
				E, O, E,
			},
			want: Outcome{Kind: Win, Winner: O, Line: [3]int{1, 4, 7}},
		},
		{
			name: "X wins - main diagonal",
			board: Board{
				X, E, E,
				E, X, E,
				E, E, X,
			},
			want: Outcome{Kind: Win, Winner: X, Line: [3]int{0, 4, 8}},
		},
		{
			name: "O wins - anti-diagonal",
			board: Board{
				E, E, O,
				E, O, E,
				O, E, E,
			},
			want: Outcome{Kind: Win, Winner: O, Line: [3]int{2, 4, 6}},
		},
		{
			name: "X wins on the last cell - not a draw",
			board: Board{
				X, O, X,
				O, X, O,
				O, X, X,
			},
			want: Outcome{Kind: Win, Winner: X, Line: [3]int{0, 4, 8}},
		},
		{
			name: "Draw - full board without a line",
			board: Board{
				X, X, O,
				O, O, X,
				X, X, O,
			},
			want: Outcome{Kind: Draw},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.board); got != tt.want {
				t.Errorf("Evaluate() got = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEvaluate_EveryLine(t *testing.T) {
	for _, mark := range []PlayerMark{X, O} {
		for _, line := range Lines {
			var board Board
			for _, i := range line {
				board[i] = mark
			}
			got := Evaluate(board)
			if got.Kind != Win || got.Winner != mark || got.Line != line {
				t.Errorf("Evaluate() for line %v of %s got %+v", line, mark, got)
			}
		}
	}
}

func TestGame_SetCell(t *testing.T) {
	t.Run("X moves first and turns alternate", func(t *testing.T) {
		g := NewGame()
		if g.ActivePlayer() != X {
			t.Fatalf("ActivePlayer() = %s, want X", g.ActivePlayer())
		}
		if err := g.SetCell(4, X); err != nil {
			t.Fatalf("SetCell(4, X) error = %v", err)
		}
		if g.ActivePlayer() != O {
			t.Errorf("ActivePlayer() = %s, want O", g.ActivePlayer())
		}
		if g.Cell(4) != X {
			t.Errorf("Cell(4) = %q, want X", g.Cell(4))
		}
	})

	t.Run("Rejected moves leave the board unchanged", func(t *testing.T) {
		g := NewGame()
		if err := g.SetCell(0, X); err != nil {
			t.Fatalf("SetCell(0, X) error = %v", err)
		}
		before := g.Board

		cases := []struct {
			index int
			mark  PlayerMark
			want  error
		}{
			{index: 0, mark: O, want: ErrCellOccupied},
			{index: -1, mark: O, want: ErrOutOfBounds},
			{index: 9, mark: O, want: ErrOutOfBounds},
			{index: 1, mark: X, want: ErrNotYourTurn},
		}
		for _, c := range cases {
			err := g.SetCell(c.index, c.mark)
			if !errors.Is(err, c.want) {
				t.Errorf("SetCell(%d, %s) error = %v, want %v", c.index, c.mark, err, c.want)
			}
			if !errors.Is(err, ErrInvalidMove) {
				t.Errorf("SetCell(%d, %s) error = %v does not match ErrInvalidMove", c.index, c.mark, err)
			}
		}
		if g.Board != before {
			t.Errorf("board mutated by rejected moves: got %v, want %v", g.Board, before)
		}
	})

	t.Run("No mutation once terminal", func(t *testing.T) {
		g := NewGame()
		for i, idx := range []int{0, 3, 1, 4, 2} {
			mark := X
			if i%2 == 1 {
				mark = O
			}
			if err := g.SetCell(idx, mark); err != nil {
				t.Fatalf("SetCell(%d, %s) error = %v", idx, mark, err)
			}
		}
		if !g.Terminal() || g.Outcome.Winner != X {
			t.Fatalf("expected X to have won, got %+v", g.Outcome)
		}
		before := g.Board
		if err := g.SetCell(5, O); !errors.Is(err, ErrGameFinished) {
			t.Errorf("SetCell after win error = %v, want ErrGameFinished", err)
		}
		if g.Board != before {
			t.Errorf("board mutated after terminal")
		}
	})

	t.Run("Reset clears the board and hands the move to X", func(t *testing.T) {
		g := NewGame()
		_ = g.SetCell(0, X)
		_ = g.SetCell(1, O)
		_ = g.SetCell(2, X)
		g.Reset()
		if g.Board != (Board{}) {
			t.Errorf("Board after Reset = %v, want empty", g.Board)
		}
		if g.ActivePlayer() != X || g.Terminal() {
			t.Errorf("after Reset active = %s terminal = %v", g.ActivePlayer(), g.Terminal())
		}
	})
}

func TestEmptyCells(t *testing.T) {
	board := Board{
		X, E, O,
		E, X, E,
		O, E, E,
	}
	want := []int{1, 3, 5, 7, 8}
	got := board.EmptyCells()
	if len(got) != len(want) {
		t.Fatalf("EmptyCells() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("EmptyCells() = %v, want %v", got, want)
			break
		}
	}
}

func TestIndexOfAndRows(t *testing.T) {
	if got := IndexOf(2, 1); got != 7 {
		t.Errorf("IndexOf(2, 1) = %d, want 7", got)
	}
	if got := IndexOf(3, 0); got != -1 {
		t.Errorf("IndexOf(3, 0) = %d, want -1", got)
	}

	board := Board{X, E, E, E, O, E, E, E, X}
	rows := BoardAsRows(board)
	if len(rows) != 3 || rows[0][0] != X || rows[1][1] != O || rows[2][2] != X {
		t.Errorf("BoardAsRows() = %v", rows)
	}
}

func TestOutcomeText(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
	}{
		{Outcome{Kind: Win, Winner: X}, "Result: X wins"},
		{Outcome{Kind: Win, Winner: O}, "Result: O wins"},
		{Outcome{Kind: Draw}, "Result: Draw"},
		{Outcome{Kind: InProgress}, ""},
	}
	for _, tt := range tests {
		if got := tt.outcome.ResultText(); got != tt.want {
			t.Errorf("ResultText() for %+v = %q, want %q", tt.outcome, got, tt.want)
		}
	}
}

func TestCounterFor(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
		ok      bool
	}{
		{Outcome{Kind: Win, Winner: X}, FieldXWins, true},
		{Outcome{Kind: Win, Winner: O}, FieldOWins, true},
		{Outcome{Kind: Draw}, FieldDraws, true},
		{Outcome{Kind: InProgress}, "", false},
	}
	for _, tt := range tests {
		got, ok := CounterFor(tt.outcome)
		if got != tt.want || ok != tt.ok {
			t.Errorf("CounterFor(%+v) = (%q, %v), want (%q, %v)", tt.outcome, got, ok, tt.want, tt.ok)
		}
	}

	s := Stats{XWins: 2, OWins: 1, Draws: 3}
	if s.String() != "X: 2 | O: 1 | Draw: 3" || s.Total() != 6 {
		t.Errorf("Stats render = %q total = %d", s.String(), s.Total())
	}
}
