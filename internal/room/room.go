package room

import (
	"context"
	"ctchen222/Tic-Tac-Toe-Solo/internal/game"
	"ctchen222/Tic-Tac-Toe-Solo/internal/player"
	"ctchen222/Tic-Tac-Toe-Solo/internal/theme"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// noMove marks a side that did not move in a transition.
const noMove = -1

var (
	tracer = otel.Tracer("room")
	meter  = otel.Meter("room")

	gamesFinished, _ = meter.Int64Counter("tictactoe.games.finished",
		metric.WithDescription("Number of games that reached a result"))
	movesPlayed, _ = meter.Int64Counter("tictactoe.moves",
		metric.WithDescription("Number of marks placed on a board"))
)

//go:generate mockgen -source=room.go -destination=../mocks/room.go -package=mocks

// MoveCalculator defines an interface for an agent that can calculate a game move.
type MoveCalculator interface {
	CalculateNextMove(board game.Board) int
}

// StatsRecorder persists the result of a finished game.
type StatsRecorder interface {
	RecordResult(ctx context.Context, profileID string, outcome game.Outcome) (game.Stats, error)
}

// ThemeToggler flips the persisted theme of a profile.
type ThemeToggler interface {
	Toggle(ctx context.Context, profileID string) (theme.Theme, string, error)
}

// Snapshot is a read-only view of the room after a transition.
type Snapshot struct {
	Board   game.Board
	State   State
	Next    game.PlayerMark
	Outcome game.Outcome
	// HumanMove and BotMove are the cells filled by the last tap, or -1.
	HumanMove int
	BotMove   int
	// Stats is set only when the transition finished the game and the
	// result was recorded.
	Stats *game.Stats
}

// Room is the turn controller for one profile's game against the bot.
type Room struct {
	ID        string
	ProfileID string
	Players   []*player.Player

	mu             sync.Mutex
	game           *game.Game
	state          State
	moveCalculator MoveCalculator
	recorder       StatsRecorder
	themes         ThemeToggler
}

// NewRoom creates a room with an empty board and X to move.
func NewRoom(id, profileID string, calculator MoveCalculator, recorder StatsRecorder, themes ThemeToggler) *Room {
	return &Room{
		ID:             id,
		ProfileID:      profileID,
		Players:        make([]*player.Player, 0, 1),
		game:           game.NewGame(),
		state:          XTurn,
		moveCalculator: calculator,
		recorder:       recorder,
		themes:         themes,
	}
}

// Tap places the human mark on index and, if the game goes on, lets the bot
// answer before returning. Taps on occupied cells, out-of-range indices or a
// finished game return an error matching game.ErrInvalidMove and leave the
// room unchanged.
func (r *Room) Tap(ctx context.Context, index int) (Snapshot, error) {
	ctx, span := tracer.Start(ctx, "room.Tap", trace.WithAttributes(
		attribute.String("room.id", r.ID),
		attribute.Int("cell.index", index),
	))
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	snap, err := r.tap(ctx, index)
	if err != nil {
		span.SetAttributes(attribute.Bool("move.valid", false))
		return snap, err
	}
	span.SetAttributes(attribute.Bool("move.valid", true))

	r.broadcastSnapshot(ctx, snap)
	return snap, nil
}

func (r *Room) tap(ctx context.Context, index int) (Snapshot, error) {
	switch r.state {
	case Finished:
		return r.snapshot(), game.ErrGameFinished
	case OTurn:
		return r.snapshot(), game.ErrNotYourTurn
	}

	if err := r.game.SetCell(index, game.PlayerX); err != nil {
		return r.snapshot(), err
	}
	movesPlayed.Add(ctx, 1, metric.WithAttributes(attribute.String("mark", string(game.PlayerX))))

	if r.game.Terminal() {
		return r.finish(ctx, index, noMove), nil
	}

	r.state = OTurn
	botMove := r.botTurn(ctx)
	if r.game.Terminal() {
		return r.finish(ctx, index, botMove), nil
	}
	r.state = XTurn

	snap := r.snapshot()
	snap.HumanMove = index
	snap.BotMove = botMove
	return snap, nil
}

// botTurn places O. The board is never full here since X just moved
// without ending the game.
func (r *Room) botTurn(ctx context.Context) int {
	index := r.moveCalculator.CalculateNextMove(r.game.Board)
	if err := r.game.SetCell(index, game.PlayerO); err != nil {
		slog.ErrorContext(ctx, "Bot chose an unusable cell, taking the first empty one",
			"room.id", r.ID, "cell.index", index, "error", err)
		index = r.game.EmptyCells()[0]
		if err := r.game.SetCell(index, game.PlayerO); err != nil {
			slog.ErrorContext(ctx, "Failed to place bot mark", "room.id", r.ID, "error", err)
			return noMove
		}
	}
	movesPlayed.Add(ctx, 1, metric.WithAttributes(attribute.String("mark", string(game.PlayerO))))
	return index
}

// finish moves the room to Finished and records the result exactly once.
func (r *Room) finish(ctx context.Context, humanMove, botMove int) Snapshot {
	ctx, span := tracer.Start(ctx, "room.finish", trace.WithAttributes(
		attribute.String("room.id", r.ID),
	))
	defer span.End()

	r.state = Finished
	outcome := r.game.Outcome
	span.SetAttributes(attribute.String("game.result", outcome.ResultLabel()))
	gamesFinished.Add(ctx, 1, metric.WithAttributes(attribute.String("result", outcome.Kind.String())))
	slog.InfoContext(ctx, "Game finished", "room.id", r.ID, "profile.id", r.ProfileID, "result", outcome.ResultLabel())

	snap := r.snapshot()
	snap.HumanMove = humanMove
	snap.BotMove = botMove

	if r.recorder == nil {
		return snap
	}
	stats, err := r.recorder.RecordResult(ctx, r.ProfileID, outcome)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to record game result", "room.id", r.ID, "profile.id", r.ProfileID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to record game result")
		return snap
	}
	snap.Stats = &stats
	return snap
}

// Restart clears the board and hands the move back to X. It is valid in
// any state.
func (r *Room) Restart(ctx context.Context) Snapshot {
	ctx, span := tracer.Start(ctx, "room.Restart", trace.WithAttributes(
		attribute.String("room.id", r.ID),
	))
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.game.Reset()
	r.state = XTurn
	slog.DebugContext(ctx, "Game restarted", "room.id", r.ID)

	snap := r.snapshot()
	r.broadcastSnapshot(ctx, snap)
	return snap
}

// Snapshot returns the current view without changing anything.
func (r *Room) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot()
}

func (r *Room) snapshot() Snapshot {
	snap := Snapshot{
		Board:     r.game.Board,
		State:     r.state,
		Outcome:   r.game.Outcome,
		HumanMove: noMove,
		BotMove:   noMove,
	}
	if r.state != Finished {
		snap.Next = r.game.ActivePlayer()
	}
	return snap
}
