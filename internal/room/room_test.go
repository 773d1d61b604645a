package room

import (
	"context"
	"ctchen222/Tic-Tac-Toe-Solo/internal/game"
	"ctchen222/Tic-Tac-Toe-Solo/internal/mocks"
	"ctchen222/Tic-Tac-Toe-Solo/internal/player"
	"ctchen222/Tic-Tac-Toe-Solo/internal/theme"
	"ctchen222/Tic-Tac-Toe-Solo/pkg/proto"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// scriptedMover plays a fixed list of cells.
type scriptedMover struct {
	moves []int
}

func (s *scriptedMover) CalculateNextMove(game.Board) int {
	if len(s.moves) == 0 {
		return -1
	}
	next := s.moves[0]
	s.moves = s.moves[1:]
	return next
}

// fakeConn records written frames and blocks reads until closed.
type fakeConn struct {
	mu      sync.Mutex
	written []proto.ServerToClientMessage
	inbox   chan []byte
}

func newFakeConn() *fakeConn {
	return &fakeConn{inbox: make(chan []byte, 8)}
}

func (c *fakeConn) WriteMessage(_ int, data []byte) error {
	var msg proto.ServerToClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.written = append(c.written, msg)
	return nil
}

func (c *fakeConn) ReadMessage() (int, []byte, error) {
	data, ok := <-c.inbox
	if !ok {
		return 0, nil, io.EOF
	}
	return 1, data, nil
}

func (c *fakeConn) Close() error { return nil }

func (c *fakeConn) types() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.written))
	for _, m := range c.written {
		out = append(out, m.Type)
	}
	return out
}

func (c *fakeConn) last() proto.ServerToClientMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.written[len(c.written)-1]
}

func tapAll(t *testing.T, r *Room, cells ...int) Snapshot {
	t.Helper()
	var snap Snapshot
	for _, idx := range cells {
		var err error
		snap, err = r.Tap(context.Background(), idx)
		require.NoError(t, err, "tap %d", idx)
	}
	return snap
}

func TestRoom_XWinsRecordsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	recorder := mocks.NewMockStatsRecorder(ctrl)

	// Given X plays 0, 4, 8 and the bot answers 3, 2
	r := NewRoom("room-1", "profile-1", &scriptedMover{moves: []int{3, 2}}, recorder, nil)
	want := game.Outcome{Kind: game.Win, Winner: game.PlayerX, Line: [3]int{0, 4, 8}}
	recorder.EXPECT().
		RecordResult(gomock.Any(), "profile-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, o game.Outcome) (game.Stats, error) {
			assert.Equal(t, game.Win, o.Kind)
			assert.Equal(t, game.PlayerX, o.Winner)
			return game.Stats{XWins: 1}, nil
		}).
		Times(1)

	// When
	snap := tapAll(t, r, 0, 4, 8)

	// Then
	assert.Equal(t, Finished, snap.State)
	assert.Equal(t, game.PlayerX, snap.Outcome.Winner)
	assert.Equal(t, want.Line, snap.Outcome.Line)
	assert.Equal(t, "Result: X wins", snap.Outcome.ResultText())
	assert.Equal(t, game.None, snap.Next)
	assert.Equal(t, noMove, snap.BotMove)
	require.NotNil(t, snap.Stats)
	assert.Equal(t, int64(1), snap.Stats.XWins)
}

func TestRoom_DrawRecordsDraw(t *testing.T) {
	ctrl := gomock.NewController(t)
	recorder := mocks.NewMockStatsRecorder(ctrl)

	// Given X ends on 0,1,5,6,7 and O on 2,3,4,8
	r := NewRoom("room-1", "profile-1", &scriptedMover{moves: []int{2, 4, 3, 8}}, recorder, nil)
	recorder.EXPECT().
		RecordResult(gomock.Any(), "profile-1", game.Outcome{Kind: game.Draw}).
		Return(game.Stats{Draws: 1}, nil).
		Times(1)

	// When
	snap := tapAll(t, r, 0, 1, 5, 6, 7)

	// Then
	assert.Equal(t, Finished, snap.State)
	assert.Equal(t, game.Draw, snap.Outcome.Kind)
	assert.Equal(t, "Result: Draw", snap.Outcome.ResultText())
	assert.Equal(t, game.Board{
		game.PlayerX, game.PlayerX, game.PlayerO,
		game.PlayerO, game.PlayerO, game.PlayerX,
		game.PlayerX, game.PlayerX, game.PlayerO,
	}, snap.Board)
	require.NotNil(t, snap.Stats)
	assert.Equal(t, int64(1), snap.Stats.Draws)
}

func TestRoom_BotWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	recorder := mocks.NewMockStatsRecorder(ctrl)
	r := NewRoom("room-1", "profile-1", &scriptedMover{moves: []int{2, 4, 6}}, recorder, nil)
	recorder.EXPECT().
		RecordResult(gomock.Any(), "profile-1", game.Outcome{Kind: game.Win, Winner: game.PlayerO, Line: [3]int{2, 4, 6}}).
		Return(game.Stats{OWins: 1}, nil)

	snap := tapAll(t, r, 0, 1, 3)

	assert.Equal(t, Finished, snap.State)
	assert.Equal(t, 6, snap.BotMove)
	assert.Equal(t, "Result: O wins", snap.Outcome.ResultText())
}

func TestRoom_InvalidTapsAreNoOps(t *testing.T) {
	ctrl := gomock.NewController(t)
	recorder := mocks.NewMockStatsRecorder(ctrl)
	r := NewRoom("room-1", "profile-1", &scriptedMover{moves: []int{4}}, recorder, nil)

	before := tapAll(t, r, 0)
	require.Equal(t, XTurn, before.State)

	tests := []struct {
		name  string
		index int
		want  error
	}{
		{"occupied by X", 0, game.ErrCellOccupied},
		{"occupied by O", 4, game.ErrCellOccupied},
		{"negative", -1, game.ErrOutOfBounds},
		{"past the end", 9, game.ErrOutOfBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, err := r.Tap(context.Background(), tt.index)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, game.ErrInvalidMove)
			assert.Equal(t, before.Board, snap.Board)
			assert.Equal(t, XTurn, snap.State)
		})
	}
}

func TestRoom_TapAfterFinishIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	recorder := mocks.NewMockStatsRecorder(ctrl)
	r := NewRoom("room-1", "profile-1", &scriptedMover{moves: []int{3, 2}}, recorder, nil)
	recorder.EXPECT().RecordResult(gomock.Any(), gomock.Any(), gomock.Any()).Return(game.Stats{XWins: 1}, nil).Times(1)

	finished := tapAll(t, r, 0, 4, 8)

	snap, err := r.Tap(context.Background(), 5)
	assert.ErrorIs(t, err, game.ErrGameFinished)
	assert.Equal(t, finished.Board, snap.Board)
	assert.Equal(t, Finished, r.Snapshot().State)
}

func TestRoom_RecorderFailureStillFinishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	recorder := mocks.NewMockStatsRecorder(ctrl)
	r := NewRoom("room-1", "profile-1", &scriptedMover{moves: []int{3, 2}}, recorder, nil)
	recorder.EXPECT().RecordResult(gomock.Any(), gomock.Any(), gomock.Any()).Return(game.Stats{}, errors.New("disk full"))

	snap := tapAll(t, r, 0, 4, 8)

	assert.Equal(t, Finished, snap.State)
	assert.Nil(t, snap.Stats)
}

func TestRoom_BadBotMoveFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	calc := mocks.NewMockMoveCalculator(ctrl)
	r := NewRoom("room-1", "profile-1", calc, nil, nil)

	// Cell 0 is already X, so the first empty cell is 1.
	calc.EXPECT().CalculateNextMove(gomock.Any()).Return(0)

	snap := tapAll(t, r, 0)

	assert.Equal(t, 1, snap.BotMove)
	assert.Equal(t, game.PlayerO, snap.Board[1])
	assert.Equal(t, XTurn, snap.State)
	assert.Equal(t, game.PlayerX, snap.Next)
}

func TestRoom_Restart(t *testing.T) {
	ctrl := gomock.NewController(t)
	recorder := mocks.NewMockStatsRecorder(ctrl)
	r := NewRoom("room-1", "profile-1", &scriptedMover{moves: []int{3, 2, 4}}, recorder, nil)
	recorder.EXPECT().RecordResult(gomock.Any(), gomock.Any(), gomock.Any()).Return(game.Stats{XWins: 1}, nil).Times(1)

	tapAll(t, r, 0, 4, 8)

	snap := r.Restart(context.Background())
	assert.Equal(t, game.Board{}, snap.Board)
	assert.Equal(t, XTurn, snap.State)
	assert.Equal(t, game.PlayerX, snap.Next)
	assert.Equal(t, game.InProgress, snap.Outcome.Kind)

	// Play resumes normally after a restart.
	snap = tapAll(t, r, 0)
	assert.Equal(t, game.PlayerX, snap.Board[0])
	assert.Equal(t, game.PlayerO, snap.Board[4])
}

func TestRoom_BroadcastsUpdateAndResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	recorder := mocks.NewMockStatsRecorder(ctrl)
	recorder.EXPECT().RecordResult(gomock.Any(), gomock.Any(), gomock.Any()).Return(game.Stats{XWins: 1}, nil)

	r := NewRoom("room-1", "profile-1", &scriptedMover{moves: []int{3, 2}}, recorder, nil)
	conn := newFakeConn()
	r.AddPlayer(player.NewPlayer("p1", "profile-1", conn))

	tapAll(t, r, 0, 4, 8)

	assert.Equal(t, []string{proto.TypeUpdate, proto.TypeUpdate, proto.TypeUpdate, proto.TypeResult}, conn.types())
	result := conn.last()
	assert.Equal(t, "Result: X wins", result.Text)
	assert.Equal(t, []int{0, 4, 8}, result.Line)
}

func TestRoom_HandleMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	themes := mocks.NewMockThemeToggler(ctrl)
	r := NewRoom("room-1", "profile-1", &scriptedMover{moves: []int{4}}, nil, themes)
	conn := newFakeConn()
	p := player.NewPlayer("p1", "profile-1", conn)
	r.AddPlayer(p)
	ctx := context.Background()

	t.Run("tap", func(t *testing.T) {
		r.HandleMessage(ctx, p, []byte(`{"type":"tap","index":0}`))
		assert.Equal(t, game.PlayerX, r.Snapshot().Board[0])
		assert.Equal(t, game.PlayerO, r.Snapshot().Board[4])
	})

	t.Run("invalid tap sends nothing", func(t *testing.T) {
		n := len(conn.types())
		r.HandleMessage(ctx, p, []byte(`{"type":"tap","index":4}`))
		r.HandleMessage(ctx, p, []byte(`{"type":"tap"}`))
		r.HandleMessage(ctx, p, []byte(`not json`))
		assert.Len(t, conn.types(), n)
	})

	t.Run("toggle theme", func(t *testing.T) {
		themes.EXPECT().Toggle(gomock.Any(), "profile-1").
			Return(theme.Theme{DarkMode: true, Icon: theme.IconSun}, theme.MessageEnabled, nil)
		r.HandleMessage(ctx, p, []byte(`{"type":"toggle_theme"}`))
		msg := conn.last()
		assert.Equal(t, proto.TypeTheme, msg.Type)
		assert.Equal(t, "Dark theme enabled", msg.Text)
		require.NotNil(t, msg.Theme)
		assert.Equal(t, "sun", msg.Theme.Icon)
	})

	t.Run("restart", func(t *testing.T) {
		r.HandleMessage(ctx, p, []byte(`{"type":"restart"}`))
		assert.Equal(t, game.Board{}, r.Snapshot().Board)
		assert.Equal(t, proto.TypeUpdate, conn.last().Type)
	})
}

func TestRoom_ReadPumpUnregistersOnClose(t *testing.T) {
	r := NewRoom("room-1", "profile-1", &scriptedMover{}, nil, nil)
	conn := newFakeConn()
	p := player.NewPlayer("p1", "profile-1", conn)
	r.AddPlayer(p)

	unregister := make(chan *player.Player, 1)
	close(conn.inbox)
	r.ReadPump(context.Background(), p, unregister)

	assert.Same(t, p, <-unregister)
	assert.Equal(t, player.StatusDisconnected, p.Status)
	assert.Equal(t, 0, r.RemovePlayer(p.ID))
}

func TestRoom_SendInitialState(t *testing.T) {
	r := NewRoom("room-1", "profile-1", &scriptedMover{}, nil, nil)
	conn := newFakeConn()
	p := player.NewPlayer("p1", "profile-1", conn)
	r.AddPlayer(p)

	r.SendInitialState(context.Background(), p, game.Stats{XWins: 2, OWins: 1, Draws: 3}, theme.Theme{Icon: theme.IconMoon})

	assert.Equal(t, []string{proto.TypeUpdate, proto.TypeStats, proto.TypeTheme}, conn.types())
	conn.mu.Lock()
	stats := conn.written[1].Stats
	conn.mu.Unlock()
	require.NotNil(t, stats)
	assert.Equal(t, "X: 2 | O: 1 | Draw: 3", stats.Text)
}
