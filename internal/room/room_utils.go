package room

import (
	"context"
	"ctchen222/Tic-Tac-Toe-Solo/internal/game"
	"ctchen222/Tic-Tac-Toe-Solo/internal/player"
	"ctchen222/Tic-Tac-Toe-Solo/internal/theme"
	"ctchen222/Tic-Tac-Toe-Solo/pkg/proto"
)

// AddPlayer adds a player to the room.
func (r *Room) AddPlayer(p *player.Player) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Players = append(r.Players, p)
}

// RemovePlayer drops the player and reports how many remain.
func (r *Room) RemovePlayer(playerID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.Players[:0]
	for _, p := range r.Players {
		if p.ID != playerID {
			kept = append(kept, p)
		}
	}
	r.Players = kept
	return len(r.Players)
}

// SendInitialState brings a freshly connected player up to date.
func (r *Room) SendInitialState(ctx context.Context, p *player.Player, stats game.Stats, th theme.Theme) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := r.snapshot()
	r.send(ctx, p, UpdateMessage(snap))
	if snap.State == Finished {
		r.send(ctx, p, resultMessage(snap))
	}
	r.send(ctx, p, statsMessage(stats))
	r.send(ctx, p, themeMessage(th, ""))
}

// PushStats broadcasts counters that changed elsewhere.
func (r *Room) PushStats(ctx context.Context, stats game.Stats) {
	r.Broadcast(ctx, statsMessage(stats))
}

// PushTheme broadcasts a theme that changed elsewhere.
func (r *Room) PushTheme(ctx context.Context, th theme.Theme) {
	r.Broadcast(ctx, themeMessage(th, ""))
}

// broadcastSnapshot sends the board and, once finished, the result line.
// Stats follow separately through the stats_updated event.
func (r *Room) broadcastSnapshot(ctx context.Context, snap Snapshot) {
	r.broadcast(ctx, UpdateMessage(snap))
	if snap.State == Finished {
		r.broadcast(ctx, resultMessage(snap))
	}
}

// UpdateMessage renders a snapshot as an "update" message.
func UpdateMessage(snap Snapshot) *proto.ServerToClientMessage {
	msg := &proto.ServerToClientMessage{
		Type:  proto.TypeUpdate,
		Board: game.BoardAsRows(snap.Board),
		State: snap.State.String(),
		Next:  snap.Next,
	}
	if snap.Outcome.Kind == game.Win {
		msg.Winner = snap.Outcome.Winner
		msg.Line = snap.Outcome.Line[:]
	}
	return msg
}

func resultMessage(snap Snapshot) *proto.ServerToClientMessage {
	msg := &proto.ServerToClientMessage{
		Type: proto.TypeResult,
		Text: snap.Outcome.ResultText(),
	}
	if snap.Outcome.Kind == game.Win {
		msg.Winner = snap.Outcome.Winner
		msg.Line = snap.Outcome.Line[:]
	}
	return msg
}

func statsMessage(stats game.Stats) *proto.ServerToClientMessage {
	return &proto.ServerToClientMessage{
		Type:  proto.TypeStats,
		Stats: proto.NewStatsPayload(stats),
	}
}

func themeMessage(th theme.Theme, text string) *proto.ServerToClientMessage {
	return &proto.ServerToClientMessage{
		Type:  proto.TypeTheme,
		Text:  text,
		Theme: &proto.ThemePayload{DarkMode: th.DarkMode, Icon: th.Icon},
	}
}
