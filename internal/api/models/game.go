package models

import (
	"ctchen222/Tic-Tac-Toe-Solo/internal/game"
	"ctchen222/Tic-Tac-Toe-Solo/internal/room"
	"ctchen222/Tic-Tac-Toe-Solo/internal/theme"
)

// TapRequest binds the cell index from the URI. Range checking is left to
// the game so that off-board taps are ignored rather than rejected.
type TapRequest struct {
	Index int `uri:"index"`
}

// GameResponse is the REST view of a room snapshot.
type GameResponse struct {
	Board   [][]game.PlayerMark `json:"board"`
	State   string              `json:"state"`
	Next    game.PlayerMark     `json:"next,omitempty"`
	Winner  game.PlayerMark     `json:"winner,omitempty"`
	Line    []int               `json:"line,omitempty"`
	Result  string              `json:"result,omitempty"`
	BotMove *int                `json:"botMove,omitempty"`
	Stats   *StatsResponse      `json:"stats,omitempty"`
	Ignored bool                `json:"ignored,omitempty"`
}

func NewGameResponse(snap room.Snapshot) GameResponse {
	resp := GameResponse{
		Board:  game.BoardAsRows(snap.Board),
		State:  snap.State.String(),
		Next:   snap.Next,
		Result: snap.Outcome.ResultText(),
	}
	if snap.Outcome.Kind == game.Win {
		resp.Winner = snap.Outcome.Winner
		resp.Line = snap.Outcome.Line[:]
	}
	if game.ValidIndex(snap.BotMove) {
		botMove := snap.BotMove
		resp.BotMove = &botMove
	}
	if snap.Stats != nil {
		stats := NewStatsResponse(*snap.Stats)
		resp.Stats = &stats
	}
	return resp
}

type StatsResponse struct {
	game.Stats
	Text string `json:"text"`
}

func NewStatsResponse(s game.Stats) StatsResponse {
	return StatsResponse{Stats: s, Text: s.String()}
}

type ThemeResponse struct {
	theme.Theme
	Message string `json:"message,omitempty"`
}
