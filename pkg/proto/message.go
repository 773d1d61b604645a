package proto

import "ctchen222/Tic-Tac-Toe-Solo/internal/game"

// Client message types
const (
	TypeTap         = "tap"
	TypeRestart     = "restart"
	TypeToggleTheme = "toggle_theme"
)

// Server message types
const (
	TypeUpdate = "update"
	TypeResult = "result"
	TypeStats  = "stats"
	TypeTheme  = "theme"
)

// ClientToServerMessage represents a message from the client to the server.
type ClientToServerMessage struct {
	Type  string `json:"type" validate:"required,oneof=tap restart toggle_theme"`
	Index *int   `json:"index,omitempty" validate:"required_if=Type tap"`
}

// ServerToClientMessage represents a message from the server to the client.
type ServerToClientMessage struct {
	Type   string              `json:"type" validate:"required"`
	Board  [][]game.PlayerMark `json:"board,omitempty"`
	State  string              `json:"state,omitempty"`
	Next   game.PlayerMark     `json:"next,omitempty"`
	Winner game.PlayerMark     `json:"winner,omitempty"`
	Line   []int               `json:"line,omitempty"`
	Text   string              `json:"text,omitempty"`
	Stats  *StatsPayload       `json:"stats,omitempty"`
	Theme  *ThemePayload       `json:"theme,omitempty"`
}

// StatsPayload carries the counters and their display line.
type StatsPayload struct {
	game.Stats
	Text string `json:"text"`
}

func NewStatsPayload(s game.Stats) *StatsPayload {
	return &StatsPayload{Stats: s, Text: s.String()}
}

// ThemePayload tells the client which theme and toggle icon to show.
type ThemePayload struct {
	DarkMode bool   `json:"darkMode"`
	Icon     string `json:"icon"`
}
