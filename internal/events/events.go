package events

import (
	"context"
	"ctchen222/Tic-Tac-Toe-Solo/internal/game"
	"encoding/json"
	"fmt"
)

// Pub/Sub channel constants
const (
	EventsChannel = "channel:events"
)

// Event types
const (
	TypeStatsUpdated = "stats_updated"
	TypeThemeChanged = "theme_changed"
)

// Event represents a global message published via Pub/Sub.
type Event struct {
	Type    string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// StatsUpdatedPayload is the payload for the "stats_updated" event.
type StatsUpdatedPayload struct {
	ProfileID string     `json:"profile_id"`
	Stats     game.Stats `json:"stats"`
}

// ThemeChangedPayload is the payload for the "theme_changed" event.
type ThemeChangedPayload struct {
	ProfileID string `json:"profile_id"`
	DarkMode  bool   `json:"dark_mode"`
}

// New marshals payload into an Event of the given type.
func New(eventType string, payload any) (Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}
	return Event{Type: eventType, Payload: raw}, nil
}

// Bus fans events out to every subscriber, possibly across processes.
type Bus interface {
	Publish(ctx context.Context, event Event) error
	// Subscribe delivers events until ctx is done, then closes the channel.
	Subscribe(ctx context.Context) <-chan Event
	Close() error
}
