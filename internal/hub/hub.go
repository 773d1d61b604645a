package hub

import (
	"context"
	"ctchen222/Tic-Tac-Toe-Solo/internal/events"
	"ctchen222/Tic-Tac-Toe-Solo/internal/game"
	"ctchen222/Tic-Tac-Toe-Solo/internal/hub/types"
	"ctchen222/Tic-Tac-Toe-Solo/internal/player"
	"ctchen222/Tic-Tac-Toe-Solo/internal/room"
	"ctchen222/Tic-Tac-Toe-Solo/internal/theme"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("hub")

// StatsService loads and records the counters of a profile.
type StatsService interface {
	room.StatsRecorder
	Load(ctx context.Context, profileID string) (game.Stats, error)
}

// ThemeService loads and flips the theme of a profile.
type ThemeService interface {
	room.ThemeToggler
	Load(ctx context.Context, profileID string) (theme.Theme, error)
}

// Hub owns one room per profile and routes connections and events to it.
type Hub struct {
	mu             sync.RWMutex
	rooms          map[string]*room.Room
	register       chan *types.RegistrationRequest
	unregister     chan *player.Player
	bus            events.Bus
	moveCalculator room.MoveCalculator
	stats          StatsService
	themes         ThemeService
}

// NewHub creates a new hub.
func NewHub(bus events.Bus, calculator room.MoveCalculator, stats StatsService, themes ThemeService) *Hub {
	return &Hub{
		rooms:          make(map[string]*room.Room),
		register:       make(chan *types.RegistrationRequest),
		unregister:     make(chan *player.Player),
		bus:            bus,
		moveCalculator: calculator,
		stats:          stats,
		themes:         themes,
	}
}

// Run starts the hub and blocks until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	go h.runEventSubscriber(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Hub stopped")
			return
		case req := <-h.register:
			h.handleRegistration(ctx, req)
		case p := <-h.unregister:
			h.handleUnregister(ctx, p)
		}
	}
}

// RoomFor returns the room of profileID, creating it on first use.
func (h *Hub) RoomFor(profileID string) *room.Room {
	if r := h.lookupRoom(profileID); r != nil {
		return r
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if r, ok := h.rooms[profileID]; ok {
		return r
	}
	r := room.NewRoom(uuid.New().String(), profileID, h.moveCalculator, h.stats, h.themes)
	h.rooms[profileID] = r
	slog.Debug("Room created", "room.id", r.ID, "profile.id", profileID)
	return r
}

func (h *Hub) lookupRoom(profileID string) *room.Room {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.rooms[profileID]
}

// Register returns the register channel.
func (h *Hub) Register() chan<- *types.RegistrationRequest {
	return h.register
}

// Unregister returns the unregister channel.
func (h *Hub) Unregister() chan<- *player.Player {
	return h.unregister
}
