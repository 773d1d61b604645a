package hub

import (
	"context"
	"ctchen222/Tic-Tac-Toe-Solo/internal/hub/types"
	"ctchen222/Tic-Tac-Toe-Solo/internal/player"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

func (h *Hub) handleRegistration(ctx context.Context, req *types.RegistrationRequest) {
	ctx, span := tracer.Start(ctx, "hub.handleRegistration", trace.WithAttributes(
		attribute.String("player.id", req.Player.ID),
		attribute.String("profile.id", req.ProfileID),
	))
	defer span.End()

	r := h.RoomFor(req.ProfileID)
	r.AddPlayer(req.Player)
	go r.ReadPump(ctx, req.Player, h.unregister)
	slog.InfoContext(ctx, "Player connected", "player.id", req.Player.ID, "room.id", r.ID)

	stats, err := h.stats.Load(ctx, req.ProfileID)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load stats for new connection", "profile.id", req.ProfileID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to load stats")
	}
	th, err := h.themes.Load(ctx, req.ProfileID)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load theme for new connection", "profile.id", req.ProfileID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to load theme")
	}

	r.SendInitialState(ctx, req.Player, stats, th)
}

// handleUnregister detaches the player. The room itself stays so the game
// survives a reconnect or a switch to the HTTP API.
func (h *Hub) handleUnregister(ctx context.Context, p *player.Player) {
	r := h.lookupRoom(p.ProfileID)
	if r == nil {
		return
	}
	remaining := r.RemovePlayer(p.ID)
	slog.InfoContext(ctx, "Player removed from room", "player.id", p.ID, "room.id", r.ID, "remaining", remaining)
}
