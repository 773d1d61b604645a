package room

import (
	"context"
	"ctchen222/Tic-Tac-Toe-Solo/internal/game"
	"ctchen222/Tic-Tac-Toe-Solo/internal/player"
	"ctchen222/Tic-Tac-Toe-Solo/internal/validator"
	"ctchen222/Tic-Tac-Toe-Solo/pkg/proto"
	"encoding/json"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// HandleMessage handles a message from a player. It acts as a dispatcher.
func (r *Room) HandleMessage(ctx context.Context, p *player.Player, rawMessage []byte) {
	ctx, span := tracer.Start(ctx, "room.HandleMessage", trace.WithAttributes(
		attribute.String("player.id", p.ID),
		attribute.String("room.id", r.ID),
	))
	defer span.End()

	var message proto.ClientToServerMessage
	if err := json.Unmarshal(rawMessage, &message); err != nil {
		slog.ErrorContext(ctx, "error unmarshalling message", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Error unmarshalling message")
		return
	}

	if err := validator.GetValidator().Struct(message); err != nil {
		slog.WarnContext(ctx, "invalid message from player", "player.id", p.ID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid message format")
		return
	}

	span.SetAttributes(attribute.String("message.type", message.Type))

	switch message.Type {
	case proto.TypeTap:
		r.handleTap(ctx, *message.Index)
	case proto.TypeRestart:
		r.Restart(ctx)
	case proto.TypeToggleTheme:
		r.handleToggleTheme(ctx, p)
	}
}

func (r *Room) handleTap(ctx context.Context, index int) {
	_, err := r.Tap(ctx, index)
	if err == nil || errors.Is(err, game.ErrInvalidMove) {
		// Invalid taps are ignored without feedback.
		return
	}
	slog.ErrorContext(ctx, "failed to apply tap", "room.id", r.ID, "error", err)
}

// handleToggleTheme answers the requesting player with the notification
// text. Other connections learn about the change from the theme_changed event.
func (r *Room) handleToggleTheme(ctx context.Context, p *player.Player) {
	ctx, span := tracer.Start(ctx, "room.handleToggleTheme", trace.WithAttributes(
		attribute.String("player.id", p.ID),
		attribute.String("room.id", r.ID),
	))
	defer span.End()

	if r.themes == nil {
		return
	}
	th, text, err := r.themes.Toggle(ctx, r.ProfileID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to toggle theme", "profile.id", r.ProfileID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to toggle theme")
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.send(ctx, p, themeMessage(th, text))
}
