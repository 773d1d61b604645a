package hub

import (
	"context"
	"ctchen222/Tic-Tac-Toe-Solo/internal/events"
	"ctchen222/Tic-Tac-Toe-Solo/internal/theme"
	"encoding/json"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

func (h *Hub) runEventSubscriber(ctx context.Context) {
	slog.InfoContext(ctx, "Event subscriber started", "channel", events.EventsChannel)
	for event := range h.bus.Subscribe(ctx) {
		h.handleEvent(ctx, event)
	}
	slog.InfoContext(ctx, "Event subscriber stopped")
}

func (h *Hub) handleEvent(ctx context.Context, event events.Event) {
	ctx, span := tracer.Start(ctx, "hub.handleEvent", trace.WithAttributes(
		attribute.String("event.type", event.Type),
	))
	defer span.End()

	switch event.Type {
	case events.TypeStatsUpdated:
		var payload events.StatsUpdatedPayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			slog.ErrorContext(ctx, "Could not unmarshal stats_updated payload", "error", err)
			span.RecordError(err)
			span.SetStatus(codes.Error, "Could not unmarshal stats_updated payload")
			return
		}
		if r := h.lookupRoom(payload.ProfileID); r != nil {
			r.PushStats(ctx, payload.Stats)
		}

	case events.TypeThemeChanged:
		var payload events.ThemeChangedPayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			slog.ErrorContext(ctx, "Could not unmarshal theme_changed payload", "error", err)
			span.RecordError(err)
			span.SetStatus(codes.Error, "Could not unmarshal theme_changed payload")
			return
		}
		if r := h.lookupRoom(payload.ProfileID); r != nil {
			r.PushTheme(ctx, theme.For(payload.DarkMode))
		}

	default:
		slog.WarnContext(ctx, "Unknown event type", "event.type", event.Type)
	}
}
