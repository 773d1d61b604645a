package stats

import (
	"context"
	"ctchen222/Tic-Tac-Toe-Solo/internal/events"
	"ctchen222/Tic-Tac-Toe-Solo/internal/game"
	"ctchen222/Tic-Tac-Toe-Solo/internal/repository"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("stats")

// Store is the only writer of the cumulative game counters.
type Store struct {
	repo repository.StatsRepository
	bus  events.Bus
}

// NewStore creates a Store. bus may be nil, in which case updates are not republished.
func NewStore(repo repository.StatsRepository, bus events.Bus) *Store {
	return &Store{repo: repo, bus: bus}
}

// Load returns the counters for profileID, zero-valued when none exist yet.
func (s *Store) Load(ctx context.Context, profileID string) (game.Stats, error) {
	stats, err := s.repo.Get(ctx, profileID)
	if err != nil {
		return game.Stats{}, fmt.Errorf("failed to load stats: %w", err)
	}
	return stats, nil
}

// RecordResult increments the counter matching outcome, persists it, and
// republishes the fresh record. An in-progress outcome changes nothing.
func (s *Store) RecordResult(ctx context.Context, profileID string, outcome game.Outcome) (game.Stats, error) {
	ctx, span := tracer.Start(ctx, "stats.RecordResult", trace.WithAttributes(
		attribute.String("profile.id", profileID),
		attribute.String("game.outcome", outcome.Kind.String()),
	))
	defer span.End()

	counter, ok := game.CounterFor(outcome)
	if !ok {
		return s.Load(ctx, profileID)
	}

	if err := s.repo.Increment(ctx, profileID, counter); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to increment stats")
		return game.Stats{}, fmt.Errorf("failed to record result: %w", err)
	}

	stats, err := s.Load(ctx, profileID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to reload stats")
		return game.Stats{}, err
	}

	s.publish(ctx, profileID, stats)
	return stats, nil
}

func (s *Store) publish(ctx context.Context, profileID string, stats game.Stats) {
	if s.bus == nil {
		return
	}
	event, err := events.New(events.TypeStatsUpdated, events.StatsUpdatedPayload{ProfileID: profileID, Stats: stats})
	if err == nil {
		err = s.bus.Publish(ctx, event)
	}
	if err != nil {
		slog.ErrorContext(ctx, "Failed to publish stats_updated event", "profile.id", profileID, "error", err)
	}
}
