package repository

import (
	"context"
	"ctchen222/Tic-Tac-Toe-Solo/internal/game"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var ErrUnknownCounter = errors.New("unknown stats counter")

// StatsRepository persists the per-profile win/draw counters.
type StatsRepository interface {
	// Get returns the counters for profileID, all zero when none were stored yet.
	Get(ctx context.Context, profileID string) (game.Stats, error)
	// Increment adds one to the named counter (game.FieldXWins, game.FieldOWins, game.FieldDraws).
	Increment(ctx context.Context, profileID, counter string) error
}

type redisStatsRepository struct {
	rdb *redis.Client
}

// NewRedisStatsRepository creates a Redis-based StatsRepository storing one hash per profile.
func NewRedisStatsRepository(rdb *redis.Client) StatsRepository {
	return &redisStatsRepository{rdb: rdb}
}

func (r *redisStatsRepository) Get(ctx context.Context, profileID string) (game.Stats, error) {
	ctx, span := tracer.Start(ctx, "StatsRepository.Get", trace.WithAttributes(
		attribute.String("profile.id", profileID),
		attribute.String("db.system", "redis"),
	))
	defer span.End()

	data, err := r.rdb.HGetAll(ctx, statsKey(profileID)).Result()
	if err != nil {
		return game.Stats{}, fail(span, "failed to get stats from redis", err)
	}

	var stats game.Stats
	for field, dst := range map[string]*int64{
		game.FieldXWins: &stats.XWins,
		game.FieldOWins: &stats.OWins,
		game.FieldDraws: &stats.Draws,
	} {
		raw, ok := data[field]
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return game.Stats{}, fail(span, fmt.Sprintf("failed to parse %s counter", field), err)
		}
		*dst = n
	}
	return stats, nil
}

func (r *redisStatsRepository) Increment(ctx context.Context, profileID, counter string) error {
	ctx, span := tracer.Start(ctx, "StatsRepository.Increment", trace.WithAttributes(
		attribute.String("profile.id", profileID),
		attribute.String("stats.counter", counter),
		attribute.String("db.system", "redis"),
	))
	defer span.End()

	if _, ok := statsColumns[counter]; !ok {
		return fail(span, "failed to increment stats", fmt.Errorf("%w: %q", ErrUnknownCounter, counter))
	}
	if err := r.rdb.HIncrBy(ctx, statsKey(profileID), counter, 1).Err(); err != nil {
		return fail(span, "failed to increment stats in redis", err)
	}
	return nil
}

// statsColumns maps counter names to SQL columns.
var statsColumns = map[string]string{
	game.FieldXWins: "x_wins",
	game.FieldOWins: "o_wins",
	game.FieldDraws: "draws",
}

type sqliteStatsRepository struct {
	db *sqlx.DB
}

// NewSQLiteStatsRepository creates a SQLite-based StatsRepository.
func NewSQLiteStatsRepository(db *sqlx.DB) StatsRepository {
	return &sqliteStatsRepository{db: db}
}

func (r *sqliteStatsRepository) Get(ctx context.Context, profileID string) (game.Stats, error) {
	ctx, span := tracer.Start(ctx, "StatsRepository.Get", trace.WithAttributes(
		attribute.String("profile.id", profileID),
		attribute.String("db.system", "sqlite"),
	))
	defer span.End()

	var stats game.Stats
	query := `SELECT x_wins, o_wins, draws FROM stats WHERE profile_id = ?`
	err := r.db.GetContext(ctx, &stats, query, profileID)
	if errors.Is(err, sql.ErrNoRows) {
		return game.Stats{}, nil
	}
	if err != nil {
		return game.Stats{}, fail(span, "failed to get stats", err)
	}
	return stats, nil
}

func (r *sqliteStatsRepository) Increment(ctx context.Context, profileID, counter string) error {
	ctx, span := tracer.Start(ctx, "StatsRepository.Increment", trace.WithAttributes(
		attribute.String("profile.id", profileID),
		attribute.String("stats.counter", counter),
		attribute.String("db.system", "sqlite"),
	))
	defer span.End()

	column, ok := statsColumns[counter]
	if !ok {
		return fail(span, "failed to increment stats", fmt.Errorf("%w: %q", ErrUnknownCounter, counter))
	}

	query := fmt.Sprintf(
		`INSERT INTO stats (profile_id, %[1]s) VALUES (?, 1)
		ON CONFLICT(profile_id) DO UPDATE SET %[1]s = %[1]s + 1`, column)
	if _, err := r.db.ExecContext(ctx, query, profileID); err != nil {
		return fail(span, "failed to increment stats", err)
	}
	return nil
}
