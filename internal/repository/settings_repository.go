package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const fieldDarkMode = "darkMode"

// SettingsRepository persists per-profile display settings.
type SettingsRepository interface {
	// DarkMode reports the stored flag, false when never set.
	DarkMode(ctx context.Context, profileID string) (bool, error)
	SetDarkMode(ctx context.Context, profileID string, enabled bool) error
}

type redisSettingsRepository struct {
	rdb *redis.Client
}

// NewRedisSettingsRepository creates a Redis-based SettingsRepository.
func NewRedisSettingsRepository(rdb *redis.Client) SettingsRepository {
	return &redisSettingsRepository{rdb: rdb}
}

func (r *redisSettingsRepository) DarkMode(ctx context.Context, profileID string) (bool, error) {
	ctx, span := tracer.Start(ctx, "SettingsRepository.DarkMode", trace.WithAttributes(
		attribute.String("profile.id", profileID),
		attribute.String("db.system", "redis"),
	))
	defer span.End()

	val, err := r.rdb.HGet(ctx, settingsKey(profileID), fieldDarkMode).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fail(span, "failed to get dark mode from redis", err)
	}
	return val == "1", nil
}

func (r *redisSettingsRepository) SetDarkMode(ctx context.Context, profileID string, enabled bool) error {
	ctx, span := tracer.Start(ctx, "SettingsRepository.SetDarkMode", trace.WithAttributes(
		attribute.String("profile.id", profileID),
		attribute.Bool("settings.dark_mode", enabled),
		attribute.String("db.system", "redis"),
	))
	defer span.End()

	val := "0"
	if enabled {
		val = "1"
	}
	if err := r.rdb.HSet(ctx, settingsKey(profileID), fieldDarkMode, val).Err(); err != nil {
		return fail(span, "failed to set dark mode in redis", err)
	}
	return nil
}

type sqliteSettingsRepository struct {
	db *sqlx.DB
}

// NewSQLiteSettingsRepository creates a SQLite-based SettingsRepository.
func NewSQLiteSettingsRepository(db *sqlx.DB) SettingsRepository {
	return &sqliteSettingsRepository{db: db}
}

func (r *sqliteSettingsRepository) DarkMode(ctx context.Context, profileID string) (bool, error) {
	ctx, span := tracer.Start(ctx, "SettingsRepository.DarkMode", trace.WithAttributes(
		attribute.String("profile.id", profileID),
		attribute.String("db.system", "sqlite"),
	))
	defer span.End()

	var enabled bool
	err := r.db.GetContext(ctx, &enabled, `SELECT dark_mode FROM settings WHERE profile_id = ?`, profileID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fail(span, "failed to get dark mode", err)
	}
	return enabled, nil
}

func (r *sqliteSettingsRepository) SetDarkMode(ctx context.Context, profileID string, enabled bool) error {
	ctx, span := tracer.Start(ctx, "SettingsRepository.SetDarkMode", trace.WithAttributes(
		attribute.String("profile.id", profileID),
		attribute.Bool("settings.dark_mode", enabled),
		attribute.String("db.system", "sqlite"),
	))
	defer span.End()

	query := `INSERT INTO settings (profile_id, dark_mode) VALUES (?, ?)
		ON CONFLICT(profile_id) DO UPDATE SET dark_mode = excluded.dark_mode`
	if _, err := r.db.ExecContext(ctx, query, profileID, enabled); err != nil {
		return fail(span, "failed to set dark mode", err)
	}
	return nil
}
