package main

import (
	"context"
	"ctchen222/Tic-Tac-Toe-Solo/internal/api/controller"
	apirepository "ctchen222/Tic-Tac-Toe-Solo/internal/api/repository"
	"ctchen222/Tic-Tac-Toe-Solo/internal/api/service"
	"ctchen222/Tic-Tac-Toe-Solo/internal/bot"
	"ctchen222/Tic-Tac-Toe-Solo/internal/config"
	"ctchen222/Tic-Tac-Toe-Solo/internal/db"
	"ctchen222/Tic-Tac-Toe-Solo/internal/events"
	"ctchen222/Tic-Tac-Toe-Solo/internal/hub"
	"ctchen222/Tic-Tac-Toe-Solo/internal/logger"
	"ctchen222/Tic-Tac-Toe-Solo/internal/repository"
	"ctchen222/Tic-Tac-Toe-Solo/internal/server"
	"ctchen222/Tic-Tac-Toe-Solo/internal/stats"
	"ctchen222/Tic-Tac-Toe-Solo/internal/telemetry"
	"ctchen222/Tic-Tac-Toe-Solo/internal/theme"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize telemetry before the logger so the slog bridge picks up
	// the real logger provider.
	shutdown, err := telemetry.InitOtel(ctx, cfg.Telemetry)
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			slog.Error("Error shutting down telemetry", "error", err)
		}
	}()

	if err := logger.Init(cfg.LogLevel); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := run(ctx, cfg); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	// Accounts always live in SQLite.
	sqlDB, err := db.Connect(ctx, cfg.Storage.SQLitePath)
	if err != nil {
		return err
	}
	defer sqlDB.Close()
	health := sqlDB.PingContext

	var (
		statsRepo    repository.StatsRepository
		settingsRepo repository.SettingsRepository
		bus          events.Bus
	)
	switch cfg.Storage.Backend {
	case config.BackendRedis:
		rdb, err := db.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return err
		}
		defer rdb.Close()
		statsRepo = repository.NewRedisStatsRepository(rdb)
		settingsRepo = repository.NewRedisSettingsRepository(rdb)
		bus = events.NewRedisBus(rdb)
		health = func(ctx context.Context) error {
			if err := sqlDB.PingContext(ctx); err != nil {
				return err
			}
			return rdb.Ping(ctx).Err()
		}
	default:
		statsRepo = repository.NewSQLiteStatsRepository(sqlDB)
		settingsRepo = repository.NewSQLiteSettingsRepository(sqlDB)
		bus = events.NewLocalBus()
	}
	defer bus.Close()
	slog.InfoContext(ctx, "Storage ready", "storage.backend", cfg.Storage.Backend)

	// Create services
	statsStore := stats.NewStore(statsRepo, bus)
	themeService := theme.NewService(settingsRepo, bus)
	userService := service.NewUserService(apirepository.NewUserRepository(sqlDB), []byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL)

	// Create hub
	h := hub.NewHub(bus, bot.NewRandomMover(nil), statsStore, themeService)
	go h.Run(ctx)

	// Create the Gin-based server
	srv := server.NewServer(h, userService, server.Controllers{
		User:  controller.NewUserController(userService),
		Game:  controller.NewGameController(h),
		Stats: controller.NewStatsController(statsStore),
		Theme: controller.NewThemeController(themeService),
	}, health)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Engine(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.InfoContext(ctx, "http server started", "http.addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}

	slog.Info("Server exiting")
	return nil
}
