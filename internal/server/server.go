package server

import (
	"context"
	"ctchen222/Tic-Tac-Toe-Solo/internal/api/controller"
	"ctchen222/Tic-Tac-Toe-Solo/internal/api/middleware"
	"ctchen222/Tic-Tac-Toe-Solo/internal/api/response"
	"ctchen222/Tic-Tac-Toe-Solo/internal/hub/types"
	"ctchen222/Tic-Tac-Toe-Solo/internal/player"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("server")

// Registrar accepts new websocket connections.
type Registrar interface {
	Register() chan<- *types.RegistrationRequest
}

// Controllers groups the HTTP handlers mounted by the server.
type Controllers struct {
	User  *controller.UserController
	Game  *controller.GameController
	Stats *controller.StatsController
	Theme *controller.ThemeController
}

type Server struct {
	hub      Registrar
	tokens   middleware.TokenParser
	health   func(ctx context.Context) error
	upgrader websocket.Upgrader
	engine   *gin.Engine
}

// NewServer wires the routes. health may be nil.
func NewServer(h Registrar, tokens middleware.TokenParser, ctrls Controllers, health func(ctx context.Context) error) *Server {
	s := &Server{
		hub:    h,
		tokens: tokens,
		health: health,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		engine: gin.New(),
	}
	s.engine.Use(gin.Recovery(), requestLogger())
	s.registerRoutes(ctrls)
	return s
}

func (s *Server) registerRoutes(ctrls Controllers) {
	s.engine.GET("/healthz", s.handleHealth)

	users := s.engine.Group("/api/users")
	users.POST("/register", ctrls.User.Register)
	users.POST("/login", ctrls.User.Login)
	users.POST("/guest", ctrls.User.GuestLogin)

	authed := s.engine.Group("/api", middleware.RequireProfile(s.tokens))
	authed.GET("/game", ctrls.Game.GetGame)
	authed.POST("/game/cells/:index", ctrls.Game.Tap)
	authed.POST("/game/restart", ctrls.Game.Restart)
	authed.GET("/stats", ctrls.Stats.GetStats)
	authed.GET("/theme", ctrls.Theme.GetTheme)
	authed.POST("/theme/toggle", ctrls.Theme.Toggle)

	s.engine.GET("/ws", middleware.RequireProfile(s.tokens), s.handleWebSocket)
}

// Engine returns the HTTP handler.
func (s *Server) Engine() http.Handler {
	return s.engine
}

func (s *Server) handleHealth(c *gin.Context) {
	if s.health != nil {
		if err := s.health(c.Request.Context()); err != nil {
			slog.WarnContext(c.Request.Context(), "Health check failed", "error", err)
			response.ErrorResponse(c, http.StatusServiceUnavailable, "unhealthy")
			return
		}
	}
	response.SuccessResponse(c, gin.H{"status": "ok"})
}

// handleWebSocket's only responsibility is to upgrade the connection and
// pass a registration request to the hub.
func (s *Server) handleWebSocket(c *gin.Context) {
	profileID := middleware.ProfileID(c)
	ctx, span := tracer.Start(c.Request.Context(), "server.handleWebSocket", trace.WithAttributes(
		attribute.String("http.url", c.Request.URL.Path),
		attribute.String("profile.id", profileID),
	))
	defer span.End()

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// The upgrader has already written an HTTP error.
		slog.WarnContext(ctx, "Failed to upgrade connection", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to upgrade connection")
		return
	}

	p := player.NewPlayer(uuid.New().String(), profileID, conn)
	span.SetAttributes(attribute.String("player.id", p.ID))

	s.hub.Register() <- &types.RegistrationRequest{
		Player:    p,
		ProfileID: profileID,
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		slog.DebugContext(c.Request.Context(), "HTTP request",
			"http.method", c.Request.Method,
			"http.route", c.FullPath(),
			"http.status", c.Writer.Status(),
		)
	}
}
