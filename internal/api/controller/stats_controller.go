package controller

import (
	"context"
	"ctchen222/Tic-Tac-Toe-Solo/internal/api/middleware"
	"ctchen222/Tic-Tac-Toe-Solo/internal/api/models"
	"ctchen222/Tic-Tac-Toe-Solo/internal/api/response"
	"ctchen222/Tic-Tac-Toe-Solo/internal/game"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type StatsLoader interface {
	Load(ctx context.Context, profileID string) (game.Stats, error)
}

type StatsController struct {
	stats StatsLoader
}

func NewStatsController(stats StatsLoader) *StatsController {
	return &StatsController{stats: stats}
}

// GetStats returns the counters with their display line.
func (sc *StatsController) GetStats(c *gin.Context) {
	stats, err := sc.stats.Load(c.Request.Context(), middleware.ProfileID(c))
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "Failed to load stats", "error", err)
		response.ErrorResponse(c, http.StatusInternalServerError, "failed to load stats")
		return
	}
	response.SuccessResponse(c, models.NewStatsResponse(stats))
}
