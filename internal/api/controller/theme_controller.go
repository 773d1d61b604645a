package controller

import (
	"context"
	"ctchen222/Tic-Tac-Toe-Solo/internal/api/middleware"
	"ctchen222/Tic-Tac-Toe-Solo/internal/api/models"
	"ctchen222/Tic-Tac-Toe-Solo/internal/api/response"
	"ctchen222/Tic-Tac-Toe-Solo/internal/theme"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ThemeService interface {
	Load(ctx context.Context, profileID string) (theme.Theme, error)
	Toggle(ctx context.Context, profileID string) (theme.Theme, string, error)
}

type ThemeController struct {
	themes ThemeService
}

func NewThemeController(themes ThemeService) *ThemeController {
	return &ThemeController{themes: themes}
}

func (tc *ThemeController) GetTheme(c *gin.Context) {
	th, err := tc.themes.Load(c.Request.Context(), middleware.ProfileID(c))
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "Failed to load theme", "error", err)
		response.ErrorResponse(c, http.StatusInternalServerError, "failed to load theme")
		return
	}
	response.SuccessResponse(c, models.ThemeResponse{Theme: th})
}

// Toggle flips dark mode and returns the notification text with the new theme.
func (tc *ThemeController) Toggle(c *gin.Context) {
	th, message, err := tc.themes.Toggle(c.Request.Context(), middleware.ProfileID(c))
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "Failed to toggle theme", "error", err)
		response.ErrorResponse(c, http.StatusInternalServerError, "failed to toggle theme")
		return
	}
	response.SuccessResponse(c, models.ThemeResponse{Theme: th, Message: message})
}
