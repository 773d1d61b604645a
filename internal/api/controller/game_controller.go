package controller

import (
	"ctchen222/Tic-Tac-Toe-Solo/internal/api/middleware"
	"ctchen222/Tic-Tac-Toe-Solo/internal/api/models"
	"ctchen222/Tic-Tac-Toe-Solo/internal/api/response"
	"ctchen222/Tic-Tac-Toe-Solo/internal/game"
	"ctchen222/Tic-Tac-Toe-Solo/internal/room"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RoomProvider hands out the room of a profile.
type RoomProvider interface {
	RoomFor(profileID string) *room.Room
}

// GameController exposes the turn controller over HTTP.
type GameController struct {
	rooms RoomProvider
}

func NewGameController(rooms RoomProvider) *GameController {
	return &GameController{rooms: rooms}
}

// GetGame returns the current board without changing it.
func (gc *GameController) GetGame(c *gin.Context) {
	snap := gc.rooms.RoomFor(middleware.ProfileID(c)).Snapshot()
	response.SuccessResponse(c, models.NewGameResponse(snap))
}

// Tap places X on the cell and lets the bot answer. Invalid taps are not
// errors: the unchanged board comes back flagged as ignored.
func (gc *GameController) Tap(c *gin.Context) {
	var req models.TapRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "cell index must be an integer")
		return
	}

	snap, err := gc.rooms.RoomFor(middleware.ProfileID(c)).Tap(c.Request.Context(), req.Index)
	if errors.Is(err, game.ErrInvalidMove) {
		resp := models.NewGameResponse(snap)
		resp.Ignored = true
		response.SuccessResponse(c, resp)
		return
	}
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "Failed to apply tap", "cell.index", req.Index, "error", err)
		response.ErrorResponse(c, http.StatusInternalServerError, "failed to apply tap")
		return
	}

	response.SuccessResponse(c, models.NewGameResponse(snap))
}

// Restart clears the board. It is valid at any time.
func (gc *GameController) Restart(c *gin.Context) {
	snap := gc.rooms.RoomFor(middleware.ProfileID(c)).Restart(c.Request.Context())
	response.SuccessResponse(c, models.NewGameResponse(snap))
}
