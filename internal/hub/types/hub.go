package types

import "ctchen222/Tic-Tac-Toe-Solo/internal/player"

// RegistrationRequest asks the hub to attach a freshly upgraded connection
// to the room of its profile.
type RegistrationRequest struct {
	Player    *player.Player
	ProfileID string
}
