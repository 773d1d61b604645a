package player

import "time"

// Connection is an interface that abstracts the websocket connection.
type Connection interface {
	WriteMessage(messageType int, data []byte) error
	ReadMessage() (int, []byte, error)
	Close() error
}

type PlayerStatus string

const (
	StatusConnected    PlayerStatus = "connected"
	StatusDisconnected PlayerStatus = "disconnected"
)

// Player is one client connection of a profile. A profile may have several
// open at once (e.g. two browser tabs).
type Player struct {
	ID        string
	ProfileID string
	Conn      Connection
	Status    PlayerStatus
	LastSeen  time.Time
}

func NewPlayer(id, profileID string, conn Connection) *Player {
	return &Player{
		ID:        id,
		ProfileID: profileID,
		Conn:      conn,
		Status:    StatusConnected,
		LastSeen:  time.Now(),
	}
}
