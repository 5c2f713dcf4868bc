package room

import (
	"strings"
	"time"
)

// SchemaVersion is the current persisted room document version.
const SchemaVersion = 1

// MaxSeats is the number of seats in a room.
const MaxSeats = 4

// Status describes the lifecycle of a room.
type Status int

const (
	// StatusUnspecified represents an invalid room status value.
	StatusUnspecified Status = iota
	// StatusLobby indicates the room is gathering players.
	StatusLobby
	// StatusPlacing indicates initial placement is underway.
	StatusPlacing
	// StatusPlaying indicates the main game is underway.
	StatusPlaying
	// StatusEnded indicates the game is over.
	StatusEnded
)

// TurnPhase describes the phase of the active player's turn.
type TurnPhase string

const (
	// TurnPhaseRoll indicates the active player has not rolled yet.
	TurnPhaseRoll TurnPhase = "roll"
	// TurnPhaseAction indicates the active player may build and trade.
	TurnPhaseAction TurnPhase = "action"
)

// Winner records the outcome of an ended game.
type Winner struct {
	PlayerID string `json:"playerId"`
	Score    int    `json:"score"`
}

// Room is the aggregate root document for one session.
type Room struct {
	ID               string     `json:"id"`
	Code             string     `json:"code"`
	Status           Status     `json:"status"`
	HostID           string     `json:"hostId"`
	CurrentPlayerID  string     `json:"currentPlayerId,omitempty"`
	Round            int        `json:"round"`
	TurnOrder        []string   `json:"turnOrder"`
	TurnPhase        TurnPhase  `json:"turnPhase"`
	RobberHex        string     `json:"robberHex,omitempty"`
	LargestArmyOwner string     `json:"largestArmyOwner,omitempty"`
	LongestRoadOwner string     `json:"longestRoadOwner,omitempty"`
	Winner           *Winner    `json:"winner,omitempty"`
	SchemaVersion    int        `json:"schemaVersion"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// IsStatusAdvanceAllowed reports whether a status change follows the forward
// lobby -> placing -> playing -> ended path. Reset transitions are handled
// separately and may move backwards.
func IsStatusAdvanceAllowed(from, to Status) bool {
	switch from {
	case StatusLobby:
		return to == StatusPlacing
	case StatusPlacing:
		return to == StatusPlaying || to == StatusLobby || to == StatusEnded
	case StatusPlaying:
		return to == StatusEnded
	default:
		return false
	}
}

// StatusLabel returns a stable label for a room status.
func StatusLabel(status Status) string {
	switch status {
	case StatusLobby:
		return "LOBBY"
	case StatusPlacing:
		return "PLACING"
	case StatusPlaying:
		return "PLAYING"
	case StatusEnded:
		return "ENDED"
	default:
		return "UNSPECIFIED"
	}
}

// StatusFromLabel converts a status label to a Status value.
func StatusFromLabel(label string) Status {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "LOBBY":
		return StatusLobby
	case "PLACING":
		return StatusPlacing
	case "PLAYING":
		return StatusPlaying
	case "ENDED":
		return StatusEnded
	default:
		return StatusUnspecified
	}
}

// Started reports whether the game has left the lobby.
func (r Room) Started() bool {
	return r.Status == StatusPlacing || r.Status == StatusPlaying
}
