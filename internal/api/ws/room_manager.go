package ws

import (
	"yonkadingo/internal/game"
	"yonkadingo/internal/shared"
)

// RoomManager is the part of the session layer the hub drives.
type RoomManager interface {
	Act(roomCode, participantID string, a game.Action) (game.Result, error)
	State(roomCode string) (shared.RoomState, error)
}
