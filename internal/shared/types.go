package shared

import (
	"time"

	"yonkadingo/internal/game"
)

type Participant struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Class game.Role `json:"class"`
}

// ActionInput is one crew order as it arrives over HTTP or a socket frame.
type ActionInput struct {
	RoomCode      string `json:"room_code"`
	ParticipantID string `json:"participant_id"`
	game.Action
}

type RoomState struct {
	ID           string        `json:"id"`
	Code         string        `json:"code"`
	CreatedAt    time.Time     `json:"created_at"`
	Participants []Participant `json:"participants"`
	Finished     bool          `json:"finished"`
	Sunk         *game.Side    `json:"sunk,omitempty"`
	Match        game.Snapshot `json:"match"`
}

// ActionOutcome is broadcast after every accepted action.
type ActionOutcome struct {
	ParticipantID string      `json:"participant_id"`
	Class         game.Role   `json:"class"`
	Result        game.Result `json:"result"`
	State         RoomState   `json:"state"`
}
