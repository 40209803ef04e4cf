package http

import (
	"yonkadingo/internal/game"
	"yonkadingo/internal/shared"
)

// CreateRoomRequest represents the payload for /create-room.
type CreateRoomRequest struct {
	PlayerName string `json:"player_name"`
}

// JoinRoomRequest represents the payload for joining an existing room.
type JoinRoomRequest struct {
	RoomCode   string `json:"room_code" binding:"required"`
	PlayerName string `json:"player_name"`
}

// SetClassRequest asks for a specific crew class.
type SetClassRequest struct {
	RoomCode      string    `json:"room_code" binding:"required"`
	ParticipantID string    `json:"participant_id" binding:"required"`
	Class         game.Role `json:"class" swaggertype:"string" example:"Gunner"`
}

type LeaveRoomRequest struct {
	RoomCode      string `json:"room_code" binding:"required"`
	ParticipantID string `json:"participant_id" binding:"required"`
}

type JoinResponse struct {
	RoomCode    string             `json:"room_code"`
	Participant shared.Participant `json:"participant"`
	Room        shared.RoomState   `json:"room"`
}

type ActionResponse struct {
	Result game.Result      `json:"result"`
	Room   shared.RoomState `json:"room"`
}

type ClassesResponse struct {
	Classes   map[game.Role]string `json:"classes"`
	Available []game.Role          `json:"available"`
}

type SurveyLine struct {
	Label string `json:"label"`
	game.Line
}

type SurveyResponse struct {
	MostFood    SurveyLine `json:"mostFood"`
	MostPellets SurveyLine `json:"mostPellets"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
