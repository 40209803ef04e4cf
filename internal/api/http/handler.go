package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"yonkadingo/internal/room"
	"yonkadingo/internal/shared"
)

func respondError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, room.ErrRoomNotFound) || errors.Is(err, room.ErrParticipantNotFound) {
		status = http.StatusNotFound
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// @Summary Create new room
// @Description Start a new match and seat the creator in the first free class
// @Tags Room
// @Accept json
// @Produce json
// @Param request body CreateRoomRequest true "Player info"
// @Success 200 {object} JoinResponse
// @Failure 400 {object} ErrorResponse
// @Router /create-room [post]
func CreateRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid payload"})
			return
		}
		r, p := rm.CreateRoom(req.PlayerName)
		st, err := rm.State(r.Code)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, JoinResponse{RoomCode: r.Code, Participant: p, Room: st})
	}
}

// @Summary Join a room
// @Description Join an existing room; the first free class is assigned if any is left
// @Tags Room
// @Accept json
// @Produce json
// @Param request body JoinRoomRequest true "Room and player"
// @Success 200 {object} JoinResponse
// @Failure 404 {object} ErrorResponse
// @Router /join-room [post]
func JoinRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req JoinRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "room_code required"})
			return
		}
		p, err := rm.JoinRoom(req.RoomCode, req.PlayerName)
		if err != nil {
			respondError(c, err)
			return
		}
		st, err := rm.State(req.RoomCode)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, JoinResponse{RoomCode: req.RoomCode, Participant: p, Room: st})
	}
}

// @Summary Pick a class
// @Description Move a participant into a class. Taken classes are refused and nothing changes.
// @Tags Room
// @Accept json
// @Produce json
// @Param request body SetClassRequest true "Class choice"
// @Success 200 {object} shared.Participant
// @Failure 400 {object} ErrorResponse
// @Router /set-class [post]
func SetClassHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SetClassRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid payload"})
			return
		}
		p, err := rm.SetClass(req.RoomCode, req.ParticipantID, req.Class)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// @Summary Leave a room
// @Tags Room
// @Accept json
// @Produce json
// @Param request body LeaveRoomRequest true "Participant"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /leave-room [post]
func LeaveRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LeaveRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid payload"})
			return
		}
		if err := rm.LeaveRoom(req.RoomCode, req.ParticipantID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// @Summary Perform a crew action
// @Description Run the action for the participant's class. It must be that class's turn.
// @Tags Game
// @Accept json
// @Produce json
// @Param request body shared.ActionInput true "Action"
// @Success 200 {object} ActionResponse
// @Failure 400 {object} ErrorResponse
// @Router /action [post]
func ActionHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in shared.ActionInput
		if err := c.ShouldBindJSON(&in); err != nil || in.RoomCode == "" {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid payload"})
			return
		}
		res, err := rm.Act(in.RoomCode, in.ParticipantID, in.Action)
		if err != nil {
			respondError(c, err)
			return
		}
		st, err := rm.State(in.RoomCode)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, ActionResponse{Result: res, Room: st})
	}
}

// @Summary Room state
// @Description Fog-of-war board, ships, classes and turn
// @Tags Game
// @Produce json
// @Param room_code query string true "Room Code"
// @Success 200 {object} shared.RoomState
// @Failure 404 {object} ErrorResponse
// @Router /state [get]
func StateHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		st, err := rm.State(c.Query("room_code"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, st)
	}
}

// @Summary Class holders
// @Tags Room
// @Produce json
// @Param room_code query string true "Room Code"
// @Success 200 {object} ClassesResponse
// @Failure 404 {object} ErrorResponse
// @Router /classes [get]
func ClassesHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		holders, free, err := rm.Classes(c.Query("room_code"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, ClassesResponse{Classes: holders, Available: free})
	}
}

// @Summary Richest row or column
// @Description The row or column holding the most food and the most pellets right now
// @Tags Game
// @Produce json
// @Param room_code query string true "Room Code"
// @Success 200 {object} SurveyResponse
// @Failure 404 {object} ErrorResponse
// @Router /survey [get]
func SurveyHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := rm.Survey(c.Query("room_code"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, SurveyResponse{
			MostFood:    SurveyLine{Label: s.MostFood.Label(), Line: s.MostFood},
			MostPellets: SurveyLine{Label: s.MostPellets.Label(), Line: s.MostPellets},
		})
	}
}
