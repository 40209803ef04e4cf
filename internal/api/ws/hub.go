package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"yonkadingo/internal/shared"
)

const (
	ActionPerform = "perform_action"
	EventRejected = "action-rejected"
)

type client struct {
	participantID string
	// gorilla connections allow one concurrent writer.
	writeMu sync.Mutex
}

type Hub struct {
	mu          sync.RWMutex
	rooms       map[string]map[*websocket.Conn]*client
	roomManager RoomManager
}

func NewHub(roomManager RoomManager) *Hub {
	return &Hub{
		rooms:       make(map[string]map[*websocket.Conn]*client),
		roomManager: roomManager,
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type frame struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

// HandleWS subscribes a socket to one room and applies any perform_action
// frames it sends.
// @Summary Live room updates
// @Description Upgrades to a websocket subscribed to a room. Send {"action":"perform_action","data":ActionInput} frames to act.
// @Tags Room
// @Param room_code query string true "Room Code"
// @Param participant_id query string false "Participant ID"
// @Router /ws [get]
func (h *Hub) HandleWS(c *gin.Context) {
	roomCode := c.Query("room_code")
	if roomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing room_code"})
		return
	}
	state, err := h.roomManager.State(roomCode)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Str("room", roomCode).Msg("websocket upgrade failed")
		return
	}
	cl := &client{participantID: c.Query("participant_id")}
	logger := log.With().Str("room", roomCode).Str("participant", cl.participantID).Logger()
	logger.Debug().Msg("websocket connected")

	h.mu.Lock()
	if _, ok := h.rooms[roomCode]; !ok {
		h.rooms[roomCode] = make(map[*websocket.Conn]*client)
	}
	h.rooms[roomCode][conn] = cl
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.rooms[roomCode], conn)
		if len(h.rooms[roomCode]) == 0 {
			delete(h.rooms, roomCode)
		}
		h.mu.Unlock()
		_ = conn.Close()
		logger.Debug().Msg("websocket closed")
	}()

	h.send(conn, cl, "state-updated", state)

	for {
		var msg frame
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn().Err(err).Msg("websocket read failed")
			}
			return
		}

		switch msg.Action {
		case ActionPerform:
			h.perform(conn, cl, roomCode, msg.Data)
		default:
			logger.Debug().Str("action", msg.Action).Msg("unknown frame")
			h.send(conn, cl, EventRejected, gin.H{"error": "unknown action " + msg.Action})
		}
	}
}

func (h *Hub) perform(conn *websocket.Conn, cl *client, roomCode string, raw json.RawMessage) {
	var in shared.ActionInput
	if err := json.Unmarshal(raw, &in); err != nil {
		h.send(conn, cl, EventRejected, gin.H{"error": "invalid action payload"})
		return
	}
	if in.ParticipantID == "" {
		in.ParticipantID = cl.participantID
	}
	if in.RoomCode != "" && in.RoomCode != roomCode {
		h.send(conn, cl, EventRejected, gin.H{"error": "room_code does not match this socket"})
		return
	}

	// Accepted actions reach every subscriber through Broadcast.
	if _, err := h.roomManager.Act(roomCode, in.ParticipantID, in.Action); err != nil {
		h.send(conn, cl, EventRejected, gin.H{"error": err.Error(), "action": in.Type})
	}
}

func (h *Hub) send(conn *websocket.Conn, cl *client, action string, data interface{}) {
	cl.writeMu.Lock()
	defer cl.writeMu.Unlock()
	if err := conn.WriteJSON(gin.H{"action": action, "data": data}); err != nil {
		log.Warn().Err(err).Msg("websocket write failed")
	}
}

// Broadcast sends {"action": action, "data": data} to every socket in the room.
func (h *Hub) Broadcast(roomCode string, action string, data interface{}) {
	h.mu.RLock()
	clients := make(map[*websocket.Conn]*client, len(h.rooms[roomCode]))
	for conn, cl := range h.rooms[roomCode] {
		clients[conn] = cl
	}
	h.mu.RUnlock()

	message := gin.H{"action": action, "data": data}
	for conn, cl := range clients {
		cl.writeMu.Lock()
		err := conn.WriteJSON(message)
		cl.writeMu.Unlock()
		if err != nil {
			log.Warn().Err(err).Str("room", roomCode).Msg("failed to send message")
			_ = conn.Close()
		}
	}
}

// Subscribers counts open sockets for a room.
func (h *Hub) Subscribers(roomCode string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomCode])
}
