package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"yonkadingo/internal/api/ws"
	"yonkadingo/internal/game"
	"yonkadingo/internal/room"
	"yonkadingo/internal/shared"
	"yonkadingo/internal/store"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rm := room.NewManager(store.NewMemoryStore(), game.DefaultRules(), 21)
	hub := ws.NewHub(rm)
	rm.SetHub(hub)
	return NewRouter(rm, hub)
}

func do(t *testing.T, r *gin.Engine, method, path string, body interface{}, out interface{}) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if out != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	}
	return w.Code
}

func TestRoomLifecycle(t *testing.T) {
	r := newTestRouter(t)

	var created JoinResponse
	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/create-room", CreateRoomRequest{PlayerName: "Ada"}, &created))
	require.NotEmpty(t, created.RoomCode)
	require.Equal(t, game.Steward, created.Participant.Class)
	require.Equal(t, 7, created.Room.Match.Rows)
	require.Equal(t, 14, created.Room.Match.Columns)

	var joined JoinResponse
	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/join-room", JoinRoomRequest{RoomCode: created.RoomCode, PlayerName: "Bo"}, &joined))
	require.Equal(t, game.Bosun, joined.Participant.Class)
	require.Len(t, joined.Room.Participants, 2)

	var errBody ErrorResponse
	require.Equal(t, http.StatusNotFound, do(t, r, http.MethodPost, "/join-room", JoinRoomRequest{RoomCode: "ZZZZZZ"}, &errBody))
	require.Contains(t, errBody.Error, "room not found")

	var p shared.Participant
	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/set-class", gin.H{
		"room_code": created.RoomCode, "participant_id": joined.Participant.ID, "class": "Gunner",
	}, &p))
	require.Equal(t, game.Gunner, p.Class)

	require.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPost, "/set-class", gin.H{
		"room_code": created.RoomCode, "participant_id": joined.Participant.ID, "class": "Steward",
	}, &errBody))
	require.Contains(t, errBody.Error, "already taken")

	var classes ClassesResponse
	require.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/classes?room_code="+created.RoomCode, nil, &classes))
	require.Equal(t, joined.Participant.ID, classes.Classes[game.Gunner])
	require.Equal(t, []game.Role{game.Bosun, game.Topman, game.Helmsman}, classes.Available)

	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/leave-room", LeaveRoomRequest{RoomCode: created.RoomCode, ParticipantID: joined.Participant.ID}, nil))
	require.Equal(t, http.StatusNotFound, do(t, r, http.MethodPost, "/leave-room", LeaveRoomRequest{RoomCode: created.RoomCode, ParticipantID: joined.Participant.ID}, nil))
	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/leave-room", LeaveRoomRequest{RoomCode: created.RoomCode, ParticipantID: created.Participant.ID}, nil))
	require.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/state?room_code="+created.RoomCode, nil, nil))
}

func TestActionEndpoint(t *testing.T) {
	r := newTestRouter(t)

	var created JoinResponse
	do(t, r, http.MethodPost, "/create-room", CreateRoomRequest{PlayerName: "Solo"}, &created)
	code, id := created.RoomCode, created.Participant.ID

	var errBody ErrorResponse
	require.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPost, "/action", gin.H{
		"room_code": code, "participant_id": id, "action": "fire",
	}, &errBody))
	require.Contains(t, errBody.Error, "not allowed")

	var res ActionResponse
	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/action", gin.H{
		"room_code": code, "participant_id": id, "action": "buff", "class": "Topman",
	}, &res))
	require.Equal(t, game.ActionBuff, res.Result.Action)
	require.Equal(t, game.Topman, res.Room.Match.ClassToBuff)
	require.Equal(t, game.Steward, res.Room.Match.CurrentTurn, "a lone steward keeps the turn")

	require.Equal(t, http.StatusNotFound, do(t, r, http.MethodPost, "/action", gin.H{
		"room_code": code, "participant_id": "ghost", "action": "pass",
	}, nil))
	require.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPost, "/action", gin.H{"action": "pass"}, nil))

	var st shared.RoomState
	require.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/state?room_code="+code, nil, &st))
	require.Equal(t, code, st.Code)
	require.False(t, st.Finished)
	require.Equal(t, 50, st.Match.PlayerShip.HP)

	var survey SurveyResponse
	require.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/survey?room_code="+code, nil, &survey))
	require.NotEmpty(t, survey.MostFood.Label)
	require.Equal(t, survey.MostFood.Label, survey.MostFood.Line.Label())
}

func TestRulesEndpoint(t *testing.T) {
	r := newTestRouter(t)
	var rules game.Rules
	require.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/config/rules", nil, &rules))
	require.Equal(t, game.DefaultRules(), rules)
}
