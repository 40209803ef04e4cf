package room

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"yonkadingo/internal/game"
	"yonkadingo/internal/shared"
)

var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrNotYourTurn         = errors.New("not your turn")
	ErrActionNotAllowed    = errors.New("action not allowed for your class")
	ErrRoleTaken           = errors.New("class already taken")
	ErrMatchOver           = errors.New("match is over")
)

const (
	EventStateUpdated = "state-updated"
	EventGameOver     = "game-over"
)

type Manager struct {
	store Store
	rules game.Rules
	hub   Broadcaster

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewManager builds a manager whose matches use rules. A zero seed picks one
// from the clock.
func NewManager(s Store, rules game.Rules, seed uint64) *Manager {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Manager{
		store: s,
		rules: rules,
		hub:   nopBroadcaster{},
		rng:   rand.New(rand.NewSource(seed)),
	}
}

func (m *Manager) SetHub(hub Broadcaster) {
	if hub == nil {
		hub = nopBroadcaster{}
	}
	m.hub = hub
}

func (m *Manager) Rules() game.Rules {
	return m.rules
}

// CreateRoom starts a match and seats its creator in the first free class.
func (m *Manager) CreateRoom(name string) (*Room, shared.Participant) {
	m.rngMu.Lock()
	code := m.uniqueCode()
	match := game.NewMatch(code, m.rules, m.rng)
	m.rngMu.Unlock()

	r := &Room{
		ID:        uuid.NewString(),
		Code:      code,
		CreatedAt: time.Now(),
		match:     match,
	}
	p := r.join(name)
	m.store.SaveRoom(r)

	log.Info().Str("room", code).Str("participant", p.ID).Stringer("class", p.Class).Msg("room created")
	return r, p
}

func (m *Manager) JoinRoom(code, name string) (shared.Participant, error) {
	r, err := m.get(code)
	if err != nil {
		return shared.Participant{}, err
	}

	r.mu.Lock()
	p := r.join(name)
	st := r.state()
	r.mu.Unlock()

	log.Info().Str("room", code).Str("participant", p.ID).Stringer("class", p.Class).Msg("participant joined")
	m.hub.Broadcast(code, EventStateUpdated, st)
	return p, nil
}

func (m *Manager) SetClass(code, participantID string, role game.Role) (shared.Participant, error) {
	if !role.Valid() {
		return shared.Participant{}, fmt.Errorf("unknown class %q", role)
	}
	r, err := m.get(code)
	if err != nil {
		return shared.Participant{}, err
	}

	r.mu.Lock()
	i, ok := r.participant(participantID)
	if !ok {
		r.mu.Unlock()
		return shared.Participant{}, ErrParticipantNotFound
	}
	if !r.match.SetClass(participantID, role) {
		r.mu.Unlock()
		return shared.Participant{}, fmt.Errorf("%w: %s", ErrRoleTaken, role)
	}
	p := r.participants[i]
	p.Class = role
	st := r.state()
	r.mu.Unlock()

	m.hub.Broadcast(code, EventStateUpdated, st)
	return p, nil
}

// LeaveRoom frees the participant's class. The room is dropped once nobody is
// left in it.
func (m *Manager) LeaveRoom(code, participantID string) error {
	r, err := m.get(code)
	if err != nil {
		return err
	}

	r.mu.Lock()
	i, ok := r.participant(participantID)
	if !ok {
		r.mu.Unlock()
		return ErrParticipantNotFound
	}
	r.match.RemoveUserFromGame(participantID)
	r.participants = append(r.participants[:i], r.participants[i+1:]...)
	empty := len(r.participants) == 0
	st := r.state()
	r.mu.Unlock()

	log.Info().Str("room", code).Str("participant", participantID).Msg("participant left")
	if empty {
		m.store.DeleteRoom(code)
		log.Info().Str("room", code).Msg("room closed")
		return nil
	}
	m.hub.Broadcast(code, EventStateUpdated, st)
	return nil
}

// Act runs one crew order on behalf of a participant. It must be their class's
// turn and the action must belong to that class.
func (m *Manager) Act(code, participantID string, a game.Action) (game.Result, error) {
	r, err := m.get(code)
	if err != nil {
		return game.Result{}, err
	}

	r.mu.Lock()
	res, outcome, err := r.act(participantID, a)
	r.mu.Unlock()

	logger := log.With().Str("room", code).Str("participant", participantID).Str("action", string(a.Type)).Logger()
	if err != nil {
		logger.Warn().Err(err).Msg("action rejected")
		return res, err
	}
	logger.Info().Stringer("class", outcome.Class).Msg("action applied")

	m.hub.Broadcast(code, EventStateUpdated, outcome)
	if outcome.State.Finished {
		m.hub.Broadcast(code, EventGameOver, outcome.State)
	}
	return res, nil
}

func (r *Room) act(participantID string, a game.Action) (game.Result, shared.ActionOutcome, error) {
	if _, ok := r.participant(participantID); !ok {
		return game.Result{}, shared.ActionOutcome{}, ErrParticipantNotFound
	}
	if r.finished {
		return game.Result{}, shared.ActionOutcome{}, ErrMatchOver
	}

	required, ok := a.Type.Role()
	if !ok {
		return game.Result{}, shared.ActionOutcome{}, fmt.Errorf("%w: %q", game.ErrUnknownAction, a.Type)
	}
	class := r.match.ClassOf(participantID)
	if class == game.RoleNone || class != r.match.CurrentTurn() {
		return game.Result{}, shared.ActionOutcome{}, ErrNotYourTurn
	}
	if required != game.RoleNone && required != class {
		return game.Result{}, shared.ActionOutcome{}, fmt.Errorf("%w: %s cannot %s", ErrActionNotAllowed, class, a.Type)
	}

	res, err := r.match.Apply(a)
	if err != nil {
		return res, shared.ActionOutcome{}, err
	}
	if side, sunk := r.match.Sunk(); sunk {
		r.finished = true
		r.sunk = &side
		log.Info().Str("room", r.Code).Stringer("sunk", side).Msg("match over")
	}

	return res, shared.ActionOutcome{
		ParticipantID: participantID,
		Class:         class,
		Result:        res,
		State:         r.state(),
	}, nil
}

func (m *Manager) State(code string) (shared.RoomState, error) {
	r, err := m.get(code)
	if err != nil {
		return shared.RoomState{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state(), nil
}

// Classes reports who holds each class and which ones are still free.
func (m *Manager) Classes(code string) (map[game.Role]string, []game.Role, error) {
	r, err := m.get(code)
	if err != nil {
		return nil, nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.match.GiveClassesForGame(), r.match.AvailableClasses(), nil
}

func (m *Manager) Survey(code string) (game.Survey, error) {
	r, err := m.get(code)
	if err != nil {
		return game.Survey{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.match.Survey(), nil
}

func (m *Manager) get(code string) (*Room, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRoomNotFound, code)
	}
	return r, nil
}

// join must be called with mu held, or before the room is shared.
func (r *Room) join(name string) shared.Participant {
	p := shared.Participant{ID: uuid.NewString(), Name: sanitizeName(name)}
	p.Class = r.match.SetToFirstAvailableClass(p.ID)
	r.participants = append(r.participants, p)
	return p
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// uniqueCode must be called with rngMu held.
func (m *Manager) uniqueCode() string {
	for {
		code := randCode(m.rng, 6)
		if _, taken := m.store.GetRoom(code); !taken {
			return code
		}
	}
}

func randCode(rng *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rng.Intn(len(letters))]
	}
	return string(b)
}
