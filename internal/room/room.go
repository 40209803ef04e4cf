package room

import (
	"strings"
	"sync"
	"time"

	"yonkadingo/internal/game"
	"yonkadingo/internal/shared"
)

// Room is one match plus the people connected to it. All access to the match
// goes through mu.
type Room struct {
	ID        string
	Code      string
	CreatedAt time.Time

	mu           sync.Mutex
	match        *game.Match
	participants []shared.Participant
	finished     bool
	sunk         *game.Side
}

type Store interface {
	GetRoom(code string) (*Room, bool)
	SaveRoom(r *Room)
	DeleteRoom(code string)
}

func (r *Room) participant(id string) (int, bool) {
	for i, p := range r.participants {
		if p.ID == id {
			return i, true
		}
	}
	return -1, false
}

// state must be called with mu held.
func (r *Room) state() shared.RoomState {
	people := make([]shared.Participant, 0, len(r.participants))
	for _, p := range r.participants {
		p.Class = r.match.ClassOf(p.ID)
		people = append(people, p)
	}
	st := shared.RoomState{
		ID:           r.ID,
		Code:         r.Code,
		CreatedAt:    r.CreatedAt,
		Participants: people,
		Finished:     r.finished,
		Match:        r.match.Snapshot(),
	}
	if r.sunk != nil {
		side := *r.sunk
		st.Sunk = &side
	}
	return st
}

// sanitizeName drops every non-ASCII character.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, ch := range name {
		if ch <= 0x7F {
			b.WriteRune(ch)
		}
	}
	out := strings.TrimSpace(b.String())
	if out == "" {
		return "Sailor"
	}
	return out
}
