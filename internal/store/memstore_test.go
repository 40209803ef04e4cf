package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"yonkadingo/internal/game"
	"yonkadingo/internal/room"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	rm := room.NewManager(s, game.DefaultRules(), 11)

	r, _ := rm.CreateRoom("ada")
	got, ok := s.GetRoom(r.Code)
	require.True(t, ok)
	require.Same(t, r, got)
	require.Equal(t, 1, s.Len())

	s.DeleteRoom(r.Code)
	_, ok = s.GetRoom(r.Code)
	require.False(t, ok)
	require.Zero(t, s.Len())

	s.DeleteRoom("missing")
}
