package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAssignsUniqueCodes(t *testing.T) {
	s := NewMemoryService()
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		room, err := s.Create()
		require.NoError(t, err)
		require.Len(t, room.Code, codeLength)
		assert.False(t, seen[room.Code], "duplicate code %s", room.Code)
		seen[room.Code] = true
		assert.Equal(t, DefaultMaxPlayers, room.MaxPlayers)
		assert.Equal(t, 0, room.PlayerCount)
		assert.False(t, room.HasStarted)
	}
}

func TestGetUnknownRoom(t *testing.T) {
	s := NewMemoryService()
	_, err := s.Get("NOSUCH")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetRosterAndStarted(t *testing.T) {
	s := NewMemoryService()
	room, err := s.Create()
	require.NoError(t, err)

	roster := []RosterPlayer{
		{ID: "p1", Name: "alice", Ready: true},
		{ID: "p2", Name: "bob"},
		{ID: "p3", Name: "carol"},
	}
	require.NoError(t, s.SetRoster(room.Code, roster))
	require.NoError(t, s.SetStarted(room.Code, true))

	got, err := s.Get(room.Code)
	require.NoError(t, err)
	assert.Equal(t, 3, got.PlayerCount)
	assert.Equal(t, roster, got.Players)
	assert.True(t, got.HasStarted)

	assert.ErrorIs(t, s.SetRoster("NOSUCH", nil), ErrNotFound)
	assert.ErrorIs(t, s.SetStarted("NOSUCH", true), ErrNotFound)
}

func TestDeleteRemovesRoom(t *testing.T) {
	s := NewMemoryService()
	room, err := s.Create()
	require.NoError(t, err)

	require.NoError(t, s.Delete(room.Code))
	_, err = s.Get(room.Code)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent room is a no-op.
	assert.NoError(t, s.Delete(room.Code))
}

func TestListReturnsAllRooms(t *testing.T) {
	s := NewMemoryService()
	for i := 0; i < 3; i++ {
		_, err := s.Create()
		require.NoError(t, err)
	}
	rooms, err := s.List()
	require.NoError(t, err)
	assert.Len(t, rooms, 3)
}
