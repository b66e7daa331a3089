package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	s := NewMemoryService()

	created, err := s.Register("Alice_01", "secret-password")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "alice_01", created.Username)

	logged, err := s.Login("alice_01", "secret-password")
	require.NoError(t, err)
	assert.Equal(t, created.ID, logged.ID)

	fetched, err := s.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Username, fetched.Username)
}

func TestRegisterValidation(t *testing.T) {
	s := NewMemoryService()

	_, err := s.Register("ab", "secret-password")
	assert.ErrorIs(t, err, ErrInvalidUsername)

	_, err = s.Register("has spaces", "secret-password")
	assert.ErrorIs(t, err, ErrInvalidUsername)

	_, err = s.Register("alice_01", "short")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestUsernamesAreCaseInsensitive(t *testing.T) {
	s := NewMemoryService()
	_, err := s.Register("alice_01", "secret-password")
	require.NoError(t, err)

	_, err = s.Register("ALICE_01", "another-password")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	logged, err := s.Login("Alice_01", "secret-password")
	require.NoError(t, err)
	assert.Equal(t, "alice_01", logged.Username)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	s := NewMemoryService()
	_, err := s.Register("alice_01", "secret-password")
	require.NoError(t, err)

	_, err = s.Login("alice_01", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Login("nobody", "secret-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetUnknownUser(t *testing.T) {
	s := NewMemoryService()
	_, err := s.Get("missing-id")
	assert.ErrorIs(t, err, ErrNotFound)
}
