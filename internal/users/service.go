package users

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// User is an account record. ID is the opaque identifier clients carry
// into rooms as player_id.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

var (
	ErrInvalidUsername    = errors.New("username must be 3-24 characters: letters, digits, underscore")
	ErrInvalidPassword    = errors.New("password must be at least 8 characters")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotFound           = errors.New("user not found")
)

// Service is the account store. All backends hash passwords with
// bcrypt and treat usernames case-insensitively.
type Service interface {
	Register(username, password string) (User, error)
	Login(username, password string) (User, error)
	Get(id string) (User, error)
	Close() error
}

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,24}$`)

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func validateUsername(username string) error {
	if !usernamePattern.MatchString(strings.TrimSpace(username)) {
		return ErrInvalidUsername
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return ErrInvalidPassword
	}
	return nil
}
