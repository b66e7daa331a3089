package directory

import (
	"errors"
	"math/rand"
	"time"
)

// RosterPlayer is one admitted seat as the directory publishes it.
type RosterPlayer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Ready bool   `json:"isReady"`
}

// Room is a directory record. Game state lives in the room actor; the
// directory tracks what the REST surface needs to list and join rooms.
type Room struct {
	Code        string         `json:"room_id"`
	PlayerCount int            `json:"player_count"`
	MaxPlayers  int            `json:"max_players"`
	HasStarted  bool           `json:"has_started"`
	Players     []RosterPlayer `json:"players"`
	CreatedAt   time.Time      `json:"created_at"`
}

var (
	ErrNotFound = errors.New("room not found")
	ErrExists   = errors.New("room code already exists")
)

// Service is the room directory. Backends must serialize their own
// mutations; callers may hit the same code from many goroutines.
type Service interface {
	Create() (Room, error)
	Get(code string) (Room, error)
	SetRoster(code string, players []RosterPlayer) error
	SetStarted(code string, started bool) error
	Delete(code string) error
	List() ([]Room, error)
	Close() error
}

const (
	DefaultMaxPlayers = 4

	codeLength      = 6
	codeAlphabet    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	maxCodeAttempts = 10
)

var errCodeSpaceExhausted = errors.New("failed to generate unique room code")

func randomCode(rng *rand.Rand) string {
	buf := make([]byte, codeLength)
	for i := range buf {
		buf[i] = codeAlphabet[rng.Intn(len(codeAlphabet))]
	}
	return string(buf)
}
