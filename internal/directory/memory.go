package directory

import (
	"math/rand"
	"sync"
	"time"
)

// MemoryService keeps the directory in process memory. The default
// backend; rooms do not survive a restart.
type MemoryService struct {
	mu    sync.Mutex
	rooms map[string]Room
	rng   *rand.Rand
}

func NewMemoryService() *MemoryService {
	return &MemoryService{
		rooms: make(map[string]Room),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *MemoryService) Create() (Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := randomCode(s.rng)
		if _, taken := s.rooms[code]; taken {
			continue
		}
		room := Room{
			Code:        code,
			PlayerCount: 0,
			MaxPlayers:  DefaultMaxPlayers,
			Players:     []RosterPlayer{},
			CreatedAt:   time.Now().UTC(),
		}
		s.rooms[code] = room
		return room, nil
	}
	return Room{}, errCodeSpaceExhausted
}

func (s *MemoryService) Get(code string) (Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[code]
	if !ok {
		return Room{}, ErrNotFound
	}
	return room, nil
}

func (s *MemoryService) SetRoster(code string, players []RosterPlayer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[code]
	if !ok {
		return ErrNotFound
	}
	room.Players = append([]RosterPlayer(nil), players...)
	room.PlayerCount = len(players)
	s.rooms[code] = room
	return nil
}

func (s *MemoryService) SetStarted(code string, started bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[code]
	if !ok {
		return ErrNotFound
	}
	room.HasStarted = started
	s.rooms[code] = room
	return nil
}

func (s *MemoryService) Delete(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, code)
	return nil
}

func (s *MemoryService) List() ([]Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Room, 0, len(s.rooms))
	for _, room := range s.rooms {
		out = append(out, room)
	}
	return out, nil
}

func (s *MemoryService) Close() error { return nil }
