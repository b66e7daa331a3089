package room

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Aditya130805/MonopolyDeal/internal/directory"
	"github.com/Aditya130805/MonopolyDeal/internal/users"
)

var ErrRoomNotFound = errors.New("room not found")

const sweepInterval = time.Minute

// Manager owns the live room actors. Rooms exist in the directory
// first; the actor is created lazily on the first websocket attach
// and removed when it shuts down.
type Manager struct {
	mu    sync.RWMutex
	rooms map[string]*Room

	directory directory.Service
	users     users.Service
	log       *zap.Logger

	done     chan struct{}
	stopOnce sync.Once
}

func NewManager(dir directory.Service, userSvc users.Service, log *zap.Logger) *Manager {
	m := &Manager{
		rooms:     make(map[string]*Room),
		directory: dir,
		users:     userSvc,
		log:       log,
		done:      make(chan struct{}),
	}
	go m.janitor()
	return m
}

// janitor sweeps directory records for rooms no client ever attached
// to. Rooms with a live actor manage their own lifecycle and delete
// their record when the last member leaves.
func (m *Manager) janitor() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			m.sweepStale(time.Now())
		case <-m.done:
			return
		}
	}
}

func (m *Manager) sweepStale(now time.Time) {
	recs, err := m.directory.List()
	if err != nil {
		m.log.Warn("directory sweep failed", zap.Error(err))
		return
	}
	for _, rec := range recs {
		if rec.HasStarted || rec.PlayerCount > 0 || now.Sub(rec.CreatedAt) < idleRoomTTL {
			continue
		}
		m.mu.RLock()
		_, live := m.rooms[rec.Code]
		m.mu.RUnlock()
		if live {
			continue
		}
		if err := m.directory.Delete(rec.Code); err != nil {
			m.log.Warn("stale room delete failed", zap.String("room", rec.Code), zap.Error(err))
			continue
		}
		m.log.Info("stale room deleted", zap.String("room", rec.Code))
	}
}

// Attach resolves the actor for a room code, creating it if the room
// exists in the directory but has no actor yet.
func (m *Manager) Attach(code string) (*Room, error) {
	m.mu.RLock()
	r := m.rooms[code]
	m.mu.RUnlock()
	if r != nil {
		return r, nil
	}

	if _, err := m.directory.Get(code); err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if r = m.rooms[code]; r != nil {
		return r, nil
	}
	r = New(code, m.directory, m.users, m.log, m.remove)
	m.rooms[code] = r
	return r, nil
}

func (m *Manager) remove(code string) {
	m.mu.Lock()
	delete(m.rooms, code)
	m.mu.Unlock()
	m.log.Info("room removed", zap.String("room", code))
}

// StopAll shuts the janitor and every live room down. Used on server
// shutdown.
func (m *Manager) StopAll() {
	m.stopOnce.Do(func() { close(m.done) })
	m.mu.Lock()
	rooms := make([]*Room, 0, len(m.rooms))
	for _, r := range m.rooms {
		rooms = append(rooms, r)
	}
	m.mu.Unlock()
	for _, r := range rooms {
		r.Stop()
	}
}
