package users

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// MemoryService is the non-persistent backend used in development and
// tests.
type MemoryService struct {
	mu         sync.RWMutex
	byID       map[string]*memoryUser
	byUsername map[string]*memoryUser
}

type memoryUser struct {
	user         User
	passwordHash []byte
}

func NewMemoryService() *MemoryService {
	return &MemoryService{
		byID:       make(map[string]*memoryUser),
		byUsername: make(map[string]*memoryUser),
	}
}

func (s *MemoryService) Register(username, password string) (User, error) {
	if err := validateUsername(username); err != nil {
		return User{}, err
	}
	if err := validatePassword(password); err != nil {
		return User{}, err
	}
	normalized := normalizeUsername(username)
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.byUsername[normalized]; taken {
		return User{}, ErrUsernameTaken
	}
	record := &memoryUser{
		user: User{
			ID:        uuid.NewString(),
			Username:  normalized,
			CreatedAt: time.Now().UTC(),
		},
		passwordHash: hash,
	}
	s.byID[record.user.ID] = record
	s.byUsername[normalized] = record
	return record.user, nil
}

func (s *MemoryService) Login(username, password string) (User, error) {
	normalized := normalizeUsername(username)
	if normalized == "" || password == "" {
		return User{}, ErrInvalidCredentials
	}

	s.mu.RLock()
	record, ok := s.byUsername[normalized]
	s.mu.RUnlock()
	if !ok {
		return User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(record.passwordHash, []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}
	return record.user, nil
}

func (s *MemoryService) Get(id string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return record.user, nil
}

func (s *MemoryService) Close() error { return nil }
