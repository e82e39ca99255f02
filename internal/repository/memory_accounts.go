package repository

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/nurseguard/backend/pkg/model"
)

// MemoryAccountStore is the default AccountStore: everything lives in process
// memory for the session, mirroring the demo's browser-local storage.
type MemoryAccountStore struct {
	mu      sync.RWMutex
	users   []model.User
	session *model.Session
	logger  *zap.Logger
}

// NewMemoryAccountStore creates an empty in-memory account store.
func NewMemoryAccountStore(logger *zap.Logger) *MemoryAccountStore {
	return &MemoryAccountStore{logger: logger}
}

// CreateUser registers a user, rejecting duplicate emails case-insensitively.
func (s *MemoryAccountStore) CreateUser(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return ErrDuplicateEmail
		}
	}

	s.users = append(s.users, *user)
	s.logger.Info("user registered",
		zap.String("user_id", user.ID),
		zap.String("role", user.Role),
	)
	return nil
}

// FindUserByEmail matches case-insensitively.
func (s *MemoryAccountStore) FindUserByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			found := u
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}

// ListUsers returns a copy of all registered users.
func (s *MemoryAccountStore) ListUsers(_ context.Context) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

// SaveSession replaces the single active session.
func (s *MemoryAccountStore) SaveSession(_ context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *session
	s.session = &stored
	return nil
}

// ActiveSession returns the current session, if any.
func (s *MemoryAccountStore) ActiveSession(_ context.Context) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return nil, ErrSessionNotFound
	}
	found := *s.session
	return &found, nil
}

// ClearSession removes the active session. Clearing an already-clear session
// is a no-op.
func (s *MemoryAccountStore) ClearSession(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	return nil
}
