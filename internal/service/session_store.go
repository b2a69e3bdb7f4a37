package service

import (
	"context"
	"fmt"
	"time"

	"business_manager/internal/repository"
)

// SessionStore is the write side of the credential store: one live session per user
type SessionStore struct {
	users repository.UserRepository
	now   func() time.Time
}

// NewSessionStore creates a SessionStore over users
func NewSessionStore(users repository.UserRepository) *SessionStore {
	return &SessionStore{users: users, now: time.Now}
}

// StartSession stores token with expiry now+ttl, replacing any previous session
func (s *SessionStore) StartSession(ctx context.Context, userID int, token string, ttl time.Duration) (time.Time, error) {
	expiry := s.now().Add(ttl)
	if err := s.users.UpdateSession(ctx, userID, token, expiry); err != nil {
		return time.Time{}, fmt.Errorf("failed to start session: %w", err)
	}
	return expiry, nil
}

// EndSession clears the stored session; ending an empty session succeeds
func (s *SessionStore) EndSession(ctx context.Context, userID int) error {
	if err := s.users.ClearSession(ctx, userID); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	return nil
}
