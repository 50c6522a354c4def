package session

import (
	apperrors "storefront/internal/errors"
)

// Guard decides authorize-or-deny for mutating operations. Presence of a
// valid user id in the session is the sole authorization signal.
type Guard struct{}

// NewGuard creates a session guard.
func NewGuard() *Guard {
	return &Guard{}
}

// Authorize returns the session's user id, renewing and saving the session on
// success. Denial happens before any transaction is opened.
func (g *Guard) Authorize(s Session) (int64, error) {
	id, ok := s.UserID()
	if !ok {
		return 0, apperrors.ErrUnauthorized
	}
	s.Renew()
	if err := s.Save(); err != nil {
		return 0, apperrors.ErrInternal
	}
	return id, nil
}

// Login establishes the session for an authenticated principal. This is the
// only point that sets the user id.
func (g *Guard) Login(s Session, userID int64) error {
	s.SetUserID(userID)
	if err := s.Save(); err != nil {
		return apperrors.ErrInternal
	}
	return nil
}
