package service

import (
	"time"

	"career_advisor_backend/internal/repository"
)

// SessionService resolves bearer tokens against the identity provider's
// session table.
type SessionService struct {
	SessionRepo *repository.SessionRepository
}

func NewSessionService(sessionRepo *repository.SessionRepository) *SessionService {
	return &SessionService{SessionRepo: sessionRepo}
}

// Resolve maps a bearer token to a user id. Any failure, a missing row, a
// storage error, or an expired session, resolves to ok=false; errors are
// never propagated past this point.
func (s *SessionService) Resolve(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	session, err := s.SessionRepo.FindByToken(token)
	if err != nil {
		return "", false
	}
	if !session.ExpiresAt.IsZero() && session.ExpiresAt.Before(time.Now()) {
		return "", false
	}
	return session.UserID, true
}
