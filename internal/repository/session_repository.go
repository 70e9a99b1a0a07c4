package repository

import (
	"career_advisor_backend/internal/model"

	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

// FindByToken resolves a bearer token to its session row. Expiry is not
// checked here; the resolver decides what an expired row means.
func (r *SessionRepository) FindByToken(token string) (*model.Session, error) {
	var session model.Session
	err := r.DB.Where("token = ?", token).First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}
