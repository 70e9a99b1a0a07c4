package service

import (
	"errors"

	"career_advisor_backend/internal/model"
	"career_advisor_backend/internal/repository"
	"career_advisor_backend/internal/streak"
	"career_advisor_backend/internal/util"

	"gorm.io/gorm"
)

type StreakService struct {
	StreakRepo *repository.StreakRepository
}

func NewStreakService(streakRepo *repository.StreakRepository) *StreakService {
	return &StreakService{StreakRepo: streakRepo}
}

// Get returns the caller's streak, creating a zero row on first read.
func (s *StreakService) Get(userID string) (*model.Streak, error) {
	row, err := s.StreakRepo.FindByUserID(userID)
	if err == nil {
		return row, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	row = &model.Streak{UserID: userID}
	if err := s.StreakRepo.Create(row); err != nil {
		if existing, readErr := s.StreakRepo.FindByUserID(userID); readErr == nil {
			return existing, nil
		}
		return nil, err
	}
	return row, nil
}

// Advance applies today's activity to the streak. Same day is a no-op,
// consecutive days increment, a gap resets to 1.
func (s *StreakService) Advance(userID string) (*model.Streak, error) {
	current := 0
	var lastActive *string

	row, err := s.StreakRepo.FindByUserID(userID)
	if err == nil {
		current = row.CurrentStreak
		lastActive = row.LastActiveDate
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	next, activeDate := streak.Advance(current, lastActive, util.Today())
	updated := &model.Streak{
		UserID:         userID,
		CurrentStreak:  next,
		LastActiveDate: &activeDate,
	}
	if err := s.StreakRepo.Upsert(updated); err != nil {
		return nil, err
	}
	return s.StreakRepo.FindByUserID(userID)
}
