package repository

import (
	"career_advisor_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StreakRepository struct {
	DB *gorm.DB
}

func NewStreakRepository(db *gorm.DB) *StreakRepository {
	return &StreakRepository{DB: db}
}

func (r *StreakRepository) FindByUserID(userID string) (*model.Streak, error) {
	var streak model.Streak
	err := r.DB.Where("user_id = ?", userID).First(&streak).Error
	if err != nil {
		return nil, err
	}
	return &streak, nil
}

func (r *StreakRepository) Create(streak *model.Streak) error {
	return r.DB.Create(streak).Error
}

// Upsert writes the streak state in one statement keyed on user_id, so
// concurrent check-ins cannot interleave a read-modify-write.
func (r *StreakRepository) Upsert(streak *model.Streak) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"current_streak", "last_active_date", "updated_at"}),
	}).Create(streak).Error
}
