package repository

import (
	"career_advisor_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// Upsert writes the completion in one statement keyed on (user_id,
// resource_id). CreatedAt survives on conflict; UpdatedAt always advances.
func (r *ProgressRepository) Upsert(progress *model.Progress) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "resource_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"completion", "updated_at"}),
	}).Create(progress).Error
}

func (r *ProgressRepository) FindByUserAndResource(userID string, resourceID uint) (*model.Progress, error) {
	var progress model.Progress
	err := r.DB.Where("user_id = ? AND resource_id = ?", userID, resourceID).
		First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *ProgressRepository) ListByUser(userID string) ([]model.Progress, error) {
	var rows []model.Progress
	err := r.DB.Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&rows).Error
	return rows, err
}
