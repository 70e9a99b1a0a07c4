package repository

import (
	"career_advisor_backend/internal/model"

	"gorm.io/gorm"
)

type AssessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: db}
}

func (r *AssessmentRepository) Create(assessment *model.Assessment) error {
	return r.DB.Create(assessment).Error
}

// ListByUser returns the user's assessments newest first.
func (r *AssessmentRepository) ListByUser(userID string) ([]model.Assessment, error) {
	var assessments []model.Assessment
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&assessments).Error
	return assessments, err
}
