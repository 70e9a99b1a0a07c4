package repository

import (
	"career_advisor_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RecommendationRepository struct {
	DB *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) *RecommendationRepository {
	return &RecommendationRepository{DB: db}
}

// Upsert replaces the user's recommendation set in one statement keyed on
// user_id.
func (r *RecommendationRepository) Upsert(rec *model.Recommendation) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"careers", "resources", "updated_at"}),
	}).Create(rec).Error
}

func (r *RecommendationRepository) FindByUserID(userID string) (*model.Recommendation, error) {
	var rec model.Recommendation
	err := r.DB.Where("user_id = ?", userID).First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
