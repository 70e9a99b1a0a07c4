package repository

import (
	"career_advisor_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository struct {
	DB *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{DB: db}
}

// Upsert writes the rating in one statement keyed on (user_id, resource_id).
// The comment column is only assigned when the write carries one, so a
// re-rate without a comment keeps the stored comment.
func (r *RatingRepository) Upsert(rating *model.Rating, setComment bool) error {
	columns := []string{"rating", "updated_at"}
	if setComment {
		columns = append(columns, "comment")
	}
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "resource_id"}},
		DoUpdates: clause.AssignmentColumns(columns),
	}).Create(rating).Error
}

func (r *RatingRepository) FindByUserAndResource(userID string, resourceID uint) (*model.Rating, error) {
	var rating model.Rating
	err := r.DB.Where("user_id = ? AND resource_id = ?", userID, resourceID).
		First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *RatingRepository) ListByUser(userID string) ([]model.Rating, error) {
	var rows []model.Rating
	err := r.DB.Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&rows).Error
	return rows, err
}
