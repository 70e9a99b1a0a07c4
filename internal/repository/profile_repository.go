package repository

import (
	"career_advisor_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository struct {
	DB *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

func (r *ProfileRepository) FindByUserID(userID string) (*model.UserProfile, error) {
	var profile model.UserProfile
	err := r.DB.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) Create(profile *model.UserProfile) error {
	return r.DB.Create(profile).Error
}

// Upsert writes the assessment mirror (skills and profile) in one statement
// keyed on user_id, leaving name and language untouched on existing rows.
func (r *ProfileRepository) Upsert(profile *model.UserProfile) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"skills", "profile", "updated_at"}),
	}).Create(profile).Error
}

// UpdateFields applies a partial update to the user's profile row and
// reports how many rows matched. Zero means the profile does not exist.
func (r *ProfileRepository) UpdateFields(userID string, fields map[string]interface{}) (int64, error) {
	result := r.DB.Model(&model.UserProfile{}).
		Where("user_id = ?", userID).
		Updates(fields)
	return result.RowsAffected, result.Error
}
