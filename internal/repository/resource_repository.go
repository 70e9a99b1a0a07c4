package repository

import (
	"career_advisor_backend/internal/model"
	"career_advisor_backend/internal/validate"

	"gorm.io/gorm"
)

type ResourceRepository struct {
	DB *gorm.DB
}

func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{DB: db}
}

// List runs a filtered catalog query. Tag matching is a substring match
// against the comma-separated tags column.
func (r *ResourceRepository) List(query validate.ResourceQuery) ([]model.Resource, error) {
	db := r.DB.Model(&model.Resource{})

	if query.Tag != "" {
		db = db.Where("tags LIKE ?", "%"+query.Tag+"%")
	}
	if query.Locale != "" {
		db = db.Where("locale = ?", query.Locale)
	}
	if query.Type != "" {
		db = db.Where("type = ?", query.Type)
	}

	var resources []model.Resource
	err := db.Order("created_at DESC").
		Limit(query.Limit).
		Offset(query.Offset).
		Find(&resources).Error
	return resources, err
}

func (r *ResourceRepository) FindByIDs(ids []uint) ([]model.Resource, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var resources []model.Resource
	err := r.DB.Where("id IN ?", ids).Find(&resources).Error
	return resources, err
}

func (r *ResourceRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Resource{}).Count(&count).Error
	return count, err
}
