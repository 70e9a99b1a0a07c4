package repository

import (
	"career_advisor_backend/internal/model"

	"gorm.io/gorm"
)

type TaskRepository struct {
	DB *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{DB: db}
}

func (r *TaskRepository) CreateBatch(tasks []model.Task) error {
	return r.DB.Create(&tasks).Error
}

// ListByUser returns one page of the user's tasks, newest first.
func (r *TaskRepository) ListByUser(userID string, limit, offset int) ([]model.Task, error) {
	var tasks []model.Task
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) FindByIDAndUser(id uint, userID string) (*model.Task, error) {
	var task model.Task
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateFields applies a partial update scoped to the owning user and
// reports how many rows matched.
func (r *TaskRepository) UpdateFields(id uint, userID string, fields map[string]interface{}) (int64, error) {
	result := r.DB.Model(&model.Task{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	return result.RowsAffected, result.Error
}

// Delete removes the task if it belongs to userID and reports how many
// rows were deleted.
func (r *TaskRepository) Delete(id uint, userID string) (int64, error) {
	result := r.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Task{})
	return result.RowsAffected, result.Error
}
