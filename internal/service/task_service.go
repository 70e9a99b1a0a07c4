package service

import (
	"career_advisor_backend/internal/model"
	"career_advisor_backend/internal/repository"
	"career_advisor_backend/internal/util"
	"career_advisor_backend/internal/validate"
)

type TaskService struct {
	TaskRepo *repository.TaskRepository
}

func NewTaskService(taskRepo *repository.TaskRepository) *TaskService {
	return &TaskService{TaskRepo: taskRepo}
}

func (s *TaskService) Create(userID string, inputs []validate.TaskInput) ([]model.Task, error) {
	tasks := make([]model.Task, 0, len(inputs))
	for _, input := range inputs {
		tasks = append(tasks, model.Task{
			UserID:  userID,
			Label:   input.Label,
			Skill:   input.Skill,
			Done:    input.Done,
			DueDate: input.DueDate,
		})
	}
	if err := s.TaskRepo.CreateBatch(tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// List returns a page of the caller's tasks. When dueToday is set, the due
// date filter runs over the already-paginated page, so a page can come back
// shorter than the limit even when more matching rows exist. Kept for
// compatibility with existing clients that anchor on page boundaries.
func (s *TaskService) List(userID string, dueToday bool, limit, offset int) ([]model.Task, error) {
	tasks, err := s.TaskRepo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	if !dueToday {
		return tasks, nil
	}

	today := util.Today()
	filtered := make([]model.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.DueDate != nil && *task.DueDate == today {
			filtered = append(filtered, task)
		}
	}
	return filtered, nil
}

// Patch updates the caller's task. A row that does not exist and a row owned
// by someone else both come back as ErrNotFound.
func (s *TaskService) Patch(id uint, userID string, patch validate.TaskPatch) (*model.Task, error) {
	fields := map[string]interface{}{}
	if patch.Label != nil {
		fields["label"] = *patch.Label
	}
	if patch.Skill != nil {
		fields["skill"] = *patch.Skill
	}
	if patch.Done != nil {
		fields["done"] = *patch.Done
	}
	if patch.DueDate != nil {
		fields["due_date"] = *patch.DueDate
	}

	affected, err := s.TaskRepo.UpdateFields(id, userID, fields)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		if _, findErr := s.TaskRepo.FindByIDAndUser(id, userID); findErr != nil {
			return nil, util.ErrNotFound
		}
	}
	return s.TaskRepo.FindByIDAndUser(id, userID)
}

func (s *TaskService) Delete(id uint, userID string) error {
	affected, err := s.TaskRepo.Delete(id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return util.ErrNotFound
	}
	return nil
}
