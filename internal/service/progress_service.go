package service

import (
	"career_advisor_backend/internal/model"
	"career_advisor_backend/internal/repository"
	"career_advisor_backend/internal/validate"
)

// ProgressEntry is one progress row joined with its catalog resource for
// list responses. Resource is nil when the catalog row was removed.
type ProgressEntry struct {
	model.Progress
	Resource *model.Resource `json:"resource"`
}

type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
	ResourceRepo *repository.ResourceRepository
}

func NewProgressService(progressRepo *repository.ProgressRepository, resourceRepo *repository.ResourceRepository) *ProgressService {
	return &ProgressService{ProgressRepo: progressRepo, ResourceRepo: resourceRepo}
}

// Upsert records completion for one resource. The second write for the same
// (user, resource) pair updates in place; createdAt keeps its first value.
func (s *ProgressService) Upsert(userID string, input validate.ProgressInput) (*model.Progress, error) {
	row := &model.Progress{
		UserID:     userID,
		ResourceID: input.ResourceID,
		Completion: input.Completion,
	}
	if err := s.ProgressRepo.Upsert(row); err != nil {
		return nil, err
	}
	return s.ProgressRepo.FindByUserAndResource(userID, input.ResourceID)
}

func (s *ProgressService) List(userID string) ([]ProgressEntry, error) {
	rows, err := s.ProgressRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	resources, err := s.resourcesByID(rows)
	if err != nil {
		return nil, err
	}

	entries := make([]ProgressEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, ProgressEntry{Progress: row, Resource: resources[row.ResourceID]})
	}
	return entries, nil
}

func (s *ProgressService) resourcesByID(rows []model.Progress) (map[uint]*model.Resource, error) {
	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ResourceID)
	}
	resources, err := s.ResourceRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]*model.Resource, len(resources))
	for i := range resources {
		byID[resources[i].ID] = &resources[i]
	}
	return byID, nil
}
