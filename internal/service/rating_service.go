package service

import (
	"career_advisor_backend/internal/model"
	"career_advisor_backend/internal/repository"
	"career_advisor_backend/internal/validate"
)

// RatingEntry is one rating joined with its catalog resource.
type RatingEntry struct {
	model.Rating
	Resource *model.Resource `json:"resource"`
}

type RatingService struct {
	RatingRepo   *repository.RatingRepository
	ResourceRepo *repository.ResourceRepository
}

func NewRatingService(ratingRepo *repository.RatingRepository, resourceRepo *repository.ResourceRepository) *RatingService {
	return &RatingService{RatingRepo: ratingRepo, ResourceRepo: resourceRepo}
}

// Upsert records the caller's rating of one resource, replacing any earlier
// rating for the same pair.
func (s *RatingService) Upsert(userID string, input validate.RatingInput) (*model.Rating, error) {
	row := &model.Rating{
		UserID:     userID,
		ResourceID: input.ResourceID,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}
	if err := s.RatingRepo.Upsert(row, input.Comment != nil); err != nil {
		return nil, err
	}
	return s.RatingRepo.FindByUserAndResource(userID, input.ResourceID)
}

func (s *RatingService) List(userID string) ([]RatingEntry, error) {
	rows, err := s.RatingRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

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

	entries := make([]RatingEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, RatingEntry{Rating: row, Resource: byID[row.ResourceID]})
	}
	return entries, nil
}
