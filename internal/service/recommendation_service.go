package service

import (
	"encoding/json"
	"errors"
	"time"

	"career_advisor_backend/internal/model"
	"career_advisor_backend/internal/repository"
	"career_advisor_backend/internal/validate"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RecommendationView is the decoded response shape: careers and resources
// come back as structured JSON, not as raw column bytes.
type RecommendationView struct {
	ID        uint        `json:"id"`
	Careers   interface{} `json:"careers"`
	Resources interface{} `json:"resources"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

type RecommendationService struct {
	RecommendationRepo *repository.RecommendationRepository
}

func NewRecommendationService(recommendationRepo *repository.RecommendationRepository) *RecommendationService {
	return &RecommendationService{RecommendationRepo: recommendationRepo}
}

// Upsert replaces the caller's recommendation set and returns the stored
// view. One row per user.
func (s *RecommendationService) Upsert(userID string, input validate.RecommendationInput) (*RecommendationView, error) {
	careersRaw, err := json.Marshal(input.Careers)
	if err != nil {
		return nil, err
	}
	resourcesRaw, err := json.Marshal(input.Resources)
	if err != nil {
		return nil, err
	}

	row := &model.Recommendation{
		UserID:    userID,
		Careers:   datatypes.JSON(careersRaw),
		Resources: datatypes.JSON(resourcesRaw),
	}
	if err := s.RecommendationRepo.Upsert(row); err != nil {
		return nil, err
	}

	stored, err := s.RecommendationRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	return decodeRecommendation(stored)
}

// Latest returns the caller's stored recommendations, or nil when none
// exist yet. Absence is not an error.
func (s *RecommendationService) Latest(userID string) (*RecommendationView, error) {
	stored, err := s.RecommendationRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return decodeRecommendation(stored)
}

func decodeRecommendation(row *model.Recommendation) (*RecommendationView, error) {
	view := &RecommendationView{
		ID:        row.ID,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if err := json.Unmarshal(row.Careers, &view.Careers); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(row.Resources, &view.Resources); err != nil {
		return nil, err
	}
	return view, nil
}
