package service

import (
	"encoding/json"

	"career_advisor_backend/internal/model"
	"career_advisor_backend/internal/repository"
	"career_advisor_backend/internal/validate"
	"career_advisor_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type AssessmentService struct {
	AssessmentRepo *repository.AssessmentRepository
	ProfileRepo    *repository.ProfileRepository
}

func NewAssessmentService(assessmentRepo *repository.AssessmentRepository, profileRepo *repository.ProfileRepository) *AssessmentService {
	return &AssessmentService{AssessmentRepo: assessmentRepo, ProfileRepo: profileRepo}
}

// Create stores a completed assessment and mirrors its result into the
// user's profile: profile takes the full result, skills takes the scores.
// The mirror is best effort; a failure there does not fail the create.
func (s *AssessmentService) Create(userID string, input validate.AssessmentInput) (*model.Assessment, error) {
	answersRaw, err := json.Marshal(input.Answers)
	if err != nil {
		return nil, err
	}
	resultRaw, err := json.Marshal(input.Result)
	if err != nil {
		return nil, err
	}

	assessment := &model.Assessment{
		UserID:  userID,
		Answers: datatypes.JSON(answersRaw),
		Result:  datatypes.JSON(resultRaw),
	}
	if err := s.AssessmentRepo.Create(assessment); err != nil {
		return nil, err
	}

	skills := input.Scores()
	if skills == nil {
		skills = map[string]interface{}{}
	}
	mirror := &model.UserProfile{
		UserID:    userID,
		Language:  "en",
		Skills:    datatypes.JSONMap(skills),
		Interests: datatypes.JSON([]byte("[]")),
		Profile:   datatypes.JSONMap(input.Result),
	}
	if err := s.ProfileRepo.Upsert(mirror); err != nil {
		logger.Log.Warn("Profile mirror after assessment failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
	}

	return assessment, nil
}

func (s *AssessmentService) List(userID string) ([]model.Assessment, error) {
	return s.AssessmentRepo.ListByUser(userID)
}
