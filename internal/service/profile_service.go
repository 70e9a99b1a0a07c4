package service

import (
	"encoding/json"
	"errors"

	"career_advisor_backend/internal/model"
	"career_advisor_backend/internal/repository"
	"career_advisor_backend/internal/util"
	"career_advisor_backend/internal/validate"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProfileService struct {
	ProfileRepo *repository.ProfileRepository
}

func NewProfileService(profileRepo *repository.ProfileRepository) *ProfileService {
	return &ProfileService{ProfileRepo: profileRepo}
}

// Get returns the caller's profile, creating a default row on first read.
func (s *ProfileService) Get(userID string) (*model.UserProfile, error) {
	profile, err := s.ProfileRepo.FindByUserID(userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	profile = &model.UserProfile{
		UserID:    userID,
		Language:  "en",
		Skills:    datatypes.JSONMap{},
		Interests: datatypes.JSON([]byte("[]")),
		Profile:   datatypes.JSONMap{},
	}
	if err := s.ProfileRepo.Create(profile); err != nil {
		// Lost a create race: the row exists now, read it back.
		if existing, readErr := s.ProfileRepo.FindByUserID(userID); readErr == nil {
			return existing, nil
		}
		return nil, err
	}
	return profile, nil
}

// Update applies a partial update and returns the fresh row. A missing
// profile is ErrNotFound; updates never create.
func (s *ProfileService) Update(userID string, update validate.ProfileUpdate) (*model.UserProfile, error) {
	fields := map[string]interface{}{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Language != nil {
		fields["language"] = *update.Language
	}
	if update.Skills != nil {
		fields["skills"] = datatypes.JSONMap(update.Skills)
	}
	if update.Interests != nil {
		raw, err := json.Marshal(update.Interests)
		if err != nil {
			return nil, err
		}
		fields["interests"] = datatypes.JSON(raw)
	}
	if update.Profile != nil {
		fields["profile"] = datatypes.JSONMap(update.Profile)
	}

	affected, err := s.ProfileRepo.UpdateFields(userID, fields)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		if _, findErr := s.ProfileRepo.FindByUserID(userID); findErr != nil {
			return nil, util.ErrNotFound
		}
		// Matched a row but nothing changed; fall through to the re-read.
	}
	return s.ProfileRepo.FindByUserID(userID)
}
