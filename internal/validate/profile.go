package validate

import "strings"

const (
	CodeInvalidName      = "INVALID_NAME"
	CodeInvalidLanguage  = "INVALID_LANGUAGE"
	CodeInvalidSkills    = "INVALID_SKILLS"
	CodeInvalidInterests = "INVALID_INTERESTS"
	CodeInvalidProfile   = "INVALID_PROFILE"
	CodeNoFields         = "NO_FIELDS"
)

// ProfileUpdate carries only the fields present in a PUT /profile body.
// Nil pointers/maps mean "leave untouched".
type ProfileUpdate struct {
	Name      *string
	Language  *string
	Skills    map[string]interface{}
	Interests []interface{}
	Profile   map[string]interface{}
}

func (u ProfileUpdate) Empty() bool {
	return u.Name == nil && u.Language == nil && u.Skills == nil &&
		u.Interests == nil && u.Profile == nil
}

// Profile validates a partial profile update.
func Profile(body map[string]interface{}) (ProfileUpdate, *Error) {
	var update ProfileUpdate

	if err := CheckOwnerKeys(body); err != nil {
		return update, err
	}

	if v, ok := body["name"]; ok {
		s, ok := v.(string)
		if !ok {
			return update, fail(CodeInvalidName, "Name must be a string")
		}
		trimmed := strings.TrimSpace(s)
		update.Name = &trimmed
	}

	if v, ok := body["language"]; ok {
		s, ok := v.(string)
		if !ok {
			return update, fail(CodeInvalidLanguage, "Language must be a string")
		}
		trimmed := strings.TrimSpace(s)
		update.Language = &trimmed
	}

	if v, ok := body["skills"]; ok {
		m, ok := v.(map[string]interface{})
		if !ok {
			return update, fail(CodeInvalidSkills, "Skills must be an object")
		}
		if !roundTripsAsJSON(m) {
			return update, fail(CodeInvalidSkills, "Skills must be JSON serializable")
		}
		update.Skills = m
	}

	if v, ok := body["interests"]; ok {
		list, ok := v.([]interface{})
		if !ok {
			return update, fail(CodeInvalidInterests, "Interests must be an array")
		}
		if !roundTripsAsJSON(list) {
			return update, fail(CodeInvalidInterests, "Interests must be JSON serializable")
		}
		update.Interests = list
	}

	if v, ok := body["profile"]; ok {
		m, ok := v.(map[string]interface{})
		if !ok {
			return update, fail(CodeInvalidProfile, "Profile must be an object")
		}
		if !roundTripsAsJSON(m) {
			return update, fail(CodeInvalidProfile, "Profile must be JSON serializable")
		}
		update.Profile = m
	}

	if update.Empty() {
		return update, fail(CodeNoFields, "No valid fields to update")
	}

	return update, nil
}
