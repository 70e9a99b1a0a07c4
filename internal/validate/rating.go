package validate

import "strings"

const (
	CodeMissingRating = "MISSING_RATING"
	CodeInvalidRating = "INVALID_RATING"
)

// RatingInput is a validated rating upsert.
type RatingInput struct {
	ResourceID uint
	Rating     int
	Comment    *string
}

// Rating validates a POST /ratings body. The rating value is coerced from a
// number or numeric string, then range-checked against [1,5].
func Rating(body map[string]interface{}) (RatingInput, *Error) {
	var input RatingInput

	if err := CheckOwnerKeys(body, "authorId"); err != nil {
		return input, err
	}

	rawID, ok := body["resourceId"]
	if !ok || rawID == nil {
		return input, fail(CodeMissingResourceID, "Valid resourceId is required")
	}
	id, ok := coerceInt(rawID)
	if !ok || id <= 0 {
		return input, fail(CodeMissingResourceID, "Valid resourceId is required")
	}

	rawRating, ok := body["rating"]
	if !ok || rawRating == nil {
		return input, fail(CodeMissingRating, "Rating is required")
	}
	rating, ok := coerceInt(rawRating)
	if !ok || rating < 1 || rating > 5 {
		return input, fail(CodeInvalidRating, "Rating must be an integer between 1 and 5")
	}

	if s, ok := body["comment"].(string); ok {
		trimmed := strings.TrimSpace(s)
		input.Comment = &trimmed
	}

	input.ResourceID = uint(id)
	input.Rating = rating
	return input, nil
}
