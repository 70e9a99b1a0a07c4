package validate

const (
	CodeMissingResourceID = "MISSING_RESOURCE_ID"
	CodeInvalidCompletion = "INVALID_COMPLETION"
)

// ProgressInput is a validated progress upsert.
type ProgressInput struct {
	ResourceID uint
	Completion int
}

// Progress validates a POST /progress body. resourceId must be a positive
// JSON number; completion a number in [0,100].
func Progress(body map[string]interface{}) (ProgressInput, *Error) {
	var input ProgressInput

	if err := CheckOwnerKeys(body); err != nil {
		return input, err
	}

	id, ok := body["resourceId"].(float64)
	if !ok || id <= 0 {
		return input, fail(CodeMissingResourceID, "Valid resourceId is required")
	}

	completion, ok := body["completion"].(float64)
	if !ok || completion < 0 || completion > 100 {
		return input, fail(CodeInvalidCompletion, "Completion must be a number between 0 and 100")
	}

	input.ResourceID = uint(id)
	input.Completion = int(completion)
	return input, nil
}
