package validate

const (
	CodeMissingAnswers         = "MISSING_ANSWERS"
	CodeMissingResult          = "MISSING_RESULT"
	CodeInvalidResultStructure = "INVALID_RESULT_STRUCTURE"
)

// AssessmentInput is a validated quiz submission.
type AssessmentInput struct {
	Answers interface{}
	Result  map[string]interface{}
}

// Scores returns the result's scores map for the profile mirror.
func (a AssessmentInput) Scores() map[string]interface{} {
	scores, _ := a.Result["scores"].(map[string]interface{})
	return scores
}

// Assessment validates a POST /assessments body.
func Assessment(body map[string]interface{}) (AssessmentInput, *Error) {
	var input AssessmentInput

	if err := CheckOwnerKeys(body); err != nil {
		return input, err
	}

	answers, ok := body["answers"]
	if !ok || answers == nil || (!isObject(answers) && !isArray(answers)) {
		return input, fail(CodeMissingAnswers, "Valid answers are required")
	}

	result, ok := body["result"].(map[string]interface{})
	if !ok {
		return input, fail(CodeMissingResult, "Valid result object is required")
	}

	if !isArray(result["strengths"]) || !isArray(result["weaknesses"]) || !isObject(result["scores"]) {
		return input, fail(CodeInvalidResultStructure,
			"Result must contain strengths array, weaknesses array, and scores object")
	}

	if !roundTripsAsJSON(answers) || !roundTripsAsJSON(result) {
		return input, fail(CodeInvalidJSON, "Invalid JSON data provided")
	}

	input.Answers = answers
	input.Result = result
	return input, nil
}
