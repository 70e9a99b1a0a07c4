package validate

const (
	CodeInvalidCareers        = "INVALID_CAREERS"
	CodeInvalidCareerFormat   = "INVALID_CAREER_FORMAT"
	CodeInvalidResources      = "INVALID_RESOURCES"
	CodeInvalidResourceFormat = "INVALID_RESOURCE_FORMAT"
)

// RecommendationCareer is one validated career entry.
type RecommendationCareer struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Match   string `json:"match"`
}

// RecommendationResource is one validated resource entry.
type RecommendationResource struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"`
}

// RecommendationInput is a validated recommendation upsert.
type RecommendationInput struct {
	Careers   []RecommendationCareer
	Resources []RecommendationResource
}

// Recommendation validates a POST /recommendations body.
func Recommendation(body map[string]interface{}) (RecommendationInput, *Error) {
	var input RecommendationInput

	if err := CheckOwnerKeys(body, "userID"); err != nil {
		return input, err
	}

	careersRaw, ok := body["careers"].([]interface{})
	if !ok {
		return input, fail(CodeInvalidCareers, "Careers must be an array")
	}

	careers := make([]RecommendationCareer, 0, len(careersRaw))
	for _, item := range careersRaw {
		m, ok := item.(map[string]interface{})
		if !ok {
			return input, fail(CodeInvalidCareerFormat,
				"Each career must have valid id, title, summary, and match fields")
		}
		id, okID := m["id"].(string)
		title, okTitle := m["title"].(string)
		summary, okSummary := m["summary"].(string)
		match, okMatch := m["match"].(string)
		if !okID || !okTitle || !okSummary || !okMatch {
			return input, fail(CodeInvalidCareerFormat,
				"Each career must have valid id, title, summary, and match fields")
		}
		careers = append(careers, RecommendationCareer{ID: id, Title: title, Summary: summary, Match: match})
	}

	resourcesRaw, ok := body["resources"].([]interface{})
	if !ok {
		return input, fail(CodeInvalidResources, "Resources must be an array")
	}

	resources := make([]RecommendationResource, 0, len(resourcesRaw))
	for _, item := range resourcesRaw {
		m, ok := item.(map[string]interface{})
		if !ok {
			return input, fail(CodeInvalidResourceFormat,
				"Each resource must have valid id, title, url, and type fields")
		}
		id, okID := m["id"].(string)
		title, okTitle := m["title"].(string)
		url, okURL := m["url"].(string)
		typ, okType := m["type"].(string)
		if !okID || !okTitle || !okURL || !okType {
			return input, fail(CodeInvalidResourceFormat,
				"Each resource must have valid id, title, url, and type fields")
		}
		resources = append(resources, RecommendationResource{ID: id, Title: title, URL: url, Type: typ})
	}

	input.Careers = careers
	input.Resources = resources
	return input, nil
}
