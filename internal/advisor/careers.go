// Package advisor holds the static rule tables behind the advisor features:
// the strength-to-career map, the daily task generator and the chat
// responder. The tables are deliberately plain data so both the HTTP layer
// and the client mirror can share them.
package advisor

// CareerSuggestion is one career track with the skills it exercises and a
// couple of starting resources.
type CareerSuggestion struct {
	Title     string           `json:"title"`
	Skills    []string         `json:"skills"`
	Resources []CareerResource `json:"resources"`
}

type CareerResource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// AssessmentResult is the shape the quiz produces and the career/task rules
// consume.
type AssessmentResult struct {
	Strengths  []string           `json:"strengths"`
	Weaknesses []string           `json:"weaknesses"`
	Scores     map[string]float64 `json:"scores"`
}

// CareerMap keys career suggestions by the skill they suit best.
var CareerMap = map[string][]CareerSuggestion{
	"tech": {
		{
			Title:  "Software Engineer",
			Skills: []string{"tech", "analysis", "communication"},
			Resources: []CareerResource{
				{Title: "Intro to Algorithms", URL: "https://cs50.harvard.edu/"},
				{Title: "Frontend Handbook", URL: "https://frontendmasters.com/books/front-end-handbook/2019/"},
			},
		},
		{
			Title:  "Data Analyst",
			Skills: []string{"analysis", "tech", "communication"},
			Resources: []CareerResource{
				{Title: "SQL Tutorial", URL: "https://www.sqltutorial.org/"},
				{Title: "Data Visualization", URL: "https://www.tableau.com/learn/training"},
			},
		},
	},
	"creativity": {
		{
			Title:  "Product Designer",
			Skills: []string{"creativity", "communication", "analysis"},
			Resources: []CareerResource{
				{Title: "Design Basics", URL: "https://www.coursera.org/specializations/graphic-design"},
				{Title: "Figma Learn", URL: "https://help.figma.com/hc/en-us/articles/360040514733-Learn-design"},
			},
		},
	},
	"leadership": {
		{
			Title:  "Team Lead",
			Skills: []string{"leadership", "communication"},
			Resources: []CareerResource{
				{Title: "Situational Leadership", URL: "https://www.coursera.org/learn/leadership-skills"},
				{Title: "Crucial Conversations", URL: "https://www.vitalsmarts.com/"},
			},
		},
	},
}

// PickCareers selects the career bucket for the user's top strength, falling
// back to the tech track when there is no result yet.
func PickCareers(result *AssessmentResult) []CareerSuggestion {
	if result == nil || len(result.Strengths) == 0 {
		return CareerMap["tech"]
	}
	if careers, ok := CareerMap[result.Strengths[0]]; ok {
		return careers
	}
	return CareerMap["tech"]
}
