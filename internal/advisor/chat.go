package advisor

import "strings"

// Reply produces the rule-based coach answer for a chat message. Keyword
// matching is case-insensitive; unmatched messages get generic guidance.
func Reply(message string) string {
	t := strings.ToLower(message)
	switch {
	case strings.Contains(t, "software"):
		return "Software engineering blends problem solving with building products. Start with Python/JS and data structures."
	case strings.Contains(t, "data"):
		return "Data roles value SQL, statistics, and storytelling. Practice with public datasets and Kaggle."
	case strings.Contains(t, "design"):
		return "UX/UI design needs user research, prototyping, and critique. Learn Figma and usability principles."
	}
	return "Great question! Focus on consistent practice, feedback loops, and pick one project to apply your skills."
}
