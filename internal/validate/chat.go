package validate

import "strings"

const CodeMissingMessage = "MISSING_MESSAGE"

// Chat validates a POST /chat body and returns the trimmed message.
func Chat(body map[string]interface{}) (string, *Error) {
	message, ok := body["message"].(string)
	if !ok || strings.TrimSpace(message) == "" {
		return "", fail(CodeMissingMessage, "Message is required")
	}
	return strings.TrimSpace(message), nil
}
