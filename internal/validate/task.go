package validate

import (
	"strings"
	"time"
)

const (
	CodeNoTasks        = "NO_TASKS"
	CodeMissingLabel   = "MISSING_LABEL"
	CodeInvalidSkill   = "INVALID_SKILL"
	CodeInvalidDone    = "INVALID_DONE"
	CodeInvalidDueDate = "INVALID_DUE_DATE"
	CodeInvalidTaskID  = "INVALID_TASK_ID"
)

// TaskInput is one validated new task.
type TaskInput struct {
	Label   string
	Skill   *string
	Done    bool
	DueDate *string
}

// TaskPatch carries only the fields present in a PATCH body.
type TaskPatch struct {
	Label   *string
	Skill   *string
	Done    *bool
	DueDate *string
}

func (p TaskPatch) Empty() bool {
	return p.Label == nil && p.Skill == nil && p.Done == nil && p.DueDate == nil
}

func validDate(s string) bool {
	t, err := time.Parse("2006-01-02", s)
	return err == nil && t.Format("2006-01-02") == s
}

// NewTask validates a single task object from a POST /tasks body.
func NewTask(body map[string]interface{}) (TaskInput, *Error) {
	var input TaskInput

	if err := CheckOwnerKeys(body); err != nil {
		return input, err
	}

	label, ok := body["label"].(string)
	if !ok || strings.TrimSpace(label) == "" {
		return input, fail(CodeMissingLabel, "Label is required and must be a non-empty string")
	}
	input.Label = strings.TrimSpace(label)

	if v, ok := body["skill"]; ok && v != nil {
		s, ok := v.(string)
		if !ok {
			return input, fail(CodeInvalidSkill, "Skill must be a string if provided")
		}
		trimmed := strings.TrimSpace(s)
		if trimmed != "" {
			input.Skill = &trimmed
		}
	}

	if v, ok := body["done"]; ok && v != nil {
		b, ok := v.(bool)
		if !ok {
			return input, fail(CodeInvalidDone, "Done must be a boolean if provided")
		}
		input.Done = b
	}

	if v, ok := body["dueDate"]; ok && v != nil {
		s, ok := v.(string)
		if !ok || !validDate(s) {
			return input, fail(CodeInvalidDueDate, "Due date must be a valid ISO date string (YYYY-MM-DD)")
		}
		input.DueDate = &s
	}

	return input, nil
}

// Tasks validates a POST /tasks body, which may be a single task object or
// an array of them.
func Tasks(body interface{}) ([]TaskInput, *Error) {
	var items []interface{}
	switch v := body.(type) {
	case []interface{}:
		items = v
	case map[string]interface{}:
		items = []interface{}{v}
	default:
		return nil, fail(CodeNoTasks, "No tasks provided")
	}

	if len(items) == 0 {
		return nil, fail(CodeNoTasks, "No tasks provided")
	}

	inputs := make([]TaskInput, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]interface{})
		if !ok {
			return nil, fail(CodeMissingLabel, "Label is required and must be a non-empty string")
		}
		input, err := NewTask(m)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, input)
	}

	return inputs, nil
}

// PatchTask validates a PATCH /tasks body.
func PatchTask(body map[string]interface{}) (TaskPatch, *Error) {
	var patch TaskPatch

	if err := CheckOwnerKeys(body); err != nil {
		return patch, err
	}

	if v, ok := body["label"]; ok {
		s, ok := v.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return patch, fail(CodeMissingLabel, "Label must be a non-empty string")
		}
		trimmed := strings.TrimSpace(s)
		patch.Label = &trimmed
	}

	if v, ok := body["skill"]; ok {
		s, ok := v.(string)
		if !ok {
			return patch, fail(CodeInvalidSkill, "Skill must be a string")
		}
		trimmed := strings.TrimSpace(s)
		patch.Skill = &trimmed
	}

	if v, ok := body["done"]; ok {
		b, ok := v.(bool)
		if !ok {
			return patch, fail(CodeInvalidDone, "Done must be a boolean")
		}
		patch.Done = &b
	}

	if v, ok := body["dueDate"]; ok {
		s, ok := v.(string)
		if !ok || !validDate(s) {
			return patch, fail(CodeInvalidDueDate, "Due date must be a valid ISO date string (YYYY-MM-DD)")
		}
		patch.DueDate = &s
	}

	if patch.Empty() {
		return patch, fail(CodeNoFields, "No valid fields to update")
	}

	return patch, nil
}
