// Package mirror keeps a local, file-backed copy of the advisor state so a
// client can show streaks, daily tasks, and reminders while offline, and
// reconcile against the server when a session is available.
package mirror

import (
	"encoding/json"
	"errors"
	"os"
	"sync"

	"career_advisor_backend/internal/advisor"
)

// TaskItem is one local task. IDs are strings so locally generated tasks
// (uuid) and adopted server rows (numeric id) share a representation.
type TaskItem struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Skill   string `json:"skill,omitempty"`
	Done    bool   `json:"done"`
	DueDate string `json:"dueDate,omitempty"`
}

// State is everything the mirror persists between runs.
type State struct {
	Result         *advisor.AssessmentResult `json:"result,omitempty"`
	CurrentStreak  int                       `json:"currentStreak"`
	LastActiveDate string                    `json:"lastActiveDate,omitempty"`
	TasksDate      string                    `json:"tasksDate,omitempty"`
	Tasks          []TaskItem                `json:"tasks,omitempty"`
	ReminderTime   string                    `json:"reminderTime,omitempty"`
	ReminderAck    string                    `json:"reminderAck,omitempty"`
	ChatCount      int                       `json:"chatCount"`
}

// Store persists State as a JSON file. All access goes through the mutex;
// every mutation is written straight back to disk.
type Store struct {
	path string

	mu    sync.Mutex
	state State
}

// Open loads the store at path, starting empty when the file does not
// exist yet.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(raw, &s.state); err != nil {
		return nil, err
	}
	return s, nil
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Update mutates the state under the lock and persists the result.
func (s *Store) Update(fn func(*State)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&s.state)

	raw, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}
