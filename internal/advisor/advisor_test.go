package advisor

import (
	"strings"
	"testing"
)

func TestPickCareersDefaultsToTech(t *testing.T) {
	careers := PickCareers(nil)
	if len(careers) == 0 || careers[0].Title != "Software Engineer" {
		t.Fatalf("expected tech bucket, got %+v", careers)
	}

	careers = PickCareers(&AssessmentResult{Strengths: []string{"unknown-skill"}})
	if len(careers) == 0 || careers[0].Title != "Software Engineer" {
		t.Fatalf("expected tech fallback for unknown strength, got %+v", careers)
	}
}

func TestPickCareersUsesTopStrength(t *testing.T) {
	careers := PickCareers(&AssessmentResult{Strengths: []string{"leadership", "tech"}})
	if len(careers) != 1 || careers[0].Title != "Team Lead" {
		t.Fatalf("expected leadership bucket, got %+v", careers)
	}
}

func TestGenerateDailyTasksMix(t *testing.T) {
	result := &AssessmentResult{
		Strengths:  []string{"tech", "creativity"},
		Weaknesses: []string{"communication", "leadership", "analysis"},
	}

	tasks := GenerateDailyTasks(result)
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}
	if tasks[0].Skill != "communication" || tasks[1].Skill != "leadership" {
		t.Errorf("expected first two tasks from weaknesses, got %+v", tasks)
	}
	if tasks[2].Skill != "tech" {
		t.Errorf("expected third task from top strength, got %+v", tasks[2])
	}
}

func TestGenerateDailyTasksWithoutResult(t *testing.T) {
	tasks := GenerateDailyTasks(nil)
	if len(tasks) != 3 {
		t.Fatalf("expected 3 default tasks, got %d", len(tasks))
	}
	for _, task := range tasks {
		if task.Label == "" || task.Skill == "" {
			t.Errorf("generated task missing fields: %+v", task)
		}
	}
}

func TestGenerateDailyTasksUnknownSkillFallsBack(t *testing.T) {
	tasks := GenerateDailyTasks(&AssessmentResult{
		Strengths:  []string{"juggling"},
		Weaknesses: []string{"swimming"},
	})
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks (one weakness, one strength), got %d", len(tasks))
	}
	if tasks[0].Label != taskLibrary["analysis"][0] {
		t.Errorf("unknown weakness should use analysis pool, got %q", tasks[0].Label)
	}
	if tasks[1].Label != taskLibrary["tech"][1] {
		t.Errorf("unknown strength should use tech pool, got %q", tasks[1].Label)
	}
}

func TestReplyKeywords(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"Tell me about SOFTWARE careers", "Software engineering"},
		{"is data analysis a good path?", "Data roles"},
		{"how do I get into design", "UX/UI design"},
		{"hello there", "Great question"},
	}

	for _, tt := range tests {
		got := Reply(tt.message)
		if !strings.Contains(got, tt.want) {
			t.Errorf("Reply(%q) = %q, want substring %q", tt.message, got, tt.want)
		}
	}
}
