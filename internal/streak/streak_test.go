package streak

import "testing"

func strptr(s string) *string { return &s }

func TestAdvance(t *testing.T) {
	tests := []struct {
		name       string
		current    int
		lastActive *string
		today      string
		wantStreak int
		wantDate   string
	}{
		{"no history nil", 0, nil, "2026-08-29", 1, "2026-08-29"},
		{"no history empty", 3, strptr(""), "2026-08-29", 1, "2026-08-29"},
		{"already active today", 5, strptr("2026-08-29"), "2026-08-29", 5, "2026-08-29"},
		{"active yesterday increments", 4, strptr("2026-08-28"), "2026-08-29", 5, "2026-08-29"},
		{"stale resets", 7, strptr("2026-08-19"), "2026-08-29", 1, "2026-08-29"},
		{"two days ago resets", 2, strptr("2026-08-27"), "2026-08-29", 1, "2026-08-29"},
		{"month boundary", 9, strptr("2026-08-31"), "2026-09-01", 10, "2026-09-01"},
		{"year boundary", 1, strptr("2025-12-31"), "2026-01-01", 2, "2026-01-01"},
		{"leap day", 3, strptr("2024-02-29"), "2024-03-01", 4, "2024-03-01"},
		{"future last active resets", 4, strptr("2026-09-05"), "2026-08-29", 1, "2026-08-29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotStreak, gotDate := Advance(tt.current, tt.lastActive, tt.today)
			if gotStreak != tt.wantStreak {
				t.Errorf("Advance streak = %d, want %d", gotStreak, tt.wantStreak)
			}
			if gotDate != tt.wantDate {
				t.Errorf("Advance date = %q, want %q", gotDate, tt.wantDate)
			}
		})
	}
}
