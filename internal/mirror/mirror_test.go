package mirror

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"career_advisor_backend/internal/advisor"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "state.json"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return store
}

func writeData(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{"data": data})
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	err = store.Update(func(s *State) {
		s.CurrentStreak = 4
		s.LastActiveDate = "2026-08-28"
		s.ReminderTime = "09:00"
		s.Tasks = []TaskItem{{ID: "t1", Label: "read"}}
		s.TasksDate = "2026-08-28"
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	state := reopened.State()
	if state.CurrentStreak != 4 || state.LastActiveDate != "2026-08-28" {
		t.Errorf("streak state lost: %+v", state)
	}
	if state.ReminderTime != "09:00" || len(state.Tasks) != 1 || state.Tasks[0].Label != "read" {
		t.Errorf("state lost: %+v", state)
	}
}

func TestSyncServerWins(t *testing.T) {
	last := "2026-08-28"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/streak":
			writeData(w, http.StatusOK, StreakState{CurrentStreak: 7, LastActiveDate: &last})
		case r.Method == http.MethodGet && r.URL.Path == "/api/tasks":
			writeData(w, http.StatusOK, []ServerTask{
				{ID: 11, Label: "server task", Done: true},
			})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	store := newStore(t)
	if err := store.Update(func(s *State) {
		s.CurrentStreak = 2
		s.Tasks = []TaskItem{{ID: "local", Label: "stale local task"}}
	}); err != nil {
		t.Fatal(err)
	}

	m := New(store, NewClient(srv.URL, "token"))
	if err := m.Sync(context.Background()); err != nil {
		t.Fatalf("sync: %v", err)
	}

	state := store.State()
	if state.CurrentStreak != 7 || state.LastActiveDate != last {
		t.Errorf("streak not adopted: %+v", state)
	}
	if len(state.Tasks) != 1 || state.Tasks[0].ID != "11" || !state.Tasks[0].Done {
		t.Errorf("server tasks not adopted: %+v", state.Tasks)
	}
}

func TestSyncSeedsDefaultsOnce(t *testing.T) {
	var posts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/streak":
			writeData(w, http.StatusOK, StreakState{})
		case r.Method == http.MethodGet && r.URL.Path == "/api/tasks":
			writeData(w, http.StatusOK, []ServerTask{})
		case r.Method == http.MethodPost && r.URL.Path == "/api/tasks":
			atomic.AddInt32(&posts, 1)
			var payloads []TaskPayload
			if err := json.NewDecoder(r.Body).Decode(&payloads); err != nil {
				t.Errorf("decode created tasks: %v", err)
			}
			created := make([]ServerTask, 0, len(payloads))
			for i, p := range payloads {
				label := p.Label
				created = append(created, ServerTask{ID: uint(100 + i), Label: label})
			}
			writeData(w, http.StatusCreated, created)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	store := newStore(t)
	if err := store.Update(func(s *State) {
		s.Result = &advisor.AssessmentResult{
			Strengths:  []string{"tech"},
			Weaknesses: []string{"communication", "analysis"},
		}
	}); err != nil {
		t.Fatal(err)
	}

	m := New(store, NewClient(srv.URL, "token"))
	if err := m.Sync(context.Background()); err != nil {
		t.Fatalf("first sync: %v", err)
	}

	state := store.State()
	if len(state.Tasks) != 3 {
		t.Fatalf("expected 3 generated tasks, got %d", len(state.Tasks))
	}
	if state.Tasks[0].ID != "100" {
		t.Errorf("created rows not adopted: %+v", state.Tasks)
	}

	if err := m.Sync(context.Background()); err != nil {
		t.Fatalf("second sync: %v", err)
	}
	if n := atomic.LoadInt32(&posts); n != 1 {
		t.Errorf("defaults should be pushed once per day, got %d posts", n)
	}
}

func TestSyncOffline(t *testing.T) {
	store := newStore(t)
	m := New(store, nil)

	if err := m.Sync(context.Background()); err != nil {
		t.Fatalf("offline sync: %v", err)
	}
	state := store.State()
	if len(state.Tasks) != 3 {
		t.Errorf("offline sync should generate default tasks, got %+v", state.Tasks)
	}
	if state.TasksDate == "" {
		t.Error("tasks date not recorded")
	}
}

func TestMarkActiveToday(t *testing.T) {
	store := newStore(t)
	m := New(store, nil)
	m.now = func() time.Time { return time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC) }

	if err := store.Update(func(s *State) {
		s.CurrentStreak = 4
		s.LastActiveDate = "2026-08-28"
	}); err != nil {
		t.Fatal(err)
	}

	count, err := m.MarkActiveToday(context.Background())
	if err != nil {
		t.Fatalf("mark active: %v", err)
	}
	if count != 5 {
		t.Errorf("consecutive day should increment, got %d", count)
	}

	// Same-day repeat is a no-op.
	count, err = m.MarkActiveToday(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if count != 5 {
		t.Errorf("same-day repeat should not change streak, got %d", count)
	}
}

func TestMarkActiveTodayAdoptsServer(t *testing.T) {
	last := "2026-08-29"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/api/streak" {
			writeData(w, http.StatusOK, StreakState{CurrentStreak: 9, LastActiveDate: &last})
			return
		}
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
	}))
	defer srv.Close()

	store := newStore(t)
	m := New(store, NewClient(srv.URL, "token"))

	count, err := m.MarkActiveToday(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if count != 9 {
		t.Errorf("server answer should win, got %d", count)
	}
	if store.State().CurrentStreak != 9 {
		t.Errorf("store not updated from server: %+v", store.State())
	}
}

func TestReminderOncePerDay(t *testing.T) {
	store := newStore(t)
	if err := store.Update(func(s *State) {
		s.ReminderTime = "09:00"
	}); err != nil {
		t.Fatal(err)
	}

	r := NewReminder(store)
	at := time.Date(2026, 8, 29, 9, 0, 10, 0, time.UTC)
	r.now = func() time.Time { return at }

	r.check()
	if !r.Due() {
		t.Fatal("reminder should fire at the configured time")
	}

	if err := r.Acknowledge(); err != nil {
		t.Fatal(err)
	}
	if r.Due() {
		t.Error("acknowledge should clear the flag")
	}

	// Still 09:00 the same day: acknowledged, stays quiet.
	r.check()
	if r.Due() {
		t.Error("reminder should fire at most once per day")
	}

	// Next day at the same time it fires again.
	at = at.AddDate(0, 0, 1)
	r.check()
	if !r.Due() {
		t.Error("reminder should fire again the next day")
	}
}

func TestReminderOffTime(t *testing.T) {
	store := newStore(t)
	if err := store.Update(func(s *State) {
		s.ReminderTime = "09:00"
	}); err != nil {
		t.Fatal(err)
	}

	r := NewReminder(store)
	r.now = func() time.Time { return time.Date(2026, 8, 29, 9, 1, 0, 0, time.UTC) }

	r.check()
	if r.Due() {
		t.Error("reminder should only fire at the exact HH:MM")
	}
}
