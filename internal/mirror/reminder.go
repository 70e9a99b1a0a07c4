package mirror

import (
	"context"
	"sync"
	"time"

	"career_advisor_backend/internal/util"
)

// Reminder raises a flag when the wall clock reaches the configured HH:MM,
// at most once per calendar day. Acknowledging records the day so restarts
// within the same day stay quiet.
type Reminder struct {
	store    *Store
	interval time.Duration
	now      func() time.Time

	mu  sync.Mutex
	due bool
}

func NewReminder(store *Store) *Reminder {
	return &Reminder{
		store:    store,
		interval: 30 * time.Second,
		now:      time.Now,
	}
}

// Run polls until the context is cancelled.
func (r *Reminder) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.check()
		}
	}
}

func (r *Reminder) check() {
	state := r.store.State()
	if state.ReminderTime == "" {
		return
	}

	now := r.now()
	if now.Format("15:04") != state.ReminderTime {
		return
	}
	if state.ReminderAck == now.Format(util.DateLayout) {
		return
	}

	r.mu.Lock()
	r.due = true
	r.mu.Unlock()
}

// Due reports whether an unacknowledged reminder is pending.
func (r *Reminder) Due() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.due
}

// Acknowledge clears the flag and records today's date so the reminder
// stays silent until tomorrow.
func (r *Reminder) Acknowledge() error {
	r.mu.Lock()
	r.due = false
	r.mu.Unlock()

	today := r.now().Format(util.DateLayout)
	return r.store.Update(func(s *State) {
		s.ReminderAck = today
	})
}
