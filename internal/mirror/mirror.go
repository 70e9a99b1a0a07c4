package mirror

import (
	"context"
	"strconv"
	"time"

	"career_advisor_backend/internal/advisor"
	"career_advisor_backend/internal/streak"
	"career_advisor_backend/internal/util"

	"github.com/google/uuid"
)

// Mirror reconciles the local store against the server. Client may be nil,
// in which case everything runs offline.
type Mirror struct {
	Store  *Store
	Client *Client

	// now is swappable for tests.
	now func() time.Time
}

func New(store *Store, client *Client) *Mirror {
	return &Mirror{Store: store, Client: client, now: time.Now}
}

func (m *Mirror) today() string {
	return m.now().Format(util.DateLayout)
}

// Sync pulls the server state into the store. The server wins on every
// field it answers for; errors leave the local state untouched. When the
// server has no tasks for today, one default set is generated from the
// stored assessment result and pushed up.
func (m *Mirror) Sync(ctx context.Context) error {
	if m.Client == nil {
		m.ensureLocalTasks()
		return nil
	}

	if remote, err := m.Client.Streak(ctx); err == nil {
		if err := m.Store.Update(func(s *State) {
			s.CurrentStreak = remote.CurrentStreak
			if remote.LastActiveDate != nil {
				s.LastActiveDate = *remote.LastActiveDate
			} else {
				s.LastActiveDate = ""
			}
		}); err != nil {
			return err
		}
	}

	remoteTasks, err := m.Client.TasksDueToday(ctx)
	if err != nil {
		m.ensureLocalTasks()
		return nil
	}

	today := m.today()
	if len(remoteTasks) > 0 {
		return m.Store.Update(func(s *State) {
			s.TasksDate = today
			s.Tasks = serverTaskItems(remoteTasks)
		})
	}

	// Seed once per day: a list already adopted for today stays.
	if m.Store.State().TasksDate == today {
		return nil
	}

	generated := m.generateTasks(today)
	payloads := make([]TaskPayload, 0, len(generated))
	for _, item := range generated {
		payloads = append(payloads, TaskPayload{Label: item.Label, Skill: item.Skill, DueDate: today})
	}

	created, err := m.Client.CreateTasks(ctx, payloads)
	if err == nil && len(created) > 0 {
		generated = serverTaskItems(created)
	}
	return m.Store.Update(func(s *State) {
		s.TasksDate = today
		s.Tasks = generated
	})
}

// MarkActiveToday advances the streak locally and, when a server is
// reachable, adopts its answer as authoritative.
func (m *Mirror) MarkActiveToday(ctx context.Context) (int, error) {
	today := m.today()

	state := m.Store.State()
	var lastActive *string
	if state.LastActiveDate != "" {
		lastActive = &state.LastActiveDate
	}
	next, activeDate := streak.Advance(state.CurrentStreak, lastActive, today)

	if err := m.Store.Update(func(s *State) {
		s.CurrentStreak = next
		s.LastActiveDate = activeDate
	}); err != nil {
		return 0, err
	}

	if m.Client != nil {
		if remote, err := m.Client.AdvanceStreak(ctx); err == nil {
			next = remote.CurrentStreak
			if err := m.Store.Update(func(s *State) {
				s.CurrentStreak = remote.CurrentStreak
				if remote.LastActiveDate != nil {
					s.LastActiveDate = *remote.LastActiveDate
				}
			}); err != nil {
				return 0, err
			}
		}
	}

	return next, nil
}

func (m *Mirror) ensureLocalTasks() {
	today := m.today()
	if m.Store.State().TasksDate == today {
		return
	}
	generated := m.generateTasks(today)
	_ = m.Store.Update(func(s *State) {
		s.TasksDate = today
		s.Tasks = generated
	})
}

func (m *Mirror) generateTasks(today string) []TaskItem {
	daily := advisor.GenerateDailyTasks(m.Store.State().Result)
	items := make([]TaskItem, 0, len(daily))
	for _, task := range daily {
		items = append(items, TaskItem{
			ID:      uuid.NewString(),
			Label:   task.Label,
			Skill:   task.Skill,
			DueDate: today,
		})
	}
	return items
}

func serverTaskItems(tasks []ServerTask) []TaskItem {
	items := make([]TaskItem, 0, len(tasks))
	for _, task := range tasks {
		item := TaskItem{
			ID:    strconv.FormatUint(uint64(task.ID), 10),
			Label: task.Label,
			Done:  task.Done,
		}
		if task.Skill != nil {
			item.Skill = *task.Skill
		}
		if task.DueDate != nil {
			item.DueDate = *task.DueDate
		}
		items = append(items, item)
	}
	return items
}
