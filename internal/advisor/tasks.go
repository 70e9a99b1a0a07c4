package advisor

// DailyTask is a generated task suggestion before it is persisted.
type DailyTask struct {
	Label string `json:"label"`
	Skill string `json:"skill"`
}

// taskLibrary maps each skill to a pool of concrete daily activities.
var taskLibrary = map[string][]string{
	"tech":          {"Solve 2 easy DS/Algo problems", "Read 5 pages of CS fundamentals", "Practice 20 mins of coding"},
	"analysis":      {"Write 3 SQL queries on dummy data", "Explain one chart insight in 3 lines", "Review a dataset for outliers"},
	"communication": {"Summarize an article in 5 bullet points", "Record a 1-min clarity pitch", "Give specific feedback on a topic"},
	"creativity":    {"Sketch 3 alternative UI ideas", "Brainstorm 10 ideas quickly", "Remix a feature from a favorite app"},
	"leadership":    {"Set one clear goal with metrics", "Coach a peer for 10 mins", "Delegate a small task with outcomes"},
}

// GenerateDailyTasks proposes today's task set from an assessment result:
// two tasks drawn from the top weaknesses and one from the top strength.
// Without a result it falls back to a default skill mix.
func GenerateDailyTasks(result *AssessmentResult) []DailyTask {
	weaknesses := []string{"analysis", "communication"}
	strengths := []string{"tech", "creativity"}
	if result != nil {
		if len(result.Weaknesses) > 0 {
			weaknesses = result.Weaknesses
		}
		if len(result.Strengths) > 0 {
			strengths = result.Strengths
		}
	}

	var tasks []DailyTask
	for _, w := range weaknesses {
		if len(tasks) == 2 {
			break
		}
		pool, ok := taskLibrary[w]
		if !ok {
			pool = taskLibrary["analysis"]
		}
		tasks = append(tasks, DailyTask{Label: pool[0], Skill: w})
	}

	s := strengths[0]
	pool, ok := taskLibrary[s]
	if !ok {
		pool = taskLibrary["tech"]
	}
	tasks = append(tasks, DailyTask{Label: pool[1], Skill: s})

	return tasks
}
