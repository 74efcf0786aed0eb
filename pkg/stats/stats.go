// Package stats derives streaks and productivity aggregates from the
// task and session history. Aggregates are recomputed freshly from the
// full history on every refresh; only the streak state is carried
// forward between days.
package stats

import (
	"encoding/json"
	"time"

	"podo/pkg/storage"
	"podo/pkg/task"
	"podo/pkg/timer"
)

// StorageKey is the logical key the stats snapshot is stored under.
const StorageKey = "productivity-stats"

const dateLayout = "2006-01-02"

// UserStats is the persisted summary shown on the stats view. It can
// be rebuilt from the task and session history at any time.
type UserStats struct {
	CurrentStreak       int    `json:"currentStreak"`
	LongestStreak       int    `json:"longestStreak"`
	TotalTasksCompleted int    `json:"totalTasksCompleted"`
	TotalFocusMinutes   int    `json:"totalFocusMinutes"`
	LastActiveDate      string `json:"lastActiveDate,omitempty"`
}

// WeekDay is one entry of the 7-day completion chart.
type WeekDay struct {
	Day            string `json:"day"`
	Date           string `json:"date"`
	TasksCompleted int    `json:"tasksCompleted"`
	CompletionRate int    `json:"completionRate"`
}

// Engine owns the stats snapshot.
type Engine struct {
	storage storage.Store
	stats   UserStats
	now     func() time.Time
}

// NewEngine loads the stats snapshot from storage.
func NewEngine(st storage.Store) (*Engine, error) {
	e := &Engine{storage: st, now: time.Now}

	data, ok, err := st.Read(StorageKey)
	if err != nil {
		return nil, err
	}
	if ok {
		if err := json.Unmarshal(data, &e.stats); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Stats returns the current snapshot.
func (e *Engine) Stats() UserStats {
	return e.stats
}

// UpdateStreak advances the streak when a task was completed today.
// Repeated calls on the same day are no-ops; days with no completion
// leave the streak untouched until the next completion decides whether
// it continued or restarted.
func (e *Engine) UpdateStreak(tasks []task.Task) error {
	now := e.now()

	completedToday := false
	for _, t := range tasks {
		if t.CompletedAt != nil && sameDay(*t.CompletedAt, now) {
			completedToday = true
			break
		}
	}
	if !completedToday {
		return nil
	}

	today := now.Format(dateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(dateLayout)

	switch {
	case e.stats.LastActiveDate == yesterday:
		e.stats.CurrentStreak++
		if e.stats.CurrentStreak > e.stats.LongestStreak {
			e.stats.LongestStreak = e.stats.CurrentStreak
		}
		e.stats.LastActiveDate = today
	case e.stats.LastActiveDate != today:
		e.stats.CurrentStreak = 1
		e.stats.LastActiveDate = today
	default:
		// already counted today
		return nil
	}

	return e.persist()
}

// RefreshTotals rederives the running totals from the full history.
func (e *Engine) RefreshTotals(tasks []task.Task, sessions []timer.Session) error {
	completed := 0
	for _, t := range tasks {
		if t.Status == task.StatusCompleted {
			completed++
		}
	}

	focusMinutes := 0
	for _, s := range sessions {
		if s.Type == timer.ModeFocus {
			focusMinutes += s.Duration / 60
		}
	}

	if completed == e.stats.TotalTasksCompleted && focusMinutes == e.stats.TotalFocusMinutes {
		return nil
	}

	e.stats.TotalTasksCompleted = completed
	e.stats.TotalFocusMinutes = focusMinutes
	return e.persist()
}

func (e *Engine) persist() error {
	data, err := json.Marshal(e.stats)
	if err != nil {
		return err
	}
	return e.storage.Write(StorageKey, data)
}

// DailyFocusMinutes sums the configured minutes of today's completed
// focus sessions.
func DailyFocusMinutes(sessions []timer.Session, now time.Time) int {
	total := 0
	for _, s := range sessions {
		if s.Type == timer.ModeFocus && sameDay(s.CompletedAt, now) {
			total += s.Duration / 60
		}
	}
	return total
}

// SessionsToday counts today's completed sessions of the given type.
func SessionsToday(sessions []timer.Session, mode timer.Mode, now time.Time) int {
	count := 0
	for _, s := range sessions {
		if s.Type == mode && sameDay(s.CompletedAt, now) {
			count++
		}
	}
	return count
}

// WeeklyData summarizes task completions over the 7 calendar days
// ending today, oldest first. The completion rate is the fixed
// min(100, completed*20) heuristic.
func WeeklyData(tasks []task.Task, now time.Time) []WeekDay {
	week := make([]WeekDay, 0, 7)

	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)

		completed := 0
		for _, t := range tasks {
			if t.CompletedAt != nil && sameDay(*t.CompletedAt, day) {
				completed++
			}
		}

		rate := completed * 20
		if rate > 100 {
			rate = 100
		}

		week = append(week, WeekDay{
			Day:            day.Format("Mon"),
			Date:           day.Format(dateLayout),
			TasksCompleted: completed,
			CompletionRate: rate,
		})
	}

	return week
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
