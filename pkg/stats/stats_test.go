package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podo/pkg/storage"
	"podo/pkg/task"
	"podo/pkg/timer"
)

var noon = time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

func newTestEngine(t *testing.T, now time.Time) *Engine {
	t.Helper()
	e, err := NewEngine(storage.NewMemory())
	require.NoError(t, err)
	e.now = func() time.Time { return now }
	return e
}

func completedTask(at time.Time) task.Task {
	return task.Task{
		ID:          "t-" + at.Format("20060102-150405"),
		Title:       "done",
		Status:      task.StatusCompleted,
		CompletedAt: &at,
	}
}

func TestUpdateStreakContinuesFromYesterday(t *testing.T) {
	e := newTestEngine(t, noon)
	e.stats = UserStats{CurrentStreak: 3, LongestStreak: 5, LastActiveDate: "2026-03-09"}

	err := e.UpdateStreak([]task.Task{completedTask(noon)})

	require.NoError(t, err)
	assert.Equal(t, 4, e.Stats().CurrentStreak)
	assert.Equal(t, 5, e.Stats().LongestStreak)
	assert.Equal(t, "2026-03-10", e.Stats().LastActiveDate)
}

func TestUpdateStreakExtendsLongest(t *testing.T) {
	e := newTestEngine(t, noon)
	e.stats = UserStats{CurrentStreak: 5, LongestStreak: 5, LastActiveDate: "2026-03-09"}

	require.NoError(t, e.UpdateStreak([]task.Task{completedTask(noon)}))

	assert.Equal(t, 6, e.Stats().CurrentStreak)
	assert.Equal(t, 6, e.Stats().LongestStreak)
}

func TestUpdateStreakRestartsAfterGap(t *testing.T) {
	e := newTestEngine(t, noon)
	e.stats = UserStats{CurrentStreak: 7, LongestStreak: 9, LastActiveDate: "2026-03-01"}

	require.NoError(t, e.UpdateStreak([]task.Task{completedTask(noon)}))

	assert.Equal(t, 1, e.Stats().CurrentStreak)
	assert.Equal(t, 9, e.Stats().LongestStreak)
	assert.Equal(t, "2026-03-10", e.Stats().LastActiveDate)
}

func TestUpdateStreakIdempotentSameDay(t *testing.T) {
	e := newTestEngine(t, noon)
	tasks := []task.Task{completedTask(noon)}

	require.NoError(t, e.UpdateStreak(tasks))
	first := e.Stats()

	require.NoError(t, e.UpdateStreak(tasks))
	assert.Equal(t, first, e.Stats())
}

func TestUpdateStreakNoCompletionToday(t *testing.T) {
	e := newTestEngine(t, noon)
	e.stats = UserStats{CurrentStreak: 2, LongestStreak: 4, LastActiveDate: "2026-03-08"}

	yesterday := noon.AddDate(0, 0, -1)
	require.NoError(t, e.UpdateStreak([]task.Task{completedTask(yesterday)}))

	// streak state untouched until the next completion
	assert.Equal(t, 2, e.Stats().CurrentStreak)
	assert.Equal(t, "2026-03-08", e.Stats().LastActiveDate)
}

func TestUpdateStreakIgnoresUncompletedTasks(t *testing.T) {
	e := newTestEngine(t, noon)

	pending := task.Task{ID: "p", Title: "open", Status: task.StatusPending}
	require.NoError(t, e.UpdateStreak([]task.Task{pending}))

	assert.Equal(t, 0, e.Stats().CurrentStreak)
	assert.Empty(t, e.Stats().LastActiveDate)
}

func TestRefreshTotalsDerivesFromFullHistory(t *testing.T) {
	e := newTestEngine(t, noon)

	tasks := []task.Task{
		completedTask(noon),
		completedTask(noon.AddDate(0, 0, -3)),
		{ID: "open", Title: "open", Status: task.StatusPending},
	}
	sessions := []timer.Session{
		{ID: "1", Type: timer.ModeFocus, Duration: 25 * 60, CompletedAt: noon},
		{ID: "2", Type: timer.ModeFocus, Duration: 25 * 60, CompletedAt: noon.AddDate(0, 0, -1)},
		{ID: "3", Type: timer.ModeShortBreak, Duration: 5 * 60, CompletedAt: noon},
	}

	require.NoError(t, e.RefreshTotals(tasks, sessions))

	assert.Equal(t, 2, e.Stats().TotalTasksCompleted)
	assert.Equal(t, 50, e.Stats().TotalFocusMinutes)

	// Refreshing again must not double-count
	require.NoError(t, e.RefreshTotals(tasks, sessions))
	assert.Equal(t, 50, e.Stats().TotalFocusMinutes)
}

func TestEngineRoundTripsThroughStorage(t *testing.T) {
	mem := storage.NewMemory()

	e, err := NewEngine(mem)
	require.NoError(t, err)
	e.now = func() time.Time { return noon }
	require.NoError(t, e.UpdateStreak([]task.Task{completedTask(noon)}))

	reloaded, err := NewEngine(mem)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.Stats().CurrentStreak)
	assert.Equal(t, "2026-03-10", reloaded.Stats().LastActiveDate)
}

func TestDailyFocusMinutes(t *testing.T) {
	sessions := []timer.Session{
		{Type: timer.ModeFocus, Duration: 25 * 60, CompletedAt: noon},
		{Type: timer.ModeFocus, Duration: 90, CompletedAt: noon.Add(time.Hour)},
		{Type: timer.ModeFocus, Duration: 25 * 60, CompletedAt: noon.AddDate(0, 0, -1)},
		{Type: timer.ModeLongBreak, Duration: 15 * 60, CompletedAt: noon},
	}

	// 25 + floor(90/60) from today's focus sessions only
	assert.Equal(t, 26, DailyFocusMinutes(sessions, noon))
	assert.Equal(t, 0, DailyFocusMinutes(nil, noon))
}

func TestSessionsToday(t *testing.T) {
	sessions := []timer.Session{
		{Type: timer.ModeFocus, CompletedAt: noon},
		{Type: timer.ModeFocus, CompletedAt: noon.Add(2 * time.Hour)},
		{Type: timer.ModeFocus, CompletedAt: noon.AddDate(0, 0, -2)},
		{Type: timer.ModeShortBreak, CompletedAt: noon},
	}

	assert.Equal(t, 2, SessionsToday(sessions, timer.ModeFocus, noon))
	assert.Equal(t, 1, SessionsToday(sessions, timer.ModeShortBreak, noon))
	assert.Equal(t, 0, SessionsToday(sessions, timer.ModeLongBreak, noon))
}

func TestWeeklyDataShapeAndOrder(t *testing.T) {
	week := WeeklyData(nil, noon)

	require.Len(t, week, 7)
	assert.Equal(t, "2026-03-04", week[0].Date)
	assert.Equal(t, "2026-03-10", week[6].Date)
	assert.Equal(t, noon.AddDate(0, 0, -6).Format("Mon"), week[0].Day)

	for _, d := range week {
		assert.Equal(t, 0, d.TasksCompleted)
		assert.Equal(t, 0, d.CompletionRate)
	}
}

func TestWeeklyDataCompletionRateHeuristic(t *testing.T) {
	twoDaysAgo := noon.AddDate(0, 0, -2)

	var tasks []task.Task
	for i := 0; i < 3; i++ {
		tasks = append(tasks, completedTask(twoDaysAgo.Add(time.Duration(i)*time.Minute)))
	}
	for i := 0; i < 7; i++ {
		tasks = append(tasks, completedTask(noon.Add(time.Duration(i)*time.Minute)))
	}
	// outside the window
	tasks = append(tasks, completedTask(noon.AddDate(0, 0, -10)))

	week := WeeklyData(tasks, noon)

	assert.Equal(t, 3, week[4].TasksCompleted)
	assert.Equal(t, 60, week[4].CompletionRate)

	// 7 completions caps at 100
	assert.Equal(t, 7, week[6].TasksCompleted)
	assert.Equal(t, 100, week[6].CompletionRate)

	for _, d := range week {
		assert.GreaterOrEqual(t, d.CompletionRate, 0)
		assert.LessOrEqual(t, d.CompletionRate, 100)
	}
}
