package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podo/pkg/storage"
)

func fixedSettings() Settings {
	return Settings{FocusMinutes: 25, ShortBreakMinutes: 5, LongBreakMinutes: 15}
}

func newTestEngine(t *testing.T) (*Engine, *Log) {
	t.Helper()
	log, err := NewLog(storage.NewMemory())
	require.NoError(t, err)
	return NewEngine(fixedSettings, log), log
}

// runToCompletion ticks the engine through the rest of the current
// countdown.
func runToCompletion(t *testing.T, e *Engine) {
	t.Helper()
	e.Start()
	remaining := e.TimeLeft()
	for i := 0; i < remaining; i++ {
		require.NoError(t, e.Tick())
	}
}

func TestNewEngineStartsStoppedInFocus(t *testing.T) {
	e, _ := newTestEngine(t)

	assert.Equal(t, ModeFocus, e.Mode())
	assert.False(t, e.Running())
	assert.Equal(t, 25*60, e.TimeLeft())
	assert.Equal(t, 0, e.CycleCount())
}

func TestTickIgnoredWhilePaused(t *testing.T) {
	e, _ := newTestEngine(t)

	require.NoError(t, e.Tick())

	assert.Equal(t, 25*60, e.TimeLeft())
}

func TestStartPauseResume(t *testing.T) {
	e, _ := newTestEngine(t)

	e.Start()
	require.NoError(t, e.Tick())
	require.NoError(t, e.Tick())
	e.Pause()
	require.NoError(t, e.Tick())

	assert.Equal(t, 25*60-2, e.TimeLeft())
	assert.False(t, e.Running())

	e.Start()
	require.NoError(t, e.Tick())
	assert.Equal(t, 25*60-3, e.TimeLeft())
}

func TestResetRestoresFullDurationWithoutSession(t *testing.T) {
	e, log := newTestEngine(t)

	e.Start()
	require.NoError(t, e.Tick())
	e.Reset()

	assert.False(t, e.Running())
	assert.Equal(t, ModeFocus, e.Mode())
	assert.Equal(t, 25*60, e.TimeLeft())
	assert.Empty(t, log.All())
}

func TestSwitchModeStopsAndResizes(t *testing.T) {
	e, log := newTestEngine(t)

	e.Start()
	require.NoError(t, e.Tick())
	e.SwitchMode(ModeLongBreak)

	assert.False(t, e.Running())
	assert.Equal(t, ModeLongBreak, e.Mode())
	assert.Equal(t, 15*60, e.TimeLeft())
	assert.Equal(t, 0, e.CycleCount())
	assert.Empty(t, log.All())
}

func TestFocusCompletionAppendsSessionAndStops(t *testing.T) {
	e, log := newTestEngine(t)

	runToCompletion(t, e)

	assert.Equal(t, 1, e.CycleCount())
	assert.Equal(t, ModeShortBreak, e.Mode())
	assert.False(t, e.Running())
	assert.Equal(t, 5*60, e.TimeLeft())

	sessions := log.All()
	require.Len(t, sessions, 1)
	assert.Equal(t, ModeFocus, sessions[0].Type)
	assert.Equal(t, 25*60, sessions[0].Duration)
	assert.NotEmpty(t, sessions[0].ID)
	assert.False(t, sessions[0].CompletedAt.IsZero())
}

func TestBreakCompletionReturnsToFocus(t *testing.T) {
	e, log := newTestEngine(t)

	runToCompletion(t, e) // focus -> short break
	runToCompletion(t, e) // short break -> focus

	assert.Equal(t, ModeFocus, e.Mode())
	assert.Equal(t, 1, e.CycleCount())

	sessions := log.All()
	require.Len(t, sessions, 2)
	assert.Equal(t, ModeShortBreak, sessions[1].Type)
	assert.Equal(t, 5*60, sessions[1].Duration)
}

func TestFourthFocusEarnsLongBreak(t *testing.T) {
	e, _ := newTestEngine(t)

	for cycle := 1; cycle <= 3; cycle++ {
		runToCompletion(t, e) // focus
		assert.Equal(t, ModeShortBreak, e.Mode())
		runToCompletion(t, e) // break
	}

	runToCompletion(t, e) // 4th focus
	assert.Equal(t, 4, e.CycleCount())
	assert.Equal(t, ModeLongBreak, e.Mode())

	runToCompletion(t, e) // long break
	assert.Equal(t, ModeFocus, e.Mode())

	runToCompletion(t, e) // 5th focus
	assert.Equal(t, 5, e.CycleCount())
	assert.Equal(t, ModeShortBreak, e.Mode())
}

func TestSettingsReadWhenDurationNeeded(t *testing.T) {
	log, err := NewLog(storage.NewMemory())
	require.NoError(t, err)

	current := Settings{FocusMinutes: 25, ShortBreakMinutes: 5, LongBreakMinutes: 15}
	e := NewEngine(func() Settings { return current }, log)

	e.Start()
	require.NoError(t, e.Tick())

	// A settings change does not shrink the in-progress countdown
	current.FocusMinutes = 10
	assert.Equal(t, 25*60-1, e.TimeLeft())

	// but applies on the next reset
	e.Reset()
	assert.Equal(t, 10*60, e.TimeLeft())
}

func TestFocusSessionCarriesActiveTask(t *testing.T) {
	e, log := newTestEngine(t)
	e.SetActiveTask("task-42")

	runToCompletion(t, e)

	sessions := log.All()
	require.Len(t, sessions, 1)
	assert.Equal(t, "task-42", sessions[0].TaskID)

	// Breaks are never attributed to a task
	runToCompletion(t, e)
	assert.Empty(t, log.All()[1].TaskID)
}

func TestSessionLogRoundTripsThroughStorage(t *testing.T) {
	mem := storage.NewMemory()
	log, err := NewLog(mem)
	require.NoError(t, err)

	s := Session{
		ID:          "abc",
		Type:        ModeFocus,
		Duration:    1500,
		CompletedAt: time.Date(2026, 3, 10, 9, 30, 0, 0, time.Local),
	}
	require.NoError(t, log.Append(s))

	reloaded, err := NewLog(mem)
	require.NoError(t, err)
	require.Len(t, reloaded.All(), 1)
	assert.Equal(t, "abc", reloaded.All()[0].ID)
	assert.Equal(t, ModeFocus, reloaded.All()[0].Type)
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "25:00", FormatTime(25*60))
	assert.Equal(t, "04:09", FormatTime(249))
	assert.Equal(t, "00:00", FormatTime(0))
}

func TestProgress(t *testing.T) {
	e, _ := newTestEngine(t)

	assert.Equal(t, 0.0, e.Progress())

	e.Start()
	for i := 0; i < 25*30; i++ { // halfway
		require.NoError(t, e.Tick())
	}
	assert.InDelta(t, 0.5, e.Progress(), 0.001)
}
