// Package timer implements the Pomodoro countdown state machine and
// the append-only log of completed sessions.
package timer

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Mode string

const (
	ModeFocus      Mode = "focus"
	ModeShortBreak Mode = "short-break"
	ModeLongBreak  Mode = "long-break"
)

// Settings holds the configured session lengths in minutes. The engine
// asks for a fresh snapshot every time it needs a duration, so settings
// changes apply on the next reset or mode switch rather than shrinking
// an in-progress countdown.
type Settings struct {
	FocusMinutes      int
	ShortBreakMinutes int
	LongBreakMinutes  int
}

// Engine is the Pomodoro state machine. It is driven synchronously:
// the owner delivers one Tick per second while the engine is running.
// The engine never resumes itself after a completion.
type Engine struct {
	settings func() Settings
	log      *Log
	now      func() time.Time

	mode       Mode
	running    bool
	timeLeft   int
	cycleCount int
	activeTask string
}

// NewEngine creates an engine in focus mode, stopped, with a full
// countdown. cycleCount always starts at zero; it is not persisted.
func NewEngine(settings func() Settings, log *Log) *Engine {
	e := &Engine{
		settings: settings,
		log:      log,
		now:      time.Now,
		mode:     ModeFocus,
	}
	e.timeLeft = e.Duration(ModeFocus)
	return e
}

// Duration returns the configured length of a mode in seconds.
func (e *Engine) Duration(m Mode) int {
	s := e.settings()
	switch m {
	case ModeShortBreak:
		return s.ShortBreakMinutes * 60
	case ModeLongBreak:
		return s.LongBreakMinutes * 60
	default:
		return s.FocusMinutes * 60
	}
}

// Start begins the countdown. No-op if already running.
func (e *Engine) Start() {
	e.running = true
}

// Pause stops the countdown without losing progress. No-op if already
// paused.
func (e *Engine) Pause() {
	e.running = false
}

// Reset stops the countdown and restores the current mode's full
// duration. The mode and cycle count are unchanged and no session is
// recorded.
func (e *Engine) Reset() {
	e.running = false
	e.timeLeft = e.Duration(e.mode)
}

// SwitchMode jumps to the given mode with a full countdown, stopped.
// The cycle count is unchanged and no session is recorded.
func (e *Engine) SwitchMode(m Mode) {
	e.mode = m
	e.timeLeft = e.Duration(m)
	e.running = false
}

// SetActiveTask associates subsequent focus sessions with a task.
func (e *Engine) SetActiveTask(id string) {
	e.activeTask = id
}

// ClearActiveTask drops the task association.
func (e *Engine) ClearActiveTask() {
	e.activeTask = ""
}

// Tick advances the countdown by one second. When the countdown hits
// zero the completed session is appended and the next mode is set up
// in the same call, so no tick can land between the two.
func (e *Engine) Tick() error {
	if !e.running || e.timeLeft <= 0 {
		return nil
	}

	e.timeLeft--
	if e.timeLeft > 0 {
		return nil
	}

	return e.complete()
}

// complete records the finished session and arranges the next mode:
// after a focus session every 4th cycle earns a long break, otherwise
// a short one; after any break it's back to focus. The engine stops
// and waits for Start.
func (e *Engine) complete() error {
	finished := e.mode

	session := Session{
		ID:          uuid.NewString(),
		Type:        finished,
		Duration:    e.Duration(finished),
		CompletedAt: e.now(),
	}
	if finished == ModeFocus {
		session.TaskID = e.activeTask
	}

	if finished == ModeFocus {
		e.cycleCount++
		if e.cycleCount%4 == 0 {
			e.mode = ModeLongBreak
		} else {
			e.mode = ModeShortBreak
		}
	} else {
		e.mode = ModeFocus
	}

	e.running = false
	e.timeLeft = e.Duration(e.mode)

	if err := e.log.Append(session); err != nil {
		return fmt.Errorf("recording session: %w", err)
	}
	return nil
}

func (e *Engine) Mode() Mode         { return e.mode }
func (e *Engine) Running() bool      { return e.running }
func (e *Engine) TimeLeft() int      { return e.timeLeft }
func (e *Engine) CycleCount() int    { return e.cycleCount }
func (e *Engine) ActiveTask() string { return e.activeTask }

// Progress reports how far the current countdown has advanced, in
// [0, 1]. Display only.
func (e *Engine) Progress() float64 {
	total := e.Duration(e.mode)
	if total == 0 {
		return 0
	}
	return float64(total-e.timeLeft) / float64(total)
}

// FormatTime renders seconds as mm:ss for display.
func FormatTime(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
