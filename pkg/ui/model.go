package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"podo/pkg/config"
	"podo/pkg/keymaps"
	"podo/pkg/stats"
	"podo/pkg/storage"
	"podo/pkg/task"
	"podo/pkg/timer"
)

// View identifies the active screen
type View int

const (
	TasksView View = iota
	TimerView
	StatsView
)

// InputMode represents the current input mode
type InputMode int

const (
	NormalMode InputMode = iota
	AddMode
	EditMode
	DeleteConfirmMode
	HelpViewMode
)

// StatusFilter narrows the task list by completion status
type StatusFilter int

const (
	AllTasksFilter StatusFilter = iota
	DoneTasksFilter
	UndoneTasksFilter
)

// Form field indices: text inputs first, then the two selector rows
const (
	fieldTitle = iota
	fieldDescription
	fieldDueDate
	fieldEstimate
	fieldPriority
	fieldCategory
	fieldCount
)

// Model represents the application state
type Model struct {
	table         table.Model
	progressBar   progress.Model
	visible       []task.Task
	width, height int
	err           error

	// Core components
	tasks    *task.Store
	engine   *timer.Engine
	sessions *timer.Log
	stats    *stats.Engine
	store    storage.Store

	// Configuration
	settings config.Settings
	styles   config.Styles
	keyMap   keymaps.KeyMap

	// View state
	view         View
	mode         InputMode
	statusFilter StatusFilter
	tickSeq      int

	// Form state
	titleInput    textinput.Model
	descInput     textinput.Model
	dueDateInput  textinput.Model
	estimateInput textinput.Model
	activeInput   int
	priorityIdx   int
	categoryIdx   int

	// Edit/delete state
	editingItem *task.Task
}

// NewModel creates a new UI model with the provided components
func NewModel(tasks *task.Store, engine *timer.Engine, sessions *timer.Log, statsEngine *stats.Engine, st storage.Store, cfg config.Config, styles config.Styles) Model {
	columns := []table.Column{
		{Title: "", Width: 3},
		{Title: "Task", Width: 34},
		{Title: "Quadrant", Width: 18},
		{Title: "Priority", Width: 8},
		{Title: "Due", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(styles.BorderColor)).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(styles.SelectedTextColor)).
		Background(lipgloss.Color(styles.SelectedBgColor)).
		Bold(true)
	t.SetStyles(s)

	// Initialize text inputs
	titleInput := textinput.New()
	titleInput.Placeholder = "Title"
	titleInput.Focus()
	titleInput.Width = 40

	descInput := textinput.New()
	descInput.Placeholder = "Description (optional)"
	descInput.Width = 40

	dueDateInput := textinput.New()
	dueDateInput.Placeholder = "Due Date (YYYY-MM-DD, optional)"
	dueDateInput.Width = 40
	dueDateInput.SetValue(time.Now().Format("2006-01-02"))

	estimateInput := textinput.New()
	estimateInput.Placeholder = "Estimated minutes (optional)"
	estimateInput.Width = 40

	m := Model{
		table:         t,
		progressBar:   progress.New(progress.WithDefaultGradient()),
		tasks:         tasks,
		engine:        engine,
		sessions:      sessions,
		stats:         statsEngine,
		store:         st,
		settings:      cfg.Settings,
		styles:        styles,
		keyMap:        keymaps.BuildKeyMap(cfg.KeyMap),
		view:          TasksView,
		mode:          NormalMode,
		statusFilter:  AllTasksFilter,
		titleInput:    titleInput,
		descInput:     descInput,
		dueDateInput:  dueDateInput,
		estimateInput: estimateInput,
		activeInput:   fieldTitle,
		priorityIdx:   1, // medium
		categoryIdx:   3, // neither
	}

	// Load initial data
	m.refreshTasks()
	m.refreshStats()

	return m
}

// Init initializes the model (required by Bubble Tea Model interface)
func (m Model) Init() tea.Cmd {
	return nil
}

// resetInputs clears all form inputs
func (m *Model) resetInputs() {
	m.titleInput.Reset()
	m.descInput.Reset()
	m.dueDateInput.SetValue(time.Now().Format("2006-01-02"))
	m.estimateInput.Reset()
	m.priorityIdx = 1
	m.categoryIdx = 3

	m.activeInput = fieldTitle
	m.titleInput.Focus()
	m.descInput.Blur()
	m.dueDateInput.Blur()
	m.estimateInput.Blur()
}

func (m *Model) focusNextInput() {
	m.activeInput = (m.activeInput + 1) % fieldCount
	m.syncInputFocus()
}

func (m *Model) focusPreviousInput() {
	m.activeInput = (m.activeInput + fieldCount - 1) % fieldCount
	m.syncInputFocus()
}

func (m *Model) syncInputFocus() {
	inputs := []*textinput.Model{&m.titleInput, &m.descInput, &m.dueDateInput, &m.estimateInput}
	for i, in := range inputs {
		if i == m.activeInput {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}
