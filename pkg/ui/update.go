package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"podo/pkg/config"
	"podo/pkg/task"
	"podo/pkg/timer"
	"podo/pkg/utils"
)

// tickMsg carries the tick sequence it belongs to. A stale sequence
// means the countdown was paused, reset or switched since the tick was
// scheduled, so the message is dropped and the chain ends there.
type tickMsg int

func tickCmd(seq int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg(seq)
	})
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tickMsg:
		if int(msg) != m.tickSeq || !m.engine.Running() {
			break
		}
		if err := m.engine.Tick(); err != nil {
			m.err = err
		}
		if m.engine.Running() {
			cmds = append(cmds, tickCmd(m.tickSeq))
		} else {
			// Countdown finished: the session is logged and the
			// engine waits in the next mode.
			utils.Log("Session complete, next mode: %s", m.engine.Mode())
			m.refreshStats()
		}

	case tea.KeyMsg:
		switch m.mode {
		case NormalMode:
			switch {
			case key.Matches(msg, m.keyMap.ShowHelp):
				m.mode = HelpViewMode

			case key.Matches(msg, m.keyMap.QuitApp):
				return m, tea.Quit

			case key.Matches(msg, m.keyMap.TasksView):
				m.view = TasksView
				m.refreshTasks()

			case key.Matches(msg, m.keyMap.TimerView):
				m.view = TimerView

			case key.Matches(msg, m.keyMap.StatsView):
				m.view = StatsView
				m.refreshStats()

			// Tasks view
			case m.view == TasksView && key.Matches(msg, m.keyMap.ToggleStatus):
				if t, ok := m.selectedTask(); ok {
					if _, err := m.tasks.ToggleComplete(t.ID); err != nil {
						m.err = err
					} else {
						m.refreshTasks()
						m.refreshStats()
					}
				}

			case m.view == TasksView && key.Matches(msg, m.keyMap.AddTask):
				m.mode = AddMode
				m.resetInputs()

			case m.view == TasksView && key.Matches(msg, m.keyMap.EditTask):
				if t, ok := m.selectedTask(); ok {
					m.mode = EditMode
					m.editingItem = &t
					m.resetInputs()
					m.populateForm(t)
				}

			case m.view == TasksView && key.Matches(msg, m.keyMap.DeleteTask):
				if t, ok := m.selectedTask(); ok {
					m.mode = DeleteConfirmMode
					m.editingItem = &t
				}

			case m.view == TasksView && key.Matches(msg, m.keyMap.FocusTask):
				if t, ok := m.selectedTask(); ok {
					m.engine.SetActiveTask(t.ID)
					m.view = TimerView
				}

			case m.view == TasksView && key.Matches(msg, m.keyMap.ShowDoneTasks):
				if m.statusFilter == DoneTasksFilter {
					m.statusFilter = AllTasksFilter
				} else {
					m.statusFilter = DoneTasksFilter
				}
				m.refreshTasks()

			case m.view == TasksView && key.Matches(msg, m.keyMap.ShowUndoneTasks):
				if m.statusFilter == UndoneTasksFilter {
					m.statusFilter = AllTasksFilter
				} else {
					m.statusFilter = UndoneTasksFilter
				}
				m.refreshTasks()

			case m.view == TasksView && key.Matches(msg, m.keyMap.ShowAllTasks):
				m.statusFilter = AllTasksFilter
				m.refreshTasks()

			// Timer view
			case m.view == TimerView && key.Matches(msg, m.keyMap.StartPauseTimer):
				if m.engine.Running() {
					m.engine.Pause()
					m.tickSeq++
				} else {
					m.engine.Start()
					m.tickSeq++
					cmds = append(cmds, tickCmd(m.tickSeq))
				}

			case m.view == TimerView && key.Matches(msg, m.keyMap.ResetTimer):
				m.engine.Reset()
				m.tickSeq++

			case m.view == TimerView && key.Matches(msg, m.keyMap.FocusMode):
				m.engine.SwitchMode(timer.ModeFocus)
				m.tickSeq++

			case m.view == TimerView && key.Matches(msg, m.keyMap.ShortBreakMode):
				m.engine.SwitchMode(timer.ModeShortBreak)
				m.tickSeq++

			case m.view == TimerView && key.Matches(msg, m.keyMap.LongBreakMode):
				m.engine.SwitchMode(timer.ModeLongBreak)
				m.tickSeq++

			case m.view == TimerView && key.Matches(msg, m.keyMap.ToggleSound):
				m.settings.SoundEnabled = !m.settings.SoundEnabled
				if err := config.SaveSettings(m.store, m.settings); err != nil {
					m.err = err
				}
			}

		case AddMode, EditMode:
			switch msg.String() {
			case "esc":
				m.mode = NormalMode
				m.resetInputs()
				m.editingItem = nil

			case "tab", "down":
				m.focusNextInput()

			case "shift+tab", "up":
				m.focusPreviousInput()

			case "left":
				switch m.activeInput {
				case fieldPriority:
					m.priorityIdx = (m.priorityIdx + len(task.Priorities()) - 1) % len(task.Priorities())
				case fieldCategory:
					m.categoryIdx = (m.categoryIdx + len(task.Categories()) - 1) % len(task.Categories())
				}

			case "right":
				switch m.activeInput {
				case fieldPriority:
					m.priorityIdx = (m.priorityIdx + 1) % len(task.Priorities())
				case fieldCategory:
					m.categoryIdx = (m.categoryIdx + 1) % len(task.Categories())
				}

			case "enter":
				if m.activeInput == fieldCategory { // Submit on enter from the last field
					m.submitForm()
				} else {
					m.focusNextInput()
				}
			}

			// Handle input updates
			switch m.activeInput {
			case fieldTitle:
				m.titleInput, cmd = m.titleInput.Update(msg)
				cmds = append(cmds, cmd)
			case fieldDescription:
				m.descInput, cmd = m.descInput.Update(msg)
				cmds = append(cmds, cmd)
			case fieldDueDate:
				m.dueDateInput, cmd = m.dueDateInput.Update(msg)
				cmds = append(cmds, cmd)
			case fieldEstimate:
				m.estimateInput, cmd = m.estimateInput.Update(msg)
				cmds = append(cmds, cmd)
			}

		case DeleteConfirmMode:
			switch msg.String() {
			case "y", "Y":
				if m.editingItem != nil {
					utils.Log("Deleting task %s", m.editingItem.ID)
					if err := m.tasks.Delete(m.editingItem.ID); err != nil {
						m.err = err
					} else {
						if m.engine.ActiveTask() == m.editingItem.ID {
							m.engine.ClearActiveTask()
						}
						m.refreshTasks()
						m.refreshStats()
					}
				}
				m.mode = NormalMode
				m.editingItem = nil

			case "n", "N", "esc":
				m.mode = NormalMode
				m.editingItem = nil
			}

		case HelpViewMode:
			switch msg.String() {
			case "esc", "ctrl+b":
				m.mode = NormalMode
			}
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetWidth(msg.Width - 4)
		m.table.SetHeight(msg.Height - 8)
		m.progressBar.Width = msg.Width - 12
	}

	// Only update table in the tasks list
	if m.mode == NormalMode && m.view == TasksView {
		m.table, cmd = m.table.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// selectedTask returns the task under the cursor.
func (m *Model) selectedTask() (task.Task, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.visible) {
		return task.Task{}, false
	}
	return m.visible[idx], true
}

func (m *Model) populateForm(t task.Task) {
	m.titleInput.SetValue(t.Title)
	m.descInput.SetValue(t.Description)
	if t.DueDate != nil {
		m.dueDateInput.SetValue(t.DueDate.Format("2006-01-02"))
	} else {
		m.dueDateInput.SetValue("")
	}
	if t.EstimatedMinutes > 0 {
		m.estimateInput.SetValue(strconv.Itoa(t.EstimatedMinutes))
	}
	for i, p := range task.Priorities() {
		if p == t.Priority {
			m.priorityIdx = i
		}
	}
	for i, c := range task.Categories() {
		if c == t.Category {
			m.categoryIdx = i
		}
	}
}

// submitForm validates the form and applies the add or edit.
func (m *Model) submitForm() {
	dueDate, estimate, err := m.parseFormExtras()
	if err != nil {
		m.err = err
		return
	}

	priority := task.Priorities()[m.priorityIdx]
	category := task.Categories()[m.categoryIdx]

	switch m.mode {
	case AddMode:
		_, err = m.tasks.Create(task.Insert{
			Title:            m.titleInput.Value(),
			Description:      m.descInput.Value(),
			Priority:         priority,
			Category:         category,
			DueDate:          dueDate,
			EstimatedMinutes: estimate,
		})

	case EditMode:
		if m.editingItem == nil {
			return
		}
		title := m.titleInput.Value()
		desc := m.descInput.Value()
		patch := task.Patch{
			Title:       &title,
			Description: &desc,
			Priority:    &priority,
			Category:    &category,
		}
		if dueDate != nil {
			patch.DueDate = dueDate
		} else {
			patch.ClearDueDate = true
		}
		if estimate > 0 {
			patch.EstimatedMinutes = &estimate
		}
		_, err = m.tasks.Update(m.editingItem.ID, patch)
	}

	if err != nil {
		// Leave the form open so the input can be fixed
		m.err = err
		return
	}

	m.err = nil
	m.mode = NormalMode
	m.editingItem = nil
	m.resetInputs()
	m.refreshTasks()
	m.refreshStats()
}

func (m *Model) parseFormExtras() (*time.Time, int, error) {
	var dueDate *time.Time
	if v := strings.TrimSpace(m.dueDateInput.Value()); v != "" {
		parsed, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			return nil, 0, fmt.Errorf("due date must be YYYY-MM-DD: %w", err)
		}
		dueDate = &parsed
	}

	estimate := 0
	if v := strings.TrimSpace(m.estimateInput.Value()); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, 0, fmt.Errorf("estimated minutes must be a number: %w", err)
		}
		estimate = parsed
	}

	return dueDate, estimate, nil
}
