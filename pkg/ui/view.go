package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"podo/pkg/stats"
	"podo/pkg/task"
	"podo/pkg/timer"
)

// View renders the UI based on the current mode
func (m Model) View() string {
	var sb strings.Builder

	switch m.mode {
	case NormalMode:
		sb.WriteString(m.renderTitleBar())
		sb.WriteString("\n\n")

		switch m.view {
		case TasksView:
			sb.WriteString(m.renderTasks())
		case TimerView:
			sb.WriteString(m.renderTimer())
		case StatsView:
			sb.WriteString(m.renderStats())
		}

	case AddMode:
		sb.WriteString(m.renderFormHeader(" Add New Task "))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderForm())

	case EditMode:
		sb.WriteString(m.renderFormHeader(" Edit Task "))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderForm())

	case DeleteConfirmMode:
		sb.WriteString(lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
			Background(lipgloss.Color(m.styles.ErrorColor)).
			Padding(0, 1).
			Render(" Delete Task "))
		sb.WriteString("\n\n")

		if m.editingItem != nil {
			sb.WriteString("Are you sure you want to delete this task?\n\n")
			sb.WriteString(fmt.Sprintf("Title: %s\n", m.editingItem.Title))
			sb.WriteString(fmt.Sprintf("Quadrant: %s\n", m.editingItem.Category.Label()))
			sb.WriteString("\n")
			sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Press Y to confirm, N to cancel"))
		}

	case HelpViewMode:
		sb.WriteString(m.renderHelp())
	}

	if m.err != nil {
		sb.WriteString("\n")
		sb.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.ErrorColor)).
			Render(fmt.Sprintf("Error: %v", m.err)))
		sb.WriteString("\n")
	}

	return sb.String()
}

func (m Model) renderTitleBar() string {
	active := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
		Background(lipgloss.Color(m.styles.AccentColor)).
		Padding(0, 1)
	inactive := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.NormalTextColor)).
		Padding(0, 1)

	tabs := []struct {
		view  View
		label string
	}{
		{TasksView, "Tasks [1]"},
		{TimerView, "Timer [2]"},
		{StatsView, "Stats [3]"},
	}

	parts := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		if tab.view == m.view {
			parts = append(parts, active.Render(tab.label))
		} else {
			parts = append(parts, inactive.Render(tab.label))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderFormHeader(title string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
		Background(lipgloss.Color(m.styles.AccentColor)).
		Padding(0, 1).
		Render(title)
}

func (m Model) renderTasks() string {
	var sb strings.Builder

	sb.WriteString(m.table.View())
	sb.WriteString("\n")

	var filterPart string
	switch m.statusFilter {
	case AllTasksFilter:
		filterPart = "all tasks"
	case DoneTasksFilter:
		filterPart = "completed only"
	case UndoneTasksFilter:
		filterPart = "pending only"
	}

	info := fmt.Sprintf("Showing %s | today: %d%% done", filterPart, m.tasks.DailyCompletionRate())
	sb.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.NormalTextColor)).
		Render(info))
	sb.WriteString("\n")

	return sb.String()
}

func (m Model) renderTimer() string {
	var sb strings.Builder

	modeColor := m.styles.FocusColor
	modeLabel := "Focus"
	switch m.engine.Mode() {
	case timer.ModeShortBreak:
		modeColor = m.styles.BreakColor
		modeLabel = "Short Break"
	case timer.ModeLongBreak:
		modeColor = m.styles.BreakColor
		modeLabel = "Long Break"
	}

	sb.WriteString(lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(modeColor)).
		Render(modeLabel))
	if !m.engine.Running() {
		sb.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.NormalTextColor)).
			Render("  (paused)"))
	}
	sb.WriteString("\n\n")

	sb.WriteString(lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(modeColor)).
		Render("  " + timer.FormatTime(m.engine.TimeLeft())))
	sb.WriteString("\n\n")

	sb.WriteString(m.progressBar.ViewAs(m.engine.Progress()))
	sb.WriteString("\n\n")

	now := time.Now()
	focusToday := stats.SessionsToday(m.sessions.All(), timer.ModeFocus, now)
	sb.WriteString(fmt.Sprintf("Cycle: %d | Focus sessions today: %d\n", m.engine.CycleCount(), focusToday))

	if id := m.engine.ActiveTask(); id != "" {
		if t, err := m.tasks.Get(id); err == nil {
			sb.WriteString(fmt.Sprintf("Working on: %s\n", t.Title))
		}
	}

	sound := "off"
	if m.settings.SoundEnabled {
		sound = "on"
	}
	sb.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.NormalTextColor)).
		Render(fmt.Sprintf("Sound: %s | space start/pause, r reset, f/s/l switch mode", sound)))
	sb.WriteString("\n")

	return sb.String()
}

func (m Model) renderStats() string {
	var sb strings.Builder

	now := time.Now()
	snapshot := m.stats.Stats()
	sessions := m.sessions.All()

	label := lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.NormalTextColor))
	value := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.styles.AccentColor))

	line := func(name string, v string) {
		sb.WriteString(fmt.Sprintf("%s %s\n", label.Render(name+":"), value.Render(v)))
	}

	line("Current streak", fmt.Sprintf("%d days", snapshot.CurrentStreak))
	line("Longest streak", fmt.Sprintf("%d days", snapshot.LongestStreak))
	line("Tasks completed", fmt.Sprintf("%d", snapshot.TotalTasksCompleted))
	line("Total focus time", fmt.Sprintf("%d min", snapshot.TotalFocusMinutes))
	sb.WriteString("\n")
	line("Focus today", fmt.Sprintf("%d min", stats.DailyFocusMinutes(sessions, now)))
	line("Sessions today", fmt.Sprintf("%d", stats.SessionsToday(sessions, timer.ModeFocus, now)))
	line("Completion rate", fmt.Sprintf("%d%%", m.tasks.DailyCompletionRate()))
	sb.WriteString("\n")

	sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Last 7 days"))
	sb.WriteString("\n")

	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.ChartBarColor))
	for _, day := range stats.WeeklyData(m.tasks.All(), now) {
		sb.WriteString(fmt.Sprintf("%s %s %3d%% (%d)\n",
			label.Render(day.Day),
			barStyle.Render(chartBar(day.CompletionRate, 20)),
			day.CompletionRate,
			day.TasksCompleted))
	}

	return sb.String()
}

// renderForm renders the input form for adding/editing tasks
func (m Model) renderForm() string {
	var sb strings.Builder

	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.styles.AccentColor))
	normalStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.NormalTextColor))

	fieldLabel := func(idx int, name string) string {
		if m.activeInput == idx {
			return activeStyle.Render(name)
		}
		return normalStyle.Render(name)
	}

	sb.WriteString(fieldLabel(fieldTitle, "Title:"))
	sb.WriteString("\n")
	sb.WriteString(m.titleInput.View())
	sb.WriteString("\n\n")

	sb.WriteString(fieldLabel(fieldDescription, "Description:"))
	sb.WriteString("\n")
	sb.WriteString(m.descInput.View())
	sb.WriteString("\n\n")

	sb.WriteString(fieldLabel(fieldDueDate, "Due Date:"))
	sb.WriteString("\n")
	sb.WriteString(m.dueDateInput.View())
	sb.WriteString("\n\n")

	sb.WriteString(fieldLabel(fieldEstimate, "Estimated Minutes:"))
	sb.WriteString("\n")
	sb.WriteString(m.estimateInput.View())
	sb.WriteString("\n\n")

	sb.WriteString(fieldLabel(fieldPriority, "Priority:"))
	sb.WriteString("\n")
	sb.WriteString(renderSelector(string(task.Priorities()[m.priorityIdx]), m.activeInput == fieldPriority, activeStyle, normalStyle))
	sb.WriteString("\n\n")

	sb.WriteString(fieldLabel(fieldCategory, "Quadrant:"))
	sb.WriteString("\n")
	sb.WriteString(renderSelector(task.Categories()[m.categoryIdx].Label(), m.activeInput == fieldCategory, activeStyle, normalStyle))
	sb.WriteString("\n\n")

	sb.WriteString(normalStyle.Render("tab/shift+tab move, left/right change value, enter submit, esc cancel"))
	sb.WriteString("\n")

	return sb.String()
}

func renderSelector(value string, active bool, activeStyle, normalStyle lipgloss.Style) string {
	if active {
		return activeStyle.Render(fmt.Sprintf("< %s >", value))
	}
	return normalStyle.Render(fmt.Sprintf("  %s", value))
}

func (m Model) renderHelp() string {
	var sb strings.Builder

	sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Available Commands"))
	sb.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.AccentColor)).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.NormalTextColor))

	addCommand := func(binding key.Binding) {
		sb.WriteString(fmt.Sprintf("%s: %s\n",
			descStyle.Render(binding.Help().Desc),
			keyStyle.Render(binding.Help().Key)))
	}

	addCommand(m.keyMap.QuitApp)
	addCommand(m.keyMap.ShowHelp)
	addCommand(m.keyMap.TasksView)
	addCommand(m.keyMap.TimerView)
	addCommand(m.keyMap.StatsView)
	sb.WriteString("\n")
	addCommand(m.keyMap.ToggleStatus)
	addCommand(m.keyMap.AddTask)
	addCommand(m.keyMap.EditTask)
	addCommand(m.keyMap.DeleteTask)
	addCommand(m.keyMap.FocusTask)
	addCommand(m.keyMap.ShowDoneTasks)
	addCommand(m.keyMap.ShowUndoneTasks)
	addCommand(m.keyMap.ShowAllTasks)
	sb.WriteString("\n")
	addCommand(m.keyMap.StartPauseTimer)
	addCommand(m.keyMap.ResetTimer)
	addCommand(m.keyMap.FocusMode)
	addCommand(m.keyMap.ShortBreakMode)
	addCommand(m.keyMap.LongBreakMode)
	addCommand(m.keyMap.ToggleSound)
	sb.WriteString("\n")
	sb.WriteString(descStyle.Render("Press esc to close this help"))
	sb.WriteString("\n")

	return sb.String()
}
