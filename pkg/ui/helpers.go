package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"

	"podo/pkg/task"
	"podo/pkg/utils"
)

// refreshTasks rebuilds the table rows, grouped by Eisenhower quadrant
// in display order and filtered by completion status.
func (m *Model) refreshTasks() {
	m.visible = m.visible[:0]

	for _, c := range task.Categories() {
		for _, t := range m.tasks.ByCategory(c) {
			switch m.statusFilter {
			case DoneTasksFilter:
				if t.Status != task.StatusCompleted {
					continue
				}
			case UndoneTasksFilter:
				if t.Status == task.StatusCompleted {
					continue
				}
			}
			m.visible = append(m.visible, t)
		}
	}

	rows := make([]table.Row, 0, len(m.visible))
	for _, t := range m.visible {
		due := ""
		if t.DueDate != nil {
			due = t.DueDate.Format("2006-01-02")
		}
		rows = append(rows, table.Row{
			statusGlyph(t.Status),
			t.Title,
			t.Category.Label(),
			string(t.Priority),
			due,
		})
	}

	m.table.SetRows(rows)

	if cursor := m.table.Cursor(); cursor >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}

	utils.Log("Refreshed task table with %d rows", len(rows))
}

// refreshStats recomputes the streak and totals from the current
// history.
func (m *Model) refreshStats() {
	all := m.tasks.All()

	if err := m.stats.UpdateStreak(all); err != nil {
		m.err = err
		return
	}
	if err := m.stats.RefreshTotals(all, m.sessions.All()); err != nil {
		m.err = err
	}
}

func statusGlyph(s task.Status) string {
	switch s {
	case task.StatusCompleted:
		return "[x]"
	case task.StatusInProgress:
		return "[~]"
	default:
		return "[ ]"
	}
}

// chartBar renders a horizontal bar scaled to a 0-100 rate.
func chartBar(rate, width int) string {
	filled := rate * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
