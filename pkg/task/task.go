// Package task defines the task domain model and the store that owns
// the task collection.
package task

import (
	"fmt"
	"time"
)

type (
	Priority string
	Category string
	Status   string
)

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Category is the Eisenhower quadrant, independent of Priority.
const (
	CategoryUrgentImportant Category = "urgent-important"
	CategoryImportant       Category = "important"
	CategoryUrgent          Category = "urgent"
	CategoryNeither         Category = "neither"
)

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Task represents a single tracked task.
type Task struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	Priority         Priority   `json:"priority"`
	Category         Category   `json:"category"`
	Status           Status     `json:"status"`
	DueDate          *time.Time `json:"dueDate,omitempty"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	EstimatedMinutes int        `json:"estimatedMinutes,omitempty"`
}

// Insert holds the fields a caller provides when creating a task.
// ID, CreatedAt and Status are assigned by the store.
type Insert struct {
	Title            string
	Description      string
	Priority         Priority
	Category         Category
	DueDate          *time.Time
	EstimatedMinutes int
}

// Patch holds a partial update; nil fields are left unchanged.
// Note that setting Status directly does not touch CompletedAt —
// use ToggleComplete to keep the two in sync.
type Patch struct {
	Title            *string
	Description      *string
	Priority         *Priority
	Category         *Category
	Status           *Status
	DueDate          *time.Time
	ClearDueDate     bool
	EstimatedMinutes *int
}

// Categories lists the quadrants in display order.
func Categories() []Category {
	return []Category{
		CategoryUrgentImportant,
		CategoryImportant,
		CategoryUrgent,
		CategoryNeither,
	}
}

// Priorities lists the priorities in ascending order.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}

// ParsePriority maps the string form to a Priority.
func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return Priority(s), nil
	}
	return "", &ValidationError{Field: "priority", Reason: fmt.Sprintf("unknown value %q", s)}
}

// ParseCategory maps the string form to a Category.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryUrgentImportant, CategoryImportant, CategoryUrgent, CategoryNeither:
		return Category(s), nil
	}
	return "", &ValidationError{Field: "category", Reason: fmt.Sprintf("unknown value %q", s)}
}

// Label returns a human-readable quadrant name.
func (c Category) Label() string {
	switch c {
	case CategoryUrgentImportant:
		return "Urgent & Important"
	case CategoryImportant:
		return "Important"
	case CategoryUrgent:
		return "Urgent"
	default:
		return "Neither"
	}
}
