package task

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"podo/pkg/storage"
	"podo/pkg/utils"
)

// StorageKey is the logical key the task collection is stored under.
const StorageKey = "productivity-tasks"

// Store owns the task collection. Tasks are kept in insertion order
// and the whole collection is written back to storage on every
// mutation.
type Store struct {
	storage storage.Store
	tasks   []Task
	now     func() time.Time
}

// NewStore loads the task collection from storage.
func NewStore(st storage.Store) (*Store, error) {
	s := &Store{storage: st, now: time.Now}

	data, ok, err := st.Read(StorageKey)
	if err != nil {
		return nil, err
	}
	if ok {
		if err := json.Unmarshal(data, &s.tasks); err != nil {
			return nil, err
		}
	}

	utils.Log("Loaded %d tasks from storage", len(s.tasks))

	return s, nil
}

// Create validates the input and appends a new pending task.
func (s *Store) Create(in Insert) (Task, error) {
	if strings.TrimSpace(in.Title) == "" {
		return Task{}, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if in.EstimatedMinutes != 0 && in.EstimatedMinutes < 1 {
		return Task{}, &ValidationError{Field: "estimatedMinutes", Reason: "must be at least 1"}
	}

	t := Task{
		ID:               uuid.NewString(),
		Title:            strings.TrimSpace(in.Title),
		Description:      in.Description,
		Priority:         in.Priority,
		Category:         in.Category,
		Status:           StatusPending,
		DueDate:          in.DueDate,
		CreatedAt:        s.now(),
		EstimatedMinutes: in.EstimatedMinutes,
	}

	next := append(append([]Task{}, s.tasks...), t)
	if err := s.persist(next); err != nil {
		return Task{}, err
	}
	s.tasks = next

	utils.Log("Created task %s", t.ID)

	return t, nil
}

// Update merges the provided fields into the existing task.
func (s *Store) Update(id string, patch Patch) (Task, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Task{}, &NotFoundError{ID: id}
	}

	t := s.tasks[idx]

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return Task{}, &ValidationError{Field: "title", Reason: "must not be empty"}
		}
		t.Title = title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.Category != nil {
		t.Category = *patch.Category
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.ClearDueDate {
		t.DueDate = nil
	} else if patch.DueDate != nil {
		t.DueDate = patch.DueDate
	}
	if patch.EstimatedMinutes != nil {
		if *patch.EstimatedMinutes < 1 {
			return Task{}, &ValidationError{Field: "estimatedMinutes", Reason: "must be at least 1"}
		}
		t.EstimatedMinutes = *patch.EstimatedMinutes
	}

	next := append([]Task{}, s.tasks...)
	next[idx] = t
	if err := s.persist(next); err != nil {
		return Task{}, err
	}
	s.tasks = next

	return t, nil
}

// Delete removes the task. Deleting an unknown id succeeds silently.
func (s *Store) Delete(id string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}

	next := append(append([]Task{}, s.tasks[:idx]...), s.tasks[idx+1:]...)
	if err := s.persist(next); err != nil {
		return err
	}
	s.tasks = next

	utils.Log("Deleted task %s", id)

	return nil
}

// ToggleComplete flips a task between completed and pending. Any
// non-completed status counts as "not completed", so an in-progress
// task toggles to completed. CompletedAt is set on the completing
// transition and cleared on the way back.
func (s *Store) ToggleComplete(id string) (Task, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Task{}, &NotFoundError{ID: id}
	}

	t := s.tasks[idx]
	if t.Status != StatusCompleted {
		now := s.now()
		t.Status = StatusCompleted
		t.CompletedAt = &now
	} else {
		t.Status = StatusPending
		t.CompletedAt = nil
	}

	next := append([]Task{}, s.tasks...)
	next[idx] = t
	if err := s.persist(next); err != nil {
		return Task{}, err
	}
	s.tasks = next

	return t, nil
}

// Get returns the task with the given id.
func (s *Store) Get(id string) (Task, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Task{}, &NotFoundError{ID: id}
	}
	return s.tasks[idx], nil
}

// All returns every task in insertion order.
func (s *Store) All() []Task {
	return append([]Task{}, s.tasks...)
}

// ByCategory returns the tasks in the given quadrant, in insertion order.
func (s *Store) ByCategory(c Category) []Task {
	var out []Task
	for _, t := range s.tasks {
		if t.Category == c {
			out = append(out, t)
		}
	}
	return out
}

// Today returns tasks due on the current local calendar day. Tasks
// without a due date always count as today's tasks so they stay
// visible.
func (s *Store) Today() []Task {
	today := s.now()
	var out []Task
	for _, t := range s.tasks {
		if t.DueDate == nil || sameDay(*t.DueDate, today) {
			out = append(out, t)
		}
	}
	return out
}

// Completed returns all completed tasks.
func (s *Store) Completed() []Task {
	var out []Task
	for _, t := range s.tasks {
		if t.Status == StatusCompleted {
			out = append(out, t)
		}
	}
	return out
}

// DailyCompletionRate returns the percentage of today's tasks that are
// completed, rounded to the nearest integer. Zero tasks today yields 0.
func (s *Store) DailyCompletionRate() int {
	today := s.Today()
	if len(today) == 0 {
		return 0
	}

	completed := 0
	for _, t := range today {
		if t.Status == StatusCompleted {
			completed++
		}
	}

	return int(math.Round(100 * float64(completed) / float64(len(today))))
}

func (s *Store) indexOf(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) persist(tasks []Task) error {
	data, err := json.Marshal(tasks)
	if err != nil {
		return err
	}
	return s.storage.Write(StorageKey, data)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
