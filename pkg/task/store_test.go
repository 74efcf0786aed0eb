package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podo/pkg/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(storage.NewMemory())
	require.NoError(t, err)
	return s
}

func TestCreateAssignsDefaults(t *testing.T) {
	s := newTestStore(t)

	created, err := s.Create(Insert{
		Title:    "Write report",
		Priority: PriorityHigh,
		Category: CategoryUrgentImportant,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Write report", created.Title)
	assert.Equal(t, StatusPending, created.Status)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Nil(t, created.CompletedAt)
}

func TestCreateRejectsEmptyTitle(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Create(Insert{Title: "   "})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "title", verr.Field)
	assert.Empty(t, s.All())
}

func TestCreateRejectsNegativeEstimate(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Create(Insert{Title: "x", EstimatedMinutes: -5})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "estimatedMinutes", verr.Field)
}

func TestUpdateUnknownID(t *testing.T) {
	s := newTestStore(t)

	title := "new"
	_, err := s.Update("missing", Patch{Title: &title})

	var nferr *NotFoundError
	require.ErrorAs(t, err, &nferr)
	assert.Equal(t, "missing", nferr.ID)
}

func TestUpdateMergesFields(t *testing.T) {
	s := newTestStore(t)
	created, err := s.Create(Insert{Title: "Plan sprint", Priority: PriorityLow, Category: CategoryNeither})
	require.NoError(t, err)

	prio := PriorityUrgent
	desc := "before Friday"
	updated, err := s.Update(created.ID, Patch{Priority: &prio, Description: &desc})

	require.NoError(t, err)
	assert.Equal(t, PriorityUrgent, updated.Priority)
	assert.Equal(t, "before Friday", updated.Description)
	assert.Equal(t, "Plan sprint", updated.Title)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestDeleteMissingIDSucceeds(t *testing.T) {
	s := newTestStore(t)

	assert.NoError(t, s.Delete("never-existed"))
}

func TestDeleteRemovesTask(t *testing.T) {
	s := newTestStore(t)
	created, err := s.Create(Insert{Title: "temp"})
	require.NoError(t, err)

	require.NoError(t, s.Delete(created.ID))

	_, err = s.Get(created.ID)
	var nferr *NotFoundError
	assert.ErrorAs(t, err, &nferr)
}

func TestToggleCompleteSetsAndClearsCompletedAt(t *testing.T) {
	s := newTestStore(t)
	created, err := s.Create(Insert{Title: "toggle me"})
	require.NoError(t, err)

	completed, err := s.ToggleComplete(created.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)

	back, err := s.ToggleComplete(created.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, back.Status)
	assert.Nil(t, back.CompletedAt)
}

func TestToggleCompleteFromInProgress(t *testing.T) {
	s := newTestStore(t)
	created, err := s.Create(Insert{Title: "half done"})
	require.NoError(t, err)

	status := StatusInProgress
	_, err = s.Update(created.ID, Patch{Status: &status})
	require.NoError(t, err)

	toggled, err := s.ToggleComplete(created.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, toggled.Status)
	assert.NotNil(t, toggled.CompletedAt)
}

func TestToggleCompleteUnknownID(t *testing.T) {
	s := newTestStore(t)

	_, err := s.ToggleComplete("nope")

	var nferr *NotFoundError
	assert.ErrorAs(t, err, &nferr)
}

func TestByCategoryKeepsInsertionOrder(t *testing.T) {
	s := newTestStore(t)
	first, _ := s.Create(Insert{Title: "first", Category: CategoryImportant})
	s.Create(Insert{Title: "other quadrant", Category: CategoryNeither})
	second, _ := s.Create(Insert{Title: "second", Category: CategoryImportant})

	got := s.ByCategory(CategoryImportant)

	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, second.ID, got[1].ID)
}

func TestTodayIncludesUndatedTasks(t *testing.T) {
	s := newTestStore(t)
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.Local)
	s.now = func() time.Time { return now }

	today := now.Add(-3 * time.Hour)
	tomorrow := now.AddDate(0, 0, 1)

	s.Create(Insert{Title: "due today", DueDate: &today})
	s.Create(Insert{Title: "due tomorrow", DueDate: &tomorrow})
	s.Create(Insert{Title: "no due date"})

	got := s.Today()

	require.Len(t, got, 2)
	assert.Equal(t, "due today", got[0].Title)
	assert.Equal(t, "no due date", got[1].Title)
}

func TestDailyCompletionRate(t *testing.T) {
	s := newTestStore(t)

	assert.Equal(t, 0, s.DailyCompletionRate())

	var ids []string
	for _, title := range []string{"a", "b", "c", "d"} {
		created, err := s.Create(Insert{Title: title})
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	for _, id := range ids[:2] {
		_, err := s.ToggleComplete(id)
		require.NoError(t, err)
	}

	// 2 of 4 today
	assert.Equal(t, 50, s.DailyCompletionRate())
}

func TestDailyCompletionRateRounds(t *testing.T) {
	s := newTestStore(t)

	var ids []string
	for _, title := range []string{"a", "b", "c"} {
		created, err := s.Create(Insert{Title: title})
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}
	_, err := s.ToggleComplete(ids[0])
	require.NoError(t, err)

	// 1 of 3 -> 33.33 -> 33
	assert.Equal(t, 33, s.DailyCompletionRate())
}

func TestStoreRoundTripsThroughStorage(t *testing.T) {
	mem := storage.NewMemory()

	s, err := NewStore(mem)
	require.NoError(t, err)
	created, err := s.Create(Insert{Title: "persisted", Priority: PriorityMedium, Category: CategoryUrgent})
	require.NoError(t, err)
	_, err = s.ToggleComplete(created.ID)
	require.NoError(t, err)

	reloaded, err := NewStore(mem)
	require.NoError(t, err)

	got, err := reloaded.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, got.Status)
	assert.NotNil(t, got.CompletedAt)
	assert.Equal(t, CategoryUrgent, got.Category)
}
