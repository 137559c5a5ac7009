package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lms/models"
	"lms/store"
)

func TestMarkReadIsIdempotent(t *testing.T) {
	st, _ := newSeededStore(t)
	ms := NewMessageService(st, testLog)

	unread, err := ms.UnreadCount()
	require.NoError(t, err)
	assert.Equal(t, 1, unread)

	require.NoError(t, ms.MarkRead("1"))
	require.NoError(t, ms.MarkRead("1"))

	unread, err = ms.UnreadCount()
	require.NoError(t, err)
	assert.Equal(t, 0, unread)
}

func TestMarkReadUnknownMessage(t *testing.T) {
	st, _ := newSeededStore(t)
	ms := NewMessageService(st, testLog)

	err := ms.MarkRead("missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDashboardSummary(t *testing.T) {
	st, _ := newSeededStore(t)
	ov := NewOverviewService(st, testLog)

	summary, err := ov.DashboardSummary()
	require.NoError(t, err)
	assert.Equal(t, "Sardor Raximov", summary.User.Name)
	assert.Len(t, summary.Courses, 5)
	assert.Equal(t, 1, summary.UnreadMessages)
}

func TestDashboardSummaryReflectsWrites(t *testing.T) {
	st, _ := newSeededStore(t)
	ov := NewOverviewService(st, testLog)
	ms := NewMessageService(st, testLog)

	require.NoError(t, ms.MarkRead("1"))

	summary, err := ov.DashboardSummary()
	require.NoError(t, err)
	assert.Equal(t, 0, summary.UnreadMessages, "a read issued after a write sees the new value")
}

func TestAssignmentStatusCounts(t *testing.T) {
	st, _ := newSeededStore(t)
	ov := NewOverviewService(st, testLog)

	counts, err := ov.AssignmentStatusCounts()
	require.NoError(t, err)
	assert.Equal(t, 1, counts[models.StatusPending])
	assert.Equal(t, 1, counts[models.StatusSubmitted])
	assert.Equal(t, 1, counts[models.StatusApproved])
	assert.Equal(t, 0, counts[models.StatusReviewed])
	assert.Equal(t, 0, counts[models.StatusRejected])
}

func TestWeeklyTotals(t *testing.T) {
	st, _ := newSeededStore(t)
	ov := NewOverviewService(st, testLog)

	totals, err := ov.WeeklyTotals()
	require.NoError(t, err)
	assert.Equal(t, 12, totals.LessonsCompleted)
	assert.InDelta(t, 18.0, totals.HoursStudied, 0.001)
}
