package services

import (
	"go.uber.org/zap"

	"lms/models"
	"lms/store"
)

// OverviewService computes the read-only aggregates the dashboard and
// progress screens render. Everything here is re-derived per call from the
// store; nothing is cached, so a value read after a write is never stale.
type OverviewService struct {
	store *store.Store
	log   *zap.SugaredLogger
}

func NewOverviewService(st *store.Store, log *zap.SugaredLogger) *OverviewService {
	return &OverviewService{store: st, log: log}
}

type DashboardSummary struct {
	User           models.User
	Courses        []models.Course
	UnreadMessages int
}

// DashboardSummary collects the learner, all courses with their derived
// progress fields, and the unread message count in one read.
func (ov *OverviewService) DashboardSummary() (*DashboardSummary, error) {
	user, err := ov.store.FirstUser()
	if err != nil {
		return nil, err
	}
	courses, err := ov.store.ListCourses("")
	if err != nil {
		return nil, err
	}
	unread, err := ov.store.ListMessages(true)
	if err != nil {
		return nil, err
	}
	return &DashboardSummary{
		User:           *user,
		Courses:        courses,
		UnreadMessages: len(unread),
	}, nil
}

// AssignmentStatusCounts tallies assignments per workflow state. Every
// known state is present in the result, zero or not.
func (ov *OverviewService) AssignmentStatusCounts() (map[models.AssignmentStatus]int, error) {
	assignments, err := ov.store.ListAssignments("")
	if err != nil {
		return nil, err
	}
	counts := map[models.AssignmentStatus]int{
		models.StatusPending:   0,
		models.StatusSubmitted: 0,
		models.StatusReviewed:  0,
		models.StatusApproved:  0,
		models.StatusRejected:  0,
	}
	for _, a := range assignments {
		counts[a.Status]++
	}
	return counts, nil
}

type WeeklyTotals struct {
	LessonsCompleted int
	HoursStudied     float64
}

// WeeklyTotals sums the seven weekday rows into the headline numbers of
// the progress screen.
func (ov *OverviewService) WeeklyTotals() (WeeklyTotals, error) {
	rows, err := ov.store.ListWeeklyProgress()
	if err != nil {
		return WeeklyTotals{}, err
	}
	var totals WeeklyTotals
	for _, r := range rows {
		totals.LessonsCompleted += r.LessonsCompleted
		totals.HoursStudied += r.HoursStudied
	}
	return totals, nil
}
