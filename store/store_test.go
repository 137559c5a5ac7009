package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lms/config"
	"lms/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	cfg := &config.Config{DataDir: t.TempDir(), DBFile: "lms.db"}
	s, err := Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// drain reads everything already buffered on a notification channel.
func drain(ch <-chan Table) []Table {
	var got []Table
	for {
		select {
		case t := <-ch:
			got = append(got, t)
		default:
			return got
		}
	}
}

func TestGetMissingRecordIsNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetCourse("nope")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.GetLesson("nope")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.GetNote("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPutCourseIsUpsert(t *testing.T) {
	s := newTestStore(t)

	course := &models.Course{ID: "c1", Title: "Go", Category: models.CategoryBackend}
	require.NoError(t, s.PutCourse(course))

	course.Title = "Go, revised"
	require.NoError(t, s.PutCourse(course))

	got, err := s.GetCourse("c1")
	require.NoError(t, err)
	assert.Equal(t, "Go, revised", got.Title)

	all, err := s.ListCourses("")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestListCoursesByCategory(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.BulkPutCourses([]models.Course{
		{ID: "c1", Category: models.CategoryFrontend},
		{ID: "c2", Category: models.CategoryBackend},
		{ID: "c3", Category: models.CategoryFrontend},
	}))

	frontend, err := s.ListCourses(models.CategoryFrontend)
	require.NoError(t, err)
	assert.Len(t, frontend, 2)

	all, err := s.ListCourses("")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestListLessonsOrderedByCourseSequence(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.BulkPutLessons([]models.Lesson{
		{ID: "l2", CourseID: "c1", Order: 2},
		{ID: "l3", CourseID: "c2", Order: 1},
		{ID: "l1", CourseID: "c1", Order: 1},
	}))

	lessons, err := s.ListLessons("c1")
	require.NoError(t, err)
	require.Len(t, lessons, 2)
	assert.Equal(t, "l1", lessons[0].ID)
	assert.Equal(t, "l2", lessons[1].ID)

	all, err := s.ListLessons("")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestPutLessonReplacesTaskSet(t *testing.T) {
	s := newTestStore(t)

	lesson := &models.Lesson{
		ID: "l1", CourseID: "c1", Order: 1,
		Tasks: []models.Task{
			{ID: "t1", LessonID: "l1", Title: "first"},
			{ID: "t2", LessonID: "l1", Title: "second"},
		},
	}
	require.NoError(t, s.PutLesson(lesson))

	// Whole-record replace: dropping a task from the slice deletes its row.
	lesson.Tasks = lesson.Tasks[:1]
	lesson.Tasks[0].Completed = true
	require.NoError(t, s.PutLesson(lesson))

	got, err := s.GetLesson("l1")
	require.NoError(t, err)
	require.Len(t, got.Tasks, 1)
	assert.Equal(t, "t1", got.Tasks[0].ID)
	assert.True(t, got.Tasks[0].Completed)

	_, err = s.GetTask("t2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListMessagesNewestFirstAndUnreadFilter(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.BulkPutMessages([]models.MentorMessage{
		{ID: "m1", Date: "2024-12-26", Read: true},
		{ID: "m2", Date: "2024-12-27", Read: false},
		{ID: "m3", Date: "2024-12-25", Read: false},
	}))

	all, err := s.ListMessages(false)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"m2", "m1", "m3"}, []string{all[0].ID, all[1].ID, all[2].ID})

	unread, err := s.ListMessages(true)
	require.NoError(t, err)
	assert.Len(t, unread, 2)
}

func TestListAssignmentsByStatus(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.BulkPutAssignments([]models.Assignment{
		{ID: "a1", Status: models.StatusPending, DueDate: "2024-12-30"},
		{ID: "a2", Status: models.StatusApproved, DueDate: "2024-12-25"},
	}))

	pending, err := s.ListAssignments(models.StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "a1", pending[0].ID)

	all, err := s.ListAssignments("")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a2", all[0].ID) // earliest due date first
}

func TestListWeeklyProgressInWeekdayOrder(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.BulkPutWeeklyProgress([]models.WeeklyProgress{
		{Day: "Sun", LessonsCompleted: 1},
		{Day: "Mon", LessonsCompleted: 2},
		{Day: "Fri", LessonsCompleted: 3},
	}))

	rows, err := s.ListWeeklyProgress()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Mon", rows[0].Day)
	assert.Equal(t, "Fri", rows[1].Day)
	assert.Equal(t, "Sun", rows[2].Day)
}

func TestSubscribePublishesPerTable(t *testing.T) {
	s := newTestStore(t)

	courses, cancelCourses := s.Subscribe(TableCourses)
	defer cancelCourses()
	everything, cancelAll := s.Subscribe()
	defer cancelAll()

	require.NoError(t, s.PutCourse(&models.Course{ID: "c1"}))
	require.NoError(t, s.PutMessage(&models.MentorMessage{ID: "m1"}))

	assert.Equal(t, []Table{TableCourses}, drain(courses))
	assert.Equal(t, []Table{TableCourses, TableMessages}, drain(everything))
}

func TestTransactionBuffersNotificationsUntilCommit(t *testing.T) {
	s := newTestStore(t)

	ch, cancel := s.Subscribe(TableCourses, TableLessons)
	defer cancel()

	err := s.Transaction(func(tx *Store) error {
		if err := tx.PutCourse(&models.Course{ID: "c1"}); err != nil {
			return err
		}
		if err := tx.PutLesson(&models.Lesson{ID: "l1", CourseID: "c1"}); err != nil {
			return err
		}
		assert.Empty(t, drain(ch), "nothing may be published before commit")
		return nil
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []Table{TableCourses, TableLessons}, drain(ch))
}

func TestFailedTransactionPublishesNothing(t *testing.T) {
	s := newTestStore(t)

	ch, cancel := s.Subscribe()
	defer cancel()

	boom := errors.New("boom")
	err := s.Transaction(func(tx *Store) error {
		if err := tx.PutCourse(&models.Course{ID: "c1"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, drain(ch))

	_, err = s.GetCourse("c1")
	assert.ErrorIs(t, err, ErrNotFound, "rolled-back write must not be visible")
}

func TestClearAllEmptiesEveryTable(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.PutUser(&models.User{ID: "1"}))
	require.NoError(t, s.PutCourse(&models.Course{ID: "c1"}))
	require.NoError(t, s.PutLesson(&models.Lesson{
		ID: "l1", CourseID: "c1",
		Tasks: []models.Task{{ID: "t1", LessonID: "l1"}},
	}))
	require.NoError(t, s.PutNote(&models.LessonNote{LessonID: "l1", Content: "hi"}))

	require.NoError(t, s.ClearAll())

	courses, err := s.ListCourses("")
	require.NoError(t, err)
	assert.Empty(t, courses)

	lessons, err := s.ListLessons("")
	require.NoError(t, err)
	assert.Empty(t, lessons)

	_, err = s.FirstUser()
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.GetNote("l1")
	assert.ErrorIs(t, err, ErrNotFound)
}
