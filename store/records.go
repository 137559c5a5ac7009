package store

import (
	"errors"
	"fmt"
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lms/models"
)

func notFound(kind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
}

func wrapFirst(err error, kind, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(kind, id)
	}
	return err
}

// upsert is an insert-or-replace by primary key.
func (s *Store) upsert(record any) error {
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(record).Error
}

// Users

func (s *Store) GetUser(id string) (*models.User, error) {
	var u models.User
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		return nil, wrapFirst(err, "user", id)
	}
	return &u, nil
}

// FirstUser returns the single user record the device belongs to.
func (s *Store) FirstUser() (*models.User, error) {
	var u models.User
	if err := s.db.Order("id").First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("users table is empty: %w", ErrNotFound)
		}
		return nil, err
	}
	return &u, nil
}

func (s *Store) PutUser(u *models.User) error {
	if err := s.upsert(u); err != nil {
		return err
	}
	s.changed(TableUsers)
	return nil
}

// Courses

func (s *Store) GetCourse(id string) (*models.Course, error) {
	var c models.Course
	if err := s.db.First(&c, "id = ?", id).Error; err != nil {
		return nil, wrapFirst(err, "course", id)
	}
	return &c, nil
}

// ListCourses returns all courses, or only those in the given category when
// it is non-empty.
func (s *Store) ListCourses(category models.CourseCategory) ([]models.Course, error) {
	q := s.db.Order("id")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var courses []models.Course
	if err := q.Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *Store) PutCourse(c *models.Course) error {
	if err := s.upsert(c); err != nil {
		return err
	}
	s.changed(TableCourses)
	return nil
}

func (s *Store) BulkPutCourses(courses []models.Course) error {
	if len(courses) == 0 {
		return nil
	}
	if err := s.upsert(&courses); err != nil {
		return err
	}
	s.changed(TableCourses)
	return nil
}

// Lessons

func (s *Store) GetLesson(id string) (*models.Lesson, error) {
	var l models.Lesson
	err := s.db.Preload("Tasks", taskOrder).First(&l, "id = ?", id).Error
	if err != nil {
		return nil, wrapFirst(err, "lesson", id)
	}
	return &l, nil
}

// ListLessons returns lessons with their tasks, ordered by the in-course
// sequence. A non-empty courseID restricts the result to that course.
func (s *Store) ListLessons(courseID string) ([]models.Lesson, error) {
	q := s.db.Preload("Tasks", taskOrder).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}})
	if courseID != "" {
		q = q.Where("course_id = ?", courseID)
	}
	var lessons []models.Lesson
	if err := q.Find(&lessons).Error; err != nil {
		return nil, err
	}
	return lessons, nil
}

func taskOrder(db *gorm.DB) *gorm.DB { return db.Order("id") }

// PutLesson replaces the whole lesson record including its task list: tasks
// missing from l.Tasks are deleted, the rest upserted.
func (s *Store) PutLesson(l *models.Lesson) error {
	return s.Transaction(func(tx *Store) error {
		if err := tx.db.Omit("Tasks").Clauses(clause.OnConflict{UpdateAll: true}).Create(l).Error; err != nil {
			return err
		}
		keep := make([]string, 0, len(l.Tasks))
		for i := range l.Tasks {
			l.Tasks[i].LessonID = l.ID
			keep = append(keep, l.Tasks[i].ID)
		}
		stale := tx.db.Where("lesson_id = ?", l.ID)
		if len(keep) > 0 {
			stale = stale.Where("id NOT IN ?", keep)
		}
		if err := stale.Delete(&models.Task{}).Error; err != nil {
			return err
		}
		if len(l.Tasks) > 0 {
			if err := tx.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&l.Tasks).Error; err != nil {
				return err
			}
		}
		tx.changed(TableLessons)
		return nil
	})
}

func (s *Store) BulkPutLessons(lessons []models.Lesson) error {
	return s.Transaction(func(tx *Store) error {
		for i := range lessons {
			if err := tx.PutLesson(&lessons[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) GetTask(id string) (*models.Task, error) {
	var t models.Task
	if err := s.db.First(&t, "id = ?", id).Error; err != nil {
		return nil, wrapFirst(err, "task", id)
	}
	return &t, nil
}

// Assignments

func (s *Store) GetAssignment(id string) (*models.Assignment, error) {
	var a models.Assignment
	if err := s.db.First(&a, "id = ?", id).Error; err != nil {
		return nil, wrapFirst(err, "assignment", id)
	}
	return &a, nil
}

// ListAssignments returns assignments ordered by due date, optionally
// restricted to one workflow state.
func (s *Store) ListAssignments(status models.AssignmentStatus) ([]models.Assignment, error) {
	q := s.db.Order("due_date, id")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var assignments []models.Assignment
	if err := q.Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (s *Store) PutAssignment(a *models.Assignment) error {
	if err := s.upsert(a); err != nil {
		return err
	}
	s.changed(TableAssignments)
	return nil
}

func (s *Store) BulkPutAssignments(assignments []models.Assignment) error {
	if len(assignments) == 0 {
		return nil
	}
	if err := s.upsert(&assignments); err != nil {
		return err
	}
	s.changed(TableAssignments)
	return nil
}

// Messages

func (s *Store) GetMessage(id string) (*models.MentorMessage, error) {
	var m models.MentorMessage
	if err := s.db.First(&m, "id = ?", id).Error; err != nil {
		return nil, wrapFirst(err, "message", id)
	}
	return &m, nil
}

// ListMessages returns mentor messages newest-first, optionally only the
// unread ones.
func (s *Store) ListMessages(unreadOnly bool) ([]models.MentorMessage, error) {
	q := s.db.Order("date DESC, id DESC")
	if unreadOnly {
		q = q.Where("read = ?", false)
	}
	var messages []models.MentorMessage
	if err := q.Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *Store) PutMessage(m *models.MentorMessage) error {
	if err := s.upsert(m); err != nil {
		return err
	}
	s.changed(TableMessages)
	return nil
}

func (s *Store) BulkPutMessages(messages []models.MentorMessage) error {
	if len(messages) == 0 {
		return nil
	}
	if err := s.upsert(&messages); err != nil {
		return err
	}
	s.changed(TableMessages)
	return nil
}

// Weekly progress

// ListWeeklyProgress returns the seven weekday rows in Mon..Sun order.
func (s *Store) ListWeeklyProgress() ([]models.WeeklyProgress, error) {
	var rows []models.WeeklyProgress
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, err
	}
	rank := make(map[string]int, len(models.Weekdays))
	for i, d := range models.Weekdays {
		rank[d] = i
	}
	sort.Slice(rows, func(i, j int) bool { return rank[rows[i].Day] < rank[rows[j].Day] })
	return rows, nil
}

func (s *Store) PutWeeklyProgress(w *models.WeeklyProgress) error {
	if err := s.upsert(w); err != nil {
		return err
	}
	s.changed(TableWeeklyProgress)
	return nil
}

func (s *Store) BulkPutWeeklyProgress(rows []models.WeeklyProgress) error {
	if len(rows) == 0 {
		return nil
	}
	if err := s.upsert(&rows); err != nil {
		return err
	}
	s.changed(TableWeeklyProgress)
	return nil
}

// Notes

func (s *Store) GetNote(lessonID string) (*models.LessonNote, error) {
	var n models.LessonNote
	if err := s.db.First(&n, "lesson_id = ?", lessonID).Error; err != nil {
		return nil, wrapFirst(err, "note for lesson", lessonID)
	}
	return &n, nil
}

func (s *Store) PutNote(n *models.LessonNote) error {
	if err := s.upsert(n); err != nil {
		return err
	}
	s.changed(TableNotes)
	return nil
}
