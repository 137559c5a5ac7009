package services

import (
	"math"

	"go.uber.org/zap"

	"lms/store"
)

// ProgressService keeps the two derived course fields consistent with the
// facts they are computed from: Progress follows task completion,
// CompletedLessons follows lesson-level completed flags. They are distinct
// signals and are recomputed independently.
type ProgressService struct {
	store *store.Store
	log   *zap.SugaredLogger
}

func NewProgressService(st *store.Store, log *zap.SugaredLogger) *ProgressService {
	return &ProgressService{store: st, log: log}
}

// ToggleTask flips one task's completed flag, persists the owning lesson as
// a whole record and re-derives the owning course's progress percentage.
// Toggling twice restores the original state.
func (ps *ProgressService) ToggleTask(taskID string) error {
	return ps.store.Transaction(func(tx *store.Store) error {
		task, err := tx.GetTask(taskID)
		if err != nil {
			return err
		}
		lesson, err := tx.GetLesson(task.LessonID)
		if err != nil {
			return err
		}
		for i := range lesson.Tasks {
			if lesson.Tasks[i].ID == taskID {
				lesson.Tasks[i].Completed = !lesson.Tasks[i].Completed
			}
		}
		if err := tx.PutLesson(lesson); err != nil {
			return err
		}
		if err := recomputeTaskProgress(tx, lesson.CourseID); err != nil {
			return err
		}
		ps.log.Debugw("task toggled", "task", taskID, "lesson", lesson.ID)
		return nil
	})
}

// CompleteLesson marks a lesson watched regardless of its task checklist
// and re-derives the owning course's completed-lesson count. Idempotent.
func (ps *ProgressService) CompleteLesson(lessonID string) error {
	return ps.store.Transaction(func(tx *store.Store) error {
		lesson, err := tx.GetLesson(lessonID)
		if err != nil {
			return err
		}
		lesson.Completed = true
		if err := tx.PutLesson(lesson); err != nil {
			return err
		}
		if err := recomputeCompletedLessons(tx, lesson.CourseID); err != nil {
			return err
		}
		ps.log.Debugw("lesson completed", "lesson", lessonID)
		return nil
	})
}

// RecomputeCourse re-derives both progress fields from the stored lesson
// and task facts. It runs the same math as the mutation paths, so a course
// left stale by an interrupted update heals on the next call.
func (ps *ProgressService) RecomputeCourse(courseID string) error {
	return ps.store.Transaction(func(tx *store.Store) error {
		if err := recomputeTaskProgress(tx, courseID); err != nil {
			return err
		}
		return recomputeCompletedLessons(tx, courseID)
	})
}

func recomputeTaskProgress(tx *store.Store, courseID string) error {
	lessons, err := tx.ListLessons(courseID)
	if err != nil {
		return err
	}
	var done, total int
	for _, l := range lessons {
		for _, t := range l.Tasks {
			total++
			if t.Completed {
				done++
			}
		}
	}
	course, err := tx.GetCourse(courseID)
	if err != nil {
		return err
	}
	course.Progress = percent(done, total)
	return tx.PutCourse(course)
}

func recomputeCompletedLessons(tx *store.Store, courseID string) error {
	lessons, err := tx.ListLessons(courseID)
	if err != nil {
		return err
	}
	completed := 0
	for _, l := range lessons {
		if l.Completed {
			completed++
		}
	}
	course, err := tx.GetCourse(courseID)
	if err != nil {
		return err
	}
	course.CompletedLessons = completed
	return tx.PutCourse(course)
}

// percent rounds to the nearest whole percentage. A course with no tasks at
// all reports zero instead of dividing by it.
func percent(done, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(done) / float64(total)))
}
