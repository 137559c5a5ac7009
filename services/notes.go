package services

import (
	"time"

	"go.uber.org/zap"

	"lms/models"
	"lms/store"
)

// NotesService is the per-lesson scratchpad. No versioning, no conflict
// detection; the newest save wins.
type NotesService struct {
	store *store.Store
	log   *zap.SugaredLogger
}

func NewNotesService(st *store.Store, log *zap.SugaredLogger) *NotesService {
	return &NotesService{store: st, log: log}
}

// SaveNote upserts the note keyed by lessonID and stamps it with the
// current time. The lesson must exist.
func (ns *NotesService) SaveNote(lessonID, content string) error {
	if _, err := ns.store.GetLesson(lessonID); err != nil {
		return err
	}
	note := &models.LessonNote{
		LessonID:    lessonID,
		Content:     content,
		LastUpdated: time.Now().UTC(),
	}
	if err := ns.store.PutNote(note); err != nil {
		return err
	}
	ns.log.Debugw("note saved", "lesson", lessonID, "bytes", len(content))
	return nil
}

// GetNote returns the lesson's note, or store.ErrNotFound when none was
// ever saved.
func (ns *NotesService) GetNote(lessonID string) (*models.LessonNote, error) {
	return ns.store.GetNote(lessonID)
}
