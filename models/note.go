package models

import "time"

// LessonNote is the per-lesson scratchpad. At most one note exists per
// lesson; saving overwrites without versioning.
type LessonNote struct {
	LessonID    string    `gorm:"primaryKey" json:"lessonId"`
	Content     string    `json:"content"`
	LastUpdated time.Time `json:"lastUpdated"`
}
