package models

// Weekdays lists the static day labels in display order. WeeklyProgress rows
// carry no calendar linkage; there is exactly one row per label.
var Weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

type WeeklyProgress struct {
	Day              string  `gorm:"primaryKey" json:"day"`
	LessonsCompleted int     `json:"lessonsCompleted"`
	HoursStudied     float64 `json:"hoursStudied"`
}
