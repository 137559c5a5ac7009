package models

type MentorMessage struct {
	ID           string `gorm:"primaryKey" json:"id"`
	MentorName   string `json:"mentorName"`
	MentorAvatar string `json:"mentorAvatar,omitempty"`
	Message      string `json:"message"`
	Date         string `gorm:"index" json:"date"` // ISO date, sortable lexicographically
	Read         bool   `gorm:"index" json:"read"`
}
