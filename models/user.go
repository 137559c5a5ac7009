package models

// User is the single learner this device belongs to. Streak and TotalPoints
// are written by point-awarding events outside this core; the Session Gate
// rewrites Email on login.
type User struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Avatar      string `json:"avatar,omitempty"`
	Streak      int    `json:"streak"`
	TotalPoints int    `json:"totalPoints"`
}
