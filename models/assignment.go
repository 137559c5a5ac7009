package models

// AssignmentStatus is the closed set of workflow states:
// pending -> submitted -> reviewed -> approved | rejected,
// with rejected -> submitted allowed for resubmission.
type AssignmentStatus string

const (
	StatusPending   AssignmentStatus = "pending"
	StatusSubmitted AssignmentStatus = "submitted"
	StatusReviewed  AssignmentStatus = "reviewed"
	StatusApproved  AssignmentStatus = "approved"
	StatusRejected  AssignmentStatus = "rejected"
)

// Valid reports whether s names a known workflow state.
func (s AssignmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusSubmitted, StatusReviewed, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type Assignment struct {
	ID          string           `gorm:"primaryKey" json:"id"`
	LessonID    string           `gorm:"index" json:"lessonId"`
	CourseID    string           `gorm:"index" json:"courseId"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	DueDate     string           `json:"dueDate"`
	Status      AssignmentStatus `gorm:"index" json:"status"`
	Submission  string           `json:"submission,omitempty"`
	// Feedback and Grade are authored externally and only meaningful once
	// the status has reached reviewed, approved or rejected.
	Feedback string `json:"feedback,omitempty"`
	Grade    *int   `json:"grade,omitempty"`
}
