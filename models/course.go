package models

// CourseCategory is the closed set of course categories.
type CourseCategory string

const (
	CategoryFrontend CourseCategory = "frontend"
	CategoryBackend  CourseCategory = "backend"
	CategoryDesign   CourseCategory = "design"
	CategoryData     CourseCategory = "data"
	CategoryMobile   CourseCategory = "mobile"
)

// Valid reports whether c names a known category.
func (c CourseCategory) Valid() bool {
	switch c {
	case CategoryFrontend, CategoryBackend, CategoryDesign, CategoryData, CategoryMobile:
		return true
	}
	return false
}

type Course struct {
	ID          string         `gorm:"primaryKey" json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Category    CourseCategory `gorm:"index" json:"category"`
	// Progress is derived from task completion across the course's lessons.
	// CompletedLessons is derived from lesson-level completed flags. The two
	// track different source facts and may disagree; both must be correct
	// after every mutation.
	Progress         int    `json:"progress"`
	TotalLessons     int    `json:"totalLessons"`
	CompletedLessons int    `json:"completedLessons"`
	Thumbnail        string `json:"thumbnail,omitempty"`
	Instructor       string `json:"instructor"`
}

type Lesson struct {
	ID          string `gorm:"primaryKey" json:"id"`
	CourseID    string `gorm:"index" json:"courseId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	VideoURL    string `json:"videoUrl,omitempty"`
	Duration    string `json:"duration"`
	Order       int    `gorm:"index" json:"order"`
	Completed   bool   `json:"completed"`
	Tasks       []Task `gorm:"foreignKey:LessonID" json:"tasks"`
}

// Task belongs to exactly one lesson and is never referenced outside it.
type Task struct {
	ID          string `gorm:"primaryKey" json:"id"`
	LessonID    string `gorm:"index" json:"lessonId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}
