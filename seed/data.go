package seed

import "lms/models"

// The default dataset the store is populated with on first run. The
// functions return fresh values so callers can never mutate the template.

func defaultUser() models.User {
	return models.User{
		ID:          "1",
		Name:        "Sardor Raximov",
		Email:       "sardor@example.com",
		Streak:      7,
		TotalPoints: 2450,
	}
}

func defaultCourses() []models.Course {
	return []models.Course{
		{
			ID:          "1",
			Title:       "Frontend Development",
			Description: "Master modern frontend technologies including React, TypeScript, and CSS",
			Category:    models.CategoryFrontend,
			Progress:    65, TotalLessons: 3, CompletedLessons: 2,
			Instructor: "Anvar Yusupov",
		},
		{
			ID:          "2",
			Title:       "Backend Development",
			Description: "Build scalable APIs with Node.js, Python, and databases",
			Category:    models.CategoryBackend,
			Progress:    0, TotalLessons: 2, CompletedLessons: 0,
			Instructor: "Bobur Karimov",
		},
		{
			ID:          "3",
			Title:       "UI/UX Design",
			Description: "Create beautiful and user-friendly interfaces with Figma",
			Category:    models.CategoryDesign,
			Progress:    0, TotalLessons: 2, CompletedLessons: 0,
			Instructor: "Malika Azimova",
		},
		{
			ID:          "4",
			Title:       "Data Analytics",
			Description: "Analyze data and create insights with Python and SQL",
			Category:    models.CategoryData,
			Progress:    0, TotalLessons: 2, CompletedLessons: 0,
			Instructor: "Jasur Tursunov",
		},
		{
			ID:          "5",
			Title:       "Mobile App Development",
			Description: "Build cross-platform mobile apps with React Native",
			Category:    models.CategoryMobile,
			Progress:    0, TotalLessons: 2, CompletedLessons: 0,
			Instructor: "Dilshod Normatov",
		},
	}
}

func defaultLessons() []models.Lesson {
	return []models.Lesson{
		{
			ID: "1", CourseID: "1",
			Title:       "React Hooks Deep Dive",
			Description: "Learn advanced React hooks patterns including useState, useEffect, useContext, and custom hooks.",
			VideoURL:    "https://www.youtube.com/embed/LlvBzyy-558",
			Duration:    "45 min", Order: 1, Completed: true,
			Tasks: []models.Task{
				{ID: "t1", LessonID: "1", Title: "Complete the useState exercise", Description: "Create a counter", Completed: true},
				{ID: "t2", LessonID: "1", Title: "Watch the video", Description: "Complete the lesson video", Completed: true},
			},
		},
		{
			ID: "2", CourseID: "1",
			Title:       "State Management with Context",
			Description: "Master React Context API for global state management",
			VideoURL:    "https://www.youtube.com/embed/5LrDIWkK_Bc",
			Duration:    "35 min", Order: 2, Completed: true,
			Tasks: []models.Task{
				{ID: "t3", LessonID: "2", Title: "Create a theme context", Description: "Build dark/light mode toggle", Completed: true},
			},
		},
		{
			ID: "3", CourseID: "1",
			Title:       "Advanced Custom Hooks",
			Description: "Building reusable logic with custom hooks",
			VideoURL:    "https://www.youtube.com/embed/J-g9ZJha8FE",
			Duration:    "40 min", Order: 3, Completed: false,
			Tasks: []models.Task{
				{ID: "t4", LessonID: "3", Title: "Build useFetch hook", Description: "Create a data fetching hook", Completed: false},
			},
		},
		{
			ID: "4", CourseID: "2",
			Title:       "Node.js Architecture",
			Description: "Introduction to Event Loop and Node.js internals",
			VideoURL:    "https://www.youtube.com/embed/TlB_eWDSMt4",
			Duration:    "50 min", Order: 1, Completed: false,
			Tasks: []models.Task{
				{ID: "t5", LessonID: "4", Title: "Set up a basic server", Description: "Use HTTP module", Completed: false},
			},
		},
		{
			ID: "5", CourseID: "3",
			Title:       "Introduction to Figma",
			Description: "Master the basics of Figma workspace and tools",
			VideoURL:    "https://www.youtube.com/embed/Gu1so3qzASo",
			Duration:    "60 min", Order: 1, Completed: false,
			Tasks: []models.Task{
				{ID: "t6", LessonID: "5", Title: "Design a simple card", Description: "Practice using shapes and text", Completed: false},
			},
		},
		{
			ID: "6", CourseID: "3",
			Title:       "Auto Layout Masterclass",
			Description: "Creating responsive designs with Figma Auto Layout",
			VideoURL:    "https://www.youtube.com/embed/Nr8N_0-t2Lw",
			Duration:    "45 min", Order: 2, Completed: false,
			Tasks: []models.Task{
				{ID: "t7", LessonID: "6", Title: "Build a responsive navbar", Description: "Use nested auto layout", Completed: false},
			},
		},
		{
			ID: "7", CourseID: "4",
			Title:       "SQL for Data Science",
			Description: "Introduction to relational databases and basic queries",
			VideoURL:    "https://www.youtube.com/embed/HXV3zeQKqGY",
			Duration:    "55 min", Order: 1, Completed: false,
			Tasks: []models.Task{
				{ID: "t8", LessonID: "7", Title: "Write a JOIN query", Description: "Connect two tables", Completed: false},
			},
		},
		{
			ID: "8", CourseID: "5",
			Title:       "React Native Basics",
			Description: "Set up your environment and build your first mobile app",
			VideoURL:    "https://www.youtube.com/embed/Hf4MJH0jGVw",
			Duration:    "70 min", Order: 1, Completed: false,
			Tasks: []models.Task{
				{ID: "t9", LessonID: "8", Title: "Build a Hello World app", Description: "Use React Native CLI or Expo", Completed: false},
			},
		},
	}
}

func defaultAssignments() []models.Assignment {
	grade := 95
	return []models.Assignment{
		{
			ID: "1", LessonID: "1", CourseID: "1",
			Title:       "Build a Todo App with Hooks",
			Description: "Create a fully functional todo application using React hooks. Include add, delete, and toggle completion features.",
			DueDate:     "2024-12-30",
			Status:      models.StatusPending,
		},
		{
			ID: "2", LessonID: "1", CourseID: "1",
			Title:       "Custom Hook Library",
			Description: "Build 3 custom hooks: useDebounce, useLocalStorage, and useFetch",
			DueDate:     "2024-12-28",
			Status:      models.StatusSubmitted,
			Submission:  "https://github.com/sardor/custom-hooks",
		},
		{
			ID: "3", LessonID: "2", CourseID: "1",
			Title:       "E-commerce Cart Context",
			Description: "Implement a shopping cart using Context API",
			DueDate:     "2024-12-25",
			Status:      models.StatusApproved,
			Submission:  "https://github.com/sardor/cart-context",
			Feedback:    "Excellent work! Clean code and great understanding of Context patterns.",
			Grade:       &grade,
		},
	}
}

func defaultMessages() []models.MentorMessage {
	return []models.MentorMessage{
		{
			ID:         "1",
			MentorName: "Anvar Yusupov",
			Message:    "Great progress on React hooks! Your custom hook implementation shows real understanding. Keep up the excellent work! 🎉",
			Date:       "2024-12-27",
			Read:       false,
		},
		{
			ID:         "2",
			MentorName: "Anvar Yusupov",
			Message:    "Don't forget to submit your Todo App assignment by December 30th. Let me know if you need any help!",
			Date:       "2024-12-26",
			Read:       true,
		},
	}
}

func defaultWeeklyProgress() []models.WeeklyProgress {
	return []models.WeeklyProgress{
		{Day: "Mon", LessonsCompleted: 2, HoursStudied: 3},
		{Day: "Tue", LessonsCompleted: 1, HoursStudied: 2},
		{Day: "Wed", LessonsCompleted: 3, HoursStudied: 4},
		{Day: "Thu", LessonsCompleted: 2, HoursStudied: 2.5},
		{Day: "Fri", LessonsCompleted: 1, HoursStudied: 1.5},
		{Day: "Sat", LessonsCompleted: 2, HoursStudied: 3},
		{Day: "Sun", LessonsCompleted: 1, HoursStudied: 2},
	}
}
