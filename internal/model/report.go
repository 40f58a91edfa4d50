package model

// StudentSummary aggregates every progress row belonging to one student.
type StudentSummary struct {
	StudentID        uint    `json:"studentId"`
	TotalModules     int     `json:"totalModules"`
	TotalQuizzes     int     `json:"totalQuizzes"`
	CompletedModules int     `json:"completedModules"`
	CompletedQuizzes int     `json:"completedQuizzes"`
	AverageScore     float64 `json:"averageScore"`
	TotalTimeSpent   int     `json:"totalTimeSpent"`
}

// ContentSummary aggregates progress against one module or quiz.
type ContentSummary struct {
	ContentID      uint    `json:"contentId"`
	StudentCount   int     `json:"studentCount"`
	CompletedCount int     `json:"completedCount"`
	AverageScore   float64 `json:"averageScore"`
	AverageTime    float64 `json:"averageTime"`
}

// RosterSummary aggregates progress across all students of one teacher.
type RosterSummary struct {
	TeacherID      uint    `json:"teacherId"`
	StudentCount   int     `json:"studentCount"`
	CompletedCount int     `json:"completedCount"`
	AverageScore   float64 `json:"averageScore"`
	AverageTime    float64 `json:"averageTime"`
}
