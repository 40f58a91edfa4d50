package model

import "gorm.io/datatypes"

type AssignmentStatus string

const (
	AssignmentDraft     AssignmentStatus = "draft"
	AssignmentActive    AssignmentStatus = "active"
	AssignmentCompleted AssignmentStatus = "completed"
)

// AssignmentItem is one ordered element of an assignment. Items with
// Type "quiz" carry an embedded graded question in QuizData.
type AssignmentItem struct {
	Type     string    `json:"type"`
	Title    string    `json:"title,omitempty"`
	Body     string    `json:"body,omitempty"`
	URL      string    `json:"url,omitempty"`
	QuizData *Question `json:"quizData,omitempty"`
}

type Assignment struct {
	BaseModel
	Title      string                              `gorm:"size:255;not null" json:"title"`
	Category   string                              `gorm:"size:50;index" json:"category"`
	GradeLevel string                              `gorm:"size:20;index" json:"gradeLevel"`
	Content    datatypes.JSONSlice[AssignmentItem] `json:"content"`
	Photos     datatypes.JSONSlice[MediaFile]      `json:"photos,omitempty"`
	Videos     datatypes.JSONSlice[MediaFile]      `json:"videos,omitempty"`
	Status     AssignmentStatus                    `gorm:"type:enum('draft','active','completed');default:'draft'" json:"status"`
	AssignedTo IDList                              `json:"assignedTo"`
	CreatedBy  uint                                `gorm:"index;not null" json:"createdBy"`
}

func (Assignment) TableName() string {
	return "assignments"
}

// QuizQuestions extracts the embedded graded questions, in content order.
func (a *Assignment) QuizQuestions() []Question {
	var qs []Question
	for _, item := range a.Content {
		if item.Type == "quiz" && item.QuizData != nil {
			qs = append(qs, *item.QuizData)
		}
	}
	return qs
}
