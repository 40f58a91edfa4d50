package model

import (
	"time"

	"gorm.io/datatypes"
)

// SubmissionAnswer is one graded answer inside a QuizSubmission.
// SelectedAnswer is nil when the question was left unanswered.
type SubmissionAnswer struct {
	QuestionIndex  int         `json:"questionIndex"`
	SelectedAnswer interface{} `json:"selectedAnswer"`
	IsCorrect      bool        `json:"isCorrect"`
	Points         int         `json:"points"`
}

// QuizSubmission is the immutable grading record for assignment-embedded
// quizzes. Every attempt creates a new row and all attempts are retained;
// the best attempt is the one with the highest total score, most recent on
// a tie.
type QuizSubmission struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	AssignmentID uint `gorm:"index;not null" json:"assignmentId"`
	StudentID    uint `gorm:"index;not null" json:"studentId"`

	Answers    datatypes.JSONSlice[SubmissionAnswer] `json:"answers"`
	TotalScore int                                   `json:"totalScore"`
	MaxScore   int                                   `json:"maxScore"`
	Percentage int                                   `json:"percentage"`

	CompletedAt time.Time `json:"completedAt"`
	TimeSpent   int       `json:"timeSpent"`
}

func (QuizSubmission) TableName() string {
	return "quiz_submissions"
}
