package model

import (
	"time"

	"gorm.io/datatypes"
)

type ProgressStatus string

const (
	NotStarted ProgressStatus = "not-started"
	InProgress ProgressStatus = "in-progress"
	Completed  ProgressStatus = "completed"
	Paused     ProgressStatus = "paused"
)

// ExerciseResult records one answered exercise, keyed by the exercise's
// position in the parent module or quiz at the time progress began.
type ExerciseResult struct {
	ExerciseIndex int         `json:"exerciseIndex"`
	UserAnswer    interface{} `json:"userAnswer"`
	CorrectAnswer interface{} `json:"correctAnswer"`
	IsCorrect     bool        `json:"isCorrect"`
	Points        int         `json:"points"`
	TimeSpent     int         `json:"timeSpent"`
}

// Progress is the per-student tracking record against a module or a quiz
// (exactly one of ModuleID/QuizID is set). A row is created on first
// interaction and mutated on every submission; progress rows are an audit
// trail and are never deleted, so there is no soft-delete column.
//
// The composite unique indexes back the atomic upsert: two concurrent
// submissions for the same (student, module) pair can never create two rows.
type Progress struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	StudentID uint  `gorm:"not null;uniqueIndex:idx_student_module;uniqueIndex:idx_student_quiz" json:"studentId"`
	ModuleID  *uint `gorm:"uniqueIndex:idx_student_module" json:"moduleId,omitempty"`
	QuizID    *uint `gorm:"uniqueIndex:idx_student_quiz" json:"quizId,omitempty"`

	Status      ProgressStatus `gorm:"type:enum('not-started','in-progress','completed','paused');default:'not-started'" json:"status"`
	CurrentStep int            `gorm:"default:0" json:"currentStep"`
	// TotalSteps is frozen at creation from the content length; later edits
	// to the module do not change it.
	TotalSteps int `gorm:"not null" json:"totalSteps"`
	Score      int `gorm:"default:0" json:"score"`
	TimeSpent  int `gorm:"default:0" json:"timeSpent"`
	Attempts   int `gorm:"default:0" json:"attempts"`

	ExerciseResults datatypes.JSONSlice[ExerciseResult] `json:"exerciseResults"`

	StartDate      time.Time  `json:"startDate"`
	LastActivity   time.Time  `json:"lastActivity"`
	CompletionDate *time.Time `json:"completionDate,omitempty"`
}

func (Progress) TableName() string {
	return "progress"
}

// CompletionPercentage derives the step completion ratio; 0 when the parent
// content was empty.
func (p *Progress) CompletionPercentage() int {
	if p.TotalSteps == 0 {
		return 0
	}
	return int(float64(p.CurrentStep)/float64(p.TotalSteps)*100 + 0.5)
}

// ExerciseAccuracy is the point-weighted share of correct exercise results,
// 0-100. It is deliberately a separate figure from Score: Score reflects the
// last explicit scoring event, accuracy is derived from the result list.
func (p *Progress) ExerciseAccuracy() int {
	earned, possible := 0, 0
	for _, r := range p.ExerciseResults {
		possible += r.Points
		if r.IsCorrect {
			earned += r.Points
		}
	}
	if possible == 0 {
		return 0
	}
	return int(float64(earned)/float64(possible)*100 + 0.5)
}

// ProgressView is a Progress together with its derived fields, as returned
// by the API.
type ProgressView struct {
	Progress
	CompletionPercentage int `json:"completionPercentage"`
	AverageScore         int `json:"averageScore"`
	ExerciseAccuracy     int `json:"exerciseAccuracy"`
}

func (p *Progress) View() ProgressView {
	return ProgressView{
		Progress:             *p,
		CompletionPercentage: p.CompletionPercentage(),
		// Canonical definition: the stored score verbatim.
		AverageScore:     p.Score,
		ExerciseAccuracy: p.ExerciseAccuracy(),
	}
}
