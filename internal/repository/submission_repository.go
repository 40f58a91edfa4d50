package repository

import (
	"lexilearn_backend/internal/model"

	"gorm.io/gorm"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func (r *SubmissionRepository) Create(s *model.QuizSubmission) error {
	return r.DB.Create(s).Error
}

func (r *SubmissionRepository) ListByAssignmentAndStudent(assignmentID, studentID uint) ([]model.QuizSubmission, error) {
	var rows []model.QuizSubmission
	err := r.DB.
		Where("assignment_id = ? AND student_id = ?", assignmentID, studentID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

// FindBest returns the attempt with the highest total score, most recent on
// a tie, or gorm.ErrRecordNotFound when the student has not submitted.
func (r *SubmissionRepository) FindBest(assignmentID, studentID uint) (*model.QuizSubmission, error) {
	var s model.QuizSubmission
	err := r.DB.
		Where("assignment_id = ? AND student_id = ?", assignmentID, studentID).
		Order("total_score DESC, completed_at DESC").
		First(&s).Error
	return &s, err
}

func (r *SubmissionRepository) CountAttempts(assignmentID, studentID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.QuizSubmission{}).
		Where("assignment_id = ? AND student_id = ?", assignmentID, studentID).
		Count(&count).Error
	return count, err
}
