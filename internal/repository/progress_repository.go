package repository

import (
	"lexilearn_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// Upsert applies a mutation to the progress row for (studentID, module|quiz),
// creating the row first if absent. The insert ignores a duplicate-key
// conflict and the subsequent read takes a row lock, so two concurrent
// submissions for the same pair end up serialized against exactly one row
// instead of racing a find-then-create pair.
func (r *ProgressRepository) Upsert(studentID uint, moduleID, quizID *uint, totalSteps int, apply func(*model.Progress) error) (*model.Progress, error) {
	var result model.Progress

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		base := &model.Progress{
			StudentID:    studentID,
			ModuleID:     moduleID,
			QuizID:       quizID,
			Status:       model.NotStarted,
			TotalSteps:   totalSteps,
			StartDate:    now,
			LastActivity: now,
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(base).Error; err != nil {
			return err
		}

		q := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("student_id = ?", studentID)
		if moduleID != nil {
			q = q.Where("module_id = ?", *moduleID)
		} else {
			q = q.Where("quiz_id = ?", *quizID)
		}
		if err := q.First(&result).Error; err != nil {
			return err
		}

		if err := apply(&result); err != nil {
			return err
		}

		return tx.Save(&result).Error
	})

	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *ProgressRepository) FindByID(id uint) (*model.Progress, error) {
	var p model.Progress
	err := r.DB.First(&p, id).Error
	return &p, err
}

func (r *ProgressRepository) ListByStudent(studentID uint) ([]model.Progress, error) {
	var rows []model.Progress
	err := r.DB.Where("student_id = ?", studentID).Order("last_activity DESC").Find(&rows).Error
	return rows, err
}

// SummarizeStudent computes the on-demand aggregate over all progress rows
// for one student. O(matching rows) per call; callers cache.
func (r *ProgressRepository) SummarizeStudent(studentID uint) (*model.StudentSummary, error) {
	type agg struct {
		TotalModules     int
		TotalQuizzes     int
		CompletedModules int
		CompletedQuizzes int
		AverageScore     float64
		TotalTimeSpent   int
	}
	var a agg
	err := r.DB.Model(&model.Progress{}).
		Select(`
			COUNT(CASE WHEN module_id IS NOT NULL THEN 1 END) AS total_modules,
			COUNT(CASE WHEN quiz_id IS NOT NULL THEN 1 END) AS total_quizzes,
			COUNT(CASE WHEN module_id IS NOT NULL AND status = 'completed' THEN 1 END) AS completed_modules,
			COUNT(CASE WHEN quiz_id IS NOT NULL AND status = 'completed' THEN 1 END) AS completed_quizzes,
			COALESCE(AVG(score), 0) AS average_score,
			COALESCE(SUM(time_spent), 0) AS total_time_spent`).
		Where("student_id = ?", studentID).
		Scan(&a).Error
	if err != nil {
		return nil, err
	}

	return &model.StudentSummary{
		StudentID:        studentID,
		TotalModules:     a.TotalModules,
		TotalQuizzes:     a.TotalQuizzes,
		CompletedModules: a.CompletedModules,
		CompletedQuizzes: a.CompletedQuizzes,
		AverageScore:     a.AverageScore,
		TotalTimeSpent:   a.TotalTimeSpent,
	}, nil
}

func (r *ProgressRepository) SummarizeModule(moduleID uint) (*model.ContentSummary, error) {
	return r.summarizeContent("module_id = ?", moduleID)
}

func (r *ProgressRepository) SummarizeQuiz(quizID uint) (*model.ContentSummary, error) {
	return r.summarizeContent("quiz_id = ?", quizID)
}

func (r *ProgressRepository) summarizeContent(cond string, id uint) (*model.ContentSummary, error) {
	type agg struct {
		StudentCount   int
		CompletedCount int
		AverageScore   float64
		AverageTime    float64
	}
	var a agg
	err := r.DB.Model(&model.Progress{}).
		Select(`
			COUNT(DISTINCT student_id) AS student_count,
			COUNT(CASE WHEN status = 'completed' THEN 1 END) AS completed_count,
			COALESCE(AVG(score), 0) AS average_score,
			COALESCE(AVG(time_spent), 0) AS average_time`).
		Where(cond, id).
		Scan(&a).Error
	if err != nil {
		return nil, err
	}

	return &model.ContentSummary{
		ContentID:      id,
		StudentCount:   a.StudentCount,
		CompletedCount: a.CompletedCount,
		AverageScore:   a.AverageScore,
		AverageTime:    a.AverageTime,
	}, nil
}

// SummarizeRoster aggregates over every progress row belonging to the
// teacher's students, resolved transitively via users.teacher_id.
func (r *ProgressRepository) SummarizeRoster(teacherID uint) (*model.RosterSummary, error) {
	type agg struct {
		StudentCount   int
		CompletedCount int
		AverageScore   float64
		AverageTime    float64
	}
	var a agg
	err := r.DB.Model(&model.Progress{}).
		Joins("JOIN users ON users.id = progress.student_id").
		Select(`
			COUNT(DISTINCT progress.student_id) AS student_count,
			COUNT(CASE WHEN progress.status = 'completed' THEN 1 END) AS completed_count,
			COALESCE(AVG(progress.score), 0) AS average_score,
			COALESCE(AVG(progress.time_spent), 0) AS average_time`).
		Where("users.teacher_id = ?", teacherID).
		Scan(&a).Error
	if err != nil {
		return nil, err
	}

	return &model.RosterSummary{
		TeacherID:      teacherID,
		StudentCount:   a.StudentCount,
		CompletedCount: a.CompletedCount,
		AverageScore:   a.AverageScore,
		AverageTime:    a.AverageTime,
	}, nil
}
