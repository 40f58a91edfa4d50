package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lexilearn_backend/internal/model"
	"lexilearn_backend/internal/repository"
	"lexilearn_backend/internal/util"
	"lexilearn_backend/pkg/monitoring"

	"gorm.io/gorm"
)

type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
	ModuleRepo   *repository.ModuleRepository
	QuizRepo     *repository.QuizRepository
	UserRepo     *repository.UserRepository
	Reports      *ReportService
}

func NewProgressService(
	progressRepo *repository.ProgressRepository,
	moduleRepo *repository.ModuleRepository,
	quizRepo *repository.QuizRepository,
	userRepo *repository.UserRepository,
	reports *ReportService,
) *ProgressService {
	return &ProgressService{
		ProgressRepo: progressRepo,
		ModuleRepo:   moduleRepo,
		QuizRepo:     quizRepo,
		UserRepo:     userRepo,
		Reports:      reports,
	}
}

// ProgressUpdate carries one recordProgress call. CurrentStep is the fully
// advanced step, not a delta: last write wins.
type ProgressUpdate struct {
	CurrentStep    int
	Score          *int
	TimeSpent      *int
	ExerciseResult *model.ExerciseResult
	Paused         bool
	Reset          bool
}

// ApplyProgressUpdate mutates a progress row per one update. Factored out of
// the storage path so the transition rules are testable on their own.
//
// Rules, evaluated in order:
//   - reset overwrites timeSpent, clears exerciseResults and counts a new
//     attempt; otherwise timeSpent accumulates;
//   - an exercise result replaces an existing entry with the same index,
//     else appends;
//   - currentStep is clamped to [0, totalSteps];
//   - completion: currentStep >= totalSteps (totalSteps > 0) -> completed,
//     stamping completionDate once; completed never downgrades;
//   - not-started with a positive step -> in-progress.
func ApplyProgressUpdate(p *model.Progress, upd ProgressUpdate, now time.Time) error {
	if upd.CurrentStep < 0 {
		return fmt.Errorf("%w: currentStep must not be negative", util.ErrValidation)
	}
	if upd.Score != nil && (*upd.Score < 0 || *upd.Score > 100) {
		return fmt.Errorf("%w: score must be between 0 and 100", util.ErrValidation)
	}

	if upd.Reset {
		spent := 0
		if upd.TimeSpent != nil {
			spent = *upd.TimeSpent
		}
		p.TimeSpent = spent
		p.ExerciseResults = nil
		p.Attempts++
	} else if upd.TimeSpent != nil {
		p.TimeSpent += *upd.TimeSpent
	}

	if upd.Score != nil {
		p.Score = *upd.Score
	}

	if upd.ExerciseResult != nil {
		upsertExerciseResult(p, *upd.ExerciseResult)
	}

	step := upd.CurrentStep
	if step > p.TotalSteps {
		step = p.TotalSteps
	}
	p.CurrentStep = step

	if p.Status != model.Completed {
		switch {
		case p.TotalSteps > 0 && p.CurrentStep >= p.TotalSteps:
			p.Status = model.Completed
			p.CompletionDate = &now
		case upd.Paused:
			p.Status = model.Paused
		case p.Status == model.NotStarted && p.CurrentStep > 0:
			p.Status = model.InProgress
		}
	}

	p.LastActivity = now
	return nil
}

func upsertExerciseResult(p *model.Progress, r model.ExerciseResult) {
	for i := range p.ExerciseResults {
		if p.ExerciseResults[i].ExerciseIndex == r.ExerciseIndex {
			p.ExerciseResults[i] = r
			return
		}
	}
	p.ExerciseResults = append(p.ExerciseResults, r)
}

// RecordProgress upserts the progress row for (student, module|quiz) and
// applies one update atomically. Exactly one of moduleID/quizID must be set.
// The write is gated on the same visibility rules as the read paths, so a
// student cannot create progress against content they cannot see, and the
// denial is indistinguishable from the content not existing.
func (s *ProgressService) RecordProgress(ctx context.Context, studentID uint, moduleID, quizID *uint, upd ProgressUpdate) (*model.ProgressView, error) {
	if (moduleID == nil) == (quizID == nil) {
		return nil, fmt.Errorf("%w: exactly one of moduleId and quizId is required", util.ErrValidation)
	}

	student, err := s.UserRepo.FindByID(studentID)
	if err != nil {
		return nil, util.ErrNotFound
	}

	var totalSteps int
	if moduleID != nil {
		module, err := s.ModuleRepo.FindByID(*moduleID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.ErrNotFound
			}
			return nil, err
		}
		if !CanRecordProgress(student, module, nil) {
			return nil, util.ErrNotFound
		}
		totalSteps = len(module.Content)
	} else {
		quiz, err := s.QuizRepo.FindByID(*quizID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.ErrNotFound
			}
			return nil, err
		}
		if !CanRecordProgress(student, nil, quiz) {
			return nil, util.ErrNotFound
		}
		totalSteps = len(quiz.Questions)
	}

	now := time.Now()
	p, err := s.ProgressRepo.Upsert(studentID, moduleID, quizID, totalSteps, func(p *model.Progress) error {
		return ApplyProgressUpdate(p, upd, now)
	})
	if err != nil {
		return nil, err
	}

	monitoring.ProgressWrites.Inc()
	s.invalidateReports(ctx, studentID, moduleID, quizID)

	view := p.View()
	return &view, nil
}

func (s *ProgressService) invalidateReports(ctx context.Context, studentID uint, moduleID, quizID *uint) {
	if s.Reports == nil {
		return
	}
	var teacherID uint
	if student, err := s.UserRepo.FindByID(studentID); err == nil && student.TeacherID != nil {
		teacherID = *student.TeacherID
	}
	s.Reports.Invalidate(ctx, studentID, teacherID, moduleID, quizID)
}

// UpdateProgress applies one update to an existing progress row addressed by
// id. Only the owning student may write; the row's module/quiz binding is
// immutable.
func (s *ProgressService) UpdateProgress(ctx context.Context, claims *util.Claims, id uint, upd ProgressUpdate) (*model.ProgressView, error) {
	p, err := s.ProgressRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}
	if p.StudentID != claims.UserID {
		return nil, util.ErrNotFound
	}
	return s.RecordProgress(ctx, p.StudentID, p.ModuleID, p.QuizID, upd)
}

// GetProgress fetches one progress row, visible to the owning student, their
// teacher, or an admin; everyone else sees not-found.
func (s *ProgressService) GetProgress(claims *util.Claims, id uint) (*model.ProgressView, error) {
	p, err := s.ProgressRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}

	if err := s.authorizeProgress(claims, p); err != nil {
		return nil, err
	}

	view := p.View()
	return &view, nil
}

// AuthorizeStudentAccess checks that the principal may read the student's
// records, hiding existence on denial.
func (s *ProgressService) AuthorizeStudentAccess(claims *util.Claims, studentID uint) error {
	student, err := s.UserRepo.FindByID(studentID)
	if err != nil || !CanAccessStudent(claims, student) {
		return util.ErrNotFound
	}
	return nil
}

// ListForStudent returns all progress rows for a student the principal may
// see.
func (s *ProgressService) ListForStudent(claims *util.Claims, studentID uint) ([]model.ProgressView, error) {
	if err := s.AuthorizeStudentAccess(claims, studentID); err != nil {
		return nil, err
	}

	rows, err := s.ProgressRepo.ListByStudent(studentID)
	if err != nil {
		return nil, err
	}
	views := make([]model.ProgressView, len(rows))
	for i := range rows {
		views[i] = rows[i].View()
	}
	return views, nil
}

func (s *ProgressService) authorizeProgress(claims *util.Claims, p *model.Progress) error {
	if claims.UserID == p.StudentID || claims.Role == model.Admin {
		return nil
	}
	if claims.Role == model.Teacher {
		student, err := s.UserRepo.FindByID(p.StudentID)
		if err == nil && CanAccessStudent(claims, student) {
			return nil
		}
	}
	return util.ErrNotFound
}
