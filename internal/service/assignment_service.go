package service

import (
	"errors"
	"fmt"
	"time"

	"lexilearn_backend/internal/model"
	"lexilearn_backend/internal/repository"
	"lexilearn_backend/internal/util"
	"lexilearn_backend/pkg/monitoring"

	"gorm.io/gorm"
)

type AssignmentService struct {
	AssignmentRepo *repository.AssignmentRepository
	SubmissionRepo *repository.SubmissionRepository
	UserRepo       *repository.UserRepository
}

func NewAssignmentService(
	assignmentRepo *repository.AssignmentRepository,
	submissionRepo *repository.SubmissionRepository,
	userRepo *repository.UserRepository,
) *AssignmentService {
	return &AssignmentService{
		AssignmentRepo: assignmentRepo,
		SubmissionRepo: submissionRepo,
		UserRepo:       userRepo,
	}
}

type AssignmentRequest struct {
	Title      string                  `json:"title" binding:"required"`
	Category   string                  `json:"category"`
	GradeLevel string                  `json:"gradeLevel"`
	Content    []model.AssignmentItem  `json:"content"`
	Status     model.AssignmentStatus  `json:"status" binding:"omitempty,oneof=draft active completed"`
	AssignedTo []uint                  `json:"assignedTo"`
}

func (s *AssignmentService) Create(claims *util.Claims, req AssignmentRequest) (*model.Assignment, error) {
	a := &model.Assignment{
		Title:      req.Title,
		Category:   req.Category,
		GradeLevel: req.GradeLevel,
		Content:    req.Content,
		Status:     model.AssignmentDraft,
		AssignedTo: req.AssignedTo,
		CreatedBy:  claims.UserID,
	}
	if req.Status != "" {
		a.Status = req.Status
	}
	if err := s.AssignmentRepo.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AssignmentService) List(claims *util.Claims, q repository.ContentQuery) ([]model.Assignment, error) {
	switch claims.Role {
	case model.Student:
		return s.AssignmentRepo.ListForStudent(claims.UserID)
	case model.Teacher:
		q.CreatedBy = claims.UserID
		return s.AssignmentRepo.List(q)
	default:
		return s.AssignmentRepo.List(q)
	}
}

func (s *AssignmentService) Get(claims *util.Claims, id uint) (*model.Assignment, error) {
	a, err := s.AssignmentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}

	if claims.Role == model.Student {
		if !CanSubmitAssignment(a, claims.UserID) {
			return nil, util.ErrNotFound
		}
		return a, nil
	}

	if !CanManageContent(claims, a.CreatedBy) {
		return nil, util.ErrNotFound
	}
	return a, nil
}

func (s *AssignmentService) Update(claims *util.Claims, id uint, req AssignmentRequest) (*model.Assignment, error) {
	a, err := s.ownedAssignment(claims, id)
	if err != nil {
		return nil, err
	}

	a.Title = req.Title
	a.Category = req.Category
	a.GradeLevel = req.GradeLevel
	a.Content = req.Content
	a.AssignedTo = req.AssignedTo
	if req.Status != "" {
		a.Status = req.Status
	}

	if err := s.AssignmentRepo.Update(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AssignmentService) Delete(claims *util.Claims, id uint) error {
	a, err := s.ownedAssignment(claims, id)
	if err != nil {
		return err
	}
	return s.AssignmentRepo.Delete(a.ID)
}

// AddMedia appends uploaded photo/video metadata to an assignment.
func (s *AssignmentService) AddMedia(claims *util.Claims, id uint, media model.MediaFile, video bool) (*model.Assignment, error) {
	a, err := s.ownedAssignment(claims, id)
	if err != nil {
		return nil, err
	}
	if video {
		a.Videos = append(a.Videos, media)
	} else {
		a.Photos = append(a.Photos, media)
	}
	if err := s.AssignmentRepo.Update(a); err != nil {
		return nil, err
	}
	return a, nil
}

// SubmitResult is the response shape for a graded submission.
type SubmitResult struct {
	Submission *model.QuizSubmission `json:"submission"`
	Results    struct {
		TotalScore     int `json:"totalScore"`
		MaxScore       int `json:"maxScore"`
		Percentage     int `json:"percentage"`
		CorrectAnswers int `json:"correctAnswers"`
		TotalQuestions int `json:"totalQuestions"`
		Attempt        int `json:"attempt"`
		BestScore      int `json:"bestScore"`
	} `json:"results"`
}

// SubmitQuiz grades the embedded quiz of an assignment for a student and
// persists the attempt. Every call creates a new submission row; earlier
// attempts stay untouched.
func (s *AssignmentService) SubmitQuiz(claims *util.Claims, assignmentID uint, answers []QuizAnswer, timeSpent int) (*SubmitResult, error) {
	a, err := s.AssignmentRepo.FindByID(assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}
	if !CanSubmitAssignment(a, claims.UserID) {
		return nil, util.ErrNotFound
	}

	questions := a.QuizQuestions()
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: assignment has no quiz content", util.ErrValidation)
	}

	graded := GradeSubmission(questions, answers, timeSpent)

	submission := &model.QuizSubmission{
		AssignmentID: assignmentID,
		StudentID:    claims.UserID,
		Answers:      graded.Answers,
		TotalScore:   graded.TotalScore,
		MaxScore:     graded.MaxScore,
		Percentage:   graded.Percentage,
		CompletedAt:  time.Now(),
		TimeSpent:    timeSpent,
	}
	if err := s.SubmissionRepo.Create(submission); err != nil {
		return nil, err
	}

	monitoring.QuizSubmissions.Inc()

	result := &SubmitResult{Submission: submission}
	result.Results.TotalScore = graded.TotalScore
	result.Results.MaxScore = graded.MaxScore
	result.Results.Percentage = graded.Percentage
	result.Results.CorrectAnswers = graded.CorrectAnswers
	result.Results.TotalQuestions = graded.TotalQuestions
	result.Results.BestScore = graded.TotalScore
	if attempts, err := s.SubmissionRepo.CountAttempts(assignmentID, claims.UserID); err == nil {
		result.Results.Attempt = int(attempts)
	}
	if best, err := s.SubmissionRepo.FindBest(assignmentID, claims.UserID); err == nil {
		result.Results.BestScore = best.TotalScore
	}
	return result, nil
}

// ListSubmissions returns a student's attempts on an assignment, newest
// first. Teachers see their own students' attempts.
func (s *AssignmentService) ListSubmissions(claims *util.Claims, assignmentID, studentID uint) ([]model.QuizSubmission, error) {
	if claims.Role == model.Student {
		studentID = claims.UserID
	} else {
		student, err := s.UserRepo.FindByID(studentID)
		if err != nil || !CanAccessStudent(claims, student) {
			return nil, util.ErrNotFound
		}
	}
	return s.SubmissionRepo.ListByAssignmentAndStudent(assignmentID, studentID)
}

func (s *AssignmentService) ownedAssignment(claims *util.Claims, id uint) (*model.Assignment, error) {
	a, err := s.AssignmentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}
	if !CanManageContent(claims, a.CreatedBy) {
		return nil, util.ErrNotFound
	}
	return a, nil
}
