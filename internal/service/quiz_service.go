package service

import (
	"errors"

	"gorm.io/datatypes"

	"lexilearn_backend/internal/model"
	"lexilearn_backend/internal/repository"
	"lexilearn_backend/internal/util"

	"gorm.io/gorm"
)

type QuizService struct {
	QuizRepo *repository.QuizRepository
	UserRepo *repository.UserRepository
}

func NewQuizService(quizRepo *repository.QuizRepository, userRepo *repository.UserRepository) *QuizService {
	return &QuizService{QuizRepo: quizRepo, UserRepo: userRepo}
}

type QuizRequest struct {
	Title             string                   `json:"title" binding:"required"`
	Description       string                   `json:"description"`
	Category          string                   `json:"category"`
	Difficulty        string                   `json:"difficulty"`
	GradeLevel        string                   `json:"gradeLevel"`
	Questions         []model.Question         `json:"questions"`
	EstimatedDuration int                      `json:"estimatedDuration"`
	Accessibility     model.AccessibilityFlags `json:"accessibility"`
	AssignedTo        []uint                   `json:"assignedTo"`
	IsActive          *bool                    `json:"isActive"`
}

func (s *QuizService) Create(claims *util.Claims, req QuizRequest) (*model.Quiz, error) {
	q := &model.Quiz{
		Title:             req.Title,
		Description:       req.Description,
		Category:          req.Category,
		Difficulty:        req.Difficulty,
		GradeLevel:        req.GradeLevel,
		Questions:         req.Questions,
		EstimatedDuration: req.EstimatedDuration,
		Accessibility:     datatypes.NewJSONType(req.Accessibility),
		CreatedBy:         claims.UserID,
		AssignedTo:        req.AssignedTo,
		IsActive:          true,
	}
	if req.IsActive != nil {
		q.IsActive = *req.IsActive
	}
	if err := s.QuizRepo.Create(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuizService) List(claims *util.Claims, q repository.ContentQuery) ([]model.Quiz, error) {
	switch claims.Role {
	case model.Student:
		student, err := s.UserRepo.FindByID(claims.UserID)
		if err != nil {
			return nil, err
		}
		return s.QuizRepo.ListVisibleToStudent(student.ID, student.Grade)
	case model.Teacher:
		q.CreatedBy = claims.UserID
		return s.QuizRepo.List(q)
	default:
		return s.QuizRepo.List(q)
	}
}

func (s *QuizService) Get(claims *util.Claims, id uint) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}

	if claims.Role == model.Student {
		student, err := s.UserRepo.FindByID(claims.UserID)
		if err != nil || !CanTakeQuiz(quiz, student) {
			return nil, util.ErrNotFound
		}
		return quiz, nil
	}

	if !CanManageContent(claims, quiz.CreatedBy) {
		return nil, util.ErrNotFound
	}
	return quiz, nil
}

func (s *QuizService) Update(claims *util.Claims, id uint, req QuizRequest) (*model.Quiz, error) {
	quiz, err := s.ownedQuiz(claims, id)
	if err != nil {
		return nil, err
	}

	quiz.Title = req.Title
	quiz.Description = req.Description
	quiz.Category = req.Category
	quiz.Difficulty = req.Difficulty
	quiz.GradeLevel = req.GradeLevel
	quiz.Questions = req.Questions
	quiz.EstimatedDuration = req.EstimatedDuration
	quiz.Accessibility = datatypes.NewJSONType(req.Accessibility)
	quiz.AssignedTo = req.AssignedTo
	if req.IsActive != nil {
		quiz.IsActive = *req.IsActive
	}

	if err := s.QuizRepo.Update(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) Delete(claims *util.Claims, id uint) error {
	quiz, err := s.ownedQuiz(claims, id)
	if err != nil {
		return err
	}
	return s.QuizRepo.Delete(quiz.ID)
}

func (s *QuizService) ownedQuiz(claims *util.Claims, id uint) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}
	if !CanManageContent(claims, quiz.CreatedBy) {
		return nil, util.ErrNotFound
	}
	return quiz, nil
}
