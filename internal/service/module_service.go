package service

import (
	"errors"

	"gorm.io/datatypes"

	"lexilearn_backend/internal/model"
	"lexilearn_backend/internal/repository"
	"lexilearn_backend/internal/util"

	"gorm.io/gorm"
)

type ModuleService struct {
	ModuleRepo *repository.ModuleRepository
	UserRepo   *repository.UserRepository
}

func NewModuleService(moduleRepo *repository.ModuleRepository, userRepo *repository.UserRepository) *ModuleService {
	return &ModuleService{ModuleRepo: moduleRepo, UserRepo: userRepo}
}

type ModuleRequest struct {
	Title             string                   `json:"title" binding:"required"`
	Description       string                   `json:"description"`
	Category          string                   `json:"category"`
	Difficulty        string                   `json:"difficulty"`
	GradeLevel        string                   `json:"gradeLevel"`
	Content           []model.ContentItem      `json:"content"`
	EstimatedDuration int                      `json:"estimatedDuration"`
	Accessibility     model.AccessibilityFlags `json:"accessibility"`
	AssignedTo        []uint                   `json:"assignedTo"`
	IsActive          *bool                    `json:"isActive"`
}

func (s *ModuleService) Create(claims *util.Claims, req ModuleRequest) (*model.Module, error) {
	m := &model.Module{
		Title:             req.Title,
		Description:       req.Description,
		Category:          req.Category,
		Difficulty:        req.Difficulty,
		GradeLevel:        req.GradeLevel,
		Content:           req.Content,
		EstimatedDuration: req.EstimatedDuration,
		CreatedBy:         claims.UserID,
		AssignedTo:        req.AssignedTo,
		IsActive:          true,
	}
	m.Accessibility = datatypes.NewJSONType(req.Accessibility)
	if req.IsActive != nil {
		m.IsActive = *req.IsActive
	}
	if err := s.ModuleRepo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

// List returns content scoped by role: students see active modules assigned
// to them or matching their grade, teachers see their own, admins see all.
func (s *ModuleService) List(claims *util.Claims, q repository.ContentQuery) ([]model.Module, error) {
	switch claims.Role {
	case model.Student:
		student, err := s.UserRepo.FindByID(claims.UserID)
		if err != nil {
			return nil, err
		}
		return s.ModuleRepo.ListVisibleToStudent(student.ID, student.Grade)
	case model.Teacher:
		q.CreatedBy = claims.UserID
		return s.ModuleRepo.List(q)
	default:
		return s.ModuleRepo.List(q)
	}
}

// Get fetches one module. A student gets it only if it is visible to them,
// a teacher only if they own it; everyone else sees not-found.
func (s *ModuleService) Get(claims *util.Claims, id uint) (*model.Module, error) {
	m, err := s.ModuleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}

	if claims.Role == model.Student {
		student, err := s.UserRepo.FindByID(claims.UserID)
		if err != nil || !CanViewModuleAsStudent(m, student) {
			return nil, util.ErrNotFound
		}
		return m, nil
	}

	if !CanManageContent(claims, m.CreatedBy) {
		return nil, util.ErrNotFound
	}
	return m, nil
}

func (s *ModuleService) Update(claims *util.Claims, id uint, req ModuleRequest) (*model.Module, error) {
	m, err := s.ownedModule(claims, id)
	if err != nil {
		return nil, err
	}

	m.Title = req.Title
	m.Description = req.Description
	m.Category = req.Category
	m.Difficulty = req.Difficulty
	m.GradeLevel = req.GradeLevel
	m.Content = req.Content
	m.EstimatedDuration = req.EstimatedDuration
	m.Accessibility = datatypes.NewJSONType(req.Accessibility)
	m.AssignedTo = req.AssignedTo
	if req.IsActive != nil {
		m.IsActive = *req.IsActive
	}

	if err := s.ModuleRepo.Update(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *ModuleService) Delete(claims *util.Claims, id uint) error {
	m, err := s.ownedModule(claims, id)
	if err != nil {
		return err
	}
	return s.ModuleRepo.Delete(m.ID)
}

// AddMedia appends uploaded media metadata to a module.
func (s *ModuleService) AddMedia(claims *util.Claims, id uint, media model.MediaFile) (*model.Module, error) {
	m, err := s.ownedModule(claims, id)
	if err != nil {
		return nil, err
	}
	m.Media = append(m.Media, media)
	if err := s.ModuleRepo.Update(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *ModuleService) ownedModule(claims *util.Claims, id uint) (*model.Module, error) {
	m, err := s.ModuleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}
	if !CanManageContent(claims, m.CreatedBy) {
		return nil, util.ErrNotFound
	}
	return m, nil
}
