package service

import (
	"errors"
	"fmt"

	"lexilearn_backend/internal/model"
	"lexilearn_backend/internal/repository"
	"lexilearn_backend/internal/util"

	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

// secretCodeRetries bounds the collision-regenerate loop; with a 36^9 code
// space collisions are vanishingly rare, the DB unique index is the backstop.
const secretCodeRetries = 5

type CreateStudentRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Grade    string `json:"grade" binding:"required"`
	Settings map[string]interface{} `json:"settings"`
}

// CreateStudent creates a student under the given teacher and mints their
// secret code. The code is returned here exactly once; it is never included
// in user JSON afterwards.
func (s *UserService) CreateStudent(teacherID uint, req CreateStudentRequest) (*model.User, string, error) {
	teacher, err := s.UserRepo.FindByID(teacherID)
	if err != nil || teacher.Role != model.Teacher {
		return nil, "", util.ErrNotATeacher
	}

	code, err := s.mintSecretCode()
	if err != nil {
		return nil, "", err
	}

	student := &model.User{
		Name:       req.Name,
		Role:       model.Student,
		Grade:      req.Grade,
		TeacherID:  &teacherID,
		SecretCode: &code,
		IsActive:   true,
		Settings:   req.Settings,
	}
	if req.Email != "" {
		student.Email = &req.Email
	}
	if err := student.ValidateForCreate(); err != nil {
		return nil, "", fmt.Errorf("%w: %v", util.ErrValidation, err)
	}

	if err := s.UserRepo.Create(student); err != nil {
		// The email index is the only plausible collision here; the secret
		// code was vetted by mintSecretCode just above.
		if repository.IsDuplicateKey(err) {
			return nil, "", util.ErrEmailRegistered
		}
		return nil, "", err
	}
	return student, code, nil
}

func (s *UserService) mintSecretCode() (string, error) {
	for i := 0; i < secretCodeRetries; i++ {
		code, err := util.GenerateSecretCode()
		if err != nil {
			return "", err
		}
		exists, err := s.UserRepo.SecretCodeExists(code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", errors.New("could not generate a unique secret code")
}

func (s *UserService) ListStudents(claims *util.Claims, teacherID uint) ([]model.Profile, error) {
	if claims.Role != model.Admin {
		teacherID = claims.UserID
	}
	students, err := s.UserRepo.FindStudentsByTeacher(teacherID)
	if err != nil {
		return nil, err
	}
	profiles := make([]model.Profile, len(students))
	for i := range students {
		profiles[i] = students[i].ToProfile()
	}
	return profiles, nil
}

// GetStudent fetches a student record, hiding existence from principals
// without access.
func (s *UserService) GetStudent(claims *util.Claims, studentID uint) (*model.User, error) {
	student, err := s.UserRepo.FindByID(studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}
	if student.Role != model.Student || !CanAccessStudent(claims, student) {
		return nil, util.ErrNotFound
	}
	return student, nil
}

type UpdateStudentRequest struct {
	Name     string                 `json:"name"`
	Grade    string                 `json:"grade"`
	IsActive *bool                  `json:"isActive"`
	Settings map[string]interface{} `json:"settings"`
}

func (s *UserService) UpdateStudent(claims *util.Claims, studentID uint, req UpdateStudentRequest) (*model.User, error) {
	student, err := s.GetStudent(claims, studentID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		student.Name = req.Name
	}
	if req.Grade != "" {
		student.Grade = req.Grade
	}
	if req.IsActive != nil {
		student.IsActive = *req.IsActive
	}
	if req.Settings != nil {
		student.Settings = req.Settings
	}

	if err := s.UserRepo.Update(student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *UserService) DeleteStudent(claims *util.Claims, studentID uint) error {
	student, err := s.GetStudent(claims, studentID)
	if err != nil {
		return err
	}
	return s.UserRepo.Delete(student.ID)
}

// RegenerateSecretCode mints a fresh code for a student, e.g. after the old
// one leaked. The previous code stops working immediately.
func (s *UserService) RegenerateSecretCode(claims *util.Claims, studentID uint) (string, error) {
	student, err := s.GetStudent(claims, studentID)
	if err != nil {
		return "", err
	}

	for i := 0; i < secretCodeRetries; i++ {
		code, err := s.mintSecretCode()
		if err != nil {
			return "", err
		}
		student.SecretCode = &code
		if err := s.UserRepo.Update(student); err != nil {
			// A concurrent mint can win the race between SecretCodeExists
			// and the write. Try a fresh code.
			if repository.IsDuplicateKey(err) {
				continue
			}
			return "", err
		}
		return code, nil
	}
	return "", errors.New("could not generate a unique secret code")
}
