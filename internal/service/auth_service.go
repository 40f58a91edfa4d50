package service

import (
	"errors"
	"fmt"

	"lexilearn_backend/internal/config"
	"lexilearn_backend/internal/model"
	"lexilearn_backend/internal/repository"
	"lexilearn_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

// Register creates a teacher or admin account with an email/password
// credential. Student accounts are created by their teacher and get a secret
// code instead (see UserService.CreateStudent).
func (s *AuthService) Register(user *model.User, password string) error {
	user.Password = password
	if err := user.ValidateForCreate(); err != nil {
		return fmt.Errorf("%w: %v", util.ErrValidation, err)
	}

	_, err := s.UserRepo.FindByEmail(*user.Email)
	if err == nil {
		return util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)
	if err := s.UserRepo.Create(user); err != nil {
		// Backstop for a concurrent registration slipping past the
		// FindByEmail check above.
		if repository.IsDuplicateKey(err) {
			return util.ErrEmailRegistered
		}
		return err
	}
	return nil
}

func (s *AuthService) Login(email, password string) (string, *model.User, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", nil, util.ErrInvalidCredential
	}

	if !user.IsActive {
		return "", nil, util.ErrInvalidCredential
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, util.ErrInvalidCredential
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}

	s.UserRepo.UpdateLastLogin(user.ID)
	return token, user, nil
}

// LoginWithSecretCode authenticates a student by their 9-character code.
// Not-found and inactive both collapse into the same credential error.
func (s *AuthService) LoginWithSecretCode(code string) (string, *model.User, error) {
	if !util.IsValidSecretCode(code) {
		return "", nil, util.ErrInvalidCredential
	}

	user, err := s.UserRepo.FindActiveStudentByCode(code)
	if err != nil {
		return "", nil, util.ErrInvalidCredential
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}

	s.UserRepo.UpdateLastLogin(user.ID)
	return token, user, nil
}
