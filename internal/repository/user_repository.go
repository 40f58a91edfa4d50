package repository

import (
	"lexilearn_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

// FindActiveStudentByCode resolves a secret-code login. Inactive accounts
// are excluded here rather than after the lookup so the caller sees the
// same not-found error for both cases.
func (r *UserRepository) FindActiveStudentByCode(code string) (*model.User, error) {
	var user model.User
	err := r.DB.
		Where("secret_code = ? AND role = ? AND is_active = ?", code, model.Student, true).
		First(&user).Error
	return &user, err
}

func (r *UserRepository) FindStudentsByTeacher(teacherID uint) ([]model.User, error) {
	var students []model.User
	err := r.DB.
		Where("teacher_id = ? AND role = ?", teacherID, model.Student).
		Order("name").
		Find(&students).Error
	return students, err
}

func (r *UserRepository) SecretCodeExists(code string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Where("secret_code = ?", code).Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

func (r *UserRepository) UpdateLastLogin(userID uint) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_login", gorm.Expr("CURRENT_TIMESTAMP(3)")).
		Error
}

func (r *UserRepository) Delete(id uint) error {
	return r.DB.Delete(&model.User{}, id).Error
}
