package repository

import (
	"lexilearn_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) Create(q *model.Quiz) error {
	return r.DB.Create(q).Error
}

func (r *QuizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.First(&quiz, id).Error
	return &quiz, err
}

func (r *QuizRepository) List(q ContentQuery) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := q.apply(r.DB.Model(&model.Quiz{})).Order("created_at DESC").Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) ListVisibleToStudent(studentID uint, grade string) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.
		Where("is_active = ?", true).
		Where("JSON_CONTAINS(assigned_to, CAST(? AS JSON)) OR grade_level = ?", studentID, grade).
		Order("created_at DESC").
		Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) Update(q *model.Quiz) error {
	return r.DB.Save(q).Error
}

func (r *QuizRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Quiz{}, id).Error
}
