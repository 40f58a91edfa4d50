package repository

import (
	"lexilearn_backend/internal/model"

	"gorm.io/gorm"
)

type AssignmentRepository struct {
	DB *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{DB: db}
}

func (r *AssignmentRepository) Create(a *model.Assignment) error {
	return r.DB.Create(a).Error
}

func (r *AssignmentRepository) FindByID(id uint) (*model.Assignment, error) {
	var a model.Assignment
	err := r.DB.First(&a, id).Error
	return &a, err
}

func (r *AssignmentRepository) List(q ContentQuery) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := q.apply(r.DB.Model(&model.Assignment{})).Order("created_at DESC").Find(&assignments).Error
	return assignments, err
}

// ListForStudent returns non-draft assignments the student is assigned to.
// Assignments are always explicit; there is no grade-level fallback.
func (r *AssignmentRepository) ListForStudent(studentID uint) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.DB.
		Where("status <> ?", model.AssignmentDraft).
		Where("JSON_CONTAINS(assigned_to, CAST(? AS JSON))", studentID).
		Order("created_at DESC").
		Find(&assignments).Error
	return assignments, err
}

func (r *AssignmentRepository) Update(a *model.Assignment) error {
	return r.DB.Save(a).Error
}

func (r *AssignmentRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Assignment{}, id).Error
}
