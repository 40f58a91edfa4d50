package repository

import (
	"lexilearn_backend/internal/model"

	"gorm.io/gorm"
)

type ModuleRepository struct {
	DB *gorm.DB
}

func NewModuleRepository(db *gorm.DB) *ModuleRepository {
	return &ModuleRepository{DB: db}
}

func (r *ModuleRepository) Create(m *model.Module) error {
	return r.DB.Create(m).Error
}

func (r *ModuleRepository) FindByID(id uint) (*model.Module, error) {
	var m model.Module
	err := r.DB.First(&m, id).Error
	return &m, err
}

func (r *ModuleRepository) List(q ContentQuery) ([]model.Module, error) {
	var modules []model.Module
	err := q.apply(r.DB.Model(&model.Module{})).Order("created_at DESC").Find(&modules).Error
	return modules, err
}

// ListVisibleToStudent returns active modules the student was explicitly
// assigned to, or whose grade level matches the student's grade. JSON
// membership on assigned_to keeps the filter in the database.
func (r *ModuleRepository) ListVisibleToStudent(studentID uint, grade string) ([]model.Module, error) {
	var modules []model.Module
	err := r.DB.
		Where("is_active = ?", true).
		Where("JSON_CONTAINS(assigned_to, CAST(? AS JSON)) OR grade_level = ?", studentID, grade).
		Order("created_at DESC").
		Find(&modules).Error
	return modules, err
}

func (r *ModuleRepository) Update(m *model.Module) error {
	return r.DB.Save(m).Error
}

func (r *ModuleRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Module{}, id).Error
}
