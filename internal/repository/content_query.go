package repository

import "gorm.io/gorm"

// ContentQuery enumerates the recognized list filters for modules, quizzes
// and assignments. Unset fields are not applied.
type ContentQuery struct {
	Category   string
	Difficulty string
	GradeLevel string
	Status     string
	CreatedBy  uint
	Page       int
	Limit      int
}

func (q ContentQuery) apply(db *gorm.DB) *gorm.DB {
	if q.Category != "" {
		db = db.Where("category = ?", q.Category)
	}
	if q.Difficulty != "" {
		db = db.Where("difficulty = ?", q.Difficulty)
	}
	if q.GradeLevel != "" {
		db = db.Where("grade_level = ?", q.GradeLevel)
	}
	if q.Status != "" {
		db = db.Where("status = ?", q.Status)
	}
	if q.CreatedBy != 0 {
		db = db.Where("created_by = ?", q.CreatedBy)
	}
	if q.Limit > 0 {
		page := q.Page
		if page < 1 {
			page = 1
		}
		db = db.Offset((page - 1) * q.Limit).Limit(q.Limit)
	}
	return db
}
