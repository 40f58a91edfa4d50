package model

import "gorm.io/datatypes"

type Module struct {
	BaseModel
	Title             string                           `gorm:"size:255;not null" json:"title"`
	Description       string                           `gorm:"type:text" json:"description"`
	Category          string                           `gorm:"size:50;index" json:"category"`
	Difficulty        string                           `gorm:"size:20" json:"difficulty"`
	GradeLevel        string                           `gorm:"size:20;index" json:"gradeLevel"`
	Content           datatypes.JSONSlice[ContentItem] `json:"content"`
	EstimatedDuration int                              `json:"estimatedDuration"`
	Accessibility     datatypes.JSONType[AccessibilityFlags] `json:"accessibility"`
	Media             datatypes.JSONSlice[MediaFile]   `json:"media,omitempty"`
	CreatedBy         uint                             `gorm:"index;not null" json:"createdBy"`
	AssignedTo        IDList                           `json:"assignedTo"`
	IsActive          bool                             `gorm:"default:true" json:"isActive"`
}

func (Module) TableName() string {
	return "modules"
}

type Quiz struct {
	BaseModel
	Title             string                        `gorm:"size:255;not null" json:"title"`
	Description       string                        `gorm:"type:text" json:"description"`
	Category          string                        `gorm:"size:50;index" json:"category"`
	Difficulty        string                        `gorm:"size:20" json:"difficulty"`
	GradeLevel        string                        `gorm:"size:20;index" json:"gradeLevel"`
	Questions         datatypes.JSONSlice[Question] `json:"questions"`
	EstimatedDuration int                           `json:"estimatedDuration"`
	Accessibility     datatypes.JSONType[AccessibilityFlags] `json:"accessibility"`
	CreatedBy         uint                          `gorm:"index;not null" json:"createdBy"`
	AssignedTo        IDList                        `json:"assignedTo"`
	IsActive          bool                          `gorm:"default:true" json:"isActive"`
}

func (Quiz) TableName() string {
	return "quizzes"
}
