package model

import (
	"errors"
	"time"

	"gorm.io/datatypes"
)

type UserRole string

const (
	Student UserRole = "student"
	Teacher UserRole = "teacher"
	Admin   UserRole = "admin"
)

// User covers all three roles. Which credential and which profile fields are
// required depends on the role and is enforced at construction time, not at
// arbitrary mutation time:
//   - students carry a unique 9-char secret code, a grade, and a TeacherID
//     that must reference a user with role=teacher; email is optional;
//   - teachers and admins carry an email and a bcrypt password hash.
type User struct {
	BaseModel
	Name       string   `gorm:"size:100;not null" json:"name"`
	Email      *string  `gorm:"size:100;uniqueIndex" json:"email,omitempty"`
	Password   string   `gorm:"size:100" json:"-"`
	SecretCode *string  `gorm:"size:9;uniqueIndex" json:"-"`
	Role       UserRole `gorm:"type:enum('student','teacher','admin');default:'student'" json:"role"`

	// Student fields
	Grade     string `gorm:"size:20" json:"grade,omitempty"`
	TeacherID *uint  `gorm:"index" json:"teacherId,omitempty"`

	// Teacher fields
	School     string `gorm:"size:100" json:"school,omitempty"`
	GradeLevel string `gorm:"size:20" json:"gradeLevel,omitempty"`
	Subject    string `gorm:"size:50" json:"subject,omitempty"`

	IsActive  bool              `gorm:"default:true" json:"isActive"`
	LastLogin time.Time         `json:"lastLogin"`
	Settings  datatypes.JSONMap `json:"settings,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// ValidateForCreate checks the per-role required fields.
func (u *User) ValidateForCreate() error {
	switch u.Role {
	case Student:
		if u.Grade == "" {
			return errors.New("grade is required for students")
		}
		if u.TeacherID == nil {
			return errors.New("teacherId is required for students")
		}
	case Teacher, Admin:
		if u.Email == nil || *u.Email == "" {
			return errors.New("email is required")
		}
		if u.Password == "" {
			return errors.New("password is required")
		}
	default:
		return errors.New("unknown role: " + string(u.Role))
	}
	return nil
}

// Profile is the public projection of a user, with the role-appropriate
// fields and never a credential.
type Profile struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	Role       UserRole  `json:"role"`
	Grade      string    `json:"grade,omitempty"`
	TeacherID  *uint     `json:"teacherId,omitempty"`
	School     string    `json:"school,omitempty"`
	GradeLevel string    `json:"gradeLevel,omitempty"`
	Subject    string    `json:"subject,omitempty"`
	IsActive   bool      `json:"isActive"`
	LastLogin  time.Time `json:"lastLogin"`
}

func (u *User) ToProfile() Profile {
	p := Profile{
		ID:         u.ID,
		Name:       u.Name,
		Role:       u.Role,
		Grade:      u.Grade,
		TeacherID:  u.TeacherID,
		School:     u.School,
		GradeLevel: u.GradeLevel,
		Subject:    u.Subject,
		IsActive:   u.IsActive,
		LastLogin:  u.LastLogin,
	}
	if u.Email != nil {
		p.Email = *u.Email
	}
	return p
}
