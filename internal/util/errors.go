package util

import "errors"

var (
	ErrNotFound          = errors.New("resource not found")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrInvalidCredential = errors.New("invalid credentials")
	ErrEmailRegistered   = errors.New("email already registered")
	ErrNotATeacher       = errors.New("referenced user is not a teacher")
	ErrValidation        = errors.New("validation failed")
)
