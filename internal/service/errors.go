package service

import (
	"errors"

	"github.com/Varun5711/inotebook/internal/validation"
)

var (
	ErrEmailExists        = errors.New("User with this email already exists")
	ErrInvalidCredentials = errors.New("Please try to login with correct credentials")
	ErrUserNotFound       = errors.New("User not found")
	ErrNoteNotFound       = errors.New("Not Found")
	ErrNotAllowed         = errors.New("Not Allowed")
	ErrInternal           = errors.New("Internal server error")
)

// ValidationError lists every field that failed its constraints.
type ValidationError struct {
	Fields []validation.FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed: " + validation.Messages(e.Fields)
}

func validate(input any) error {
	if fields := validation.Struct(input); len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
