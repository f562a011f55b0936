package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrBookNotFound       = errors.New("book not found")
	ErrInvalidAgeRange    = errors.New("age range must be within 5-18 and min must not exceed max")
	ErrInvalidReadingLvl  = errors.New("reading level must be Beginner, Intermediate or Advanced")
	ErrInvalidRole        = errors.New("role must be learner, guardian, staff or administrator")
)
