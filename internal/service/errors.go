package service

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrUserNameTaken          = errors.New("username already taken")
	ErrUserNotFound           = errors.New("user not found")
	ErrForbidden              = errors.New("forbidden")
	ErrJobNotFound            = errors.New("job not found")
	ErrApplicationNotFound    = errors.New("application not found")
	ErrAlreadyApplied         = errors.New("already applied for this job")
	ErrProfileNotFound        = errors.New("profile not found")
)
