package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrValidation         = errors.New("missing required fields")
	ErrDuplicateEntry     = errors.New("duplicate entry")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInternalServer     = errors.New("internal server error")
)

// UserErrors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user with this email or registration number already exists")
	ErrInvalidEmailDomain = errors.New("email must be a valid institutional email address")
)

// ComplaintErrors
var (
	ErrComplaintNotFound = errors.New("complaint not found")
	ErrImageNotFound     = errors.New("image not found")
	ErrInvalidStatus     = errors.New("invalid complaint status")
	ErrInvalidCategory   = errors.New("invalid complaint category")
)
