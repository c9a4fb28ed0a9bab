package model

import "errors"

var (
	// ErrNotFound is returned by stores when the requested row does not exist.
	ErrNotFound = errors.New("not found")

	ErrEmailTaken         = errors.New("email already registered")
	ErrUserDisabled       = errors.New("user disabled")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidYearRange   = errors.New("end year before start year")
	ErrUnsupportedImage   = errors.New("unsupported image type")
	ErrNotOwner           = errors.New("resource owned by another user")
)
