package domain

import "errors"

var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")
	ErrForbidden          = errors.New("access forbidden")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrFileTooLarge       = errors.New("file exceeds maximum allowed size")
	ErrUnsupportedMedia   = errors.New("unsupported file type")
	ErrMediaNotAttached   = errors.New("no media attached")
)
