package login

import "errors"

var (
	// ErrAdminNotFound is returned when no admin record matches the username
	ErrAdminNotFound = errors.New("admin not found")

	// ErrInvalidCredentials is returned when the submitted password does not match
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUsernameTaken is returned when registering a username that already exists
	ErrUsernameTaken = errors.New("username already taken")
)
