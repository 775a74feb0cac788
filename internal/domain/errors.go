package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound        = errors.New("record not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrUsernameTaken   = errors.New("username is already taken")
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnauthorized    = errors.New("invalid username or password")
	ErrForbidden       = errors.New("access denied")
	ErrBadAdminCode    = errors.New("invalid admin registration code")
	ErrSelfDelete      = errors.New("you cannot delete your own account")
	ErrAlreadyAdmin    = errors.New("user is already an admin")
)
