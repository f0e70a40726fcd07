package account

import "errors"

var (
	ErrDuplicateEmail = errors.New("an account with this email already exists")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrInvalidAccessCode = errors.New("invalid mentor access code")
	ErrInvalidProfile    = errors.New("invalid profile")
	ErrInvalidAvatar     = errors.New("invalid avatar")
	ErrNotAuthenticated  = errors.New("not logged in")
	ErrForbidden         = errors.New("permission denied")
)
