package auth

import "errors"

var (
	// ErrMissingField is returned when username or password is empty after trimming.
	ErrMissingField = errors.New("username and password are required")
	// ErrUsernameTaken is returned when registering an already used username.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrInvalidCredentials covers both unknown username and wrong password,
	// so callers cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Session describes an authenticated identity, ready to be installed by the
// session manager.
type Session struct {
	UserID   uint64
	Username string
}
