package auth

import (
	"github.com/ribgsilva/notes-web/persistence/v1/user"
)

// Service registers users and verifies login credentials against the
// credential store. Passwords are only ever handled as bcrypt hashes.
type Service struct {
	users *user.Store
}

func NewService(users *user.Store) *Service {
	return &Service{users: users}
}
