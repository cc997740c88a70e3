package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/ribgsilva/notes-web/persistence/v1/user"
)

// Register creates a new user. The username is trimmed before any check and
// the password is stored as a salted bcrypt hash, never in plaintext.
func (s *Service) Register(ctx context.Context, username, password string) (uint64, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return 0, ErrMissingField
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := s.users.Insert(ctx, username, string(hash))
	if err != nil {
		if errors.Is(err, user.ErrDuplicateUsername) {
			return 0, ErrUsernameTaken
		}
		return 0, err
	}
	return id, nil
}
