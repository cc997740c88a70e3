package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// FindByUsername looks up a user by its exact, case sensitive username.
func (s *Store) FindByUsername(ctx context.Context, username string) (User, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.cfg.Database.OperationTimeout)
	defer dbCancel()

	var u User
	err := s.db.QueryRowContext(dbCtx,
		"SELECT id, username, password_hash FROM users WHERE username = ?",
		username).Scan(&u.Id, &u.Username, &u.PasswordHash)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return User{}, ErrNotFound
	case err != nil:
		return User{}, fmt.Errorf("failed to query find user stmt: %w", err)
	default:
		return u, nil
	}
}
