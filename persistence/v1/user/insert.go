package user

import (
	"context"
	"fmt"

	"github.com/ribgsilva/notes-web/platform/dbx"
)

// Insert creates a user in a single statement and returns its id. A unique
// constraint hit surfaces as ErrDuplicateUsername.
func (s *Store) Insert(ctx context.Context, username, passwordHash string) (uint64, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.cfg.Database.OperationTimeout)
	defer dbCancel()

	res, err := s.db.ExecContext(dbCtx,
		"INSERT INTO users (username, password_hash) VALUES (?, ?)",
		username, passwordHash)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return 0, ErrDuplicateUsername
		}
		return 0, fmt.Errorf("failed to exec insert user stmt: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted user id: %w", err)
	}
	return uint64(id), nil
}
