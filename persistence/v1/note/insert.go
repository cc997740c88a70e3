package note

import (
	"context"
	"fmt"
	"time"

	"github.com/ribgsilva/notes-web/platform/dbx"
)

// Insert stores a note with a server assigned creation time and returns its
// id. A foreign key hit surfaces as ErrInvalidReference.
func (s *Store) Insert(ctx context.Context, userID uint64, content string) (uint64, error) {
	n := time.Now().UTC()

	dbCtx, dbCancel := context.WithTimeout(ctx, s.cfg.Database.OperationTimeout)
	defer dbCancel()
	res, err := s.db.ExecContext(dbCtx,
		"INSERT INTO notes (user_id, content, created_at) VALUES (?, ?, ?)",
		userID, content, n)
	if err != nil {
		if dbx.IsForeignKeyViolation(err) {
			return 0, ErrInvalidReference
		}
		return 0, fmt.Errorf("failed to exec insert note stmt: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted note id: %w", err)
	}

	// the cached listing is stale now
	key := fmt.Sprintf(userNotesKey, userID)
	tcCtx, tcCancel := context.WithTimeout(ctx, s.cfg.Cache.OperationTimeout)
	defer tcCancel()
	if err := s.cache.Del(tcCtx, key).Err(); err != nil {
		s.log.Error("failure to invalidate notes cache for user ", userID, ": ", err.Error())
	}

	return uint64(id), nil
}
