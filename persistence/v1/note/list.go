package note

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// ListByUser returns the user's notes newest first, ties broken by id. It
// serves from the cache when possible and repopulates it after a DB read.
func (s *Store) ListByUser(ctx context.Context, userID uint64) ([]Note, error) {
	key := fmt.Sprintf(userNotesKey, userID)

	tcCtx, tcCancel := context.WithTimeout(ctx, s.cfg.Cache.OperationTimeout)
	defer tcCancel()
	get, err := s.cache.Get(tcCtx, key).Result()
	if err != nil && err != redis.Nil {
		s.log.Error("failure to get notes for user ", userID, " from cache: ", err.Error())
	}
	if get != "" {
		var notes []Note
		if err := json.Unmarshal([]byte(get), &notes); err != nil {
			s.log.Errorf("error parsing cached response for key %s: %s", key, err)
		} else {
			return notes, nil
		}
	}

	notes, err := s.listFromDB(ctx, userID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(notes); err != nil {
		s.log.Errorf("error serializing notes to cache for key %s: %s", key, err)
	} else {
		tcCtx, tcCancel := context.WithTimeout(ctx, s.cfg.Cache.OperationTimeout)
		defer tcCancel()
		if err := s.cache.Set(tcCtx, key, string(data), s.cfg.Cache.NotesTTL).Err(); err != nil {
			s.log.Error("failure to set notes for user ", userID, " into cache: ", err.Error())
		}
	}

	return notes, nil
}

func (s *Store) listFromDB(ctx context.Context, userID uint64) ([]Note, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.cfg.Database.OperationTimeout)
	defer dbCancel()

	rows, err := s.db.QueryContext(dbCtx,
		"SELECT id, user_id, content, created_at FROM notes WHERE user_id = ? ORDER BY created_at DESC, id DESC",
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query list notes stmt: %w", err)
	}
	defer rows.Close()

	notes := []Note{}
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.Id, &n.UserId, &n.Content, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("error parsing db data: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read list notes rows: %w", err)
	}

	return notes, nil
}
