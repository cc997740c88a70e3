package note

import (
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/ribgsilva/notes-web/platform/dbx"
	"github.com/ribgsilva/notes-web/sys"
)

// Store persists notes and keeps a per-user listing cache in redis. Cache
// failures degrade to the database and are only logged.
type Store struct {
	db    dbx.DBTX
	cache *redis.Client
	cfg   *sys.Config
	log   *zap.SugaredLogger
}

func NewStore(db dbx.DBTX, cache *redis.Client, cfg *sys.Config, log *zap.SugaredLogger) *Store {
	return &Store{db: db, cache: cache, cfg: cfg, log: log}
}
