package user

import (
	"github.com/ribgsilva/notes-web/platform/dbx"
	"github.com/ribgsilva/notes-web/sys"
)

// Store persists user identity records. Username uniqueness is enforced by
// the database constraint, not by a pre-check.
type Store struct {
	db  dbx.DBTX
	cfg *sys.Config
}

func NewStore(db dbx.DBTX, cfg *sys.Config) *Store {
	return &Store{db: db, cfg: cfg}
}
