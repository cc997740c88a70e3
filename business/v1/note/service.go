package note

import (
	"github.com/ribgsilva/notes-web/persistence/v1/note"
)

// Service holds the note workflows on top of the note store.
type Service struct {
	notes *note.Store
}

func NewService(notes *note.Store) *Service {
	return &Service{notes: notes}
}
