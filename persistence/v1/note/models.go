package note

import (
	"errors"
	"time"
)

const userNotesKey = "notes.user.%d"

// ErrInvalidReference is returned when the owning user does not exist.
var ErrInvalidReference = errors.New("note references a missing user")

type Note struct {
	Id        uint64
	UserId    uint64
	Content   string
	CreatedAt time.Time
}
