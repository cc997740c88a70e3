package note

import (
	"errors"
	"time"
)

// ErrEmptyContent is returned when a note is empty after trimming.
var ErrEmptyContent = errors.New("note content is empty")

type Note struct {
	Id        uint64
	UserId    uint64
	Content   string
	CreatedAt time.Time
}
