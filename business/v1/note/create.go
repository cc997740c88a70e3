package note

import (
	"context"
	"strings"
)

// Create trims the content and stores the note for the given user. Notes
// that are empty after trimming are rejected with ErrEmptyContent.
func (s *Service) Create(ctx context.Context, userID uint64, content string) (uint64, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return 0, ErrEmptyContent
	}
	return s.notes.Insert(ctx, userID, content)
}
