package note

import (
	"context"
)

// ListByUser returns the user's notes, newest first.
func (s *Service) ListByUser(ctx context.Context, userID uint64) ([]Note, error) {
	found, err := s.notes.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	notes := make([]Note, 0, len(found))
	for _, n := range found {
		notes = append(notes, Note(n))
	}
	return notes, nil
}
