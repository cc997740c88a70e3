package schema

import (
	"context"
	"fmt"
)

// Drop removes the notes and users tables, in that order because of the
// foreign key between them.
func (m *Manager) Drop(ctx context.Context) error {
	for _, stmt := range dropStatements {
		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("drop schema: %w", err)
		}
	}
	return nil
}
