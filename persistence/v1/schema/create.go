package schema

import (
	"context"
	"fmt"
)

// Create builds the users and notes tables when they do not exist yet.
func (m *Manager) Create(ctx context.Context) error {
	for _, stmt := range m.statements() {
		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
