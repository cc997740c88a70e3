package schema

import (
	"github.com/ribgsilva/notes-web/platform/dbx"
)

// Manager creates and drops the database schema for the configured driver.
type Manager struct {
	db     dbx.DBTX
	driver string
}

func NewManager(db dbx.DBTX, driver string) *Manager {
	return &Manager{db: db, driver: driver}
}

func (m *Manager) statements() []string {
	if m.driver == "mysql" {
		return mysqlSchema
	}
	return sqliteSchema
}
