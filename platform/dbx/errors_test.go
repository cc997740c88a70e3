package dbx

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(errors.New("disk I/O error")))

	sqliteErr := errors.New("constraint failed: UNIQUE constraint failed: users.username (2067)")
	assert.True(t, IsUniqueViolation(sqliteErr))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", sqliteErr)))

	mysqlErr := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'alice' for key 'uq_users_username'"}
	assert.True(t, IsUniqueViolation(mysqlErr))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", mysqlErr)))

	otherMysql := &mysql.MySQLError{Number: 1054, Message: "Unknown column"}
	assert.False(t, IsUniqueViolation(otherMysql))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.False(t, IsForeignKeyViolation(nil))
	assert.False(t, IsForeignKeyViolation(errors.New("disk I/O error")))

	sqliteErr := errors.New("constraint failed: FOREIGN KEY constraint failed (787)")
	assert.True(t, IsForeignKeyViolation(sqliteErr))

	mysqlErr := &mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"}
	assert.True(t, IsForeignKeyViolation(fmt.Errorf("insert: %w", mysqlErr)))
}
