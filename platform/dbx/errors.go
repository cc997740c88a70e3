package dbx

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

const (
	mysqlDupEntry     = 1062
	mysqlNoReferenced = 1452
)

// IsUniqueViolation reports whether err was caused by a unique constraint,
// for the drivers the project supports (mysql and sqlite).
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDupEntry
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// IsForeignKeyViolation reports whether err was caused by a foreign key
// constraint, for the drivers the project supports (mysql and sqlite).
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlNoReferenced
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
