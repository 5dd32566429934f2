package sqlerrors

import (
	"errors"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

// pgUniqueViolation код ошибки PostgreSQL unique_violation
const pgUniqueViolation = "23505"

// IsUniqueViolation возвращает true, если ошибка - нарушение UNIQUE/PRIMARY KEY
// в PostgreSQL (lib/pq) или SQLite (go-sqlite3)
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pgUniqueViolation
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}
