package common

import (
	"errors"

	"github.com/lib/pq"
)

// Коды SQLSTATE, которые репозитории различают.
const (
	pgUniqueViolation     pq.ErrorCode = "23505"
	pgForeignKeyViolation pq.ErrorCode = "23503"
	pgCheckViolation      pq.ErrorCode = "23514"
)

func pgCode(err error) (pq.ErrorCode, string, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code, pqErr.Constraint, true
	}
	return "", "", false
}

// IsUniqueViolation проверяет нарушение уникальности. Пустой constraint означает любое.
func IsUniqueViolation(err error, constraint string) bool {
	code, name, ok := pgCode(err)
	return ok && code == pgUniqueViolation && (constraint == "" || name == constraint)
}

func IsForeignKeyViolation(err error) bool {
	code, _, ok := pgCode(err)
	return ok && code == pgForeignKeyViolation
}

func IsCheckViolation(err error) bool {
	code, _, ok := pgCode(err)
	return ok && code == pgCheckViolation
}
