package repository

import (
	"database/sql"

	"github.com/ignatzorin/creative-marketplace/internal/pkg/apperror"
	"github.com/ignatzorin/creative-marketplace/internal/repository/common"
)

// classifyWriteError переводит ошибки ограничений в ошибки валидации.
func classifyWriteError(err error, fkMessage, dbMessage string) error {
	switch {
	case fkMessage != "" && common.IsForeignKeyViolation(err):
		return apperror.Validation(fkMessage)
	case common.IsCheckViolation(err):
		return apperror.Validation("value is out of allowed range")
	}
	return apperror.Database(err, dbMessage)
}

func requireAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return notFound
	}
	return nil
}
