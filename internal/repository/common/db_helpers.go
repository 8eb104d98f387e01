package common

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// GetByID читает строку таблицы в T; sql.ErrNoRows превращается в notFoundErr.
func GetByID[T any](ctx context.Context, db sqlx.QueryerContext, table string, id int64, notFoundErr error) (*T, error) {
	return GetByField[T](ctx, db, table, "id", id, notFoundErr)
}

// GetByField то же самое для произвольного поля; при notFoundErr == nil отсутствие строки
// даёт nil, nil. table и field подставляются в запрос
// как есть, поэтому передавать только константы.
func GetByField[T any](ctx context.Context, db sqlx.QueryerContext, table, field string, value any, notFoundErr error) (*T, error) {
	var row T
	query := fmt.Sprintf("SELECT * FROM %s WHERE %s = $1", table, field)

	if err := sqlx.GetContext(ctx, db, &row, query, value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFoundErr
		}
		return nil, fmt.Errorf("get by %s from %s: %w", field, table, err)
	}

	return &row, nil
}

// WithTransaction выполняет fn в транзакции: ошибка или паника откатывают её.
func WithTransaction(ctx context.Context, db *sqlx.DB, fn func(*sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx error: %w, rollback error: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
