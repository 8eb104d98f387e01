package persistence

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/ignatzorin/creative-marketplace/internal/pkg/apperror"
	"github.com/ignatzorin/creative-marketplace/internal/repository/common"
)

type InterestRepositoryAdapter struct {
	db *sqlx.DB
}

func NewInterestRepositoryAdapter(db *sqlx.DB) *InterestRepositoryAdapter {
	return &InterestRepositoryAdapter{db: db}
}

// ReplaceForUser удаляет старые интересы и вставляет новые в одной транзакции.
// Вставка через SELECT по subcategories повторно отсекает удалённые подкатегории.
func (r *InterestRepositoryAdapter) ReplaceForUser(ctx context.Context, userID int64, subcategoryIDs []int64) error {
	err := common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM user_interests WHERE user_id = $1`, userID); err != nil {
			return err
		}
		if len(subcategoryIDs) == 0 {
			return nil
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO user_interests (user_id, sub_category_id)
			SELECT $1::bigint, id FROM subcategories WHERE id = ANY($2::bigint[])
			ON CONFLICT (user_id, sub_category_id) DO NOTHING
		`, userID, pq.Array(subcategoryIDs))
		return err
	})
	if err != nil {
		if common.IsForeignKeyViolation(err) {
			return apperror.ErrUserNotFound
		}
		return apperror.Database(err, "failed to save interests")
	}
	return nil
}

func (r *InterestRepositoryAdapter) SubcategoryIDsByUser(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	query := `SELECT sub_category_id FROM user_interests WHERE user_id = $1 ORDER BY sub_category_id`
	if err := r.db.SelectContext(ctx, &ids, query, userID); err != nil {
		return nil, apperror.Database(err, "failed to load interests")
	}
	return ids, nil
}

type SubcategoryRepositoryAdapter struct {
	db *sqlx.DB
}

func NewSubcategoryRepositoryAdapter(db *sqlx.DB) *SubcategoryRepositoryAdapter {
	return &SubcategoryRepositoryAdapter{db: db}
}

func (r *SubcategoryRepositoryAdapter) ExistingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return []int64{}, nil
	}
	var existing []int64
	query := `SELECT id FROM subcategories WHERE id = ANY($1) ORDER BY id`
	if err := r.db.SelectContext(ctx, &existing, query, pq.Array(ids)); err != nil {
		return nil, apperror.Database(err, "failed to load subcategories")
	}
	return existing, nil
}
