package persistence

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/ignatzorin/creative-marketplace/internal/domain/entity"
	"github.com/ignatzorin/creative-marketplace/internal/pkg/apperror"
)

type CreativeRepositoryAdapter struct {
	db *sqlx.DB
}

func NewCreativeRepositoryAdapter(db *sqlx.DB) *CreativeRepositoryAdapter {
	return &CreativeRepositoryAdapter{db: db}
}

// FindBySubcategories не фильтрует по is_verified: рекомендации показывают и непроверенных.
func (r *CreativeRepositoryAdapter) FindBySubcategories(ctx context.Context, subcategoryIDs []int64, excludeUserID int64) ([]*entity.CreativeProfile, error) {
	if len(subcategoryIDs) == 0 {
		return []*entity.CreativeProfile{}, nil
	}

	var rows []creativeProfileRow
	query := `
		SELECT cp.id, cp.user_id, u.username, u.first_name, u.last_name,
		       cp.sub_category_id, s.name AS sub_category_name, ic.name AS industry_name,
		       cp.bio, cp.hourly_rate, cp.portfolio_url, cp.is_verified, cp.created_at
		FROM creative_profiles cp
		JOIN users u ON u.id = cp.user_id
		LEFT JOIN subcategories s ON s.id = cp.sub_category_id
		LEFT JOIN industry_categories ic ON ic.id = s.industry_id
		WHERE cp.sub_category_id = ANY($1) AND cp.user_id <> $2
		ORDER BY cp.id
	`
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(subcategoryIDs), excludeUserID); err != nil {
		return nil, apperror.Database(err, "failed to load creatives")
	}

	profiles := make([]*entity.CreativeProfile, 0, len(rows))
	for i := range rows {
		profiles = append(profiles, rows[i].toEntity())
	}
	return profiles, nil
}

type creativeProfileRow struct {
	ID              int64     `db:"id"`
	UserID          int64     `db:"user_id"`
	Username        string    `db:"username"`
	FirstName       string    `db:"first_name"`
	LastName        string    `db:"last_name"`
	SubCategoryID   *int64    `db:"sub_category_id"`
	SubCategoryName *string   `db:"sub_category_name"`
	IndustryName    *string   `db:"industry_name"`
	Bio             string    `db:"bio"`
	HourlyRate      float64   `db:"hourly_rate"`
	PortfolioURL    string    `db:"portfolio_url"`
	IsVerified      bool      `db:"is_verified"`
	CreatedAt       time.Time `db:"created_at"`
}

func (r *creativeProfileRow) toEntity() *entity.CreativeProfile {
	return &entity.CreativeProfile{
		ID:              r.ID,
		UserID:          r.UserID,
		Username:        r.Username,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		SubCategoryID:   r.SubCategoryID,
		SubCategoryName: r.SubCategoryName,
		IndustryName:    r.IndustryName,
		Bio:             r.Bio,
		HourlyRate:      r.HourlyRate,
		PortfolioURL:    r.PortfolioURL,
		IsVerified:      r.IsVerified,
		CreatedAt:       r.CreatedAt,
	}
}
