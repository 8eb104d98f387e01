package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/creative-marketplace/internal/models"
	"github.com/ignatzorin/creative-marketplace/internal/pkg/apperror"
	"github.com/ignatzorin/creative-marketplace/internal/repository/common"
)

const creativeProfileSelect = `
	SELECT cp.id, cp.user_id, u.username, u.first_name, u.last_name,
	       cp.sub_category_id, s.name AS sub_category_name, ic.name AS industry_name,
	       cp.bio, cp.hourly_rate, cp.portfolio_url, cp.is_verified, cp.created_at
	FROM creative_profiles cp
	JOIN users u ON u.id = cp.user_id
	LEFT JOIN subcategories s ON s.id = cp.sub_category_id
	LEFT JOIN industry_categories ic ON ic.id = s.industry_id`

// CreativeRepository работает с профилями исполнителей.
type CreativeRepository struct {
	db *sqlx.DB
}

func NewCreativeRepository(db *sqlx.DB) *CreativeRepository {
	return &CreativeRepository{db: db}
}

// CreativeFilter: Verified == nil не фильтрует по верификации.
type CreativeFilter struct {
	Verified      *bool
	SubCategoryID int64
	Search        string
}

func (r *CreativeRepository) List(ctx context.Context, filter CreativeFilter) ([]models.CreativeProfile, error) {
	var where common.Where
	if filter.Verified != nil {
		where.Add("cp.is_verified = ?", *filter.Verified)
	}
	if filter.SubCategoryID > 0 {
		where.Add("cp.sub_category_id = ?", filter.SubCategoryID)
	}
	where.Search(filter.Search, "u.username", "u.first_name", "u.last_name", "s.name", "ic.name")

	profiles := []models.CreativeProfile{}
	query := creativeProfileSelect + where.SQL() + ` ORDER BY cp.id`
	if err := r.db.SelectContext(ctx, &profiles, query, where.Args()...); err != nil {
		return nil, apperror.Database(err, "failed to load creatives")
	}
	return profiles, nil
}

func (r *CreativeRepository) GetByID(ctx context.Context, id int64) (*models.CreativeProfile, error) {
	return r.getOne(ctx, ` WHERE cp.id = $1`, id)
}

func (r *CreativeRepository) GetByUserID(ctx context.Context, userID int64) (*models.CreativeProfile, error) {
	return r.getOne(ctx, ` WHERE cp.user_id = $1`, userID)
}

func (r *CreativeRepository) getOne(ctx context.Context, where string, arg int64) (*models.CreativeProfile, error) {
	var profile models.CreativeProfile
	if err := r.db.GetContext(ctx, &profile, creativeProfileSelect+where, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrProfileNotFound
		}
		return nil, apperror.Database(err, "failed to load creative profile")
	}
	return &profile, nil
}

// Create вставляет профиль. Повторный профиль того же пользователя даёт ErrProfileExists.
func (r *CreativeRepository) Create(ctx context.Context, profile *models.CreativeProfile) error {
	query := `
		INSERT INTO creative_profiles (user_id, sub_category_id, bio, hourly_rate, portfolio_url, is_verified)
		VALUES ($1, $2, $3, $4, $5, FALSE)
		RETURNING id
	`
	err := r.db.GetContext(ctx, &profile.ID, query,
		profile.UserID, profile.SubCategoryID, profile.Bio, profile.HourlyRate, profile.PortfolioURL,
	)
	switch {
	case err == nil:
	case common.IsUniqueViolation(err, ""):
		return apperror.ErrProfileExists
	case common.IsForeignKeyViolation(err):
		return apperror.Validation("user or sub_category does not exist")
	default:
		return apperror.Database(err, "failed to create creative profile")
	}

	stored, err := r.GetByID(ctx, profile.ID)
	if err != nil {
		return err
	}
	*profile = *stored
	return nil
}

func (r *CreativeRepository) SetVerified(ctx context.Context, id int64, verified bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE creative_profiles SET is_verified = $2 WHERE id = $1`, id, verified)
	if err != nil {
		return apperror.Database(err, "failed to update creative profile")
	}
	return requireAffected(res, apperror.ErrProfileNotFound)
}
