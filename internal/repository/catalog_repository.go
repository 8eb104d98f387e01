package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/creative-marketplace/internal/models"
	"github.com/ignatzorin/creative-marketplace/internal/pkg/apperror"
	"github.com/ignatzorin/creative-marketplace/internal/repository/common"
)

// CatalogRepository читает отрасли и подкатегории.
type CatalogRepository struct {
	db *sqlx.DB
}

func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ListIndustries возвращает отрасли, у которых имя отрасли или любой подкатегории
// содержит search. Подкатегории заполняются все, а не только совпавшие.
func (r *CatalogRepository) ListIndustries(ctx context.Context, search string) ([]models.IndustryCategory, error) {
	var where common.Where
	where.Search(search, "ic.name", "s.name")

	industries := []models.IndustryCategory{}
	query := `
		SELECT DISTINCT ic.id, ic.name, ic.description
		FROM industry_categories ic
		LEFT JOIN subcategories s ON s.industry_id = ic.id` + where.SQL() + `
		ORDER BY ic.id
	`
	if err := r.db.SelectContext(ctx, &industries, query, where.Args()...); err != nil {
		return nil, apperror.Database(err, "failed to load industries")
	}
	if len(industries) == 0 {
		return industries, nil
	}

	subcategories, err := r.ListSubcategories(ctx, 0, "")
	if err != nil {
		return nil, err
	}
	byIndustry := make(map[int64][]models.SubCategory)
	for _, s := range subcategories {
		byIndustry[s.IndustryID] = append(byIndustry[s.IndustryID], s)
	}
	for i := range industries {
		industries[i].Subcategories = byIndustry[industries[i].ID]
		if industries[i].Subcategories == nil {
			industries[i].Subcategories = []models.SubCategory{}
		}
	}
	return industries, nil
}

func (r *CatalogRepository) ListSubcategories(ctx context.Context, industryID int64, search string) ([]models.SubCategory, error) {
	var where common.Where
	if industryID > 0 {
		where.Add("s.industry_id = ?", industryID)
	}
	where.Search(search, "s.name")

	subcategories := []models.SubCategory{}
	query := `
		SELECT s.id, s.industry_id, ic.name AS industry_name, s.name
		FROM subcategories s
		JOIN industry_categories ic ON ic.id = s.industry_id` + where.SQL() + `
		ORDER BY s.id
	`
	if err := r.db.SelectContext(ctx, &subcategories, query, where.Args()...); err != nil {
		return nil, apperror.Database(err, "failed to load subcategories")
	}
	return subcategories, nil
}
