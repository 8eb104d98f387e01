package repository

import (
	"context"

	"github.com/ignatzorin/creative-marketplace/internal/domain/entity"
)

type InterestRepository interface {
	// ReplaceForUser атомарно заменяет весь набор интересов пользователя.
	ReplaceForUser(ctx context.Context, userID int64, subcategoryIDs []int64) error
	SubcategoryIDsByUser(ctx context.Context, userID int64) ([]int64, error)
}

type SubcategoryRepository interface {
	// ExistingIDs возвращает подмножество ids, которые есть в каталоге.
	ExistingIDs(ctx context.Context, ids []int64) ([]int64, error)
}

type CreativeRepository interface {
	FindBySubcategories(ctx context.Context, subcategoryIDs []int64, excludeUserID int64) ([]*entity.CreativeProfile, error)
}
