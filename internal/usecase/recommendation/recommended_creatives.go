package recommendation

import (
	"context"

	"github.com/ignatzorin/creative-marketplace/internal/domain/entity"
	"github.com/ignatzorin/creative-marketplace/internal/domain/repository"
	"github.com/ignatzorin/creative-marketplace/internal/metrics"
)

type RecommendedCreativesUseCase struct {
	interestRepo repository.InterestRepository
	creativeRepo repository.CreativeRepository
}

func NewRecommendedCreativesUseCase(interestRepo repository.InterestRepository, creativeRepo repository.CreativeRepository) *RecommendedCreativesUseCase {
	return &RecommendedCreativesUseCase{
		interestRepo: interestRepo,
		creativeRepo: creativeRepo,
	}
}

// Execute возвращает профили из интересующих пользователя подкатегорий, кроме его собственного.
// Фильтр по верификации здесь намеренно не применяется.
func (uc *RecommendedCreativesUseCase) Execute(ctx context.Context, userID int64) ([]*entity.CreativeProfile, error) {
	result := []*entity.CreativeProfile{}
	if userID <= 0 {
		return result, nil
	}

	subcategoryIDs, err := uc.interestRepo.SubcategoryIDsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(subcategoryIDs) == 0 {
		metrics.RecommendationsServed.Observe(0)
		return result, nil
	}

	profiles, err := uc.creativeRepo.FindBySubcategories(ctx, subcategoryIDs, userID)
	if err != nil {
		return nil, err
	}

	for _, p := range profiles {
		if p.IsOwnedBy(userID) {
			continue
		}
		result = append(result, p)
	}

	metrics.RecommendationsServed.Observe(float64(len(result)))
	return result, nil
}
