package recommendation

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/creative-marketplace/internal/domain/entity"
	"github.com/ignatzorin/creative-marketplace/internal/domain/repository"
	"github.com/ignatzorin/creative-marketplace/internal/logger"
	"github.com/ignatzorin/creative-marketplace/internal/metrics"
	"github.com/ignatzorin/creative-marketplace/internal/pkg/apperror"
)

type SaveInterestsInput struct {
	UserID         int64
	SubcategoryIDs []int64
}

type SaveInterestsUseCase struct {
	interestRepo    repository.InterestRepository
	subcategoryRepo repository.SubcategoryRepository
}

func NewSaveInterestsUseCase(interestRepo repository.InterestRepository, subcategoryRepo repository.SubcategoryRepository) *SaveInterestsUseCase {
	return &SaveInterestsUseCase{
		interestRepo:    interestRepo,
		subcategoryRepo: subcategoryRepo,
	}
}

// Execute полностью заменяет интересы пользователя. Несуществующие подкатегории
// отбрасываются без ошибки.
func (uc *SaveInterestsUseCase) Execute(ctx context.Context, input SaveInterestsInput) error {
	if input.UserID <= 0 {
		return apperror.ErrUserIDRequired
	}

	requested := entity.NormalizeSubcategoryIDs(input.SubcategoryIDs)

	existing := requested
	if len(requested) > 0 {
		var err error
		existing, err = uc.subcategoryRepo.ExistingIDs(ctx, requested)
		if err != nil {
			return err
		}
	}

	if err := uc.interestRepo.ReplaceForUser(ctx, input.UserID, existing); err != nil {
		return err
	}

	metrics.InterestsSaved.Inc()
	logger.WithComponent("recommendation").WithFields(logrus.Fields{
		"user_id":   input.UserID,
		"requested": len(input.SubcategoryIDs),
		"saved":     len(existing),
	}).Debug("интересы пользователя обновлены")

	return nil
}
