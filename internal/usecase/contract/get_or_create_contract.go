package contract

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/creative-marketplace/internal/domain/entity"
	"github.com/ignatzorin/creative-marketplace/internal/domain/repository"
	"github.com/ignatzorin/creative-marketplace/internal/logger"
	"github.com/ignatzorin/creative-marketplace/internal/metrics"
	"github.com/ignatzorin/creative-marketplace/internal/pkg/apperror"
	"github.com/ignatzorin/creative-marketplace/internal/pkg/clock"
)

type GetOrCreateContractUseCase struct {
	bookingRepo  repository.BookingRepository
	contractRepo repository.ContractRepository
	clock        clock.Clock
}

func NewGetOrCreateContractUseCase(bookingRepo repository.BookingRepository, contractRepo repository.ContractRepository, clk clock.Clock) *GetOrCreateContractUseCase {
	return &GetOrCreateContractUseCase{
		bookingRepo:  bookingRepo,
		contractRepo: contractRepo,
		clock:        clk,
	}
}

// Execute возвращает договор бронирования, создавая его при первом обращении.
// Текст существующего договора не перегенерируется.
func (uc *GetOrCreateContractUseCase) Execute(ctx context.Context, bookingID int64) (*entity.Contract, error) {
	parties, err := uc.bookingRepo.FindParties(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if parties == nil {
		return nil, apperror.ErrBookingNotFound
	}

	existing, err := uc.contractRepo.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	body, err := RenderContractBody(ContractTerms{
		ClientUsername:   parties.ClientUsername,
		CreativeUsername: parties.CreativeUsername,
		BookingDate:      parties.BookingDate,
		HourlyRate:       parties.HourlyRate,
	})
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "failed to generate contract")
	}

	draft, err := entity.NewContract(bookingID, body, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	stored, created, err := uc.contractRepo.CreateOnce(ctx, draft)
	if err != nil {
		return nil, err
	}

	if created {
		metrics.ContractsCreated.Inc()
		logger.WithComponent("contract").WithFields(logrus.Fields{
			"contract_id": stored.ID,
			"booking_id":  bookingID,
		}).Info("договор создан")
	}

	return stored, nil
}
