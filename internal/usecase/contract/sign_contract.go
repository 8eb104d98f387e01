package contract

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/creative-marketplace/internal/domain/repository"
	"github.com/ignatzorin/creative-marketplace/internal/domain/valueobject"
	"github.com/ignatzorin/creative-marketplace/internal/logger"
	"github.com/ignatzorin/creative-marketplace/internal/metrics"
	"github.com/ignatzorin/creative-marketplace/internal/pkg/apperror"
	"github.com/ignatzorin/creative-marketplace/internal/pkg/clock"
)

type SignContractUseCase struct {
	contractRepo repository.ContractRepository
	clock        clock.Clock
}

func NewSignContractUseCase(contractRepo repository.ContractRepository, clk clock.Clock) *SignContractUseCase {
	return &SignContractUseCase{
		contractRepo: contractRepo,
		clock:        clk,
	}
}

// Execute ставит подпись стороны role. Неизвестная роль не ошибка: договор не меняется.
// Личность вызывающего не проверяется.
func (uc *SignContractUseCase) Execute(ctx context.Context, contractID int64, role string) error {
	contract, err := uc.contractRepo.FindByID(ctx, contractID)
	if err != nil {
		return err
	}
	if contract == nil {
		return apperror.ErrContractNotFound
	}

	log := logger.WithComponent("contract").WithFields(logrus.Fields{
		"contract_id": contractID,
		"role":        role,
	})

	signer, ok := valueobject.ParseSignerRole(role)
	if !ok {
		metrics.ContractsSigned.WithLabelValues("ignored").Inc()
		log.Warn("неизвестная роль подписанта, подпись пропущена")
		return nil
	}

	contract.Sign(signer, uc.clock.Now())

	if err := uc.contractRepo.SaveSignature(ctx, contract, signer); err != nil {
		return err
	}

	metrics.ContractsSigned.WithLabelValues(string(signer)).Inc()
	log.WithField("state", contract.State()).Info("договор подписан")
	return nil
}
