package repository

import (
	"context"

	"github.com/ignatzorin/creative-marketplace/internal/domain/entity"
	"github.com/ignatzorin/creative-marketplace/internal/domain/valueobject"
)

type BookingRepository interface {
	// FindParties возвращает nil, nil если бронирования нет.
	FindParties(ctx context.Context, bookingID int64) (*entity.BookingParties, error)
}

type ContractRepository interface {
	// FindByID возвращает nil, nil если контракта нет.
	FindByID(ctx context.Context, id int64) (*entity.Contract, error)
	// FindByBookingID возвращает nil, nil если контракта ещё нет.
	FindByBookingID(ctx context.Context, bookingID int64) (*entity.Contract, error)
	// CreateOnce вставляет контракт, если у бронирования его ещё нет.
	// При гонке возвращает уже существующий контракт и created=false.
	CreateOnce(ctx context.Context, contract *entity.Contract) (stored *entity.Contract, created bool, err error)
	// SaveSignature сохраняет только поля подписи указанной стороны.
	SaveSignature(ctx context.Context, contract *entity.Contract, role valueobject.SignerRole) error
}
