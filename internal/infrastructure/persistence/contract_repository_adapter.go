package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/creative-marketplace/internal/domain/entity"
	"github.com/ignatzorin/creative-marketplace/internal/domain/valueobject"
	"github.com/ignatzorin/creative-marketplace/internal/pkg/apperror"
	"github.com/ignatzorin/creative-marketplace/internal/repository/common"
)

const contractColumns = `id, booking_id, body_text, is_client_signed, client_signed_at,
	is_creative_signed, creative_signed_at, created_at`

type BookingRepositoryAdapter struct {
	db *sqlx.DB
}

func NewBookingRepositoryAdapter(db *sqlx.DB) *BookingRepositoryAdapter {
	return &BookingRepositoryAdapter{db: db}
}

func (r *BookingRepositoryAdapter) FindParties(ctx context.Context, bookingID int64) (*entity.BookingParties, error) {
	var row bookingPartiesRow
	query := `
		SELECT b.id, b.booking_date, b.client_id, cu.username AS client_username,
		       cp.user_id AS creative_user_id, pu.username AS creative_username, cp.hourly_rate
		FROM bookings b
		JOIN users cu ON cu.id = b.client_id
		JOIN creative_profiles cp ON cp.id = b.creative_id
		JOIN users pu ON pu.id = cp.user_id
		WHERE b.id = $1
	`
	if err := r.db.GetContext(ctx, &row, query, bookingID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.Database(err, "failed to load booking")
	}
	return &entity.BookingParties{
		BookingID:        row.ID,
		BookingDate:      row.BookingDate,
		ClientID:         row.ClientID,
		ClientUsername:   row.ClientUsername,
		CreativeUserID:   row.CreativeUserID,
		CreativeUsername: row.CreativeUsername,
		HourlyRate:       row.HourlyRate,
	}, nil
}

type bookingPartiesRow struct {
	ID               int64     `db:"id"`
	BookingDate      time.Time `db:"booking_date"`
	ClientID         int64     `db:"client_id"`
	ClientUsername   string    `db:"client_username"`
	CreativeUserID   int64     `db:"creative_user_id"`
	CreativeUsername string    `db:"creative_username"`
	HourlyRate       float64   `db:"hourly_rate"`
}

type ContractRepositoryAdapter struct {
	db *sqlx.DB
}

func NewContractRepositoryAdapter(db *sqlx.DB) *ContractRepositoryAdapter {
	return &ContractRepositoryAdapter{db: db}
}

func (r *ContractRepositoryAdapter) FindByID(ctx context.Context, id int64) (*entity.Contract, error) {
	return r.findOne(ctx, `SELECT `+contractColumns+` FROM contracts WHERE id = $1`, id)
}

func (r *ContractRepositoryAdapter) FindByBookingID(ctx context.Context, bookingID int64) (*entity.Contract, error) {
	return r.findOne(ctx, `SELECT `+contractColumns+` FROM contracts WHERE booking_id = $1`, bookingID)
}

func (r *ContractRepositoryAdapter) findOne(ctx context.Context, query string, arg int64) (*entity.Contract, error) {
	var row contractRow
	if err := r.db.GetContext(ctx, &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.Database(err, "failed to load contract")
	}
	return row.toEntity(), nil
}

// CreateOnce полагается на UNIQUE (booking_id): проигравший гонку получает договор победителя.
func (r *ContractRepositoryAdapter) CreateOnce(ctx context.Context, contract *entity.Contract) (*entity.Contract, bool, error) {
	var row contractRow
	query := `
		INSERT INTO contracts (booking_id, body_text, is_client_signed, is_creative_signed, created_at)
		VALUES ($1, $2, FALSE, FALSE, $3)
		ON CONFLICT (booking_id) DO NOTHING
		RETURNING ` + contractColumns
	err := r.db.GetContext(ctx, &row, query, contract.BookingID, contract.BodyText, contract.CreatedAt)
	switch {
	case err == nil:
		return row.toEntity(), true, nil
	case errors.Is(err, sql.ErrNoRows), common.IsUniqueViolation(err, "contracts_booking_id_key"):
		existing, findErr := r.FindByBookingID(ctx, contract.BookingID)
		if findErr != nil {
			return nil, false, findErr
		}
		if existing == nil {
			return nil, false, apperror.Database(err, "failed to create contract")
		}
		return existing, false, nil
	case common.IsForeignKeyViolation(err):
		return nil, false, apperror.ErrBookingNotFound
	default:
		return nil, false, apperror.Database(err, "failed to create contract")
	}
}

// SaveSignature обновляет только колонки подписавшей стороны.
func (r *ContractRepositoryAdapter) SaveSignature(ctx context.Context, contract *entity.Contract, role valueobject.SignerRole) error {
	var (
		query string
		args  []any
	)
	switch role {
	case valueobject.SignerRoleClient:
		query = `UPDATE contracts SET is_client_signed = $2, client_signed_at = $3 WHERE id = $1`
		args = []any{contract.ID, contract.IsClientSigned, contract.ClientSignedAt}
	case valueobject.SignerRoleCreative:
		query = `UPDATE contracts SET is_creative_signed = $2, creative_signed_at = $3 WHERE id = $1`
		args = []any{contract.ID, contract.IsCreativeSigned, contract.CreativeSignedAt}
	default:
		return apperror.Validation("unknown signer role")
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return apperror.Database(err, "failed to sign contract")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperror.ErrContractNotFound
	}
	return nil
}

type contractRow struct {
	ID               int64      `db:"id"`
	BookingID        int64      `db:"booking_id"`
	BodyText         string     `db:"body_text"`
	IsClientSigned   bool       `db:"is_client_signed"`
	ClientSignedAt   *time.Time `db:"client_signed_at"`
	IsCreativeSigned bool       `db:"is_creative_signed"`
	CreativeSignedAt *time.Time `db:"creative_signed_at"`
	CreatedAt        time.Time  `db:"created_at"`
}

func (r *contractRow) toEntity() *entity.Contract {
	return &entity.Contract{
		ID:               r.ID,
		BookingID:        r.BookingID,
		BodyText:         r.BodyText,
		IsClientSigned:   r.IsClientSigned,
		ClientSignedAt:   r.ClientSignedAt,
		IsCreativeSigned: r.IsCreativeSigned,
		CreativeSignedAt: r.CreativeSignedAt,
		CreatedAt:        r.CreatedAt,
	}
}
