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

const bookingSelect = `
	SELECT b.id, b.client_id, cu.username AS client_username, b.creative_id,
	       pu.username AS creative_username, b.booking_date, b.requirements, b.status, b.created_at
	FROM bookings b
	JOIN users cu ON cu.id = b.client_id
	JOIN creative_profiles cp ON cp.id = b.creative_id
	JOIN users pu ON pu.id = cp.user_id
	LEFT JOIN subcategories s ON s.id = cp.sub_category_id
	LEFT JOIN industry_categories ic ON ic.id = s.industry_id`

// BookingRepository хранит бронирования.
type BookingRepository struct {
	db *sqlx.DB
}

func NewBookingRepository(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *models.Booking) error {
	query := `
		INSERT INTO bookings (client_id, creative_id, booking_date, requirements, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	if err := r.db.GetContext(ctx, &b.ID, query, b.ClientID, b.CreativeID, b.BookingDate, b.Requirements, b.Status); err != nil {
		if common.IsForeignKeyViolation(err) {
			return apperror.Validation("client or creative does not exist")
		}
		return apperror.Database(err, "failed to create booking")
	}
	return r.reload(ctx, b)
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.GetContext(ctx, &b, bookingSelect+` WHERE b.id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrBookingNotFound
		}
		return nil, apperror.Database(err, "failed to load booking")
	}
	return &b, nil
}

// List возвращает бронирования от новых к старым.
func (r *BookingRepository) List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	query, args := bookingListQuery(filter)
	bookings := []models.Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, apperror.Database(err, "failed to load bookings")
	}
	return bookings, nil
}

// bookingListQuery ищет по исполнителю и его рубрике.
func bookingListQuery(filter models.BookingFilter) (string, []any) {
	var where common.Where
	if filter.ClientID > 0 {
		where.Add("b.client_id = ?", filter.ClientID)
	}
	if filter.CreativeUserID > 0 {
		where.Add("cp.user_id = ?", filter.CreativeUserID)
	}
	where.Search(filter.Search, "pu.username", "pu.first_name", "pu.last_name", "s.name", "ic.name")

	return bookingSelect + where.SQL() + ` ORDER BY b.created_at DESC, b.id DESC`, where.Args()
}

func (r *BookingRepository) Update(ctx context.Context, b *models.Booking) error {
	query := `UPDATE bookings SET booking_date = $2, requirements = $3, status = $4 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, b.ID, b.BookingDate, b.Requirements, b.Status)
	if err != nil {
		return apperror.Database(err, "failed to update booking")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperror.ErrBookingNotFound
	}
	return r.reload(ctx, b)
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return apperror.Database(err, "failed to delete booking")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperror.ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepository) reload(ctx context.Context, b *models.Booking) error {
	stored, err := r.GetByID(ctx, b.ID)
	if err != nil {
		return err
	}
	*b = *stored
	return nil
}
