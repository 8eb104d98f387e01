package service

import (
	"context"
	"strings"

	"github.com/ignatzorin/creative-marketplace/internal/domain/valueobject"
	"github.com/ignatzorin/creative-marketplace/internal/models"
	"github.com/ignatzorin/creative-marketplace/internal/pkg/apperror"
)

type BookingRepository interface {
	Create(ctx context.Context, b *models.Booking) error
	GetByID(ctx context.Context, id int64) (*models.Booking, error)
	List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)
	Update(ctx context.Context, b *models.Booking) error
	Delete(ctx context.Context, id int64) error
}

type BookingService struct {
	repo BookingRepository
}

func NewBookingService(repo BookingRepository) *BookingService {
	return &BookingService{repo: repo}
}

type CreateBookingInput struct {
	ClientID     int64
	CreativeID   int64
	BookingDate  models.Date
	Requirements string
}

func (s *BookingService) Create(ctx context.Context, in CreateBookingInput) (*models.Booking, error) {
	if in.ClientID <= 0 || in.CreativeID <= 0 {
		return nil, apperror.Validation("client and creative are required")
	}
	if in.BookingDate.IsZero() {
		return nil, apperror.Validation("booking_date is required")
	}

	booking := &models.Booking{
		ClientID:     in.ClientID,
		CreativeID:   in.CreativeID,
		BookingDate:  in.BookingDate,
		Requirements: strings.TrimSpace(in.Requirements),
		Status:       string(valueobject.BookingStatusPending),
	}
	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) Get(ctx context.Context, id int64) (*models.Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *BookingService) List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	return s.repo.List(ctx, filter)
}

// UpdateBookingInput: nil поля не меняются (PATCH); PUT передаёт все поля.
type UpdateBookingInput struct {
	BookingDate  *models.Date
	Requirements *string
	Status       *string
}

func (s *BookingService) Update(ctx context.Context, id int64, in UpdateBookingInput) (*models.Booking, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.BookingDate != nil {
		if in.BookingDate.IsZero() {
			return nil, apperror.Validation("booking_date is required")
		}
		booking.BookingDate = *in.BookingDate
	}
	if in.Requirements != nil {
		booking.Requirements = strings.TrimSpace(*in.Requirements)
	}
	if in.Status != nil {
		status, err := valueobject.NewBookingStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		booking.Status = string(status)
	}

	if err := s.repo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
