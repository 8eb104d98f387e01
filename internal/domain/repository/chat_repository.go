package repository

import (
	"context"

	"github.com/ignatzorin/creative-marketplace/internal/domain/entity"
)

type ChatRepository interface {
	Create(ctx context.Context, msg *entity.ChatMessage) error
	FindByBookingID(ctx context.Context, bookingID int64) ([]*entity.ChatMessage, error)
}
