package persistence

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/creative-marketplace/internal/domain/entity"
	"github.com/ignatzorin/creative-marketplace/internal/pkg/apperror"
)

type ChatRepositoryAdapter struct {
	db *sqlx.DB
}

func NewChatRepositoryAdapter(db *sqlx.DB) *ChatRepositoryAdapter {
	return &ChatRepositoryAdapter{db: db}
}

func (r *ChatRepositoryAdapter) Create(ctx context.Context, msg *entity.ChatMessage) error {
	query := `
		INSERT INTO chat_messages (booking_id, sender_id, message, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	if err := r.db.GetContext(ctx, &msg.ID, query, msg.BookingID, msg.SenderID, msg.Message, msg.CreatedAt); err != nil {
		return apperror.Database(err, "failed to save message")
	}
	return nil
}

func (r *ChatRepositoryAdapter) FindByBookingID(ctx context.Context, bookingID int64) ([]*entity.ChatMessage, error) {
	var rows []chatMessageRow
	query := `
		SELECT id, booking_id, sender_id, message, created_at
		FROM chat_messages WHERE booking_id = $1
		ORDER BY created_at, id
	`
	if err := r.db.SelectContext(ctx, &rows, query, bookingID); err != nil {
		return nil, apperror.Database(err, "failed to load messages")
	}

	messages := make([]*entity.ChatMessage, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, &entity.ChatMessage{
			ID:        row.ID,
			BookingID: row.BookingID,
			SenderID:  row.SenderID,
			Message:   row.Message,
			CreatedAt: row.CreatedAt,
		})
	}
	return messages, nil
}

type chatMessageRow struct {
	ID        int64     `db:"id"`
	BookingID int64     `db:"booking_id"`
	SenderID  int64     `db:"sender_id"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}
