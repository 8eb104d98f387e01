package dto

import (
	"time"

	"github.com/ignatzorin/creative-marketplace/internal/domain/entity"
)

type SendChatMessageRequest struct {
	Sender  int64  `json:"sender" binding:"required,gt=0"`
	Message string `json:"message" binding:"required"`
}

type ChatMessageResponse struct {
	ID        int64     `json:"id"`
	Booking   int64     `json:"booking"`
	Sender    int64     `json:"sender"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func ToChatMessageResponse(m *entity.ChatMessage) ChatMessageResponse {
	return ChatMessageResponse{
		ID:        m.ID,
		Booking:   m.BookingID,
		Sender:    m.SenderID,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

func ToChatMessageResponses(messages []*entity.ChatMessage) []ChatMessageResponse {
	result := make([]ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		result = append(result, ToChatMessageResponse(m))
	}
	return result
}
