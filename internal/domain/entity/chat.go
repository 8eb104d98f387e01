package entity

import (
	"strings"
	"time"

	"github.com/ignatzorin/creative-marketplace/internal/pkg/apperror"
)

const maxChatMessageLength = 5000

type ChatMessage struct {
	ID        int64
	BookingID int64
	SenderID  int64
	Message   string
	CreatedAt time.Time
}

func NewChatMessage(bookingID, senderID int64, text string, now time.Time) (*ChatMessage, error) {
	text = strings.TrimSpace(text)
	if senderID <= 0 {
		return nil, apperror.Validation("sender is required")
	}
	if text == "" {
		return nil, apperror.Validation("message must not be empty")
	}
	if len([]rune(text)) > maxChatMessageLength {
		return nil, apperror.Validation("message is too long")
	}

	return &ChatMessage{
		BookingID: bookingID,
		SenderID:  senderID,
		Message:   text,
		CreatedAt: now,
	}, nil
}
