package chat

import (
	"context"

	"github.com/ignatzorin/creative-marketplace/internal/domain/entity"
	"github.com/ignatzorin/creative-marketplace/internal/domain/repository"
	"github.com/ignatzorin/creative-marketplace/internal/logger"
	"github.com/ignatzorin/creative-marketplace/internal/metrics"
	"github.com/ignatzorin/creative-marketplace/internal/pkg/apperror"
	"github.com/ignatzorin/creative-marketplace/internal/pkg/clock"
)

// Publisher рассылает сохранённое сообщение подписчикам чата бронирования.
type Publisher interface {
	PublishMessage(msg *entity.ChatMessage) error
}

type SendMessageInput struct {
	BookingID int64
	SenderID  int64
	Message   string
}

type SendMessageUseCase struct {
	bookingRepo repository.BookingRepository
	chatRepo    repository.ChatRepository
	publisher   Publisher
	clock       clock.Clock
}

func NewSendMessageUseCase(bookingRepo repository.BookingRepository, chatRepo repository.ChatRepository, publisher Publisher, clk clock.Clock) *SendMessageUseCase {
	return &SendMessageUseCase{
		bookingRepo: bookingRepo,
		chatRepo:    chatRepo,
		publisher:   publisher,
		clock:       clk,
	}
}

func (uc *SendMessageUseCase) Execute(ctx context.Context, input SendMessageInput) (*entity.ChatMessage, error) {
	parties, err := uc.bookingRepo.FindParties(ctx, input.BookingID)
	if err != nil {
		return nil, err
	}
	if parties == nil {
		return nil, apperror.ErrBookingNotFound
	}

	if !parties.IsParticipant(input.SenderID) {
		return nil, apperror.ErrNotParticipant
	}

	msg, err := entity.NewChatMessage(input.BookingID, input.SenderID, input.Message, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := uc.chatRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	metrics.ChatMessagesSent.Inc()

	if uc.publisher != nil {
		// Сообщение уже сохранено, сбой рассылки не откатывает запрос.
		if err := uc.publisher.PublishMessage(msg); err != nil {
			logger.WithComponent("chat").WithError(err).WithField("booking_id", input.BookingID).Warn("не удалось разослать сообщение")
		}
	}

	return msg, nil
}

type ListMessagesUseCase struct {
	bookingRepo repository.BookingRepository
	chatRepo    repository.ChatRepository
}

func NewListMessagesUseCase(bookingRepo repository.BookingRepository, chatRepo repository.ChatRepository) *ListMessagesUseCase {
	return &ListMessagesUseCase{bookingRepo: bookingRepo, chatRepo: chatRepo}
}

// Execute возвращает сообщения бронирования от старых к новым.
func (uc *ListMessagesUseCase) Execute(ctx context.Context, bookingID int64) ([]*entity.ChatMessage, error) {
	parties, err := uc.bookingRepo.FindParties(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if parties == nil {
		return nil, apperror.ErrBookingNotFound
	}

	messages, err := uc.chatRepo.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []*entity.ChatMessage{}
	}
	return messages, nil
}
