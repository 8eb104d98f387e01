package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/ignatzorin/creative-marketplace/internal/domain/entity"
	"github.com/ignatzorin/creative-marketplace/internal/domain/repository"
	"github.com/ignatzorin/creative-marketplace/internal/interface/http/dto"
	"github.com/ignatzorin/creative-marketplace/internal/interface/http/response"
	"github.com/ignatzorin/creative-marketplace/internal/logger"
	"github.com/ignatzorin/creative-marketplace/internal/pkg/apperror"
	"github.com/ignatzorin/creative-marketplace/internal/usecase/chat"
	"github.com/ignatzorin/creative-marketplace/internal/ws"
)

const chatMessageEvent = "chat_message"

// HubPublisher рассылает сохранённые сообщения подписчикам чата через ws.Hub.
type HubPublisher struct {
	hub *ws.Hub
}

func NewHubPublisher(hub *ws.Hub) *HubPublisher {
	return &HubPublisher{hub: hub}
}

func (p *HubPublisher) PublishMessage(msg *entity.ChatMessage) error {
	return p.hub.BroadcastToBooking(msg.BookingID, chatMessageEvent, dto.ToChatMessageResponse(msg))
}

// TokenParser проверяет access токен и возвращает id пользователя.
type TokenParser interface {
	Parse(token string) (int64, string, error)
}

type ChatHandler struct {
	sendUC      *chat.SendMessageUseCase
	listUC      *chat.ListMessagesUseCase
	bookingRepo repository.BookingRepository
	hub         *ws.Hub
	tokens      TokenParser
	upgrader    websocket.Upgrader
}

func NewChatHandler(
	sendUC *chat.SendMessageUseCase,
	listUC *chat.ListMessagesUseCase,
	bookingRepo repository.BookingRepository,
	hub *ws.Hub,
	tokens TokenParser,
	allowedOrigins []string,
) *ChatHandler {
	return &ChatHandler{
		sendUC:      sendUC,
		listUC:      listUC,
		bookingRepo: bookingRepo,
		hub:         hub,
		tokens:      tokens,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

// originChecker пропускает запросы без Origin (не браузер) и origins из списка.
// Пустой список разрешает всё.
func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || len(allowed) == 0 {
			return true
		}
		for _, o := range allowed {
			if o == origin {
				return true
			}
		}
		return false
	}
}

// ListMessages обрабатывает GET /api/chat/:booking_id/.
func (h *ChatHandler) ListMessages(c *gin.Context) {
	bookingID, ok := parseIDParam(c, "booking_id")
	if !ok {
		response.Error(c, apperror.ErrBookingNotFound)
		return
	}

	messages, err := h.listUC.Execute(c.Request.Context(), bookingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToChatMessageResponses(messages))
}

// SendMessage обрабатывает POST /api/chat/:booking_id/send/.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	bookingID, ok := parseIDParam(c, "booking_id")
	if !ok {
		response.Error(c, apperror.ErrBookingNotFound)
		return
	}

	var req dto.SendChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "sender and message are required")
		return
	}

	msg, err := h.sendUC.Execute(c.Request.Context(), chat.SendMessageInput{
		BookingID: bookingID,
		SenderID:  req.Sender,
		Message:   req.Message,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ToChatMessageResponse(msg))
}

// Subscribe обслуживает GET /api/ws/chat/:booking_id/?token=...
// Токен необязателен; если он передан, пользователь должен быть участником бронирования.
func (h *ChatHandler) Subscribe(c *gin.Context) {
	bookingID, ok := parseIDParam(c, "booking_id")
	if !ok {
		response.Error(c, apperror.ErrBookingNotFound)
		return
	}

	parties, err := h.bookingRepo.FindParties(c.Request.Context(), bookingID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if parties == nil {
		response.Error(c, apperror.ErrBookingNotFound)
		return
	}

	var userID int64
	if raw := c.Query("token"); raw != "" {
		userID, _, err = h.tokens.Parse(raw)
		if err != nil {
			response.Unauthorized(c, "Invalid token")
			return
		}
		if !parties.IsParticipant(userID) {
			response.Forbidden(c, "Only booking participants can join this chat")
			return
		}
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade уже записал ответ клиенту.
		logger.WithComponent("ws").WithError(err).Warn("не удалось установить websocket соединение")
		return
	}

	client := ws.NewClient(conn, h.hub, bookingID, userID)
	if !h.hub.Register(client) {
		_ = conn.Close()
		return
	}

	client.Run(c.Request.Context())
}
