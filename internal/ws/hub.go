package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/ignatzorin/creative-marketplace/internal/goroutine"
	"github.com/ignatzorin/creative-marketplace/internal/logger"
)

// Hub держит подписчиков чатов, сгруппированных по бронированию.
type Hub struct {
	mu         sync.RWMutex
	clients    map[int64]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan message
	done       chan struct{}
}

type message struct {
	bookingID int64
	payload   []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[int64]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan message, 32),
		done:       make(chan struct{}),
	}
}

// Run обрабатывает регистрации и рассылку до отмены ctx.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case msg := <-h.broadcast:
			h.send(msg.bookingID, msg.payload)
		}
	}
}

// Register возвращает false, если хаб уже остановлен.
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// BroadcastToBooking отправляет событие всем подписчикам чата бронирования.
// Формат: {"type": event, "data": data}.
func (h *Hub) BroadcastToBooking(bookingID int64, event string, data any) error {
	raw, err := json.Marshal(map[string]any{
		"type": event,
		"data": data,
	})
	if err != nil {
		return fmt.Errorf("ws: marshal message: %w", err)
	}

	select {
	case <-h.done:
		return fmt.Errorf("ws: hub stopped")
	default:
	}

	select {
	case h.broadcast <- message{bookingID: bookingID, payload: raw}:
		return nil
	case <-h.done:
		return fmt.Errorf("ws: hub stopped")
	}
}

// ClientCount возвращает число подписчиков бронирования.
func (h *Hub) ClientCount(bookingID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[bookingID])
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.bookingID]; !ok {
		h.clients[client.bookingID] = make(map[*Client]struct{})
	}
	h.clients[client.bookingID][client] = struct{}{}
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.clients[client.bookingID]; ok {
		if _, ok := clients[client]; ok {
			delete(clients, client)
			close(client.send)
		}
		if len(clients) == 0 {
			delete(h.clients, client.bookingID)
		}
	}
}

func (h *Hub) send(bookingID int64, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients[bookingID] {
		select {
		case client.send <- payload:
		default:
			// Медленный клиент: отключаем, не блокируя остальных.
			logger.WithComponent("ws").WithField("client_id", client.id).Warn("буфер клиента переполнен, соединение закрывается")
			goroutine.Go("ws-close-slow-client", client.Close)
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for bookingID, clients := range h.clients {
		for client := range clients {
			close(client.send)
		}
		delete(h.clients, bookingID)
	}
}
