package ws

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/creative-marketplace/internal/goroutine"
	"github.com/ignatzorin/creative-marketplace/internal/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 * 1024
)

// Client обслуживает одно WebSocket подключение к чату бронирования.
type Client struct {
	id        uuid.UUID
	conn      *websocket.Conn
	hub       *Hub
	bookingID int64
	userID    int64
	send      chan []byte
	closeOnce sync.Once
}

// NewClient создаёт клиента. userID равен 0 для анонимного подписчика.
func NewClient(conn *websocket.Conn, hub *Hub, bookingID, userID int64) *Client {
	return &Client{
		id:        uuid.New(),
		conn:      conn,
		hub:       hub,
		bookingID: bookingID,
		userID:    userID,
		send:      make(chan []byte, 16),
	}
}

func (c *Client) ID() uuid.UUID {
	return c.id
}

// Run блокируется до закрытия соединения.
func (c *Client) Run(ctx context.Context) {
	c.log().Debug("подписчик чата подключён")
	goroutine.Go("ws-write-pump", c.writePump)
	c.readPump(ctx)
}

func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.hub.Unregister(c)
		if c.conn != nil {
			_ = c.conn.Close()
		}
	})
}

func (c *Client) log() *logrus.Entry {
	return logger.WithComponent("ws").WithFields(logrus.Fields{
		"client_id":  c.id,
		"booking_id": c.bookingID,
		"user_id":    c.userID,
	})
}

// readPump только поддерживает соединение: входящие сообщения отбрасываются,
// отправка идёт через POST chat/<booking_id>/send/.
func (c *Client) readPump(ctx context.Context) {
	defer c.Close()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if ctx.Err() != nil {
			return
		}
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log().WithError(err).Warn("соединение закрыто неожиданно")
			}
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
