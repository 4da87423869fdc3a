package realtime

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	writeWait      = 10 * time.Second
	pingPeriod     = 25 * time.Second
	pongWait       = 60 * time.Second
	maxMessageSize = 16 * 1024
	sendBuffer     = 64
)

// Client é uma conexão WebSocket de um usuário; só writePump escreve no socket
type Client struct {
	id     string
	hub    *Hub
	conn   *websocket.Conn
	userID int
	send   chan []byte

	closeOnce sync.Once
	done      chan struct{}
}

func newClient(hub *Hub, conn *websocket.Conn, userID int) *Client {
	return &Client{
		id:     uuid.New().String(),
		hub:    hub,
		conn:   conn,
		userID: userID,
		send:   make(chan []byte, sendBuffer),
		done:   make(chan struct{}),
	}
}

func (c *Client) enqueue(payload []byte) bool {
	select {
	case <-c.done:
		return true
	default:
	}

	select {
	case c.send <- payload:
		return true
	default:
		return false
	}
}

func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.conn.Close()
	})
}

func (c *Client) sendEvent(event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	c.enqueue(payload)
}

func (c *Client) readPump(ctx context.Context, handler InboundHandler) {
	defer c.hub.unregister(c)

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logrus.WithError(err).WithField("user_id", c.userID).Debug("WebSocket encerrado inesperadamente")
			}
			return
		}

		var event InboundEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			c.sendEvent(Event{Type: EventError, Data: ErrorData{Message: "evento inválido"}})
			continue
		}

		if event.Type == EventPing {
			c.sendEvent(Event{Type: EventPong})
			continue
		}

		if handler == nil {
			continue
		}

		if err := handler.HandleInbound(ctx, c.userID, event); err != nil {
			data := ErrorData{Message: err.Error()}
			var coded interface{ ErrorCode() string }
			if errors.As(err, &coded) {
				data.Code = coded.ErrorCode()
			}
			c.sendEvent(Event{Type: EventError, Data: data})
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.hub.unregister(c)
	}()

	for {
		select {
		case <-c.done:
			return
		case payload := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
