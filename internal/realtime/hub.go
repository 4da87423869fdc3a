package realtime

import (
	"context"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-optimizer-api/pkg/metrics"
)

// Publisher entrega eventos às salas dos usuários conectados
type Publisher interface {
	SendToUsers(event Event, userIDs ...int)
}

// InboundHandler processa eventos recebidos pelo socket em nome do usuário
type InboundHandler interface {
	HandleInbound(ctx context.Context, userID int, event InboundEvent) error
}

// Hub mantém uma sala por usuário com todas as conexões abertas dele
type Hub struct {
	mu       sync.RWMutex
	rooms    map[int]map[*Client]struct{}
	upgrader websocket.Upgrader
}

func NewHub(allowedOrigins []string) *Hub {
	origins := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = true
	}

	return &Hub{
		rooms: make(map[int]map[*Client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || origins["*"] || origins[origin]
			},
		},
	}
}

// Serve faz o upgrade da conexão e bloqueia até o cliente desconectar
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, userID int, handler InboundHandler) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	client := newClient(h, conn, userID)
	h.register(client)

	go client.writePump()
	client.readPump(r.Context(), handler)

	return nil
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	if h.rooms[c.userID] == nil {
		h.rooms[c.userID] = make(map[*Client]struct{})
	}
	h.rooms[c.userID][c] = struct{}{}
	h.mu.Unlock()

	metrics.WSConnected()
	logrus.WithFields(logrus.Fields{"user_id": c.userID, "client_id": c.id}).Debug("WebSocket conectado")
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	set, ok := h.rooms[c.userID]
	if ok {
		if _, present := set[c]; !present {
			ok = false
		} else {
			delete(set, c)
			if len(set) == 0 {
				delete(h.rooms, c.userID)
			}
		}
	}
	h.mu.Unlock()

	if !ok {
		return
	}

	c.close()
	metrics.WSDisconnected()
	logrus.WithFields(logrus.Fields{"user_id": c.userID, "client_id": c.id}).Debug("WebSocket desconectado")
}

// SendToUsers enfileira o evento para todas as conexões dos usuários informados.
// Clientes com fila cheia são desconectados.
func (h *Hub) SendToUsers(event Event, userIDs ...int) {
	payload, err := json.Marshal(event)
	if err != nil {
		logrus.WithError(err).WithField("event", event.Type).Error("Erro ao serializar evento")
		return
	}

	var slow []*Client
	seen := make(map[int]bool, len(userIDs))

	h.mu.RLock()
	for _, id := range userIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		for c := range h.rooms[id] {
			if !c.enqueue(payload) {
				slow = append(slow, c)
			}
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		logrus.WithField("user_id", c.userID).Warn("Cliente WebSocket lento, desconectando")
		h.unregister(c)
	}
}

func (h *Hub) IsOnline(userID int) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[userID]) > 0
}

// Connections devolve o total de conexões abertas
func (h *Hub) Connections() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := 0
	for _, set := range h.rooms {
		total += len(set)
	}
	return total
}
