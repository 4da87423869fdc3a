package realtime

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	mu     sync.Mutex
	events []InboundEvent
	err    error
}

func (h *recordingHandler) HandleInbound(_ context.Context, _ int, event InboundEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, event)
	return h.err
}

func (h *recordingHandler) received() []InboundEvent {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]InboundEvent(nil), h.events...)
}

func newTestServer(t *testing.T, hub *Hub, userID int, handler InboundHandler) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.Serve(w, r, userID, handler)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func waitConnections(t *testing.T, hub *Hub, n int) {
	t.Helper()
	assert.Eventually(t, func() bool { return hub.Connections() == n }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_SendToUsersReachesEveryConnectionOfTheUser(t *testing.T) {
	hub := NewHub(nil)
	srv := newTestServer(t, hub, 7, nil)

	first := dial(t, srv)
	second := dial(t, srv)
	waitConnections(t, hub, 2)
	assert.True(t, hub.IsOnline(7))
	assert.False(t, hub.IsOnline(8))

	hub.SendToUsers(Event{Type: EventAlertNew, Data: map[string]any{"id": 1}}, 7, 7, 8)

	for _, conn := range []*websocket.Conn{first, second} {
		event := readEvent(t, conn)
		assert.Equal(t, EventAlertNew, event["type"])
	}
}

func TestHub_PingRepliesWithPong(t *testing.T) {
	hub := NewHub(nil)
	srv := newTestServer(t, hub, 1, nil)
	conn := dial(t, srv)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"ping"}`)))

	event := readEvent(t, conn)
	assert.Equal(t, EventPong, event["type"])
}

func TestHub_InboundEventsAreDispatched(t *testing.T) {
	hub := NewHub(nil)
	handler := &recordingHandler{}
	srv := newTestServer(t, hub, 3, handler)
	conn := dial(t, srv)

	msg := `{"type":"message:send","data":{"conversation_id":42,"content":"olá"}}`
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(msg)))

	assert.Eventually(t, func() bool { return len(handler.received()) == 1 }, 2*time.Second, 10*time.Millisecond)
	got := handler.received()[0]
	assert.Equal(t, EventMessageSend, got.Type)
	assert.Equal(t, int64(42), got.Data.ConversationID)
	assert.Equal(t, "olá", got.Data.Content)
}

func TestHub_HandlerErrorIsSentBack(t *testing.T) {
	hub := NewHub(nil)
	handler := &recordingHandler{err: errors.New("conversa não encontrada")}
	srv := newTestServer(t, hub, 3, handler)
	conn := dial(t, srv)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"typing","data":{"conversation_id":1}}`)))

	event := readEvent(t, conn)
	assert.Equal(t, EventError, event["type"])
	data, ok := event["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "conversa não encontrada", data["message"])
}

func TestHub_InvalidPayload(t *testing.T) {
	hub := NewHub(nil)
	srv := newTestServer(t, hub, 3, nil)
	conn := dial(t, srv)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`not json`)))

	event := readEvent(t, conn)
	assert.Equal(t, EventError, event["type"])
}

func TestHub_UnregistersOnDisconnect(t *testing.T) {
	hub := NewHub(nil)
	srv := newTestServer(t, hub, 9, nil)
	conn := dial(t, srv)
	waitConnections(t, hub, 1)

	conn.Close()

	waitConnections(t, hub, 0)
	assert.False(t, hub.IsOnline(9))
}

func TestHub_CheckOrigin(t *testing.T) {
	hub := NewHub([]string{"https://app.example.com"})
	check := hub.upgrader.CheckOrigin

	req := httptest.NewRequest(http.MethodGet, "/v1/ws", nil)
	assert.True(t, check(req))

	req.Header.Set("Origin", "https://app.example.com")
	assert.True(t, check(req))

	req.Header.Set("Origin", "https://evil.example.com")
	assert.False(t, check(req))
}
