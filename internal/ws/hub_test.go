package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

type receivedEvent struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func dialHub(t *testing.T, hub *Hub) (*websocket.Conn, string, func()) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(hub.HandleWS))
	url := "ws" + strings.TrimPrefix(server.URL, "http")

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		server.Close()
		t.Fatalf("dial failed: %v", err)
	}

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var hello receivedEvent
	if err := conn.ReadJSON(&hello); err != nil {
		t.Fatalf("failed to read handshake: %v", err)
	}
	if hello.Event != "connected" {
		t.Fatalf("handshake event = %q, want connected", hello.Event)
	}

	var data struct {
		SocketID string `json:"socketId"`
	}
	if err := json.Unmarshal(hello.Data, &data); err != nil {
		t.Fatalf("failed to decode handshake data: %v", err)
	}
	if data.SocketID == "" {
		t.Fatal("handshake contains empty socket id")
	}

	return conn, data.SocketID, func() {
		conn.Close()
		server.Close()
	}
}

func TestHubHandshakeAndPing(t *testing.T) {
	hub := NewHub(func(r *http.Request) bool { return true }, nil)

	conn, _, cleanup := dialHub(t, hub)
	defer cleanup()

	if err := conn.WriteJSON(map[string]string{"type": "ping"}); err != nil {
		t.Fatalf("failed to send ping: %v", err)
	}

	var pong map[string]string
	if err := conn.ReadJSON(&pong); err != nil {
		t.Fatalf("failed to read pong: %v", err)
	}
	if pong["type"] != "pong" {
		t.Fatalf("response type = %q, want pong", pong["type"])
	}
}

func TestHubEmitReachesClient(t *testing.T) {
	hub := NewHub(func(r *http.Request) bool { return true }, nil)

	conn, _, cleanup := dialHub(t, hub)
	defer cleanup()

	hub.Emit("game_played", map[string]any{"uid": "uid-1"})

	var got receivedEvent
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("failed to read broadcast: %v", err)
	}
	if got.Event != "game_played" {
		t.Fatalf("event = %q, want game_played", got.Event)
	}
}

func TestHubEmitTo(t *testing.T) {
	hub := NewHub(func(r *http.Request) bool { return true }, nil)

	conn, socketID, cleanup := dialHub(t, hub)
	defer cleanup()

	if err := hub.EmitTo(socketID, "demo_game_result", map[string]int{"point": 10}); err != nil {
		t.Fatalf("EmitTo() error = %v", err)
	}

	var got receivedEvent
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("failed to read event: %v", err)
	}
	if got.Event != "demo_game_result" {
		t.Fatalf("event = %q, want demo_game_result", got.Event)
	}

	// Неизвестный socket id не считается ошибкой доставки
	if err := hub.EmitTo("no-such-socket", "demo_game_result", nil); err != nil {
		t.Fatalf("EmitTo() to unknown socket error = %v", err)
	}
}

func TestHubDisconnectCallback(t *testing.T) {
	disconnected := make(chan string, 1)
	hub := NewHub(func(r *http.Request) bool { return true }, func(socketID string) {
		disconnected <- socketID
	})

	conn, socketID, cleanup := dialHub(t, hub)
	defer cleanup()

	conn.Close()

	select {
	case got := <-disconnected:
		if got != socketID {
			t.Fatalf("onDisconnect socket = %q, want %q", got, socketID)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("onDisconnect was not called")
	}
}
