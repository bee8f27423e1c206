package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Событие, уходящее подписчикам
type event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type clientMsg struct {
	Type string `json:"type"`
}

// Hub раздает игровые события подключенным клиентам.
// Каждому соединению выдается socket id, по которому можно адресовать
// событие конкретному клиенту. Доставка best-effort, без подтверждений.
// mu сериализует и реестр, и записи в соединения - gorilla не допускает
// конкурентных писателей на одном соединении
type Hub struct {
	upgrader     websocket.Upgrader
	mu           sync.Mutex
	clients      map[string]*websocket.Conn
	onDisconnect func(socketID string)
}

// NewHub создает Hub с политикой происхождения (CORS) и колбеком отключения.
// onDisconnect может быть nil
func NewHub(allowOrigin func(r *http.Request) bool, onDisconnect func(socketID string)) *Hub {
	return &Hub{
		upgrader:     websocket.Upgrader{CheckOrigin: allowOrigin},
		clients:      make(map[string]*websocket.Conn),
		onDisconnect: onDisconnect,
	}
}

// HandleWS обслуживает жизненный цикл одного соединения:
// выдает socket id, отвечает на ping и чистит реестр при разрыве
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	socketID := uuid.NewString()

	h.mu.Lock()
	h.clients[socketID] = conn
	// Сообщаем клиенту его socket id - аналог рукопожатия socket.io
	_ = conn.WriteJSON(event{
		Event: "connected",
		Data:  map[string]string{"socketId": socketID},
	})
	h.mu.Unlock()

	for {
		var msg clientMsg
		if err := conn.ReadJSON(&msg); err != nil {
			break
		}
		if msg.Type == "ping" {
			h.mu.Lock()
			_ = conn.WriteJSON(map[string]string{"type": "pong"})
			h.mu.Unlock()
		}
	}

	h.mu.Lock()
	delete(h.clients, socketID)
	h.mu.Unlock()

	if h.onDisconnect != nil {
		h.onDisconnect(socketID)
	}
}

// Emit шлет событие всем подключенным клиентам
func (h *Hub) Emit(eventName string, payload any) {
	b, err := json.Marshal(event{Event: eventName, Data: payload})
	if err != nil {
		log.Printf("ws: failed to marshal event %s: %v", eventName, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, c := range h.clients {
		_ = c.WriteMessage(websocket.TextMessage, b)
	}
}

// EmitTo шлет событие одному клиенту по его socket id.
// Отсутствие клиента не считается ошибкой доставки
func (h *Hub) EmitTo(socketID string, eventName string, payload any) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	conn, ok := h.clients[socketID]
	if !ok {
		return nil
	}

	return conn.WriteJSON(event{Event: eventName, Data: payload})
}
