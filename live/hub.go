package live

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// Event types pushed to connected admin dashboards. Mutations broadcast
// at commit time so the dashboard re-renders without polling.
const (
	EventReservationUpdate = "reservation_update"
	EventMessageUpdate     = "message_update"
	EventMenuUpdate        = "menu_update"
	EventSettingsUpdate    = "settings_update"
	EventDashboardUpdate   = "dashboard_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub holds every connected admin dashboard client.
type Hub struct {
	clients map[*websocket.Conn]bool
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]bool),
}

// RegisterClient adds a connection to the set.
func RegisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = true
}

// UnregisterClient removes and closes a connection.
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// Broadcast sends a message to every connected client. Write errors are
// ignored here; dead connections drop off on their next read.
func Broadcast(event string, data interface{}) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	payload, err := json.Marshal(Message{Event: event, Data: data})
	if err != nil {
		return
	}

	for conn := range hub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			continue
		}
	}
}
