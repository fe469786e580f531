package hub

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/goodzap/backoffice/utils"
	"github.com/gorilla/websocket"
)

// Event types
const (
	EventInvalidate = "invalidate"
	EventHello      = "hello"
)

const writeWait = 5 * time.Second

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Invalidate -> tells every open panel that cached rows of resource are stale.
func Invalidate(resource string) Message {
	return Message{
		Event: EventInvalidate,
		Data:  map[string]string{"resource": resource},
	}
}

// Publisher receives every change notification produced by the controllers.
type Publisher interface {
	Publish(msg Message)
}

// Hub holds the websocket clients of the admin panel.
type Hub struct {
	clients map[*websocket.Conn]string // conn -> remote addr
	mutex   sync.Mutex
}

func New() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]string)}
}

// Register -> adds a connection to the broadcast set
func (h *Hub) Register(conn *websocket.Conn, addr string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.clients[conn] = addr
}

// Unregister -> drops a connection and closes it
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		conn.Close()
	}
}

func (h *Hub) Count() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

// Publish -> broadcasts msg to all clients; clients that fail to receive are dropped.
func (h *Hub) Publish(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("Error marshaling message: %v", err)
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn, addr := range h.clients {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("Error sending message to %s: %v", addr, err)
			delete(h.clients, conn)
			conn.Close()
		}
	}
}

// Fanout publishes to several publishers in order.
type Fanout []Publisher

func (f Fanout) Publish(msg Message) {
	for _, p := range f {
		if p != nil {
			p.Publish(msg)
		}
	}
}

type discard struct{}

func (discard) Publish(Message) {}

// Discard drops every message.
var Discard Publisher = discard{}
