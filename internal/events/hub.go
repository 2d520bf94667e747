package events

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 4 * 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // Allow all origins (configure in prod)
}

// Event names pushed to connected clients.
const (
	EventNewBooking          = "newBooking"
	EventBookingUpdated      = "bookingUpdated"
	EventAnnouncementAdded   = "announcementAdded"
	EventAnnouncementUpdated = "announcementUpdated"
	EventAnnouncementDeleted = "announcementDeleted"
	EventPollUpdated         = "pollUpdated"
	EventNewNotification     = "newNotification"
)

// wsEvent is the wire format for a pushed event.
type wsEvent struct {
	Event   string `json:"event"`
	Payload any    `json:"payload,omitempty"`
}

// connection represents a single WebSocket client
type connection struct {
	userID int64
	conn   *websocket.Conn
	send   chan []byte
}

// Hub manages all active WebSocket connections, keyed by user id.
// Delivery is best-effort: no buffering beyond the per-connection
// channel, no replay, and a slow client is simply skipped.
type Hub struct {
	mu          sync.RWMutex
	connections map[int64][]*connection
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64][]*connection),
	}
}

func (h *Hub) register(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connections[c.userID] = append(h.connections[c.userID], c)
}

func (h *Hub) unregister(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	conns := h.connections[c.userID]
	for i, existing := range conns {
		if existing == c {
			h.connections[c.userID] = append(conns[:i], conns[i+1:]...)
			close(c.send)
			break
		}
	}
	if len(h.connections[c.userID]) == 0 {
		delete(h.connections, c.userID)
	}
}

// Broadcast sends an event to every connected client.
func (h *Hub) Broadcast(event string, payload any) {
	data, err := json.Marshal(wsEvent{Event: event, Payload: payload})
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, conns := range h.connections {
		for _, c := range conns {
			select {
			case c.send <- data:
			default:
				// client too slow, skip
			}
		}
	}
}

// SendToUser sends an event to every connection of a single user.
// Returns false when the user has no live connection.
func (h *Hub) SendToUser(userID int64, event string, payload any) bool {
	data, err := json.Marshal(wsEvent{Event: event, Payload: payload})
	if err != nil {
		return false
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	conns := h.connections[userID]
	for _, c := range conns {
		select {
		case c.send <- data:
		default:
		}
	}
	return len(conns) > 0
}

// ServeWS registers a new connection and starts read/write loops.
// Blocks until the client disconnects.
func (h *Hub) ServeWS(conn *websocket.Conn, userID int64) {
	c := &connection{
		userID: userID,
		conn:   conn,
		send:   make(chan []byte, 64),
	}

	h.register(c)

	go h.writePump(c)
	h.readPump(c)
}

func (h *Hub) readPump(c *connection) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMsgSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// Clients only listen; drain until disconnect.
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (h *Hub) writePump(c *connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
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
