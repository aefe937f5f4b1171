package websocket

import (
	"Henteklar/interfaces"
	"Henteklar/models"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"
)

// StaffRoom receives every attendance event. Guardians listen in a room
// named after their account id.
const StaffRoom = "staff"

// Hub maintains the set of active clients and fans attendance events out to
// the rooms they listen in.
type Hub struct {
	// Registered clients by room.
	rooms map[string]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan *Message
	done       chan struct{}

	mu     sync.RWMutex
	logger *zap.Logger
}

// Message is one encoded frame addressed to a set of rooms.
type Message struct {
	Rooms []string
	Data  []byte
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Message, 64),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Register adds client to its room. After Stop the client's send channel is
// closed instead, so its write pump exits.
func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
		close(client.send)
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Broadcast queues a frame. It never blocks the caller: when the queue is
// full the frame is dropped and logged.
func (h *Hub) Broadcast(message *Message) {
	select {
	case h.broadcast <- message:
	default:
		h.logger.Warn("websocket broadcast queue full, dropping message", zap.Strings("rooms", message.Rooms))
	}
}

// PublishAttendance sends the event to staff and to the child's guardians.
func (h *Hub) PublishAttendance(event models.AttendanceEvent) {
	data, err := json.Marshal(interfaces.WebSocketMessage{
		Type:      interfaces.MessageTypeAttendance,
		Data:      event,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		h.logger.Error("failed to encode attendance event", zap.Error(err))
		return
	}
	rooms := append([]string{StaffRoom}, event.ParentIDs...)
	h.Broadcast(&Message{Rooms: rooms, Data: data})
}

// ClientCount returns the number of open connections.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, clients := range h.rooms {
		n += len(clients)
	}
	return n
}

// Stop ends Run and closes every client.
func (h *Hub) Stop() {
	close(h.done)
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if _, ok := h.rooms[client.Room]; !ok {
				h.rooms[client.Room] = make(map[*Client]bool)
			}
			h.rooms[client.Room][client] = true
			h.mu.Unlock()
			h.logger.Debug("websocket client registered",
				zap.String("client", client.ID),
				zap.String("account", client.AccountID),
				zap.String("room", client.Room))

		case client := <-h.unregister:
			h.mu.Lock()
			h.remove(client)
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.Lock()
			delivered := map[*Client]bool{}
			for _, room := range message.Rooms {
				for client := range h.rooms[room] {
					if delivered[client] {
						continue
					}
					delivered[client] = true
					select {
					case client.send <- message.Data:
					default:
						h.logger.Warn("websocket client too slow, disconnecting", zap.String("client", client.ID))
						h.remove(client)
					}
				}
			}
			h.mu.Unlock()

		case <-h.done:
			h.mu.Lock()
			for _, clients := range h.rooms {
				for client := range clients {
					h.remove(client)
				}
			}
			h.mu.Unlock()
			return
		}
	}
}

// remove must be called with mu held.
func (h *Hub) remove(client *Client) {
	clients, ok := h.rooms[client.Room]
	if !ok || !clients[client] {
		return
	}
	delete(clients, client)
	close(client.send)
	if len(clients) == 0 {
		delete(h.rooms, client.Room)
	}
	h.logger.Debug("websocket client unregistered", zap.String("client", client.ID))
}
