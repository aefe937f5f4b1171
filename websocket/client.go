package websocket

import (
	"Henteklar/models"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait = 10 * time.Second

	pongWait = 60 * time.Second

	// Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// The feed is read-only; clients only send control frames.
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client is one websocket connection listening in a single room.
type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	ID        string
	AccountID string
	Room      string
}

// RoomFor returns the room a session listens in.
func RoomFor(session models.Session) string {
	if session.IsStaff() {
		return StaffRoom
	}
	return session.AccountID
}

func NewClient(hub *Hub, conn *websocket.Conn, session models.Session) *Client {
	return &Client{
		hub:       hub,
		conn:      conn,
		send:      make(chan []byte, 256),
		ID:        uuid.NewString(),
		AccountID: session.AccountID,
		Room:      RoomFor(session),
	}
}

// ServeWs upgrades the request and starts the client's pumps.
func ServeWs(hub *Hub, w http.ResponseWriter, r *http.Request, session models.Session, hello []byte) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	client := NewClient(hub, conn, session)
	if hello != nil {
		client.send <- hello
	}
	hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
	return nil
}

// ReadPump drains incoming frames so ping/pong and close are processed.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Info("websocket read error", zap.String("client", c.ID), zap.Error(err))
			}
			return
		}
	}
}

// WritePump sends queued frames and keeps the connection alive with pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				c.hub.logger.Debug("websocket write failed", zap.String("client", c.ID), zap.Error(err))
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
