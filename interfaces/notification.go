package interfaces

import (
	"Henteklar/models"
	"time"
)

const (
	MessageTypeAttendance = "attendance"
	MessageTypeConnected  = "connected"
)

// WebSocketMessage is the envelope of every frame on the live feed.
type WebSocketMessage struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// LiveFeed accepts attendance events for the websocket listeners.
type LiveFeed interface {
	PublishAttendance(event models.AttendanceEvent)
	ClientCount() int
}
