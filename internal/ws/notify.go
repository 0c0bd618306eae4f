package ws

import (
	"encoding/json"
	"time"
)

// AdminEvent is the envelope pushed to connected admin dashboards
// whenever catalog content changes.
type AdminEvent struct {
	Type      string `json:"type"`
	Payload   any    `json:"payload,omitempty"`
	Timestamp string `json:"timestamp"`
}

// Notifier adapts the hub to the event interface the admin usecases
// expect. A nil Notifier is safe and broadcasts nothing.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) Broadcast(event string, payload any) {
	if n == nil || n.hub == nil || event == "" {
		return
	}

	evt := AdminEvent{
		Type:      event,
		Payload:   payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.Broadcast(b)
}
