package ws

import (
	"encoding/json"
	"time"

	"jobghar/internal/domain/application"
)

type ApplicationReceivedEvent struct {
	Type          string `json:"type"`
	ApplicationID int64  `json:"applicationId"`
	JobSlug       string `json:"jobSlug"`
	JobTitle      string `json:"jobTitle"`
	Timestamp     string `json:"timestamp"`
}

// Notifier adapts the hub to the application usecase's notifier port.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) ApplicationReceived(a application.Application) {
	if n == nil || n.hub == nil {
		return
	}

	evt := ApplicationReceivedEvent{
		Type:          "application_received",
		ApplicationID: a.ID,
		JobSlug:       a.JobSlug,
		JobTitle:      a.JobTitle,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.Broadcast(b)
}
