package service

import "github.com/cgabhane/author-website/internal/model"

// Broadcaster pushes events to connected admin clients (avoids import cycle
// with the websocket hub)
type Broadcaster interface {
	Publish(eventType model.EventType, payload interface{})
}

type noopBroadcaster struct{}

func (noopBroadcaster) Publish(model.EventType, interface{}) {}
