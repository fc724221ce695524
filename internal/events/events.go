// File: internal/events/events.go
package events

import (
	"github.com/leandro-lugaresi/hub"

	"wakatimer/internal/model"
)

const (
	TopicAuth        = "auth.*"
	EventAuthLogin   = "auth.login"
	EventAuthFailure = "auth.failure"
	FieldPayload     = "payload"
)

// Bus 包裝 hub，集中定義應用程式事件
type Bus struct {
	hub *hub.Hub
}

func NewBus() *Bus {
	return &Bus{hub: hub.New()}
}

// PublishAuth 成功發佈 auth.login，失敗發佈 auth.failure
func (b *Bus) PublishAuth(e model.AuthEvent) {
	name := EventAuthFailure
	if e.Success {
		name = EventAuthLogin
	}
	b.hub.Publish(hub.Message{
		Name:   name,
		Fields: map[string]interface{}{FieldPayload: e},
	})
}

func (b *Bus) Subscribe(capacity int, topics ...string) hub.Subscription {
	return b.hub.Subscribe(capacity, topics...)
}

func (b *Bus) Unsubscribe(sub hub.Subscription) {
	b.hub.Unsubscribe(sub)
}

// Close 關閉所有訂閱
func (b *Bus) Close() {
	b.hub.Close()
}
