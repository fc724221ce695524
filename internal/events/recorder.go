// File: internal/events/recorder.go
package events

import (
	"context"
	"time"

	"github.com/leandro-lugaresi/hub"
	"github.com/rs/zerolog/log"

	"wakatimer/internal/database"
	"wakatimer/internal/model"
	"wakatimer/internal/store"
	"wakatimer/internal/worker"
)

const (
	recorderBuffer = 64
	insertTimeout  = 5 * time.Second
)

// insertAuthEvent 測試可覆寫
var insertAuthEvent = store.InsertAuthEvent

// AuthRecorder 訂閱 auth.* 事件，交給 worker pool 寫入 auth_events
type AuthRecorder struct {
	bus  *Bus
	sub  hub.Subscription
	done chan struct{}
}

func NewAuthRecorder(bus *Bus, pool worker.Pool, db database.DB) *AuthRecorder {
	r := &AuthRecorder{
		bus:  bus,
		sub:  bus.Subscribe(recorderBuffer, TopicAuth),
		done: make(chan struct{}),
	}
	go func(sub hub.Subscription) {
		defer close(r.done)
		for m := range sub.Receiver {
			e, ok := m.Fields[FieldPayload].(model.AuthEvent)
			if !ok {
				log.Logger.Warn().Str("event", m.Name).Msg("unexpected auth event payload")
				continue
			}
			pool.Submit(func() {
				ctx, cancel := context.WithTimeout(context.Background(), insertTimeout)
				defer cancel()
				if err := insertAuthEvent(ctx, db, &e); err != nil {
					log.Logger.Error().Err(err).Str("method", e.Method).Msg("failed to record auth event")
				}
			})
		}
	}(r.sub)
	return r
}

// Close 取消訂閱並等待已收到的事件都交給 pool
func (r *AuthRecorder) Close() {
	r.bus.Unsubscribe(r.sub)
	<-r.done
}
