// Package events carries command status changes over Redis pub/sub so that
// every API instance can feed its websocket subscribers.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/vietanh2810/franchise-api/internal/domain"
)

func CommandChannel(commandID string) string {
	return "commands:" + commandID
}

type CommandBus struct {
	rdb *redis.Client
}

func NewCommandBus(rdb *redis.Client) *CommandBus {
	return &CommandBus{
		rdb: rdb,
	}
}

func (b *CommandBus) PublishStatus(ctx context.Context, event domain.CommandStatusEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("json.Marshal -> %w", err)
	}

	if err = b.rdb.Publish(ctx, CommandChannel(event.CommandID), payload).Err(); err != nil {
		return fmt.Errorf("b.rdb.Publish -> %w", err)
	}

	return nil
}

// SubscribeStatus streams the status events of one command until ctx is done.
// The returned channel is closed once the subscription ends.
func (b *CommandBus) SubscribeStatus(ctx context.Context, commandID string) (<-chan domain.CommandStatusEvent, error) {
	sub := b.rdb.Subscribe(ctx, CommandChannel(commandID))
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("sub.Receive -> %w", err)
	}

	out := make(chan domain.CommandStatusEvent)
	go func() {
		defer close(out)
		defer sub.Close()

		messages := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}

				var event domain.CommandStatusEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					zap.L().Warn("dropping malformed command event", zap.String("channel", msg.Channel), zap.Error(err))
					continue
				}

				select {
				case out <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
