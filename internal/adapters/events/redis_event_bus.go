package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/konekte/resourcehub/backend/internal/domain/entities"
	"github.com/konekte/resourcehub/backend/internal/domain/providers"
	redisclient "github.com/konekte/resourcehub/backend/internal/infrastructure/clients/redis"
	"github.com/konekte/resourcehub/backend/internal/infrastructure/observability"
	"github.com/redis/go-redis/v9"
)

const subscriberBuffer = 100

var _ providers.EventBus = (*RedisEventBus)(nil)

// channelFanout is one Redis subscription shared by local subscribers.
type channelFanout struct {
	pubsub      *redis.PubSub
	subscribers map[chan *entities.DirectoryEvent]struct{}
}

// RedisEventBus fans directory events out over Redis Pub/Sub
type RedisEventBus struct {
	client   *redisclient.Client
	channels map[string]*channelFanout
	mu       sync.RWMutex
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewRedisEventBus creates a new Redis-based event bus
func NewRedisEventBus(client *redisclient.Client) *RedisEventBus {
	ctx, cancel := context.WithCancel(context.Background())
	return &RedisEventBus{
		client:   client,
		channels: make(map[string]*channelFanout),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Publish serializes the event as JSON and publishes it on channel
func (b *RedisEventBus) Publish(ctx context.Context, channel string, event *entities.DirectoryEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := b.client.Client().Publish(ctx, channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	observability.LoggerFromContext(ctx).Debug().
		Str("channel", channel).
		Str("event_id", event.ID).
		Str("event_type", string(event.Type)).
		Msg("published directory event")
	return nil
}

// Subscribe registers a local subscriber on channel. The returned channel is
// closed when ctx is done or the bus is closed.
func (b *RedisEventBus) Subscribe(ctx context.Context, channel string) (<-chan *entities.DirectoryEvent, error) {
	b.mu.Lock()
	fanout, exists := b.channels[channel]
	if !exists {
		pubsub := b.client.Client().Subscribe(b.ctx, channel)
		// Wait for the subscription confirmation so no publish is missed.
		if _, err := pubsub.Receive(ctx); err != nil {
			b.mu.Unlock()
			_ = pubsub.Close()
			return nil, fmt.Errorf("failed to subscribe to %s: %w", channel, err)
		}
		fanout = &channelFanout{
			pubsub:      pubsub,
			subscribers: make(map[chan *entities.DirectoryEvent]struct{}),
		}
		b.channels[channel] = fanout
		go b.receive(channel, fanout)
	}

	events := make(chan *entities.DirectoryEvent, subscriberBuffer)
	fanout.subscribers[events] = struct{}{}
	count := len(fanout.subscribers)
	b.mu.Unlock()

	observability.GetLogger().Info().Str("channel", channel).Int("subscribers", count).Msg("subscribed to channel")

	go func() {
		select {
		case <-ctx.Done():
		case <-b.ctx.Done():
		}
		b.removeSubscriber(channel, events)
	}()

	return events, nil
}

func (b *RedisEventBus) receive(channel string, fanout *channelFanout) {
	logger := observability.GetLogger()
	messages := fanout.pubsub.Channel()

	for {
		select {
		case <-b.ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}

			var event entities.DirectoryEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				logger.Warn().Err(err).Str("channel", channel).Msg("dropping malformed event")
				continue
			}

			b.mu.RLock()
			for subscriber := range fanout.subscribers {
				select {
				case subscriber <- &event:
				default:
					logger.Warn().Str("channel", channel).Str("event_id", event.ID).Msg("subscriber full, skipping event")
				}
			}
			b.mu.RUnlock()
		}
	}
}

func (b *RedisEventBus) removeSubscriber(channel string, events chan *entities.DirectoryEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	fanout, exists := b.channels[channel]
	if !exists {
		return
	}
	if _, ok := fanout.subscribers[events]; !ok {
		return
	}

	delete(fanout.subscribers, events)
	close(events)

	if len(fanout.subscribers) == 0 {
		delete(b.channels, channel)
		if err := fanout.pubsub.Close(); err != nil {
			observability.GetLogger().Error().Err(err).Str("channel", channel).Msg("failed to close subscription")
		}
	}
}

// Close stops all subscriptions and closes every subscriber channel
func (b *RedisEventBus) Close() error {
	b.cancel()

	b.mu.Lock()
	defer b.mu.Unlock()

	var errs []error
	for channel, fanout := range b.channels {
		for subscriber := range fanout.subscribers {
			delete(fanout.subscribers, subscriber)
			close(subscriber)
		}
		if err := fanout.pubsub.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close subscription %s: %w", channel, err))
		}
		delete(b.channels, channel)
	}
	return errors.Join(errs...)
}
