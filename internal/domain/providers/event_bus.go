package providers

import (
	"context"

	"github.com/konekte/resourcehub/backend/internal/domain/entities"
)

// EventBus defines the interface for publishing and subscribing to directory events
type EventBus interface {
	// Publish publishes an event to all subscribers
	Publish(ctx context.Context, channel string, event *entities.DirectoryEvent) error

	// Subscribe returns a channel of events that is closed when ctx is done
	Subscribe(ctx context.Context, channel string) (<-chan *entities.DirectoryEvent, error)

	// Close closes the event bus and all subscriptions
	Close() error
}

// EventChannelDirectory carries every committed directory change.
const EventChannelDirectory = "directory:events"
