package entities

import "time"

// DirectoryEventType names a committed change to the directory.
type DirectoryEventType string

const (
	EventUserCreated            DirectoryEventType = "user.created"
	EventUserUpdated            DirectoryEventType = "user.updated"
	EventUserDeleted            DirectoryEventType = "user.deleted"
	EventServiceProviderCreated DirectoryEventType = "service_provider.created"
	EventServiceProviderUpdated DirectoryEventType = "service_provider.updated"
	EventServiceProviderDeleted DirectoryEventType = "service_provider.deleted"
	EventReviewCreated          DirectoryEventType = "review.created"
	EventReviewUpdated          DirectoryEventType = "review.updated"
	EventReviewDeleted          DirectoryEventType = "review.deleted"
)

// DirectoryEvent is published after a write has been committed.
type DirectoryEvent struct {
	ID        string             `json:"id"`
	Type      DirectoryEventType `json:"type"`
	EntityID  string             `json:"entity_id"`
	Timestamp time.Time          `json:"timestamp"`
}
