package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/konekte/resourcehub/backend/internal/domain/entities"
	"github.com/konekte/resourcehub/backend/internal/domain/providers"
	"github.com/konekte/resourcehub/backend/internal/domain/repositories"
	"github.com/konekte/resourcehub/backend/internal/infrastructure/observability"
)

// Optional marks a field of a partial update. Fields with Set false are
// left untouched.
type Optional[T any] struct {
	Set   bool
	Value T
}

// Some returns a set Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// eventPublisher publishes directory events after commit. A nil bus
// disables publishing.
type eventPublisher struct {
	eventBus providers.EventBus
}

// SetEventBus sets the event bus for publishing directory changes
func (p *eventPublisher) SetEventBus(bus providers.EventBus) {
	p.eventBus = bus
}

func (p *eventPublisher) publish(ctx context.Context, eventType entities.DirectoryEventType, entityID string) {
	if p.eventBus == nil {
		return
	}

	event := &entities.DirectoryEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		EntityID:  entityID,
		Timestamp: time.Now().UTC(),
	}
	if err := p.eventBus.Publish(ctx, providers.EventChannelDirectory, event); err != nil {
		observability.LoggerFromContext(ctx).Warn().
			Err(err).
			Str("event_type", string(eventType)).
			Str("entity_id", entityID).
			Msg("failed to publish directory event")
	}
}

// logReloadFailure records relations that could not be loaded after a write
// committed. The caller still returns the saved entity.
func logReloadFailure(ctx context.Context, err error, eventType entities.DirectoryEventType, entityID string) {
	observability.LoggerFromContext(ctx).Warn().
		Err(err).
		Str("event_type", string(eventType)).
		Str("entity_id", entityID).
		Msg("write committed but relations could not be loaded")
}

// graphLoader attaches the relations each response shape needs. Loaded
// collections are always non-nil so empty relations serialize as [].
type graphLoader struct {
	users     repositories.UserRepository
	providers repositories.ServiceProviderRepository
	reviews   repositories.ReviewRepository
}

// loadUsers attaches each user's service providers and reviews, and each
// review's service provider.
func (g *graphLoader) loadUsers(ctx context.Context, users []*entities.User) error {
	if len(users) == 0 {
		return nil
	}

	ids := make([]string, 0, len(users))
	byID := make(map[string]*entities.User, len(users))
	for _, user := range users {
		user.ServiceProviders = []*entities.ServiceProvider{}
		user.Reviews = []*entities.Review{}
		ids = append(ids, user.ID)
		byID[user.ID] = user
	}

	owned, err := g.providers.List(ctx, repositories.ServiceProviderFilter{UserIDs: ids})
	if err != nil {
		return err
	}
	for _, provider := range owned {
		if user, ok := byID[provider.UserID]; ok {
			user.ServiceProviders = append(user.ServiceProviders, provider)
		}
	}

	written, err := g.reviews.List(ctx, repositories.ReviewFilter{UserIDs: ids})
	if err != nil {
		return err
	}
	reviewed, err := g.providers.GetByIDs(ctx, distinct(written, func(r *entities.Review) string { return r.ServiceProviderID }))
	if err != nil {
		return err
	}
	providersByID := indexBy(reviewed, func(p *entities.ServiceProvider) string { return p.ID })

	for _, review := range written {
		review.ServiceProvider = providersByID[review.ServiceProviderID]
		if user, ok := byID[review.UserID]; ok {
			user.Reviews = append(user.Reviews, review)
		}
	}
	return nil
}

// loadProviders attaches each provider's owner and reviews, and each
// review's author.
func (g *graphLoader) loadProviders(ctx context.Context, providers []*entities.ServiceProvider) error {
	if len(providers) == 0 {
		return nil
	}

	ids := make([]string, 0, len(providers))
	byID := make(map[string]*entities.ServiceProvider, len(providers))
	for _, provider := range providers {
		provider.Reviews = []*entities.Review{}
		ids = append(ids, provider.ID)
		byID[provider.ID] = provider
	}

	reviews, err := g.reviews.List(ctx, repositories.ReviewFilter{ServiceProviderIDs: ids})
	if err != nil {
		return err
	}

	userIDs := distinct(providers, func(p *entities.ServiceProvider) string { return p.UserID })
	userIDs = appendMissing(userIDs, distinct(reviews, func(r *entities.Review) string { return r.UserID }))
	users, err := g.users.GetByIDs(ctx, userIDs)
	if err != nil {
		return err
	}
	usersByID := indexBy(users, func(u *entities.User) string { return u.ID })

	for _, provider := range providers {
		provider.User = usersByID[provider.UserID]
	}
	for _, review := range reviews {
		review.User = usersByID[review.UserID]
		if provider, ok := byID[review.ServiceProviderID]; ok {
			provider.Reviews = append(provider.Reviews, review)
		}
	}
	return nil
}

// loadReviews attaches each review's author and service provider.
func (g *graphLoader) loadReviews(ctx context.Context, reviews []*entities.Review) error {
	if len(reviews) == 0 {
		return nil
	}

	users, err := g.users.GetByIDs(ctx, distinct(reviews, func(r *entities.Review) string { return r.UserID }))
	if err != nil {
		return err
	}
	providers, err := g.providers.GetByIDs(ctx, distinct(reviews, func(r *entities.Review) string { return r.ServiceProviderID }))
	if err != nil {
		return err
	}

	usersByID := indexBy(users, func(u *entities.User) string { return u.ID })
	providersByID := indexBy(providers, func(p *entities.ServiceProvider) string { return p.ID })
	for _, review := range reviews {
		review.User = usersByID[review.UserID]
		review.ServiceProvider = providersByID[review.ServiceProviderID]
	}
	return nil
}

func distinct[T any](items []T, key func(T) string) []string {
	seen := make(map[string]struct{}, len(items))
	keys := make([]string, 0, len(items))
	for _, item := range items {
		k := key(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}

func appendMissing(keys, more []string) []string {
	for _, k := range more {
		found := false
		for _, existing := range keys {
			if existing == k {
				found = true
				break
			}
		}
		if !found {
			keys = append(keys, k)
		}
	}
	return keys
}

func indexBy[T any](items []T, key func(T) string) map[string]T {
	index := make(map[string]T, len(items))
	for _, item := range items {
		index[key(item)] = item
	}
	return index
}
