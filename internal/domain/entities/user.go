package entities

import (
	"time"
)

// User represents a member of the directory. A user owns the service
// providers they listed and the reviews they wrote; deleting the user
// deletes both.
type User struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// Loaded relations. A nil slice means the relation was not loaded.
	ServiceProviders []*ServiceProvider `json:"-" db:"-"`
	Reviews          []*Review          `json:"-" db:"-"`
}

// ReviewedServices returns the service providers reached through the user's
// reviews, in review order and without duplicates. It is a derived view and
// needs Reviews loaded with their ServiceProvider.
func (u *User) ReviewedServices() []*ServiceProvider {
	seen := make(map[string]struct{}, len(u.Reviews))
	services := make([]*ServiceProvider, 0, len(u.Reviews))
	for _, review := range u.Reviews {
		if review == nil || review.ServiceProvider == nil {
			continue
		}
		if _, ok := seen[review.ServiceProvider.ID]; ok {
			continue
		}
		seen[review.ServiceProvider.ID] = struct{}{}
		services = append(services, review.ServiceProvider)
	}
	return services
}

// SerializeKey identifies the user inside a serialized graph.
func (u *User) SerializeKey() string {
	return "user:" + u.ID
}

// SerializeRules omits the reverse edges back to the user.
func (u *User) SerializeRules() []string {
	return []string{"-service_providers.user", "-reviews.user", "-reviewed_services"}
}

// SerializeFields returns the user's columns.
func (u *User) SerializeFields() map[string]any {
	return map[string]any{
		"id":         u.ID,
		"name":       u.Name,
		"email":      u.Email,
		"created_at": u.CreatedAt,
	}
}

// SerializeRelations returns the loaded relations only.
func (u *User) SerializeRelations() map[string]any {
	relations := map[string]any{}
	if u.ServiceProviders != nil {
		items := make([]any, 0, len(u.ServiceProviders))
		for _, sp := range u.ServiceProviders {
			items = append(items, sp)
		}
		relations["service_providers"] = items
	}
	if u.Reviews != nil {
		items := make([]any, 0, len(u.Reviews))
		for _, review := range u.Reviews {
			items = append(items, review)
		}
		relations["reviews"] = items
	}
	return relations
}
