package entities

import "time"

// Review is a user's 1-5 rating of a service provider. It references both
// but owns neither.
type Review struct {
	ID                string    `json:"id" db:"id"`
	Rating            int       `json:"rating" db:"rating"`
	Comment           string    `json:"comment" db:"comment"`
	UserID            string    `json:"user_id" db:"user_id"`
	ServiceProviderID string    `json:"service_provider_id" db:"service_provider_id"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`

	User            *User            `json:"-" db:"-"`
	ServiceProvider *ServiceProvider `json:"-" db:"-"`
}

func (r *Review) SerializeKey() string {
	return "review:" + r.ID
}

func (r *Review) SerializeRules() []string {
	return []string{"-user.reviews", "-service_provider.reviews"}
}

func (r *Review) SerializeFields() map[string]any {
	return map[string]any{
		"id":                  r.ID,
		"rating":              r.Rating,
		"comment":             r.Comment,
		"user_id":             r.UserID,
		"service_provider_id": r.ServiceProviderID,
		"created_at":          r.CreatedAt,
	}
}

func (r *Review) SerializeRelations() map[string]any {
	relations := map[string]any{}
	if r.User != nil {
		relations["user"] = r.User
	}
	if r.ServiceProvider != nil {
		relations["service_provider"] = r.ServiceProvider
	}
	return relations
}
