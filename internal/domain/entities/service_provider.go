package entities

import (
	"math"
	"time"
)

// Service provider categories. The set is closed.
const (
	CategoryMedicalHealth     = "Medical/Health"
	CategoryEducation         = "Education"
	CategoryWaterSanitation   = "Water & Sanitation"
	CategoryCommunityCenters  = "Community Centers"
	CategoryEmergencyServices = "Emergency Services"
)

// Categories lists the accepted categories in display order.
var Categories = []string{
	CategoryMedicalHealth,
	CategoryEducation,
	CategoryWaterSanitation,
	CategoryCommunityCenters,
	CategoryEmergencyServices,
}

// ServiceProvider is a community resource listed by a user.
type ServiceProvider struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Category    string    `json:"category" db:"category"`
	Description string    `json:"description" db:"description"`
	Location    string    `json:"location" db:"location"`
	Phone       *string   `json:"phone" db:"phone"`
	Hours       *string   `json:"hours" db:"hours"`
	UserID      string    `json:"user_id" db:"user_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`

	// Loaded relations. Nil means not loaded.
	User    *User     `json:"-" db:"-"`
	Reviews []*Review `json:"-" db:"-"`
}

// AverageRating is the mean of the loaded review ratings rounded to one
// decimal place, or 0 when there are none.
func (s *ServiceProvider) AverageRating() float64 {
	if len(s.Reviews) == 0 {
		return 0
	}
	total := 0
	for _, review := range s.Reviews {
		total += review.Rating
	}
	return math.Round(float64(total)/float64(len(s.Reviews))*10) / 10
}

// Reviewers returns the distinct authors of the loaded reviews.
func (s *ServiceProvider) Reviewers() []*User {
	seen := make(map[string]struct{}, len(s.Reviews))
	users := make([]*User, 0, len(s.Reviews))
	for _, review := range s.Reviews {
		if review == nil || review.User == nil {
			continue
		}
		if _, ok := seen[review.User.ID]; ok {
			continue
		}
		seen[review.User.ID] = struct{}{}
		users = append(users, review.User)
	}
	return users
}

func (s *ServiceProvider) SerializeKey() string {
	return "service_provider:" + s.ID
}

func (s *ServiceProvider) SerializeRules() []string {
	return []string{"-user.service_providers", "-reviews.service_provider", "-reviewers"}
}

// SerializeFields returns the columns plus the computed rating fields, which
// are only present when the reviews were loaded.
func (s *ServiceProvider) SerializeFields() map[string]any {
	fields := map[string]any{
		"id":          s.ID,
		"name":        s.Name,
		"category":    s.Category,
		"description": s.Description,
		"location":    s.Location,
		"phone":       s.Phone,
		"hours":       s.Hours,
		"user_id":     s.UserID,
		"created_at":  s.CreatedAt,
	}
	if s.Reviews != nil {
		fields["average_rating"] = s.AverageRating()
		fields["review_count"] = len(s.Reviews)
	}
	return fields
}

func (s *ServiceProvider) SerializeRelations() map[string]any {
	relations := map[string]any{}
	if s.User != nil {
		relations["user"] = s.User
	}
	if s.Reviews != nil {
		items := make([]any, 0, len(s.Reviews))
		for _, review := range s.Reviews {
			items = append(items, review)
		}
		relations["reviews"] = items
	}
	return relations
}
