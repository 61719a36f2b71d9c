package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/konekte/resourcehub/backend/internal/domain/entities"
	"github.com/konekte/resourcehub/backend/internal/domain/repositories"
	"github.com/konekte/resourcehub/backend/internal/domain/validation"
)

// CreateReviewInput carries the raw fields of a new review. Rating holds the
// decoded JSON value and is checked by validation.Rating.
type CreateReviewInput struct {
	Rating            any
	Comment           string
	UserID            string
	ServiceProviderID string
}

// UpdateReviewInput carries a partial review update.
type UpdateReviewInput struct {
	Rating  Optional[any]
	Comment Optional[string]
}

// ReviewService handles review use cases
type ReviewService struct {
	eventPublisher
	reviews repositories.ReviewRepository
	tx      repositories.Transactor
	graph   *graphLoader
}

// NewReviewService creates a new review service
func NewReviewService(
	users repositories.UserRepository,
	providers repositories.ServiceProviderRepository,
	reviews repositories.ReviewRepository,
	tx repositories.Transactor,
) *ReviewService {
	return &ReviewService{
		reviews: reviews,
		tx:      tx,
		graph:   &graphLoader{users: users, providers: providers, reviews: reviews},
	}
}

// List returns reviews, optionally only those of one service provider
func (s *ReviewService) List(ctx context.Context, serviceProviderID string) ([]*entities.Review, error) {
	var filter repositories.ReviewFilter
	if serviceProviderID != "" {
		filter.ServiceProviderIDs = []string{serviceProviderID}
	}

	reviews, err := s.reviews.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if err := s.graph.loadReviews(ctx, reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// Get returns one review with its author and service provider
func (s *ReviewService) Get(ctx context.Context, id string) (*entities.Review, error) {
	review, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.graph.loadReviews(ctx, []*entities.Review{review}); err != nil {
		return nil, err
	}
	return review, nil
}

// Create validates and stores a new review
func (s *ReviewService) Create(ctx context.Context, input CreateReviewInput) (*entities.Review, error) {
	userID, err := validation.Required(input.UserID, "user_id")
	if err != nil {
		return nil, err
	}
	serviceProviderID, err := validation.Required(input.ServiceProviderID, "service_provider_id")
	if err != nil {
		return nil, err
	}

	review := &entities.Review{
		ID:                uuid.New().String(),
		UserID:            userID,
		ServiceProviderID: serviceProviderID,
	}
	if review.Rating, err = validation.Rating(input.Rating, "rating"); err != nil {
		return nil, err
	}
	if review.Comment, err = validation.Comment(input.Comment, "comment"); err != nil {
		return nil, err
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.reviews.Create(ctx, review)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, entities.EventReviewCreated, review.ID)
	if err := s.graph.loadReviews(ctx, []*entities.Review{review}); err != nil {
		logReloadFailure(ctx, err, entities.EventReviewCreated, review.ID)
	}
	return review, nil
}

// Update applies a partial update of rating and comment
func (s *ReviewService) Update(ctx context.Context, id string, input UpdateReviewInput) (*entities.Review, error) {
	var review *entities.Review
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		review, err = s.reviews.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if input.Rating.Set {
			if review.Rating, err = validation.Rating(input.Rating.Value, "rating"); err != nil {
				return err
			}
		}
		if input.Comment.Set {
			if review.Comment, err = validation.Comment(input.Comment.Value, "comment"); err != nil {
				return err
			}
		}
		return s.reviews.Update(ctx, review)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, entities.EventReviewUpdated, review.ID)
	if err := s.graph.loadReviews(ctx, []*entities.Review{review}); err != nil {
		logReloadFailure(ctx, err, entities.EventReviewUpdated, review.ID)
	}
	return review, nil
}

// Delete removes a review
func (s *ReviewService) Delete(ctx context.Context, id string) error {
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.reviews.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.publish(ctx, entities.EventReviewDeleted, id)
	return nil
}
