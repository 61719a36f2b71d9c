package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/konekte/resourcehub/backend/internal/domain/entities"
	"github.com/konekte/resourcehub/backend/internal/domain/repositories"
	"github.com/konekte/resourcehub/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/konekte/resourcehub/backend/pkg/errors"
)

const reviewsTable = "reviews"

var reviewColumns = []any{"id", "rating", "comment", "user_id", "service_provider_id", "created_at"}

// ReviewAdapter implements ReviewRepository on PostgreSQL
type ReviewAdapter struct {
	client *postgres.Client
}

// NewReviewAdapter creates a new review adapter
func NewReviewAdapter(client *postgres.Client) repositories.ReviewRepository {
	return &ReviewAdapter{client: client}
}

// Create inserts a new review
func (a *ReviewAdapter) Create(ctx context.Context, review *entities.Review) (err error) {
	ctx, done := a.client.Track(ctx, "reviews.create")
	defer done(&err)

	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now().UTC()
	}

	query, args, err := dialect.Insert(reviewsTable).Prepared(true).Rows(goqu.Record{
		"id":                  review.ID,
		"rating":              review.Rating,
		"comment":             review.Comment,
		"user_id":             review.UserID,
		"service_provider_id": review.ServiceProviderID,
		"created_at":          review.CreatedAt,
	}).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build review insert", err)
	}

	if _, err := a.client.Conn(ctx).ExecContext(ctx, query, args...); err != nil {
		return storeError("failed to create review", err)
	}
	return nil
}

// GetByID retrieves a review by ID
func (a *ReviewAdapter) GetByID(ctx context.Context, id string) (_ *entities.Review, err error) {
	ctx, done := a.client.Track(ctx, "reviews.get")
	defer done(&err)

	query, args, err := dialect.From(reviewsTable).Prepared(true).
		Select(reviewColumns...).
		Where(goqu.C("id").Eq(id)).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build review query", err)
	}

	var review entities.Review
	if err := a.client.Conn(ctx).GetContext(ctx, &review, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("review not found")
		}
		return nil, storeError("failed to get review", err)
	}
	return &review, nil
}

// List retrieves reviews matching the filter, oldest first
func (a *ReviewAdapter) List(ctx context.Context, filter repositories.ReviewFilter) (_ []*entities.Review, err error) {
	ctx, done := a.client.Track(ctx, "reviews.list")
	defer done(&err)

	var conditions []exp.Expression
	if len(filter.ServiceProviderIDs) > 0 {
		conditions = append(conditions, goqu.C("service_provider_id").In(filter.ServiceProviderIDs))
	}
	if len(filter.UserIDs) > 0 {
		conditions = append(conditions, goqu.C("user_id").In(filter.UserIDs))
	}

	query, args, err := dialect.From(reviewsTable).Prepared(true).
		Select(reviewColumns...).
		Where(conditions...).
		Order(goqu.C("created_at").Asc(), goqu.C("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build review query", err)
	}

	reviews := []*entities.Review{}
	if err := a.client.Conn(ctx).SelectContext(ctx, &reviews, query, args...); err != nil {
		return nil, storeError("failed to list reviews", err)
	}
	return reviews, nil
}

// Update writes the review's rating and comment
func (a *ReviewAdapter) Update(ctx context.Context, review *entities.Review) (err error) {
	ctx, done := a.client.Track(ctx, "reviews.update")
	defer done(&err)

	query, args, err := dialect.Update(reviewsTable).Prepared(true).
		Set(goqu.Record{
			"rating":  review.Rating,
			"comment": review.Comment,
		}).
		Where(goqu.C("id").Eq(review.ID)).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build review update", err)
	}

	result, err := a.client.Conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return storeError("failed to update review", err)
	}
	return requireAffected(result, "review not found")
}

// Delete removes a review
func (a *ReviewAdapter) Delete(ctx context.Context, id string) (err error) {
	ctx, done := a.client.Track(ctx, "reviews.delete")
	defer done(&err)

	query, args, err := dialect.Delete(reviewsTable).Prepared(true).
		Where(goqu.C("id").Eq(id)).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build review delete", err)
	}

	result, err := a.client.Conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return storeError("failed to delete review", err)
	}
	return requireAffected(result, "review not found")
}
