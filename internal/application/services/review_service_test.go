package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/konekte/resourcehub/backend/internal/application/services"
	"github.com/konekte/resourcehub/backend/internal/domain/entities"
	"github.com/konekte/resourcehub/backend/internal/domain/repositories"
	apperrors "github.com/konekte/resourcehub/backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReviewService_CreateRejectsBadRatings(t *testing.T) {
	repos := newRepoSet(t)
	service := services.NewReviewService(repos.users, repos.providers, repos.reviews, repos.tx)

	tests := []struct {
		name    string
		rating  any
		message string
	}{
		{"too high", json.Number("6"), "Rating must be between 1 and 5"},
		{"zero", json.Number("0"), "Rating must be between 1 and 5"},
		{"fractional", json.Number("4.5"), "Rating must be an integer"},
		{"string", "5", "Rating must be an integer"},
		{"bool", true, "Rating must be an integer"},
		{"missing", nil, "Rating must be an integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(context.Background(), services.CreateReviewInput{
				Rating:            tt.rating,
				Comment:           "Very helpful staff",
				UserID:            "u-1",
				ServiceProviderID: "sp-1",
			})

			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
			assert.Equal(t, tt.message, appErr.Message)
		})
	}
	repos.reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReviewService_CreateRequiresReferences(t *testing.T) {
	repos := newRepoSet(t)
	service := services.NewReviewService(repos.users, repos.providers, repos.reviews, repos.tx)

	_, err := service.Create(context.Background(), services.CreateReviewInput{
		Rating:  json.Number("5"),
		Comment: "Very helpful staff",
		UserID:  "u-1",
	})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "service_provider_id is required", appErr.Message)
}

func TestReviewService_CreateLoadsAuthorAndProvider(t *testing.T) {
	repos := newRepoSet(t)
	service := services.NewReviewService(repos.users, repos.providers, repos.reviews, repos.tx)
	author := &entities.User{ID: "u-1"}
	provider := &entities.ServiceProvider{ID: "sp-1"}

	repos.reviews.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entities.Review")).Return(nil)
	repos.users.EXPECT().GetByIDs(mock.Anything, []string{"u-1"}).Return([]*entities.User{author}, nil)
	repos.providers.EXPECT().GetByIDs(mock.Anything, []string{"sp-1"}).Return([]*entities.ServiceProvider{provider}, nil)

	review, err := service.Create(context.Background(), services.CreateReviewInput{
		Rating:            json.Number("5"),
		Comment:           "  Very helpful staff  ",
		UserID:            "u-1",
		ServiceProviderID: "sp-1",
	})

	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
	assert.Equal(t, "Very helpful staff", review.Comment)
	assert.Same(t, author, review.User)
	assert.Same(t, provider, review.ServiceProvider)
}

func TestReviewService_CreateReturnsSavedReviewWhenReloadFails(t *testing.T) {
	repos := newRepoSet(t)
	service := services.NewReviewService(repos.users, repos.providers, repos.reviews, repos.tx)

	repos.reviews.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entities.Review")).Return(nil)
	repos.users.EXPECT().GetByIDs(mock.Anything, []string{"u-1"}).
		Return(nil, apperrors.NewInternalError("failed to get users", errors.New("connection reset")))

	review, err := service.Create(context.Background(), services.CreateReviewInput{
		Rating:            json.Number("5"),
		Comment:           "Very helpful staff",
		UserID:            "u-1",
		ServiceProviderID: "sp-1",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, review.ID)
	assert.Equal(t, 5, review.Rating)
	assert.Nil(t, review.User)
	assert.Equal(t, 1, repos.tx.Commits)
}

func TestReviewService_UpdateCommentKeepsRating(t *testing.T) {
	repos := newRepoSet(t)
	service := services.NewReviewService(repos.users, repos.providers, repos.reviews, repos.tx)

	existing := &entities.Review{ID: "r-1", Rating: 4, Comment: "Good care", UserID: "u-1", ServiceProviderID: "sp-1"}
	repos.reviews.EXPECT().GetByID(mock.Anything, "r-1").Return(existing, nil)
	repos.reviews.EXPECT().Update(mock.Anything, existing).Return(nil)
	repos.users.EXPECT().GetByIDs(mock.Anything, mock.Anything).Return([]*entities.User{}, nil)
	repos.providers.EXPECT().GetByIDs(mock.Anything, mock.Anything).Return([]*entities.ServiceProvider{}, nil)

	got, err := service.Update(context.Background(), "r-1", services.UpdateReviewInput{Comment: services.Some("Updated text")})

	require.NoError(t, err)
	assert.Equal(t, "Updated text", got.Comment)
	assert.Equal(t, 4, got.Rating)
}

func TestReviewService_ListByServiceProvider(t *testing.T) {
	repos := newRepoSet(t)
	service := services.NewReviewService(repos.users, repos.providers, repos.reviews, repos.tx)

	repos.reviews.EXPECT().
		List(mock.Anything, repositories.ReviewFilter{ServiceProviderIDs: []string{"sp-1"}}).
		Return([]*entities.Review{}, nil)

	got, err := service.List(context.Background(), "sp-1")

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReviewService_DeleteMissing(t *testing.T) {
	repos := newRepoSet(t)
	service := services.NewReviewService(repos.users, repos.providers, repos.reviews, repos.tx)

	repos.reviews.EXPECT().Delete(mock.Anything, "r-9").Return(apperrors.NewNotFoundError("review not found"))

	err := service.Delete(context.Background(), "r-9")
	assert.True(t, apperrors.IsNotFound(err))
}
