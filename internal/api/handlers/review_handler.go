package handlers

import (
	"context"
	"net/http"

	"github.com/konekte/resourcehub/backend/internal/api/serializer"
	"github.com/konekte/resourcehub/backend/internal/application/services"
	"github.com/konekte/resourcehub/backend/internal/domain/entities"
)

const (
	msgReviewNotFound     = "Review not found"
	msgReviewCreateFailed = "Failed to create review"
	msgReviewUpdateFailed = "Failed to update review"
	msgReviewDeleteFailed = "Failed to delete review"
	msgReviewDeleted      = "Review deleted successfully"
)

var reviewRules = []string{"-user.reviews", "-service_provider.reviews"}

// ReviewService defines the review operations used by the handler.
type ReviewService interface {
	List(ctx context.Context, serviceProviderID string) ([]*entities.Review, error)
	Get(ctx context.Context, id string) (*entities.Review, error)
	Create(ctx context.Context, input services.CreateReviewInput) (*entities.Review, error)
	Update(ctx context.Context, id string, input services.UpdateReviewInput) (*entities.Review, error)
	Delete(ctx context.Context, id string) error
}

// ReviewHandler handles review HTTP requests
type ReviewHandler struct {
	service ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(service ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// ListReviews handles GET /api/reviews?service_provider_id=
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.List(r.Context(), r.URL.Query().Get("service_provider_id"))
	if err != nil {
		respondWithReadError(w, r, err, msgReviewNotFound)
		return
	}
	respondWithJSON(w, http.StatusOK, serializer.SerializeList(reviews, reviewRules...))
}

// CreateReview handles POST /api/reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	input, err := decodeCreateReview(w, r)
	if err != nil {
		respondWithWriteError(w, r, err, msgReviewNotFound, msgReviewCreateFailed)
		return
	}

	review, err := h.service.Create(r.Context(), input)
	if err != nil {
		respondWithWriteError(w, r, err, msgReviewNotFound, msgReviewCreateFailed)
		return
	}
	respondWithJSON(w, http.StatusCreated, serializer.Serialize(review, reviewRules...))
}

func decodeCreateReview(w http.ResponseWriter, r *http.Request) (services.CreateReviewInput, error) {
	var input services.CreateReviewInput
	body, err := decodePayload(w, r)
	if err != nil {
		return input, err
	}

	userID, err := body.str("user_id")
	if err != nil {
		return input, err
	}
	serviceProviderID, err := body.str("service_provider_id")
	if err != nil {
		return input, err
	}
	rating, err := body.value("rating")
	if err != nil {
		return input, err
	}
	comment, err := body.str("comment")
	if err != nil {
		return input, err
	}

	input.UserID = userID.Value
	input.ServiceProviderID = serviceProviderID.Value
	input.Rating = rating.Value
	input.Comment = comment.Value
	return input, nil
}

// GetReview handles GET /api/reviews/{id}
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	review, err := h.service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithReadError(w, r, err, msgReviewNotFound)
		return
	}
	respondWithJSON(w, http.StatusOK, serializer.Serialize(review, reviewRules...))
}

// UpdateReview handles PATCH /api/reviews/{id}. Only rating and comment
// can change.
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	body, err := decodePayload(w, r)
	if err != nil {
		respondWithWriteError(w, r, err, msgReviewNotFound, msgReviewUpdateFailed)
		return
	}

	var input services.UpdateReviewInput
	if input.Rating, err = body.value("rating"); err != nil {
		respondWithWriteError(w, r, err, msgReviewNotFound, msgReviewUpdateFailed)
		return
	}
	if input.Comment, err = body.str("comment"); err != nil {
		respondWithWriteError(w, r, err, msgReviewNotFound, msgReviewUpdateFailed)
		return
	}

	review, err := h.service.Update(r.Context(), r.PathValue("id"), input)
	if err != nil {
		respondWithWriteError(w, r, err, msgReviewNotFound, msgReviewUpdateFailed)
		return
	}
	respondWithJSON(w, http.StatusOK, serializer.Serialize(review, reviewRules...))
}

// DeleteReview handles DELETE /api/reviews/{id}
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), r.PathValue("id")); err != nil {
		respondWithWriteError(w, r, err, msgReviewNotFound, msgReviewDeleteFailed)
		return
	}
	respondWithMessage(w, msgReviewDeleted)
}
