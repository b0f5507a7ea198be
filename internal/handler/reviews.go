package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/reufer-studio/marketplace-api/internal/repository"
	"github.com/reufer-studio/marketplace-api/internal/server"
	"github.com/reufer-studio/marketplace-api/internal/service"
)

// ReviewHandler exposes the review endpoints.
type ReviewHandler struct {
	Handler
	reviews *service.ReviewService
}

// NewReviewHandler constructs a ReviewHandler.
func NewReviewHandler(s *server.Server, reviews *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		Handler: NewHandler(s),
		reviews: reviews,
	}
}

// ListReviewsRequest carries the optional status filter.
type ListReviewsRequest struct {
	Status string `query:"status"`
}

func (r *ListReviewsRequest) Validate() error { return nil }

// List returns reviews, approved only unless the filter says
// otherwise.
func (h *ReviewHandler) List(c echo.Context, req *ListReviewsRequest) ([]repository.Review, error) {
	return h.reviews.List(c.Request().Context(), req.Status)
}

// CreateReviewRequest is the submission payload. A status field, if
// sent, is ignored: new reviews always start pending.
type CreateReviewRequest struct {
	Name    *string `json:"name"`
	City    *string `json:"city"`
	Rating  *int    `json:"rating"`
	Text    *string `json:"text"`
	Product *string `json:"product"`
	UserID  *int64  `json:"user_id"`
}

func (r *CreateReviewRequest) Validate() error { return nil }

// CreateReviewResponse returns the assigned identity and the
// moderation notice.
type CreateReviewResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// Create submits a review for moderation.
func (h *ReviewHandler) Create(c echo.Context, req *CreateReviewRequest) (*CreateReviewResponse, error) {
	id, err := h.reviews.Create(c.Request().Context(), service.CreateReviewInput{
		Name:    req.Name,
		City:    req.City,
		Rating:  req.Rating,
		Text:    req.Text,
		Product: req.Product,
		UserID:  req.UserID,
	})
	if err != nil {
		return nil, err
	}

	return &CreateReviewResponse{ID: id, Message: "Review submitted for moderation"}, nil
}

// ModerateReviewRequest sets the new moderation status.
type ModerateReviewRequest struct {
	Status string `json:"status"`
}

func (r *ModerateReviewRequest) Validate() error { return nil }

// Moderate approves or rejects a review. Status validation lives in
// the service so the message matches the invalid-value case exactly.
func (h *ReviewHandler) Moderate(c echo.Context, req *ModerateReviewRequest) (*MessageResponse, error) {
	id, err := parseIDParam(c)
	if err != nil {
		return nil, err
	}

	if err := h.reviews.Moderate(c.Request().Context(), id, req.Status); err != nil {
		return nil, err
	}

	return &MessageResponse{Message: "Review updated"}, nil
}
