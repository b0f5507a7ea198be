package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/reufer-studio/marketplace-api/internal/errs"
	"github.com/reufer-studio/marketplace-api/internal/repository"
)

// Review moderation states. New reviews always start pending and only
// an explicit moderation update moves them out of it.
const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

// DefaultReviewAuthor is shown when a reviewer leaves the name blank.
const DefaultReviewAuthor = "Аноним"

// DefaultReviewRating is used when no rating is supplied.
const DefaultReviewRating = 5

// ReviewStore is the persistence surface the review service needs.
type ReviewStore interface {
	List(ctx context.Context, status string) ([]repository.Review, error)
	Create(ctx context.Context, params repository.ReviewParams) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

// ReviewService implements review listing, submission, and moderation.
type ReviewService struct {
	store  ReviewStore
	logger *zerolog.Logger
}

// NewReviewService constructs a ReviewService.
func NewReviewService(store ReviewStore, logger *zerolog.Logger) *ReviewService {
	return &ReviewService{
		store:  store,
		logger: logger,
	}
}

// List returns reviews newest first. An empty status filters to
// approved reviews; "all" disables the filter entirely. Any other
// value filters verbatim.
func (s *ReviewService) List(ctx context.Context, status string) ([]repository.Review, error) {
	switch status {
	case "":
		status = ReviewStatusApproved
	case "all":
		status = ""
	}
	return s.store.List(ctx, status)
}

// CreateReviewInput is the validated input for submitting a review.
// Optional fields are pointers so absent and zero can be told apart.
type CreateReviewInput struct {
	Name    *string
	City    *string
	Rating  *int
	Text    *string
	Product *string
	UserID  *int64
}

// Create submits a review in pending status and returns the new id.
// Missing fields get display defaults rather than failing.
func (s *ReviewService) Create(ctx context.Context, input CreateReviewInput) (int64, error) {
	params := repository.ReviewParams{
		AuthorName:  stringOr(input.Name, DefaultReviewAuthor),
		City:        stringOr(input.City, ""),
		Rating:      intOr(input.Rating, DefaultReviewRating),
		Text:        stringOr(input.Text, ""),
		ProductName: stringOr(input.Product, ""),
		UserID:      input.UserID,
	}

	return s.store.Create(ctx, params)
}

// Moderate sets the review's moderation status. Only the three known
// states are accepted.
func (s *ReviewService) Moderate(ctx context.Context, id int64, status string) error {
	switch status {
	case ReviewStatusPending, ReviewStatusApproved, ReviewStatusRejected:
	default:
		return errs.NewBadRequestError("Invalid status", true, nil, nil, nil)
	}

	return s.store.UpdateStatus(ctx, id, status)
}

func intOr(v *int, fallback int) int {
	if v != nil {
		return *v
	}
	return fallback
}
