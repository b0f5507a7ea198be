package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reufer-studio/marketplace-api/internal/errs"
	"github.com/reufer-studio/marketplace-api/internal/repository"
)

type fakeReviewStore struct {
	listStatuses []string
	created      []repository.ReviewParams
	statusSets   map[int64]string
}

func (f *fakeReviewStore) List(ctx context.Context, status string) ([]repository.Review, error) {
	f.listStatuses = append(f.listStatuses, status)
	return nil, nil
}

func (f *fakeReviewStore) Create(ctx context.Context, params repository.ReviewParams) (int64, error) {
	f.created = append(f.created, params)
	return int64(len(f.created)), nil
}

func (f *fakeReviewStore) UpdateStatus(ctx context.Context, id int64, status string) error {
	if f.statusSets == nil {
		f.statusSets = map[int64]string{}
	}
	f.statusSets[id] = status
	return nil
}

func newReviewService(store *fakeReviewStore) *ReviewService {
	logger := zerolog.Nop()
	return NewReviewService(store, &logger)
}

func TestReviewListStatusFilter(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   string
	}{
		{"default is approved", "", ReviewStatusApproved},
		{"all bypasses the filter", "all", ""},
		{"explicit status passes through", "pending", "pending"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeReviewStore{}
			svc := newReviewService(store)

			_, err := svc.List(context.Background(), tt.status)
			require.NoError(t, err)
			require.Len(t, store.listStatuses, 1)
			assert.Equal(t, tt.want, store.listStatuses[0])
		})
	}
}

func TestReviewCreateAppliesDefaults(t *testing.T) {
	store := &fakeReviewStore{}
	svc := newReviewService(store)

	id, err := svc.Create(context.Background(), CreateReviewInput{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	got := store.created[0]
	assert.Equal(t, DefaultReviewAuthor, got.AuthorName)
	assert.Equal(t, DefaultReviewRating, got.Rating)
	assert.Empty(t, got.Text)
	assert.Empty(t, got.City)
	assert.Nil(t, got.UserID)
}

func TestReviewCreateKeepsExplicitValues(t *testing.T) {
	store := &fakeReviewStore{}
	svc := newReviewService(store)

	name := "Мария"
	rating := 4
	userID := int64(7)

	_, err := svc.Create(context.Background(), CreateReviewInput{
		Name:   &name,
		Rating: &rating,
		UserID: &userID,
	})
	require.NoError(t, err)

	got := store.created[0]
	assert.Equal(t, "Мария", got.AuthorName)
	assert.Equal(t, 4, got.Rating)
	require.NotNil(t, got.UserID)
	assert.Equal(t, int64(7), *got.UserID)
}

func TestReviewModerate(t *testing.T) {
	for _, status := range []string{ReviewStatusPending, ReviewStatusApproved, ReviewStatusRejected} {
		t.Run(status, func(t *testing.T) {
			store := &fakeReviewStore{}
			svc := newReviewService(store)

			require.NoError(t, svc.Moderate(context.Background(), 3, status))
			assert.Equal(t, status, store.statusSets[3])
		})
	}
}

func TestReviewModerateRejectsUnknownStatus(t *testing.T) {
	store := &fakeReviewStore{}
	svc := newReviewService(store)

	err := svc.Moderate(context.Background(), 3, "published")

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Status)
	assert.Empty(t, store.statusSets, "status must stay unchanged")
}
