package reviews

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"otzyv/internal/sentiment"
	"otzyv/internal/store"
)

type mockReviewStore struct {
	createFn func(ctx context.Context, text string, label sentiment.Sentiment) (*store.Review, error)
	getAllFn func(ctx context.Context, filter string) ([]store.Review, error)
	deleteFn func(ctx context.Context, id int64) (bool, error)
}

func (m *mockReviewStore) Create(ctx context.Context, text string, label sentiment.Sentiment) (*store.Review, error) {
	return m.createFn(ctx, text, label)
}

func (m *mockReviewStore) GetAll(ctx context.Context, filter string) ([]store.Review, error) {
	return m.getAllFn(ctx, filter)
}

func (m *mockReviewStore) Delete(ctx context.Context, id int64) (bool, error) {
	return m.deleteFn(ctx, id)
}

func newTestService(mock *mockReviewStore) *Service {
	return &Service{reviews: mock, classify: sentiment.Classify}
}

func TestCreateReview(t *testing.T) {
	mock := &mockReviewStore{
		createFn: func(_ context.Context, text string, label sentiment.Sentiment) (*store.Review, error) {
			return &store.Review{ID: 1, Text: text, Sentiment: label, CreatedAt: "2026-01-01T00:00:00Z"}, nil
		},
	}
	svc := newTestService(mock)

	review, err := svc.CreateReview(context.Background(), "Хороший товар")
	require.NoError(t, err)
	assert.Equal(t, int64(1), review.ID)
	assert.Equal(t, "Хороший товар", review.Text)
	assert.Equal(t, sentiment.Positive, review.Sentiment)
}

func TestCreateReviewEmptyText(t *testing.T) {
	svc := newTestService(&mockReviewStore{
		createFn: func(_ context.Context, _ string, _ sentiment.Sentiment) (*store.Review, error) {
			t.Fatal("store must not be called for empty text")
			return nil, nil
		},
	})

	for _, text := range []string{"", "   ", "\t\n"} {
		_, err := svc.CreateReview(context.Background(), text)
		require.Error(t, err)
		assert.True(t, IsValidation(err))
		assert.EqualError(t, err, "text must be a non-empty string")
	}
}

func TestCreateReviewStorageErrorPassesThrough(t *testing.T) {
	storageErr := errors.New("failed to insert review: connection refused")
	svc := newTestService(&mockReviewStore{
		createFn: func(_ context.Context, _ string, _ sentiment.Sentiment) (*store.Review, error) {
			return nil, storageErr
		},
	})

	_, err := svc.CreateReview(context.Background(), "Отличный продукт!")
	assert.ErrorIs(t, err, storageErr)
	assert.False(t, IsValidation(err))
}

func TestGetReviewsPassesFilterThrough(t *testing.T) {
	var gotFilter string
	svc := newTestService(&mockReviewStore{
		getAllFn: func(_ context.Context, filter string) ([]store.Review, error) {
			gotFilter = filter
			return []store.Review{}, nil
		},
	})

	out, err := svc.GetReviews(context.Background(), "bogus")
	require.NoError(t, err)
	assert.Equal(t, "bogus", gotFilter)
	assert.Empty(t, out)
}

func TestDeleteReview(t *testing.T) {
	deleted := map[int64]bool{7: true}
	svc := newTestService(&mockReviewStore{
		deleteFn: func(_ context.Context, id int64) (bool, error) {
			ok := deleted[id]
			delete(deleted, id)
			return ok, nil
		},
	})

	ok, err := svc.DeleteReview(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, ok)

	// second delete of the same id is absence, not an error
	ok, err = svc.DeleteReview(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.DeleteReview(context.Background(), 999999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteReviewInvalidID(t *testing.T) {
	svc := newTestService(&mockReviewStore{
		deleteFn: func(_ context.Context, _ int64) (bool, error) {
			t.Fatal("store must not be called for invalid ids")
			return false, nil
		},
	})

	for _, id := range []int64{0, -1, -42} {
		_, err := svc.DeleteReview(context.Background(), id)
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	}
}
