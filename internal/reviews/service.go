// Package reviews holds the service layer: it validates input, classifies
// review text, and delegates persistence to the store.
package reviews

import (
	"context"
	"errors"
	"strings"

	"otzyv/internal/sentiment"
	"otzyv/internal/store"
)

// ValidationError signals that the caller supplied malformed or missing
// input. The transport layer maps it to HTTP 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Classifier maps review text to a sentiment label.
type Classifier func(text string) sentiment.Sentiment

type Service struct {
	reviews interface {
		Create(context.Context, string, sentiment.Sentiment) (*store.Review, error)
		GetAll(context.Context, string) ([]store.Review, error)
		Delete(context.Context, int64) (bool, error)
	}
	classify Classifier
}

func NewService(storage store.Storage, classify Classifier) *Service {
	return &Service{
		reviews:  storage.Reviews,
		classify: classify,
	}
}

// CreateReview classifies text and persists the resulting review. Storage
// errors pass through unmodified.
func (s *Service) CreateReview(ctx context.Context, text string) (*store.Review, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ValidationError{Message: "text must be a non-empty string"}
	}

	label := s.classify(text)
	return s.reviews.Create(ctx, text, label)
}

// GetReviews lists reviews, optionally filtered by sentiment. The filter is
// passed through as-is: an unrecognized value matches nothing at the store.
func (s *Service) GetReviews(ctx context.Context, sentimentFilter string) ([]store.Review, error) {
	return s.reviews.GetAll(ctx, sentimentFilter)
}

// DeleteReview removes a review by id and reports whether a row existed.
func (s *Service) DeleteReview(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, &ValidationError{Message: "review ID must be a positive integer"}
	}
	return s.reviews.Delete(ctx, id)
}
