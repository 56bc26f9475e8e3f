package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"otzyv/internal/sentiment"
)

// Review is a persisted user-submitted text plus its computed sentiment.
// CreatedAt is stored and served as an ISO-8601 UTC string.
type Review struct {
	ID        int64               `json:"id"`
	Text      string              `json:"text"`
	Sentiment sentiment.Sentiment `json:"sentiment"`
	CreatedAt string              `json:"created_at"`
}

// ReviewStore handles database operations for reviews.
type ReviewStore struct {
	db *pgxpool.Pool
}

// Init ensures the reviews table exists. Safe to call on every startup.
func (s *ReviewStore) Init(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `
        CREATE TABLE IF NOT EXISTS reviews (
            id BIGSERIAL PRIMARY KEY,
            text TEXT NOT NULL,
            sentiment TEXT NOT NULL,
            created_at TEXT NOT NULL
        )
    `
	if _, err := s.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to initialize reviews table: %w", err)
	}
	return nil
}

// Create inserts a new review and returns the fully populated record.
func (s *ReviewStore) Create(ctx context.Context, text string, label sentiment.Sentiment) (*Review, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	review := &Review{
		Text:      text,
		Sentiment: label,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	query := `
        INSERT INTO reviews (text, sentiment, created_at)
        VALUES ($1, $2, $3)
        RETURNING id
    `
	err := s.db.QueryRow(ctx, query,
		review.Text,
		review.Sentiment,
		review.CreatedAt,
	).Scan(&review.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert review: %w", err)
	}
	return review, nil
}

// GetAll returns all reviews in insertion order, optionally filtered by
// sentiment. The filter is passed to SQL equality as-is, so an unrecognized
// value matches nothing. An empty result is a non-nil empty slice.
func (s *ReviewStore) GetAll(ctx context.Context, sentimentFilter string) ([]Review, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `
        SELECT id, text, sentiment, created_at
        FROM reviews
    `
	args := []any{}
	if sentimentFilter != "" {
		query += ` WHERE sentiment = $1`
		args = append(args, sentimentFilter)
	}
	query += ` ORDER BY id ASC`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	reviews := []Review{}
	for rows.Next() {
		var r Review
		if err := rows.Scan(&r.ID, &r.Text, &r.Sentiment, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan review row: %w", err)
		}
		reviews = append(reviews, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reviews, nil
}

// Delete removes the review with the given id. It reports whether a row was
// actually removed; absence is not an error.
func (s *ReviewStore) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	tag, err := s.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete review: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
