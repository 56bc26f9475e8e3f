package main

import (
	"context"
	"fmt"
	"testing"
	"time"

	"otzyv/internal/ratelimiter"
	"otzyv/internal/reviews"
	"otzyv/internal/sentiment"
	"otzyv/internal/store"

	"go.uber.org/zap"
)

// memoryReviewStore is an in-memory stand-in for the Postgres review store.
type memoryReviewStore struct {
	nextID  int64
	records []store.Review

	// when set, every call fails with this error
	failWith error
}

func (m *memoryReviewStore) Init(_ context.Context) error {
	return m.failWith
}

func (m *memoryReviewStore) Create(_ context.Context, text string, label sentiment.Sentiment) (*store.Review, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	m.nextID++
	r := store.Review{
		ID:        m.nextID,
		Text:      text,
		Sentiment: label,
		CreatedAt: fmt.Sprintf("2026-01-01T00:00:%02dZ", m.nextID),
	}
	m.records = append(m.records, r)
	return &r, nil
}

func (m *memoryReviewStore) GetAll(_ context.Context, filter string) ([]store.Review, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := []store.Review{}
	for _, r := range m.records {
		if filter == "" || string(r.Sentiment) == filter {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memoryReviewStore) Delete(_ context.Context, id int64) (bool, error) {
	if m.failWith != nil {
		return false, m.failWith
	}
	for i, r := range m.records {
		if r.ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func newTestApplication(t *testing.T, mem *memoryReviewStore) *application {
	t.Helper()

	storage := store.Storage{Reviews: mem}

	cfg := config{
		addr: ":0",
		env:  "test",
		auth: authConfig{
			basic: basicConfig{user: "admin", pass: "secret"},
		},
		rateLimiter: ratelimiter.Config{Enabled: false},
	}

	return &application{
		config:      cfg,
		store:       storage,
		service:     reviews.NewService(storage, sentiment.Classify),
		logger:      zap.NewNop().Sugar(),
		rateLimiter: ratelimiter.NewFixedWindowLimiter(100, time.Second),
	}
}
