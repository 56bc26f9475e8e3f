package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"otzyv/internal/sentiment"
)

// Absence is not an error in this store: Delete reports it as a boolean and
// GetAll returns an empty slice, so no not-found sentinel exists here.
var QueryTimeoutDuration = time.Second * 5

type Storage struct {
	Reviews interface {
		Init(context.Context) error
		Create(context.Context, string, sentiment.Sentiment) (*Review, error)
		GetAll(context.Context, string) ([]Review, error)
		Delete(context.Context, int64) (bool, error)
	}
}

func NewStorage(db *pgxpool.Pool) Storage {
	return Storage{
		Reviews: &ReviewStore{db},
	}
}
