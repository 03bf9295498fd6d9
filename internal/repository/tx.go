package repository

import (
	"context"

	"gorm.io/gorm"
)

// TxRepositories bundles transaction-scoped repositories handed to a
// WithTransaction callback. Every operation performed through them runs
// on the same database transaction.
type TxRepositories struct {
	Movies  MovieRepository
	Rentals RentalRepository
}

// TxManager executes multi-repository units of work inside a single
// database transaction. The rental flows use it to keep the rental write
// and the stock adjustment atomic.
type TxManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repos TxRepositories) error) error
}

type txManager struct {
	db *gorm.DB
}

// NewTxManager creates a TxManager over the given database handle.
func NewTxManager(db *gorm.DB) TxManager {
	return &txManager{db: db}
}

func (m *txManager) WithTransaction(ctx context.Context, fn func(ctx context.Context, repos TxRepositories) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := TxRepositories{
			Movies:  &movieRepository{db: tx},
			Rentals: &rentalRepository{db: tx},
		}
		return fn(ctx, repos)
	})
}
