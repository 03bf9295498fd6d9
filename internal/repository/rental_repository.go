package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vidlib/internal/model"
)

// RentalRepository defines rental persistence operations.
type RentalRepository interface {
	Create(ctx context.Context, rental *model.Rental) error
	Update(ctx context.Context, rental *model.Rental) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Rental, error)
	// FindByCustomerAndMovie returns the most recent rental for the
	// pair, open or closed.
	FindByCustomerAndMovie(ctx context.Context, customerID, movieID uuid.UUID) (*model.Rental, error)
	// FindByCustomerAndMovieForUpdate is FindByCustomerAndMovie with a
	// row-level lock, for use inside the return transaction.
	FindByCustomerAndMovieForUpdate(ctx context.Context, customerID, movieID uuid.UUID) (*model.Rental, error)
	List(ctx context.Context) ([]model.Rental, error)
}

type rentalRepository struct {
	db *gorm.DB
}

// NewRentalRepository creates a new rental repository.
func NewRentalRepository(db *gorm.DB) RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) Create(ctx context.Context, rental *model.Rental) error {
	return r.db.WithContext(ctx).Create(rental).Error
}

func (r *rentalRepository) Update(ctx context.Context, rental *model.Rental) error {
	return r.db.WithContext(ctx).Save(rental).Error
}

func (r *rentalRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Rental, error) {
	var rental model.Rental
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&rental).Error; err != nil {
		return nil, err
	}
	return &rental, nil
}

func (r *rentalRepository) FindByCustomerAndMovie(ctx context.Context, customerID, movieID uuid.UUID) (*model.Rental, error) {
	return r.findByPair(r.db.WithContext(ctx), customerID, movieID)
}

func (r *rentalRepository) FindByCustomerAndMovieForUpdate(ctx context.Context, customerID, movieID uuid.UUID) (*model.Rental, error) {
	tx := r.db.WithContext(ctx).Set("gorm:query_option", "FOR UPDATE")
	return r.findByPair(tx, customerID, movieID)
}

func (r *rentalRepository) findByPair(tx *gorm.DB, customerID, movieID uuid.UUID) (*model.Rental, error) {
	var rental model.Rental
	err := tx.Where("customer_id = ? AND movie_id = ?", customerID, movieID).
		Order("date_out DESC").
		First(&rental).Error
	if err != nil {
		return nil, err
	}
	return &rental, nil
}

// List returns all rentals, most recent checkout first.
func (r *rentalRepository) List(ctx context.Context) ([]model.Rental, error) {
	var rentals []model.Rental
	if err := r.db.WithContext(ctx).Order("date_out DESC").Find(&rentals).Error; err != nil {
		return nil, err
	}
	return rentals, nil
}
