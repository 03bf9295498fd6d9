package service

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"vidlib/internal/cache"
	"vidlib/internal/errors"
	"vidlib/internal/model"
	"vidlib/internal/repository"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// RentalService handles the rental lifecycle: checkout and return.
type RentalService interface {
	Create(ctx context.Context, customerID, movieID uuid.UUID) (*model.Rental, error)
	Return(ctx context.Context, customerID, movieID uuid.UUID) (*model.Rental, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Rental, error)
	List(ctx context.Context) ([]model.Rental, error)
}

type rentalService struct {
	customerRepo repository.CustomerRepository
	rentalRepo   repository.RentalRepository
	tx           repository.TxManager
	cache        *cache.Client
}

// NewRentalService creates a new rental service.
func NewRentalService(
	customerRepo repository.CustomerRepository,
	rentalRepo repository.RentalRepository,
	tx repository.TxManager,
	cache *cache.Client,
) RentalService {
	return &rentalService{
		customerRepo: customerRepo,
		rentalRepo:   rentalRepo,
		tx:           tx,
		cache:        cache,
	}
}

// Create checks a movie out to a customer. The rental insert and the
// stock decrement run in one transaction, and the decrement is
// conditional on stock being available, so two concurrent checkouts of
// the last unit cannot both succeed.
func (s *rentalService) Create(ctx context.Context, customerID, movieID uuid.UUID) (*model.Rental, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrInvalidCustomer
		}
		return nil, err
	}

	var rental *model.Rental
	err = s.tx.WithTransaction(ctx, func(ctx context.Context, repos repository.TxRepositories) error {
		movie, err := repos.Movies.FindByIDForUpdate(ctx, movieID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrInvalidMovie
			}
			return err
		}

		taken, err := repos.Movies.DecrementStock(ctx, movieID)
		if err != nil {
			return err
		}
		if !taken {
			return errors.ErrMovieNotInStock
		}

		rental = &model.Rental{
			Customer: customer.Snapshot(),
			Movie:    movie.Snapshot(),
			DateOut:  time.Now(),
		}
		return repos.Rentals.Create(ctx, rental)
	})
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, movieCacheKey(movieID))

	logger.Info().
		Str("rental_id", rental.ID.String()).
		Str("customer_id", customerID.String()).
		Str("movie_id", movieID.String()).
		Msg("rental created")

	return rental, nil
}

// Return closes the rental for the given customer/movie pair, computes
// the fee from whole elapsed days and puts the unit back in stock. The
// rental update and the stock increment share one transaction.
func (s *rentalService) Return(ctx context.Context, customerID, movieID uuid.UUID) (*model.Rental, error) {
	var rental *model.Rental
	err := s.tx.WithTransaction(ctx, func(ctx context.Context, repos repository.TxRepositories) error {
		var err error
		rental, err = repos.Rentals.FindByCustomerAndMovieForUpdate(ctx, customerID, movieID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrRentalNotFound
			}
			return err
		}

		if rental.Returned() {
			return errors.ErrReturnAlreadyProcessed
		}

		now := time.Now()
		fee := decimal.NewFromInt(daysCharged(rental.DateOut, now)).Mul(rental.Movie.DailyRentalRate)
		rental.DateReturned = &now
		rental.RentalFee = decimal.NullDecimal{Decimal: fee, Valid: true}

		if err := repos.Rentals.Update(ctx, rental); err != nil {
			return err
		}
		return repos.Movies.IncrementStock(ctx, rental.Movie.ID)
	})
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, movieCacheKey(movieID))

	logger.Info().
		Str("rental_id", rental.ID.String()).
		Str("rental_fee", rental.RentalFee.Decimal.String()).
		Msg("return processed")

	return rental, nil
}

func (s *rentalService) Get(ctx context.Context, id uuid.UUID) (*model.Rental, error) {
	rental, err := s.rentalRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRentalNotFound
		}
		return nil, err
	}
	return rental, nil
}

func (s *rentalService) List(ctx context.Context) ([]model.Rental, error) {
	return s.rentalRepo.List(ctx)
}

// daysCharged is the number of whole days between checkout and return,
// truncated, with a one day minimum so same-day returns are not free.
// An exact 7-day rental returned moments later is charged 7 days.
func daysCharged(dateOut, dateReturned time.Time) int64 {
	days := int64(dateReturned.Sub(dateOut).Hours() / 24)
	if days < 1 {
		days = 1
	}
	return days
}
