package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"vidlib/internal/errors"
	"vidlib/internal/model"
	"vidlib/internal/repository"
)

// MockCustomerRepository is a mock implementation of CustomerRepository.
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *model.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, customer *model.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockCustomerRepository) List(ctx context.Context) ([]model.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Customer), args.Error(1)
}

// MockMovieRepository is a mock implementation of MovieRepository.
type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) Create(ctx context.Context, movie *model.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepository) Update(ctx context.Context, movie *model.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMovieRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Movie), args.Error(1)
}

func (m *MockMovieRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Movie), args.Error(1)
}

func (m *MockMovieRepository) List(ctx context.Context) ([]model.Movie, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Movie), args.Error(1)
}

func (m *MockMovieRepository) DecrementStock(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockMovieRepository) IncrementStock(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRentalRepository is a mock implementation of RentalRepository.
type MockRentalRepository struct {
	mock.Mock
}

func (m *MockRentalRepository) Create(ctx context.Context, rental *model.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}

func (m *MockRentalRepository) Update(ctx context.Context, rental *model.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}

func (m *MockRentalRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Rental), args.Error(1)
}

func (m *MockRentalRepository) FindByCustomerAndMovie(ctx context.Context, customerID, movieID uuid.UUID) (*model.Rental, error) {
	args := m.Called(ctx, customerID, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Rental), args.Error(1)
}

func (m *MockRentalRepository) FindByCustomerAndMovieForUpdate(ctx context.Context, customerID, movieID uuid.UUID) (*model.Rental, error) {
	args := m.Called(ctx, customerID, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Rental), args.Error(1)
}

func (m *MockRentalRepository) List(ctx context.Context) ([]model.Rental, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Rental), args.Error(1)
}

// fakeTxManager runs the callback immediately against the given mocks,
// standing in for a real database transaction.
type fakeTxManager struct {
	repos repository.TxRepositories
}

func (f *fakeTxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context, repos repository.TxRepositories) error) error {
	return fn(ctx, f.repos)
}

func newRentalFixture() (customerID, movieID uuid.UUID, customer *model.Customer, movie *model.Movie) {
	customerID = uuid.New()
	movieID = uuid.New()
	customer = &model.Customer{ID: customerID, Name: "Alice Morgan", Phone: "0511111111", IsGold: true}
	movie = &model.Movie{
		ID:              movieID,
		Title:           "Die Hard",
		NumberInStock:   5,
		DailyRentalRate: decimal.NewFromInt(2),
	}
	return customerID, movieID, customer, movie
}

func TestRentalService_Create(t *testing.T) {
	customerID, movieID, customer, movie := newRentalFixture()

	tests := []struct {
		name          string
		setupMocks    func(*MockCustomerRepository, *MockMovieRepository, *MockRentalRepository)
		expectedError error
	}{
		{
			name: "successful checkout",
			setupMocks: func(cr *MockCustomerRepository, mr *MockMovieRepository, rr *MockRentalRepository) {
				cr.On("FindByID", mock.Anything, customerID).Return(customer, nil)
				mr.On("FindByIDForUpdate", mock.Anything, movieID).Return(movie, nil)
				mr.On("DecrementStock", mock.Anything, movieID).Return(true, nil)
				rr.On("Create", mock.Anything, mock.AnythingOfType("*model.Rental")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "unknown movie",
			setupMocks: func(cr *MockCustomerRepository, mr *MockMovieRepository, rr *MockRentalRepository) {
				cr.On("FindByID", mock.Anything, customerID).Return(customer, nil)
				mr.On("FindByIDForUpdate", mock.Anything, movieID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrInvalidMovie,
		},
		{
			name: "movie out of stock",
			setupMocks: func(cr *MockCustomerRepository, mr *MockMovieRepository, rr *MockRentalRepository) {
				cr.On("FindByID", mock.Anything, customerID).Return(customer, nil)
				mr.On("FindByIDForUpdate", mock.Anything, movieID).Return(movie, nil)
				mr.On("DecrementStock", mock.Anything, movieID).Return(false, nil)
			},
			expectedError: errors.ErrMovieNotInStock,
		},
		{
			name: "unknown customer",
			setupMocks: func(cr *MockCustomerRepository, mr *MockMovieRepository, rr *MockRentalRepository) {
				cr.On("FindByID", mock.Anything, customerID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrInvalidCustomer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customerRepo := new(MockCustomerRepository)
			movieRepo := new(MockMovieRepository)
			rentalRepo := new(MockRentalRepository)
			tt.setupMocks(customerRepo, movieRepo, rentalRepo)

			tx := &fakeTxManager{repos: repository.TxRepositories{Movies: movieRepo, Rentals: rentalRepo}}
			svc := NewRentalService(customerRepo, rentalRepo, tx, nil)

			rental, err := svc.Create(context.Background(), customerID, movieID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, rental)
				rentalRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, rental)
				assert.Equal(t, customerID, rental.Customer.ID)
				assert.Equal(t, customer.Name, rental.Customer.Name)
				assert.Equal(t, movieID, rental.Movie.ID)
				assert.Equal(t, movie.Title, rental.Movie.Title)
				assert.True(t, movie.DailyRentalRate.Equal(rental.Movie.DailyRentalRate))
				assert.Nil(t, rental.DateReturned)
				assert.False(t, rental.RentalFee.Valid)
				assert.WithinDuration(t, time.Now(), rental.DateOut, 5*time.Second)
				movieRepo.AssertCalled(t, "DecrementStock", mock.Anything, movieID)
			}
			customerRepo.AssertExpectations(t)
			movieRepo.AssertExpectations(t)
			rentalRepo.AssertExpectations(t)
		})
	}
}

func TestRentalService_Return(t *testing.T) {
	customerID, movieID, _, movie := newRentalFixture()

	openRental := func(dateOut time.Time) *model.Rental {
		return &model.Rental{
			ID:       uuid.New(),
			Customer: model.CustomerSnapshot{ID: customerID, Name: "Alice Morgan", Phone: "0511111111"},
			Movie:    movie.Snapshot(),
			DateOut:  dateOut,
		}
	}

	t.Run("seven day rental at rate 2 is charged 14", func(t *testing.T) {
		movieRepo := new(MockMovieRepository)
		rentalRepo := new(MockRentalRepository)
		rental := openRental(time.Now().Add(-7 * 24 * time.Hour))

		rentalRepo.On("FindByCustomerAndMovieForUpdate", mock.Anything, customerID, movieID).Return(rental, nil)
		rentalRepo.On("Update", mock.Anything, rental).Return(nil)
		movieRepo.On("IncrementStock", mock.Anything, movieID).Return(nil)

		tx := &fakeTxManager{repos: repository.TxRepositories{Movies: movieRepo, Rentals: rentalRepo}}
		svc := NewRentalService(new(MockCustomerRepository), rentalRepo, tx, nil)

		returned, err := svc.Return(context.Background(), customerID, movieID)

		assert.NoError(t, err)
		assert.NotNil(t, returned.DateReturned)
		assert.WithinDuration(t, time.Now(), *returned.DateReturned, 5*time.Second)
		assert.True(t, returned.RentalFee.Valid)
		assert.True(t, returned.RentalFee.Decimal.Equal(decimal.NewFromInt(14)),
			"expected fee 14, got %s", returned.RentalFee.Decimal)
		movieRepo.AssertCalled(t, "IncrementStock", mock.Anything, movieID)
		rentalRepo.AssertExpectations(t)
	})

	t.Run("same day return is charged one day", func(t *testing.T) {
		movieRepo := new(MockMovieRepository)
		rentalRepo := new(MockRentalRepository)
		rental := openRental(time.Now().Add(-30 * time.Minute))

		rentalRepo.On("FindByCustomerAndMovieForUpdate", mock.Anything, customerID, movieID).Return(rental, nil)
		rentalRepo.On("Update", mock.Anything, rental).Return(nil)
		movieRepo.On("IncrementStock", mock.Anything, movieID).Return(nil)

		tx := &fakeTxManager{repos: repository.TxRepositories{Movies: movieRepo, Rentals: rentalRepo}}
		svc := NewRentalService(new(MockCustomerRepository), rentalRepo, tx, nil)

		returned, err := svc.Return(context.Background(), customerID, movieID)

		assert.NoError(t, err)
		assert.True(t, returned.RentalFee.Decimal.Equal(decimal.NewFromInt(2)),
			"expected fee 2, got %s", returned.RentalFee.Decimal)
	})

	t.Run("no rental for the pair", func(t *testing.T) {
		movieRepo := new(MockMovieRepository)
		rentalRepo := new(MockRentalRepository)

		rentalRepo.On("FindByCustomerAndMovieForUpdate", mock.Anything, customerID, movieID).Return(nil, gorm.ErrRecordNotFound)

		tx := &fakeTxManager{repos: repository.TxRepositories{Movies: movieRepo, Rentals: rentalRepo}}
		svc := NewRentalService(new(MockCustomerRepository), rentalRepo, tx, nil)

		_, err := svc.Return(context.Background(), customerID, movieID)

		assert.ErrorIs(t, err, errors.ErrRentalNotFound)
		movieRepo.AssertNotCalled(t, "IncrementStock", mock.Anything, mock.Anything)
	})

	t.Run("return already processed", func(t *testing.T) {
		movieRepo := new(MockMovieRepository)
		rentalRepo := new(MockRentalRepository)
		rental := openRental(time.Now().Add(-48 * time.Hour))
		returnedAt := time.Now().Add(-24 * time.Hour)
		rental.DateReturned = &returnedAt
		rental.RentalFee = decimal.NullDecimal{Decimal: decimal.NewFromInt(2), Valid: true}

		rentalRepo.On("FindByCustomerAndMovieForUpdate", mock.Anything, customerID, movieID).Return(rental, nil)

		tx := &fakeTxManager{repos: repository.TxRepositories{Movies: movieRepo, Rentals: rentalRepo}}
		svc := NewRentalService(new(MockCustomerRepository), rentalRepo, tx, nil)

		_, err := svc.Return(context.Background(), customerID, movieID)

		assert.ErrorIs(t, err, errors.ErrReturnAlreadyProcessed)
		assert.Equal(t, returnedAt, *rental.DateReturned)
		assert.True(t, rental.RentalFee.Decimal.Equal(decimal.NewFromInt(2)))
		rentalRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		movieRepo.AssertNotCalled(t, "IncrementStock", mock.Anything, mock.Anything)
	})
}

func TestDaysCharged(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name    string
		dateOut time.Time
		want    int64
	}{
		{"same day has a one day minimum", now.Add(-30 * time.Minute), 1},
		{"exactly seven days", now.Add(-7 * 24 * time.Hour), 7},
		{"seven days and an hour truncates to seven", now.Add(-(7*24 + 1) * time.Hour), 7},
		{"just under two days truncates to one", now.Add(-47 * time.Hour), 1},
		{"thirty days", now.Add(-30 * 24 * time.Hour), 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, daysCharged(tt.dateOut, now))
		})
	}
}
