package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vidlib/internal/errors"
	"vidlib/internal/model"
	"vidlib/internal/repository"
)

// CustomerInput carries validated customer fields into the service.
type CustomerInput struct {
	Name   string
	Phone  string
	IsGold bool
}

// CustomerService exposes customer CRUD.
type CustomerService interface {
	Create(ctx context.Context, in CustomerInput) (*model.Customer, error)
	Update(ctx context.Context, id uuid.UUID, in CustomerInput) (*model.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
}

type customerService struct {
	repo repository.CustomerRepository
}

// NewCustomerService creates a new customer service.
func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) Create(ctx context.Context, in CustomerInput) (*model.Customer, error) {
	customer := &model.Customer{Name: in.Name, Phone: in.Phone, IsGold: in.IsGold}
	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) Update(ctx context.Context, id uuid.UUID, in CustomerInput) (*model.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCustomerNotFound
		}
		return nil, err
	}
	customer.Name = in.Name
	customer.Phone = in.Phone
	customer.IsGold = in.IsGold
	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) Delete(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCustomerNotFound
		}
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) Get(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCustomerNotFound
		}
		return nil, err
	}
	return customer, nil
}

func (s *customerService) List(ctx context.Context) ([]model.Customer, error) {
	return s.repo.List(ctx)
}
