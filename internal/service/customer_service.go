package service

import (
	"context"

	"github.com/narekn7/yerevan-pricing/internal/models"
	"github.com/narekn7/yerevan-pricing/internal/repository"
)

// CustomerService exposes the read-only customer dimension.
type CustomerService struct {
	repo repository.CustomerRepository
}

// NewCustomerService creates a new customer service.
func NewCustomerService(repo repository.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

// List returns customers matching the filter.
func (s *CustomerService) List(ctx context.Context, filter models.CustomerFilter) ([]models.Customer, error) {
	return s.repo.List(ctx, filter)
}

// Get returns a customer by id.
func (s *CustomerService) Get(ctx context.Context, id int) (*models.Customer, error) {
	return s.repo.GetByID(ctx, id)
}
