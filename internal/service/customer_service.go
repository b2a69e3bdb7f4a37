package service

import (
	"context"
	"fmt"
	"strings"

	"business_manager/internal/model"
	"business_manager/internal/repository"
)

// CustomerService defines operations for customers
type CustomerService interface {
	List(ctx context.Context, userID int) ([]model.Customer, error)
	Create(ctx context.Context, userID int, req model.CustomerRequest) (*model.Customer, error)
	Get(ctx context.Context, customerID, userID int, userRole string) (*model.Customer, error)
	Update(ctx context.Context, customerID, userID int, req model.CustomerRequest) (*model.Customer, error)
	Delete(ctx context.Context, customerID, userID int, userRole string) (*model.Customer, error)
}

type customerService struct {
	repo repository.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

// optional turns blank strings into NULLs
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func (s *customerService) List(ctx context.Context, userID int) ([]model.Customer, error) {
	customers, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user customers from repo: %w", err)
	}
	return customers, nil
}

func (s *customerService) Create(ctx context.Context, userID int, req model.CustomerRequest) (*model.Customer, error) {
	name := strings.TrimSpace(req.Name)
	if err := requireFields([2]string{"name", name}); err != nil {
		return nil, err
	}

	customer := &model.Customer{
		UserID:  userID,
		Name:    name,
		Email:   optional(req.Email),
		Phone:   optional(req.Phone),
		Address: optional(req.Address),
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer in repo: %w", err)
	}
	return customer, nil
}

// load fetches a customer the caller may see; admins may see every customer
func (s *customerService) load(ctx context.Context, customerID, userID int, allowAdmin bool, userRole string) (*model.Customer, error) {
	customer, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find customer by ID: %w", err)
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	if customer.UserID != userID && !(allowAdmin && userRole == model.RoleAdmin) {
		return nil, ErrForbidden
	}
	return customer, nil
}

func (s *customerService) Get(ctx context.Context, customerID, userID int, userRole string) (*model.Customer, error) {
	return s.load(ctx, customerID, userID, true, userRole)
}

// Update replaces the customer's fields. Only the owner may edit.
func (s *customerService) Update(ctx context.Context, customerID, userID int, req model.CustomerRequest) (*model.Customer, error) {
	name := strings.TrimSpace(req.Name)
	if err := requireFields([2]string{"name", name}); err != nil {
		return nil, err
	}

	customer, err := s.load(ctx, customerID, userID, false, "")
	if err != nil {
		return nil, err
	}

	customer.Name = name
	customer.Email = optional(req.Email)
	customer.Phone = optional(req.Phone)
	customer.Address = optional(req.Address)

	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to update customer in repo: %w", err)
	}
	return customer, nil
}

// Delete removes a customer and returns the deleted record
func (s *customerService) Delete(ctx context.Context, customerID, userID int, userRole string) (*model.Customer, error) {
	customer, err := s.load(ctx, customerID, userID, true, userRole)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, customerID); err != nil {
		return nil, fmt.Errorf("failed to delete customer in repo: %w", err)
	}
	return customer, nil
}
