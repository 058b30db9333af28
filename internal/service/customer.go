package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/good-food/order-service/internal/entities"
)

type CustomersRepo interface {
	GetCustomerByID(ctx context.Context, id string) (entities.Customer, error)
	GetCustomerBySuid(ctx context.Context, suid string) (entities.Customer, error)
	InsertCustomer(ctx context.Context, c entities.Customer) (entities.Customer, error)
	UpdateCustomer(ctx context.Context, c entities.Customer) (entities.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}

type CreateCustomerRequest struct {
	Name    string
	Surname string
	Suid    string
}

type UpdateCustomerRequest struct {
	ID      string
	Name    string
	Surname string
	Suid    string
}

// customerService is plain CRUD: customers emit no events.
type customerService struct {
	logger *slog.Logger
	repo   CustomersRepo
}

func NewCustomerService(logger *slog.Logger, repo CustomersRepo) *customerService {
	return &customerService{
		logger: logger.With(slog.String("service", "customer")),
		repo:   repo,
	}
}

func (s *customerService) FindByID(ctx context.Context, id string) (entities.Customer, error) {
	if strings.TrimSpace(id) == "" {
		return entities.Customer{}, entities.NewValidationError("Id is required")
	}
	return s.repo.GetCustomerByID(ctx, id)
}

func (s *customerService) FindBySuid(ctx context.Context, suid string) (entities.Customer, error) {
	if strings.TrimSpace(suid) == "" {
		return entities.Customer{}, entities.NewValidationError("Suid is required")
	}
	return s.repo.GetCustomerBySuid(ctx, suid)
}

func (s *customerService) Create(ctx context.Context, req CreateCustomerRequest) (entities.Customer, error) {
	if err := validateCreateCustomer(req); err != nil {
		return entities.Customer{}, err
	}

	customer := entities.Customer{
		CreationDate: time.Now(),
		Name:         req.Name,
		Surname:      req.Surname,
		Suid:         req.Suid,
	}

	created, err := s.repo.InsertCustomer(ctx, customer)
	if err != nil {
		return entities.Customer{}, fmt.Errorf("failed to create customer: %w", err)
	}
	return created, nil
}

func (s *customerService) Update(ctx context.Context, req UpdateCustomerRequest) (entities.Customer, error) {
	if err := validateUpdateCustomer(req); err != nil {
		return entities.Customer{}, err
	}

	customer, err := s.repo.GetCustomerByID(ctx, req.ID)
	if err != nil {
		return entities.Customer{}, err
	}

	customer.Name = req.Name
	customer.Surname = req.Surname
	customer.Suid = req.Suid

	updated, err := s.repo.UpdateCustomer(ctx, customer)
	if err != nil {
		return entities.Customer{}, fmt.Errorf("failed to update customer: %w", err)
	}
	return updated, nil
}

// DeleteBySuid removes a customer addressed by the external suid.
func (s *customerService) DeleteBySuid(ctx context.Context, suid string) error {
	if strings.TrimSpace(suid) == "" {
		return entities.NewValidationError("Suid is required")
	}

	customer, err := s.repo.GetCustomerBySuid(ctx, suid)
	if err != nil {
		return err
	}
	return s.repo.DeleteCustomer(ctx, customer.ID)
}

func validateCreateCustomer(req CreateCustomerRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return entities.NewValidationError("Name is required")
	}
	if strings.TrimSpace(req.Suid) == "" {
		return entities.NewValidationError("Suid is required")
	}
	if strings.TrimSpace(req.Surname) == "" {
		return entities.NewValidationError("Surname is required")
	}
	return nil
}

func validateUpdateCustomer(req UpdateCustomerRequest) error {
	if strings.TrimSpace(req.ID) == "" {
		return entities.NewValidationError("Id is required")
	}
	if strings.TrimSpace(req.Name) == "" {
		return entities.NewValidationError("Name is required")
	}
	if strings.TrimSpace(req.Suid) == "" {
		return entities.NewValidationError("Suid is required")
	}
	if strings.TrimSpace(req.Surname) == "" {
		return entities.NewValidationError("Surname is required")
	}
	return nil
}
