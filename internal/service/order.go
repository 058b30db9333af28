package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/good-food/order-service/internal/entities"
	"github.com/good-food/order-service/pkg/trm"
	"github.com/good-food/order-service/pkg/utils"
)

type OrdersRepo interface {
	GetOrderByID(ctx context.Context, id string) (entities.Order, error)
	ListOrders(ctx context.Context) ([]entities.Order, error)
	ListOrdersByCustomerID(ctx context.Context, customerID string) ([]entities.Order, error)
	ListOrdersByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error)
	InsertOrder(ctx context.Context, o entities.Order) (entities.Order, error)
	UpdateOrder(ctx context.Context, o entities.Order) (entities.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

// EventPublisher pushes order mutations onto the outbound channel.
// Publishing is best-effort: the service calls it only after the store commit,
// logs a failure and never propagates it to the caller.
type EventPublisher interface {
	Publish(ctx context.Context, order entities.Order, action entities.Action) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

// CreateOrderRequest carries the fields a caller may set on creation.
// The id and creation date are assigned by the service and store.
type CreateOrderRequest struct {
	CustomerID string
	Meals      []entities.MealLine
	Status     entities.OrderStatus
}

// UpdateOrderRequest replaces status and meal lines on an existing order.
// Meals may be empty here: clearing all lines via update is allowed, unlike
// creation.
type UpdateOrderRequest struct {
	ID     string
	Meals  []entities.MealLine
	Status entities.OrderStatus
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrdersRepo
	cache     Cache
	publisher EventPublisher
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrdersRepo, cache Cache, publisher EventPublisher) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		cache:     cache,
		publisher: publisher,
	}
}

func (s *orderService) FindAll(ctx context.Context) ([]entities.Order, error) {
	return s.repo.ListOrders(ctx)
}

func (s *orderService) FindByCustomerID(ctx context.Context, customerID string) ([]entities.Order, error) {
	if strings.TrimSpace(customerID) == "" {
		return nil, entities.NewValidationError("Customer id is required")
	}
	return s.repo.ListOrdersByCustomerID(ctx, customerID)
}

func (s *orderService) FindByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error) {
	if status == "" || status == entities.StatusError {
		return nil, entities.NewValidationError("Invalid order type")
	}
	return s.repo.ListOrdersByStatus(ctx, status)
}

func (s *orderService) FindByID(ctx context.Context, id string) (entities.Order, error) {
	if strings.TrimSpace(id) == "" {
		return entities.Order{}, entities.NewValidationError("Id is required")
	}

	if data, ok := s.cache.Get(id); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err == nil {
			return order, nil
		}
		// a corrupt entry falls through to the store
		s.cache.Delete(id)
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, id)
		return err
	}
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  5,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	s.cacheSet(order)
	return order, nil
}

// Create validates the request, commits a new order and then publishes a
// CREATE event. A failed publish does not fail the creation: the store write
// is the source of truth and the event stream only mirrors it.
func (s *orderService) Create(ctx context.Context, req CreateOrderRequest) (entities.Order, error) {
	if err := validateCreateOrder(req); err != nil {
		return entities.Order{}, err
	}

	order := entities.Order{
		CreationDate: time.Now(),
		CustomerID:   req.CustomerID,
		Meals:        req.Meals,
		Status:       req.Status,
	}

	var created entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.repo.InsertOrder(ctx, order)
		return err
	})
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	s.cacheSet(created)
	s.publish(ctx, created, entities.ActionCreate)

	s.logger.Debug("order created", slog.String("order_id", created.ID))
	return created, nil
}

// Update loads the order, overwrites its status and meal lines, commits and
// publishes an UPDATE event. Customer id and creation date never change.
func (s *orderService) Update(ctx context.Context, req UpdateOrderRequest) (entities.Order, error) {
	if err := validateUpdateOrder(req); err != nil {
		return entities.Order{}, err
	}

	order, err := s.repo.GetOrderByID(ctx, req.ID)
	if err != nil {
		return entities.Order{}, err
	}

	order.Meals = req.Meals
	order.Status = req.Status

	var updated entities.Order
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		updated, err = s.repo.UpdateOrder(ctx, order)
		return err
	})
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to update order: %w", err)
	}

	s.cacheSet(updated)
	s.publish(ctx, updated, entities.ActionUpdate)

	s.logger.Debug("order updated", slog.String("order_id", updated.ID))
	return updated, nil
}

// Delete removes the order and publishes a DELETE event carrying the
// pre-delete snapshot. The publish outcome never affects the delete result.
func (s *orderService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return entities.NewValidationError("Id is required")
	}

	order, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repo.DeleteOrder(ctx, order.ID)
	})
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	s.cache.Delete(id)
	s.publish(ctx, order, entities.ActionDelete)

	s.logger.Debug("order deleted", slog.String("order_id", id))
	return nil
}

// publish is the fire-and-forget tail of every mutation. The commit already
// happened, so the only trace of a failed publish is this log line.
func (s *orderService) publish(ctx context.Context, order entities.Order, action entities.Action) {
	if err := s.publisher.Publish(ctx, order, action); err != nil {
		s.logger.Error("failed to publish order event",
			slog.String("order_id", order.ID),
			slog.String("action", string(action)),
			slog.Any("error", err),
		)
	}
}

func (s *orderService) cacheSet(order entities.Order) {
	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order for cache", slog.String("order_id", order.ID), slog.Any("error", err))
		return
	}
	s.cache.Set(order.ID, data)
}

func validateCreateOrder(req CreateOrderRequest) error {
	if strings.TrimSpace(req.CustomerID) == "" {
		return entities.NewValidationError("Customer Id is required")
	}
	if len(req.Meals) == 0 {
		return entities.NewValidationError("Meals are required")
	}
	if req.Status == "" || req.Status == entities.StatusError {
		return entities.NewValidationError("Invalid order status")
	}
	return nil
}

func validateUpdateOrder(req UpdateOrderRequest) error {
	if strings.TrimSpace(req.ID) == "" {
		return entities.NewValidationError("Id is required")
	}
	if req.Status == "" || req.Status == entities.StatusError {
		return entities.NewValidationError("Invalid order status")
	}
	return nil
}
