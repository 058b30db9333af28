package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/good-food/order-service/internal/entities"
	"github.com/good-food/order-service/internal/service"
	"github.com/good-food/order-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	FindAll(ctx context.Context) ([]entities.Order, error)
	FindByCustomerID(ctx context.Context, customerID string) ([]entities.Order, error)
	FindByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error)
	FindByID(ctx context.Context, id string) (entities.Order, error)
	Create(ctx context.Context, req service.CreateOrderRequest) (entities.Order, error)
	Update(ctx context.Context, req service.UpdateOrderRequest) (entities.Order, error)
	Delete(ctx context.Context, id string) error
}

type OrdersHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewOrdersHandler(logger *slog.Logger, svc OrderService) *OrdersHandler {
	return &OrdersHandler{
		logger:   logger.With(slog.String("handler", "orders")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *OrdersHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.FindAll)
		r.Get("/customers/{customerId}", h.FindByCustomerID)
		r.Get("/status/{status}", h.FindByStatus)
		r.Get("/{id}", h.FindByID)
		r.Post("/", h.Create)
		r.Patch("/", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// FindAll returns every active order.
// @Summary      List all orders
// @Tags         orders
// @Success      200  {array}  Order
// @Failure      500  {object} utils.ErrorResponse
// @Router       /orders [get]
func (h *OrdersHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orders, err := h.svc.FindAll(ctx)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// FindByCustomerID returns the orders of one customer; no matches is an
// empty list, not an error.
// @Summary      List orders by customer id
// @Tags         orders
// @Param        customerId  path  string  true  "Customer id"
// @Success      200  {array}  Order
// @Failure      400  {object} utils.ErrorResponse
// @Router       /orders/customers/{customerId} [get]
func (h *OrdersHandler) FindByCustomerID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	customerID := chi.URLParam(r, "customerId")

	orders, err := h.svc.FindByCustomerID(ctx, customerID)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// FindByStatus returns the orders in one lifecycle status.
// @Summary      List orders by status
// @Tags         orders
// @Param        status  path  string  true  "Order status"
// @Success      200  {array}  Order
// @Failure      400  {object} utils.ErrorResponse
// @Router       /orders/status/{status} [get]
func (h *OrdersHandler) FindByStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	status := entities.ParseOrderStatus(chi.URLParam(r, "status"))

	orders, err := h.svc.FindByStatus(ctx, status)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// FindByID returns a single order or 404.
// @Summary      Get order by id
// @Tags         orders
// @Param        id  path  string  true  "Order id"
// @Success      200  {object} Order
// @Failure      404  {object} utils.ErrorResponse
// @Router       /orders/{id} [get]
func (h *OrdersHandler) FindByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.validate.Var(id, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.FindByID(ctx, id)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// Create registers a new order and answers with the stored snapshot.
// @Summary      Create a new order
// @Tags         orders
// @Accept       json
// @Param        request  body  OrderCreateRequest  true  "Order to create"
// @Success      201  {object} Order
// @Failure      400  {object} utils.ErrorResponse
// @Router       /orders [post]
func (h *OrdersHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body OrderCreateRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	order, err := h.svc.Create(ctx, CreateOrderJSONToRequest(body))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// Update overwrites status and meal lines of an existing order.
// @Summary      Update an order
// @Tags         orders
// @Accept       json
// @Param        request  body  OrderUpdateRequest  true  "Order fields to overwrite"
// @Success      200  {object} Order
// @Failure      400  {object} utils.ErrorResponse
// @Failure      404  {object} utils.ErrorResponse
// @Router       /orders [patch]
func (h *OrdersHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body OrderUpdateRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	order, err := h.svc.Update(ctx, UpdateOrderJSONToRequest(body))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// Delete removes an order.
// @Summary      Delete an order
// @Tags         orders
// @Param        id  path  string  true  "Order id"
// @Success      204
// @Failure      404  {object} utils.ErrorResponse
// @Router       /orders/{id} [delete]
func (h *OrdersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.validate.Var(id, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if err := h.svc.Delete(ctx, id); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *OrdersHandler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	var ve entities.ValidationError
	switch {
	case errors.As(err, &ve):
		utils.WriteError(w, ve.Reason, http.StatusBadRequest)
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	default:
		h.logger.ErrorContext(ctx, "request failed", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
