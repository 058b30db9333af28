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
)

type CustomerService interface {
	FindByID(ctx context.Context, id string) (entities.Customer, error)
	FindBySuid(ctx context.Context, suid string) (entities.Customer, error)
	Create(ctx context.Context, req service.CreateCustomerRequest) (entities.Customer, error)
	Update(ctx context.Context, req service.UpdateCustomerRequest) (entities.Customer, error)
	DeleteBySuid(ctx context.Context, suid string) error
}

type CustomersHandler struct {
	logger *slog.Logger
	svc    CustomerService
}

func NewCustomersHandler(logger *slog.Logger, svc CustomerService) *CustomersHandler {
	return &CustomersHandler{
		logger: logger.With(slog.String("handler", "customers")),
		svc:    svc,
	}
}

func (h *CustomersHandler) Init(r chi.Router) {
	r.Route("/customers", func(r chi.Router) {
		r.Get("/{id}", h.FindByID)
		r.Get("/suid/{suid}", h.FindBySuid)
		r.Post("/", h.Create)
		r.Patch("/", h.Update)
		r.Delete("/{suid}", h.DeleteBySuid)
	})
}

// FindByID returns a customer by internal id.
// @Summary      Get customer by id
// @Tags         customers
// @Param        id  path  string  true  "Customer id"
// @Success      200  {object} Customer
// @Failure      404  {object} utils.ErrorResponse
// @Router       /customers/{id} [get]
func (h *CustomersHandler) FindByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	customer, err := h.svc.FindByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	utils.WriteJSON(w, CustomerEntityToJSON(customer), http.StatusOK)
}

// FindBySuid returns a customer by the external suid.
// @Summary      Get customer by suid
// @Tags         customers
// @Param        suid  path  string  true  "Customer suid"
// @Success      200  {object} Customer
// @Failure      404  {object} utils.ErrorResponse
// @Router       /customers/suid/{suid} [get]
func (h *CustomersHandler) FindBySuid(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	customer, err := h.svc.FindBySuid(ctx, chi.URLParam(r, "suid"))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	utils.WriteJSON(w, CustomerEntityToJSON(customer), http.StatusOK)
}

// Create registers a new customer.
// @Summary      Create a new customer
// @Tags         customers
// @Accept       json
// @Param        request  body  CustomerCreateRequest  true  "Customer to create"
// @Success      201  {object} Customer
// @Failure      400  {object} utils.ErrorResponse
// @Router       /customers [post]
func (h *CustomersHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body CustomerCreateRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	customer, err := h.svc.Create(ctx, service.CreateCustomerRequest{
		Name:    body.Name,
		Surname: body.Surname,
		Suid:    body.Suid,
	})
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	utils.WriteJSON(w, CustomerEntityToJSON(customer), http.StatusCreated)
}

// Update overwrites a customer's fields.
// @Summary      Update a customer
// @Tags         customers
// @Accept       json
// @Param        request  body  CustomerUpdateRequest  true  "Customer fields to overwrite"
// @Success      200  {object} Customer
// @Failure      404  {object} utils.ErrorResponse
// @Router       /customers [patch]
func (h *CustomersHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body CustomerUpdateRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	customer, err := h.svc.Update(ctx, service.UpdateCustomerRequest{
		ID:      body.ID,
		Name:    body.Name,
		Surname: body.Surname,
		Suid:    body.Suid,
	})
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	utils.WriteJSON(w, CustomerEntityToJSON(customer), http.StatusOK)
}

// DeleteBySuid removes a customer addressed by suid.
// @Summary      Delete a customer by suid
// @Tags         customers
// @Param        suid  path  string  true  "Customer suid"
// @Success      204
// @Failure      404  {object} utils.ErrorResponse
// @Router       /customers/{suid} [delete]
func (h *CustomersHandler) DeleteBySuid(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.svc.DeleteBySuid(ctx, chi.URLParam(r, "suid")); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CustomersHandler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	var ve entities.ValidationError
	switch {
	case errors.As(err, &ve):
		utils.WriteError(w, ve.Reason, http.StatusBadRequest)
	case errors.Is(err, entities.ErrCustomerNotFound):
		utils.WriteError(w, "customer not found", http.StatusNotFound)
	default:
		h.logger.ErrorContext(ctx, "request failed", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
