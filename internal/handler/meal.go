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

type MealService interface {
	FindAll(ctx context.Context) ([]entities.Meal, error)
	FindByID(ctx context.Context, id string) (entities.Meal, error)
	Create(ctx context.Context, req service.CreateMealRequest) (entities.Meal, error)
	Update(ctx context.Context, req service.UpdateMealRequest) (entities.Meal, error)
	Delete(ctx context.Context, id string) error
}

type MealsHandler struct {
	logger *slog.Logger
	svc    MealService
}

func NewMealsHandler(logger *slog.Logger, svc MealService) *MealsHandler {
	return &MealsHandler{
		logger: logger.With(slog.String("handler", "meals")),
		svc:    svc,
	}
}

func (h *MealsHandler) Init(r chi.Router) {
	r.Route("/meals", func(r chi.Router) {
		r.Get("/", h.FindAll)
		r.Get("/{id}", h.FindByID)
		r.Post("/", h.Create)
		r.Patch("/", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// FindAll returns the whole menu.
// @Summary      List all meals
// @Tags         meals
// @Success      200  {array}  Meal
// @Failure      500  {object} utils.ErrorResponse
// @Router       /meals [get]
func (h *MealsHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	meals, err := h.svc.FindAll(ctx)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	utils.WriteJSON(w, MealsEntityToJSON(meals), http.StatusOK)
}

// FindByID returns a menu item or 404.
// @Summary      Get meal by id
// @Tags         meals
// @Param        id  path  string  true  "Meal id"
// @Success      200  {object} Meal
// @Failure      404  {object} utils.ErrorResponse
// @Router       /meals/{id} [get]
func (h *MealsHandler) FindByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	meal, err := h.svc.FindByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	utils.WriteJSON(w, MealEntityToJSON(meal), http.StatusOK)
}

// Create adds a menu item.
// @Summary      Create a new meal
// @Tags         meals
// @Accept       json
// @Param        request  body  MealCreateRequest  true  "Meal to create"
// @Success      201  {object} Meal
// @Failure      400  {object} utils.ErrorResponse
// @Router       /meals [post]
func (h *MealsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body MealCreateRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	meal, err := h.svc.Create(ctx, service.CreateMealRequest{
		Description: body.Description,
		Note:        body.Note,
		Type:        entities.ParseMealType(body.Type),
	})
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	utils.WriteJSON(w, MealEntityToJSON(meal), http.StatusCreated)
}

// Update overwrites a menu item.
// @Summary      Update a meal
// @Tags         meals
// @Accept       json
// @Param        request  body  MealUpdateRequest  true  "Meal fields to overwrite"
// @Success      200  {object} Meal
// @Failure      404  {object} utils.ErrorResponse
// @Router       /meals [patch]
func (h *MealsHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body MealUpdateRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	meal, err := h.svc.Update(ctx, service.UpdateMealRequest{
		ID:          body.ID,
		Description: body.Description,
		Note:        body.Note,
		Type:        entities.ParseMealType(body.Type),
	})
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	utils.WriteJSON(w, MealEntityToJSON(meal), http.StatusOK)
}

// Delete removes a menu item.
// @Summary      Delete a meal
// @Tags         meals
// @Param        id  path  string  true  "Meal id"
// @Success      204
// @Failure      404  {object} utils.ErrorResponse
// @Router       /meals/{id} [delete]
func (h *MealsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.svc.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *MealsHandler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	var ve entities.ValidationError
	switch {
	case errors.As(err, &ve):
		utils.WriteError(w, ve.Reason, http.StatusBadRequest)
	case errors.Is(err, entities.ErrMealNotFound):
		utils.WriteError(w, "meal not found", http.StatusNotFound)
	default:
		h.logger.ErrorContext(ctx, "request failed", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
