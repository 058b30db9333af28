package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/good-food/order-service/internal/entities"
)

type MealsRepo interface {
	ListMeals(ctx context.Context) ([]entities.Meal, error)
	GetMealByID(ctx context.Context, id string) (entities.Meal, error)
	InsertMeal(ctx context.Context, m entities.Meal) (entities.Meal, error)
	UpdateMeal(ctx context.Context, m entities.Meal) (entities.Meal, error)
	DeleteMeal(ctx context.Context, id string) error
}

type CreateMealRequest struct {
	Description string
	Note        string
	Type        entities.MealType
}

type UpdateMealRequest struct {
	ID          string
	Description string
	Note        string
	Type        entities.MealType
}

// mealService manages the menu. Like customers, meals emit no events.
type mealService struct {
	logger *slog.Logger
	repo   MealsRepo
}

func NewMealService(logger *slog.Logger, repo MealsRepo) *mealService {
	return &mealService{
		logger: logger.With(slog.String("service", "meal")),
		repo:   repo,
	}
}

func (s *mealService) FindAll(ctx context.Context) ([]entities.Meal, error) {
	return s.repo.ListMeals(ctx)
}

func (s *mealService) FindByID(ctx context.Context, id string) (entities.Meal, error) {
	if strings.TrimSpace(id) == "" {
		return entities.Meal{}, entities.NewValidationError("Id is required")
	}
	return s.repo.GetMealByID(ctx, id)
}

func (s *mealService) Create(ctx context.Context, req CreateMealRequest) (entities.Meal, error) {
	if err := validateCreateMeal(req); err != nil {
		return entities.Meal{}, err
	}

	meal := entities.Meal{
		CreationDate: time.Now(),
		Description:  req.Description,
		Note:         req.Note,
		Type:         req.Type,
	}

	created, err := s.repo.InsertMeal(ctx, meal)
	if err != nil {
		return entities.Meal{}, fmt.Errorf("failed to create meal: %w", err)
	}
	return created, nil
}

func (s *mealService) Update(ctx context.Context, req UpdateMealRequest) (entities.Meal, error) {
	if err := validateUpdateMeal(req); err != nil {
		return entities.Meal{}, err
	}

	meal, err := s.repo.GetMealByID(ctx, req.ID)
	if err != nil {
		return entities.Meal{}, err
	}

	meal.Description = req.Description
	meal.Note = req.Note
	meal.Type = req.Type

	updated, err := s.repo.UpdateMeal(ctx, meal)
	if err != nil {
		return entities.Meal{}, fmt.Errorf("failed to update meal: %w", err)
	}
	return updated, nil
}

func (s *mealService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return entities.NewValidationError("Id is required")
	}

	meal, err := s.repo.GetMealByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.DeleteMeal(ctx, meal.ID)
}

func validateCreateMeal(req CreateMealRequest) error {
	if strings.TrimSpace(req.Description) == "" {
		return entities.NewValidationError("Description is required")
	}
	if req.Type == "" || req.Type == entities.MealError {
		return entities.NewValidationError("Invalid meal type")
	}
	return nil
}

func validateUpdateMeal(req UpdateMealRequest) error {
	if strings.TrimSpace(req.ID) == "" {
		return entities.NewValidationError("Id is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		return entities.NewValidationError("Description is required")
	}
	if req.Type == "" || req.Type == entities.MealError {
		return entities.NewValidationError("Invalid meal type")
	}
	return nil
}
