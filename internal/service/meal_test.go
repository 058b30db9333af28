package service_test

import (
	"context"
	"testing"

	"github.com/good-food/order-service/internal/entities"
	"github.com/good-food/order-service/internal/service"
	mocks "github.com/good-food/order-service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMealService_Create(t *testing.T) {
	type MockBehavior func(repo *mocks.MockMealsRepo)

	created := entities.Meal{
		ID:          "meal-1",
		Description: "Tiramisu",
		Note:        "contains coffee",
		Type:        entities.MealDessert,
	}

	testCases := []struct {
		name         string
		req          service.CreateMealRequest
		mockBehavior MockBehavior
		wantReason   string
	}{
		{
			name: "OK",
			req:  service.CreateMealRequest{Description: "Tiramisu", Note: "contains coffee", Type: entities.MealDessert},
			mockBehavior: func(repo *mocks.MockMealsRepo) {
				repo.EXPECT().InsertMeal(mock.Anything, mock.Anything).Return(created, nil).Once()
			},
		},
		{
			name:       "missing description",
			req:        service.CreateMealRequest{Type: entities.MealDessert},
			wantReason: "Description is required",
		},
		{
			name:       "unknown type parsed to sentinel",
			req:        service.CreateMealRequest{Description: "Tiramisu", Type: entities.MealError},
			wantReason: "Invalid meal type",
		},
		{
			name:       "empty type",
			req:        service.CreateMealRequest{Description: "Tiramisu"},
			wantReason: "Invalid meal type",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockMealsRepo(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(repo)
			}

			svc := service.NewMealService(testLogger(), repo)

			got, err := svc.Create(context.Background(), tc.req)

			if tc.wantReason != "" {
				require.Error(t, err)
				assert.True(t, entities.IsValidation(err))
				assert.EqualError(t, err, tc.wantReason)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, created, got)
		})
	}
}

func TestMealService_Update(t *testing.T) {
	existing := entities.Meal{ID: "meal-1", Description: "Tiramisu", Note: "old", Type: entities.MealDessert}

	t.Run("OK overwrites description, note and type", func(t *testing.T) {
		repo := mocks.NewMockMealsRepo(t)
		updated := entities.Meal{ID: "meal-1", Description: "Carbonara", Note: "new", Type: entities.MealItalian}

		repo.EXPECT().GetMealByID(mock.Anything, "meal-1").Return(existing, nil).Once()
		repo.EXPECT().UpdateMeal(mock.Anything, updated).Return(updated, nil).Once()

		svc := service.NewMealService(testLogger(), repo)

		got, err := svc.Update(context.Background(), service.UpdateMealRequest{
			ID: "meal-1", Description: "Carbonara", Note: "new", Type: entities.MealItalian,
		})
		require.NoError(t, err)
		assert.Equal(t, updated, got)
	})

	t.Run("not found", func(t *testing.T) {
		repo := mocks.NewMockMealsRepo(t)
		repo.EXPECT().GetMealByID(mock.Anything, "missing").
			Return(entities.Meal{}, entities.ErrMealNotFound).Once()

		svc := service.NewMealService(testLogger(), repo)

		_, err := svc.Update(context.Background(), service.UpdateMealRequest{
			ID: "missing", Description: "Carbonara", Type: entities.MealItalian,
		})
		assert.ErrorIs(t, err, entities.ErrMealNotFound)
	})

	t.Run("invalid type", func(t *testing.T) {
		repo := mocks.NewMockMealsRepo(t)
		svc := service.NewMealService(testLogger(), repo)

		_, err := svc.Update(context.Background(), service.UpdateMealRequest{
			ID: "meal-1", Description: "Carbonara", Type: entities.MealError,
		})
		require.Error(t, err)
		assert.EqualError(t, err, "Invalid meal type")
	})
}

func TestMealService_Delete(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		repo := mocks.NewMockMealsRepo(t)
		repo.EXPECT().GetMealByID(mock.Anything, "meal-1").
			Return(entities.Meal{ID: "meal-1"}, nil).Once()
		repo.EXPECT().DeleteMeal(mock.Anything, "meal-1").Return(nil).Once()

		svc := service.NewMealService(testLogger(), repo)

		assert.NoError(t, svc.Delete(context.Background(), "meal-1"))
	})

	t.Run("not found", func(t *testing.T) {
		repo := mocks.NewMockMealsRepo(t)
		repo.EXPECT().GetMealByID(mock.Anything, "missing").
			Return(entities.Meal{}, entities.ErrMealNotFound).Once()

		svc := service.NewMealService(testLogger(), repo)

		assert.ErrorIs(t, svc.Delete(context.Background(), "missing"), entities.ErrMealNotFound)
	})

	t.Run("missing id", func(t *testing.T) {
		repo := mocks.NewMockMealsRepo(t)
		svc := service.NewMealService(testLogger(), repo)

		err := svc.Delete(context.Background(), "")
		require.Error(t, err)
		assert.EqualError(t, err, "Id is required")
	})
}
