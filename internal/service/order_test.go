package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/good-food/order-service/internal/entities"
	"github.com/good-food/order-service/internal/service"
	mocks "github.com/good-food/order-service/internal/service/mocks"
	txMocks "github.com/good-food/order-service/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func passthroughTx(t *testing.T) *txMocks.MockManager {
	tx := txMocks.NewMockManager(t)
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(
			func(ctx context.Context, cb func(ctx context.Context) error) error {
				return cb(ctx)
			}).Maybe()
	return tx
}

func someMeals() []entities.MealLine {
	return []entities.MealLine{
		{Description: "Pad Thai", Quantity: 2, Type: entities.MealAsian},
	}
}

func TestOrderService_Create(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrdersRepo, cache *mocks.MockCache, publisher *mocks.MockEventPublisher)

	dbError := errors.New("db error")
	created := entities.Order{
		ID:         "order-1",
		CustomerID: "customer-1",
		Meals:      someMeals(),
		Status:     entities.StatusCreated,
	}

	testCases := []struct {
		name         string
		req          service.CreateOrderRequest
		mockBehavior MockBehavior
		wantReason   string
		wantErr      error
	}{
		{
			name: "OK",
			req: service.CreateOrderRequest{
				CustomerID: "customer-1",
				Meals:      someMeals(),
				Status:     entities.StatusCreated,
			},
			mockBehavior: func(repo *mocks.MockOrdersRepo, cache *mocks.MockCache, publisher *mocks.MockEventPublisher) {
				repo.EXPECT().InsertOrder(mock.Anything, mock.Anything).Return(created, nil).Once()
				cache.EXPECT().Set("order-1", mock.Anything).Return().Once()
				publisher.EXPECT().Publish(mock.Anything, created, entities.ActionCreate).Return(nil).Once()
			},
		},
		{
			name: "publish failure does not fail creation",
			req: service.CreateOrderRequest{
				CustomerID: "customer-1",
				Meals:      someMeals(),
				Status:     entities.StatusCreated,
			},
			mockBehavior: func(repo *mocks.MockOrdersRepo, cache *mocks.MockCache, publisher *mocks.MockEventPublisher) {
				repo.EXPECT().InsertOrder(mock.Anything, mock.Anything).Return(created, nil).Once()
				cache.EXPECT().Set("order-1", mock.Anything).Return().Once()
				publisher.EXPECT().Publish(mock.Anything, created, entities.ActionCreate).
					Return(errors.New("broker unavailable")).Once()
			},
		},
		{
			name: "insert fails",
			req: service.CreateOrderRequest{
				CustomerID: "customer-1",
				Meals:      someMeals(),
				Status:     entities.StatusCreated,
			},
			mockBehavior: func(repo *mocks.MockOrdersRepo, cache *mocks.MockCache, publisher *mocks.MockEventPublisher) {
				repo.EXPECT().InsertOrder(mock.Anything, mock.Anything).Return(entities.Order{}, dbError).Once()
			},
			wantErr: dbError,
		},
		{
			name: "missing customer id",
			req: service.CreateOrderRequest{
				Meals:  someMeals(),
				Status: entities.StatusCreated,
			},
			wantReason: "Customer Id is required",
		},
		{
			name: "missing meals",
			req: service.CreateOrderRequest{
				CustomerID: "customer-1",
				Status:     entities.StatusCreated,
			},
			wantReason: "Meals are required",
		},
		{
			name: "unknown status parsed to sentinel",
			req: service.CreateOrderRequest{
				CustomerID: "customer-1",
				Meals:      someMeals(),
				Status:     entities.StatusError,
			},
			wantReason: "Invalid order status",
		},
		{
			name: "empty status",
			req: service.CreateOrderRequest{
				CustomerID: "customer-1",
				Meals:      someMeals(),
			},
			wantReason: "Invalid order status",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrdersRepo(t)
			cache := mocks.NewMockCache(t)
			publisher := mocks.NewMockEventPublisher(t)
			tx := passthroughTx(t)

			if tc.mockBehavior != nil {
				tc.mockBehavior(repo, cache, publisher)
			}

			svc := service.NewOrderService(testLogger(), tx, repo, cache, publisher)

			got, err := svc.Create(context.Background(), tc.req)

			if tc.wantReason != "" {
				require.Error(t, err)
				assert.True(t, entities.IsValidation(err))
				assert.EqualError(t, err, tc.wantReason)
				return
			}
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, created, got)
		})
	}
}

func TestOrderService_Update(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrdersRepo, cache *mocks.MockCache, publisher *mocks.MockEventPublisher)

	existing := entities.Order{
		ID:         "order-1",
		CustomerID: "customer-1",
		Meals:      someMeals(),
		Status:     entities.StatusCreated,
	}
	newMeals := []entities.MealLine{
		{Description: "Tiramisu", Quantity: 1, Type: entities.MealDessert},
	}
	updated := existing
	updated.Meals = newMeals
	updated.Status = entities.StatusPaid

	testCases := []struct {
		name         string
		req          service.UpdateOrderRequest
		mockBehavior MockBehavior
		wantReason   string
		wantErr      error
		want         entities.Order
	}{
		{
			name: "OK",
			req: service.UpdateOrderRequest{
				ID:     "order-1",
				Meals:  newMeals,
				Status: entities.StatusPaid,
			},
			mockBehavior: func(repo *mocks.MockOrdersRepo, cache *mocks.MockCache, publisher *mocks.MockEventPublisher) {
				repo.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(existing, nil).Once()
				repo.EXPECT().UpdateOrder(mock.Anything, updated).Return(updated, nil).Once()
				cache.EXPECT().Set("order-1", mock.Anything).Return().Once()
				publisher.EXPECT().Publish(mock.Anything, updated, entities.ActionUpdate).Return(nil).Once()
			},
			want: updated,
		},
		{
			name: "clearing meals is allowed",
			req: service.UpdateOrderRequest{
				ID:     "order-1",
				Status: entities.StatusPaid,
			},
			mockBehavior: func(repo *mocks.MockOrdersRepo, cache *mocks.MockCache, publisher *mocks.MockEventPublisher) {
				cleared := existing
				cleared.Meals = nil
				cleared.Status = entities.StatusPaid
				repo.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(existing, nil).Once()
				repo.EXPECT().UpdateOrder(mock.Anything, cleared).Return(cleared, nil).Once()
				cache.EXPECT().Set("order-1", mock.Anything).Return().Once()
				publisher.EXPECT().Publish(mock.Anything, cleared, entities.ActionUpdate).Return(nil).Once()
			},
			want: func() entities.Order {
				cleared := existing
				cleared.Meals = nil
				cleared.Status = entities.StatusPaid
				return cleared
			}(),
		},
		{
			name: "not found",
			req: service.UpdateOrderRequest{
				ID:     "missing",
				Status: entities.StatusPaid,
			},
			mockBehavior: func(repo *mocks.MockOrdersRepo, cache *mocks.MockCache, publisher *mocks.MockEventPublisher) {
				repo.EXPECT().GetOrderByID(mock.Anything, "missing").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:       "missing id",
			req:        service.UpdateOrderRequest{Status: entities.StatusPaid},
			wantReason: "Id is required",
		},
		{
			name:       "invalid status",
			req:        service.UpdateOrderRequest{ID: "order-1", Status: entities.StatusError},
			wantReason: "Invalid order status",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrdersRepo(t)
			cache := mocks.NewMockCache(t)
			publisher := mocks.NewMockEventPublisher(t)
			tx := passthroughTx(t)

			if tc.mockBehavior != nil {
				tc.mockBehavior(repo, cache, publisher)
			}

			svc := service.NewOrderService(testLogger(), tx, repo, cache, publisher)

			got, err := svc.Update(context.Background(), tc.req)

			if tc.wantReason != "" {
				require.Error(t, err)
				assert.True(t, entities.IsValidation(err))
				assert.EqualError(t, err, tc.wantReason)
				return
			}
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderService_Delete(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrdersRepo, cache *mocks.MockCache, publisher *mocks.MockEventPublisher)

	order := entities.Order{
		ID:         "order-1",
		CustomerID: "customer-1",
		Meals:      someMeals(),
		Status:     entities.StatusDelivered,
	}

	testCases := []struct {
		name         string
		id           string
		mockBehavior MockBehavior
		wantReason   string
		wantErr      error
	}{
		{
			name: "OK publishes pre-delete snapshot",
			id:   "order-1",
			mockBehavior: func(repo *mocks.MockOrdersRepo, cache *mocks.MockCache, publisher *mocks.MockEventPublisher) {
				repo.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(order, nil).Once()
				repo.EXPECT().DeleteOrder(mock.Anything, "order-1").Return(nil).Once()
				cache.EXPECT().Delete("order-1").Return().Once()
				publisher.EXPECT().Publish(mock.Anything, order, entities.ActionDelete).Return(nil).Once()
			},
		},
		{
			name: "not found",
			id:   "missing",
			mockBehavior: func(repo *mocks.MockOrdersRepo, cache *mocks.MockCache, publisher *mocks.MockEventPublisher) {
				repo.EXPECT().GetOrderByID(mock.Anything, "missing").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:       "missing id",
			id:         "  ",
			wantReason: "Id is required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrdersRepo(t)
			cache := mocks.NewMockCache(t)
			publisher := mocks.NewMockEventPublisher(t)
			tx := passthroughTx(t)

			if tc.mockBehavior != nil {
				tc.mockBehavior(repo, cache, publisher)
			}

			svc := service.NewOrderService(testLogger(), tx, repo, cache, publisher)

			err := svc.Delete(context.Background(), tc.id)

			if tc.wantReason != "" {
				require.Error(t, err)
				assert.True(t, entities.IsValidation(err))
				assert.EqualError(t, err, tc.wantReason)
				return
			}
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrderService_FindByID(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrdersRepo, cache *mocks.MockCache)

	validOrder := entities.Order{ID: "order-1", CustomerID: "customer-1", Status: entities.StatusCreated}
	validData, err := validOrder.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		id           string
		mockBehavior MockBehavior
		wantReason   string
		wantErr      error
		want         entities.Order
	}{
		{
			name: "success from cache",
			id:   "order-1",
			mockBehavior: func(_ *mocks.MockOrdersRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("order-1").Return(validData, true).Once()
			},
			want: validOrder,
		},
		{
			name: "corrupt cache entry falls through to repo",
			id:   "order-1",
			mockBehavior: func(repo *mocks.MockOrdersRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("order-1").Return([]byte("broken"), true).Once()
				cache.EXPECT().Delete("order-1").Return().Once()
				repo.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(validOrder, nil).Once()
				cache.EXPECT().Set("order-1", validData).Return().Once()
			},
			want: validOrder,
		},
		{
			name: "success from repo and set to cache",
			id:   "order-1",
			mockBehavior: func(repo *mocks.MockOrdersRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("order-1").Return(nil, false).Once()
				repo.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(validOrder, nil).Once()
				cache.EXPECT().Set("order-1", validData).Return().Once()
			},
			want: validOrder,
		},
		{
			name: "not found is not retried",
			id:   "not-exist",
			mockBehavior: func(repo *mocks.MockOrdersRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("not-exist").Return(nil, false).Once()
				repo.EXPECT().GetOrderByID(mock.Anything, "not-exist").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name: "second attempt from repo",
			id:   "order-1",
			mockBehavior: func(repo *mocks.MockOrdersRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("order-1").Return(nil, false).Once()
				repo.EXPECT().GetOrderByID(mock.Anything, "order-1").
					Return(entities.Order{}, errors.New("temporary error")).Once()
				repo.EXPECT().GetOrderByID(mock.Anything, "order-1").
					Return(validOrder, nil).Once()
				cache.EXPECT().Set("order-1", validData).Return().Once()
			},
			want: validOrder,
		},
		{
			name:       "missing id",
			id:         "",
			wantReason: "Id is required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrdersRepo(t)
			cache := mocks.NewMockCache(t)
			publisher := mocks.NewMockEventPublisher(t)
			tx := txMocks.NewMockManager(t)

			if tc.mockBehavior != nil {
				tc.mockBehavior(repo, cache)
			}

			svc := service.NewOrderService(testLogger(), tx, repo, cache, publisher)

			got, err := svc.FindByID(context.Background(), tc.id)

			if tc.wantReason != "" {
				require.Error(t, err)
				assert.True(t, entities.IsValidation(err))
				assert.EqualError(t, err, tc.wantReason)
				return
			}
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderService_FindByCustomerID(t *testing.T) {
	repo := mocks.NewMockOrdersRepo(t)
	cache := mocks.NewMockCache(t)
	publisher := mocks.NewMockEventPublisher(t)
	tx := txMocks.NewMockManager(t)
	svc := service.NewOrderService(testLogger(), tx, repo, cache, publisher)

	t.Run("missing customer id", func(t *testing.T) {
		_, err := svc.FindByCustomerID(context.Background(), " ")
		require.Error(t, err)
		assert.True(t, entities.IsValidation(err))
		assert.EqualError(t, err, "Customer id is required")
	})

	t.Run("no orders yields empty list", func(t *testing.T) {
		repo.EXPECT().ListOrdersByCustomerID(mock.Anything, "customer-1").
			Return([]entities.Order{}, nil).Once()

		got, err := svc.FindByCustomerID(context.Background(), "customer-1")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestOrderService_FindByStatus(t *testing.T) {
	repo := mocks.NewMockOrdersRepo(t)
	cache := mocks.NewMockCache(t)
	publisher := mocks.NewMockEventPublisher(t)
	tx := txMocks.NewMockManager(t)
	svc := service.NewOrderService(testLogger(), tx, repo, cache, publisher)

	t.Run("sentinel status rejected", func(t *testing.T) {
		_, err := svc.FindByStatus(context.Background(), entities.StatusError)
		require.Error(t, err)
		assert.True(t, entities.IsValidation(err))
		assert.EqualError(t, err, "Invalid order type")
	})

	t.Run("valid status", func(t *testing.T) {
		orders := []entities.Order{{ID: "order-1", Status: entities.StatusCreated}}
		repo.EXPECT().ListOrdersByStatus(mock.Anything, entities.StatusCreated).
			Return(orders, nil).Once()

		got, err := svc.FindByStatus(context.Background(), entities.StatusCreated)
		require.NoError(t, err)
		assert.Equal(t, orders, got)
	})
}
