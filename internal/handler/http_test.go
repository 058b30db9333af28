package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/good-food/order-service/internal/entities"
	"github.com/good-food/order-service/internal/handler"
	mocks "github.com/good-food/order-service/internal/handler/mocks"
	"github.com/good-food/order-service/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrdersRouter(t *testing.T, svc *mocks.MockOrderService) chi.Router {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewOrdersHandler(logger, svc)
	r := chi.NewRouter()
	h.Init(r)
	return r
}

func TestOrdersHandler_FindByID(t *testing.T) {
	validOrder := entities.Order{ID: "order-1", CustomerID: "customer-1", Status: entities.StatusCreated}

	testCases := []struct {
		name         string
		id           string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			id:   "order-1",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					FindByID(mock.Anything, "order-1").
					Return(validOrder, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"order-1"`,
		},
		{
			name: "not found",
			id:   "not-exist",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					FindByID(mock.Anything, "not-exist").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name: "internal error",
			id:   "order-1",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					FindByID(mock.Anything, "order-1").
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			r := newOrdersRouter(t, svc)

			req := httptest.NewRequest(http.MethodGet, "/orders/"+tc.id, nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestOrdersHandler_FindByStatus(t *testing.T) {
	t.Run("unknown status maps to 400", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)
		svc.EXPECT().
			FindByStatus(mock.Anything, entities.StatusError).
			Return(nil, entities.NewValidationError("Invalid order type")).Once()

		r := newOrdersRouter(t, svc)

		req := httptest.NewRequest(http.MethodGet, "/orders/status/BOGUS", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid order type")
	})

	t.Run("valid status", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)
		svc.EXPECT().
			FindByStatus(mock.Anything, entities.StatusCreated).
			Return([]entities.Order{{ID: "order-1", Status: entities.StatusCreated}}, nil).Once()

		r := newOrdersRouter(t, svc)

		req := httptest.NewRequest(http.MethodGet, "/orders/status/CREATED", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"id":"order-1"`)
	})
}

func TestOrdersHandler_FindByCustomerID(t *testing.T) {
	t.Run("empty result is a JSON array", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)
		svc.EXPECT().
			FindByCustomerID(mock.Anything, "customer-1").
			Return(nil, nil).Once()

		r := newOrdersRouter(t, svc)

		req := httptest.NewRequest(http.MethodGet, "/orders/customers/customer-1", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})
}

func TestOrdersHandler_Create(t *testing.T) {
	created := entities.Order{
		ID:         "order-1",
		CustomerID: "customer-1",
		Status:     entities.StatusCreated,
		Meals: []entities.MealLine{
			{Description: "Pad Thai", Quantity: 1, Type: entities.MealAsian},
		},
	}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "created",
			body: `{"customer_id":"customer-1","status":"CREATED","meals":[{"description":"Pad Thai","quantity":1,"type":"ASIAN"}]}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					Create(mock.Anything, mock.MatchedBy(func(req service.CreateOrderRequest) bool {
						return req.CustomerID == "customer-1" &&
							req.Status == entities.StatusCreated &&
							len(req.Meals) == 1 &&
							req.Meals[0].Type == entities.MealAsian
					})).
					Return(created, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"id":"order-1"`,
		},
		{
			name: "unknown status reaches service as sentinel",
			body: `{"customer_id":"customer-1","status":"BOGUS","meals":[{"description":"Pad Thai","quantity":1,"type":"ASIAN"}]}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					Create(mock.Anything, mock.MatchedBy(func(req service.CreateOrderRequest) bool {
						return req.Status == entities.StatusError
					})).
					Return(entities.Order{}, entities.NewValidationError("Invalid order status")).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"Invalid order status"`,
		},
		{
			name:       "malformed body",
			body:       `{"customer_id":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid request body"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(svc)
			}

			r := newOrdersRouter(t, svc)

			req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestOrdersHandler_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)
		svc.EXPECT().
			Update(mock.Anything, mock.Anything).
			Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		r := newOrdersRouter(t, svc)

		body := `{"id":"missing","status":"PAID"}`
		req := httptest.NewRequest(http.MethodPatch, "/orders", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("updated", func(t *testing.T) {
		updated := entities.Order{ID: "order-1", CustomerID: "customer-1", Status: entities.StatusPaid}

		svc := mocks.NewMockOrderService(t)
		svc.EXPECT().
			Update(mock.Anything, mock.MatchedBy(func(req service.UpdateOrderRequest) bool {
				return req.ID == "order-1" && req.Status == entities.StatusPaid
			})).
			Return(updated, nil).Once()

		r := newOrdersRouter(t, svc)

		body := `{"id":"order-1","status":"PAID"}`
		req := httptest.NewRequest(http.MethodPatch, "/orders", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "PAID", resp["status"])
	})
}

func TestOrdersHandler_Delete(t *testing.T) {
	testCases := []struct {
		name         string
		id           string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
	}{
		{
			name: "deleted",
			id:   "order-1",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().Delete(mock.Anything, "order-1").Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "not found",
			id:   "missing",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().Delete(mock.Anything, "missing").
					Return(entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			r := newOrdersRouter(t, svc)

			req := httptest.NewRequest(http.MethodDelete, "/orders/"+tc.id, nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}

func TestCustomersHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	customer := entities.Customer{ID: "customer-1", Name: "John", Surname: "Doe", Suid: "suid-1"}

	newRouter := func(svc *mocks.MockCustomerService) chi.Router {
		h := handler.NewCustomersHandler(logger, svc)
		r := chi.NewRouter()
		h.Init(r)
		return r
	}

	t.Run("get by suid", func(t *testing.T) {
		svc := mocks.NewMockCustomerService(t)
		svc.EXPECT().FindBySuid(mock.Anything, "suid-1").Return(customer, nil).Once()

		r := newRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/customers/suid/suid-1", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"suid":"suid-1"`)
	})

	t.Run("create missing surname", func(t *testing.T) {
		svc := mocks.NewMockCustomerService(t)
		svc.EXPECT().
			Create(mock.Anything, service.CreateCustomerRequest{Name: "John", Suid: "suid-1"}).
			Return(entities.Customer{}, entities.NewValidationError("Surname is required")).Once()

		r := newRouter(svc)

		body := `{"name":"John","suid":"suid-1"}`
		req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Surname is required")
	})

	t.Run("delete by suid", func(t *testing.T) {
		svc := mocks.NewMockCustomerService(t)
		svc.EXPECT().DeleteBySuid(mock.Anything, "suid-1").Return(nil).Once()

		r := newRouter(svc)

		req := httptest.NewRequest(http.MethodDelete, "/customers/suid-1", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc := mocks.NewMockCustomerService(t)
		svc.EXPECT().FindByID(mock.Anything, "missing").
			Return(entities.Customer{}, entities.ErrCustomerNotFound).Once()

		r := newRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/customers/missing", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "customer not found")
	})
}

func TestMealsHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	meal := entities.Meal{ID: "meal-1", Description: "Tiramisu", Type: entities.MealDessert}

	newRouter := func(svc *mocks.MockMealService) chi.Router {
		h := handler.NewMealsHandler(logger, svc)
		r := chi.NewRouter()
		h.Init(r)
		return r
	}

	t.Run("list", func(t *testing.T) {
		svc := mocks.NewMockMealService(t)
		svc.EXPECT().FindAll(mock.Anything).Return([]entities.Meal{meal}, nil).Once()

		r := newRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/meals", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"description":"Tiramisu"`)
	})

	t.Run("create with invalid type", func(t *testing.T) {
		svc := mocks.NewMockMealService(t)
		svc.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(req service.CreateMealRequest) bool {
				return req.Type == entities.MealError
			})).
			Return(entities.Meal{}, entities.NewValidationError("Invalid meal type")).Once()

		r := newRouter(svc)

		body := `{"description":"Mystery","type":"UNKNOWN"}`
		req := httptest.NewRequest(http.MethodPost, "/meals", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid meal type")
	})

	t.Run("not found", func(t *testing.T) {
		svc := mocks.NewMockMealService(t)
		svc.EXPECT().FindByID(mock.Anything, "missing").
			Return(entities.Meal{}, entities.ErrMealNotFound).Once()

		r := newRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/meals/missing", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "meal not found")
	})
}
