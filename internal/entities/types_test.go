package entities_test

import (
	"testing"
	"time"

	"github.com/good-food/order-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	tests := []struct {
		in   string
		want entities.OrderStatus
	}{
		{"CREATED", entities.StatusCreated},
		{"WAITING_PAYMENT_CONFIRMATION", entities.StatusWaitingPaymentConfirmation},
		{"PAID", entities.StatusPaid},
		{"WAITING_RESTAURANT_CONFIRMATION", entities.StatusWaitingRestaurantConfirmation},
		{"IN_PREPARATION", entities.StatusInPreparation},
		{"WAITING_TO_DELIVER", entities.StatusWaitingToDeliver},
		{"DELIVERED", entities.StatusDelivered},
		{"ERROR", entities.StatusError},
		{"created", entities.StatusError},
		{"BOGUS", entities.StatusError},
		{"", entities.StatusError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, entities.ParseOrderStatus(tt.in), "input %q", tt.in)
	}
}

func TestParseMealType(t *testing.T) {
	tests := []struct {
		in   string
		want entities.MealType
	}{
		{"ASIAN", entities.MealAsian},
		{"COLD_BEVERAGE", entities.MealColdBeverage},
		{"BRAZILIAN", entities.MealBrazilian},
		{"DRINK", entities.MealDrink},
		{"ITALIAN", entities.MealItalian},
		{"DESSERT", entities.MealDessert},
		{"ERROR", entities.MealError},
		{"SUSHI", entities.MealError},
		{"", entities.MealError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, entities.ParseMealType(tt.in), "input %q", tt.in)
	}
}

func TestParseAction(t *testing.T) {
	assert.Equal(t, entities.ActionCreate, entities.ParseAction("CREATE"))
	assert.Equal(t, entities.ActionUpdate, entities.ParseAction("UPDATE"))
	assert.Equal(t, entities.ActionDelete, entities.ParseAction("DELETE"))

	// no sentinel for actions: unknown input parses to the zero value
	assert.Equal(t, entities.Action(""), entities.ParseAction("UPSERT"))
	assert.Equal(t, entities.Action(""), entities.ParseAction(""))

	assert.True(t, entities.ActionCreate.Valid())
	assert.False(t, entities.Action("").Valid())
	assert.False(t, entities.Action("UPSERT").Valid())
}

func TestOrderMarshalRoundTrip(t *testing.T) {
	order := entities.Order{
		ID:           "order-1",
		CreationDate: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
		CustomerID:   "customer-1",
		Status:       entities.StatusCreated,
		Meals: []entities.MealLine{
			{ID: "line-1", Description: "Pad Thai", Note: "spicy", Quantity: 2, Type: entities.MealAsian},
		},
	}

	data, err := order.Marshal()
	require.NoError(t, err)

	var decoded entities.Order
	require.NoError(t, decoded.Unmarshal(data))
	assert.Equal(t, order, decoded)
}

func TestOrderUnmarshalGarbage(t *testing.T) {
	var decoded entities.Order
	assert.Error(t, decoded.Unmarshal([]byte("not gob")))
}
