package entities

// OrderStatus is the lifecycle status of an order. No transition graph is
// enforced: any non-ERROR status is accepted on create or update.
type OrderStatus string

const (
	StatusCreated                       OrderStatus = "CREATED"
	StatusWaitingPaymentConfirmation    OrderStatus = "WAITING_PAYMENT_CONFIRMATION"
	StatusPaid                          OrderStatus = "PAID"
	StatusWaitingRestaurantConfirmation OrderStatus = "WAITING_RESTAURANT_CONFIRMATION"
	StatusInPreparation                 OrderStatus = "IN_PREPARATION"
	StatusWaitingToDeliver              OrderStatus = "WAITING_TO_DELIVER"
	StatusDelivered                     OrderStatus = "DELIVERED"

	// StatusError marks input that did not match any known status.
	// It is never written to the store.
	StatusError OrderStatus = "ERROR"
)

var orderStatuses = map[string]OrderStatus{
	string(StatusCreated):                       StatusCreated,
	string(StatusWaitingPaymentConfirmation):    StatusWaitingPaymentConfirmation,
	string(StatusPaid):                          StatusPaid,
	string(StatusWaitingRestaurantConfirmation): StatusWaitingRestaurantConfirmation,
	string(StatusInPreparation):                 StatusInPreparation,
	string(StatusWaitingToDeliver):              StatusWaitingToDeliver,
	string(StatusDelivered):                     StatusDelivered,
	string(StatusError):                         StatusError,
}

// ParseOrderStatus maps a raw string to an OrderStatus. Unknown values map to
// StatusError instead of failing, so decoding never rejects a payload outright.
func ParseOrderStatus(s string) OrderStatus {
	if status, ok := orderStatuses[s]; ok {
		return status
	}
	return StatusError
}

// MealType classifies a meal or a meal line within an order.
type MealType string

const (
	MealAsian        MealType = "ASIAN"
	MealColdBeverage MealType = "COLD_BEVERAGE"
	MealBrazilian    MealType = "BRAZILIAN"
	MealDrink        MealType = "DRINK"
	MealItalian      MealType = "ITALIAN"
	MealDessert      MealType = "DESSERT"

	// MealError marks input that did not match any known meal type.
	MealError MealType = "ERROR"
)

var mealTypes = map[string]MealType{
	string(MealAsian):        MealAsian,
	string(MealColdBeverage): MealColdBeverage,
	string(MealBrazilian):    MealBrazilian,
	string(MealDrink):        MealDrink,
	string(MealItalian):      MealItalian,
	string(MealDessert):      MealDessert,
	string(MealError):        MealError,
}

func ParseMealType(s string) MealType {
	if t, ok := mealTypes[s]; ok {
		return t
	}
	return MealError
}

// Action tags an order event with the mutation that produced it.
type Action string

const (
	ActionCreate Action = "CREATE"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
)

// ParseAction maps a raw string to an Action. Unlike statuses there is no
// sentinel: an unknown or absent action parses to the zero value and the
// message carrying it is dropped by the consumer.
func ParseAction(s string) Action {
	switch Action(s) {
	case ActionCreate, ActionUpdate, ActionDelete:
		return Action(s)
	default:
		return ""
	}
}

func (a Action) Valid() bool {
	return a == ActionCreate || a == ActionUpdate || a == ActionDelete
}
