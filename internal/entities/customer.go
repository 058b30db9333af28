package entities

import "time"

// Customer is a platform user. Suid is the external identifier customers are
// looked up and deleted by; ID stays internal to the store.
type Customer struct {
	ID           string
	CreationDate time.Time
	Name         string
	Surname      string
	Suid         string
}

// Meal is a menu item, distinct from the MealLine embedded in orders.
type Meal struct {
	ID           string
	CreationDate time.Time
	Description  string
	Note         string
	Type         MealType
}
