package handler

import (
	"time"

	"github.com/good-food/order-service/internal/entities"
	"github.com/good-food/order-service/internal/service"
)

// MealLine is one meal entry of an order
type MealLine struct {
	ID           string    `json:"id,omitempty"`
	CreationDate time.Time `json:"creation_date"`
	Description  string    `json:"description,omitempty"`
	Note         string    `json:"note,omitempty"`
	Quantity     int       `json:"quantity,omitempty"`
	Type         string    `json:"type,omitempty"`
}

// Order is the response shape of an order
type Order struct {
	ID           string     `json:"id"`
	CreationDate time.Time  `json:"creation_date"`
	CustomerID   string     `json:"customer_id"`
	Meals        []MealLine `json:"meals,omitempty"`
	Status       string     `json:"status"`
}

// OrderCreateRequest is the POST /orders body
type OrderCreateRequest struct {
	CustomerID string     `json:"customer_id"`
	Meals      []MealLine `json:"meals"`
	Status     string     `json:"status"`
}

// OrderUpdateRequest is the PATCH /orders body
type OrderUpdateRequest struct {
	ID     string     `json:"id"`
	Meals  []MealLine `json:"meals"`
	Status string     `json:"status"`
}

// Customer is the response shape of a customer
type Customer struct {
	ID           string    `json:"id"`
	CreationDate time.Time `json:"creation_date"`
	Name         string    `json:"name"`
	Surname      string    `json:"surname,omitempty"`
	Suid         string    `json:"suid"`
}

type CustomerCreateRequest struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Suid    string `json:"suid"`
}

type CustomerUpdateRequest struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Suid    string `json:"suid"`
}

// Meal is the response shape of a menu item
type Meal struct {
	ID           string    `json:"id"`
	CreationDate time.Time `json:"creation_date"`
	Description  string    `json:"description"`
	Note         string    `json:"note,omitempty"`
	Type         string    `json:"type"`
}

type MealCreateRequest struct {
	Description string `json:"description"`
	Note        string `json:"note"`
	Type        string `json:"type"`
}

type MealUpdateRequest struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Note        string `json:"note"`
	Type        string `json:"type"`
}

func MealLineEntityToJSON(m entities.MealLine) MealLine {
	return MealLine{
		ID:           m.ID,
		CreationDate: m.CreationDate,
		Description:  m.Description,
		Note:         m.Note,
		Quantity:     m.Quantity,
		Type:         string(m.Type),
	}
}

func MealLineJSONToEntity(m MealLine) entities.MealLine {
	return entities.MealLine{
		ID:           m.ID,
		CreationDate: m.CreationDate,
		Description:  m.Description,
		Note:         m.Note,
		Quantity:     m.Quantity,
		Type:         entities.ParseMealType(m.Type),
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	meals := make([]MealLine, 0, len(o.Meals))
	for _, m := range o.Meals {
		meals = append(meals, MealLineEntityToJSON(m))
	}

	return Order{
		ID:           o.ID,
		CreationDate: o.CreationDate,
		CustomerID:   o.CustomerID,
		Meals:        meals,
		Status:       string(o.Status),
	}
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderEntityToJSON(o))
	}
	return result
}

func mealLinesJSONToEntity(meals []MealLine) []entities.MealLine {
	if len(meals) == 0 {
		return nil
	}
	lines := make([]entities.MealLine, 0, len(meals))
	for _, m := range meals {
		lines = append(lines, MealLineJSONToEntity(m))
	}
	return lines
}

func CreateOrderJSONToRequest(r OrderCreateRequest) service.CreateOrderRequest {
	return service.CreateOrderRequest{
		CustomerID: r.CustomerID,
		Meals:      mealLinesJSONToEntity(r.Meals),
		Status:     entities.ParseOrderStatus(r.Status),
	}
}

func UpdateOrderJSONToRequest(r OrderUpdateRequest) service.UpdateOrderRequest {
	return service.UpdateOrderRequest{
		ID:     r.ID,
		Meals:  mealLinesJSONToEntity(r.Meals),
		Status: entities.ParseOrderStatus(r.Status),
	}
}

func CustomerEntityToJSON(c entities.Customer) Customer {
	return Customer{
		ID:           c.ID,
		CreationDate: c.CreationDate,
		Name:         c.Name,
		Surname:      c.Surname,
		Suid:         c.Suid,
	}
}

func MealEntityToJSON(m entities.Meal) Meal {
	return Meal{
		ID:           m.ID,
		CreationDate: m.CreationDate,
		Description:  m.Description,
		Note:         m.Note,
		Type:         string(m.Type),
	}
}

func MealsEntityToJSON(meals []entities.Meal) []Meal {
	result := make([]Meal, 0, len(meals))
	for _, m := range meals {
		result = append(result, MealEntityToJSON(m))
	}
	return result
}
