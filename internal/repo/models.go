package repo

import (
	"database/sql"
	"time"

	"github.com/good-food/order-service/internal/entities"
)

type Order struct {
	ID           string    `db:"id"`
	CreationDate time.Time `db:"creation_date"`
	CustomerID   string    `db:"customer_id"`
	Status       string    `db:"status"`
}

type MealLine struct {
	ID           string         `db:"id"`
	OrderID      string         `db:"order_id"`
	Position     int            `db:"position"`
	CreationDate time.Time      `db:"creation_date"`
	Description  string         `db:"description"`
	Note         sql.NullString `db:"note"`
	Quantity     int            `db:"quantity"`
	Type         string         `db:"type"`
}

type Customer struct {
	ID           string         `db:"id"`
	CreationDate time.Time      `db:"creation_date"`
	Name         string         `db:"name"`
	Surname      sql.NullString `db:"surname"`
	Suid         string         `db:"suid"`
}

type Meal struct {
	ID           string         `db:"id"`
	CreationDate time.Time      `db:"creation_date"`
	Description  string         `db:"description"`
	Note         sql.NullString `db:"note"`
	Type         string         `db:"type"`
}

func MealLineToEntity(m MealLine) entities.MealLine {
	return entities.MealLine{
		ID:           m.ID,
		CreationDate: m.CreationDate,
		Description:  m.Description,
		Note:         nullStringToString(m.Note),
		Quantity:     m.Quantity,
		Type:         entities.ParseMealType(m.Type),
	}
}

func OrderToEntity(o Order, lines []MealLine) entities.Order {
	order := entities.Order{
		ID:           o.ID,
		CreationDate: o.CreationDate,
		CustomerID:   o.CustomerID,
		Status:       entities.ParseOrderStatus(o.Status),
	}

	if len(lines) > 0 {
		order.Meals = make([]entities.MealLine, 0, len(lines))
		for _, line := range lines {
			order.Meals = append(order.Meals, MealLineToEntity(line))
		}
	}

	return order
}

func CustomerToEntity(c Customer) entities.Customer {
	return entities.Customer{
		ID:           c.ID,
		CreationDate: c.CreationDate,
		Name:         c.Name,
		Surname:      nullStringToString(c.Surname),
		Suid:         c.Suid,
	}
}

func MealToEntity(m Meal) entities.Meal {
	return entities.Meal{
		ID:           m.ID,
		CreationDate: m.CreationDate,
		Description:  m.Description,
		Note:         nullStringToString(m.Note),
		Type:         entities.ParseMealType(m.Type),
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
