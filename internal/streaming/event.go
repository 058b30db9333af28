package streaming

import (
	"time"

	"github.com/good-food/order-service/internal/entities"
)

// OrderEvent is the wire payload on both channels: an order snapshot plus the
// action that produced it. Inbound events missing the action are dropped by
// the consumer. Unknown status and meal type strings parse to the ERROR
// sentinel instead of failing decoding.
type OrderEvent struct {
	ID           string          `json:"id,omitempty"`
	Action       string          `json:"action,omitempty"`
	CreationDate time.Time       `json:"creation_date"`
	CustomerID   string          `json:"customer_id,omitempty"`
	Meals        []MealLineEvent `json:"meals,omitempty"`
	Status       string          `json:"status,omitempty"`
}

type MealLineEvent struct {
	ID           string    `json:"id,omitempty"`
	CreationDate time.Time `json:"creation_date"`
	Description  string    `json:"description,omitempty"`
	Note         string    `json:"note,omitempty"`
	Quantity     int       `json:"quantity,omitempty"`
	Type         string    `json:"type,omitempty"`
}

func EventFromOrder(o entities.Order, action entities.Action) OrderEvent {
	meals := make([]MealLineEvent, 0, len(o.Meals))
	for _, m := range o.Meals {
		meals = append(meals, MealLineEvent{
			ID:           m.ID,
			CreationDate: m.CreationDate,
			Description:  m.Description,
			Note:         m.Note,
			Quantity:     m.Quantity,
			Type:         string(m.Type),
		})
	}

	return OrderEvent{
		ID:           o.ID,
		Action:       string(action),
		CreationDate: o.CreationDate,
		CustomerID:   o.CustomerID,
		Meals:        meals,
		Status:       string(o.Status),
	}
}

// MealLines converts the event's meal entries back to domain lines.
func (e OrderEvent) MealLines() []entities.MealLine {
	if len(e.Meals) == 0 {
		return nil
	}
	lines := make([]entities.MealLine, 0, len(e.Meals))
	for _, m := range e.Meals {
		lines = append(lines, entities.MealLine{
			ID:           m.ID,
			CreationDate: m.CreationDate,
			Description:  m.Description,
			Note:         m.Note,
			Quantity:     m.Quantity,
			Type:         entities.ParseMealType(m.Type),
		})
	}
	return lines
}
