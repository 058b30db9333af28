package entities

import (
	"bytes"
	"encoding/gob"
	"time"
)

// MealLine is one meal entry embedded in an order. It is owned by the order
// and never referenced on its own.
type MealLine struct {
	ID           string
	CreationDate time.Time
	Description  string
	Note         string
	Quantity     int
	Type         MealType
}

// Order binds a customer to a set of meal lines with a lifecycle status.
// ID, CreationDate and CustomerID are immutable after creation; Status and
// Meals are the only fields an update may touch.
type Order struct {
	ID           string
	CreationDate time.Time
	CustomerID   string
	Meals        []MealLine
	Status       OrderStatus
}

// Marshal and Unmarshal are the cache encoding for orders.

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(o)
}

func init() {
	gob.Register(Order{})
	gob.Register(MealLine{})
}
