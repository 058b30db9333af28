package main

import (
	"context"
	"encoding/json"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type MealLine struct {
	ID           string    `json:"id,omitempty"`
	CreationDate time.Time `json:"creation_date"`
	Description  string    `json:"description,omitempty"`
	Note         string    `json:"note,omitempty"`
	Quantity     int       `json:"quantity,omitempty"`
	Type         string    `json:"type,omitempty"`
}

type OrderEvent struct {
	ID           string     `json:"id,omitempty"`
	Action       string     `json:"action,omitempty"`
	CreationDate time.Time  `json:"creation_date"`
	CustomerID   string     `json:"customer_id,omitempty"`
	Meals        []MealLine `json:"meals,omitempty"`
	Status       string     `json:"status,omitempty"`
}

var (
	statuses  = []string{"CREATED", "WAITING_PAYMENT_CONFIRMATION", "PAID", "IN_PREPARATION", "WAITING_TO_DELIVER", "DELIVERED"}
	mealTypes = []string{"ASIAN", "BRAZILIAN", "ITALIAN", "DRINK", "COLD_BEVERAGE", "DESSERT"}
	dishes    = []string{"Pad Thai", "Carbonara", "Feijoada", "Ramen", "Tiramisu", "Caipirinha"}
)

func randomString(n int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyz0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func randomMeals() []MealLine {
	meals := make([]MealLine, rand.Intn(3)+1)
	for i := range meals {
		meals[i] = MealLine{
			CreationDate: time.Now(),
			Description:  dishes[rand.Intn(len(dishes))],
			Note:         "no onions",
			Quantity:     rand.Intn(3) + 1,
			Type:         mealTypes[rand.Intn(len(mealTypes))],
		}
	}
	return meals
}

// Update and delete events carry random ids, so most of them hit the
// not-found branch. Watch the consumer metrics to see the split.
func generateEvent() OrderEvent {
	event := OrderEvent{
		Action:       "CREATE",
		CreationDate: time.Now(),
		CustomerID:   "customer_" + randomString(5),
		Meals:        randomMeals(),
		Status:       statuses[rand.Intn(len(statuses))],
	}

	switch rand.Intn(5) {
	case 0:
		event.Action = "UPDATE"
		event.ID = randomString(16)
	case 1:
		event.Action = "DELETE"
		event.ID = randomString(16)
		event.Meals = nil
	}

	// every tenth event is malformed to exercise the drop path
	if rand.Intn(10) == 0 {
		event.Action = ""
	}
	return event
}

func main() {
	writer := &kafka.Writer{
		Addr:  kafka.TCP("localhost:9092"),
		Topic: "orders-input",
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			event := generateEvent()
			data, _ := json.Marshal(event)
			if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(event.ID), Value: data}); err != nil {
				log.Println("failed to write event:", err)
				continue
			}
			log.Println("event sent", event.Action, event.ID)
		case <-ctx.Done():
			return
		}
	}
}
