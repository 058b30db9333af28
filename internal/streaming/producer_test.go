package streaming

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/good-food/order-service/internal/entities"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	written []kafka.Message
	err     error
	closed  bool
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.written = append(f.written, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func newTestProducer(writer messageWriter) *Producer {
	return &Producer{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		writer: writer,
	}
}

func TestProducer_Publish(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	order := entities.Order{
		ID:           "order-1",
		CreationDate: now,
		CustomerID:   "customer-1",
		Status:       entities.StatusCreated,
		Meals: []entities.MealLine{
			{ID: "line-1", CreationDate: now, Description: "Pad Thai", Note: "spicy", Quantity: 2, Type: entities.MealAsian},
		},
	}

	t.Run("payload carries snapshot and action", func(t *testing.T) {
		writer := &fakeWriter{}
		p := newTestProducer(writer)

		err := p.Publish(context.Background(), order, entities.ActionCreate)
		require.NoError(t, err)
		require.Len(t, writer.written, 1)

		msg := writer.written[0]
		assert.Equal(t, []byte("order-1"), msg.Key)

		var event OrderEvent
		require.NoError(t, json.Unmarshal(msg.Value, &event))
		assert.Equal(t, "CREATE", event.Action)
		assert.Equal(t, "order-1", event.ID)
		assert.Equal(t, "customer-1", event.CustomerID)
		assert.Equal(t, "CREATED", event.Status)
		require.Len(t, event.Meals, 1)
		assert.Equal(t, "Pad Thai", event.Meals[0].Description)
		assert.Equal(t, 2, event.Meals[0].Quantity)
		assert.Equal(t, "ASIAN", event.Meals[0].Type)
	})

	t.Run("delete event keeps the pre-delete snapshot", func(t *testing.T) {
		writer := &fakeWriter{}
		p := newTestProducer(writer)

		err := p.Publish(context.Background(), order, entities.ActionDelete)
		require.NoError(t, err)
		require.Len(t, writer.written, 1)

		var event OrderEvent
		require.NoError(t, json.Unmarshal(writer.written[0].Value, &event))
		assert.Equal(t, "DELETE", event.Action)
		assert.Len(t, event.Meals, 1)
	})

	t.Run("writer failure is returned to the caller", func(t *testing.T) {
		writer := &fakeWriter{err: errors.New("broker unavailable")}
		p := newTestProducer(writer)

		err := p.Publish(context.Background(), order, entities.ActionUpdate)
		assert.Error(t, err)
	})
}

func TestProducer_Close(t *testing.T) {
	writer := &fakeWriter{}
	p := newTestProducer(writer)

	assert.NoError(t, p.Close())
	assert.True(t, writer.closed)
}

func TestOrderEvent_MealLines(t *testing.T) {
	now := time.Now()

	event := OrderEvent{
		Meals: []MealLineEvent{
			{ID: "line-1", CreationDate: now, Description: "Tiramisu", Quantity: 1, Type: "DESSERT"},
			{Description: "Mystery", Quantity: 1, Type: "UNKNOWN"},
		},
	}

	lines := event.MealLines()
	require.Len(t, lines, 2)
	assert.Equal(t, entities.MealDessert, lines[0].Type)
	assert.Equal(t, entities.MealError, lines[1].Type)

	assert.Nil(t, OrderEvent{}.MealLines())
}
