package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/good-food/order-service/internal/config"
	"github.com/good-food/order-service/internal/entities"
	"github.com/good-food/order-service/internal/service"
	"github.com/good-food/order-service/internal/streaming"

	"github.com/segmentio/kafka-go"
)

// OrderCommands is the subset of the order service the consumer replays
// inbound events against. Each successful call publishes its own outbound
// event, which is what mirrors one inbound message into one outbound message.
type OrderCommands interface {
	Create(ctx context.Context, req service.CreateOrderRequest) (entities.Order, error)
	Update(ctx context.Context, req service.UpdateOrderRequest) (entities.Order, error)
	Delete(ctx context.Context, id string) error
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaHandler struct {
	reader messageReader
	logger *slog.Logger
	svc    OrderCommands
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, svc OrderCommands) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.InputTopic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		svc: svc,
	}
}

// Consume runs the listener loop. A failing message is logged and committed
// anyway: there is no retry and no dead-letter, and one bad message must
// never stop the listener.
func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		h.handleMessage(ctx, m)

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handleMessage(ctx context.Context, m kafka.Message) {
	start := time.Now()
	eventsInProgress.Inc()
	defer func() {
		eventsInProgress.Dec()
		eventProcessingDuration.Observe(time.Since(start).Seconds())
	}()

	var event streaming.OrderEvent
	if err := json.Unmarshal(m.Value, &event); err != nil {
		eventsFailed.Inc()
		h.logger.Error("failed to unmarshal order event", slog.Any("error", err))
		return
	}

	action := entities.ParseAction(event.Action)
	if !action.Valid() {
		eventsDropped.Inc()
		h.logger.Error("action is required to complete the operation")
		return
	}

	var err error
	switch action {
	case entities.ActionCreate:
		_, err = h.svc.Create(ctx, service.CreateOrderRequest{
			CustomerID: event.CustomerID,
			Meals:      event.MealLines(),
			Status:     entities.ParseOrderStatus(event.Status),
		})
	case entities.ActionUpdate:
		_, err = h.svc.Update(ctx, service.UpdateOrderRequest{
			ID:     event.ID,
			Meals:  event.MealLines(),
			Status: entities.ParseOrderStatus(event.Status),
		})
	case entities.ActionDelete:
		err = h.svc.Delete(ctx, event.ID)
	}

	if err != nil {
		eventsFailed.Inc()
		h.logger.Error("failure processing order message",
			slog.String("action", string(action)),
			slog.Any("error", err),
		)
		return
	}
	eventsProcessed.Inc()
}

func (h *kafkaHandler) Close() error {
	return h.reader.Close()
}
