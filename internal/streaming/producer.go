package streaming

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/good-food/order-service/internal/config"
	"github.com/good-food/order-service/internal/entities"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer writes one outbound message per successful order mutation.
// Callers treat a returned error as best-effort-only: the store commit this
// event mirrors has already happened and is never rolled back.
type Producer struct {
	logger *slog.Logger
	writer messageWriter
}

func NewProducer(logger *slog.Logger, cfg config.Kafka) *Producer {
	return &Producer{
		logger: logger.With(slog.String("producer", "orders")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.OutputTopic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

func (p *Producer) Publish(ctx context.Context, order entities.Order, action entities.Action) error {
	event := EventFromOrder(order, action)

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(order.ID),
		Value: payload,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write order event: %w", err)
	}

	p.logger.Debug("order event published",
		slog.String("order_id", order.ID),
		slog.String("action", string(action)),
	)
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
