// Package kafka publishes order-changed events to a Kafka topic so other
// systems (analytics, archives) can follow the order stream without touching
// the push channel.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/IBM/sarama"
)

// envelope is the wire form of one order event.
type envelope struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

// OrderEventPublisher implements ports.OrderEventPublisher over a sarama
// sync producer.
type OrderEventPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewOrderEventPublisher connects a sync producer to the given brokers.
func NewOrderEventPublisher(
	brokers []string,
	topic string,
	logger *slog.Logger,
) (*OrderEventPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, err
	}

	return &OrderEventPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "kafka_publisher"),
	}, nil
}

// PublishOrderChanged sends one event envelope to the order topic.
func (p *OrderEventPublisher) PublishOrderChanged(ctx context.Context, event string, payload any) error {
	message, err := json.Marshal(envelope{Event: event, Payload: payload})
	if err != nil {
		return err
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Value: sarama.ByteEncoder(message),
	})
	if err != nil {
		return err
	}

	p.logger.DebugContext(ctx, "order event published",
		"topic", p.topic, "partition", partition, "offset", offset, "event", event)
	return nil
}

// Close shuts down the underlying producer.
func (p *OrderEventPublisher) Close() error {
	return p.producer.Close()
}

// NopOrderEventPublisher discards events. Used when no Kafka brokers are
// configured.
type NopOrderEventPublisher struct{}

// NewNopOrderEventPublisher creates a publisher that drops every event.
func NewNopOrderEventPublisher() NopOrderEventPublisher {
	return NopOrderEventPublisher{}
}

// PublishOrderChanged discards the event.
func (NopOrderEventPublisher) PublishOrderChanged(_ context.Context, _ string, _ any) error {
	return nil
}
