package kafka

import (
	"context"
	"log/slog"
	"time"

	"pancakelab/internal/core/domain/model/order"
	"pancakelab/internal/pkg/errs"

	"github.com/twmb/franz-go/pkg/kgo"
)

// Producer is the part of *kgo.Client the publisher needs.
type Producer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
}

// OrderEventPublisher implements ports.OrderEventPublisher on Kafka.
type OrderEventPublisher struct {
	producer Producer
	encoder  *EventEncoder
	topic    string
	logger   *slog.Logger
}

// NewClient creates a franz-go client that produces to topic by default and
// waits for all in-sync replicas. Records not acknowledged within
// deliveryTimeout fail, so an unreachable cluster cannot stall a producer.
func NewClient(brokers []string, topic string, deliveryTimeout time.Duration) (*kgo.Client, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.RecordDeliveryTimeout(deliveryTimeout),
	)
	if err != nil {
		return nil, errs.NewUnavailableErrorWithCause("kafka", err)
	}
	return client, nil
}

// NewOrderEventPublisher creates a publisher writing to topic through producer.
func NewOrderEventPublisher(producer Producer, topic string, logger *slog.Logger) (*OrderEventPublisher, error) {
	if topic == "" {
		return nil, errs.NewValueIsRequiredError("kafka topic")
	}

	encoder, err := NewEventEncoder()
	if err != nil {
		return nil, err
	}

	return &OrderEventPublisher{
		producer: producer,
		encoder:  encoder,
		topic:    topic,
		logger:   logger.With("component", "kafka-publisher", "topic", topic),
	}, nil
}

// Publish encodes event and waits until the broker acknowledges it.
func (p *OrderEventPublisher) Publish(ctx context.Context, event order.Event) error {
	payload, err := p.encoder.Encode(event)
	if err != nil {
		return err
	}

	record := &kgo.Record{
		Topic:     p.topic,
		Key:       []byte(event.OrderID.String()),
		Value:     payload,
		Timestamp: event.OccurredAt,
		Headers: []kgo.RecordHeader{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	}

	if err = p.producer.ProduceSync(ctx, record).FirstErr(); err != nil {
		return errs.NewUnavailableErrorWithCause("kafka", err)
	}

	p.logger.DebugContext(ctx, "order event published",
		"event", string(event.Type),
		"order_id", event.OrderID.String(),
		"size", len(payload),
	)
	return nil
}
