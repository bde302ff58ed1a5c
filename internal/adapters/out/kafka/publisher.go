// Package kafka publishes order integration events with segmentio/kafka-go.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fooddelivery/internal/core/ports"

	kafkago "github.com/segmentio/kafka-go"
)

const writeTimeout = 5 * time.Second

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// OrderEventPublisher writes one JSON message per event, keyed by order id so
// that events of one order keep their order within a partition.
type OrderEventPublisher struct {
	writer messageWriter
}

var _ ports.OrderEventPublisher = (*OrderEventPublisher)(nil)

func NewOrderEventPublisher(brokers []string, topic string) *OrderEventPublisher {
	return newOrderEventPublisher(&kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireOne,
		WriteTimeout:           writeTimeout,
		AllowAutoTopicCreation: true,
	})
}

func newOrderEventPublisher(w messageWriter) *OrderEventPublisher {
	return &OrderEventPublisher{writer: w}
}

func (p *OrderEventPublisher) Publish(ctx context.Context, events ...ports.OrderChangedEvent) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafkago.Message, 0, len(events))
	for _, e := range events {
		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("kafka: marshal %s event for order %s: %w", e.Change, e.OrderID, err)
		}
		msgs = append(msgs, kafkago.Message{
			Key:     []byte(e.OrderID),
			Value:   data,
			Time:    e.OccurredAt,
			Headers: []kafkago.Header{{Key: "change", Value: []byte(e.Change)}},
		})
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("kafka: write %d order events: %w", len(msgs), err)
	}
	return nil
}

func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}
