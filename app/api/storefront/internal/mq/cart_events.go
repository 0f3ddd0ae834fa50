package mq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

// CartEventsProducer publishes cart-changed events. It satisfies
// cartengine.Notifier; a nil producer is a valid no-op notifier source, so
// callers can skip wiring it when Kafka is not configured.
type CartEventsProducer struct {
	writer *kafka.Writer
}

func NewCartEventsProducer(brokers []string, topic string) *CartEventsProducer {
	if len(brokers) == 0 || topic == "" {
		return nil
	}
	return &CartEventsProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			RequiredAcks: kafka.RequireOne,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

func (p *CartEventsProducer) CartChanged(ctx context.Context, sessionKey string) error {
	body, err := json.Marshal(CartChangedEvent{
		SessionKey: sessionKey,
		ChangedAt:  time.Now().Unix(),
	})
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(sessionKey),
		Value: body,
	})
}

func (p *CartEventsProducer) Close() error {
	return p.writer.Close()
}
