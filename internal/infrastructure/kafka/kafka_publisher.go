package publisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

// OrderPublisher writes order lifecycle events to a Kafka topic, keyed by
// customer so events for one customer stay ordered within a partition.
type OrderPublisher struct {
	writer *kafka.Writer
	topic  string
}

func NewOrderPublisher(brokers []string, topic string) *OrderPublisher {
	return &OrderPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
		topic: topic,
	}
}

func (p *OrderPublisher) PublishOrderEvent(event OrderEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.CustomerID),
		Value: value,
		Topic: p.topic,
		Time:  time.Now(),
	})
}

func (p *OrderPublisher) Close() error {
	return p.writer.Close()
}
