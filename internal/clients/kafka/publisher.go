package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/yungbote/careerpath-backend/internal/events"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

type publisher struct {
	log    *logger.Logger
	writer *kafkago.Writer
}

// NewPublisher writes events to topic, keyed by Event.Key so events for one
// advisor land on one partition.
func NewPublisher(log *logger.Logger, brokers []string, topic string) (events.Publisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("missing KAFKA_BROKERS")
	}
	if topic == "" {
		return nil, fmt.Errorf("missing KAFKA_TOPIC")
	}
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafkago.RequireOne,
	}
	return &publisher{log: log.With("service", "KafkaPublisher", "topic", topic), writer: w}, nil
}

func (p *publisher) Publish(ctx context.Context, ev events.Event) error {
	raw, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	err = p.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(ev.Key),
		Value: raw,
		Time:  ev.At,
		Headers: []kafkago.Header{
			{Key: "type", Value: []byte(ev.Type)},
		},
	})
	if err != nil {
		return fmt.Errorf("kafka write: %w", err)
	}
	p.log.Debug("event published", "type", ev.Type, "key", ev.Key)
	return nil
}

func (p *publisher) Close() error {
	return p.writer.Close()
}
