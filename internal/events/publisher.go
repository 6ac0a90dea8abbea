package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher writes roster events to a single topic, creating the writer
// lazily on first publish.
type KafkaPublisher struct {
	brokers []string
	topic   string

	mu     sync.Mutex
	writer *kafka.Writer
}

// NewKafkaPublisher creates a KafkaPublisher.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{brokers: brokers, topic: topic}
}

// SignupRecorded implements domain.RosterNotifier.
func (p *KafkaPublisher) SignupRecorded(ctx context.Context, activity, email string) error {
	return p.publish(ctx, TypeSignupRecorded, activity, SignupRecorded{
		Activity:   activity,
		Email:      email,
		OccurredAt: time.Now().UTC(),
	})
}

// RegistrationRemoved implements domain.RosterNotifier.
func (p *KafkaPublisher) RegistrationRemoved(ctx context.Context, activity, email string) error {
	return p.publish(ctx, TypeRegistrationRemoved, activity, RegistrationRemoved{
		Activity:   activity,
		Email:      email,
		OccurredAt: time.Now().UTC(),
	})
}

func (p *KafkaPublisher) publish(ctx context.Context, eventType, key string, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return p.writerRef().WriteMessages(ctx, Message(eventType, key, value))
}

// Message builds the wire message for a roster event. Messages are keyed by
// activity name so events for one activity stay ordered within a partition.
func Message(eventType, key string, value []byte) kafka.Message {
	return kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  time.Now().UTC(),
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
		},
	}
}

func (p *KafkaPublisher) writerRef() *kafka.Writer {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.writer == nil {
		p.writer = &kafka.Writer{
			Addr:         kafka.TCP(p.brokers...),
			Topic:        p.topic,
			RequiredAcks: kafka.RequireAll,
			Compression:  kafka.Snappy,
			Async:        false,
		}
	}
	return p.writer
}

// Close releases the writer.
func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.writer == nil {
		return nil
	}
	err := p.writer.Close()
	p.writer = nil
	return err
}
