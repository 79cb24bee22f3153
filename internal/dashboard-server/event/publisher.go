package event

import (
	"NYA_Service_Dashboard/internal/dashboard-server/model"
	"NYA_Service_Dashboard/pkg/infra"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	ServiceCreated = "service.created"
	ServiceUpdated = "service.updated"
	ServiceDeleted = "service.deleted"
)

type ServiceEvent struct {
	Type      string         `json:"type"`
	ServiceID string         `json:"service_id"`
	Service   *model.Service `json:"service,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

type Publisher interface {
	PublishServiceEvent(ctx context.Context, evt ServiceEvent) error
	Close() error
}

type kafkaPublisher struct {
	writer infra.KafkaWriter
}

func (k *kafkaPublisher) PublishServiceEvent(ctx context.Context, evt ServiceEvent) error {
	value, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("kafkaPublisher.PublishServiceEvent: %w", err)
	}
	err = k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(evt.ServiceID),
		Value: value,
		Time:  evt.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("kafkaPublisher.PublishServiceEvent: %w", err)
	}
	return nil
}

func (k *kafkaPublisher) Close() error {
	return k.writer.Close()
}

func NewKafkaPublisher(writer infra.KafkaWriter) Publisher {
	return &kafkaPublisher{writer: writer}
}

type nopPublisher struct{}

func (nopPublisher) PublishServiceEvent(ctx context.Context, evt ServiceEvent) error {
	return nil
}

func (nopPublisher) Close() error {
	return nil
}

// NewNopPublisher is used when no Kafka brokers are configured.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}
