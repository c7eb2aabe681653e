// Package kafka publica las entradas del historial de estados como eventos.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"pawfam-api/internal/domain/history"
	"pawfam-api/internal/platform/logger"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
)

const (
	EventStatusChanged = "LifecycleStatusChanged"
	eventVersion       = 1
)

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

type Publisher struct {
	w        messageWriter
	producer string
}

// NewPublisher escribe en modo async: WriteMessages encola y vuelve, así un
// broker lento no frena las requests. Los fallos de entrega se loguean.
func NewPublisher(brokers []string, topic, producer string, log logger.Logger) *Publisher {
	return newPublisher(&kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
		Async:        true,
		Completion:   deliveryReport(log, topic),
	}, producer)
}

func deliveryReport(log logger.Logger, topic string) func([]kafkago.Message, error) {
	if log == nil {
		log = logger.Nop()
	}
	return func(msgs []kafkago.Message, err error) {
		if err == nil {
			return
		}
		for _, m := range msgs {
			log.Error("history event not delivered", map[string]any{
				"topic":     topic,
				"entity_id": string(m.Key),
				"error":     err.Error(),
			})
		}
	}
}

func newPublisher(w messageWriter, producer string) *Publisher {
	return &Publisher{w: w, producer: producer}
}

// Publish usa el id de la entidad como clave: los cambios de una misma
// entidad caen en la misma partición y conservan su orden.
func (p *Publisher) Publish(ctx context.Context, e history.Entry) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return err
	}
	env := Envelope{
		EventID:       e.ID,
		EventType:     EventStatusChanged,
		EventVersion:  eventVersion,
		OccurredAt:    e.OccurredAt,
		Producer:      p.producer,
		CorrelationID: e.EntityID,
		Payload:       payload,
	}
	if env.EventID == "" {
		env.EventID = uuid.NewString()
	}
	b, err := json.Marshal(env)
	if err != nil {
		return err
	}

	return p.w.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(e.EntityID),
		Value: b,
		Time:  e.OccurredAt,
		Headers: []kafkago.Header{
			{Key: "x-event-type", Value: []byte(EventStatusChanged)},
			{Key: "x-entity-kind", Value: []byte(e.EntityKind)},
			{Key: "x-event-version", Value: []byte("1")},
		},
	})
}

func (p *Publisher) Close() error {
	return p.w.Close()
}
