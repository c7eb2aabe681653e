package kafka

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"pawfam-api/internal/domain/history"
	"pawfam-api/internal/domain/lifecycle"
	"pawfam-api/internal/platform/logger"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureWriter struct {
	msgs   []kafkago.Message
	closed bool
}

func (c *captureWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	c.msgs = append(c.msgs, msgs...)
	return nil
}

func (c *captureWriter) Close() error {
	c.closed = true
	return nil
}

func TestPublisher_PublishEnvelope(t *testing.T) {
	w := &captureWriter{}
	p := newPublisher(w, "pawfam-api")
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	e := history.Entry{
		ID:         "h-1",
		EntityKind: lifecycle.KindOrder,
		EntityID:   "o-1",
		Type:       history.EventCancelled,
		FromStatus: "pending",
		ToStatus:   "cancelled",
		Actor:      history.Actor{Type: history.ActorCustomer, ID: "u-1"},
		OccurredAt: at,
	}
	require.NoError(t, p.Publish(context.Background(), e))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "o-1", string(msg.Key))

	var env Envelope
	require.NoError(t, json.Unmarshal(msg.Value, &env))
	assert.Equal(t, "h-1", env.EventID)
	assert.Equal(t, EventStatusChanged, env.EventType)
	assert.Equal(t, "pawfam-api", env.Producer)
	assert.Equal(t, "o-1", env.CorrelationID)

	var got history.Entry
	require.NoError(t, json.Unmarshal(env.Payload, &got))
	assert.Equal(t, "cancelled", got.ToStatus)

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestDeliveryReport_LogsFailedMessages(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Format: logger.FormatJSON, Output: &buf})
	report := deliveryReport(log, "pawfam.lifecycle")

	report([]kafkago.Message{{Key: []byte("o-1")}}, nil)
	assert.Empty(t, buf.String())

	report([]kafkago.Message{{Key: []byte("o-1")}, {Key: []byte("b-7")}}, errors.New("leader not available"))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"entity_id":"o-1"`)
	assert.Contains(t, lines[1], "leader not available")
}

func TestNewPublisher_WritesAsync(t *testing.T) {
	p := NewPublisher([]string{"localhost:9092"}, "pawfam.lifecycle", "pawfam-api", nil)
	w, ok := p.w.(*kafkago.Writer)
	require.True(t, ok)
	assert.True(t, w.Async)
	assert.NotNil(t, w.Completion)
	assert.Equal(t, kafkago.RequireAll, w.RequiredAcks)
}
