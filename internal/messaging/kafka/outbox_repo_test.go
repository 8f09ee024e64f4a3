package kafka_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-jobboard/internal/messaging/kafka"
)

func validEvent() kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:            "8f14e45f-ceea-4e07-8c65-1b5a4d9e0a11",
		AggregateType: "application",
		AggregateID:   "42",
		EventType:     "application.submitted",
		Topic:         "jobboard.application.lifecycle.v1",
		Payload:       []byte(`{"application_id":42}`),
		Status:        kafka.OutboxStatusPending,
	}
}

func TestValidateOutboxEvent(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, kafka.ValidateOutboxEvent(validEvent()))
	})

	t.Run("Missing id", func(t *testing.T) {
		event := validEvent()
		event.ID = ""
		assert.Error(t, kafka.ValidateOutboxEvent(event))
	})

	t.Run("Missing topic", func(t *testing.T) {
		event := validEvent()
		event.Topic = ""
		assert.Error(t, kafka.ValidateOutboxEvent(event))
	})

	t.Run("Empty payload", func(t *testing.T) {
		event := validEvent()
		event.Payload = nil
		assert.Error(t, kafka.ValidateOutboxEvent(event))
	})

	t.Run("Unknown status", func(t *testing.T) {
		event := validEvent()
		event.Status = "queued"
		assert.ErrorContains(t, kafka.ValidateOutboxEvent(event), "invalid outbox status")
	})
}
