package kafka_test

import (
	"testing"

	"guesthouse/infras/kafka"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type event struct {
	Kind      string `json:"kind"`
	BookingID string `json:"booking_id"`
}

func TestMessage_ToKafkaMessage(t *testing.T) {
	msg := kafka.Message{Key: "booking-1", Value: event{Kind: "approved", BookingID: "booking-1"}}

	out, err := msg.ToKafkaMessage()
	require.NoError(t, err)
	assert.Equal(t, []byte("booking-1"), out.Key)
	assert.JSONEq(t, `{"kind":"approved","booking_id":"booking-1"}`, string(out.Value))

	decoded, err := kafka.Decode[event](out)
	require.NoError(t, err)
	assert.Equal(t, "approved", decoded.Kind)
}

func TestMessage_ToKafkaMessageRejectsUnencodable(t *testing.T) {
	msg := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := msg.ToKafkaMessage()
	assert.Error(t, err)
}

func TestDecode_InvalidJSON(t *testing.T) {
	_, err := kafka.Decode[event](kafkaGo.Message{Value: []byte("{")})
	assert.Error(t, err)
}
