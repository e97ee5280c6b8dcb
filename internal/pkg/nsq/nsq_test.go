package nsq

import (
	"testing"

	"github.com/piresc/roundup/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProducer_Unreachable(t *testing.T) {
	producer, err := NewProducer("127.0.0.1:1")
	assert.Error(t, err)
	assert.Nil(t, producer)
	assert.Contains(t, err.Error(), "failed to ping NSQ daemon")
}

func TestNewConsumer_InvalidTopic(t *testing.T) {
	consumer, err := NewConsumer("bad topic!", "channel", "127.0.0.1:1", 0, func([]byte) error { return nil })
	assert.Error(t, err)
	assert.Nil(t, consumer)
}

func TestUnmarshalMessage(t *testing.T) {
	var notice models.PreDebitNotice
	require.NoError(t, UnmarshalMessage([]byte(`{"amount_paise":12000,"message":"hi"}`), &notice))
	assert.Equal(t, int64(12000), notice.AmountPaise)

	assert.Error(t, UnmarshalMessage([]byte(`{`), &notice))
}
