package nsq

import (
	"encoding/json"
	"fmt"

	"github.com/nsqio/go-nsq"
)

// MessageHandler processes one message body. A returned error requeues the message.
type MessageHandler func(body []byte) error

// Consumer handles consuming messages from an NSQ topic/channel
type Consumer struct {
	consumer *nsq.Consumer
}

// NewConsumer subscribes handler to topic/channel on the given nsqd
func NewConsumer(topic, channel, address string, maxAttempts uint16, handler MessageHandler) (*Consumer, error) {
	config := nsq.NewConfig()
	if maxAttempts > 0 {
		config.MaxAttempts = maxAttempts
	}

	consumer, err := nsq.NewConsumer(topic, channel, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ consumer: %w", err)
	}
	consumer.SetLoggerLevel(nsq.LogLevelWarning)
	consumer.AddHandler(nsq.HandlerFunc(func(message *nsq.Message) error {
		return handler(message.Body)
	}))

	if err := consumer.ConnectToNSQD(address); err != nil {
		consumer.Stop()
		return nil, fmt.Errorf("failed to connect to NSQ daemon: %w", err)
	}

	return &Consumer{consumer: consumer}, nil
}

// UnmarshalMessage deserializes a JSON message into the provided struct
func UnmarshalMessage(body []byte, v interface{}) error {
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}
	return nil
}

// Stop stops the consumer and waits for in-flight handlers
func (c *Consumer) Stop() {
	c.consumer.Stop()
	<-c.consumer.StopChan
}
