package consumer

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	log "github.com/sirupsen/logrus"
)

const defaultPollTimeout = 100 * time.Millisecond

type MessageHandler interface {
	HandleMessage(ctx context.Context, message []byte) error
}

// Poller is the subset of *kafka.Consumer the loop depends on.
type Poller interface {
	SubscribeTopics(topics []string, rebalanceCb kafka.RebalanceCb) error
	Poll(timeoutMs int) kafka.Event
	Close() error
}

// Stats counts messages a consumer has passed to its handler.
type Stats struct {
	Handled uint64
	Failed  uint64
}

type Option func(*KafkaConsumer)

// WithPollTimeout bounds how long a single Poll blocks, which is also how
// long Start may take to notice cancellation.
func WithPollTimeout(d time.Duration) Option {
	return func(c *KafkaConsumer) {
		if d > 0 {
			c.pollTimeout = d
		}
	}
}

// KafkaConsumer feeds one topic into a MessageHandler. Handler failures are
// logged and counted; the offending message is not redelivered.
type KafkaConsumer struct {
	poller      Poller
	topic       string
	handler     MessageHandler
	pollTimeout time.Duration
	logger      *log.Entry

	handled atomic.Uint64
	failed  atomic.Uint64
}

func NewKafkaConsumer(poller Poller, topic string, handler MessageHandler, opts ...Option) (*KafkaConsumer, error) {
	c := &KafkaConsumer{
		poller:      poller,
		topic:       topic,
		handler:     handler,
		pollTimeout: defaultPollTimeout,
		logger:      log.WithField("topic", topic),
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := poller.SubscribeTopics([]string{topic}, nil); err != nil {
		return nil, err
	}
	c.logger.WithField("poll_timeout", c.pollTimeout).Info("Subscribed to Kafka topic")
	return c, nil
}

// Start polls until ctx is cancelled or Kafka reports a fatal error.
func (c *KafkaConsumer) Start(ctx context.Context) error {
	timeoutMs := int(c.pollTimeout / time.Millisecond)
	for {
		if err := ctx.Err(); err != nil {
			st := c.Stats()
			c.logger.WithFields(log.Fields{
				"handled": st.Handled,
				"failed":  st.Failed,
			}).Info("Kafka consumer stopping due to context cancellation")
			return err
		}

		switch e := c.poller.Poll(timeoutMs).(type) {
		case *kafka.Message:
			c.handle(ctx, e)
		case kafka.Error:
			c.logger.WithError(e).WithField("code", e.Code().String()).Error("Kafka error")
			if e.IsFatal() {
				return e
			}
		}
	}
}

func (c *KafkaConsumer) handle(ctx context.Context, msg *kafka.Message) {
	if err := c.handler.HandleMessage(ctx, msg.Value); err != nil {
		c.failed.Add(1)
		c.logger.WithError(err).WithFields(log.Fields{
			"partition": msg.TopicPartition.Partition,
			"offset":    msg.TopicPartition.Offset.String(),
		}).Error("Failed to handle message")
		return
	}
	c.handled.Add(1)
}

func (c *KafkaConsumer) Stats() Stats {
	return Stats{Handled: c.handled.Load(), Failed: c.failed.Load()}
}

func (c *KafkaConsumer) Close() error {
	return c.poller.Close()
}
