// Package events feeds object-changed notifications from Kafka into the sync
// pipeline. One message is one sync.Event encoded as JSON; undecodable
// messages are logged and dropped, never replayed.
package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/IBM/sarama"

	"github.com/qburst/pimcore-magento-product-connector/internal/sync"
)

// Handler processes one decoded change event.
type Handler func(ctx context.Context, ev sync.Event) error

// ParseEvent decodes one message payload.
func ParseEvent(data []byte) (sync.Event, error) {
	var ev sync.Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return sync.Event{}, err
	}

	return ev, nil
}

type eventConsumer struct {
	ready   chan struct{}
	handler Handler
	logger  *log.Logger
}

func newEventConsumer(handler Handler, logger *log.Logger) *eventConsumer {
	return &eventConsumer{
		ready:   make(chan struct{}),
		handler: handler,
		logger:  logger,
	}
}

// Setup runs at the beginning of a new session, before ConsumeClaim.
func (c *eventConsumer) Setup(sarama.ConsumerGroupSession) error {
	close(c.ready)
	return nil
}

// Cleanup runs at the end of a session, after all ConsumeClaim goroutines
// have exited.
func (c *eventConsumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim loops over the claim's messages. Handler failures are logged
// and the message is marked anyway; the pipeline never retries a sync on its
// own.
func (c *eventConsumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		ev, err := ParseEvent(message.Value)
		if err != nil {
			c.logger.Printf("dropping undecodable event at %s/%d/%d: %v", message.Topic, message.Partition, message.Offset, err)
			session.MarkMessage(message, "")
			continue
		}

		if err := c.handler(session.Context(), ev); err != nil {
			c.logger.Printf("sync of object %d failed: %v", ev.ObjectID, err)
		}

		session.MarkMessage(message, "")
	}

	return nil
}

// Run joins the consumer group and dispatches events until ctx is cancelled.
// It returns once the group membership is established.
func Run(ctx context.Context, brokers []string, topic, groupID string, handler Handler, logger *log.Logger) error {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V2_8_0_0
	cfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	group, err := sarama.NewConsumerGroup(brokers, groupID, cfg)
	if err != nil {
		return err
	}

	consumer := newEventConsumer(handler, logger)

	go func() {
		defer group.Close()

		for {
			// Consume returns on every server-side rebalance; the session is
			// recreated to pick up the new claims.
			if err := group.Consume(ctx, []string{topic}, consumer); err != nil {
				logger.Printf("consumer error: %v", err)
				time.Sleep(5 * time.Second)
			}

			if ctx.Err() != nil {
				return
			}

			consumer.ready = make(chan struct{})
		}
	}()

	<-consumer.ready
	logger.Printf("event consumer joined group %s on topic %s", groupID, topic)

	return nil
}
