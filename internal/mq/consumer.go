package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"bigbazar/internal/config"
	"bigbazar/internal/model"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/consumer"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/rs/zerolog/log"
)

// Consumer imports queued reels
type Consumer struct {
	client  rocketmq.PushConsumer
	topic   string
	group   string
	handler ReelImportHandler
	started bool
}

// NewConsumer creates a new RocketMQ consumer
func NewConsumer(cfg *config.RocketMQConfig, handler ReelImportHandler) (*Consumer, error) {
	c, err := rocketmq.NewPushConsumer(
		consumer.WithNameServer([]string{cfg.NameServer}),
		consumer.WithConsumerModel(consumer.Clustering),
		consumer.WithGroupName(cfg.Group),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create RocketMQ consumer: %w", err)
	}

	return &Consumer{
		client:  c,
		topic:   cfg.Topic,
		group:   cfg.Group,
		handler: handler,
	}, nil
}

// Subscribe subscribes to the topic and starts consuming messages
func (c *Consumer) Subscribe() error {
	if c.started {
		return nil
	}

	selector := consumer.MessageSelector{Type: consumer.TAG, Expression: TagReelImport}
	if err := c.client.Subscribe(c.topic, selector, c.consume); err != nil {
		return fmt.Errorf("failed to subscribe to topic: %w", err)
	}

	if err := c.client.Start(); err != nil {
		return fmt.Errorf("failed to start consumer: %w", err)
	}

	c.started = true
	log.Info().Str("topic", c.topic).Str("group", c.group).Msg("RocketMQ consumer started")

	return nil
}

// consume hands each message to the handler. A body that does not decode is
// dropped since redelivery cannot fix it.
func (c *Consumer) consume(ctx context.Context, msgs ...*primitive.MessageExt) (consumer.ConsumeResult, error) {
	for _, msg := range msgs {
		var reel model.ReelImportMessage
		if err := json.Unmarshal(msg.Body, &reel); err != nil {
			log.Error().Err(err).Str("msg_id", msg.MsgId).Msg("Failed to unmarshal message")
			continue
		}

		log.Debug().
			Str("msg_id", msg.MsgId).
			Str("media_id", reel.MediaID).
			Msg("Processing reel import")

		if c.handler != nil {
			if err := c.handler(ctx, &reel); err != nil {
				log.Error().Err(err).Str("msg_id", msg.MsgId).Str("media_id", reel.MediaID).Msg("Handler failed")
				return consumer.ConsumeRetryLater, err
			}
		}
	}
	return consumer.ConsumeSuccess, nil
}

// Close closes the consumer
func (c *Consumer) Close() error {
	if c != nil && c.client != nil {
		return c.client.Shutdown()
	}
	return nil
}
