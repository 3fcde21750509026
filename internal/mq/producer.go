package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"bigbazar/internal/config"
	"bigbazar/internal/model"
	"bigbazar/pkg/util"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"
	"github.com/rs/zerolog/log"
)

// Producer publishes webhook media ids to RocketMQ
type Producer struct {
	client rocketmq.Producer
	topic  string
}

// NewProducer creates a new RocketMQ producer
func NewProducer(cfg *config.RocketMQConfig) (*Producer, error) {
	p, err := rocketmq.NewProducer(
		producer.WithNameServer([]string{cfg.NameServer}),
		producer.WithRetry(3),
		producer.WithGroupName(cfg.Group+"_producer"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create RocketMQ producer: %w", err)
	}

	if err := p.Start(); err != nil {
		return nil, fmt.Errorf("failed to start RocketMQ producer: %w", err)
	}

	log.Info().Str("topic", cfg.Topic).Msg("RocketMQ producer started")

	return &Producer{
		client: p,
		topic:  cfg.Topic,
	}, nil
}

// SendReelImport queues a media id for import
func (p *Producer) SendReelImport(ctx context.Context, msg *model.ReelImportMessage) error {
	if p == nil {
		return nil // Producer disabled
	}

	m, err := newMessage(p.topic, msg)
	if err != nil {
		return err
	}

	result, err := p.client.SendSync(ctx, m)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	log.Debug().
		Str("msg_id", result.MsgID).
		Str("media_id", msg.MediaID).
		Msg("Reel import queued")

	return nil
}

// newMessage encodes msg. The media id and a unique key are both indexed so
// redeliveries of one reel can be traced.
func newMessage(topic string, msg *model.ReelImportMessage) (*primitive.Message, error) {
	bytes, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	m := primitive.NewMessage(topic, bytes)
	m.WithTag(TagReelImport)
	m.WithKeys([]string{msg.MediaID, util.GenerateUUID()})
	return m, nil
}

// Close closes the producer
func (p *Producer) Close() error {
	if p != nil && p.client != nil {
		return p.client.Shutdown()
	}
	return nil
}
