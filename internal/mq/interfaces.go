package mq

import (
	"context"

	"bigbazar/internal/model"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/mock_mq.go -package=mocks

// ProducerInterface defines the interface for message production
type ProducerInterface interface {
	SendReelImport(ctx context.Context, msg *model.ReelImportMessage) error
	Close() error
}

// ConsumerInterface defines the interface for message consumption
type ConsumerInterface interface {
	Subscribe() error
	Close() error
}
