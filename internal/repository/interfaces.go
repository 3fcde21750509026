package repository

import (
	"context"

	"bigbazar/internal/model"
)

// ProductRepositoryInterface defines the interface for product store operations
type ProductRepositoryInterface interface {
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
	ListProductsWithVideo(ctx context.Context) ([]model.Product, error)
	UpdateProductMedia(ctx context.Context, id int64, image, videoURL string) error
	UpdateVideoURL(ctx context.Context, id int64, videoURL string) error
	InsertPendingProduct(ctx context.Context, p *model.Product) (bool, error)
	GetSetting(ctx context.Context, key string) (*model.SiteSetting, error)
	GetFlashSaleConfig(ctx context.Context) (*model.FlashSaleConfig, error)
	GetContactInfo(ctx context.Context) (*model.ContactInfo, error)
	Close() error
}

// RedisRepositoryInterface defines the interface for Redis operations
type RedisRepositoryInterface interface {
	IncrementStrategy(ctx context.Context, chain, strategy string, success bool) (int64, error)
	GetStrategyCounts(ctx context.Context, chain string) (map[string]*StrategyCounts, error)
	Close() error
}

var (
	_ ProductRepositoryInterface = (*ProductRepository)(nil)
	_ RedisRepositoryInterface   = (*RedisRepository)(nil)
)
