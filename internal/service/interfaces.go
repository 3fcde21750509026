package service

import (
	"context"
	"time"

	"bigbazar/internal/model"
	"bigbazar/internal/repository"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/mock_service.go -package=mocks

// VideoLookup returns metadata for a link from a single upstream source (for testing)
type VideoLookup interface {
	Lookup(ctx context.Context, link string) (*model.VideoMetadata, error)
}

// RedirectFollower reports where a link ends up after redirects (for testing)
type RedirectFollower interface {
	Name() string
	Resolve(ctx context.Context, target string) (string, error)
}

// GraphClient looks up Instagram media (for testing)
type GraphClient interface {
	GetMedia(ctx context.Context, mediaID string) (*model.GraphMedia, error)
}

// ProductRepositoryInterface defines the interface for product store operations (for testing)
type ProductRepositoryInterface interface {
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
	ListProductsWithVideo(ctx context.Context) ([]model.Product, error)
	UpdateProductMedia(ctx context.Context, id int64, image, videoURL string) error
	UpdateVideoURL(ctx context.Context, id int64, videoURL string) error
	InsertPendingProduct(ctx context.Context, p *model.Product) (bool, error)
	GetFlashSaleConfig(ctx context.Context) (*model.FlashSaleConfig, error)
	GetContactInfo(ctx context.Context) (*model.ContactInfo, error)
}

// RedisRepositoryInterface defines the interface for Redis operations (for testing)
type RedisRepositoryInterface interface {
	IncrementStrategy(ctx context.Context, chain, strategy string, success bool) (int64, error)
	GetStrategyCounts(ctx context.Context, chain string) (map[string]*repository.StrategyCounts, error)
}

// BloomServiceInterface defines the interface for Bloom Filter operations (for testing)
type BloomServiceInterface interface {
	Add(ctx context.Context, mediaID string) error
	Exists(ctx context.Context, mediaID string) (bool, error)
	SeenBefore(ctx context.Context, mediaID string) (bool, error)
	GetCapacity() int64
	IsAvailable(ctx context.Context) bool
	Reset(ctx context.Context) error
}

// LinkResolverInterface defines the interface for link resolution
type LinkResolverInterface interface {
	IsShortLink(link string) bool
	Resolve(ctx context.Context, link string) string
	Canonicalize(ctx context.Context, link string) (*model.CanonicalVideoRef, bool)
	ResolveRef(ctx context.Context, link string) (string, *model.CanonicalVideoRef)
}

// MetadataServiceInterface defines the interface for metadata lookups
type MetadataServiceInterface interface {
	FetchMetadata(ctx context.Context, link string) *model.VideoMetadata
}

// EmbedServiceInterface defines the interface for embed URL construction
type EmbedServiceInterface interface {
	GetEmbedURL(ctx context.Context, link string, autoplay bool) (string, bool)
	Describe(ctx context.Context, link string, autoplay bool) *model.EmbedDescriptor
}

// CatalogServiceInterface defines the interface for storefront product views
type CatalogServiceInterface interface {
	ProductView(ctx context.Context, id int64) (*model.ProductView, error)
}

// StatsServiceInterface defines the interface for strategy statistics
type StatsServiceInterface interface {
	Observe(ctx context.Context, chain, strategy string, err error, elapsed time.Duration)
	GetStrategyStats(ctx context.Context, chain string) ([]model.StrategyStat, error)
}

// ReelImportServiceInterface defines the interface for reel imports
type ReelImportServiceInterface interface {
	Import(ctx context.Context, mediaID string) (*model.Product, error)
}
