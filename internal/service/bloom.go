package service

import (
	"context"
	"fmt"
	"time"

	"bigbazar/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

//go:generate mockgen -source=bloom.go -destination=../mocks/mock_redis_client.go -package=mocks

// BloomService remembers which webhook media ids were already queued
type BloomService struct {
	client    RedisClient
	capacity  int64
	errorRate float64
}

// RedisClient defines the interface for Redis client operations
type RedisClient interface {
	Do(ctx context.Context, args ...interface{}) *redis.Cmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

const (
	bloomFilterKey = "reels:bloom"
	// fallback markers expire so a reel whose import failed can be retried later
	fallbackTTL = 30 * 24 * time.Hour
)

// NewBloomService creates a new Bloom Service
func NewBloomService(client RedisClient, cfg *config.BloomConfig) *BloomService {
	bs := &BloomService{
		client:    client,
		capacity:  cfg.Capacity,
		errorRate: cfg.ErrorRate,
	}

	bs.initBloomFilter(context.Background())

	return bs
}

func (bs *BloomService) initBloomFilter(ctx context.Context) {
	exists, err := bs.client.Exists(ctx, bloomFilterKey).Result()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to check Bloom Filter existence")
		return
	}

	if exists > 0 {
		log.Info().Msg("Bloom Filter already exists")
		return
	}

	cmd := bs.client.Do(ctx, "BF.RESERVE", bloomFilterKey, bs.errorRate, bs.capacity)
	if err := cmd.Err(); err != nil {
		log.Warn().Err(err).Msg("BF.RESERVE not available, using dynamic Bloom Filter")
	} else {
		log.Info().Msgf("Bloom Filter created with capacity=%d, error_rate=%f", bs.capacity, bs.errorRate)
	}
}

// Add records a media id
func (bs *BloomService) Add(ctx context.Context, mediaID string) error {
	cmd := bs.client.Do(ctx, "BF.ADD", bloomFilterKey, mediaID)
	if err := cmd.Err(); err != nil {
		if ctx.Err() != nil {
			return err
		}
		log.Debug().Err(err).Msg("BF.ADD not available, using SET as fallback")
		return bs.client.Set(ctx, bs.fallbackKey(mediaID), 1, fallbackTTL).Err()
	}
	return nil
}

// Exists reports whether a media id might have been recorded
func (bs *BloomService) Exists(ctx context.Context, mediaID string) (bool, error) {
	cmd := bs.client.Do(ctx, "BF.EXISTS", bloomFilterKey, mediaID)
	result, err := cmd.Int()
	if err == nil {
		return result == 1, nil
	}
	if ctx.Err() != nil {
		return false, err
	}

	log.Debug().Err(err).Msg("BF.EXISTS not available, using EXISTS as fallback")
	exists, err := bs.client.Exists(ctx, bs.fallbackKey(mediaID)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

// SeenBefore records mediaID and reports whether it had already been recorded
func (bs *BloomService) SeenBefore(ctx context.Context, mediaID string) (bool, error) {
	seen, err := bs.Exists(ctx, mediaID)
	if err != nil {
		return false, err
	}
	if seen {
		return true, nil
	}
	return false, bs.Add(ctx, mediaID)
}

func (bs *BloomService) fallbackKey(mediaID string) string {
	return fmt.Sprintf("%s:fb:%s", bloomFilterKey, mediaID)
}

// GetCapacity returns the capacity of the Bloom Filter
func (bs *BloomService) GetCapacity() int64 {
	return bs.capacity
}

// IsAvailable checks if the RedisBloom module is loaded
func (bs *BloomService) IsAvailable(ctx context.Context) bool {
	cmd := bs.client.Do(ctx, "BF.INFO", bloomFilterKey)
	return cmd.Err() == nil
}

// Reset drops the Bloom Filter. Fallback markers expire on their own.
func (bs *BloomService) Reset(ctx context.Context) error {
	return bs.client.Del(ctx, bloomFilterKey).Err()
}
