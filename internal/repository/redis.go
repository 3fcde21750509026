package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bigbazar/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	// Redis key prefixes
	StrategyKeyPrefix   = "bb:strategy:"
	StatsExpireDuration = 7 * 24 * time.Hour
)

// Outcome labels used in strategy counter keys
const (
	OutcomeSuccess = "ok"
	OutcomeFailure = "fail"
)

// StrategyCounts holds per-strategy outcome totals
type StrategyCounts struct {
	Success int64
	Failure int64
}

// RedisRepository handles Redis operations
type RedisRepository struct {
	client *redis.Client
	cfg    *config.RedisConfig
}

// NewRedisRepository creates a new Redis repository
func NewRedisRepository(cfg *config.RedisConfig) *RedisRepository {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("Failed to connect to Redis")
	} else {
		log.Info().Msg("Redis connected successfully")
	}

	return &RedisRepository{
		client: rdb,
		cfg:    cfg,
	}
}

// GetClient returns the Redis client
func (r *RedisRepository) GetClient() *redis.Client {
	return r.client
}

// IncrementStrategy bumps today's success or failure counter of a chain strategy
func (r *RedisRepository) IncrementStrategy(ctx context.Context, chain, strategy string, success bool) (int64, error) {
	outcome := OutcomeFailure
	if success {
		outcome = OutcomeSuccess
	}
	key := r.strategyKey(chain, strategy, outcome, time.Now())

	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		r.client.Expire(ctx, key, StatsExpireDuration)
	}
	return count, nil
}

// GetStrategyCounts sums the retained daily counters of every strategy in a chain
func (r *RedisRepository) GetStrategyCounts(ctx context.Context, chain string) (map[string]*StrategyCounts, error) {
	prefix := StrategyKeyPrefix + chain + ":"
	counts := make(map[string]*StrategyCounts)

	iter := r.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		n, err := r.client.Get(ctx, key).Int64()
		if err != nil {
			continue
		}

		// {strategy}:{outcome}:{day}
		parts := strings.Split(strings.TrimPrefix(key, prefix), ":")
		if len(parts) != 3 {
			continue
		}
		c, ok := counts[parts[0]]
		if !ok {
			c = &StrategyCounts{}
			counts[parts[0]] = c
		}
		switch parts[1] {
		case OutcomeSuccess:
			c.Success += n
		case OutcomeFailure:
			c.Failure += n
		}
	}

	return counts, iter.Err()
}

// Close closes the Redis connection
func (r *RedisRepository) Close() error {
	return r.client.Close()
}

func (r *RedisRepository) strategyKey(chain, strategy, outcome string, day time.Time) string {
	return fmt.Sprintf("%s%s:%s:%s:%s", StrategyKeyPrefix, chain, strategy, outcome, day.Format("2006-01-02"))
}
