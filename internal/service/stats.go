package service

import (
	"context"
	"sort"
	"time"

	"bigbazar/internal/chain"
	"bigbazar/internal/model"

	"github.com/rs/zerolog/log"
)

// StatsService counts how often each chain strategy wins or fails
type StatsService struct {
	redisRepo RedisRepositoryInterface
}

// NewStatsService creates a new Stats Service
func NewStatsService(redisRepo RedisRepositoryInterface) *StatsService {
	return &StatsService{
		redisRepo: redisRepo,
	}
}

// Observe records one strategy attempt. It matches chain.Observer.
func (ss *StatsService) Observe(ctx context.Context, chainName, strategy string, err error, elapsed time.Duration) {
	// the attempt context may already be past its deadline
	ctx = context.WithoutCancel(ctx)

	if _, incErr := ss.redisRepo.IncrementStrategy(ctx, chainName, strategy, err == nil); incErr != nil {
		log.Error().Err(incErr).Str("chain", chainName).Str("strategy", strategy).Msg("Failed to record strategy outcome")
	}
}

// Observer returns Observe as a chain.Observer
func (ss *StatsService) Observer() chain.Observer {
	return ss.Observe
}

// GetStrategyStats returns the retained counters of a chain, busiest strategy first
func (ss *StatsService) GetStrategyStats(ctx context.Context, chainName string) ([]model.StrategyStat, error) {
	counts, err := ss.redisRepo.GetStrategyCounts(ctx, chainName)
	if err != nil {
		return nil, err
	}

	stats := make([]model.StrategyStat, 0, len(counts))
	for name, c := range counts {
		stats = append(stats, model.StrategyStat{Strategy: name, Success: c.Success, Failure: c.Failure})
	}

	sort.Slice(stats, func(i, j int) bool {
		ti := stats[i].Success + stats[i].Failure
		tj := stats[j].Success + stats[j].Failure
		if ti != tj {
			return ti > tj
		}
		return stats[i].Strategy < stats[j].Strategy
	})

	return stats, nil
}
