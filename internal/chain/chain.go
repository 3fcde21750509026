// Package chain runs an ordered list of fallible strategies and returns the
// first result that succeeds.
package chain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	// ErrNoData is returned by a strategy that completed but found nothing usable
	ErrNoData = errors.New("strategy produced no data")
	// ErrExhausted is returned when every strategy failed
	ErrExhausted = errors.New("all strategies failed")
)

// Func is the uniform strategy signature
type Func[T any] func(ctx context.Context, input string) (T, error)

// Strategy is a named step of a chain
type Strategy[T any] struct {
	Name string
	Run  Func[T]
}

// Observer is told about every attempt. err is nil on success.
type Observer func(ctx context.Context, chain, strategy string, err error, elapsed time.Duration)

// Options bounds how long a chain may take
type Options struct {
	// StrategyTimeout limits a single attempt. Zero means no limit.
	StrategyTimeout time.Duration
	// Deadline limits the whole chain. Zero means no limit.
	Deadline time.Duration
	Observer Observer
}

// Runner executes strategies in order until one succeeds
type Runner[T any] struct {
	name       string
	strategies []Strategy[T]
	opts       Options
}

// New creates a Runner
func New[T any](name string, opts Options, strategies ...Strategy[T]) *Runner[T] {
	return &Runner[T]{
		name:       name,
		strategies: strategies,
		opts:       opts,
	}
}

// Name returns the chain name
func (r *Runner[T]) Name() string {
	return r.name
}

// Strategies returns the strategy names in execution order
func (r *Runner[T]) Strategies() []string {
	names := make([]string, 0, len(r.strategies))
	for _, s := range r.strategies {
		names = append(names, s.Name)
	}
	return names
}

// Run tries each strategy in order. It returns the first successful result and
// the name of the strategy that produced it, or ErrExhausted.
func (r *Runner[T]) Run(ctx context.Context, input string) (T, string, error) {
	var zero T

	if r.opts.Deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.opts.Deadline)
		defer cancel()
	}

	for _, s := range r.strategies {
		if err := ctx.Err(); err != nil {
			log.Warn().Err(err).Str("chain", r.name).Str("input", input).Msg("Chain deadline reached")
			break
		}

		start := time.Now()
		result, err := r.attempt(ctx, s, input)
		elapsed := time.Since(start)

		if r.opts.Observer != nil {
			r.opts.Observer(ctx, r.name, s.Name, err, elapsed)
		}

		if err == nil {
			log.Debug().
				Str("chain", r.name).
				Str("strategy", s.Name).
				Dur("elapsed", elapsed).
				Msg("Strategy succeeded")
			return result, s.Name, nil
		}

		log.Warn().
			Err(err).
			Str("chain", r.name).
			Str("strategy", s.Name).
			Str("input", input).
			Dur("elapsed", elapsed).
			Msg("Strategy failed")
	}

	return zero, "", ErrExhausted
}

type outcome[T any] struct {
	value T
	err   error
}

// attempt runs one strategy under its timeout. A strategy that ignores its
// context is abandoned when the timeout fires; its result is discarded.
func (r *Runner[T]) attempt(ctx context.Context, s Strategy[T], input string) (T, error) {
	var zero T

	if r.opts.StrategyTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.opts.StrategyTimeout)
		defer cancel()
	}

	done := make(chan outcome[T], 1)
	go func() {
		defer func() {
			if p := recover(); p != nil {
				done <- outcome[T]{err: fmt.Errorf("strategy %s panicked: %v", s.Name, p)}
			}
		}()
		v, err := s.Run(ctx, input)
		done <- outcome[T]{value: v, err: err}
	}()

	select {
	case o := <-done:
		return o.value, o.err
	case <-ctx.Done():
		return zero, fmt.Errorf("strategy %s: %w", s.Name, ctx.Err())
	}
}
