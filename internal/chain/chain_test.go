package chain

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counting(calls *int, value string, err error) Func[string] {
	return func(ctx context.Context, input string) (string, error) {
		*calls++
		return value, err
	}
}

func TestRunner_FirstSuccessWins(t *testing.T) {
	var first, second, third int

	r := New("test", Options{},
		Strategy[string]{Name: "first", Run: counting(&first, "", errors.New("down"))},
		Strategy[string]{Name: "second", Run: counting(&second, "ok", nil)},
		Strategy[string]{Name: "third", Run: counting(&third, "never", nil)},
	)

	result, name, err := r.Run(context.Background(), "input")

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, "second", name)
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
	assert.Equal(t, 0, third)
}

func TestRunner_ShortCircuitOnFirst(t *testing.T) {
	var first, second int

	r := New("test", Options{},
		Strategy[string]{Name: "first", Run: counting(&first, "ok", nil)},
		Strategy[string]{Name: "second", Run: counting(&second, "ok", nil)},
	)

	_, name, err := r.Run(context.Background(), "input")

	require.NoError(t, err)
	assert.Equal(t, "first", name)
	assert.Equal(t, 0, second)
}

func TestRunner_Exhausted(t *testing.T) {
	var first, second int

	r := New("test", Options{},
		Strategy[string]{Name: "first", Run: counting(&first, "", ErrNoData)},
		Strategy[string]{Name: "second", Run: counting(&second, "", errors.New("bad json"))},
	)

	result, name, err := r.Run(context.Background(), "input")

	assert.ErrorIs(t, err, ErrExhausted)
	assert.Empty(t, result)
	assert.Empty(t, name)
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}

func TestRunner_EmptyChain(t *testing.T) {
	r := New[string]("empty", Options{})

	_, _, err := r.Run(context.Background(), "input")
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestRunner_PanicIsFailure(t *testing.T) {
	var second int

	r := New("test", Options{},
		Strategy[string]{Name: "panics", Run: func(ctx context.Context, input string) (string, error) {
			panic("boom")
		}},
		Strategy[string]{Name: "second", Run: counting(&second, "ok", nil)},
	)

	result, name, err := r.Run(context.Background(), "input")

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, "second", name)
}

func TestRunner_StrategyTimeout(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	r := New("test", Options{StrategyTimeout: 20 * time.Millisecond},
		Strategy[string]{Name: "hangs", Run: func(ctx context.Context, input string) (string, error) {
			<-release
			return "late", nil
		}},
		Strategy[string]{Name: "fallback", Run: func(ctx context.Context, input string) (string, error) {
			return "ok", nil
		}},
	)

	start := time.Now()
	result, name, err := r.Run(context.Background(), "input")

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, "fallback", name)
	assert.Less(t, time.Since(start), time.Second)
}

func TestRunner_Deadline(t *testing.T) {
	var second int

	r := New("test", Options{Deadline: 20 * time.Millisecond},
		Strategy[string]{Name: "slow", Run: func(ctx context.Context, input string) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		}},
		Strategy[string]{Name: "second", Run: counting(&second, "ok", nil)},
	)

	_, _, err := r.Run(context.Background(), "input")

	assert.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, 0, second)
}

func TestRunner_CancelledContext(t *testing.T) {
	var first int

	r := New("test", Options{},
		Strategy[string]{Name: "first", Run: counting(&first, "ok", nil)},
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := r.Run(ctx, "input")

	assert.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, 0, first)
}

func TestRunner_Observer(t *testing.T) {
	type attempt struct {
		chain    string
		strategy string
		failed   bool
	}

	var mu sync.Mutex
	var attempts []attempt

	observer := func(ctx context.Context, chain, strategy string, err error, elapsed time.Duration) {
		mu.Lock()
		defer mu.Unlock()
		attempts = append(attempts, attempt{chain: chain, strategy: strategy, failed: err != nil})
	}

	r := New("metadata", Options{Observer: observer},
		Strategy[string]{Name: "a", Run: func(ctx context.Context, input string) (string, error) {
			return "", ErrNoData
		}},
		Strategy[string]{Name: "b", Run: func(ctx context.Context, input string) (string, error) {
			return "ok", nil
		}},
	)

	_, _, err := r.Run(context.Background(), "input")
	require.NoError(t, err)

	assert.Equal(t, []attempt{
		{chain: "metadata", strategy: "a", failed: true},
		{chain: "metadata", strategy: "b", failed: false},
	}, attempts)
}

func TestRunner_Strategies(t *testing.T) {
	noop := func(ctx context.Context, input string) (int, error) { return 0, nil }

	r := New("ids", Options{},
		Strategy[int]{Name: "x", Run: noop},
		Strategy[int]{Name: "y", Run: noop},
	)

	assert.Equal(t, "ids", r.Name())
	assert.Equal(t, []string{"x", "y"}, r.Strategies())
}

func TestRunner_InputIsPassedThrough(t *testing.T) {
	var seen string

	r := New("test", Options{},
		Strategy[string]{Name: "echo", Run: func(ctx context.Context, input string) (string, error) {
			seen = input
			return input, nil
		}},
	)

	result, _, err := r.Run(context.Background(), "https://vt.tiktok.com/ZS/")
	require.NoError(t, err)
	assert.Equal(t, "https://vt.tiktok.com/ZS/", seen)
	assert.Equal(t, seen, result)
}
