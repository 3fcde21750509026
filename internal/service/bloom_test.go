package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang/mock/gomock"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bigbazar/internal/config"
	"bigbazar/internal/mocks"
)

const testMediaID = "17900000000000001"

// newMiniBloom runs the filter against miniredis, which lacks BF.* and so
// exercises the SET/EXISTS fallback
func newMiniBloom(t *testing.T) (*BloomService, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewBloomService(client, &config.BloomConfig{Capacity: 1000000, ErrorRate: 0.01}), s
}

func TestNewBloomService_ReservesFilter(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockClient := mocks.NewMockRedisClient(ctrl)
	gomock.InOrder(
		mockClient.EXPECT().Exists(gomock.Any(), "reels:bloom").Return(redis.NewIntResult(0, nil)),
		mockClient.EXPECT().Do(gomock.Any(), "BF.RESERVE", "reels:bloom", 0.01, int64(500)).Return(redis.NewCmdResult("OK", nil)),
	)

	svc := NewBloomService(mockClient, &config.BloomConfig{Capacity: 500, ErrorRate: 0.01})
	assert.Equal(t, int64(500), svc.GetCapacity())
}

func TestNewBloomService_KeepsExistingFilter(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockClient := mocks.NewMockRedisClient(ctrl)
	mockClient.EXPECT().Exists(gomock.Any(), "reels:bloom").Return(redis.NewIntResult(1, nil))
	mockClient.EXPECT().Do(gomock.Any(), "BF.RESERVE", gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	NewBloomService(mockClient, &config.BloomConfig{Capacity: 500, ErrorRate: 0.01})
}

func TestBloomService_AddExists(t *testing.T) {
	svc, s := newMiniBloom(t)
	ctx := context.Background()

	recorded := []string{testMediaID, "17900000000000002", "17900000000000003"}
	for _, id := range recorded {
		require.NoError(t, svc.Add(ctx, id))
	}

	tests := []struct {
		mediaID string
		want    bool
	}{
		{testMediaID, true},
		{"17900000000000003", true},
		{"17900000000000004", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("media %q", tt.mediaID), func(t *testing.T) {
			got, err := svc.Exists(ctx, tt.mediaID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Greater(t, s.TTL("reels:bloom:fb:"+testMediaID), 29*24*time.Hour)
}

func TestBloomService_SeenBefore(t *testing.T) {
	svc, s := newMiniBloom(t)
	ctx := context.Background()

	seen, err := svc.SeenBefore(ctx, "17900000000000009")
	require.NoError(t, err)
	assert.False(t, seen, "first notification is new")

	seen, err = svc.SeenBefore(ctx, "17900000000000009")
	require.NoError(t, err)
	assert.True(t, seen, "redelivered notification is a duplicate")

	assert.True(t, s.Exists("reels:bloom:fb:17900000000000009"))
}

func TestBloomService_SeenBefore_WithMock(t *testing.T) {
	ctrl := gomock.NewController(t)

	ctx := context.Background()
	mockClient := mocks.NewMockRedisClient(ctrl)
	mockClient.EXPECT().Exists(gomock.Any(), "reels:bloom").Return(redis.NewIntResult(1, nil))

	svc := NewBloomService(mockClient, &config.BloomConfig{Capacity: 1000, ErrorRate: 0.01})

	t.Run("filter hit", func(t *testing.T) {
		mockClient.EXPECT().Do(gomock.Any(), "BF.EXISTS", "reels:bloom", "42").Return(redis.NewCmdResult(int64(1), nil))
		mockClient.EXPECT().Do(gomock.Any(), "BF.ADD", gomock.Any(), gomock.Any()).Times(0)

		seen, err := svc.SeenBefore(ctx, "42")
		require.NoError(t, err)
		assert.True(t, seen)
	})

	t.Run("filter miss records the id", func(t *testing.T) {
		mockClient.EXPECT().Do(gomock.Any(), "BF.EXISTS", "reels:bloom", "43").Return(redis.NewCmdResult(int64(0), nil))
		mockClient.EXPECT().Do(gomock.Any(), "BF.ADD", "reels:bloom", "43").Return(redis.NewCmdResult(int64(1), nil))

		seen, err := svc.SeenBefore(ctx, "43")
		require.NoError(t, err)
		assert.False(t, seen)
	})
}

func TestBloomService_IsAvailable(t *testing.T) {
	svc, _ := newMiniBloom(t)
	assert.False(t, svc.IsAvailable(context.Background()), "miniredis has no RedisBloom module")
}

func TestBloomService_Reset(t *testing.T) {
	svc, s := newMiniBloom(t)
	ctx := context.Background()

	require.NoError(t, s.Set("reels:bloom", "filter"))
	require.NoError(t, svc.Add(ctx, testMediaID))

	require.NoError(t, svc.Reset(ctx))

	assert.False(t, s.Exists("reels:bloom"))
	assert.True(t, s.Exists("reels:bloom:fb:"+testMediaID), "fallback markers expire on their own")
}

func TestBloomService_ConcurrentSeenBefore(t *testing.T) {
	svc, _ := newMiniBloom(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.SeenBefore(ctx, fmt.Sprintf("179000000000000%02d", i))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 10; i++ {
		exists, err := svc.Exists(ctx, fmt.Sprintf("179000000000000%02d", i))
		require.NoError(t, err)
		assert.True(t, exists)
	}
}

func TestBloomService_fallbackKey(t *testing.T) {
	svc, _ := newMiniBloom(t)

	assert.Equal(t, "reels:bloom:fb:"+testMediaID, svc.fallbackKey(testMediaID))
	assert.Equal(t, "reels:bloom:fb:1234", svc.fallbackKey("1234"))
}

func TestBloomService_CancelledContext(t *testing.T) {
	svc, _ := newMiniBloom(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, svc.Add(ctx, testMediaID))

	_, err := svc.Exists(ctx, testMediaID)
	assert.Error(t, err)

	_, err = svc.SeenBefore(ctx, testMediaID)
	assert.Error(t, err)
}
