package google

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRateLimiter(t *testing.T) {
	t.Run("known services", func(t *testing.T) {
		assert.NotNil(t, NewRateLimiter(ServiceDrive))
		assert.NotNil(t, NewRateLimiter(ServiceSheets))
	})

	t.Run("unknown service uses fallback", func(t *testing.T) {
		limiter := NewRateLimiter(ServiceType("unknown"))
		require.NotNil(t, limiter)
		assert.True(t, limiter.Allow())
	})
}

func TestRateLimiter_Allow(t *testing.T) {
	limiter := NewRateLimiterWithConfig(RateLimitConfig{
		RequestsPerSecond: 1.0,
		BurstSize:         2,
	})

	assert.True(t, limiter.Allow())
	assert.True(t, limiter.Allow())
	// Burst exhausted.
	assert.False(t, limiter.Allow())
}

func TestRateLimiter_Wait(t *testing.T) {
	t.Run("within burst returns immediately", func(t *testing.T) {
		limiter := NewRateLimiter(ServiceDrive)

		start := time.Now()
		err := limiter.Wait(context.Background())
		require.NoError(t, err)
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("cancelled context", func(t *testing.T) {
		limiter := NewRateLimiterWithConfig(RateLimitConfig{
			RequestsPerSecond: 0.001,
			BurstSize:         1,
		})
		require.NoError(t, limiter.Wait(context.Background())) // drain the burst

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.Error(t, limiter.Wait(ctx))
	})
}
