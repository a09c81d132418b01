package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllowsUpToMax(t *testing.T) {
	limiter := NewRateLimiter(time.Minute, 10)

	for i := 0; i < 10; i++ {
		result := limiter.Check("1.2.3.4")
		assert.True(t, result.Allowed, "request %d should be allowed", i+1)
		assert.Equal(t, 10-(i+1), result.RemainingRequests)
	}

	result := limiter.Check("1.2.3.4")
	assert.False(t, result.Allowed)
	assert.Equal(t, 0, result.RemainingRequests)
}

func TestRateLimiterPerIP(t *testing.T) {
	limiter := NewRateLimiter(time.Minute, 2)

	limiter.Check("1.1.1.1")
	limiter.Check("1.1.1.1")
	assert.False(t, limiter.Check("1.1.1.1").Allowed)

	// 別の IP は影響を受けない
	assert.True(t, limiter.Check("2.2.2.2").Allowed)
}

func TestRateLimiterWindowExpiry(t *testing.T) {
	limiter := NewRateLimiter(50*time.Millisecond, 2)

	limiter.Check("1.1.1.1")
	limiter.Check("1.1.1.1")
	assert.False(t, limiter.Check("1.1.1.1").Allowed)

	time.Sleep(60 * time.Millisecond)
	assert.True(t, limiter.Check("1.1.1.1").Allowed)
}

func TestRateLimiterBoundedIPs(t *testing.T) {
	limiter := NewRateLimiter(time.Minute, 10)

	// LRU 上限を超えても落ちない
	for i := 0; i < rateLimitMaxIPs+100; i++ {
		limiter.Check(fmt.Sprintf("10.0.%d.%d", i/256, i%256))
	}
	assert.True(t, limiter.Check("9.9.9.9").Allowed)
}

func TestClientIP(t *testing.T) {
	assert.Equal(t, "1.2.3.4", ClientIP("1.2.3.4, 5.6.7.8", ""))
	assert.Equal(t, "1.2.3.4", ClientIP("1.2.3.4", "5.6.7.8"))
	assert.Equal(t, "5.6.7.8", ClientIP("", "5.6.7.8"))
	assert.Equal(t, "unknown", ClientIP("", ""))
}
