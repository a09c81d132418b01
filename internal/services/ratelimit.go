package services

import (
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	// RateLimitWindow 滑动窗口长度
	RateLimitWindow = 60 * time.Second
	// RateLimitMaxRequests 窗口内允许的请求数
	RateLimitMaxRequests = 10

	// 历史记录上限，避免 IP 无限增长吃掉内存
	rateLimitMaxIPs = 10000
)

// RateLimitResult 限流检查结果
type RateLimitResult struct {
	Allowed           bool `json:"allowed"`
	RemainingRequests int  `json:"remainingRequests"`
}

// RateLimiter 进程内按 IP 的滑动窗口限流器。
// 单实例 best-effort，多实例部署下不构成全局限制。
type RateLimiter struct {
	history *lru.Cache[string, []time.Time]
	mu      sync.Mutex
	window  time.Duration
	max     int
}

var (
	rateLimiter     *RateLimiter
	rateLimiterOnce sync.Once
)

// GetRateLimiter 获取单例限流器
func GetRateLimiter() *RateLimiter {
	rateLimiterOnce.Do(func() {
		rateLimiter = NewRateLimiter(RateLimitWindow, RateLimitMaxRequests)
	})
	return rateLimiter
}

// NewRateLimiter 创建限流器，IP 历史存在有界 LRU 里
func NewRateLimiter(window time.Duration, max int) *RateLimiter {
	l, _ := lru.New[string, []time.Time](rateLimitMaxIPs)
	return &RateLimiter{
		history: l,
		window:  window,
		max:     max,
	}
}

// Check 检查并记录一次请求。窗口外的时间戳在每次检查时懒剪枝。
func (r *RateLimiter) Check(ip string) RateLimitResult {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	timestamps, _ := r.history.Get(ip)

	recent := timestamps[:0]
	for _, ts := range timestamps {
		if now.Sub(ts) < r.window {
			recent = append(recent, ts)
		}
	}

	if len(recent) >= r.max {
		r.history.Add(ip, recent)
		return RateLimitResult{Allowed: false, RemainingRequests: 0}
	}

	recent = append(recent, now)
	r.history.Add(ip, recent)

	return RateLimitResult{
		Allowed:           true,
		RemainingRequests: r.max - len(recent),
	}
}

// ClientIP 从代理头里解析客户端 IP，取不到返回 "unknown"。
func ClientIP(forwardedFor, realIP string) string {
	if forwardedFor != "" {
		return strings.TrimSpace(strings.Split(forwardedFor, ",")[0])
	}
	if realIP != "" {
		return realIP
	}
	return "unknown"
}
