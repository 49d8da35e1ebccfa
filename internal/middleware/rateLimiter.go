package middleware

import (
	"context"
	"sync"

	"github.com/nyayai/LegalAPI/internal/config"
	"github.com/nyayai/LegalAPI/internal/data/redisStore"
	"github.com/nyayai/LegalAPI/pkg/logger_i"
	"golang.org/x/time/rate"
)

var (
	limiterInstance = NewIPRateLimiter(rate.Limit(config.RATE_LIMIT_PER_SECOND), config.BURST_RATE_LIMIT_PER_SECOND)
	limiterStore    *redisStore.Store
	logRL           = logger_i.NewLogger("rateLimiter")
)

// InitRateLimiter attaches the shared redis store. A nil store keeps the
// in-memory per-IP limiter, which is fine for a single instance.
func InitRateLimiter(store *redisStore.Store) {
	limiterStore = store
}

// Allow counts this request against the caller's IP. The redis window is the
// source of truth when redis is up so multiple instances share one budget.
func Allow(ctx context.Context, ip string) bool {
	if limiterStore != nil {
		count, err := limiterStore.IncrWindow(ctx, config.RateLimitRedisKeyPrefix+ip, config.RateLimitWindow)
		if err == nil {
			return count <= config.RateLimitRequestsWindow
		}
		logRL.Warn("Redis limiter unavailable, falling back to in-memory", "error", err)
	}
	return limiterInstance.GetLimiter(ip).Allow()
}

type IPRateLimiter struct {
	ips       map[string]*rate.Limiter
	mu        sync.RWMutex
	rateLimit rate.Limit
	burstRate int
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{ips: make(map[string]*rate.Limiter), rateLimit: r, burstRate: b}
}

func (i *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()
	limiter, exists := i.ips[ip]
	if !exists {
		limiter = rate.NewLimiter(i.rateLimit, i.burstRate)
		i.ips[ip] = limiter
	}
	return limiter
}
