package middleware

import (
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"beatbox-store/internal/handler/httperr"
	"beatbox-store/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var errRateLimited = errors.New("rate limit exceeded")

const visitorTTL = 3 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	cfg      config.RateLimitConfig
	mu       sync.Mutex
	visitors map[string]*visitor
	now      func() time.Time
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		cfg:      cfg,
		visitors: make(map[string]*visitor),
		now:      time.Now,
	}
}

func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !r.cfg.Enabled {
			c.Next()
			return
		}
		if !r.limiter(c.ClientIP()).Allow() {
			slog.Warn("rate limit exceeded", "client_ip", c.ClientIP(), "path", c.Request.URL.Path)
			retryAfter := r.retryAfterSeconds()
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests",
				RateLimitDetail{RetryAfterSeconds: retryAfter})
			return
		}
		c.Next()
	}
}

type RateLimitDetail struct {
	RetryAfterSeconds int `json:"retryAfterSeconds"`
}

// retryAfterSeconds is the time one token takes to refill, rounded up.
func (r *RateLimiter) retryAfterSeconds() int {
	perSecond := r.cfg.RequestsPerSecond
	if perSecond <= 0 || perSecond >= 1 {
		return 1
	}
	return int(math.Ceil(1 / perSecond))
}

func (r *RateLimiter) limiter(id string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for key, v := range r.visitors {
		if now.Sub(v.lastSeen) > visitorTTL {
			delete(r.visitors, key)
		}
	}

	if v, ok := r.visitors[id]; ok {
		v.lastSeen = now
		return v.limiter
	}

	perSecond := r.cfg.RequestsPerSecond
	if perSecond <= 0 {
		perSecond = 1
	}
	burst := r.cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	v := &visitor{limiter: rate.NewLimiter(rate.Limit(perSecond), burst), lastSeen: now}
	r.visitors[id] = v
	return v.limiter
}
