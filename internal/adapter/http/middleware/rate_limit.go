package middleware

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"sync"

	"solar_quotes/pkg"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	defaultRateLimitRPS   = 10.0
	defaultRateLimitBurst = 20
)

var errRateLimited = pkg.NewDomainErrorSimple("RATE_LIMITED", "Too many requests", http.StatusTooManyRequests)

// IPRateLimiter keeps one token bucket per client IP.
type IPRateLimiter struct {
	limiters sync.Map
	rate     rate.Limit
	burst    int
}

func NewIPRateLimiter(r rate.Limit, burst int) *IPRateLimiter {
	return &IPRateLimiter{rate: r, burst: burst}
}

// NewIPRateLimiterFromEnv reads RATE_LIMIT_RPS and RATE_LIMIT_BURST.
// RATE_LIMIT_RPS=0 disables limiting.
func NewIPRateLimiterFromEnv() *IPRateLimiter {
	rps := defaultRateLimitRPS
	if v, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64); err == nil && v >= 0 {
		rps = v
	}
	burst := defaultRateLimitBurst
	if v, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST")); err == nil && v > 0 {
		burst = v
	}
	if rps == 0 {
		return NewIPRateLimiter(rate.Inf, burst)
	}
	return NewIPRateLimiter(rate.Limit(rps), burst)
}

func (l *IPRateLimiter) limiter(ip string) *rate.Limiter {
	if v, ok := l.limiters.Load(ip); ok {
		return v.(*rate.Limiter)
	}
	v, _ := l.limiters.LoadOrStore(ip, rate.NewLimiter(l.rate, l.burst))
	return v.(*rate.Limiter)
}

func (l *IPRateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !l.limiter(ip).Allow() {
			log.Printf("[http][ratelimit] rejected ip=%s path=%s", ip, c.Request.URL.Path)
			c.AbortWithStatusJSON(errRateLimited.HTTPStatus, errRateLimited.ToHTTPError())
			return
		}
		c.Next()
	}
}
