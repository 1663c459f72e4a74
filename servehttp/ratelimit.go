package servehttp

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"turnaround/bizerror"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiterFromEnv builds the limiter of the compute endpoints from
// TAT_RATE_LIMIT (requests per second) and TAT_RATE_BURST. An unset or zero
// limit disables limiting.
func RateLimiterFromEnv() (*rate.Limiter, error) {
	limit := rate.Inf
	if v := strings.TrimSpace(os.Getenv("TAT_RATE_LIMIT")); v != "" {
		perSecond, err := strconv.ParseFloat(v, 64)
		if err != nil || perSecond < 0 {
			return nil, fmt.Errorf("invalid TAT_RATE_LIMIT %q", v)
		}
		if perSecond > 0 {
			limit = rate.Limit(perSecond)
		}
	}

	burst := 1
	if v := strings.TrimSpace(os.Getenv("TAT_RATE_BURST")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid TAT_RATE_BURST %q", v)
		}
		burst = n
	}
	return rate.NewLimiter(limit, burst), nil
}

// RateLimiting rejects requests the limiter has no token for.
func RateLimiting(limiter *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow() {
			panic(bizerror.ErrTooManyRequests)
		}
		c.Next()
	}
}
