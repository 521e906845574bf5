package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/avelinom/vidgate/internal/api/response"
	"github.com/avelinom/vidgate/internal/repository/redis"
)

// RateLimitMiddleware throttles the credential endpoints per client IP.
type RateLimitMiddleware struct {
	limiter *redis.RateLimiter
}

// NewRateLimitMiddleware creates a new rate limit middleware
func NewRateLimitMiddleware(limiter *redis.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter}
}

// clientKey reduces a remote address to its host so every connection
// from the same client shares one window. RealIP middleware may have
// already replaced the address with a bare IP.
func clientKey(remoteAddr string) string {
	if host, _, err := net.SplitHostPort(remoteAddr); err == nil {
		return host
	}
	return remoteAddr
}

// Limit applies the fixed-window limit keyed by client IP. The limiter
// fails open: a Redis outage must not lock users out.
func (m *RateLimitMiddleware) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, remaining, resetTime, err := m.limiter.Allow(r.Context(), clientKey(r.RemoteAddr))
		if err != nil {
			log.Warn().Err(err).Msg("rate limiter unavailable")
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		w.Header().Set("X-RateLimit-Reset", resetTime.Format(time.RFC3339))

		if !allowed {
			response.TooManyRequests(w, "Too many requests")
			return
		}

		next.ServeHTTP(w, r)
	})
}
