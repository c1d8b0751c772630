package middleware

import (
	"net"
	"net/http"
	"time"

	"exercise_tracker/internal/common"

	"github.com/redis/go-redis/v9"
)

// RateLimit caps requests per client IP over a fixed window, counted in
// Redis with INCR + EXPIRE. A nil client or non-positive limit disables the
// middleware entirely.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if rdb == nil || limit <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}
			key := "ratelimit:" + host

			count, err := rdb.Incr(r.Context(), key).Result()
			if err != nil {
				// Fail open when Redis is unreachable.
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				rdb.Expire(r.Context(), key, window)
			}
			if count > int64(limit) {
				common.RespondWithError(w, http.StatusTooManyRequests, "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
