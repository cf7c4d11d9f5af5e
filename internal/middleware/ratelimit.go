package middleware

import (
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MathLeoYa/inmobiliaria/internal/utils"
)

// RateLimit is a fixed-window limiter keyed on client IP + path, backed by
// redis INCR/EXPIRE. A nil client disables limiting (dev setups without
// redis); a limiter outage fails open with a warning so the auth endpoints
// stay reachable.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if rdb == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := "ratelimit:" + clientIP(r) + ":" + r.URL.Path

			count, err := rdb.Incr(r.Context(), key).Result()
			if err != nil {
				utils.Logger.WithError(err).Warn("Rate limiter unavailable; allowing request")
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				rdb.Expire(r.Context(), key, window)
			}
			if count > int64(limit) {
				utils.RespondErrorWithCode(
					w, http.StatusTooManyRequests, utils.ErrCodeRateLimitExceeded,
					"Too many requests from this address. Try again later.", nil,
				)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
