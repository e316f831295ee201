package middleware

import (
	"net/http"

	"github.com/go-chi/httprate"

	"github.com/wigac/wigac-backend/internal/config"
)

// RateLimit limits requests per client IP to cfg.AuthRequests per
// cfg.AuthWindow. Rejected requests get a JSON 429.
func RateLimit(cfg config.RateLimitConfig, onLimit func(r *http.Request)) Middleware {
	return httprate.Limit(
		cfg.AuthRequests,
		cfg.AuthWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			if onLimit != nil {
				onLimit(r)
			}
			writeError(w, http.StatusTooManyRequests, "too many requests, try again later")
		}),
	)
}
