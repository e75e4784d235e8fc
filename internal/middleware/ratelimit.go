package middleware

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"golang.org/x/time/rate"
)

// NewRateLimiter returns a middleware that admits at most rps requests per
// second across the whole server, with bursts of up to burst requests.
// Rejected requests get 429 and a {"detail": ...} body.
//
// A non-positive rps disables limiting.
func NewRateLimiter(rps float64, burst int, log *slog.Logger) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				log.WarnContext(r.Context(), "rate limit exceeded",
					"path", r.URL.Path,
					"remote_addr", r.RemoteAddr,
				)
				render.Status(r, http.StatusTooManyRequests)
				render.JSON(w, r, map[string]string{"detail": "Rate limit exceeded, please retry later."})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
