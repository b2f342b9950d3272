package ratelimit

import (
	"net/http"
	"time"

	"bloglist/internal/http/handlers/middlewares/realip"
	"bloglist/internal/http/httputils"

	"github.com/go-chi/httprate"
)

// MiddlewareLimit пропускает не больше limit запросов с одного IP за window,
// сверх лимита отвечает 429 с Retry-After. limit <= 0 отключает ограничение.
// Ключ берётся из RemoteAddr, поэтому заголовки прокси учитываются только
// если перед лимитером стоит realip.MiddlewareRealIP с доверенными сетями.
func MiddlewareLimit(limit int, window time.Duration) func(http.Handler) http.Handler {
	if limit <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return httprate.Limit(limit, window,
		httprate.WithKeyFuncs(KeyByPeer),
		httprate.WithResponseHeaders(httprate.ResponseHeaders{
			Limit:      "X-RateLimit-Limit",
			Remaining:  "X-RateLimit-Remaining",
			Reset:      "X-RateLimit-Reset",
			RetryAfter: httputils.HeaderRetryAfter,
		}),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			httputils.WriteJSONError(w, http.StatusTooManyRequests, "too many requests")
		}),
	)
}

// KeyByPeer is the connection address without the port.
func KeyByPeer(r *http.Request) (string, error) {
	if addr, ok := realip.PeerAddr(r.RemoteAddr); ok {
		return addr.String(), nil
	}
	return r.RemoteAddr, nil
}
