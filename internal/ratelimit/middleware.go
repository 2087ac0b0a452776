package ratelimit

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"

	dErrors "memberreg/pkg/domain-errors"
	"memberreg/pkg/platform/httputil"
	"memberreg/pkg/requestcontext"
)

type Middleware struct {
	window *SlidingWindow
	logger *slog.Logger
}

func New(window *SlidingWindow, logger *slog.Logger) *Middleware {
	return &Middleware{window: window, logger: logger}
}

// PerClientIP rejects requests beyond the window's limit for the caller's IP
// with 429. A nil Middleware lets everything through.
func (m *Middleware) PerClientIP(next http.Handler) http.Handler {
	if m == nil || m.window == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		ip := requestcontext.ClientIP(ctx)
		result := m.window.Allow(ip)

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			retry := int(math.Ceil(result.RetryAfter.Seconds()))
			w.Header().Set("Retry-After", strconv.Itoa(retry))
			if m.logger != nil {
				m.logger.WarnContext(ctx, "draft creation rate limited",
					"request_id", requestcontext.RequestID(ctx),
					"client_ip", ip,
					"retry_after_s", retry,
				)
			}
			httputil.WriteError(w, dErrors.New(dErrors.CodeRateLimited, "too many drafts created from this address, try again later"))
			return
		}
		next.ServeHTTP(w, r)
	})
}
