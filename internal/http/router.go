// Package httpapi assembles the public HTTP surface: platform middleware,
// health and metrics endpoints, and the versioned draft API.
package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"memberreg/internal/household/handler"
	"memberreg/internal/platform/metrics"
	"memberreg/internal/platform/middleware"
	"memberreg/pkg/domain"
	"memberreg/pkg/platform/httputil"
	"memberreg/pkg/platform/middleware/metadata"
	"memberreg/pkg/platform/middleware/requesttime"
	"memberreg/pkg/platform/middleware/version"
)

// Deps are the collaborators the router mounts.
type Deps struct {
	Drafts         *handler.Handler
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer
	RequestTimeout time.Duration
}

// NewRouter wires all public endpoints.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(metadata.ClientMetadata)
	r.Use(requesttime.Middleware)
	r.Use(middleware.RequestLogger(d.Logger, d.Metrics))
	r.Use(chimw.Recoverer)
	if d.RequestTimeout > 0 {
		r.Use(chimw.Timeout(d.RequestTimeout))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if d.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}

	v := domain.DefaultVersion()
	r.Route(v.Prefix(), func(api chi.Router) {
		api.Use(version.ExtractVersion(v))
		d.Drafts.Register(api)
	})
	return r
}
