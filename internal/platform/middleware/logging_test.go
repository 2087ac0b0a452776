package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memberreg/internal/platform/metrics"
	"memberreg/pkg/requestcontext"
)

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	m := metrics.New(prometheus.NewRegistry())

	var seenID string
	r := chi.NewRouter()
	r.Use(chimw.RequestID, RequestID, RequestLogger(logger, m))
	r.Get("/v1/drafts/{id}", func(w http.ResponseWriter, req *http.Request) {
		seenID = requestcontext.RequestID(req.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/drafts/123", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.NotEmpty(t, seenID)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "http request", entry["msg"])
	assert.Equal(t, "/v1/drafts/{id}", entry["route"])
	assert.Equal(t, float64(http.StatusTeapot), entry["status"])
	assert.Equal(t, seenID, entry["request_id"])

	assert.Equal(t, 1, promtestutil.CollectAndCount(m.RequestDuration))
}
