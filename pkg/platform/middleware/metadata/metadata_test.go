package metadata

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"memberreg/pkg/requestcontext"
)

func TestClientIPFromRequest(t *testing.T) {
	t.Run("first forwarded address wins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		assert.Equal(t, "203.0.113.7", ClientIPFromRequest(req))
	})

	t.Run("real ip header used without forwarded for", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Real-IP", " 198.51.100.2 ")
		assert.Equal(t, "198.51.100.2", ClientIPFromRequest(req))
	})

	t.Run("remote addr port is stripped", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.0.2.1:54321"
		assert.Equal(t, "192.0.2.1", ClientIPFromRequest(req))
	})
}

func TestClientMetadataMiddleware(t *testing.T) {
	var gotIP, gotUA string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotIP = requestcontext.ClientIP(r.Context())
		gotUA = requestcontext.UserAgent(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.9:1234"
	req.Header.Set("User-Agent", "test-agent/1.0")
	ClientMetadata(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "192.0.2.9", gotIP)
	assert.Equal(t, "test-agent/1.0", gotUA)
}

func TestDeviceName(t *testing.T) {
	t.Run("empty user agent returns unknown device", func(t *testing.T) {
		assert.Equal(t, "Unknown Device", DeviceName(""))
	})

	t.Run("chrome on android is labelled mobile", func(t *testing.T) {
		ua := "Mozilla/5.0 (Linux; Android 13; Pixel 7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36"
		name := DeviceName(ua)
		assert.Contains(t, name, "Chrome")
		assert.Contains(t, name, " on ")
		assert.Contains(t, name, "(mobile)")
	})

	t.Run("firefox on linux includes browser", func(t *testing.T) {
		ua := "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0"
		name := DeviceName(ua)
		assert.Contains(t, name, "Firefox")
		assert.NotContains(t, name, "(mobile)")
	})
}
