package ratelimit

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"memberreg/pkg/requestcontext"
)

type WindowSuite struct {
	suite.Suite
	clock time.Time
	w     *SlidingWindow
}

func TestWindowSuite(t *testing.T) {
	suite.Run(t, new(WindowSuite))
}

func (s *WindowSuite) SetupTest() {
	s.clock = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	s.w = NewSlidingWindow(2, time.Minute)
	s.w.now = func() time.Time { return s.clock }
}

func (s *WindowSuite) TestAllow() {
	s.Run("limit applies per key", func() {
		s.True(s.w.Allow("a").Allowed)
		second := s.w.Allow("a")
		s.True(second.Allowed)
		s.Equal(0, second.Remaining)

		denied := s.w.Allow("a")
		s.False(denied.Allowed)
		s.Equal(time.Minute, denied.RetryAfter)

		s.True(s.w.Allow("b").Allowed)
	})

	s.Run("events expire after the window", func() {
		s.clock = s.clock.Add(time.Minute + time.Second)
		s.True(s.w.Allow("a").Allowed)
	})
}

func (s *WindowSuite) TestSweep() {
	s.w.Allow("a")
	s.w.Allow("b")
	s.clock = s.clock.Add(2 * time.Minute)
	s.w.Sweep()
	s.Equal(0, s.w.keys())
}

func (s *WindowSuite) TestMiddleware() {
	mw := New(s.w, slog.New(slog.NewTextHandler(io.Discard, nil)))
	h := mw.PerClientIP(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	call := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/drafts", nil)
		req = req.WithContext(requestcontext.WithClientMetadata(req.Context(), ip, "test"))
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr
	}

	s.Equal(http.StatusCreated, call("10.0.0.1").Code)
	s.Equal(http.StatusCreated, call("10.0.0.1").Code)
	rr := call("10.0.0.1")
	s.Equal(http.StatusTooManyRequests, rr.Code)
	s.Equal("60", rr.Header().Get("Retry-After"))
	s.Contains(rr.Body.String(), "rate_limited")
	s.Equal(http.StatusCreated, call("10.0.0.2").Code)
}

func TestNilMiddlewarePassesThrough(t *testing.T) {
	var m *Middleware
	called := false
	h := m.PerClientIP(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))
	if !called {
		t.Fatal("expected request to pass through")
	}
}
