package submitter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"memberreg/internal/household/payload"
	"memberreg/internal/platform/metrics"
	dErrors "memberreg/pkg/domain-errors"
)

const apiPath = "/api/PersonalDetails"

type ClientSuite struct {
	suite.Suite
	metrics *metrics.Metrics
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}

func (s *ClientSuite) SetupTest() {
	s.metrics = metrics.New(prometheus.NewRegistry())
}

func (s *ClientSuite) server(status int, body string, calls *int32) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			atomic.AddInt32(calls, 1)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	s.T().Cleanup(srv.Close)
	return srv
}

func (s *ClientSuite) client(baseURL string) *Client {
	return New(baseURL, apiPath, 2*time.Second, WithMetrics(s.metrics))
}

func samplePayload() payload.WirePayload {
	return payload.WirePayload{
		FullName:      "Mohamed Ismail",
		PhoneNumber:   "9876543210",
		Address:       "12 Mosque Street",
		NumberOfWives: 1,
		SpouseDetails: []payload.SpouseEntry{{Name: "Amina", MaritalStatus: 1}},
		ChildDetails:  []payload.ChildEntry{},
	}
}

func (s *ClientSuite) requireSubmitError(err error) *Error {
	s.Require().Error(err)
	var se *Error
	s.Require().ErrorAs(err, &se)
	return se
}

func (s *ClientSuite) TestSuccess() {
	s.Run("posts JSON once and returns the parsed body", func() {
		var calls int32
		var got map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			s.Equal(http.MethodPost, r.Method)
			s.Equal(apiPath, r.URL.Path)
			s.Contains(r.Header.Get("Content-Type"), "application/json")
			s.Equal("application/json", r.Header.Get("Accept"))
			s.NoError(json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"id": 42}`)
		}))
		defer srv.Close()

		res, err := s.client(srv.URL).Submit(context.Background(), samplePayload())
		s.Require().NoError(err)
		s.Equal(http.StatusCreated, res.StatusCode)
		s.JSONEq(`{"id": 42}`, string(res.Body))
		s.Equal(int32(1), atomic.LoadInt32(&calls))
		s.Equal("Mohamed Ismail", got["fullName"])
		s.Equal(float64(1), got["numberOfWives"])
		s.Len(got["wifeDetails"], 1)
		s.Equal(1.0, promtestutil.ToFloat64(s.metrics.Submissions.WithLabelValues("success")))
	})

	s.Run("empty success body is accepted", func() {
		srv := s.server(http.StatusOK, "", nil)
		res, err := s.client(srv.URL).Submit(context.Background(), samplePayload())
		s.Require().NoError(err)
		s.Equal(http.StatusOK, res.StatusCode)
		s.Empty(res.Body)
	})

	s.Run("non-JSON success body is a bad response", func() {
		srv := s.server(http.StatusOK, "<html>ok</html>", nil)
		_, err := s.client(srv.URL).Submit(context.Background(), samplePayload())
		se := s.requireSubmitError(err)
		s.Equal(CategoryBadResponse, se.Category)
	})
}

func (s *ClientSuite) TestRejected() {
	s.Run("surfaces the first field message verbatim", func() {
		var calls int32
		srv := s.server(http.StatusBadRequest, `{"errors":{"phoneNumber":["Invalid"]}}`, &calls)
		_, err := s.client(srv.URL).Submit(context.Background(), samplePayload())
		se := s.requireSubmitError(err)
		s.Equal(CategoryRejected, se.Category)
		s.Equal("Invalid", se.Message)
		s.Equal("phoneNumber", se.Field)
		s.Equal(http.StatusBadRequest, se.StatusCode)
		s.Equal(int32(1), atomic.LoadInt32(&calls), "no retries")
		s.True(dErrors.HasCode(dErrors.New(se.DomainCode(), se.Message), dErrors.CodeUpstream))
	})

	s.Run("field order follows the document", func() {
		srv := s.server(http.StatusBadRequest,
			`{"errors":{"Zeta":["zeta first"],"Alpha":["alpha second"]}}`, nil)
		_, err := s.client(srv.URL).Submit(context.Background(), samplePayload())
		se := s.requireSubmitError(err)
		s.Equal("zeta first", se.Message)
		s.Equal("Zeta", se.Field)
	})

	s.Run("fields without messages are skipped", func() {
		srv := s.server(http.StatusUnprocessableEntity,
			`{"title":"One or more validation errors occurred.","errors":{"address":[],"fullName":["Required"]}}`, nil)
		_, err := s.client(srv.URL).Submit(context.Background(), samplePayload())
		se := s.requireSubmitError(err)
		s.Equal("Required", se.Message)
		s.Equal("fullName", se.Field)
	})
}

func (s *ClientSuite) TestServerError() {
	s.Run("empty 500 surfaces the status code", func() {
		srv := s.server(http.StatusInternalServerError, "", nil)
		_, err := s.client(srv.URL).Submit(context.Background(), samplePayload())
		se := s.requireSubmitError(err)
		s.Equal(CategoryServerError, se.Category)
		s.Equal(http.StatusInternalServerError, se.StatusCode)
		s.Equal("500", se.Message)
		s.Equal(1.0, promtestutil.ToFloat64(s.metrics.Submissions.WithLabelValues("server_error")))
	})

	s.Run("unstructured error body surfaces the status code", func() {
		srv := s.server(http.StatusBadGateway, `{"message":"upstream down"}`, nil)
		_, err := s.client(srv.URL).Submit(context.Background(), samplePayload())
		se := s.requireSubmitError(err)
		s.Equal(CategoryServerError, se.Category)
		s.Equal("502", se.Message)
	})
}

func (s *ClientSuite) TestTransport() {
	s.Run("unreachable server surfaces the transport error text", func() {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		_, err := s.client(url).Submit(context.Background(), samplePayload())
		se := s.requireSubmitError(err)
		s.Equal(CategoryTransport, se.Category)
		s.Require().Error(se.Underlying)
		s.Equal(se.Underlying.Error(), se.Message)
		s.Equal(0, se.StatusCode)
		s.Equal(dErrors.CodeUpstream, se.DomainCode())
	})

	s.Run("deadline is reported as a timeout", func() {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer srv.Close()
		defer close(release)

		c := New(srv.URL, apiPath, 50*time.Millisecond)
		_, err := c.Submit(context.Background(), samplePayload())
		se := s.requireSubmitError(err)
		s.Equal(CategoryTimeout, se.Category)
		s.Equal(dErrors.CodeTimeout, se.DomainCode())
	})
}

func TestFirstFieldError(t *testing.T) {
	suite.Run(t, new(responseSuite))
}

type responseSuite struct {
	suite.Suite
}

func (s *responseSuite) TestBodies() {
	cases := []struct {
		name  string
		body  string
		field string
		msg   string
		ok    bool
	}{
		{"empty", "", "", "", false},
		{"not json", "oops", "", "", false},
		{"no errors key", `{"title":"bad"}`, "", "", false},
		{"errors not an object", `{"errors":["x"]}`, "", "", false},
		{"first message of first field", `{"errors":{"email":["Bad email","Too long"]}}`, "email", "Bad email", true},
		{"string value", `{"errors":{"email":"Bad email"}}`, "email", "Bad email", true},
		{"null list skipped", `{"errors":{"a":null,"b":["B"]}}`, "b", "B", true},
		{"empty message skipped", `{"errors":{"a":[""],"b":["B"]}}`, "b", "B", true},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			field, msg, ok := firstFieldError([]byte(tc.body))
			s.Equal(tc.ok, ok)
			s.Equal(tc.field, field)
			s.Equal(tc.msg, msg)
		})
	}
}
