// Package submitter sends a wire payload to the remote registration API.
package submitter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"memberreg/internal/household/payload"
	"memberreg/internal/platform/metrics"
	"memberreg/pkg/requestcontext"
)

const tracerName = "memberreg/internal/household/submitter"

// Result is a successful submission.
type Result struct {
	StatusCode int             `json:"statusCode"`
	Body       json.RawMessage `json:"body,omitempty"`
}

// Client posts payloads to a single fixed endpoint. Each Submit call issues
// exactly one request; there are no retries.
type Client struct {
	http    *resty.Client
	path    string
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

type Option func(*Client)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(c *Client) {
		c.tracer = t
	}
}

// New builds a client for baseURL+path with the given per-request timeout.
func New(baseURL, path string, timeout time.Duration, opts ...Option) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	c := &Client{
		http:   httpClient,
		path:   path,
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit posts p once and classifies the outcome. On failure the returned
// error is an *Error.
func (c *Client) Submit(ctx context.Context, p payload.WirePayload) (*Result, error) {
	ctx, span := c.tracer.Start(ctx, "registration.submit",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.route", c.path),
			attribute.Int("registration.wives", p.NumberOfWives),
			attribute.Int("registration.children", p.NumberOfChildren),
		))
	defer span.End()

	start := time.Now()
	res, err := c.post(ctx, p)
	c.record(ctx, span, res, err, time.Since(start))
	return res, err
}

func (c *Client) post(ctx context.Context, p payload.WirePayload) (*Result, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(p).
		Post(c.path)
	if err != nil {
		category := CategoryTransport
		if isTimeout(err) {
			category = CategoryTimeout
		}
		return nil, newError(category, 0, err.Error(), err)
	}

	body := bytes.TrimSpace(resp.Body())
	if !resp.IsSuccess() {
		if field, msg, ok := firstFieldError(body); ok {
			e := newError(CategoryRejected, resp.StatusCode(), msg, nil)
			e.Field = field
			return nil, e
		}
		return nil, newError(CategoryServerError, resp.StatusCode(), strconv.Itoa(resp.StatusCode()), nil)
	}

	res := &Result{StatusCode: resp.StatusCode()}
	if len(body) > 0 {
		if !json.Valid(body) {
			return nil, newError(CategoryBadResponse, resp.StatusCode(), "response body is not valid JSON", nil)
		}
		res.Body = json.RawMessage(body)
	}
	return res, nil
}

func (c *Client) record(ctx context.Context, span trace.Span, res *Result, err error, elapsed time.Duration) {
	outcome := "success"
	status := 0
	if res != nil {
		status = res.StatusCode
	}
	var se *Error
	if errors.As(err, &se) {
		outcome = string(se.Category)
		status = se.StatusCode
		span.RecordError(err)
		span.SetStatus(codes.Error, string(se.Category))
	}
	if status != 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", status))
	}

	if c.metrics != nil {
		c.metrics.ObserveSubmission(outcome, elapsed)
	}
	if c.logger == nil {
		return
	}
	if err != nil {
		c.logger.WarnContext(ctx, "registration submission failed",
			"request_id", requestcontext.RequestID(ctx),
			"outcome", outcome,
			"status", status,
			"error", err,
			"duration_ms", elapsed.Milliseconds(),
		)
		return
	}
	c.logger.InfoContext(ctx, "registration submitted",
		"request_id", requestcontext.RequestID(ctx),
		"status", status,
		"duration_ms", elapsed.Milliseconds(),
	)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
