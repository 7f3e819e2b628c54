// Package api is the dashboard's only gateway to the core loan API. Every call
// decodes into a typed model, checks the response shape, and reports failures
// as *Error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apimetrics "loandesk/internal/api/metrics"
	"loandesk/internal/validation"
	"loandesk/pkg/requestcontext"
)

const tracerName = "loandesk/api"

// Client calls the core loan API. It does not retry, cache or impose its own
// timeout; the caller's context bounds each call.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *apimetrics.Metrics
	tracer     trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithMetrics records upstream call metrics.
func WithMetrics(m *apimetrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithTracerProvider uses tp instead of the global OpenTelemetry provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) {
		c.tracer = tp.Tracer(tracerName)
	}
}

// New creates a client for baseURL (scheme and host, optional path prefix).
func New(baseURL string, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     logger,
		tracer:     otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// call is one request description.
type call struct {
	operation string
	method    string
	path      string
	body      any
	header    http.Header
}

// do performs c and decodes a 2xx body into out. A 204 leaves out untouched.
// out may be nil when the caller does not need the body.
func (c *Client) do(ctx context.Context, rc call, out any) (err error) {
	start := time.Now()
	ctx, span := c.tracer.Start(ctx, "core_api."+rc.operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", rc.method),
			attribute.String("url.path", rc.path),
		),
	)
	status := 0
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = "error"
			var apiErr *Error
			if errors.As(err, &apiErr) && apiErr.Kind == KindShape {
				outcome = "invalid_response"
			}
			span.RecordError(err)
			span.SetStatus(codes.Error, outcome)
		}
		span.SetAttributes(attribute.Int("http.response.status_code", status))
		span.End()
		c.metrics.ObserveRequest(rc.operation, outcome, status, start)
		c.logger.DebugContext(ctx, "core api call",
			"request_id", requestcontext.RequestID(ctx),
			"operation", rc.operation,
			"method", rc.method,
			"path", rc.path,
			"status", status,
			"outcome", outcome,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}()

	req, err := c.newRequest(ctx, rc)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Kind: KindTransport, Message: "no se pudo contactar al servidor", Err: err}
	}
	defer resp.Body.Close()
	status = resp.StatusCode

	if status < 200 || status > 299 {
		return readError(resp)
	}
	if status == http.StatusNoContent || out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Status: status, Kind: KindShape, Message: "respuesta invalida del servidor", Err: err}
	}
	if err := validation.Response(out); err != nil {
		return &Error{Status: status, Kind: KindShape, Message: "respuesta invalida del servidor", Err: err}
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, rc call) (*http.Request, error) {
	path := rc.path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	var body io.Reader
	if rc.body != nil {
		raw, err := json.Marshal(rc.body)
		if err != nil {
			return nil, fmt.Errorf("encode %s payload: %w", rc.operation, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, rc.method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", rc.operation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if id := requestcontext.RequestID(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}
	for key, values := range rc.header {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	return req, nil
}

func readError(resp *http.Response) *Error {
	apiErr := &Error{
		Status:  resp.StatusCode,
		Kind:    KindStatus,
		Message: fallbackMessage(resp.StatusCode),
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return apiErr
	}
	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return apiErr
	}
	apiErr.Message = body.message(resp.StatusCode)
	if body.Detail != nil {
		apiErr.Detail = *body.Detail
	}
	if body.Title != nil {
		apiErr.Title = *body.Title
	}
	return apiErr
}
