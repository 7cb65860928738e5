// Package upstream forwards buffered inbound requests to a single upstream
// service and returns the buffered upstream response.
package upstream

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/bffd/bffd/pkg/logging"
)

// Request is an inbound request, already read into memory, to mirror upstream.
type Request struct {
	Method string
	// Path is appended verbatim to the base URL. It may carry a query string.
	Path   string
	Header http.Header
	Body   []byte
}

// Response is a fully buffered upstream response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	Duration   time.Duration
}

// TransportError reports a failure to complete the upstream exchange:
// connection refused, DNS failure, timeout, or a truncated response body.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("error sending request for url (%s): %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DiagnosticMessage is the text shown to clients and written to the request
// log when forwarding fails.
func DiagnosticMessage(err error) string {
	return "Proxy error: " + err.Error()
}

// Forwarder performs single-attempt forwarding to one upstream base URL.
type Forwarder struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// Option configures a Forwarder.
type Option func(*Forwarder)

// WithHTTPClient sets the client used for upstream calls.
func WithHTTPClient(client *http.Client) Option {
	return func(f *Forwarder) {
		if client != nil {
			f.client = client
		}
	}
}

// WithLogger sets the operational logger.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Forwarder) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// New creates a Forwarder for baseURL, e.g. "http://localhost:3000".
// No timeout is applied beyond what the transport enforces.
func New(baseURL string, opts ...Option) *Forwarder {
	f := &Forwarder{
		baseURL: baseURL,
		client:  &http.Client{},
		logger:  logging.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// BaseURL returns the upstream base URL.
func (f *Forwarder) BaseURL() string {
	return f.baseURL
}

// Forward sends req to the upstream and buffers the whole response.
// Any failure is returned as a *TransportError.
func (f *Forwarder) Forward(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	targetURL := f.baseURL + req.Path

	// A nil body keeps the outbound request free of any payload and
	// Content-Length; an empty slice must not become an empty body.
	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	outReq, err := http.NewRequestWithContext(ctx, req.Method, targetURL, body)
	if err != nil {
		return nil, &TransportError{URL: targetURL, Err: err}
	}
	copyTextHeaders(outReq.Header, req.Header)

	f.logger.Debug("forwarding request", "method", req.Method, "url", targetURL, "bodySize", len(req.Body))

	resp, err := f.client.Do(outReq)
	if err != nil {
		return nil, &TransportError{URL: targetURL, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: targetURL, Err: fmt.Errorf("reading response body: %w", err)}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header.Clone(),
		Body:       respBody,
		Duration:   time.Since(start),
	}, nil
}
