package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/bffd/bffd/pkg/admin"
	"github.com/bffd/bffd/pkg/requestlog"
	"github.com/bffd/bffd/pkg/route"
)

// AdminClient provides methods for communicating with the management API.
type AdminClient interface {
	// ListRoutes returns all registered routes in registry order.
	ListRoutes() ([]route.Route, error)
	// SaveRoute creates a route or replaces the one with the same ID.
	SaveRoute(rt route.Route) (*SaveRouteResult, error)
	// ListLogs returns the newest limit log entries, or all when limit is 0.
	ListLogs(limit int) ([]requestlog.Entry, error)
	// Health checks if the server is running.
	Health() (*admin.HealthResponse, error)
}

// SaveRouteResult contains the result of a save route operation.
type SaveRouteResult struct {
	Created bool
	Message string
}

// APIError represents an error response from the management API.
type APIError struct {
	StatusCode int
	ErrorCode  string
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// adminClient implements AdminClient using HTTP.
type adminClient struct {
	baseURL    string
	httpClient *http.Client
}

// ClientOption configures an admin client.
type ClientOption func(*adminClient)

// defaultClientTimeout bounds each management API call.
const defaultClientTimeout = 30 * time.Second

// WithTimeout sets the HTTP timeout for the client. Zero disables it.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *adminClient) {
		c.httpClient.Timeout = timeout
	}
}

// NewAdminClient creates a new management API client.
// The baseURL is the server's base URL (e.g., "http://localhost:8080").
func NewAdminClient(baseURL string, opts ...ClientOption) AdminClient {
	c := &adminClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultClientTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListRoutes returns all registered routes.
func (c *adminClient) ListRoutes() ([]route.Route, error) {
	resp, err := c.get("/api/routes")
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}

	var routes []route.Route
	if err := json.NewDecoder(resp.Body).Decode(&routes); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return routes, nil
}

// SaveRoute posts rt to the management API.
func (c *adminClient) SaveRoute(rt route.Route) (*SaveRouteResult, error) {
	body, err := json.Marshal(rt)
	if err != nil {
		return nil, fmt.Errorf("failed to encode route: %w", err)
	}

	resp, err := c.post("/api/routes", body)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}

	result := &SaveRouteResult{Created: resp.StatusCode == http.StatusCreated}
	if err := json.NewDecoder(resp.Body).Decode(&result.Message); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return result, nil
}

// ListLogs returns request log entries, oldest first.
func (c *adminClient) ListLogs(limit int) ([]requestlog.Entry, error) {
	path := "/api/logs"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	resp, err := c.get(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}

	var entries []requestlog.Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return entries, nil
}

// Health checks if the server is running.
func (c *adminClient) Health() (*admin.HealthResponse, error) {
	resp, err := c.get("/api/health")
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}

	var health admin.HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &health, nil
}

// get performs an HTTP GET request.
func (c *adminClient) get(path string) (*http.Response, error) {
	return c.doRequest(http.MethodGet, path, nil)
}

// post performs an HTTP POST request.
func (c *adminClient) post(path string, body []byte) (*http.Response, error) {
	return c.doRequest(http.MethodPost, path, body)
}

// doRequest performs an HTTP request.
func (c *adminClient) doRequest(method, path string, body []byte) (*http.Response, error) {
	fullURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{
			StatusCode: 0,
			ErrorCode:  "connection_error",
			Message:    fmt.Sprintf("cannot connect to BFF at %s: %v", c.baseURL, err),
		}
	}
	return resp, nil
}

// parseError parses an error response from the API.
func (c *adminClient) parseError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var errResp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			ErrorCode:  errResp.Error,
			Message:    errResp.Message,
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		ErrorCode:  "unknown_error",
		Message:    fmt.Sprintf("server returned status %d: %s", resp.StatusCode, string(body)),
	}
}

// FormatConnectionError returns a user-friendly error message for connection failures.
func FormatConnectionError(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode == "connection_error" {
		return fmt.Sprintf(`Error: %s

Suggestions:
  • Start the server: bffd serve
  • Check if the server is running on the expected port
  • Point the CLI at it with --admin-url or BFF_ADMIN_URL`, apiErr.Message)
	}
	return err.Error()
}
