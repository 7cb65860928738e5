package requestlog

import (
	"time"
	"unicode/utf8"
)

// Entry captures one completed request for inspection.
// Entries are immutable once logged.
type Entry struct {
	// ID is a unique identifier for the log entry.
	ID string `json:"id"`

	// Timestamp is when the entry was written, in UTC.
	Timestamp time.Time `json:"timestamp"`

	// Method is the HTTP method as observed on the inbound request.
	Method string `json:"method"`

	// Path is the request URL path as observed on the inbound request.
	Path string `json:"path"`

	// Status is the status recorded for the request. For upstream transport
	// failures this is 500 even though the client receives 502.
	Status int `json:"status"`

	// LatencyMs is the wall-clock handling time, including any upstream round trip.
	LatencyMs int64 `json:"latency_ms"`

	// RequestBody is the request body as UTF-8 text, nil when not valid UTF-8.
	RequestBody *string `json:"request_body"`

	// ResponseBody is the response body as UTF-8 text, nil when not valid UTF-8.
	ResponseBody *string `json:"response_body"`
}

// BodyText returns b as a string when it is valid UTF-8 and nil otherwise.
// The log is a lossy projection of traffic, not a byte-exact capture.
func BodyText(b []byte) *string {
	if !utf8.Valid(b) {
		return nil
	}
	s := string(b)
	return &s
}

// Text returns a pointer to s, for bodies that are already strings.
func Text(s string) *string {
	return &s
}
