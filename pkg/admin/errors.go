// Error messages for the management API.

package admin

const (
	// ErrMsgInvalidJSON is returned for JSON syntax errors.
	ErrMsgInvalidJSON = "Invalid JSON in request body"

	// ErrMsgInvalidRoute is returned when the JSON is well formed but is not a valid route.
	ErrMsgInvalidRoute = "Request body is not a valid route"

	// ErrMsgInvalidLimit is returned for a non-numeric or negative limit parameter.
	ErrMsgInvalidLimit = "limit must be a non-negative integer"
)
