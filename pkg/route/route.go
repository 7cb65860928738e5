package route

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Mode determines how a matched request is handled.
type Mode string

const (
	// ModeProxy forwards the request to the upstream and relays its response.
	ModeProxy Mode = "proxy"
	// ModeHandled answers locally without contacting the upstream.
	ModeHandled Mode = "handled"
)

// ParseMode parses a mode name case-insensitively.
// An empty string yields ModeHandled.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(ModeHandled):
		return ModeHandled, nil
	case string(ModeProxy):
		return ModeProxy, nil
	default:
		return "", fmt.Errorf("invalid route mode %q (expected %q or %q)", s, ModeProxy, ModeHandled)
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Mode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *Mode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Route is a registered dispatch rule.
type Route struct {
	// ID identifies the route for updates. Uniqueness is not enforced.
	ID int `json:"id" yaml:"id"`

	// Path is matched exactly and case-sensitively against the request path.
	Path string `json:"path" yaml:"path"`

	// Method is matched case-insensitively against the request method.
	Method string `json:"method" yaml:"method"`

	// Mode selects proxy or local handling. Missing means handled.
	Mode Mode `json:"mode" yaml:"mode"`

	// TargetPath overrides the path used when forwarding upstream.
	TargetPath *string `json:"target_path,omitempty" yaml:"target_path,omitempty"`

	// Description is a free-text annotation.
	Description string `json:"description" yaml:"description"`
}

// Matches reports whether the route applies to the given method and path.
func (r *Route) Matches(method, path string) bool {
	return r.Path == path && strings.EqualFold(r.Method, method)
}

// Upstream returns the path to forward to: TargetPath when set, else path.
func (r *Route) Upstream(path string) string {
	if r.TargetPath != nil && *r.TargetPath != "" {
		return *r.TargetPath
	}
	return path
}

// normalize fills in defaults for fields left empty by the caller.
func (r Route) normalize() Route {
	if r.Mode == "" {
		r.Mode = ModeHandled
	}
	return r
}
