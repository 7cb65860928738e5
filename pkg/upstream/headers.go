package upstream

import (
	"net/http"
	"unicode/utf8"

	"golang.org/x/net/http/httpguts"
)

// copyTextHeaders copies every header value from src to dst that is plain
// visible text. Values carrying control characters or non-ASCII bytes are
// dropped silently.
func copyTextHeaders(dst, src http.Header) {
	for key, values := range src {
		if !httpguts.ValidHeaderFieldName(key) {
			continue
		}
		for _, value := range values {
			if isTextHeaderValue(value) {
				dst.Add(key, value)
			}
		}
	}
}

func isTextHeaderValue(v string) bool {
	if !httpguts.ValidHeaderFieldValue(v) {
		return false
	}
	for i := 0; i < len(v); i++ {
		if v[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// CopyHeaders copies all header values from src to dst verbatim, replacing
// any values dst already holds for the same key.
func CopyHeaders(dst, src http.Header) {
	for key, values := range src {
		dst.Del(key)
		for _, value := range values {
			dst.Add(key, value)
		}
	}
}
