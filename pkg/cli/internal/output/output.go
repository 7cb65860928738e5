// Package output provides common output formatting utilities.
package output

import (
	"encoding/json"
	"io"
	"text/tabwriter"
)

// JSON writes indented JSON to w.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Table creates an aligned table writer on w.
// Remember to call Flush() when done writing.
func Table(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// Dash returns s, or "-" when s is empty, for table cells.
func Dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
