// Package sysinfo - Formatting utilities
package sysinfo

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	mib = 1024 * 1024
	gib = 1024 * 1024 * 1024
)

// FormatBytes converts a byte count to a human-readable string with appropriate units.
//
// Parameters:
//   - bytes: The number of bytes to format
//
// Returns:
//   - A formatted string with the most appropriate unit (B, KB, MB, GB, TB, PB)
//
// Example: FormatBytes(1536) returns "1.5 KB"
func FormatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"KB", "MB", "GB", "TB", "PB"}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), units[exp])
}

// TruncateString shortens s to at most maxWidth terminal columns, ending it
// with an ellipsis when anything was cut. Wide runes such as the emoji in
// weather summaries count as two columns.
//
// Parameters:
//   - s: The string to truncate
//   - maxWidth: Maximum display width of the result, in columns
//
// Returns:
//   - s unchanged if it already fits in maxWidth
//   - A truncated string ending in "…" otherwise (no ellipsis when maxWidth is 1)
//   - An empty string when maxWidth is not positive
//
// Example: TruncateString("Hello World", 8) returns "Hello W…"
func TruncateString(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// PadRight pads s with spaces to at least width terminal columns.
//
// Parameters:
//   - s: The string to pad
//   - width: The desired minimum display width
//
// Returns:
//   - The padded string, or s unchanged if it is already that wide
//
// Example: PadRight("Hi", 5) returns "Hi   "
func PadRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// DisplayWidth returns the number of terminal columns s occupies.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}
