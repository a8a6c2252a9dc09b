// Package layout decides how the dashboard body is arranged for a given
// terminal width.
package layout

import (
	"os"
	"strconv"

	"golang.org/x/term"

	"tdash/logger"
)

// StackThreshold is the narrowest width, in columns, that still fits the two
// body panels side by side.
const StackThreshold = 100

// DefaultWidth is used when neither the terminal nor COLUMNS reports a width.
const DefaultWidth = 80

// Plan is the arrangement of the dashboard's body panels.
type Plan int

const (
	// Stacked places the body panels one above the other (phones, split panes).
	Stacked Plan = iota
	// SideBySide places the body panels in two columns.
	SideBySide
)

func (p Plan) String() string {
	switch p {
	case Stacked:
		return "stacked"
	case SideBySide:
		return "side-by-side"
	default:
		return "unknown"
	}
}

// PlanFor returns Stacked for widths below StackThreshold and SideBySide otherwise.
func PlanFor(width int) Plan {
	if width < StackThreshold {
		return Stacked
	}
	return SideBySide
}

// DetectWidth returns the terminal width to lay out for. A positive override
// wins; otherwise stdout's terminal size is queried, then COLUMNS, then
// DefaultWidth. Falling back to DefaultWidth is reported through log.Warn.
func DetectWidth(override int, log logger.Logger) int {
	if override > 0 {
		return override
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	if cols := os.Getenv("COLUMNS"); cols != "" {
		if w, err := strconv.Atoi(cols); err == nil && w > 0 {
			return w
		}
	}
	log.Warn("terminal width unknown, using %d columns (set TDASH_WIDTH to override)", DefaultWidth)
	return DefaultWidth
}
