package display

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Severity selects the style of a diagnostic fragment.
type Severity int

const (
	// SeverityError is bold red, used for the "Error:" prefix.
	SeverityError Severity = iota
	// SeverityBanner is green, used for the program name in the usage banner.
	SeverityBanner
	// SeverityPlain applies no style.
	SeverityPlain
)

// Color modes accepted by ShouldColor.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Colorize wraps msg in the ANSI style for severity when enabled is true.
// With enabled false, or for SeverityPlain, msg is returned unchanged.
func Colorize(severity Severity, msg string, enabled bool) string {
	if !enabled {
		return msg
	}

	var c *color.Color
	switch severity {
	case SeverityError:
		c = color.New(color.FgRed, color.Bold)
	case SeverityBanner:
		c = color.New(color.FgGreen)
	default:
		return msg
	}

	c.EnableColor()
	return c.Sprint(msg)
}

// IsValidColorMode reports whether mode is auto, always or never.
func IsValidColorMode(mode string) bool {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// ShouldColor resolves a color mode for output written to w.
// In auto mode color is used only when w is a terminal.
func ShouldColor(mode string, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal(w)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// errorPrefix returns the "Error:" prefix styled for the reporter.
func errorPrefix(enabled bool) string {
	return Colorize(SeverityError, "Error:", enabled)
}

// PrintError writes an "Error:"-prefixed diagnostic line to w.
func PrintError(w io.Writer, enabled bool, format string, args ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", errorPrefix(enabled), fmt.Sprintf(format, args...))
}
