// Package display formats user-facing diagnostics for the quickreplace CLI.
//
// # Colorize
//
// Colorize is a free function: it takes a severity and a message and
// returns a display-ready string. Whether color is applied is an explicit
// argument; the package never reads or writes fatih/color's global NoColor
// switch.
//
//	fmt.Fprintln(os.Stderr, display.Colorize(display.SeverityError, "Error:", true), "boom")
//
// # Reporter
//
// Reporter turns a pipeline error into stderr output and an exit code:
//
//	r := display.NewReporter(os.Stderr, display.ShouldColor(display.ColorAuto, os.Stderr))
//	os.Exit(r.Report(err))
//
// Usage failures are preceded by the usage banner:
//
//	quickreplace - change occurrences of one string into another
//	Usage: quickreplace <target> <replacement> <INPUT> <OUTPUT>
//	Error: wrong number of arguments: expected 4, got 3.
//
// All functions accept io.Writer interfaces for testability.
package display
