package display

import (
	"errors"
	"fmt"
	"io"

	"github.com/harrison/quickreplace/internal/models"
)

// Exit codes returned by the quickreplace CLI.
// Failure kinds are not distinguished by exit code.
const (
	// ExitSuccess indicates the output file was written.
	ExitSuccess = 0

	// ExitFailure indicates any usage, read, pattern or write failure.
	ExitFailure = 1
)

// ProgramName is the name shown in the usage banner.
const ProgramName = "quickreplace"

// Description is the one-line summary shown in the usage banner.
const Description = "change occurrences of one string into another"

// Synopsis is the command-line form shown in the usage banner.
const Synopsis = "quickreplace <target> <replacement> <INPUT> <OUTPUT>"

// Reporter writes diagnostics for failed runs.
type Reporter struct {
	out   io.Writer
	color bool
}

// NewReporter creates a Reporter writing to out.
// color controls whether prefixes are styled.
func NewReporter(out io.Writer, color bool) *Reporter {
	return &Reporter{out: out, color: color}
}

// Usage prints the usage banner.
func (r *Reporter) Usage() {
	fmt.Fprintf(r.out, "%s - %s\n", Colorize(SeverityBanner, ProgramName, r.color), Description)
	fmt.Fprintf(r.out, "Usage: %s\n", Synopsis)
}

// Report prints err and returns the exit code the process should terminate with.
// A nil error prints nothing and returns ExitSuccess.
func (r *Reporter) Report(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var failure *models.Failure
	if !errors.As(err, &failure) {
		PrintError(r.out, r.color, "%v", err)
		return ExitFailure
	}

	switch failure.Stage {
	case models.StageUsage:
		r.Usage()
		PrintError(r.out, r.color, "%s", failure.Error())
	case models.StageRead, models.StageCompile, models.StageWrite:
		PrintError(r.out, r.color, "%s", failure.Error())
	default:
		PrintError(r.out, r.color, "unexpected %s failure: %v", failure.Stage, failure.Err)
	}

	return ExitFailure
}
