package models

import (
	"fmt"
)

// Stage identifies the pipeline stage a Failure came from.
type Stage int

const (
	// StageUsage represents a malformed command line.
	StageUsage Stage = iota
	// StageRead represents a failure loading the input file.
	StageRead
	// StageCompile represents an invalid target pattern.
	StageCompile
	// StageWrite represents a failure persisting the output file.
	StageWrite
)

// String returns the string representation of Stage.
func (s Stage) String() string {
	switch s {
	case StageUsage:
		return "usage"
	case StageRead:
		return "read"
	case StageCompile:
		return "compile"
	case StageWrite:
		return "write"
	default:
		return "unknown"
	}
}

// Failure is the single error type produced by the replace pipeline.
// Stage selects which of the remaining fields are meaningful:
//
//	StageUsage:   Count (and Err for flag parsing problems)
//	StageRead:    Path, Err
//	StageCompile: Pattern, Err
//	StageWrite:   Path, Err
type Failure struct {
	Stage   Stage
	Path    string // input or output path for read/write failures
	Pattern string // target pattern for compile failures
	Count   int    // positional argument count for usage failures
	Err     error  // underlying cause
}

// NewUsageError creates a usage Failure for a command line with count positional arguments.
// cause is optional and is set when the command line failed for a reason other than the count.
func NewUsageError(count int, cause error) *Failure {
	return &Failure{Stage: StageUsage, Count: count, Err: cause}
}

// NewReadError creates a Failure for an input file that could not be loaded.
func NewReadError(path string, cause error) *Failure {
	return &Failure{Stage: StageRead, Path: path, Err: cause}
}

// NewCompileError creates a Failure for a target that is not a valid pattern.
func NewCompileError(pattern string, cause error) *Failure {
	return &Failure{Stage: StageCompile, Pattern: pattern, Err: cause}
}

// NewWriteError creates a Failure for an output file that could not be written.
func NewWriteError(path string, cause error) *Failure {
	return &Failure{Stage: StageWrite, Path: path, Err: cause}
}

// Error implements the error interface for Failure.
func (f *Failure) Error() string {
	switch f.Stage {
	case StageUsage:
		if f.Err != nil {
			return fmt.Sprintf("invalid usage: %v", f.Err)
		}
		return fmt.Sprintf("wrong number of arguments: expected %d, got %d.", ArgumentCount, f.Count)
	case StageRead:
		return fmt.Sprintf("failed to read from file '%s': %v", f.Path, f.Err)
	case StageCompile:
		return fmt.Sprintf("failed to compile pattern '%s': %v", f.Pattern, f.Err)
	case StageWrite:
		return fmt.Sprintf("failed to write to file '%s': %v", f.Path, f.Err)
	default:
		return fmt.Sprintf("%s failure: %v", f.Stage, f.Err)
	}
}

// Unwrap returns the underlying error for error wrapping support.
func (f *Failure) Unwrap() error {
	return f.Err
}
