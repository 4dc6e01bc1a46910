// Package pattern compiles target strings into matchers and applies them to text.
//
// The pipeline only depends on the Engine and Matcher interfaces, so the
// concrete matching engine can be swapped without touching pipeline logic.
// Two engines are provided:
//
//   - RegexpEngine: Go RE2 syntax, $n / ${name} expansion in the template
//   - LiteralEngine: target and template are plain strings
//
// Usage:
//
//	m, err := pattern.RegexpEngine{}.Compile(`(\d+)`)
//	if err != nil {
//	    return err
//	}
//	out := m.ReplaceAll("a1b22", "[$1]") // "a[1]b[22]"
package pattern

import (
	"regexp"
)

// Engine compiles a target string into a reusable Matcher.
type Engine interface {
	// Compile returns an error carrying the engine's diagnostic verbatim
	// when target is not a valid pattern.
	Compile(target string) (Matcher, error)
}

// Matcher is a compiled pattern.
type Matcher interface {
	// ReplaceAll replaces every non-overlapping match in text, scanned left
	// to right from position 0, with template. Text without a match is
	// returned unchanged.
	ReplaceAll(text, template string) string

	// Count returns the number of non-overlapping matches in text.
	Count(text string) int
}

// RegexpEngine compiles targets with the standard library regexp package.
type RegexpEngine struct{}

// Compile implements Engine.
func (RegexpEngine) Compile(target string) (Matcher, error) {
	re, err := regexp.Compile(target)
	if err != nil {
		return nil, err
	}
	return &regexpMatcher{re: re}, nil
}

// LiteralEngine matches the target as a plain string and inserts the
// template without backreference expansion.
type LiteralEngine struct{}

// Compile implements Engine. It never fails.
func (LiteralEngine) Compile(target string) (Matcher, error) {
	return &regexpMatcher{re: regexp.MustCompile(regexp.QuoteMeta(target)), literal: true}, nil
}

// NewEngine returns the LiteralEngine when literal is set and the RegexpEngine otherwise.
func NewEngine(literal bool) Engine {
	if literal {
		return LiteralEngine{}
	}
	return RegexpEngine{}
}

type regexpMatcher struct {
	re      *regexp.Regexp
	literal bool
}

// ReplaceAll implements Matcher.
// regexp advances past empty matches and never reports an empty match
// adjacent to the previous one, so patterns like `x*` terminate.
func (m *regexpMatcher) ReplaceAll(text, template string) string {
	if m.literal {
		return m.re.ReplaceAllLiteralString(text, template)
	}
	return m.re.ReplaceAllString(text, template)
}

// Count implements Matcher.
func (m *regexpMatcher) Count(text string) int {
	return len(m.re.FindAllStringIndex(text, -1))
}
