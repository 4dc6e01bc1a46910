package pattern

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegexpEngine_ReplaceAll(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		replacement string
		input       string
		want        string
	}{
		{"plain words", "foo", "bar", "foo foo baz", "bar bar baz"},
		{"numbered group", `(\d+)`, "[$1]", "a1b22c333", "a[1]b[22]c[333]"},
		{"braced group", `(\w+)@(\w+)`, "${2}_at_${1}", "me@home", "home_at_me"},
		{"named group", `(?P<word>o+)`, "<${word}>", "foo boo", "f<oo> b<oo>"},
		{"unmatched optional group", `a(b)?`, "[$1]", "ac ab", "[]c [b]"},
		{"leftmost first", `a|ab`, "X", "ab", "Xb"},
		{"non-overlapping", "aa", "b", "aaaaa", "bba"},
		{"empty match advances", "x*", "-", "abc", "-a-b-c-"},
		{"empty input", "x*", "-", "", "-"},
		{"multiline text", `(?m)^#`, "//", "# a\n# b\n", "// a\n// b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := RegexpEngine{}.Compile(tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.ReplaceAll(tt.input, tt.replacement))
		})
	}
}

func TestRegexpEngine_NoMatchIsIdentity(t *testing.T) {
	texts := []string{
		"",
		"hello world",
		"line one\nline two\r\n\ttabbed",
		"unicode: héllo wörld ✓",
	}
	replacements := []string{"", "X", "$1", "${0}${0}"}

	m, err := RegexpEngine{}.Compile(`zzz(\d)`)
	require.NoError(t, err)

	for _, text := range texts {
		for _, r := range replacements {
			assert.Equal(t, text, m.ReplaceAll(text, r))
		}
		assert.Equal(t, 0, m.Count(text))
	}
}

func TestRegexpEngine_EveryMatchReplaced(t *testing.T) {
	texts := []string{
		"1",
		"a1b2c3",
		"12 345 6789 0",
		"no digits here",
		"007 bond 42",
	}

	m, err := RegexpEngine{}.Compile(`\d+`)
	require.NoError(t, err)

	for _, text := range texts {
		out := m.ReplaceAll(text, "#")
		assert.False(t, strings.ContainsAny(out, "0123456789"), "digits survived in %q", out)
		assert.Equal(t, m.Count(text), strings.Count(out, "#"))
	}
}

func TestRegexpEngine_ZeroLengthTerminates(t *testing.T) {
	m, err := RegexpEngine{}.Compile(`\b`)
	require.NoError(t, err)

	text := strings.Repeat("ab ", 1000)
	out := m.ReplaceAll(text, "|")
	assert.Equal(t, 2000, strings.Count(out, "|"))
}

func TestRegexpEngine_NotIdempotent(t *testing.T) {
	m, err := RegexpEngine{}.Compile("a")
	require.NoError(t, err)

	once := m.ReplaceAll("a", "aa")
	twice := m.ReplaceAll(once, "aa")
	assert.Equal(t, "aa", once)
	assert.Equal(t, "aaaa", twice)
}

func TestRegexpEngine_CompileError(t *testing.T) {
	tests := []string{"(", "a)", "[z-a]", "x**", `\`}

	for _, target := range tests {
		t.Run(target, func(t *testing.T) {
			m, err := RegexpEngine{}.Compile(target)
			require.Error(t, err)
			assert.Nil(t, m)
			assert.Contains(t, err.Error(), "error parsing regexp")
		})
	}
}

func TestLiteralEngine(t *testing.T) {
	m, err := LiteralEngine{}.Compile("a.b")
	require.NoError(t, err)

	assert.Equal(t, "$1 axb", m.ReplaceAll("a.b axb", "$1"))
	assert.Equal(t, 1, m.Count("a.b axb"))

	m, err = LiteralEngine{}.Compile("(")
	require.NoError(t, err)
	assert.Equal(t, "[x]", m.ReplaceAll("(x]", "["))
}

func TestNewEngine(t *testing.T) {
	assert.IsType(t, LiteralEngine{}, NewEngine(true))
	assert.IsType(t, RegexpEngine{}, NewEngine(false))
}
