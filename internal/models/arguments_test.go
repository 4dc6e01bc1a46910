package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArguments_Valid(t *testing.T) {
	args, err := ParseArguments([]string{"foo", "bar", "in.txt", "out.txt"})
	require.NoError(t, err)

	assert.Equal(t, Arguments{
		Target:      "foo",
		Replacement: "bar",
		Input:       "in.txt",
		Output:      "out.txt",
	}, args)
}

func TestParseArguments_WrongCount(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"none", nil},
		{"three", []string{"foo", "bar", "in.txt"}},
		{"five", []string{"foo", "bar", "in.txt", "out.txt", "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args, err := ParseArguments(tt.args)
			require.Error(t, err)
			assert.Equal(t, Arguments{}, args)

			var failure *Failure
			require.True(t, errors.As(err, &failure))
			assert.Equal(t, StageUsage, failure.Stage)
			assert.Equal(t, len(tt.args), failure.Count)
			assert.Nil(t, failure.Err)
		})
	}
}

func TestParseArguments_EmptyStringsAllowed(t *testing.T) {
	args, err := ParseArguments([]string{"", "", "in", "out"})
	require.NoError(t, err)
	assert.Empty(t, args.Target)
	assert.Empty(t, args.Replacement)
}
