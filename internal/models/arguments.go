package models

// ArgumentCount is the number of positional arguments quickreplace accepts.
const ArgumentCount = 4

// Arguments holds the positional command-line arguments of one invocation.
// It is built once by ParseArguments and never mutated.
type Arguments struct {
	Target      string // regular expression to search for
	Replacement string // replacement template, may contain $n backreferences
	Input       string // path of the file to read
	Output      string // path of the file to create or overwrite
}

// ParseArguments validates the positional arguments (program name excluded)
// and assigns them in order: target, replacement, input, output.
// Any count other than ArgumentCount yields a usage Failure carrying the count.
func ParseArguments(args []string) (Arguments, error) {
	if len(args) != ArgumentCount {
		return Arguments{}, NewUsageError(len(args), nil)
	}

	return Arguments{
		Target:      args[0],
		Replacement: args[1],
		Input:       args[2],
		Output:      args[3],
	}, nil
}
