package types

import "fmt"

// Result is the outcome of a single command invocation.
type Result struct {
	ExitCode int
	Output   string
	Err      string
}

// Success reports whether the command exited cleanly.
func (r Result) Success() bool { return r.ExitCode == 0 }

// Ok builds a successful result carrying output.
func Ok(output string) Result {
	return Result{ExitCode: 0, Output: output}
}

// Fail builds a failed result with a formatted error message.
func Fail(format string, args ...any) Result {
	return Result{ExitCode: 1, Err: fmt.Sprintf(format, args...)}
}

// Request carries the arguments and piped input for one invocation.
// Stdin holds the output of the previous pipeline stage, or the
// contents of an input redirection.
type Request struct {
	Args  []string
	Stdin string
}

// Definition describes a registered command.
type Definition struct {
	Name        string
	Usage       string
	Description string
}
