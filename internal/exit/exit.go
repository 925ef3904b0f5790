// Package exit carries the final message and status code of a pick run.
package exit

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	CodeSuccess = 0
	CodeFailure = 1
)

// Result is the outcome printed once by main before the process exits.
type Result struct {
	Output   io.Writer
	ExitCode int
	Message  string
}

// Print writes the message, terminated by a newline, to Output.
// An empty message prints nothing.
func (r *Result) Print() {
	if r.Message == "" {
		return
	}
	fmt.Fprint(r.Output, r.Message)
	if !strings.HasSuffix(r.Message, "\n") {
		fmt.Fprintln(r.Output)
	}
}

// To redirects the result to w.
func (r *Result) To(w io.Writer) *Result {
	r.Output = w
	return r
}

// Success creates a stdout result with exit code 0.
func Success(message string) *Result {
	return &Result{
		Output:   os.Stdout,
		ExitCode: CodeSuccess,
		Message:  message,
	}
}

// Error creates a stderr result with exit code 1.
func Error(message string) *Result {
	return &Result{
		Output:   os.Stderr,
		ExitCode: CodeFailure,
		Message:  message,
	}
}

// Errorf creates an error result with a formatted message.
func Errorf(format string, a ...any) *Result {
	return Error(fmt.Sprintf(format, a...))
}

// FromError creates an error result prefixed with "Error: ".
func FromError(err error) *Result {
	return Errorf("Error: %v", err)
}
