package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Exit codes for the CLI.
const (
	ExitSuccess      = 0
	ExitFailure      = 1
	ExitCommandError = 2
)

// ExitError wraps an error with a process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given code and underlying error.
func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// GetExitCode extracts the exit code from an error chain. Plain errors map
// to ExitCommandError, which covers usage mistakes surfaced by cobra.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}

// OutputFormatter writes command results as text or JSON.
type OutputFormatter struct {
	format string
	writer io.Writer
}

// NewOutputFormatter creates a formatter for the given format and writer.
func NewOutputFormatter(format string, writer io.Writer) *OutputFormatter {
	return &OutputFormatter{format: format, writer: writer}
}

// JSON returns true when the formatter emits JSON.
func (f *OutputFormatter) JSON() bool {
	return f.format == "json"
}

// PrintResult writes a result value. In JSON mode the value is marshalled
// with indentation; in text mode the provided render function is called.
func (f *OutputFormatter) PrintResult(v any, render func(io.Writer) error) error {
	if f.JSON() {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling result: %w", err)
		}
		fmt.Fprintln(f.writer, string(data))
		return nil
	}
	return render(f.writer)
}
