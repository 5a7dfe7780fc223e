package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Process exit statuses returned by duckval.
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // a value could not be rendered
	ExitCommandError = 2 // bad arguments or flags
)

// ExitError carries the status duckval exits with alongside the message
// printed for a failed command. Err, when set, is the conversion or parse
// error that caused it.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError returns an ExitError with no underlying cause.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError attaches code and message to err, which stays reachable
// through errors.Is and errors.As.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode maps err to a process exit status: ExitSuccess for nil, the
// Code of the first ExitError in its chain, or ExitFailure otherwise.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// Rendered is a single input value and its rendered text.
type Rendered struct {
	Input string `json:"input"`
	Text  string `json:"text"`
}

// CLIResponse is the JSON response format for CLI output.
type CLIResponse struct {
	Status string     `json:"status"` // "ok"
	Data   []Rendered `json:"data"`
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Success outputs rendered values in the configured format. Text output
// has one rendered value per line.
func (f *OutputFormatter) Success(values []Rendered) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   values,
		})
	}

	for _, v := range values {
		if _, err := fmt.Fprintln(f.Writer, v.Text); err != nil {
			return err
		}
	}
	return nil
}
