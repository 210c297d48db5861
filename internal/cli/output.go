package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Operation failure (statement rejected, snapshot not persisted, etc.)
	ExitCommandError = 2 // Command error (bad flags, unreadable config, store cannot be opened, etc.)
)

// ExitError represents an error with a specific exit code.
// Commands return it so main can exit with a meaningful status.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
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

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure if the error is not an ExitError.
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

// ErrorCode maps an exit code to the code reported in JSON error output.
func ErrorCode(exitCode int) string {
	switch exitCode {
	case ExitCommandError:
		return "E002"
	case ExitSuccess:
		return ""
	default:
		return "E001"
	}
}

// OutputFormatter writes command results in the selected format.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// CLIResponse is the JSON envelope for every command result.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // set when Status is "error"
}

// CLIError is the error part of a CLIResponse. Message is what the command
// was doing; Cause is the underlying error, if any.
type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Cause   string `json:"cause,omitempty"`
}

// Success outputs a successful result in the configured format. In text
// format data is printed with fmt, so payloads implementing fmt.Stringer
// control their own rendering.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	_, err := fmt.Fprintln(f.Writer, data)
	return err
}

// Error outputs err with the code derived from its exit code.
func (f *OutputFormatter) Error(err error) error {
	code := ErrorCode(GetExitCode(err))
	if f.Format != "json" {
		_, werr := fmt.Fprintf(f.Writer, "Error [%s]: %v\n", code, err)
		return werr
	}

	cliErr := &CLIError{Code: code, Message: err.Error()}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		cliErr.Message = exitErr.Message
		if exitErr.Err != nil {
			cliErr.Cause = exitErr.Err.Error()
		}
	}
	return json.NewEncoder(f.Writer).Encode(CLIResponse{Status: "error", Error: cliErr})
}
