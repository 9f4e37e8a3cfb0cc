package errors

import (
	"errors"
	"fmt"
	"os"

	"watchtune/internal/logger"
)

// Failure taxonomy for the two network paths. Every cause on a path
// (unreachable backend, non-2xx status, malformed body, schema mismatch)
// collapses into the path's sentinel; callers classify with errors.Is.
var (
	ErrFetchFailed = errors.New("settings fetch failed")
	ErrSaveFailed  = errors.New("settings save failed")
)

// Fetchf wraps a cause as a fetch failure.
func Fetchf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrFetchFailed}, args...)...)
}

// Savef wraps a cause as a save failure.
func Savef(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrSaveFailed}, args...)...)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
