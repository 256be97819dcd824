package main

import (
	"errors"
	"fmt"
)

// ErrNoHistoryDir is returned when history is listed without a history
// directory configured.
var ErrNoHistoryDir = errors.New("no history directory configured")

// WrapOperationError wraps an error as "failed to {operation}: %w".
//
// Example:
//
//	if err := os.WriteFile(path, data, 0644); err != nil {
//	    return WrapOperationError("write deck", err)
//	}
func WrapOperationError(operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to %s: %w", operation, err)
}

// WrapOperationErrorf is WrapOperationError with a formatted operation.
//
// Example:
//
//	return WrapOperationErrorf("read %s", err, path)
func WrapOperationErrorf(format string, err error, args ...interface{}) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("failed to %s: %w", msg, err)
}
