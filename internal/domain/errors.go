// Package domain defines core types and errors for the warehouse explorer.
package domain

import "fmt"

// ConnectionError indicates the warehouse could not be reached or
// authenticated against. Fatal to the current operation; never retried.
type ConnectionError struct {
	Message string
}

func (e *ConnectionError) Error() string { return e.Message }

// QueryError indicates a statement failed to execute (malformed identifier,
// type mismatch in a predicate, connection dropped mid-statement). The
// underlying driver message is carried for display.
type QueryError struct {
	Message string
}

func (e *QueryError) Error() string { return e.Message }

// RejectedQueryError indicates user-submitted SQL failed the SELECT-only
// guard and never reached the executor.
type RejectedQueryError struct {
	Message string
}

func (e *RejectedQueryError) Error() string { return e.Message }

// ConfigError indicates missing or inconsistent connection configuration.
// Halts startup with a user-visible message.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string { return e.Message }

// ErrConnection creates a ConnectionError with a formatted message.
func ErrConnection(format string, args ...interface{}) *ConnectionError {
	return &ConnectionError{Message: fmt.Sprintf(format, args...)}
}

// ErrQuery creates a QueryError with a formatted message.
func ErrQuery(format string, args ...interface{}) *QueryError {
	return &QueryError{Message: fmt.Sprintf(format, args...)}
}

// ErrRejectedQuery creates a RejectedQueryError with a formatted message.
func ErrRejectedQuery(format string, args ...interface{}) *RejectedQueryError {
	return &RejectedQueryError{Message: fmt.Sprintf(format, args...)}
}

// ErrConfig creates a ConfigError with a formatted message.
func ErrConfig(format string, args ...interface{}) *ConfigError {
	return &ConfigError{Message: fmt.Sprintf(format, args...)}
}
