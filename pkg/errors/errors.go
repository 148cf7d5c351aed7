// Package errors provides structured error types for graphlayout.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across engines, CLI and HTTP API
//   - Machine-readable error codes for programmatic handling
//   - Identification of the connected component (cluster) that failed
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input or configuration validation failures
//   - NOT_*: Structural preconditions of an engine that the graph violates
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.ForCluster(errors.ErrCodeNotARootedForest, 2, "vertex %s has %d parents", id, n)
//	if errors.Is(err, errors.ErrCodeNotARootedForest) {
//	    // Fall back to another engine
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeUnknownEngine Code = "UNKNOWN_ENGINE"

	// Structural preconditions
	ErrCodeNotARootedForest  Code = "NOT_A_ROOTED_FOREST"
	ErrCodeNotAcyclic        Code = "NOT_ACYCLIC_DIGRAPH"
	ErrCodeNotSeriesParallel Code = "NOT_SERIES_PARALLEL"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cluster int    // 1-based index of the failing cluster, 0 if not cluster specific
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Cluster > 0 {
		msg = fmt.Sprintf("cluster %d: %s", e.Cluster, msg)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ForCluster creates a new Error attributed to the given 1-based cluster index.
func ForCluster(code Code, cluster int, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cluster: cluster,
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// ClusterOf returns the cluster index recorded on err, or 0.
func ClusterOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Cluster
	}
	return 0
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cluster > 0 {
			return fmt.Sprintf("cluster %d: %s", e.Cluster, e.Message)
		}
		return e.Message
	}
	return err.Error()
}
