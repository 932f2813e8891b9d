// Package errors provides structured error types for the tzface module.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). Both are short stable strings so they survive into log
// output and error matching alike.
//
// Use the convenience constructors for common patterns:
//
//	err := errors.InvalidInput(errors.PhaseConfig, "empty zone name in %q", entry)
//	err := errors.NotFound(errors.PhaseFont, "font handle", handle)
//
// All errors implement the standard error interface and support
// errors.Is/As; two *Error values match when their Phase and Kind agree.
package errors
