// Copyright 2026 The Facade Authors
// SPDX-License-Identifier: Apache-2.0

// Package cmderr provides categorized errors for the bridge. The
// category travels separately from the message so callers can make
// programmatic decisions (fix the invocation, report a bug) without
// parsing error text.
package cmderr

import "fmt"

// Category classifies an error.
type Category string

const (
	// CategoryUsage indicates the invocation was malformed: unknown
	// subcommand, missing positional, unparseable flag value. The
	// target method is never invoked after a usage error.
	CategoryUsage Category = "usage"

	// CategoryNotFound indicates a referenced resource does not
	// exist. Retrying with the same input will not help.
	CategoryNotFound Category = "not_found"

	// CategoryInternal indicates an unexpected failure: bugs, I/O
	// errors, inconsistencies in data the bridge itself produced.
	CategoryInternal Category = "internal"
)

// Error is a categorized error wrapping an inner error. The full
// chain stays intact for errors.Is and errors.As.
type Error struct {
	Category Category
	Err      error
}

func (e *Error) Error() string { return e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// Usage creates a usage error: the caller's invocation was malformed.
func Usage(format string, args ...any) *Error {
	return &Error{Category: CategoryUsage, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error.
func NotFound(format string, args ...any) *Error {
	return &Error{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error.
func Internal(format string, args ...any) *Error {
	return &Error{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}

// IsUsage reports whether err carries the usage category anywhere in
// its chain.
func IsUsage(err error) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Category == CategoryUsage {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
