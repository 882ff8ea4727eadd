// Copyright 2026 The Facade Authors
// SPDX-License-Identifier: Apache-2.0

// Package coerce converts raw command-line tokens into typed values.
//
// The rules are fixed and total: a token is tried as a boolean, then
// as the null literal, then as an integer, and anything unparseable is
// returned as the original string. Coercion never fails, so callers
// can run every parsed value through it unconditionally.
package coerce

import (
	"strconv"
	"strings"
)

// Value coerces a single token. Matching is case-insensitive:
// "true"/"false" become booleans, "none" becomes nil, a decimal
// integer becomes an int, and everything else is returned unchanged.
func Value(token string) any {
	switch strings.ToLower(token) {
	case "true":
		return true
	case "false":
		return false
	case "none":
		return nil
	}
	if n, err := strconv.Atoi(token); err == nil {
		return n
	}
	return token
}

// Any coerces v when it is a string and passes every other type
// through unchanged. Idempotent: already-coerced values survive a
// second pass.
func Any(v any) any {
	if s, ok := v.(string); ok {
		return Value(s)
	}
	return v
}
