// Copyright 2026 The Facade Authors
// SPDX-License-Identifier: Apache-2.0

package cmderr

import "fmt"

// ExitError signals a non-zero exit code without printing an extra
// error message. When a target method returns an ExitError, the
// process exits with the specified code without printing the error
// string; the method is expected to have already written its own
// output.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code. The binary's main function checks
// for this interface on returned errors to distinguish "handled
// non-zero exit" from "unexpected error to display".
func (e *ExitError) ExitCode() int {
	return e.Code
}
