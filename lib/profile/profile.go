// Copyright 2026 The Facade Authors
// SPDX-License-Identifier: Apache-2.0

// Package profile wraps the single dispatch call with timing
// instrumentation. The wrapper is purely observational: it never
// alters the wrapped call's result, and it reports on exit whether
// the call succeeded or failed.
package profile

import (
	"fmt"
	"io"
	"runtime"
	"time"
)

// Wrap runs fn and writes cumulative timing statistics to out
// afterwards, success or failure. The error is fn's own, unmodified.
func Wrap(out io.Writer, fn func() error) error {
	var before runtime.MemStats
	runtime.ReadMemStats(&before)
	start := time.Now()

	err := fn()

	elapsed := time.Since(start)
	var after runtime.MemStats
	runtime.ReadMemStats(&after)

	fmt.Fprintf(out, "--- profile ---\n")
	fmt.Fprintf(out, "wall time:    %s\n", elapsed.Round(time.Microsecond))
	fmt.Fprintf(out, "allocations:  %d objects (%s)\n",
		after.Mallocs-before.Mallocs, byteCount(after.TotalAlloc-before.TotalAlloc))
	fmt.Fprintf(out, "gc cycles:    %d\n", after.NumGC-before.NumGC)
	if err != nil {
		fmt.Fprintf(out, "outcome:      error\n")
	} else {
		fmt.Fprintf(out, "outcome:      ok\n")
	}

	return err
}

func byteCount(n uint64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
