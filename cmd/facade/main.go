// Copyright 2026 The Facade Authors
// SPDX-License-Identifier: Apache-2.0

// The facade binary bridges the demo workbench object into a
// command-line interface. Every documented workbench method becomes a
// subcommand; run "facade help" to see them.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/facade-works/facade/lib/cmdtree"
	"github.com/facade-works/facade/lib/config"
	"github.com/facade-works/facade/lib/helpfmt"
	"github.com/facade-works/facade/lib/profile"
)

func main() {
	if err := run(); err != nil {
		// Methods that print their own output return an ExitError
		// with the desired exit code. Don't print a redundant
		// "error:" line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	args, profiling := stripProfile(os.Args[1:])

	workbench, err := newWorkbench()
	if err != nil {
		printUnavailable()
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	tree := cmdtree.New(workbench, cmdtree.Options{
		Name:       "facade",
		Deprecated: cfg.DeprecatedSet(),
		Width: func() int {
			return helpfmt.TerminalWidth() - cfg.Margin
		},
	})

	dispatch := func() error { return tree.Execute(args) }
	if profiling {
		return profile.Wrap(os.Stderr, dispatch)
	}
	return dispatch()
}

// stripProfile removes every --profile token from argv. Its presence
// anywhere on the command line enables instrumentation around the
// dispatch call.
func stripProfile(args []string) ([]string, bool) {
	found := false
	kept := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "--profile" {
			found = true
			continue
		}
		kept = append(kept, arg)
	}
	return kept, found
}

// printUnavailable reports that the workbench cannot be constructed.
// This is a deliberate "feature unavailable" notice, not a failure:
// the caller exits with status 0 and no stack trace.
func printUnavailable() {
	fmt.Println("The facade workbench is not available in this environment.")
	fmt.Println()
	fmt.Println("The workbench keeps its notes under your home directory, and no")
	fmt.Println("home directory could be resolved for the current user. Set HOME")
	fmt.Println("to a writable directory and try again.")
}
