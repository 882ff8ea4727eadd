// Copyright 2026 The Facade Authors
// SPDX-License-Identifier: Apache-2.0

// Package cmdtree assembles a target object's exposed methods into a
// command tree and dispatches parsed invocations back into live
// method calls.
//
// [New] enumerates the target's methods in name order, derives one
// subcommand per documented method via [grammar.Build], and injects a
// synthetic help subcommand. [Tree.Execute] matches command-line
// tokens against the tree, parses the selected subcommand's grammar,
// and reconstructs the call: ordered positionals, coerced variadic
// tail, and the keyword mapping with the keyword-bag re-parsed as a
// throwaway nested grammar.
//
// When a user types an unknown subcommand or flag, the tree computes
// Levenshtein edit distance against all known names and suggests the
// closest match (threshold: distance <= 3). This is implemented in
// suggest.go.
package cmdtree
