// Copyright 2026 The Facade Authors
// SPDX-License-Identifier: Apache-2.0

// Package helpfmt renders command grammars as human-readable help
// text. The formatter is constructed with an explicit width; callers
// derive it from the live terminal geometry (see [TerminalWidth])
// minus a margin, and rebuild the formatter per render so resizes are
// honored across the process lifetime.
package helpfmt

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/facade-works/facade/lib/grammar"
)

// Margin is subtracted from the terminal column count to keep
// rendered lines clear of the right edge.
const Margin = 2

// fallbackWidth is used when no terminal is attached (pipes, tests).
const fallbackWidth = 80

// TerminalWidth returns the active terminal's column count, or a
// fixed fallback when stdout is not a terminal. Queried fresh on
// every call so a resized terminal is picked up by the next render.
func TerminalWidth() int {
	if cols, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && cols > 0 {
		return cols
	}
	return fallbackWidth
}

// Arity describes how a positional slot renders in usage text.
type Arity int

const (
	// One renders as the bare name: a single required value.
	One Arity = iota

	// Optional renders bracketed: [name].
	Optional

	// ZeroOrMore renders bracketed with an ellipsis: [name ...].
	ZeroOrMore

	// OneOrMore renders unbracketed with an ellipsis: name ...
	OneOrMore

	// Remainder renders as a literal "..." for a greedy trailing slot.
	Remainder

	// Dispatch renders as the literal "subcommand ..." so top-level
	// usage stays readable instead of enumerating every subcommand.
	Dispatch
)

// Meta renders one positional slot for a usage line.
func Meta(name string, arity Arity) string {
	switch arity {
	case Optional:
		return "[" + name + "]"
	case ZeroOrMore:
		return "[" + name + " ...]"
	case OneOrMore:
		return name + " ..."
	case Remainder:
		return "..."
	case Dispatch:
		return "subcommand ..."
	default:
		return name
	}
}

// Entry is one help line: an invocation and its descriptive text.
type Entry struct {
	Invocation string
	Help       string
}

// Formatter lays out help text bounded by a fixed width.
type Formatter struct {
	width      int
	deprecated map[string]bool
}

// New creates a formatter for the given width. deprecated is the
// externally maintained set of obsolete command identifiers
// (hyphenated form) suppressed from rendered subcommand listings; it
// may be nil.
func New(width int, deprecated map[string]bool) *Formatter {
	if width < 20 {
		width = 20
	}
	return &Formatter{width: width, deprecated: deprecated}
}

// Entries renders a block of invocation/help pairs. Invocations that
// fit the action column render inline with two spaces before the help
// text; longer ones take their own line with the help indented below.
// Entries with no help still emit their invocation line.
func (f *Formatter) Entries(entries []Entry) string {
	if len(entries) == 0 {
		return ""
	}

	const indent = 2
	limit := max(f.width-20, 12)
	actionWidth := 0
	for _, entry := range entries {
		if n := len(entry.Invocation); n > actionWidth && n <= limit {
			actionWidth = n
		}
	}
	if actionWidth == 0 {
		actionWidth = limit
	}
	helpColumn := indent + actionWidth + 2

	var b strings.Builder
	for _, entry := range entries {
		if entry.Help == "" {
			fmt.Fprintf(&b, "%*s%s\n", indent, "", entry.Invocation)
			continue
		}
		wrapped := wrap(entry.Help, f.width-helpColumn)
		if len(entry.Invocation) <= actionWidth {
			fmt.Fprintf(&b, "%*s%-*s  %s\n", indent, "", actionWidth, entry.Invocation, wrapped[0])
			wrapped = wrapped[1:]
		} else {
			fmt.Fprintf(&b, "%*s%s\n", indent, "", entry.Invocation)
		}
		for _, line := range wrapped {
			fmt.Fprintf(&b, "%*s%s\n", helpColumn, "", line)
		}
	}
	return b.String()
}

// Subcommands renders a subcommand listing, suppressing entries whose
// normalized name (underscores to hyphens) is deprecated. Suppressed
// subcommands remain dispatchable; they just never appear in help.
func (f *Formatter) Subcommands(entries []Entry) string {
	visible := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		name := strings.ReplaceAll(entry.Invocation, "_", "-")
		if f.deprecated[name] {
			continue
		}
		visible = append(visible, entry)
	}
	return f.Entries(visible)
}

// Command renders the full help text for one subcommand grammar.
func (f *Formatter) Command(path string, g *grammar.Grammar) string {
	var b strings.Builder

	if g.Summary != "" {
		b.WriteString(g.Summary + "\n\n")
	}

	b.WriteString("Usage:\n  " + path)
	if len(g.Flags) > 0 {
		b.WriteString(" [flags]")
	}
	for _, slot := range g.Positionals {
		b.WriteString(" " + Meta(slot.Name, One))
	}
	if g.Variadic != "" {
		b.WriteString(" " + Meta(g.Variadic, ZeroOrMore))
	}
	if g.KeywordBag != "" {
		b.WriteString(" [--key=value ...]")
	}
	b.WriteString("\n")

	if len(g.Positionals) > 0 || g.Variadic != "" {
		var entries []Entry
		for _, slot := range g.Positionals {
			entries = append(entries, Entry{Invocation: slot.Name, Help: slot.Help})
		}
		if g.Variadic != "" {
			entries = append(entries, Entry{Invocation: Meta(g.Variadic, ZeroOrMore)})
		}
		b.WriteString("\nArguments:\n" + f.Entries(entries))
	}

	if len(g.Flags) > 0 {
		entries := make([]Entry, 0, len(g.Flags))
		for _, flag := range g.Flags {
			entries = append(entries, Entry{Invocation: flagInvocation(flag), Help: flag.Help})
		}
		b.WriteString("\nFlags:\n" + f.Entries(entries))
	}

	return b.String()
}

// flagInvocation renders every spelling of a flag plus its argument
// type, e.g. "--port int" or "--force, --f".
func flagInvocation(flag grammar.Flag) string {
	names := make([]string, len(flag.Spellings))
	for i, spelling := range flag.Spellings {
		names[i] = "--" + spelling
	}
	invocation := strings.Join(names, ", ")
	switch flag.Kind {
	case grammar.FlagBool:
		invocation += " bool"
	case grammar.FlagInt:
		invocation += " int"
	case grammar.FlagCoerced:
		invocation += " value"
	}
	return invocation
}

// wrap greedily word-wraps text to the given width. Always returns at
// least one line.
func wrap(text string, width int) []string {
	if width < 10 {
		width = 10
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}
