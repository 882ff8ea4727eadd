// Copyright 2026 The Facade Authors
// SPDX-License-Identifier: Apache-2.0

// Package docmodel derives a structured help model from a method's
// free-text documentation comment.
//
// The comment format is a summary block followed (optionally) by an
// INPUT: section listing per-parameter descriptions:
//
//	Greets someone by name.
//
//	INPUT:
//
//	- ``name`` -- who to greet; descriptive text may
//	  continue on indented lines
//	- ``loud`` -- shout instead of speaking
//
// Parsing is a small state machine (summary block, marker search,
// parameter block) rather than ad-hoc scanning: this is the most
// failure-prone part of the bridge and is isolated here for focused
// testing. Malformed sections degrade to missing help text; they are
// never fatal.
package docmodel

import (
	"regexp"
	"strings"
)

// Model is the structured form of one documentation comment.
type Model struct {
	// Summary is the first contiguous non-blank block of the comment,
	// space-joined, with the double-backtick quoting sequence
	// normalized to a plain double quote.
	Summary string

	// Params maps parameter names to their descriptive text. Only
	// populated when the comment carries an INPUT: section. A
	// parameter may legitimately be named "return"; the summary is
	// stored separately so the name never collides.
	Params map[string]string
}

// paramLine matches the start of a parameter entry: a dash, the name
// delimited by double backticks, a double-dash, then descriptive text.
var paramLine = regexp.MustCompile("^- ``([^`]+)`` -- ?(.*)$")

// Parse returns the help model for a documentation comment, or nil if
// the comment is empty or blank. A method with a nil model is not
// exposed as a subcommand.
func Parse(doc string) *Model {
	if strings.TrimSpace(doc) == "" {
		return nil
	}

	lines := dedent(trimBlankEdges(strings.Split(doc, "\n")))

	// Summary: every line up to the first blank line.
	var summary []string
	rest := lines
	for len(rest) > 0 && strings.TrimSpace(rest[0]) != "" {
		summary = append(summary, strings.TrimSpace(rest[0]))
		rest = rest[1:]
	}

	model := &Model{
		Summary: strings.ReplaceAll(strings.Join(summary, " "), "``", `"`),
		Params:  map[string]string{},
	}

	// Marker search: the parameter block starts after a line exactly
	// equal to "INPUT:". Without the marker only the summary is set.
	for len(rest) > 0 && rest[0] != "INPUT:" {
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return model
	}

	// Parameter block. A matching dash line opens an entry, indented
	// non-blank lines continue it, a blank line closes it, and any
	// other non-indented line ends the scan.
	current := ""
	for _, line := range rest[1:] {
		switch {
		case paramLine.MatchString(line):
			match := paramLine.FindStringSubmatch(line)
			current = match[1]
			model.Params[current] = strings.TrimSpace(match[2])
		case strings.TrimSpace(line) == "":
			current = ""
		case line[0] == ' ' || line[0] == '\t':
			if current != "" {
				model.Params[current] += " " + strings.TrimSpace(line)
			}
		default:
			return model
		}
	}
	return model
}

// trimBlankEdges removes leading and trailing blank lines.
func trimBlankEdges(lines []string) []string {
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	end := len(lines)
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}

// dedent strips the common leading whitespace shared by all non-blank
// lines, so the model is independent of how deeply the comment was
// indented in its source.
func dedent(lines []string) []string {
	prefix := ""
	first := true
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if first {
			prefix = indent
			first = false
			continue
		}
		for !strings.HasPrefix(line, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	if prefix == "" {
		return lines
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.TrimPrefix(line, prefix)
	}
	return out
}
