// Copyright 2026 The Facade Authors
// SPDX-License-Identifier: Apache-2.0

package cmdtree

import (
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/facade-works/facade/lib/cmderr"
	"github.com/facade-works/facade/lib/docmodel"
	"github.com/facade-works/facade/lib/grammar"
	"github.com/facade-works/facade/lib/helpfmt"
	"github.com/facade-works/facade/lib/introspect"
)

// Command is one subcommand of the assembled tree.
type Command struct {
	// Name is the subcommand name (method name, hyphenated).
	Name string

	// Summary is the method's documentation summary.
	Summary string

	// Grammar is the synthesized argument grammar. Nil for the
	// synthetic help command.
	Grammar *grammar.Grammar

	// Method is the bound method, or nil for the synthetic help
	// command.
	Method introspect.Method
}

// Options configures tree assembly.
type Options struct {
	// Name is the top-level program name used in usage text.
	Name string

	// Deprecated is the set of obsolete command identifiers
	// (hyphenated form) suppressed from rendered help. Deprecated
	// subcommands remain dispatchable.
	Deprecated map[string]bool

	// Width returns the help layout width. Nil means live terminal
	// columns minus the standard margin, recomputed per render.
	Width func() int

	// Logger receives dispatch diagnostics. Nil means [NewLogger].
	Logger *slog.Logger

	// Output receives rendered help. Nil means os.Stderr.
	Output io.Writer
}

// Tree is the assembled command tree for one target object. Built
// once per invocation and never persisted.
type Tree struct {
	name        string
	description string
	commands    []*Command
	deprecated  map[string]bool
	width       func() int
	logger      *slog.Logger
	out         io.Writer
}

// New enumerates the target's exposed methods in name order, builds
// one subcommand per documented method (undocumented methods are
// silently skipped), and inserts the synthetic help subcommand at its
// alphabetical position. The help subcommand is present exactly once
// even when every method name sorts before "help".
func New(target introspect.Target, opts Options) *Tree {
	t := &Tree{
		name:       opts.Name,
		deprecated: opts.Deprecated,
		width:      opts.Width,
		logger:     opts.Logger,
		out:        opts.Output,
	}
	if t.name == "" {
		t.name = "facade"
	}
	if t.width == nil {
		t.width = func() int { return helpfmt.TerminalWidth() - helpfmt.Margin }
	}
	if t.logger == nil {
		t.logger = NewLogger()
	}
	if t.out == nil {
		t.out = os.Stderr
	}

	if doc := docmodel.Parse(target.Doc()); doc != nil {
		t.description = doc.Summary
	}

	methods := target.Methods()
	sort.Slice(methods, func(i, j int) bool { return methods[i].Name() < methods[j].Name() })

	helpInserted := false
	for _, method := range methods {
		doc := docmodel.Parse(method.Doc())
		if doc == nil {
			t.logger.Debug("skipping undocumented method", "method", method.Name())
			continue
		}
		name := grammar.CommandName(method.Name())
		if !helpInserted && name > "help" {
			t.commands = append(t.commands, helpCommand())
			helpInserted = true
		}
		t.commands = append(t.commands, &Command{
			Name:    name,
			Summary: doc.Summary,
			Grammar: grammar.Build(method, doc),
			Method:  method,
		})
	}
	if !helpInserted {
		t.commands = append(t.commands, helpCommand())
	}

	return t
}

// helpCommand builds the synthetic help subcommand. It carries no
// method: dispatch re-invokes the parser with a forced help flag.
func helpCommand() *Command {
	return &Command{
		Name:    "help",
		Summary: "Show help for a subcommand",
	}
}

// Commands returns the assembled subcommands in display order.
func (t *Tree) Commands() []*Command {
	return t.commands
}

// Execute matches args against the tree and performs exactly one
// method invocation (the help path short-circuits before any call).
func (t *Tree) Execute(args []string) error {
	if len(args) == 0 {
		t.printTopHelp()
		return cmderr.Usage("subcommand required")
	}
	if isHelpFlag(args[0]) {
		t.printTopHelp()
		return nil
	}
	if strings.HasPrefix(args[0], "-") {
		t.printTopHelp()
		return cmderr.Usage("subcommand required (got flag %q)", args[0])
	}

	command := t.lookup(args[0])
	if command == nil {
		if suggestion := suggestCommand(args[0], t.commands); suggestion != "" {
			return cmderr.Usage("unknown command %q (did you mean %q?)\n\nRun '%s help' for usage.",
				args[0], suggestion, t.name)
		}
		return cmderr.Usage("unknown command %q\n\nRun '%s help' for usage.", args[0], t.name)
	}

	// The synthetic help command treats its remainder as a target
	// subcommand name and re-runs parsing with a forced help flag.
	// It never calls a real method.
	if command.Method == nil {
		if len(args) > 1 {
			return t.Execute(append(args[1:], "--help"))
		}
		t.printTopHelp()
		return nil
	}

	result, err := command.Grammar.Parse(args[1:])
	if err != nil {
		if suggestion := suggestFlag(args[1:], command.Grammar.FlagSpellings()); suggestion != "" {
			return cmderr.Usage("%s (did you mean %s?)\n\nRun '%s %s --help' for usage.",
				err, suggestion, t.name, command.Name)
		}
		return err
	}
	if result.Help {
		t.printCommandHelp(command)
		return nil
	}

	return t.dispatch(command, result)
}

// lookup resolves a subcommand by name. Deprecated commands resolve
// normally; the deny-list only affects help rendering.
func (t *Tree) lookup(name string) *Command {
	for _, command := range t.commands {
		if command.Name == name {
			return command
		}
	}
	return nil
}

func (t *Tree) formatter() *helpfmt.Formatter {
	return helpfmt.New(t.width(), t.deprecated)
}

func (t *Tree) printTopHelp() {
	f := t.formatter()

	if t.description != "" {
		io.WriteString(t.out, t.description+"\n\n")
	}
	io.WriteString(t.out, "Usage:\n  "+t.name+" "+helpfmt.Meta("", helpfmt.Dispatch)+"\n")

	entries := make([]helpfmt.Entry, 0, len(t.commands))
	for _, command := range t.commands {
		entries = append(entries, helpfmt.Entry{Invocation: command.Name, Help: command.Summary})
	}
	io.WriteString(t.out, "\nCommands:\n"+f.Subcommands(entries))
	io.WriteString(t.out, "\nRun '"+t.name+" help <subcommand>' for more information.\n")
}

func (t *Tree) printCommandHelp(command *Command) {
	f := t.formatter()
	io.WriteString(t.out, f.Command(t.name+" "+command.Name, command.Grammar))
}

// isHelpFlag returns true for the common help flag variants.
func isHelpFlag(arg string) bool {
	return arg == "-h" || arg == "--help"
}
