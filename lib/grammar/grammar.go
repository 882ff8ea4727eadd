// Copyright 2026 The Facade Authors
// SPDX-License-Identifier: Apache-2.0

// Package grammar synthesizes a command grammar from a method's call
// signature: required positionals from the parameters before the
// first default, optional flags (with inferred types) from the rest,
// plus at most one variadic catch-all and one keyword-bag slot.
//
// A grammar compiles to a [pflag.FlagSet] for parsing; positional and
// keyword-bag bookkeeping sit on top of it.
package grammar

import (
	"strings"

	"github.com/facade-works/facade/lib/docmodel"
	"github.com/facade-works/facade/lib/introspect"
)

// FlagKind is the inferred behavior of an optional flag, derived from
// its parameter's default value.
type FlagKind int

const (
	// FlagSwitch is a zero-argument boolean that becomes true when
	// present. Inferred from a default of false.
	FlagSwitch FlagKind = iota

	// FlagBool takes one argument parsed as a boolean. Inferred from
	// any boolean default other than false.
	FlagBool

	// FlagInt takes one argument parsed as an integer.
	FlagInt

	// FlagCoerced takes one argument run through the generic
	// coercion rules.
	FlagCoerced
)

// Positional is one required positional slot.
type Positional struct {
	// Name is the parameter name (underscored form, the dispatch
	// destination).
	Name string

	// Help is the descriptive text from the documentation comment,
	// or "" when the parameter is undocumented.
	Help string
}

// Flag is one optional flag.
type Flag struct {
	// Dest is the destination parameter name (underscored form).
	Dest string

	// Spellings are the hyphenated long names. Usually one entry; a
	// parameter like "force_or_f" expands to multiple spellings all
	// bound to Dest.
	Spellings []string

	// Kind is the inferred flag behavior.
	Kind FlagKind

	// Default is the declared default value.
	Default any

	// Help is the descriptive text, or "".
	Help string
}

// Grammar is the synthesized command grammar for one method.
type Grammar struct {
	// Name is the subcommand name (method name, hyphenated).
	Name string

	// Summary is the documentation summary, or "".
	Summary string

	Positionals []Positional
	Flags       []Flag

	// Variadic is the name of the zero-or-more catch-all slot, or "".
	Variadic string

	// KeywordBag is the name of the trailing keyword slot, or "".
	// Its tokens are captured verbatim; coercion is deferred to
	// dispatch.
	KeywordBag string
}

// Build synthesizes the grammar for a method. doc may be nil; missing
// help text is simply omitted, never fatal.
func Build(method introspect.Method, doc *docmodel.Model) *Grammar {
	g := &Grammar{
		Name:       CommandName(method.Name()),
		Variadic:   method.Variadic(),
		KeywordBag: method.KeywordBag(),
	}
	if doc != nil {
		g.Summary = doc.Summary
	}

	for _, param := range method.Params() {
		if !param.HasDefault {
			g.Positionals = append(g.Positionals, Positional{
				Name: param.Name,
				Help: paramHelp(doc, param.Name),
			})
			continue
		}
		g.Flags = append(g.Flags, Flag{
			Dest:      param.Name,
			Spellings: flagSpellings(param.Name),
			Kind:      inferKind(param.Default),
			Default:   param.Default,
			Help:      paramHelp(doc, param.Name),
		})
	}
	return g
}

// CommandName translates a method name to its command-line form by
// replacing underscores with hyphens.
func CommandName(method string) string {
	return strings.ReplaceAll(method, "_", "-")
}

// flagSpellings derives the long-name spellings for a parameter:
// underscores become hyphens, and an "_or_"-joined alias group splits
// into one spelling per alias, all bound to the same destination.
func flagSpellings(param string) []string {
	parts := strings.Split(param, "_or_")
	spellings := make([]string, len(parts))
	for i, part := range parts {
		spellings[i] = strings.ReplaceAll(part, "_", "-")
	}
	return spellings
}

// inferKind applies the type inference rule: false means a switch,
// any other boolean takes a boolean argument, an integer default
// takes an integer argument, and everything else falls back to the
// generic coercion rules.
func inferKind(defaultValue any) FlagKind {
	switch v := defaultValue.(type) {
	case bool:
		if !v {
			return FlagSwitch
		}
		return FlagBool
	case int:
		return FlagInt
	default:
		return FlagCoerced
	}
}

func paramHelp(doc *docmodel.Model, name string) string {
	if doc == nil {
		return ""
	}
	return doc.Params[name]
}

// FlagSpellings returns every registered long name, used for
// "did you mean" suggestions on unknown flags.
func (g *Grammar) FlagSpellings() []string {
	var names []string
	for _, flag := range g.Flags {
		names = append(names, flag.Spellings...)
	}
	return names
}
