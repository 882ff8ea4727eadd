// Copyright 2026 The Facade Authors
// SPDX-License-Identifier: Apache-2.0

package grammar

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/facade-works/facade/lib/cmderr"
	"github.com/facade-works/facade/lib/coerce"
)

// Result is the parsed invocation for one method: a destination-to-
// value mapping (flags and positionals, line-level coerced), the raw
// keyword-bag tokens, and whether help was requested.
type Result struct {
	// Values maps parameter names to parsed values. Flags that were
	// not set carry their declared default.
	Values map[string]any

	// Extra holds the verbatim --key=value / --flag tokens destined
	// for the keyword-bag. Empty unless the method declares one.
	Extra []string

	// Help is true when the user asked for this command's help.
	Help bool
}

// Parse matches command-line tokens against the grammar. Any
// malformed input (unknown flag, missing positional, unparseable
// value) is a usage error; the method behind the grammar must not be
// invoked after one.
func (g *Grammar) Parse(args []string) (*Result, error) {
	flagSet := pflag.NewFlagSet(g.Name, pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	help := flagSet.BoolP("help", "h", false, "show help")

	// One shared value per flag: alias spellings all write the same
	// destination.
	values := make(map[string]flagValue, len(g.Flags))
	for _, flag := range g.Flags {
		value := newFlagValue(flag)
		values[flag.Dest] = value
		for _, spelling := range flag.Spellings {
			registered := flagSet.VarPF(value, spelling, "", flag.Help)
			if flag.Kind == FlagSwitch {
				registered.NoOptDefVal = "true"
			}
		}
	}

	// Tokens spelled like flags but unknown to the set belong to the
	// keyword-bag when the method has one. Without a bag they stay in
	// place and surface as ordinary unknown-flag errors.
	var extra []string
	if g.KeywordBag != "" {
		args, extra = g.splitKeywordTokens(args, flagSet)
	}

	if err := flagSet.Parse(args); err != nil {
		return nil, cmderr.Usage("%s: %s", g.Name, err)
	}

	result := &Result{
		Values: make(map[string]any, len(g.Flags)+len(g.Positionals)),
		Extra:  extra,
		Help:   *help,
	}
	if result.Help {
		return result, nil
	}

	for _, flag := range g.Flags {
		value := values[flag.Dest]
		if value.isSet() {
			result.Values[flag.Dest] = value.get()
		} else {
			result.Values[flag.Dest] = flag.Default
		}
	}

	positionals := flagSet.Args()
	for _, slot := range g.Positionals {
		if len(positionals) == 0 {
			return nil, cmderr.Usage("%s: missing required argument %q", g.Name, slot.Name)
		}
		result.Values[slot.Name] = coerce.Value(positionals[0])
		positionals = positionals[1:]
	}

	switch {
	case g.Variadic != "":
		tail := make([]any, len(positionals))
		for i, token := range positionals {
			tail[i] = coerce.Value(token)
		}
		result.Values[g.Variadic] = tail
	case len(positionals) > 0:
		return nil, cmderr.Usage("%s: unexpected argument %q", g.Name, positionals[0])
	}

	return result, nil
}

// splitKeywordTokens separates tokens whose long name the flag set
// does not define. Only the --key=value and bare --flag forms are
// routed to the bag; a recognized flag's separate value token stays
// with the flag.
func (g *Grammar) splitKeywordTokens(args []string, flagSet *pflag.FlagSet) (rest, extra []string) {
	for _, arg := range args {
		if strings.HasPrefix(arg, "--") && arg != "--" {
			key := strings.TrimPrefix(arg, "--")
			if index := strings.IndexByte(key, '='); index >= 0 {
				key = key[:index]
			}
			if flagSet.Lookup(key) == nil {
				extra = append(extra, arg)
				continue
			}
		}
		rest = append(rest, arg)
	}
	return rest, extra
}

// flagValue is the common shape of the pflag.Value implementations
// below: each records whether it was explicitly set so defaults can
// be distinguished from user input.
type flagValue interface {
	pflag.Value
	isSet() bool
	get() any
}

func newFlagValue(flag Flag) flagValue {
	switch flag.Kind {
	case FlagSwitch, FlagBool:
		return &boolValue{}
	case FlagInt:
		return &intValue{}
	default:
		return &coercedValue{}
	}
}

// coercedValue holds one generically coerced value.
type coercedValue struct {
	value any
	set   bool
}

func (v *coercedValue) Set(raw string) error {
	v.value = coerce.Value(raw)
	v.set = true
	return nil
}

func (v *coercedValue) String() string {
	if !v.set {
		return ""
	}
	return fmt.Sprint(v.value)
}

func (v *coercedValue) Type() string { return "value" }
func (v *coercedValue) isSet() bool  { return v.set }
func (v *coercedValue) get() any     { return v.value }

// boolValue holds a boolean flag value. Used both for switches
// (NoOptDefVal supplies "true") and for one-argument boolean flags.
type boolValue struct {
	value bool
	set   bool
}

func (v *boolValue) Set(raw string) error {
	parsed, err := strconv.ParseBool(strings.ToLower(raw))
	if err != nil {
		return fmt.Errorf("invalid boolean %q", raw)
	}
	v.value = parsed
	v.set = true
	return nil
}

func (v *boolValue) String() string { return strconv.FormatBool(v.value) }
func (v *boolValue) Type() string   { return "bool" }
func (v *boolValue) isSet() bool    { return v.set }
func (v *boolValue) get() any       { return v.value }

// intValue holds an integer flag value.
type intValue struct {
	value int
	set   bool
}

func (v *intValue) Set(raw string) error {
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid integer %q", raw)
	}
	v.value = parsed
	v.set = true
	return nil
}

func (v *intValue) String() string { return strconv.Itoa(v.value) }
func (v *intValue) Type() string   { return "int" }
func (v *intValue) isSet() bool    { return v.set }
func (v *intValue) get() any       { return v.value }
