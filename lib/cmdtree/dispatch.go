// Copyright 2026 The Facade Authors
// SPDX-License-Identifier: Apache-2.0

package cmdtree

import (
	"github.com/facade-works/facade/lib/cmderr"
	"github.com/facade-works/facade/lib/coerce"
	"github.com/facade-works/facade/lib/grammar"
)

// dispatch reconstructs the method call from a parse result: the
// ordered positional list, the coerced variadic tail, and the keyword
// mapping (declared optional flags merged with the re-parsed
// keyword-bag). The method is never invoked with an incomplete call;
// every failure before Invoke is a usage or internal error.
func (t *Tree) dispatch(command *Command, result *grammar.Result) error {
	g := command.Grammar
	values := result.Values

	args := make([]any, 0, len(g.Positionals))
	for _, slot := range g.Positionals {
		value, ok := values[slot.Name]
		if !ok {
			return cmderr.Internal("%s: positional %q missing from parse result", command.Name, slot.Name)
		}
		delete(values, slot.Name)
		args = append(args, coerce.Any(value))
	}

	if g.Variadic != "" {
		if tail, ok := values[g.Variadic].([]any); ok {
			for _, value := range tail {
				args = append(args, coerce.Any(value))
			}
		}
		delete(values, g.Variadic)
	}

	kwargs := make(map[string]any, len(values)+len(result.Extra))
	for dest, value := range values {
		kwargs[dest] = coerce.Any(value)
	}
	if g.KeywordBag != "" {
		keywords, err := grammar.Keywords(command.Name, result.Extra)
		if err != nil {
			return err
		}
		for key, value := range keywords {
			kwargs[key] = value
		}
	}

	t.logger.Debug("dispatching", "command", command.Name,
		"positionals", len(args), "keywords", len(kwargs))

	// Method failures propagate unmodified; the bridge does not
	// reinterpret them.
	value, err := command.Method.Invoke(args, kwargs)
	if err != nil {
		return err
	}
	if value != nil {
		t.logger.Debug("method returned", "command", command.Name, "value", value)
	}
	return nil
}
