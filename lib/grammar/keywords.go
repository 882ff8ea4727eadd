// Copyright 2026 The Facade Authors
// SPDX-License-Identifier: Apache-2.0

package grammar

import (
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/facade-works/facade/lib/cmderr"
)

// Keywords re-parses the captured keyword-bag tokens through a
// throwaway grammar built from the literal keys observed: each key
// becomes a generically coerced optional flag. The grammar is scoped
// to this one invocation and never cached.
//
// A bare --flag token coerces to true. Any token not shaped like
// --key or --key=value is a usage error; no partial result is
// returned.
func Keywords(command string, tokens []string) (map[string]any, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	flagSet := pflag.NewFlagSet(command+" keywords", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	values := make(map[string]*coercedValue, len(tokens))
	for _, token := range tokens {
		if !strings.HasPrefix(token, "--") || token == "--" {
			return nil, cmderr.Usage("%s: keyword arguments must be spelled --key=value, got %q", command, token)
		}
		key := strings.TrimPrefix(token, "--")
		if index := strings.IndexByte(key, '='); index >= 0 {
			key = key[:index]
		}
		if key == "" {
			return nil, cmderr.Usage("%s: empty keyword in %q", command, token)
		}
		if _, seen := values[key]; seen {
			continue
		}
		value := &coercedValue{}
		values[key] = value
		registered := flagSet.VarPF(value, key, "", "")
		registered.NoOptDefVal = "true"
	}

	if err := flagSet.Parse(tokens); err != nil {
		return nil, cmderr.Usage("%s: %s", command, err)
	}

	keywords := make(map[string]any, len(values))
	for key, value := range values {
		if value.set {
			keywords[key] = value.value
		}
	}
	return keywords, nil
}
