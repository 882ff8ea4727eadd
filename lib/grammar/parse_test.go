// Copyright 2026 The Facade Authors
// SPDX-License-Identifier: Apache-2.0

package grammar

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/facade-works/facade/lib/cmderr"
	"github.com/facade-works/facade/lib/introspect"
)

func greetGrammar() *Grammar {
	return Build(method(introspect.MethodSpec{
		MethodName: "greet",
		Parameters: []introspect.Param{
			{Name: "name"},
			{Name: "loud", Default: false, HasDefault: true},
		},
	}), nil)
}

func TestParse_PositionalAndSwitch(t *testing.T) {
	result, err := greetGrammar().Parse([]string{"Ada", "--loud"})
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	want := map[string]any{"name": "Ada", "loud": true}
	if diff := cmp.Diff(want, result.Values); diff != "" {
		t.Errorf("Values mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_SwitchAbsentKeepsDefault(t *testing.T) {
	result, err := greetGrammar().Parse([]string{"Ada"})
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if result.Values["loud"] != false {
		t.Errorf("loud = %#v, want false", result.Values["loud"])
	}
}

func TestParse_SwitchTakesNoArgument(t *testing.T) {
	// "--loud Ada": the switch must not consume "Ada", which is the
	// required positional.
	result, err := greetGrammar().Parse([]string{"--loud", "Ada"})
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if result.Values["name"] != "Ada" {
		t.Errorf("name = %#v, want %q", result.Values["name"], "Ada")
	}
	if result.Values["loud"] != true {
		t.Errorf("loud = %#v, want true", result.Values["loud"])
	}
}

func TestParse_MissingPositional(t *testing.T) {
	_, err := greetGrammar().Parse(nil)
	if err == nil {
		t.Fatal("Parse() = nil, want error for missing positional")
	}
	if !cmderr.IsUsage(err) {
		t.Errorf("error %v is not a usage error", err)
	}
	if !strings.Contains(err.Error(), "name") {
		t.Errorf("error = %q, should name the missing argument", err)
	}
}

func TestParse_UnexpectedArgument(t *testing.T) {
	_, err := greetGrammar().Parse([]string{"Ada", "Lovelace"})
	if err == nil {
		t.Fatal("Parse() = nil, want error for extra positional")
	}
	if !cmderr.IsUsage(err) {
		t.Errorf("error %v is not a usage error", err)
	}
}

func TestParse_IntFlag(t *testing.T) {
	g := Build(method(introspect.MethodSpec{
		MethodName: "connect",
		Parameters: []introspect.Param{
			{Name: "host"},
			{Name: "port", Default: 22, HasDefault: true},
		},
	}), nil)

	result, err := g.Parse([]string{"example.com", "--port=2222"})
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if result.Values["port"] != 2222 {
		t.Errorf("port = %#v, want 2222", result.Values["port"])
	}

	result, err = g.Parse([]string{"example.com"})
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if result.Values["port"] != 22 {
		t.Errorf("port = %#v, want default 22", result.Values["port"])
	}

	if _, err := g.Parse([]string{"example.com", "--port=abc"}); err == nil {
		t.Error("Parse() = nil, want error for non-integer value")
	}
}

func TestParse_BoolFlagRequiresArgument(t *testing.T) {
	g := Build(method(introspect.MethodSpec{
		MethodName: "build",
		Parameters: []introspect.Param{
			{Name: "cache", Default: true, HasDefault: true},
		},
	}), nil)

	result, err := g.Parse([]string{"--cache=false"})
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if result.Values["cache"] != false {
		t.Errorf("cache = %#v, want false", result.Values["cache"])
	}

	if _, err := g.Parse([]string{"--cache=maybe"}); err == nil {
		t.Error("Parse() = nil, want error for non-boolean value")
	}
}

func TestParse_CoercedFlag(t *testing.T) {
	g := Build(method(introspect.MethodSpec{
		MethodName: "render",
		Parameters: []introspect.Param{
			{Name: "mode", Default: "auto", HasDefault: true},
		},
	}), nil)

	tests := []struct {
		arg  string
		want any
	}{
		{"--mode=fast", "fast"},
		{"--mode=3", 3},
		{"--mode=none", nil},
	}
	for _, test := range tests {
		result, err := g.Parse([]string{test.arg})
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", test.arg, err)
		}
		if result.Values["mode"] != test.want {
			t.Errorf("Parse(%q): mode = %#v, want %#v", test.arg, result.Values["mode"], test.want)
		}
	}
}

func TestParse_AliasSpellingsShareDestination(t *testing.T) {
	g := Build(method(introspect.MethodSpec{
		MethodName: "note",
		Parameters: []introspect.Param{
			{Name: "pin_or_p", Default: false, HasDefault: true},
		},
	}), nil)

	for _, arg := range []string{"--pin", "--p"} {
		result, err := g.Parse([]string{arg})
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", arg, err)
		}
		if result.Values["pin_or_p"] != true {
			t.Errorf("Parse(%q): pin_or_p = %#v, want true", arg, result.Values["pin_or_p"])
		}
	}
}

func TestParse_VariadicCoercesTail(t *testing.T) {
	g := Build(method(introspect.MethodSpec{
		MethodName:   "sum",
		VariadicName: "values",
	}), nil)

	result, err := g.Parse([]string{"1", "2", "true", "x"})
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	want := []any{1, 2, true, "x"}
	if diff := cmp.Diff(want, result.Values["values"]); diff != "" {
		t.Errorf("variadic mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_KeywordBagCapturesUnknownFlags(t *testing.T) {
	g := Build(method(introspect.MethodSpec{
		MethodName: "connect",
		Parameters: []introspect.Param{
			{Name: "host"},
			{Name: "port", Default: 22, HasDefault: true},
		},
		KeywordBagName: "opts",
	}), nil)

	result, err := g.Parse([]string{"example.com", "--port=2222", "--timeout=5", "--insecure"})
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if result.Values["port"] != 2222 {
		t.Errorf("port = %#v, want 2222", result.Values["port"])
	}
	want := []string{"--timeout=5", "--insecure"}
	if diff := cmp.Diff(want, result.Extra); diff != "" {
		t.Errorf("Extra mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_UnknownFlagWithoutBagIsError(t *testing.T) {
	_, err := greetGrammar().Parse([]string{"Ada", "--volume=11"})
	if err == nil {
		t.Fatal("Parse() = nil, want unknown flag error")
	}
	if !cmderr.IsUsage(err) {
		t.Errorf("error %v is not a usage error", err)
	}
}

func TestParse_HelpFlag(t *testing.T) {
	// Help short-circuits before positional checks: "greet --help"
	// must not complain about the missing name.
	result, err := greetGrammar().Parse([]string{"--help"})
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if !result.Help {
		t.Error("Help = false, want true")
	}
}
