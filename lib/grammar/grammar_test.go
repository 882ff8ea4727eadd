// Copyright 2026 The Facade Authors
// SPDX-License-Identifier: Apache-2.0

package grammar

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/facade-works/facade/lib/docmodel"
	"github.com/facade-works/facade/lib/introspect"
)

func method(spec introspect.MethodSpec) introspect.Method { return spec }

func TestBuild_PartitionsAtFirstDefault(t *testing.T) {
	g := Build(method(introspect.MethodSpec{
		MethodName: "copy_file",
		Parameters: []introspect.Param{
			{Name: "source"},
			{Name: "destination"},
			{Name: "overwrite", Default: false, HasDefault: true},
		},
	}), nil)

	if g.Name != "copy-file" {
		t.Errorf("Name = %q, want %q", g.Name, "copy-file")
	}
	if len(g.Positionals) != 2 {
		t.Fatalf("Positionals = %+v, want 2 entries", g.Positionals)
	}
	if g.Positionals[0].Name != "source" || g.Positionals[1].Name != "destination" {
		t.Errorf("positional order = %+v", g.Positionals)
	}
	if len(g.Flags) != 1 || g.Flags[0].Dest != "overwrite" {
		t.Errorf("Flags = %+v, want one for overwrite", g.Flags)
	}
}

func TestBuild_AliasGroupExpansion(t *testing.T) {
	g := Build(method(introspect.MethodSpec{
		MethodName: "note",
		Parameters: []introspect.Param{
			{Name: "pin_or_p", Default: false, HasDefault: true},
		},
	}), nil)

	want := []string{"pin", "p"}
	if diff := cmp.Diff(want, g.Flags[0].Spellings); diff != "" {
		t.Errorf("Spellings mismatch (-want +got):\n%s", diff)
	}
	if g.Flags[0].Dest != "pin_or_p" {
		t.Errorf("Dest = %q, want the full parameter name", g.Flags[0].Dest)
	}
}

func TestBuild_HyphenatesFlagNames(t *testing.T) {
	g := Build(method(introspect.MethodSpec{
		MethodName: "sync",
		Parameters: []introspect.Param{
			{Name: "dry_run", Default: false, HasDefault: true},
		},
	}), nil)

	if got := g.Flags[0].Spellings[0]; got != "dry-run" {
		t.Errorf("spelling = %q, want %q", got, "dry-run")
	}
}

func TestBuild_TypeInference(t *testing.T) {
	tests := []struct {
		name         string
		defaultValue any
		want         FlagKind
	}{
		{"false is a switch", false, FlagSwitch},
		{"true takes a bool argument", true, FlagBool},
		{"int takes an int argument", 22, FlagInt},
		{"string falls back to coercion", "auto", FlagCoerced},
		{"nil falls back to coercion", nil, FlagCoerced},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g := Build(method(introspect.MethodSpec{
				MethodName: "m",
				Parameters: []introspect.Param{
					{Name: "x", Default: test.defaultValue, HasDefault: true},
				},
			}), nil)
			if g.Flags[0].Kind != test.want {
				t.Errorf("Kind = %v, want %v", g.Flags[0].Kind, test.want)
			}
		})
	}
}

func TestBuild_AttachesHelpFromDocModel(t *testing.T) {
	doc := docmodel.Parse(`
Copies a file.

INPUT:

- ` + "``source``" + ` -- the file to copy
- ` + "``overwrite``" + ` -- replace an existing destination
`)
	g := Build(method(introspect.MethodSpec{
		MethodName: "copy",
		Parameters: []introspect.Param{
			{Name: "source"},
			{Name: "overwrite", Default: false, HasDefault: true},
		},
	}), doc)

	if g.Summary != "Copies a file." {
		t.Errorf("Summary = %q", g.Summary)
	}
	if g.Positionals[0].Help != "the file to copy" {
		t.Errorf("positional help = %q", g.Positionals[0].Help)
	}
	if g.Flags[0].Help != "replace an existing destination" {
		t.Errorf("flag help = %q", g.Flags[0].Help)
	}
}

func TestBuild_UndocumentedParameterIsNotFatal(t *testing.T) {
	doc := docmodel.Parse("Summary.\n\nINPUT:\n\n- ``a`` -- documented\n")
	g := Build(method(introspect.MethodSpec{
		MethodName: "m",
		Parameters: []introspect.Param{{Name: "a"}, {Name: "b"}},
	}), doc)

	if g.Positionals[1].Help != "" {
		t.Errorf("undocumented positional help = %q, want empty", g.Positionals[1].Help)
	}
}

func TestBuild_VariadicAndKeywordBag(t *testing.T) {
	g := Build(method(introspect.MethodSpec{
		MethodName:     "run",
		VariadicName:   "extra",
		KeywordBagName: "opts",
	}), nil)

	if g.Variadic != "extra" || g.KeywordBag != "opts" {
		t.Errorf("Variadic = %q, KeywordBag = %q", g.Variadic, g.KeywordBag)
	}
}
