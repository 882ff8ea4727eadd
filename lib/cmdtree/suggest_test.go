// Copyright 2026 The Facade Authors
// SPDX-License-Identifier: Apache-2.0

package cmdtree

import "testing"

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"greet", "greet", 0},
		{"gret", "greet", 1},
		{"grete", "greet", 2},
		{"sum", "connect", 7},
	}
	for _, test := range tests {
		if got := levenshtein(test.a, test.b); got != test.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}

func TestSuggestCommand(t *testing.T) {
	commands := []*Command{
		{Name: "greet"},
		{Name: "connect"},
		{Name: "legacy-sync"},
	}

	tests := []struct {
		unknown string
		want    string
	}{
		{"gret", "greet"},
		{"conect", "connect"},
		{"legacy_sync", "legacy-sync"},
		{"frobnicate", ""},
	}
	for _, test := range tests {
		if got := suggestCommand(test.unknown, commands); got != test.want {
			t.Errorf("suggestCommand(%q) = %q, want %q", test.unknown, got, test.want)
		}
	}
}

func TestSuggestFlag(t *testing.T) {
	defined := []string{"loud", "port", "pin", "p"}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"typo", []string{"Ada", "--lodu"}, "--loud"},
		{"typo with value", []string{"--prot=22"}, "--port"},
		{"defined flag skipped", []string{"--loud", "--prot"}, "--port"},
		{"help never suggested against", []string{"--help"}, ""},
		{"nothing close", []string{"--weightlessness"}, ""},
		{"no flags at all", []string{"Ada"}, ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := suggestFlag(test.args, defined); got != test.want {
				t.Errorf("suggestFlag(%v) = %q, want %q", test.args, got, test.want)
			}
		})
	}
}
