// Copyright 2026 The Facade Authors
// SPDX-License-Identifier: Apache-2.0

// Package introspect defines the boundary between the bridge and the
// object it exposes. The bridge never reflects over concrete types;
// instead the target describes itself through [Target] and [Method],
// and the rest of the system depends only on that capability.
package introspect

// Target is an object whose callable attributes become subcommands.
// The bridge reads the target; it never mutates it.
type Target interface {
	// Doc returns the target's own documentation comment. Its summary
	// becomes the top-level command description.
	Doc() string

	// Methods returns every exposed method. Order is not significant;
	// the assembler sorts by name.
	Methods() []Method
}

// Method is one exposed callable of a [Target].
type Method interface {
	// Name is the declared method name. Word separators (underscores)
	// are translated to hyphens to form the subcommand name.
	Name() string

	// Doc returns the method's documentation comment, or "" if the
	// method has none. Undocumented methods are not exposed.
	Doc() string

	// Params returns the ordered parameter list, excluding any
	// receiver, variadic, or keyword-bag parameter.
	Params() []Param

	// Variadic returns the name of the variadic parameter, or "" if
	// the method has none.
	Variadic() string

	// KeywordBag returns the name of the keyword-bag parameter (the
	// one collecting arbitrary extra named arguments), or "".
	KeywordBag() string

	// Invoke calls the method with the assembled positional arguments
	// and keyword mapping. Errors propagate to the caller unmodified.
	Invoke(args []any, kwargs map[string]any) (any, error)
}

// Param is a single declared parameter.
//
// Defaults are suffix-aligned: once a parameter carries a default,
// every parameter after it must too. The grammar builder partitions
// at the first default.
type Param struct {
	// Name is the parameter name as declared (underscored form).
	Name string

	// Default is the declared default value. Only meaningful when
	// HasDefault is true.
	Default any

	// HasDefault reports whether the parameter has a default and is
	// therefore an optional flag rather than a required positional.
	HasDefault bool
}
