// Copyright 2026 The Facade Authors
// SPDX-License-Identifier: Apache-2.0

package introspect

// MethodSpec is a value-type [Method] implementation. Targets declare
// their methods as literals; the bridge never needs anything richer.
type MethodSpec struct {
	// MethodName is the declared name (underscored form).
	MethodName string

	// DocComment is the free-text documentation comment. Leave empty
	// to keep the method unexposed.
	DocComment string

	// Parameters is the ordered parameter list. Defaults must be
	// suffix-aligned (see [Param]).
	Parameters []Param

	// VariadicName names the parameter collecting extra positional
	// arguments, or "".
	VariadicName string

	// KeywordBagName names the parameter collecting arbitrary extra
	// named arguments, or "".
	KeywordBagName string

	// Func is the method body.
	Func func(args []any, kwargs map[string]any) (any, error)
}

func (s MethodSpec) Name() string       { return s.MethodName }
func (s MethodSpec) Doc() string        { return s.DocComment }
func (s MethodSpec) Params() []Param    { return s.Parameters }
func (s MethodSpec) Variadic() string   { return s.VariadicName }
func (s MethodSpec) KeywordBag() string { return s.KeywordBagName }

func (s MethodSpec) Invoke(args []any, kwargs map[string]any) (any, error) {
	return s.Func(args, kwargs)
}

// Object is a ready-made [Target] built from a doc comment and a list
// of method specs.
type Object struct {
	// DocComment describes the object itself; its summary becomes the
	// top-level help description.
	DocComment string

	// Specs are the exposed methods.
	Specs []MethodSpec
}

func (o *Object) Doc() string { return o.DocComment }

func (o *Object) Methods() []Method {
	methods := make([]Method, len(o.Specs))
	for i, spec := range o.Specs {
		methods[i] = spec
	}
	return methods
}
