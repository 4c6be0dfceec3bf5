/*
File   : willow/env/environment.go
Package: env
*/

// Package env implements Willow's lexically scoped environment chain,
// grounded on the teacher's scope.Scope (scope/scope.go): a map of
// bindings plus an Outer link, walked innermost-first on lookup.
//
// Unlike the teacher's Scope, Environment carries no Consts/LetVars/
// LetTypes bookkeeping — Willow bindings are always immutable once
// defined (spec Non-goals: no mutable assignment), so there is nothing to
// track beyond "is this name already bound in this scope".
package env

import "github.com/arana-dev/willow/values"

// Environment is one scope in the lexical chain. A nil Outer marks the
// global (root) scope.
type Environment struct {
	vars  map[string]values.Value
	Outer *Environment
}

// New creates a fresh Environment whose parent scope is outer (nil for a
// global/root scope).
func New(outer *Environment) *Environment {
	return &Environment{vars: make(map[string]values.Value), Outer: outer}
}

// Lookup walks the scope chain innermost-first and returns the value bound
// to name, or ok=false if name is unbound anywhere in the chain.
func (e *Environment) Lookup(name string) (values.Value, bool) {
	if v, ok := e.vars[name]; ok {
		return v, true
	}
	if e.Outer != nil {
		return e.Outer.Lookup(name)
	}
	return nil, false
}

// Define inserts name into the current scope only, overwriting any
// existing binding for name in this scope. Used for parameter binding;
// a parameter name repeated in one parameter list is not rejected, and
// the later argument's value wins.
func (e *Environment) Define(name string, v values.Value) {
	e.vars[name] = v
}

// TryDefine inserts name into the current scope, failing if name is
// already bound in this scope (not in an outer one — shadowing an outer
// binding is allowed). This backs Willow's `let` statement.
func (e *Environment) TryDefine(name string, v values.Value) bool {
	if _, exists := e.vars[name]; exists {
		return false
	}
	e.vars[name] = v
	return true
}

// WithOuter returns a shell Environment that shares e's own bindings but
// whose Outer link points at outer instead of e's original Outer.
//
// This implements spec's call-time requirement (section 4.3.7, Design
// Notes "Environment outer-pointer mutation at call time") without
// mutating e itself: for the duration of one call the caller's
// environment must be reachable from the closure's captured environment,
// but the closure value may be called again later (or concurrently
// captured by another closure), so the *Environment that the Function
// value stores must never have its Outer link edited in place. WithOuter
// builds a fresh wrapper that shares the same bindings map, so anything
// defined directly on the wrapper lands in e as well; parameters stay out
// of e because the call frame binds them into a further New(...) on top
// of this shell.
func (e *Environment) WithOuter(outer *Environment) *Environment {
	return &Environment{vars: e.vars, Outer: outer}
}
