/*
File   : willow/function/function.go
Package: function
*/

// Package function holds the two callable Value variants: Function (a
// user-defined closure) and Builtin (a host-implemented primitive).
// Grounded on the teacher's function.Function (function/function.go),
// adapted to capture an env.Environment directly (a live shared
// reference) rather than a scope.Copy() snapshot, per spec's closure
// semantics (section 3, "Environments are shared because closures
// capture them").
package function

import (
	"strings"

	"github.com/arana-dev/willow/ast"
	"github.com/arana-dev/willow/env"
	"github.com/arana-dev/willow/values"
)

// Function is a user-defined closure: parameters, a body, and the
// environment active at the point of the `fn` literal.
type Function struct {
	Params []*ast.Identifier
	Body   *ast.Block
	Env    *env.Environment
}

func (f *Function) Kind() values.Kind { return values.FunctionKind }

func (f *Function) Display() string {
	names := make([]string, len(f.Params))
	for i, p := range f.Params {
		names[i] = p.Name
	}
	return "fn(" + strings.Join(names, ", ") + ")"
}

// Builtin is a host-implemented primitive. Fn receives the evaluated
// argument values directly as a slice; no environment is created for a
// builtin call.
type Builtin struct {
	Name  string
	Arity int // declared argument count; not read by the evaluator, each Fn checks its own count
	Fn    func(args []values.Value) values.Value
}

func (b *Builtin) Kind() values.Kind { return values.BuiltinKind }
func (b *Builtin) Display() string   { return "builtin(" + b.Name + ")" }
