/*
File   : willow/eval/statements.go
Package: eval
*/
package eval

import (
	"github.com/arana-dev/willow/ast"
	"github.com/arana-dev/willow/env"
	"github.com/arana-dev/willow/values"
)

// evalLetStatement binds the value of n.Value to n.Name in scope. Two
// things make the binding fail: n.Name shadows a built-in name, or
// n.Name is already bound directly in scope (re-declaring a name in the
// same scope, as opposed to shadowing one from an outer scope, which is
// allowed).
func (e *Evaluator) evalLetStatement(n *ast.LetStatement, scope *env.Environment) values.Value {
	if _, isBuiltin := e.builtins[n.Name.Name]; isBuiltin {
		return values.Errorf("`%s` is a built-in identifier", n.Name.Name)
	}

	val := e.Eval(n.Value, scope)
	if values.IsError(val) {
		return val
	}

	if !scope.TryDefine(n.Name.Name, val) {
		return values.Errorf("`%s` is already defined", n.Name.Name)
	}
	return values.NullValue
}

// evalReturnStatement evaluates n.Value (or Null for a bare `return;`)
// and wraps it in a ReturnMarker so evalBlock knows to stop evaluating
// further statements and propagate it upward unchanged.
func (e *Evaluator) evalReturnStatement(n *ast.ReturnStatement, scope *env.Environment) values.Value {
	if n.Value == nil {
		return &values.ReturnMarker{Value: values.NullValue}
	}

	val := e.Eval(n.Value, scope)
	if values.IsError(val) {
		return val
	}
	return &values.ReturnMarker{Value: val}
}
