/*
File   : willow/eval/evaluator.go
Package: eval
*/

// Package eval walks an *ast.Root and produces a values.Value, grounded
// on the teacher's eval.Evaluator (eval/evaluator.go): a struct holding
// the global scope plus an io.Writer that `print`-style builtins write
// through, and an Eval(node, scope) entry point dispatching on concrete
// node type.
package eval

import (
	"io"
	"os"

	"github.com/arana-dev/willow/ast"
	"github.com/arana-dev/willow/env"
	"github.com/arana-dev/willow/function"
	"github.com/arana-dev/willow/values"
)

// Evaluator walks a parsed program against a chain of Environments. A
// single Evaluator is reused across every line typed at a REPL prompt so
// that `let` bindings and function definitions persist across lines.
type Evaluator struct {
	Global *env.Environment

	Writer    io.Writer
	ErrWriter io.Writer

	// builtins holds both callable built-ins (*function.Builtin) and the
	// single non-callable built-in value, `pi`, which resolves directly
	// to a Float rather than to something that must be invoked.
	builtins map[string]values.Value
}

// New creates an Evaluator with a fresh global scope, writing `print`
// output to stdout and `eprint` output to stderr.
func New() *Evaluator {
	return NewWithWriters(os.Stdout, os.Stderr)
}

// NewWithWriters creates an Evaluator whose builtins write through the
// given writers instead of the process's real stdout/stderr, which is
// how tests capture `print`/`eprint` output without touching the real
// file descriptors.
func NewWithWriters(out, err io.Writer) *Evaluator {
	e := &Evaluator{
		Global:    env.New(nil),
		Writer:    out,
		ErrWriter: err,
	}
	e.builtins = newBuiltins(e)
	return e
}

// Run evaluates every statement in root against the Evaluator's global
// scope, exactly as a function body's Block would, except that a
// top-level `return` simply unwraps and ends evaluation early rather
// than propagating out of anything (spec section 4.3.1's Root/Block
// asymmetry: Block re-wraps a pending return so it can keep climbing out
// of nested blocks, Root is the top of the climb and unwraps it).
func (e *Evaluator) Run(root *ast.Root) values.Value {
	var result values.Value = values.NullValue

	for _, stmt := range root.Statements {
		result = e.Eval(stmt, e.Global)

		if values.IsError(result) {
			return result
		}
		if marker, ok := result.(*values.ReturnMarker); ok {
			return marker.Value
		}
	}
	return result
}

// Eval dispatches on node's concrete type. Unknown node types are a
// parser/evaluator mismatch and produce a run-time error rather than a
// panic, so a REPL session can report it and keep running.
func (e *Evaluator) Eval(node ast.Node, scope *env.Environment) values.Value {
	switch n := node.(type) {

	case *ast.LetStatement:
		return e.evalLetStatement(n, scope)
	case *ast.ReturnStatement:
		return e.evalReturnStatement(n, scope)
	case *ast.ExprStatement:
		return e.Eval(n.Expr, scope)

	case *ast.Block:
		return e.evalBlock(n, env.New(scope))

	case *ast.IntLiteral:
		return &values.Int{Value: n.Value}
	case *ast.FloatLiteral:
		return &values.Float{Value: n.Value}
	case *ast.BoolLiteral:
		return values.BoolOf(n.Value)
	case *ast.CharLiteral:
		return &values.Char{Value: n.Value}
	case *ast.StrLiteral:
		return values.NewStr(n.Value)
	case *ast.ArrayLiteral:
		return e.evalArrayLiteral(n, scope)

	case *ast.Identifier:
		return e.evalIdentifier(n, scope)
	case *ast.FunctionLiteral:
		return &function.Function{Params: n.Params, Body: n.Body, Env: scope}

	case *ast.UnaryExpr:
		return e.evalUnaryExpr(n, scope)
	case *ast.BinaryExpr:
		return e.evalBinaryExpr(n, scope)
	case *ast.IndexExpr:
		return e.evalIndexExpr(n, scope)
	case *ast.CallExpr:
		return e.evalCallExpr(n, scope)
	case *ast.IfExpr:
		return e.evalIfExpr(n, scope)

	default:
		return values.Errorf("cannot evaluate node of type %T", node)
	}
}

// evalBlock evaluates a brace-delimited statement sequence. A pending
// return is left wrapped in its ReturnMarker so that an outer Block
// (an `if` nested inside a function body, for instance) sees it too and
// re-propagates instead of swallowing it; only Run and applyFunction ever
// unwrap one.
func (e *Evaluator) evalBlock(block *ast.Block, scope *env.Environment) values.Value {
	var result values.Value = values.NullValue

	for _, stmt := range block.Statements {
		result = e.Eval(stmt, scope)

		if values.IsError(result) {
			return result
		}
		if _, ok := result.(*values.ReturnMarker); ok {
			return result
		}
	}
	return result
}
