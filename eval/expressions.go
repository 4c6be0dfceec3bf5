/*
File   : willow/eval/expressions.go
Package: eval
*/
package eval

import (
	"math"

	"github.com/arana-dev/willow/ast"
	"github.com/arana-dev/willow/env"
	"github.com/arana-dev/willow/function"
	"github.com/arana-dev/willow/lexer"
	"github.com/arana-dev/willow/values"
)

// evalIdentifier resolves a name against the built-in table first, then
// the lexical scope chain. Built-ins live outside the Environment chain
// entirely so that `let len = 1;` at global scope is rejected up front
// by evalLetStatement rather than silently shadowing `len` for callers
// who still expect the built-in.
func (e *Evaluator) evalIdentifier(n *ast.Identifier, scope *env.Environment) values.Value {
	if b, ok := e.builtins[n.Name]; ok {
		return b
	}
	if v, ok := scope.Lookup(n.Name); ok {
		return v
	}
	return values.Errorf("`%s` is not defined", n.Name)
}

func (e *Evaluator) evalArrayLiteral(n *ast.ArrayLiteral, scope *env.Environment) values.Value {
	elems := make([]values.Value, len(n.Elements))
	for i, el := range n.Elements {
		v := e.Eval(el, scope)
		if values.IsError(v) {
			return v
		}
		elems[i] = v
	}
	return &values.Array{Elements: elems}
}

func (e *Evaluator) evalUnaryExpr(n *ast.UnaryExpr, scope *env.Environment) values.Value {
	operand := e.Eval(n.Operand, scope)
	if values.IsError(operand) {
		return operand
	}

	switch n.Op {
	case lexer.MINUS:
		switch v := operand.(type) {
		case *values.Int:
			return &values.Int{Value: -v.Value}
		case *values.Float:
			return &values.Float{Value: -v.Value}
		default:
			return values.Errorf("operand of unary `-` is not a number")
		}
	case lexer.INVERT:
		v, ok := operand.(*values.Bool)
		if !ok {
			return values.Errorf("operand of unary `!` is not a boolean")
		}
		return values.BoolOf(!v.Value)
	default:
		return values.Errorf("unknown unary operator: %s", n.Op)
	}
}

func (e *Evaluator) evalIfExpr(n *ast.IfExpr, scope *env.Environment) values.Value {
	cond := e.Eval(n.Cond, scope)
	if values.IsError(cond) {
		return cond
	}
	b, ok := cond.(*values.Bool)
	if !ok {
		return values.Errorf("if condition is not a boolean")
	}

	if b.Value {
		return e.evalBlock(n.Then, env.New(scope))
	}
	if n.Else != nil {
		return e.evalBlock(n.Else, env.New(scope))
	}
	return values.NullValue
}

// evalIndexExpr evaluates `target[index]`. Only arrays and strings
// support indexing; index must be an Int and is range-checked against
// Unicode-scalar length for strings, element count for arrays. The
// parser already restricts n.Target to an Identifier, ArrayLiteral, or
// StrLiteral, so the only way target can evaluate to a non-indexable
// value is when it's an identifier bound to something else.
func (e *Evaluator) evalIndexExpr(n *ast.IndexExpr, scope *env.Environment) values.Value {
	target := e.Eval(n.Target, scope)
	if values.IsError(target) {
		return target
	}
	index := e.Eval(n.Index, scope)
	if values.IsError(index) {
		return index
	}
	idx, ok := index.(*values.Int)
	if !ok {
		return values.Errorf("non-integer array index found")
	}
	if idx.Value < 0 {
		return values.Errorf("negative array index not allowed")
	}

	switch t := target.(type) {
	case *values.Array:
		if int(idx.Value) >= len(t.Elements) {
			return values.Errorf("array index out of bounds")
		}
		return t.Elements[idx.Value]
	case *values.Str:
		if int(idx.Value) >= t.Len() {
			return values.Errorf("array index out of bounds")
		}
		return &values.Char{Value: t.At(int(idx.Value))}
	default:
		if ident, ok := n.Target.(*ast.Identifier); ok {
			return values.Errorf("`%s` is not an array nor a string", ident.Name)
		}
		return values.Errorf("`%s` is not an array nor a string", target.Kind())
	}
}

// evalCallExpr evaluates callee and args, then dispatches to either a
// Function (constructing a call frame per the three-layer chain
// described in env.Environment.WithOuter) or a Builtin.
func (e *Evaluator) evalCallExpr(n *ast.CallExpr, scope *env.Environment) values.Value {
	callee := e.Eval(n.Callee, scope)
	if values.IsError(callee) {
		return callee
	}

	args := make([]values.Value, len(n.Args))
	for i, a := range n.Args {
		v := e.Eval(a, scope)
		if values.IsError(v) {
			return v
		}
		args[i] = v
	}

	switch fn := callee.(type) {
	case *function.Function:
		return e.applyFunction(fn, args, scope)
	case *function.Builtin:
		return fn.Fn(args)
	default:
		if ident, ok := n.Callee.(*ast.Identifier); ok {
			return values.Errorf("`%s` is not a function", ident.Name)
		}
		return values.Errorf("only identifier or function literal can be called")
	}
}

// applyFunction builds the call frame described in env's WithOuter doc
// comment: a shell environment shares fn's closure bindings but points
// its Outer link at the caller's scope, and a fresh child of that shell
// holds the bound parameters. fn.Env itself is never mutated, so fn
// remains safe to call again (including recursively or concurrently).
func (e *Evaluator) applyFunction(fn *function.Function, args []values.Value, caller *env.Environment) values.Value {
	if len(args) != len(fn.Params) {
		return values.Errorf("argument number mismatch")
	}

	shadowedClosure := fn.Env.WithOuter(caller)
	frame := env.New(shadowedClosure)
	for i, param := range fn.Params {
		frame.Define(param.Name, args[i])
	}

	result := e.evalBlock(fn.Body, frame)
	if values.IsError(result) {
		return result
	}
	if marker, ok := result.(*values.ReturnMarker); ok {
		return marker.Value
	}
	return result
}

// evalBinaryExpr evaluates both operands unconditionally (the table in
// spec section 4.3.5 has no short-circuiting binary operator other than
// && and ||, handled separately below) and dispatches by operator
// class. There is no implicit numeric widening anywhere in this table:
// `1 + 1.0` is a type error, not a promotion, because the two operands
// don't share a kind.
func (e *Evaluator) evalBinaryExpr(n *ast.BinaryExpr, scope *env.Environment) values.Value {
	if n.Op == lexer.AND || n.Op == lexer.OR {
		return e.evalLogical(n, scope)
	}

	left := e.Eval(n.Left, scope)
	if values.IsError(left) {
		return left
	}
	right := e.Eval(n.Right, scope)
	if values.IsError(right) {
		return right
	}

	switch n.Op {
	case lexer.EQ, lexer.NOT_EQ:
		return evalEquality(n.Op, left, right)
	case lexer.LT, lexer.GT, lexer.LT_EQ, lexer.GT_EQ:
		return evalComparison(n.Op, left, right)
	default:
		return evalArithmetic(n.Op, left, right)
	}
}

// evalLogical short-circuits: the right operand is only evaluated when
// the left one doesn't already settle the result.
func (e *Evaluator) evalLogical(n *ast.BinaryExpr, scope *env.Environment) values.Value {
	left := e.Eval(n.Left, scope)
	if values.IsError(left) {
		return left
	}
	lb, ok := left.(*values.Bool)
	if !ok {
		return unsupportedBinary(n.Op)
	}
	if n.Op == lexer.AND && !lb.Value {
		return values.False
	}
	if n.Op == lexer.OR && lb.Value {
		return values.True
	}

	right := e.Eval(n.Right, scope)
	if values.IsError(right) {
		return right
	}
	rb, ok := right.(*values.Bool)
	if !ok {
		return unsupportedBinary(n.Op)
	}
	return values.BoolOf(rb.Value)
}

func unsupportedBinary(op lexer.TokenType) *values.Error {
	return values.Errorf("unsupported operand type for binary `%s`", op)
}

// evalEquality implements == and !=. Every kind in the value model
// supports it except Array: the spec leaves array equality undefined
// (Open Question 3), and the safest reading of "undefined" is "not an
// operation this operator supports", so both directions report the
// standard unsupported-operand-type error rather than falling back to
// reference identity. Functions and builtins are likewise excluded;
// nothing in the language ever needs to compare two closures.
func evalEquality(op lexer.TokenType, left, right values.Value) values.Value {
	if !comparableKind(left) || !comparableKind(right) {
		return unsupportedBinary(op)
	}
	eq := valuesEqual(left, right)
	if op == lexer.NOT_EQ {
		eq = !eq
	}
	return values.BoolOf(eq)
}

func comparableKind(v values.Value) bool {
	switch v.(type) {
	case *values.Null, *values.Int, *values.Float, *values.Bool, *values.Char, *values.Str:
		return true
	default:
		return false
	}
}

func valuesEqual(left, right values.Value) bool {
	if left.Kind() != right.Kind() {
		return false
	}
	switch l := left.(type) {
	case *values.Null:
		return true
	case *values.Int:
		return l.Value == right.(*values.Int).Value
	case *values.Float:
		return l.Value == right.(*values.Float).Value
	case *values.Bool:
		return l.Value == right.(*values.Bool).Value
	case *values.Char:
		return l.Value == right.(*values.Char).Value
	case *values.Str:
		return l.Equal(right.(*values.Str))
	default:
		return false
	}
}

// evalComparison implements < > <= >=: Int with Int, Float with Float,
// Str lexicographically, Char by codepoint. Mixed kinds (including
// Int-vs-Float) are a type error, matching the "no implicit numeric
// widening" rule.
func evalComparison(op lexer.TokenType, left, right values.Value) values.Value {
	switch l := left.(type) {
	case *values.Int:
		r, ok := right.(*values.Int)
		if !ok {
			return unsupportedBinary(op)
		}
		return values.BoolOf(compareOp(op, cmpInt64(l.Value, r.Value)))
	case *values.Float:
		r, ok := right.(*values.Float)
		if !ok {
			return unsupportedBinary(op)
		}
		return values.BoolOf(compareOp(op, cmpFloat64(l.Value, r.Value)))
	case *values.Str:
		r, ok := right.(*values.Str)
		if !ok {
			return unsupportedBinary(op)
		}
		return values.BoolOf(compareOp(op, l.Compare(r)))
	case *values.Char:
		r, ok := right.(*values.Char)
		if !ok {
			return unsupportedBinary(op)
		}
		return values.BoolOf(compareOp(op, int(l.Value)-int(r.Value)))
	default:
		return unsupportedBinary(op)
	}
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpFloat64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareOp(op lexer.TokenType, cmp int) bool {
	switch op {
	case lexer.LT:
		return cmp < 0
	case lexer.GT:
		return cmp > 0
	case lexer.LT_EQ:
		return cmp <= 0
	case lexer.GT_EQ:
		return cmp >= 0
	}
	return false
}

// evalArithmetic implements + - * / % **: Int with Int, Float with
// Float, Str with Str (`+` only, concatenation), Array with Array (`+`
// only, concatenation). Every other combination, including Int mixed
// with Float, is a type error.
func evalArithmetic(op lexer.TokenType, left, right values.Value) values.Value {
	switch l := left.(type) {
	case *values.Int:
		r, ok := right.(*values.Int)
		if !ok {
			return unsupportedBinary(op)
		}
		return intArithmetic(op, l.Value, r.Value)
	case *values.Float:
		r, ok := right.(*values.Float)
		if !ok {
			return unsupportedBinary(op)
		}
		return floatArithmetic(op, l.Value, r.Value)
	case *values.Str:
		if op != lexer.PLUS {
			return unsupportedBinary(op)
		}
		r, ok := right.(*values.Str)
		if !ok {
			return unsupportedBinary(op)
		}
		return l.Concat(r)
	case *values.Array:
		if op != lexer.PLUS {
			return unsupportedBinary(op)
		}
		r, ok := right.(*values.Array)
		if !ok {
			return unsupportedBinary(op)
		}
		return concatArrays(l, r)
	default:
		return unsupportedBinary(op)
	}
}

func concatArrays(a, b *values.Array) *values.Array {
	out := make([]values.Value, 0, len(a.Elements)+len(b.Elements))
	out = append(out, a.Elements...)
	out = append(out, b.Elements...)
	return &values.Array{Elements: out}
}

func intArithmetic(op lexer.TokenType, a, b int64) values.Value {
	switch op {
	case lexer.PLUS:
		return &values.Int{Value: a + b}
	case lexer.MINUS:
		return &values.Int{Value: a - b}
	case lexer.ASTERISK:
		return &values.Int{Value: a * b}
	case lexer.SLASH:
		if b == 0 {
			return values.Errorf("zero division")
		}
		return &values.Int{Value: a / b}
	case lexer.PERCENT:
		if b == 0 {
			return values.Errorf("zero division in `%%`")
		}
		return &values.Int{Value: a % b}
	case lexer.POWER:
		if b < 0 {
			return values.Errorf("negative exponent in %d**%d operation", a, b)
		}
		return &values.Int{Value: intPow(a, b)}
	default:
		return unsupportedBinary(op)
	}
}

func floatArithmetic(op lexer.TokenType, a, b float64) values.Value {
	switch op {
	case lexer.PLUS:
		return &values.Float{Value: a + b}
	case lexer.MINUS:
		return &values.Float{Value: a - b}
	case lexer.ASTERISK:
		return &values.Float{Value: a * b}
	case lexer.SLASH:
		if b == 0 {
			return values.Errorf("zero division")
		}
		return &values.Float{Value: a / b}
	case lexer.PERCENT:
		if b == 0 {
			return values.Errorf("zero division in `%%`")
		}
		return &values.Float{Value: math.Mod(a, b)}
	case lexer.POWER:
		if b < 0 {
			return values.Errorf("negative exponent in %v**%v operation", a, b)
		}
		return &values.Float{Value: math.Pow(a, b)}
	default:
		return unsupportedBinary(op)
	}
}

func intPow(base, exp int64) int64 {
	var result int64 = 1
	for i := int64(0); i < exp; i++ {
		result *= base
	}
	return result
}
