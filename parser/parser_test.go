package parser_test

import (
	"testing"

	"github.com/arana-dev/willow/ast"
	"github.com/arana-dev/willow/parser"
	"github.com/stretchr/testify/require"
)

func parseOK(t *testing.T, src string) *ast.Root {
	t.Helper()
	p := parser.New(src)
	root := p.Parse()
	require.Falsef(t, p.HasErrors(), "unexpected parse errors: %v", p.Errors())
	return root
}

func TestLetStatement(t *testing.T) {
	root := parseOK(t, `let x = 5;`)
	require.Len(t, root.Statements, 1)
	stmt, ok := root.Statements[0].(*ast.LetStatement)
	require.True(t, ok)
	require.Equal(t, "x", stmt.Name.Name)
	lit, ok := stmt.Value.(*ast.IntLiteral)
	require.True(t, ok)
	require.EqualValues(t, 5, lit.Value)
}

func TestReturnStatementBare(t *testing.T) {
	root := parseOK(t, `return;`)
	stmt, ok := root.Statements[0].(*ast.ReturnStatement)
	require.True(t, ok)
	require.Nil(t, stmt.Value)
}

func TestReturnStatementWithValue(t *testing.T) {
	root := parseOK(t, `return 1 + 2;`)
	stmt, ok := root.Statements[0].(*ast.ReturnStatement)
	require.True(t, ok)
	require.NotNil(t, stmt.Value)
}

func TestOperatorPrecedence(t *testing.T) {
	cases := map[string]string{
		"-a * b":             "((-a) * b)",
		"!-a":                "(!(-a))",
		"a + b + c":           "((a + b) + c)",
		"a + b - c":           "((a + b) - c)",
		"a * b * c":           "((a * b) * c)",
		"a * b / c":           "((a * b) / c)",
		"a + b / c":           "(a + (b / c))",
		"a + b * c + d / e - f": "(((a + (b * c)) + (d / e)) - f)",
		"3 > 5 == false":       "((3 > 5) == false)",
		"3 < 5 == true":        "((3 < 5) == true)",
		"1 + (2 + 3) + 4":      "((1 + (2 + 3)) + 4)",
		"(5 + 5) * 2":          "((5 + 5) * 2)",
		"2 / (5 + 5)":          "(2 / (5 + 5))",
		"-(5 + 5)":             "(-(5 + 5))",
		"a + b || c && d":      "((a + b) || (c && d))",
		"a[1] + b[2]":          "((a[1]) + (b[2]))",
	}

	for src, want := range cases {
		root := parseOK(t, src+";")
		require.Len(t, root.Statements, 1)
		stmt := root.Statements[0].(*ast.ExprStatement)
		require.Equal(t, want, exprString(stmt.Expr), "source: %s", src)
	}
}

func TestIfExpressionWithoutElse(t *testing.T) {
	root := parseOK(t, `if (x) { x };`)
	stmt := root.Statements[0].(*ast.ExprStatement)
	ifExpr, ok := stmt.Expr.(*ast.IfExpr)
	require.True(t, ok)
	require.Nil(t, ifExpr.Else)
	require.Len(t, ifExpr.Then.Statements, 1)
}

func TestIfExpressionWithElse(t *testing.T) {
	root := parseOK(t, `if (x) { 1 } else { 2 };`)
	stmt := root.Statements[0].(*ast.ExprStatement)
	ifExpr, ok := stmt.Expr.(*ast.IfExpr)
	require.True(t, ok)
	require.NotNil(t, ifExpr.Else)
}

func TestFunctionLiteralParams(t *testing.T) {
	root := parseOK(t, `fn(x, y) { return x + y; };`)
	stmt := root.Statements[0].(*ast.ExprStatement)
	fn, ok := stmt.Expr.(*ast.FunctionLiteral)
	require.True(t, ok)
	require.Len(t, fn.Params, 2)
	require.Equal(t, "x", fn.Params[0].Name)
	require.Equal(t, "y", fn.Params[1].Name)
}

func TestCallExpressionArgs(t *testing.T) {
	root := parseOK(t, `add(1, 2 * 3, 4 + 5);`)
	stmt := root.Statements[0].(*ast.ExprStatement)
	call, ok := stmt.Expr.(*ast.CallExpr)
	require.True(t, ok)
	require.Len(t, call.Args, 3)
}

func TestArrayLiteral(t *testing.T) {
	root := parseOK(t, `[1, 2 * 2, 3 + 3];`)
	stmt := root.Statements[0].(*ast.ExprStatement)
	arr, ok := stmt.Expr.(*ast.ArrayLiteral)
	require.True(t, ok)
	require.Len(t, arr.Elements, 3)
}

func TestIndexExpression(t *testing.T) {
	root := parseOK(t, `myArray[1 + 1];`)
	stmt := root.Statements[0].(*ast.ExprStatement)
	idx, ok := stmt.Expr.(*ast.IndexExpr)
	require.True(t, ok)
	require.NotNil(t, idx.Index)
}

func TestLetMissingIdentifier(t *testing.T) {
	p := parser.New(`let = 5;`)
	p.Parse()
	require.True(t, p.HasErrors())
	require.Contains(t, p.Errors(), "identifier missing or reserved keyword used after `let`")
}

func TestLetMissingAssign(t *testing.T) {
	p := parser.New(`let x 5;`)
	p.Parse()
	require.Contains(t, p.Errors(), "`=` missing in `let`")
}

func TestLetMissingSemicolon(t *testing.T) {
	p := parser.New(`let x = 5`)
	p.Parse()
	require.Contains(t, p.Errors(), "`;` missing in `let`")
}

func TestGroupedExpressionMissingParen(t *testing.T) {
	p := parser.New(`(1 + 2;`)
	p.Parse()
	require.Contains(t, p.Errors(), "`)` missing in grouped expression")
}

func TestIfMissingParen(t *testing.T) {
	p := parser.New(`if x) { 1 };`)
	p.Parse()
	require.Contains(t, p.Errors(), "`(` missing in `if` condition")
}

func TestFunctionMissingBody(t *testing.T) {
	p := parser.New(`fn(x)`)
	p.Parse()
	require.Contains(t, p.Errors(), "function body missing")
}

func TestUnexpectedStartOfExpression(t *testing.T) {
	p := parser.New(`);`)
	p.Parse()
	require.Contains(t, p.Errors(), "unexpected start of expression: )")
}

// exprString renders an expression tree in a fully parenthesized form,
// used only to assert precedence/associativity in tests.
func exprString(e ast.Expression) string {
	switch n := e.(type) {
	case *ast.Identifier:
		return n.Name
	case *ast.IntLiteral:
		return n.Token.Literal
	case *ast.BoolLiteral:
		return n.Token.Literal
	case *ast.UnaryExpr:
		return "(" + string(n.Op) + exprString(n.Operand) + ")"
	case *ast.BinaryExpr:
		return "(" + exprString(n.Left) + " " + string(n.Op) + " " + exprString(n.Right) + ")"
	case *ast.IndexExpr:
		return "(" + exprString(n.Target) + "[" + exprString(n.Index) + "])"
	case *ast.CallExpr:
		return exprString(n.Callee) + "(call)"
	default:
		return "?"
	}
}
