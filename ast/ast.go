/*
File   : willow/ast/ast.go
Package: ast
*/

// Package ast defines the abstract syntax tree produced by the parser.
//
// Nodes split into two disjoint categories, Statement and Expression,
// following spec section 3. Each concrete node type is a plain struct
// implementing one of the two marker interfaces; the evaluator dispatches
// on concrete type with a type switch rather than a visitor, which keeps
// the node set closed and exhaustiveness a compile-time-adjacent concern
// (the type switch's default case) instead of runtime trait-object
// downcasting.
package ast

import "github.com/arana-dev/willow/lexer"

// Node is implemented by every statement and expression node. TokenLiteral
// returns the literal text of the token that begins the node, used mostly
// for diagnostics.
type Node interface {
	TokenLiteral() string
}

// Statement is implemented by the three statement kinds: Let, Return, and
// ExprStatement.
type Statement interface {
	Node
	statementNode()
}

// Expression is implemented by every expression kind.
type Expression interface {
	Node
	expressionNode()
}

// Root is the top of a parsed program: an ordered sequence of statements.
type Root struct {
	Statements []Statement
}

func (r *Root) TokenLiteral() string {
	if len(r.Statements) > 0 {
		return r.Statements[0].TokenLiteral()
	}
	return ""
}

// Identifier is both an Expression (an identifier used as a value) and the
// binding name in a Let statement or a function parameter.
type Identifier struct {
	Token lexer.Token
	Name  string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }

// LetStatement binds the result of Value to Name in the current scope.
type LetStatement struct {
	Token lexer.Token
	Name  *Identifier
	Value Expression
}

func (l *LetStatement) statementNode()      {}
func (l *LetStatement) TokenLiteral() string { return l.Token.Literal }

// ReturnStatement unwinds out of the enclosing function with Value, or
// Null if Value is nil (bare `return;`).
type ReturnStatement struct {
	Token lexer.Token
	Value Expression // nil for a bare `return;`
}

func (r *ReturnStatement) statementNode()      {}
func (r *ReturnStatement) TokenLiteral() string { return r.Token.Literal }

// ExprStatement is a bare expression used as a statement.
type ExprStatement struct {
	Token lexer.Token
	Expr  Expression
}

func (e *ExprStatement) statementNode()      {}
func (e *ExprStatement) TokenLiteral() string { return e.Token.Literal }

// IntLiteral is a 64-bit signed integer literal.
type IntLiteral struct {
	Token lexer.Token
	Value int64
}

func (n *IntLiteral) expressionNode()      {}
func (n *IntLiteral) TokenLiteral() string { return n.Token.Literal }

// FloatLiteral is a 64-bit floating point literal.
type FloatLiteral struct {
	Token lexer.Token
	Value float64
}

func (n *FloatLiteral) expressionNode()      {}
func (n *FloatLiteral) TokenLiteral() string { return n.Token.Literal }

// BoolLiteral is `true` or `false`.
type BoolLiteral struct {
	Token lexer.Token
	Value bool
}

func (n *BoolLiteral) expressionNode()      {}
func (n *BoolLiteral) TokenLiteral() string { return n.Token.Literal }

// CharLiteral is a single-quoted Unicode scalar literal.
type CharLiteral struct {
	Token lexer.Token
	Value rune
}

func (n *CharLiteral) expressionNode()      {}
func (n *CharLiteral) TokenLiteral() string { return n.Token.Literal }

// StrLiteral is a double-quoted string literal.
type StrLiteral struct {
	Token lexer.Token
	Value string
}

func (n *StrLiteral) expressionNode()      {}
func (n *StrLiteral) TokenLiteral() string { return n.Token.Literal }

// ArrayLiteral is an ordered `[e, e, ...]` expression.
type ArrayLiteral struct {
	Token    lexer.Token
	Elements []Expression
}

func (n *ArrayLiteral) expressionNode()      {}
func (n *ArrayLiteral) TokenLiteral() string { return n.Token.Literal }

// Block is a braced statement sequence. As an Expression its value is the
// value of its last statement, or Null if empty.
type Block struct {
	Token      lexer.Token
	Statements []Statement
}

func (n *Block) expressionNode()      {}
func (n *Block) TokenLiteral() string { return n.Token.Literal }

// FunctionLiteral is `fn(params) body`. Every element of Params is an
// Identifier by construction (the parser only ever appends identifiers).
type FunctionLiteral struct {
	Token  lexer.Token
	Params []*Identifier
	Body   *Block
}

func (n *FunctionLiteral) expressionNode()      {}
func (n *FunctionLiteral) TokenLiteral() string { return n.Token.Literal }

// UnaryExpr is a prefix operator: `-x` or `!x`.
type UnaryExpr struct {
	Token   lexer.Token
	Op      lexer.TokenType
	Operand Expression
}

func (n *UnaryExpr) expressionNode()      {}
func (n *UnaryExpr) TokenLiteral() string { return n.Token.Literal }

// BinaryExpr is an infix operator expression: arithmetic, comparison, or
// logical.
type BinaryExpr struct {
	Token lexer.Token
	Op    lexer.TokenType
	Left  Expression
	Right Expression
}

func (n *BinaryExpr) expressionNode()      {}
func (n *BinaryExpr) TokenLiteral() string { return n.Token.Literal }

// IndexExpr is `target[index]`. Per spec, Target is restricted by the
// parser to an Identifier, ArrayLiteral, or StrLiteral.
type IndexExpr struct {
	Token  lexer.Token
	Target Expression
	Index  Expression
}

func (n *IndexExpr) expressionNode()      {}
func (n *IndexExpr) TokenLiteral() string { return n.Token.Literal }

// CallExpr is `callee(args...)`.
type CallExpr struct {
	Token  lexer.Token
	Callee Expression
	Args   []Expression
}

func (n *CallExpr) expressionNode()      {}
func (n *CallExpr) TokenLiteral() string { return n.Token.Literal }

// IfExpr is `if (cond) then [else else_]`. Both branches are Blocks, never
// other expression forms.
type IfExpr struct {
	Token lexer.Token
	Cond  Expression
	Then  *Block
	Else  *Block // nil if no else branch
}

func (n *IfExpr) expressionNode()      {}
func (n *IfExpr) TokenLiteral() string { return n.Token.Literal }
