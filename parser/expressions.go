/*
File   : willow/parser/expressions.go
Package: parser
*/
package parser

import (
	"fmt"
	"strconv"

	"github.com/arana-dev/willow/ast"
	"github.com/arana-dev/willow/lexer"
)

// parseExpression is the Pratt loop: look up cur's prefix function, run
// it once, then keep absorbing infix operators whose precedence beats
// precedence. Grounded on the teacher's parser_precedence.go
// parseInternal(currPrecedence) loop.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	if p.cur.Type == lexer.EOF {
		p.addError("unexpected eof in the middle of a statement")
		return nil
	}
	prefix, ok := p.prefixFns[p.cur.Type]
	if !ok {
		p.addError(unexpectedTokenMsg(p.cur))
		return nil
	}
	left := prefix()

	for !p.nextIs(lexer.SEMICOLON) && precedence < p.peekPrecedence() {
		infix, ok := p.infixFns[p.next.Type]
		if !ok {
			return left
		}
		p.advance()
		left = infix(left)
	}
	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.cur, Name: p.cur.Literal}
}

func (p *Parser) parseIntLiteral() ast.Expression {
	v, err := strconv.ParseInt(p.cur.Literal, 10, 64)
	if err != nil {
		p.addError(fmt.Sprintf("could not parse %q as an integer", p.cur.Literal))
		return nil
	}
	return &ast.IntLiteral{Token: p.cur, Value: v}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	v, err := strconv.ParseFloat(p.cur.Literal, 64)
	if err != nil {
		p.addError(fmt.Sprintf("could not parse %q as a float", p.cur.Literal))
		return nil
	}
	return &ast.FloatLiteral{Token: p.cur, Value: v}
}

func (p *Parser) parseBoolLiteral() ast.Expression {
	return &ast.BoolLiteral{Token: p.cur, Value: p.curIs(lexer.TRUE)}
}

func (p *Parser) parseCharLiteral() ast.Expression {
	return &ast.CharLiteral{Token: p.cur, Value: []rune(p.cur.Literal)[0]}
}

func (p *Parser) parseStrLiteral() ast.Expression {
	return &ast.StrLiteral{Token: p.cur, Value: p.cur.Literal}
}

// parseGroupedExpression parses `( expr )` for explicit grouping. The
// parentheses around an `if` condition are consumed by parseIfExpression
// itself, with their own diagnostics.
func (p *Parser) parseGroupedExpression() ast.Expression {
	p.advance()
	expr := p.parseExpression(precLowest)
	if !p.expectAdvance(lexer.RPAREN, "`)` missing in grouped expression") {
		return nil
	}
	return expr
}

// parseBlockExpression parses a standalone `{ ... }` as an expression,
// valued as its last statement's value (spec: a Block is an Expression).
func (p *Parser) parseBlockExpression() ast.Expression {
	return p.parseBlock()
}

// parseBlock parses `{ stmt* }` assuming p.cur is `{`. On return p.cur
// is positioned on the closing `}`.
func (p *Parser) parseBlock() *ast.Block {
	block := &ast.Block{Token: p.cur}
	block.Statements = p.parseBlockStatements()
	return block
}

// parseArrayLiteral parses `[ e, e, ... ]`.
func (p *Parser) parseArrayLiteral() ast.Expression {
	lit := &ast.ArrayLiteral{Token: p.cur}
	lit.Elements = p.parseExpressionList(lexer.RBRACKET,
		"`,` expected but not found in array literal")
	return lit
}

// parseExpressionList parses a comma-separated sequence of expressions
// terminated by end, assuming p.cur sits on the opening delimiter. A
// missing separator and a never-closed list both surface the same msg:
// spec draws no distinction between the two failure shapes here.
func (p *Parser) parseExpressionList(end lexer.TokenType, msg string) []ast.Expression {
	var list []ast.Expression

	if p.nextIs(end) {
		p.advance()
		return list
	}

	p.advance()
	list = append(list, p.parseExpression(precLowest))

	for p.nextIs(lexer.COMMA) {
		p.advance()
		p.advance()
		list = append(list, p.parseExpression(precLowest))
	}

	if !p.nextIs(end) {
		p.addError(msg)
		return list
	}
	p.advance()
	return list
}

// parseFunctionLiteral parses `fn(params) body`.
func (p *Parser) parseFunctionLiteral() ast.Expression {
	lit := &ast.FunctionLiteral{Token: p.cur}

	if !p.expectAdvance(lexer.LPAREN, "`(` missing in function parameter list") {
		return nil
	}

	params, ok := p.parseFunctionParams()
	if !ok {
		return nil
	}
	lit.Params = params

	if !p.nextIs(lexer.LBRACE) {
		p.addError("function body missing")
		return nil
	}
	p.advance()
	lit.Body = p.parseBlock()
	return lit
}

func (p *Parser) parseFunctionParams() ([]*ast.Identifier, bool) {
	var params []*ast.Identifier

	if p.nextIs(lexer.RPAREN) {
		p.advance()
		return params, true
	}

	p.advance()
	if !p.curIs(lexer.IDENT) {
		p.addError(fmt.Sprintf("expected identifier but found `%s` in function parameter list", p.cur.Literal))
		return nil, false
	}
	params = append(params, &ast.Identifier{Token: p.cur, Name: p.cur.Literal})

	for p.nextIs(lexer.COMMA) {
		p.advance()
		p.advance()
		if !p.curIs(lexer.IDENT) {
			p.addError(fmt.Sprintf("expected identifier but found `%s` in function parameter list", p.cur.Literal))
			return nil, false
		}
		params = append(params, &ast.Identifier{Token: p.cur, Name: p.cur.Literal})
	}

	if !p.expectAdvance(lexer.RPAREN, "`,` expected but not found in parameter list") {
		return nil, false
	}
	return params, true
}

// parseIfExpression parses `if (cond) { ... } [else { ... }]`.
func (p *Parser) parseIfExpression() ast.Expression {
	expr := &ast.IfExpr{Token: p.cur}

	if !p.expectAdvance(lexer.LPAREN, "`(` missing in `if` condition") {
		return nil
	}
	p.advance()
	expr.Cond = p.parseExpression(precLowest)

	if !p.expectAdvance(lexer.RPAREN, "`)` missing in `if` condition") {
		return nil
	}
	if !p.expectAdvance(lexer.LBRACE, "`{` missing in `if` block") {
		return nil
	}
	expr.Then = p.parseBlock()

	if p.nextIs(lexer.ELSE) {
		p.advance()
		if !p.expectAdvance(lexer.LBRACE, "`{` missing in `else` block") {
			return nil
		}
		expr.Else = p.parseBlock()
	}
	return expr
}

func (p *Parser) parseUnaryExpression() ast.Expression {
	expr := &ast.UnaryExpr{Token: p.cur, Op: p.cur.Type}
	p.advance()
	expr.Operand = p.parseExpression(precUnary)
	return expr
}

func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	expr := &ast.BinaryExpr{Token: p.cur, Op: p.cur.Type, Left: left}
	precedence := p.curPrecedence()
	p.advance()
	expr.Right = p.parseExpression(precedence)
	return expr
}

func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	expr := &ast.CallExpr{Token: p.cur, Callee: callee}
	expr.Args = p.parseExpressionList(lexer.RPAREN,
		"`,` expected but not found in argument list")
	return expr
}

// parseIndexExpression parses `target[index]`. Per the grammar, target
// must already be an Identifier, ArrayLiteral, or StrLiteral by the time
// it reaches here; anything else is rejected so the evaluator never has
// to handle indexing into, say, a function literal.
func (p *Parser) parseIndexExpression(target ast.Expression) ast.Expression {
	expr := &ast.IndexExpr{Token: p.cur, Target: target}

	switch target.(type) {
	case *ast.Identifier, *ast.ArrayLiteral, *ast.StrLiteral:
	default:
		p.addError("only identifier, array literal or string literal can be indexed")
		return nil
	}

	p.advance()
	if p.curIs(lexer.RBRACKET) {
		p.addError("empty index in array index expression")
		return nil
	}
	expr.Index = p.parseExpression(precLowest)

	if !p.expectAdvance(lexer.RBRACKET, "`]` missing in array index expression") {
		return nil
	}
	return expr
}
