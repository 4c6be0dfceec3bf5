/*
File   : willow/parser/statements.go
Package: parser
*/
package parser

import (
	"github.com/arana-dev/willow/ast"
	"github.com/arana-dev/willow/lexer"
)

// parseStatement dispatches on the current token's leading keyword,
// falling back to an expression statement. Mirrors the teacher's
// parser_statements.go parseStatement switch.
func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Type {
	case lexer.LET:
		return p.parseLetStatement()
	case lexer.RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExprStatement()
	}
}

// parseLetStatement parses `let name = expr;`. A missing identifier,
// missing `=`, or missing trailing `;` each produce the spec's exact
// diagnostic string and a nil result.
func (p *Parser) parseLetStatement() ast.Statement {
	stmt := &ast.LetStatement{Token: p.cur}

	if !p.nextIs(lexer.IDENT) {
		p.addError("identifier missing or reserved keyword used after `let`")
		return nil
	}
	p.advance()
	stmt.Name = &ast.Identifier{Token: p.cur, Name: p.cur.Literal}

	if !p.expectAdvance(lexer.ASSIGN, "`=` missing in `let`") {
		return nil
	}
	p.advance()

	stmt.Value = p.parseExpression(precLowest)

	if !p.expectAdvance(lexer.SEMICOLON, "`;` missing in `let`") {
		return nil
	}
	return stmt
}

// parseReturnStatement parses `return;` or `return expr;`.
func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.cur}

	if p.nextIs(lexer.SEMICOLON) {
		p.advance()
		return stmt
	}

	p.advance()
	stmt.Value = p.parseExpression(precLowest)

	if !p.expectAdvance(lexer.SEMICOLON, "`;` missing in `return`") {
		return nil
	}
	return stmt
}

// parseExprStatement parses a bare expression used as a statement. The
// trailing `;` is optional, matching the teacher's parseExpressionStatement
// (needed so the last expression in a REPL line or function body can omit
// it and still stand as the block's value).
func (p *Parser) parseExprStatement() ast.Statement {
	stmt := &ast.ExprStatement{Token: p.cur}
	stmt.Expr = p.parseExpression(precLowest)

	if p.nextIs(lexer.SEMICOLON) {
		p.advance()
	}
	return stmt
}

// parseBlockStatements parses the statement list inside a `{ ... }`,
// assuming p.cur is already positioned on the opening `{`. On return
// p.cur is positioned on the closing `}`.
func (p *Parser) parseBlockStatements() []ast.Statement {
	var stmts []ast.Statement
	p.advance()

	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
		if p.curIs(lexer.SEMICOLON) {
			p.advance()
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		p.advance()
	}
	return stmts
}
