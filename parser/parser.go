/*
File   : willow/parser/parser.go
Package: parser
*/

// Package parser implements a Pratt (top-down operator precedence) parser
// for Willow, grounded on the teacher's parser.Parser (parser/parser.go):
// a two-token-lookahead cursor plus per-token-type prefix/infix function
// tables (registerUnaryFuncs/registerBinaryFuncs there, prefixFns/infixFns
// here), and an Errors []string error-collection list instead of panicking
// on the first mistake.
package parser

import (
	"fmt"

	"github.com/arana-dev/willow/ast"
	"github.com/arana-dev/willow/lexer"
)

type prefixParseFn func() ast.Expression
type infixParseFn func(left ast.Expression) ast.Expression

// Parser converts a token stream into an ast.Root. A Parser that reports
// no errors after Parse() has produced a tree that satisfies the
// invariants in spec section 3.
type Parser struct {
	lex *lexer.Lexer

	cur  lexer.Token
	next lexer.Token

	errors []string

	prefixFns map[lexer.TokenType]prefixParseFn
	infixFns  map[lexer.TokenType]infixParseFn
}

// New creates a Parser over src, priming the two-token lookahead.
func New(src string) *Parser {
	p := &Parser{lex: lexer.New(src)}

	p.prefixFns = make(map[lexer.TokenType]prefixParseFn)
	p.infixFns = make(map[lexer.TokenType]infixParseFn)

	p.registerPrefix(lexer.IDENT, p.parseIdentifier)
	p.registerPrefix(lexer.INT, p.parseIntLiteral)
	p.registerPrefix(lexer.FLOAT, p.parseFloatLiteral)
	p.registerPrefix(lexer.TRUE, p.parseBoolLiteral)
	p.registerPrefix(lexer.FALSE, p.parseBoolLiteral)
	p.registerPrefix(lexer.CHAR, p.parseCharLiteral)
	p.registerPrefix(lexer.STRING, p.parseStrLiteral)
	p.registerPrefix(lexer.LBRACKET, p.parseArrayLiteral)
	p.registerPrefix(lexer.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(lexer.LBRACE, p.parseBlockExpression)
	p.registerPrefix(lexer.MINUS, p.parseUnaryExpression)
	p.registerPrefix(lexer.INVERT, p.parseUnaryExpression)
	p.registerPrefix(lexer.IF, p.parseIfExpression)
	p.registerPrefix(lexer.FUNCTION, p.parseFunctionLiteral)

	p.registerInfix(lexer.PLUS, p.parseBinaryExpression)
	p.registerInfix(lexer.MINUS, p.parseBinaryExpression)
	p.registerInfix(lexer.ASTERISK, p.parseBinaryExpression)
	p.registerInfix(lexer.SLASH, p.parseBinaryExpression)
	p.registerInfix(lexer.PERCENT, p.parseBinaryExpression)
	p.registerInfix(lexer.POWER, p.parseBinaryExpression)
	p.registerInfix(lexer.EQ, p.parseBinaryExpression)
	p.registerInfix(lexer.NOT_EQ, p.parseBinaryExpression)
	p.registerInfix(lexer.LT, p.parseBinaryExpression)
	p.registerInfix(lexer.GT, p.parseBinaryExpression)
	p.registerInfix(lexer.LT_EQ, p.parseBinaryExpression)
	p.registerInfix(lexer.GT_EQ, p.parseBinaryExpression)
	p.registerInfix(lexer.AND, p.parseBinaryExpression)
	p.registerInfix(lexer.OR, p.parseBinaryExpression)
	p.registerInfix(lexer.LPAREN, p.parseCallExpression)
	p.registerInfix(lexer.LBRACKET, p.parseIndexExpression)

	p.advance()
	p.advance()
	return p
}

func (p *Parser) registerPrefix(kind lexer.TokenType, fn prefixParseFn) {
	p.prefixFns[kind] = fn
}

func (p *Parser) registerInfix(kind lexer.TokenType, fn infixParseFn) {
	p.infixFns[kind] = fn
}

// advance shifts the lookahead window forward by one token. A lexical
// error from the underlying lexer is recorded and treated as EOF, so a
// single bad token halts parsing rather than looping forever.
func (p *Parser) advance() {
	p.cur = p.next
	tok, err := p.lex.NextToken()
	if err != nil {
		p.addError(err.Error())
		tok = lexer.Token{Type: lexer.EOF}
	}
	p.next = tok
}

func (p *Parser) curIs(kind lexer.TokenType) bool  { return p.cur.Type == kind }
func (p *Parser) nextIs(kind lexer.TokenType) bool { return p.next.Type == kind }

// expectAdvance checks that the lookahead token has kind; if so it
// advances and returns true, otherwise it records msg and returns false.
func (p *Parser) expectAdvance(kind lexer.TokenType, msg string) bool {
	if !p.nextIs(kind) {
		p.addError(msg)
		return false
	}
	p.advance()
	return true
}

func (p *Parser) addError(msg string) {
	p.errors = append(p.errors, msg)
}

// HasErrors reports whether parsing produced any diagnostics.
func (p *Parser) HasErrors() bool { return len(p.errors) > 0 }

// Errors returns every diagnostic collected during parsing.
func (p *Parser) Errors() []string { return p.errors }

// Parse consumes the full token stream and returns the root of the
// program. Callers must check HasErrors() before trusting the result: a
// parse with errors may still return a partial, non-nil *ast.Root.
func (p *Parser) Parse() *ast.Root {
	root := &ast.Root{}
	for !p.curIs(lexer.EOF) {
		if p.curIs(lexer.SEMICOLON) {
			p.advance()
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil {
			root.Statements = append(root.Statements, stmt)
		}
		p.advance()
	}
	return root
}

func unexpectedTokenMsg(tok lexer.Token) string {
	return fmt.Sprintf("unexpected start of expression: %s", tok.Literal)
}
