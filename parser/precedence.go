/*
File   : willow/parser/precedence.go
Package: parser
*/
package parser

import "github.com/arana-dev/willow/lexer"

// Precedence levels, lowest to highest. This is the spec's eight-level
// table, narrowed from the teacher's parser_precedence.go constants
// (LOWEST/OR/AND/EQUALS/LESSGREATER/SUM/PRODUCT/PREFIX/CALL) down to
// the operators Willow actually has: no bitwise tier, one combined
// comparison tier (==, !=, <, >, <=, >=), and POWER folded into the
// PRODUCT tier, left-associative like * / %.
const (
	precLowest     = iota
	precOr         // ||
	precAnd        // &&
	precCompare    // == != < > <= >=
	precSum        // + -
	precProduct    // * / % **
	precUnary      // -x !x
	precCall       // fn(...) arr[i]
)

var precedenceTable = map[lexer.TokenType]int{
	lexer.OR:       precOr,
	lexer.AND:      precAnd,
	lexer.EQ:       precCompare,
	lexer.NOT_EQ:   precCompare,
	lexer.LT:       precCompare,
	lexer.GT:       precCompare,
	lexer.LT_EQ:    precCompare,
	lexer.GT_EQ:    precCompare,
	lexer.PLUS:     precSum,
	lexer.MINUS:    precSum,
	lexer.ASTERISK: precProduct,
	lexer.SLASH:    precProduct,
	lexer.PERCENT:  precProduct,
	lexer.POWER:    precProduct,
	lexer.LPAREN:   precCall,
	lexer.LBRACKET: precCall,
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedenceTable[p.next.Type]; ok {
		return prec
	}
	return precLowest
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedenceTable[p.cur.Type]; ok {
		return prec
	}
	return precLowest
}
