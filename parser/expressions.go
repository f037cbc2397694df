/*
File    : sltrans/parser/expressions.go

Implements the three typed expression sub-grammars of spec.md section
4.2.3: arithmetic (precedence-climbing over addop/mulop), string
(concatenation over string terms), and boolean (short-circuit || / &&,
with the one documented backtracking window for ambiguous parenthesized
and comparison terms).
*/
package parser

import (
	"github.com/sl-translate/sltrans/ast"
	"github.com/sl-translate/sltrans/lexer"
	"github.com/sl-translate/sltrans/symtab"
)

// --- arithmetic ----------------------------------------------------------

// parseArith implements `arith := unary { addop unary }`.
func (p *Parser) parseArith() (*ast.Node, error) {
	left, err := p.parseArithUnary()
	if err != nil {
		return nil, err
	}
	for p.isOperator(lexer.OpPlus) || p.isOperator(lexer.OpMinus) {
		opLex := p.advance()
		right, err := p.parseArithUnary()
		if err != nil {
			return nil, err
		}
		left = ast.NewCommon(opLex, left, right)
	}
	return left, nil
}

// parseArithUnary implements `unary := [ "+" | "-" ] term { mulop term }`.
func (p *Parser) parseArithUnary() (*ast.Node, error) {
	var signLex *lexer.Lexeme
	if p.isOperator(lexer.OpPlus) || p.isOperator(lexer.OpMinus) {
		signLex = p.advance()
	}

	term, err := p.parseArithTerm()
	if err != nil {
		return nil, err
	}
	if signLex != nil {
		term = ast.NewCommon(signLex, term)
	}

	for p.isOperator(lexer.OpAsterisk) || p.isOperator(lexer.OpSlash) || p.isOperator(lexer.OpPercent) {
		opLex := p.advance()
		rhs, err := p.parseArithTerm()
		if err != nil {
			return nil, err
		}
		term = ast.NewCommon(opLex, term, rhs)
	}
	return term, nil
}

// parseArithTerm implements:
//
//	term := "(" arith ")" | int_lit | dbl_lit | stoi_call | stod_call | identifier_use
func (p *Parser) parseArithTerm() (*ast.Node, error) {
	switch {
	case p.isDelimiter(lexer.DelimOpenParen):
		p.advance()
		expr, err := p.parseArith()
		if err != nil {
			return nil, err
		}
		if err := p.expectDelimiter(lexer.DelimCloseParen, "')'"); err != nil {
			return nil, err
		}
		return expr, nil

	case p.isCategory(lexer.CategoryInt), p.isCategory(lexer.CategoryDouble):
		lex := p.advance()
		return ast.NewCommon(lex), nil

	case p.isKeyword(lexer.KwStoi):
		return p.parseStoiCall()

	case p.isKeyword(lexer.KwStod):
		return p.parseStodCall()

	case p.isCategory(lexer.CategoryIdentifier):
		return p.parseArithIdentifier()

	default:
		return nil, p.errExpected(p.curPos(), "arithmetic term")
	}
}

func (p *Parser) parseArithIdentifier() (*ast.Node, error) {
	lex := p.advance()
	rowIdx, err := p.resolveUse(lex)
	if err != nil {
		return nil, err
	}
	row := p.vars.Get(rowIdx)
	if row.Type != symtab.Int && row.Type != symtab.Double {
		return nil, p.errGeneric(p.lexPos(lex), "expected an int or double identifier")
	}
	if p.isDelimiter(lexer.DelimOpenBracket) {
		if !row.IsArray {
			return nil, p.errNotSubscriptable(p.lexPos(lex), row.Name)
		}
		p.advance()
		index, err := p.parseArith()
		if err != nil {
			return nil, err
		}
		if err := p.expectDelimiter(lexer.DelimCloseBracket, "']'"); err != nil {
			return nil, err
		}
		return ast.NewIndexAppeal(lex, rowIdx, index), nil
	}
	return ast.NewCommon(lex), nil
}

func (p *Parser) parseStoiCall() (*ast.Node, error) {
	lex := p.advance()
	if err := p.expectDelimiter(lexer.DelimOpenParen, "'('"); err != nil {
		return nil, err
	}
	arg, err := p.parseString()
	if err != nil {
		return nil, err
	}
	if err := p.expectDelimiter(lexer.DelimCloseParen, "')'"); err != nil {
		return nil, err
	}
	return ast.NewCommon(lex, arg), nil
}

func (p *Parser) parseStodCall() (*ast.Node, error) {
	lex := p.advance()
	if err := p.expectDelimiter(lexer.DelimOpenParen, "'('"); err != nil {
		return nil, err
	}
	arg, err := p.parseString()
	if err != nil {
		return nil, err
	}
	if err := p.expectDelimiter(lexer.DelimCloseParen, "')'"); err != nil {
		return nil, err
	}
	return ast.NewCommon(lex, arg), nil
}

// --- string ----------------------------------------------------------------

// parseString implements `string_expr := string_term { "+" string_term }`.
func (p *Parser) parseString() (*ast.Node, error) {
	left, err := p.parseStringTerm()
	if err != nil {
		return nil, err
	}
	for p.isOperator(lexer.OpPlus) {
		opLex := p.advance()
		right, err := p.parseStringTerm()
		if err != nil {
			return nil, err
		}
		left = ast.NewCommon(opLex, left, right)
	}
	return left, nil
}

// parseStringTerm implements:
//
//	string_term := identifier_use(string) | to_string_call | scan_call | string_literal
func (p *Parser) parseStringTerm() (*ast.Node, error) {
	switch {
	case p.isCategory(lexer.CategoryString):
		lex := p.advance()
		return ast.NewCommon(lex), nil

	case p.isKeyword(lexer.KwToString):
		lex := p.advance()
		if err := p.expectDelimiter(lexer.DelimOpenParen, "'('"); err != nil {
			return nil, err
		}
		arg, err := p.parseArith()
		if err != nil {
			return nil, err
		}
		if err := p.expectDelimiter(lexer.DelimCloseParen, "')'"); err != nil {
			return nil, err
		}
		return ast.NewCommon(lex, arg), nil

	case p.isKeyword(lexer.KwScan):
		lex := p.advance()
		if err := p.expectDelimiter(lexer.DelimOpenParen, "'('"); err != nil {
			return nil, err
		}
		if err := p.expectDelimiter(lexer.DelimCloseParen, "')'"); err != nil {
			return nil, err
		}
		return ast.NewCommon(lex), nil

	case p.isCategory(lexer.CategoryIdentifier):
		return p.parseStringIdentifier()

	default:
		return nil, p.errExpected(p.curPos(), "string term")
	}
}

func (p *Parser) parseStringIdentifier() (*ast.Node, error) {
	lex := p.advance()
	rowIdx, err := p.resolveUse(lex)
	if err != nil {
		return nil, err
	}
	row := p.vars.Get(rowIdx)
	if row.Type != symtab.String {
		return nil, p.errGeneric(p.lexPos(lex), "expected a string identifier")
	}
	if p.isDelimiter(lexer.DelimOpenBracket) {
		if !row.IsArray {
			return nil, p.errNotSubscriptable(p.lexPos(lex), row.Name)
		}
		p.advance()
		index, err := p.parseArith()
		if err != nil {
			return nil, err
		}
		if err := p.expectDelimiter(lexer.DelimCloseBracket, "']'"); err != nil {
			return nil, err
		}
		return ast.NewIndexAppeal(lex, rowIdx, index), nil
	}
	return ast.NewCommon(lex), nil
}

// --- boolean -----------------------------------------------------------------

// parseBool implements `bool_expr := bool_and { "||" bool_and }`.
func (p *Parser) parseBool() (*ast.Node, error) {
	left, err := p.parseBoolAnd()
	if err != nil {
		return nil, err
	}
	for p.isOperator(lexer.OpOr) {
		opLex := p.advance()
		right, err := p.parseBoolAnd()
		if err != nil {
			return nil, err
		}
		left = ast.NewCommon(opLex, left, right)
	}
	return left, nil
}

// parseBoolAnd implements `bool_and := bool_not_term { "&&" bool_not_term }`.
func (p *Parser) parseBoolAnd() (*ast.Node, error) {
	left, err := p.parseBoolNotTerm()
	if err != nil {
		return nil, err
	}
	for p.isOperator(lexer.OpAnd) {
		opLex := p.advance()
		right, err := p.parseBoolNotTerm()
		if err != nil {
			return nil, err
		}
		left = ast.NewCommon(opLex, left, right)
	}
	return left, nil
}

// parseBoolNotTerm implements `bool_not_term := [ "!" ] bool_term`.
func (p *Parser) parseBoolNotTerm() (*ast.Node, error) {
	if p.isOperator(lexer.OpNot) {
		notLex := p.advance()
		term, err := p.parseBoolTerm()
		if err != nil {
			return nil, err
		}
		return ast.NewCommon(notLex, term), nil
	}
	return p.parseBoolTerm()
}

// parseBoolTerm implements:
//
//	bool_term := identifier_use(bool) | "true" | "false" | "(" bool_expr ")" | comparison
//
// A leading '(' is ambiguous between a parenthesized bool_expr and a
// parenthesized comparison operand; every other shape is ambiguous
// between a standalone bool identifier and the left operand of a
// comparison. Both cases use the single documented backtracking window
// of spec.md section 4.2.3: save the cursor, attempt one alternative,
// and on failure rewind and attempt the other.
func (p *Parser) parseBoolTerm() (*ast.Node, error) {
	switch {
	case p.isKeyword(lexer.KwTrue), p.isKeyword(lexer.KwFalse):
		lex := p.advance()
		return ast.NewCommon(lex), nil

	case p.isDelimiter(lexer.DelimOpenParen):
		save := p.pos
		if node, err := p.tryParenBoolExpr(); err == nil {
			return node, nil
		}
		p.pos = save
		return p.parseComparison()

	default:
		save := p.pos
		if node, err := p.parseComparison(); err == nil {
			return node, nil
		}
		p.pos = save
		return p.parseBoolIdentifier()
	}
}

func (p *Parser) tryParenBoolExpr() (*ast.Node, error) {
	p.advance() // '('
	expr, err := p.parseBool()
	if err != nil {
		return nil, err
	}
	if err := p.expectDelimiter(lexer.DelimCloseParen, "')'"); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) parseBoolIdentifier() (*ast.Node, error) {
	if !p.isCategory(lexer.CategoryIdentifier) {
		return nil, p.errExpected(p.curPos(), "boolean expression")
	}
	lex := p.advance()
	rowIdx, err := p.resolveUse(lex)
	if err != nil {
		return nil, err
	}
	if p.vars.Get(rowIdx).Type != symtab.Bool {
		return nil, p.errGeneric(p.lexPos(lex), "expected a bool identifier")
	}
	return ast.NewCommon(lex), nil
}

type cmpKind int

const (
	cmpArith cmpKind = iota
	cmpString
)

// parseComparison implements `comparison := cmp_term cmp_op cmp_term`,
// requiring both operands to agree in category.
func (p *Parser) parseComparison() (*ast.Node, error) {
	left, leftKind, err := p.parseCmpTerm()
	if err != nil {
		return nil, err
	}
	if !p.isCmpOp() {
		return nil, p.errExpected(p.curPos(), "comparison operator")
	}
	opLex := p.advance()
	right, rightKind, err := p.parseCmpTerm()
	if err != nil {
		return nil, err
	}
	if leftKind != rightKind {
		return nil, p.errGeneric(p.lexPos(opLex), "comparison operands must both be arithmetic or both be string")
	}
	return ast.NewCommon(opLex, left, right), nil
}

// parseCmpTerm implements `cmp_term := arith_expr | string_expr`, chosen by
// controlled retry: arithmetic is tried first, then string.
func (p *Parser) parseCmpTerm() (*ast.Node, cmpKind, error) {
	save := p.pos
	if node, err := p.parseArith(); err == nil {
		return node, cmpArith, nil
	}
	p.pos = save
	if node, err := p.parseString(); err == nil {
		return node, cmpString, nil
	}
	p.pos = save
	return nil, 0, p.errExpected(p.curPos(), "comparison operand")
}
