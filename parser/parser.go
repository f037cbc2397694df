/*
File    : sltrans/parser/parser.go

Package parser implements the hand-written predictive recursive-descent
parser of spec.md section 4.2: one lexeme of lookahead everywhere except
the save-and-rewind backtracking in bool_term (a parenthesized bool_expr
versus a comparison, and a bare bool identifier versus a comparison) and
in choosing between an arithmetic and a string cmp_term.
*/
package parser

import (
	"github.com/sl-translate/sltrans/ast"
	"github.com/sl-translate/sltrans/diag"
	"github.com/sl-translate/sltrans/lexer"
	"github.com/sl-translate/sltrans/symtab"
)

// Parser walks a fixed lexeme stream, mutating vars in place as
// declarations and uses resolve (spec.md section 4.2.2).
type Parser struct {
	fname  string
	lexs   []lexer.Lexeme
	pos    int
	eofPos diag.Pos

	vars   *symtab.VariableTable
	lits   *symtab.LiteralTable
	scopes *symtab.ScopeStack

	nestingWhile int
}

// New returns a parser over lexs. eofPos is the position one past the
// last character of the source, used to anchor "expected X" errors that
// occur at end of input. blockIDs is the block-id allocator backing this
// parse's ScopeStack; callers that parse several independent lexeme
// streams against the same vars (the session mode) must pass the same
// blockIDs to every call so block ids never repeat for vars's lifetime,
// not just for one Parser's (spec.md section 4.2.1).
func New(fname string, lexs []lexer.Lexeme, eofPos diag.Pos, lits *symtab.LiteralTable, vars *symtab.VariableTable, blockIDs *symtab.BlockIDs) *Parser {
	return &Parser{fname: fname, lexs: lexs, eofPos: eofPos, lits: lits, vars: vars, scopes: symtab.NewScopeStack(blockIDs)}
}

// Parse consumes the whole lexeme stream and returns the program's root
// code_block node.
func (p *Parser) Parse() (*ast.Node, error) {
	root := ast.NewCodeBlock()
	for !p.atEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		root.Append(stmt)
	}
	return root, nil
}

// --- lexeme-cursor navigation -------------------------------------------

func (p *Parser) atEnd() bool { return p.pos >= len(p.lexs) }

func (p *Parser) curLex() *lexer.Lexeme {
	if p.atEnd() {
		return nil
	}
	return &p.lexs[p.pos]
}

func (p *Parser) curPos() diag.Pos {
	if p.atEnd() {
		return p.eofPos
	}
	return p.lexPos(&p.lexs[p.pos])
}

// lexPos returns the diagnostic position of a specific lexeme, regardless
// of where the cursor currently sits.
func (p *Parser) lexPos(lex *lexer.Lexeme) diag.Pos {
	return diag.Pos{File: p.fname, Line: lex.Line, Col: lex.Col}
}

func (p *Parser) advance() *lexer.Lexeme {
	lex := p.curLex()
	p.pos++
	return lex
}

func (p *Parser) isCategory(cat lexer.Category) bool {
	return !p.atEnd() && p.lexs[p.pos].Category == cat
}

func (p *Parser) isKeyword(kw lexer.Keyword) bool {
	return !p.atEnd() && p.lexs[p.pos].Category == lexer.CategoryKeyword && p.lexs[p.pos].Keyword == kw
}

func (p *Parser) isDelimiter(d lexer.Delimiter) bool {
	return !p.atEnd() && p.lexs[p.pos].Category == lexer.CategoryDelimiter && p.lexs[p.pos].Delimiter == d
}

func (p *Parser) isOperator(op lexer.Operator) bool {
	return !p.atEnd() && p.lexs[p.pos].Category == lexer.CategoryOperator && p.lexs[p.pos].Operator == op
}

func (p *Parser) isCmpOp() bool {
	return p.isOperator(lexer.OpEqual) || p.isOperator(lexer.OpNotEqual) ||
		p.isOperator(lexer.OpLess) || p.isOperator(lexer.OpLessEqual) ||
		p.isOperator(lexer.OpGreater) || p.isOperator(lexer.OpGreaterEqual)
}

func (p *Parser) isTypeKeyword() bool {
	return p.isKeyword(lexer.KwInt) || p.isKeyword(lexer.KwDouble) ||
		p.isKeyword(lexer.KwBool) || p.isKeyword(lexer.KwString)
}

func keywordToType(kw lexer.Keyword) symtab.VariableType {
	switch kw {
	case lexer.KwInt:
		return symtab.Int
	case lexer.KwDouble:
		return symtab.Double
	case lexer.KwBool:
		return symtab.Bool
	case lexer.KwString:
		return symtab.String
	default:
		return symtab.Unknown
	}
}

func (p *Parser) expectDelimiter(d lexer.Delimiter, what string) error {
	if !p.isDelimiter(d) {
		return p.errExpected(p.curPos(), what)
	}
	p.advance()
	return nil
}
