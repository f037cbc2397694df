/*
File    : sltrans/parser/statements.go

Implements the statement grammar of spec.md section 4.2.1.
*/
package parser

import (
	"strconv"

	"github.com/sl-translate/sltrans/ast"
	"github.com/sl-translate/sltrans/lexer"
	"github.com/sl-translate/sltrans/symtab"
)

func (p *Parser) parseStatement() (*ast.Node, error) {
	switch {
	case p.isTypeKeyword():
		return p.parseVarDecl()
	case p.isDelimiter(lexer.DelimOpenBrace):
		return p.parseBlock()
	case p.isKeyword(lexer.KwIf):
		return p.parseIf()
	case p.isKeyword(lexer.KwWhile):
		return p.parseWhile()
	case p.isKeyword(lexer.KwPrint):
		return p.parsePrint()
	case p.isKeyword(lexer.KwExit):
		return p.parseExit()
	case p.isKeyword(lexer.KwBreak):
		return p.parseBreak()
	case p.isKeyword(lexer.KwContinue):
		return p.parseContinue()
	case p.isCategory(lexer.CategoryIdentifier):
		return p.parseAssignment()
	default:
		return nil, p.errExpected(p.curPos(), "statement")
	}
}

func (p *Parser) parseBlock() (*ast.Node, error) {
	if err := p.expectDelimiter(lexer.DelimOpenBrace, "'{'"); err != nil {
		return nil, err
	}
	p.scopes.Enter()
	block := ast.NewCodeBlock()
	for !p.atEnd() && !p.isDelimiter(lexer.DelimCloseBrace) {
		stmt, err := p.parseStatement()
		if err != nil {
			p.scopes.Exit()
			return nil, err
		}
		block.Append(stmt)
	}
	if err := p.expectDelimiter(lexer.DelimCloseBrace, "'}'"); err != nil {
		p.scopes.Exit()
		return nil, err
	}
	p.scopes.Exit()
	return block, nil
}

// parseVarDecl implements:
//
//	var_decl := type identifier [ "[" int_literal "]" ] [ "=" expr ] ";"
func (p *Parser) parseVarDecl() (*ast.Node, error) {
	typeLex := p.advance()
	declaredType := keywordToType(typeLex.Keyword)

	if !p.isCategory(lexer.CategoryIdentifier) {
		return nil, p.errExpected(p.curPos(), "identifier")
	}
	idLex := p.advance()

	rowIdx, err := p.declare(idLex, declaredType)
	if err != nil {
		return nil, err
	}

	if p.isDelimiter(lexer.DelimOpenBracket) {
		p.advance()
		if !p.isCategory(lexer.CategoryInt) {
			return nil, p.errExpected(p.curPos(), "integer literal")
		}
		sizeLex := p.advance()
		size, convErr := strconv.Atoi(p.lits.Get(sizeLex.Index).Text)
		if convErr != nil {
			return nil, p.errGeneric(p.curPos(), "malformed array size literal")
		}
		row := p.vars.Get(rowIdx)
		row.IsArray = true
		row.ArraySize = size
		if err := p.expectDelimiter(lexer.DelimCloseBracket, "']'"); err != nil {
			return nil, err
		}
	}

	typeNode := ast.NewCommon(typeLex)
	children := []*ast.Node{typeNode}

	if p.isOperator(lexer.OpAssign) {
		assignLex := p.advance()
		rhs, err := p.parseExprForType(declaredType)
		if err != nil {
			return nil, err
		}
		idNode := ast.NewCommon(idLex)
		initNode := ast.NewCommon(assignLex, idNode, rhs)
		children = append(children, initNode)
	}

	if err := p.expectDelimiter(lexer.DelimSemicolon, "';'"); err != nil {
		return nil, err
	}

	return ast.NewDeclaration(idLex, rowIdx, children...), nil
}

// parseAssignment implements:
//
//	assignment := identifier [ "[" arith_expr "]" ] "=" expr ";"
func (p *Parser) parseAssignment() (*ast.Node, error) {
	idLex := p.advance()
	rowIdx, err := p.resolveUse(idLex)
	if err != nil {
		return nil, err
	}
	row := p.vars.Get(rowIdx)

	var lhs *ast.Node
	if p.isDelimiter(lexer.DelimOpenBracket) {
		if !row.IsArray {
			return nil, p.errNotSubscriptable(p.curPos(), row.Name)
		}
		p.advance()
		index, err := p.parseArith()
		if err != nil {
			return nil, err
		}
		if err := p.expectDelimiter(lexer.DelimCloseBracket, "']'"); err != nil {
			return nil, err
		}
		lhs = ast.NewIndexAppeal(idLex, rowIdx, index)
	} else {
		lhs = ast.NewCommon(idLex)
	}

	if !p.isOperator(lexer.OpAssign) {
		return nil, p.errExpected(p.curPos(), "'='")
	}
	assignLex := p.advance()

	rhs, err := p.parseExprForType(row.Type)
	if err != nil {
		return nil, err
	}

	if err := p.expectDelimiter(lexer.DelimSemicolon, "';'"); err != nil {
		return nil, err
	}

	return ast.NewCommon(assignLex, lhs, rhs), nil
}

func (p *Parser) parseIf() (*ast.Node, error) {
	ifLex := p.advance()
	if err := p.expectDelimiter(lexer.DelimOpenParen, "'('"); err != nil {
		return nil, err
	}
	cond, err := p.parseBool()
	if err != nil {
		return nil, err
	}
	if err := p.expectDelimiter(lexer.DelimCloseParen, "')'"); err != nil {
		return nil, err
	}
	thenStmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	children := []*ast.Node{cond, thenStmt}
	if p.isKeyword(lexer.KwElse) {
		p.advance()
		elseStmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		children = append(children, elseStmt)
	}
	return ast.NewCommon(ifLex, children...), nil
}

// parseWhile implements `while := "while" "(" bool_expr ")" ( ";" | statement )`.
// A node with a single child (the condition) represents the no-body form.
func (p *Parser) parseWhile() (*ast.Node, error) {
	whileLex := p.advance()
	if err := p.expectDelimiter(lexer.DelimOpenParen, "'('"); err != nil {
		return nil, err
	}
	p.nestingWhile++
	cond, err := p.parseBool()
	if err != nil {
		p.nestingWhile--
		return nil, err
	}
	if err := p.expectDelimiter(lexer.DelimCloseParen, "')'"); err != nil {
		p.nestingWhile--
		return nil, err
	}

	children := []*ast.Node{cond}
	if p.isDelimiter(lexer.DelimSemicolon) {
		p.advance()
	} else {
		body, err := p.parseStatement()
		if err != nil {
			p.nestingWhile--
			return nil, err
		}
		children = append(children, body)
	}
	p.nestingWhile--
	return ast.NewCommon(whileLex, children...), nil
}

func (p *Parser) parsePrint() (*ast.Node, error) {
	printLex := p.advance()
	if err := p.expectDelimiter(lexer.DelimOpenParen, "'('"); err != nil {
		return nil, err
	}
	strExpr, err := p.parseString()
	if err != nil {
		return nil, err
	}
	if err := p.expectDelimiter(lexer.DelimCloseParen, "')'"); err != nil {
		return nil, err
	}
	if err := p.expectDelimiter(lexer.DelimSemicolon, "';'"); err != nil {
		return nil, err
	}
	return ast.NewCommon(printLex, strExpr), nil
}

func (p *Parser) parseExit() (*ast.Node, error) {
	exitLex := p.advance()
	if err := p.expectDelimiter(lexer.DelimOpenParen, "'('"); err != nil {
		return nil, err
	}
	code, err := p.parseArith()
	if err != nil {
		return nil, err
	}
	if err := p.expectDelimiter(lexer.DelimCloseParen, "')'"); err != nil {
		return nil, err
	}
	if err := p.expectDelimiter(lexer.DelimSemicolon, "';'"); err != nil {
		return nil, err
	}
	return ast.NewCommon(exitLex, code), nil
}

func (p *Parser) parseBreak() (*ast.Node, error) {
	lex := p.advance()
	if p.nestingWhile == 0 {
		return nil, p.errGeneric(p.lexPos(lex), "'break' outside of a loop")
	}
	if err := p.expectDelimiter(lexer.DelimSemicolon, "';'"); err != nil {
		return nil, err
	}
	return ast.NewCommon(lex), nil
}

func (p *Parser) parseContinue() (*ast.Node, error) {
	lex := p.advance()
	if p.nestingWhile == 0 {
		return nil, p.errGeneric(p.lexPos(lex), "'continue' outside of a loop")
	}
	if err := p.expectDelimiter(lexer.DelimSemicolon, "';'"); err != nil {
		return nil, err
	}
	return ast.NewCommon(lex), nil
}

func (p *Parser) parseExprForType(t symtab.VariableType) (*ast.Node, error) {
	switch t {
	case symtab.Int, symtab.Double:
		return p.parseArith()
	case symtab.String:
		return p.parseString()
	case symtab.Bool:
		return p.parseBool()
	default:
		return nil, p.errGeneric(p.curPos(), "cannot assign to a value of unknown type")
	}
}
