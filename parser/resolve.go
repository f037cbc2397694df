/*
File    : sltrans/parser/resolve.go

Implements the declaration and use-resolution algorithm of spec.md section
4.2.2 against the shared two-phase symtab.VariableTable: a lexeme's Index
field is mutated in place, in both directions, as declarations and uses
are discovered. Because ast.Node stores a *lexer.Lexeme taken from the
parser's own lexeme slice, rewriting lex.Index here is immediately visible
to every node that references this occurrence.
*/
package parser

import (
	"github.com/sl-translate/sltrans/lexer"
	"github.com/sl-translate/sltrans/symtab"
)

// declare implements spec.md section 4.2.2's three-step declaration
// algorithm for lex, a freshly-seen identifier in a var_decl, at the
// parser's current scope.
func (p *Parser) declare(lex *lexer.Lexeme, typ symtab.VariableType) (int, error) {
	frame := p.scopes.Top()
	row := p.vars.Get(lex.Index)

	if row.Type == symtab.Unknown {
		row.Type = typ
		row.BlockLevel = frame.Level
		row.BlockID = frame.BlockID
		return lex.Index, nil
	}

	if existing := p.vars.FindInBlock(row.Name, frame.BlockID); existing != -1 {
		return -1, p.errDoubleDeclaration(p.lexPos(lex), row.Name)
	}

	newIdx := p.vars.Append(&symtab.VariableRow{
		Name: row.Name, Type: typ, BlockLevel: frame.Level, BlockID: frame.BlockID,
	})
	lex.Index = newIdx
	return newIdx, nil
}

// resolveUse implements spec.md section 4.2.2's use-resolution walk:
// innermost scope outward, first name match wins.
func (p *Parser) resolveUse(lex *lexer.Lexeme) (int, error) {
	name := p.vars.Get(lex.Index).Name
	frames := p.scopes.Frames()
	for i := len(frames) - 1; i >= 0; i-- {
		f := frames[i]
		if idx := p.vars.FindInScope(name, f.Level, f.BlockID); idx != -1 {
			lex.Index = idx
			return idx, nil
		}
	}
	return -1, p.errUsingBeforeDeclaration(p.lexPos(lex), name)
}
