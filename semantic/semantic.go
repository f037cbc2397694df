/*
File    : sltrans/semantic/semantic.go

Package semantic implements the single recursive pass of spec.md section
4.3: it does not type-check the whole program, only the two specific
static safety properties the spec names. Everything else is a runtime
concern left to the evaluator.
*/
package semantic

import (
	"strconv"

	"github.com/sl-translate/sltrans/ast"
	"github.com/sl-translate/sltrans/diag"
	"github.com/sl-translate/sltrans/lexer"
	"github.com/sl-translate/sltrans/symtab"
)

// Analyze walks root once, failing on the first literal divide-by-zero or
// non-integer operand of `%` it finds.
func Analyze(fname string, root *ast.Node, lits *symtab.LiteralTable, vars *symtab.VariableTable) error {
	w := &walker{fname: fname, lits: lits, vars: vars}
	return w.walk(root)
}

type walker struct {
	fname string
	lits  *symtab.LiteralTable
	vars  *symtab.VariableTable
}

func (w *walker) pos(lex *lexer.Lexeme) diag.Pos {
	return diag.Pos{File: w.fname, Line: lex.Line, Col: lex.Col}
}

func (w *walker) walk(node *ast.Node) error {
	if node == nil {
		return nil
	}
	if node.Tag == ast.Common && node.Lexeme != nil && node.Lexeme.Category == lexer.CategoryOperator {
		switch node.Lexeme.Operator {
		case lexer.OpSlash:
			if err := w.checkDivByZero(node); err != nil {
				return err
			}
		case lexer.OpPercent:
			for _, operand := range node.Children {
				if err := w.checkIntContext(operand); err != nil {
					return err
				}
			}
		}
	}
	for _, child := range node.Children {
		if err := w.walk(child); err != nil {
			return err
		}
	}
	return nil
}

// checkDivByZero implements section 4.3 rule 1: only a literal zero on the
// right of `/` is caught here; a zero-valued identifier is a runtime
// concern.
func (w *walker) checkDivByZero(node *ast.Node) error {
	if len(node.Children) != 2 {
		return nil
	}
	right := node.Children[1]
	if right.Tag != ast.Common || right.Lexeme == nil {
		return nil
	}
	switch right.Lexeme.Category {
	case lexer.CategoryInt:
		text := w.lits.Get(right.Lexeme.Index).Text
		if v, err := strconv.ParseInt(text, 10, 64); err == nil && v == 0 {
			return &Error{Pos: w.pos(right.Lexeme), Message: "Division by zero"}
		}
	case lexer.CategoryDouble:
		text := w.lits.Get(right.Lexeme.Index).Text
		if v, err := strconv.ParseFloat(text, 64); err == nil && v == 0 {
			return &Error{Pos: w.pos(right.Lexeme), Message: "Division by zero"}
		}
	}
	return nil
}

// checkIntContext implements section 4.3 rule 2, recursing into an operand
// subtree of `%` and failing at the first double-typed leaf it finds.
func (w *walker) checkIntContext(node *ast.Node) error {
	if node == nil {
		return nil
	}

	if node.Tag == ast.IndexAppeal {
		row := w.vars.Get(node.VarIndex)
		if row.Type == symtab.Double {
			return &Error{Pos: w.pos(node.Lexeme), Message: "Int expected"}
		}
		return nil
	}

	if node.Tag == ast.Common && node.Lexeme != nil {
		switch node.Lexeme.Category {
		case lexer.CategoryDouble:
			return &Error{Pos: w.pos(node.Lexeme), Message: "Int expected"}
		case lexer.CategoryIdentifier:
			row := w.vars.Get(node.Lexeme.Index)
			if row.Type == symtab.Double {
				return &Error{Pos: w.pos(node.Lexeme), Message: "Int expected"}
			}
			return nil
		case lexer.CategoryKeyword:
			switch node.Lexeme.Keyword {
			case lexer.KwStod:
				return &Error{Pos: w.pos(node.Lexeme), Message: "Int expected"}
			case lexer.KwStoi:
				return nil // short-circuits as integer-typed without descent
			}
		}
	}

	for _, child := range node.Children {
		if err := w.checkIntContext(child); err != nil {
			return err
		}
	}
	return nil
}
