/*
File    : sltrans/eval/eval.go

Package eval implements the tree-walking evaluator of spec.md section
4.4: dispatch is by node type, then by lexeme category, then by
keyword/operator code. Variable values live in the shared
symtab.VariableTable row each resolved identifier lexeme indexes, so no
separate environment structure is needed - the parser's scope resolution
already did that work.
*/
package eval

import (
	"bufio"
	"io"
	"os"

	"github.com/sl-translate/sltrans/ast"
	"github.com/sl-translate/sltrans/diag"
	"github.com/sl-translate/sltrans/lexer"
	"github.com/sl-translate/sltrans/symtab"
	"github.com/sl-translate/sltrans/value"
)

// Evaluator walks an annotated tree built by package parser. The standard
// streams default to os.Stdout/os.Stdin; SetWriter/SetReader let a caller
// (the session REPL, or a test) redirect them without touching the
// evaluation logic itself.
type Evaluator struct {
	fname string
	lits  *symtab.LiteralTable
	vars  *symtab.VariableTable

	writer io.Writer
	reader *bufio.Reader
}

// New returns an Evaluator for root's resolved tables, reading/writing the
// process's standard streams until overridden.
func New(fname string, lits *symtab.LiteralTable, vars *symtab.VariableTable) *Evaluator {
	return &Evaluator{
		fname:  fname,
		lits:   lits,
		vars:   vars,
		writer: os.Stdout,
		reader: bufio.NewReader(os.Stdin),
	}
}

// SetWriter redirects print's output sink.
func (e *Evaluator) SetWriter(w io.Writer) { e.writer = w }

// SetReader redirects scan's input source.
func (e *Evaluator) SetReader(r io.Reader) { e.reader = bufio.NewReader(r) }

// Run evaluates root to completion. It returns the process exit code: 0 on
// a normal finish, whatever exit(code) requested, or -1 on a fatal
// runtime error (in which case err is non-nil and should be printed).
func (e *Evaluator) Run(root *ast.Node) (int, error) {
	_, err := e.eval(root)
	if err == nil {
		return 0, nil
	}
	if exit, ok := err.(exitSignal); ok {
		return exit.Code, nil
	}
	if rtErr, ok := err.(*RuntimeError); ok {
		return -1, rtErr
	}
	// A bare break/continue escaping every loop indicates the parser
	// failed to enforce nesting_while > 0; treat it as a fatal error
	// rather than silently swallowing it.
	return -1, err
}

func (e *Evaluator) pos(lex *lexer.Lexeme) diag.Pos {
	return diag.Pos{File: e.fname, Line: lex.Line, Col: lex.Col}
}

func (e *Evaluator) fatalError(lex *lexer.Lexeme, message string) error {
	return &RuntimeError{Pos: e.pos(lex), Message: message}
}

// eval dispatches on node.Tag first, matching spec.md section 4.4.
func (e *Evaluator) eval(node *ast.Node) (value.Value, error) {
	switch node.Tag {
	case ast.CodeBlock:
		for _, child := range node.Children {
			if _, err := e.eval(child); err != nil {
				return nil, err
			}
		}
		return nil, nil

	case ast.Declaration:
		// Children[0] is the type keyword node, purely documentary; an
		// initializer, if present, is Children[1], itself an '=' node
		// whose assignment side effect writes the declared row.
		if len(node.Children) > 1 {
			if _, err := e.eval(node.Children[1]); err != nil {
				return nil, err
			}
		}
		return nil, nil

	case ast.IndexAppeal:
		return e.evalIndexAppeal(node)

	case ast.Common:
		return e.evalCommon(node)
	}
	return nil, nil
}

func (e *Evaluator) evalIndexAppeal(node *ast.Node) (value.Value, error) {
	row := e.vars.Get(node.VarIndex)
	idxVal, err := e.eval(node.Children[0])
	if err != nil {
		return nil, err
	}
	iv, ok := idxVal.(value.IntValue)
	if !ok {
		return nil, e.fatalError(node.Lexeme, "array index must be an integer")
	}
	i := int(iv)
	if i < 0 || i >= row.ArraySize {
		return nil, e.fatalError(node.Lexeme, "array index out of bounds")
	}
	ensureElements(row)
	if row.Elements[i] == nil {
		return value.Neutral(kindOf(row.Type)), nil
	}
	return row.Elements[i], nil
}

func ensureElements(row *symtab.VariableRow) {
	if row.Elements == nil {
		row.Elements = make([]value.Value, row.ArraySize)
	}
}

func kindOf(t symtab.VariableType) value.Kind {
	switch t {
	case symtab.Int:
		return value.Int
	case symtab.Double:
		return value.Double
	case symtab.Bool:
		return value.Bool
	default:
		return value.String
	}
}

// readVar returns a row's current value, substituting the neutral element
// of its declared type on an uninitialized read (spec.md section 4.4).
func readVar(row *symtab.VariableRow) value.Value {
	if row.Value == nil {
		return value.Neutral(kindOf(row.Type))
	}
	return row.Value
}
