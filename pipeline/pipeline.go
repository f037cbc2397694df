/*
File    : sltrans/pipeline/pipeline.go

Package pipeline wires the four translator stages together the way
spec.md section 2 describes the data flow: strictly linear, each stage
reading the previous stage's output and the shared tables. Both the
one-shot file driver (cmd/sltrans) and the line-oriented session mode
(package session) run the same Run function, so neither can drift from
the other's notion of "what the translator does."
*/
package pipeline

import (
	"io"

	"github.com/juju/loggo"

	"github.com/sl-translate/sltrans/ast"
	"github.com/sl-translate/sltrans/diag"
	"github.com/sl-translate/sltrans/eval"
	"github.com/sl-translate/sltrans/lexer"
	"github.com/sl-translate/sltrans/parser"
	"github.com/sl-translate/sltrans/semantic"
	"github.com/sl-translate/sltrans/symtab"
)

var logger = loggo.GetLogger("sltrans.pipeline")

// Tables bundles the symbol tables a caller may want to inspect after a
// run (for --dump-tables style diagnostics) or carry into the next one
// (the session mode's persistent variable/literal state). BlockIDs is
// carried alongside Vars for the same reason: block ids must never
// repeat for Vars's lifetime (spec.md section 4.2.1), which in session
// mode spans many independent Run calls, not just one.
type Tables struct {
	Lits     *symtab.LiteralTable
	Vars     *symtab.VariableTable
	BlockIDs *symtab.BlockIDs
}

// NewTables returns an empty pair of symbol tables and a fresh block-id
// allocator.
func NewTables() *Tables {
	return &Tables{Lits: symtab.NewLiteralTable(), Vars: symtab.NewVariableTable(), BlockIDs: symtab.NewBlockIDs()}
}

// Result carries everything a caller might want to report after a run:
// the tables as they stood afterward, the syntax tree, and the evaluator's
// exit code. Run returns a nil *Result when lexing or parsing fails; after
// a semantic error the Result has the tree and an ExitCode of 0.
type Result struct {
	Tables   *Tables
	Tree     *ast.Node
	ExitCode int
}

// Run lexes, parses, semantically checks, and evaluates src in full,
// against tables (which a caller may reuse across calls to accumulate
// declarations, as the session mode does). out and in, if non-nil,
// redirect print/scan; nil keeps the evaluator's process-stream default.
func Run(fname string, src io.Reader, tables *Tables, out io.Writer, in io.Reader) (*Result, error) {
	logger.Tracef("lexer: enter %s", fname)
	lx, err := lexer.New(fname, src, tables.Lits, tables.Vars)
	if err != nil {
		return nil, err
	}
	lexs, err := lx.Analyze()
	if err != nil {
		return nil, err
	}
	logger.Tracef("lexer: exit %s, %d lexemes", fname, len(lexs))

	eofLine, eofCol := lx.EOFPosition()
	eofPos := diag.Pos{File: fname, Line: eofLine, Col: eofCol}

	logger.Tracef("parser: enter %s", fname)
	p := parser.New(fname, lexs, eofPos, tables.Lits, tables.Vars, tables.BlockIDs)
	tree, err := p.Parse()
	if err != nil {
		return nil, err
	}
	logger.Tracef("parser: exit %s", fname)

	logger.Tracef("semantic: enter %s", fname)
	if err := semantic.Analyze(fname, tree, tables.Lits, tables.Vars); err != nil {
		return &Result{Tables: tables, Tree: tree}, err
	}
	logger.Tracef("semantic: exit %s", fname)

	logger.Tracef("eval: enter %s", fname)
	ev := eval.New(fname, tables.Lits, tables.Vars)
	if out != nil {
		ev.SetWriter(out)
	}
	if in != nil {
		ev.SetReader(in)
	}
	code, err := ev.Run(tree)
	logger.Tracef("eval: exit %s, code=%d", fname, code)
	return &Result{Tables: tables, Tree: tree, ExitCode: code}, err
}
