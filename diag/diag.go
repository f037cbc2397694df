/*
File    : sltrans/diag/diag.go

Package diag holds the position and formatting primitives shared by every
pipeline stage's error type (lexer, parser, semantic analyzer, evaluator).
Each stage defines its own error family, but all of them embed a Pos and
render through Format, so the translator only ever has one on-screen error
shape: `File "<name>", line <L> col <C>: <message>`.
*/
package diag

import "fmt"

// Pos identifies a single character in a named source.
// Line and Col are both 1-based, matching the lexeme positions the lexer
// produces.
type Pos struct {
	File string
	Line int
	Col  int
}

// Positioned is implemented by every diagnostic raised anywhere in the
// pipeline. It lets cmd/sltrans format any stage's error the same way
// without a type switch per stage.
type Positioned interface {
	error
	Position() Pos
}

// Format renders a diagnostic the way spec section 7 requires: one line,
// no severity prefix, no trailing punctuation beyond the message itself.
func Format(p Pos, message string) string {
	return fmt.Sprintf("File %q, line %d col %d: %s", p.File, p.Line, p.Col, message)
}
