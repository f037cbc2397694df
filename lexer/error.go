/*
File    : sltrans/lexer/error.go
*/
package lexer

import "github.com/sl-translate/sltrans/diag"

// Error is raised at the position of the offending character. It is the
// only error family the lexer can produce (spec.md section 7).
type Error struct {
	Pos         diag.Pos
	Description string
}

func (e *Error) Error() string      { return diag.Format(e.Pos, e.Description) }
func (e *Error) Position() diag.Pos { return e.Pos }

func (l *Lexer) errorf(line, col int, description string) *Error {
	return &Error{Pos: diag.Pos{File: l.fname, Line: line, Col: col}, Description: description}
}
