/*
File    : sltrans/eval/error.go
*/
package eval

import "github.com/sl-translate/sltrans/diag"

// RuntimeError is the evaluator's single error family (spec.md section
// 4.4/4.5): always fatal, always reported at the offending lexeme's
// position, always followed by exit code -1.
type RuntimeError struct {
	Pos     diag.Pos
	Message string
}

func (e *RuntimeError) Error() string      { return diag.Format(e.Pos, e.Message) }
func (e *RuntimeError) Position() diag.Pos { return e.Pos }
