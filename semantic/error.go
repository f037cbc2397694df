/*
File    : sltrans/semantic/error.go
*/
package semantic

import "github.com/sl-translate/sltrans/diag"

// Error is the semantic analyzer's single error family (spec.md section
// 4.3): literal divide-by-zero and the integer-only context for `%`.
type Error struct {
	Pos     diag.Pos
	Message string
}

func (e *Error) Error() string      { return diag.Format(e.Pos, e.Message) }
func (e *Error) Position() diag.Pos { return e.Pos }
