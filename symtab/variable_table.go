/*
File    : sltrans/symtab/variable_table.go
*/
package symtab

import "github.com/sl-translate/sltrans/value"

// VariableType is the declared type of a variable table row. Unknown marks
// a placeholder row created by the lexer before the parser has seen a
// declaration for that name.
type VariableType int

const (
	Unknown VariableType = iota
	Int
	Double
	Bool
	String
)

func (t VariableType) String() string {
	switch t {
	case Int:
		return "int"
	case Double:
		return "double"
	case Bool:
		return "bool"
	case String:
		return "string"
	default:
		return "unknown"
	}
}

// VariableRow is one entry of the variable table. BlockLevel and BlockID
// are only meaningful once Type has moved off Unknown; a placeholder row
// carries BlockLevel == BlockID == -1.
type VariableRow struct {
	Name       string
	Type       VariableType
	BlockLevel int
	BlockID    int
	IsArray    bool
	ArraySize  int
	Value      value.Value
	Elements   []value.Value // backing storage when IsArray is true
}

// VariableTable is the ordered sequence of variable rows shared by the
// lexer (which appends untyped placeholders), the parser (which rewrites
// placeholders into real declarations and resolves uses against them), and
// the evaluator (which reads and writes the Value/Elements slots).
type VariableTable struct {
	rows []*VariableRow
}

// NewVariableTable returns an empty variable table.
func NewVariableTable() *VariableTable {
	return &VariableTable{}
}

// PushPlaceholder implements the lexer side of the two-phase table design
// (spec.md section 3): the first occurrence of an identifier-shaped token
// appends a fresh Unknown-typed row; every later occurrence of the same
// textual name, before any declaration has run, returns that same index.
func (t *VariableTable) PushPlaceholder(name string) int {
	for i, row := range t.rows {
		if row.Name == name {
			return i
		}
	}
	t.rows = append(t.rows, &VariableRow{Name: name, Type: Unknown, BlockLevel: -1, BlockID: -1})
	return len(t.rows) - 1
}

// Get returns the row at idx.
func (t *VariableTable) Get(idx int) *VariableRow {
	return t.rows[idx]
}

// Append adds a fully-formed row (used when a declaration must create a
// brand new row rather than rewrite a placeholder in place) and returns
// its index.
func (t *VariableTable) Append(row *VariableRow) int {
	t.rows = append(t.rows, row)
	return len(t.rows) - 1
}

// FindInBlock returns the index of a row named name declared directly in
// blockID, or -1 if there is none. Used to detect DoubleDeclaration.
func (t *VariableTable) FindInBlock(name string, blockID int) int {
	for i, row := range t.rows {
		if row.Name == name && row.BlockID == blockID {
			return i
		}
	}
	return -1
}

// FindInScope returns the index of a row named name visible at
// (level, blockID), or -1 if there is none.
func (t *VariableTable) FindInScope(name string, level, blockID int) int {
	for i, row := range t.rows {
		if row.Name == name && row.BlockLevel == level && row.BlockID == blockID {
			return i
		}
	}
	return -1
}

// Len reports the number of rows, placeholders included.
func (t *VariableTable) Len() int {
	return len(t.rows)
}

// Rows returns the full table in insertion order, for pretty-printing.
func (t *VariableTable) Rows() []*VariableRow {
	return t.rows
}
