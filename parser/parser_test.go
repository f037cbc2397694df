package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sl-translate/sltrans/diag"
	"github.com/sl-translate/sltrans/lexer"
	"github.com/sl-translate/sltrans/parser"
	"github.com/sl-translate/sltrans/symtab"
)

func parse(t *testing.T, src string) (*symtab.LiteralTable, *symtab.VariableTable, error) {
	t.Helper()
	lits := symtab.NewLiteralTable()
	vars := symtab.NewVariableTable()
	lx, err := lexer.New("t.sl", strings.NewReader(src), lits, vars)
	require.NoError(t, err)
	lexs, err := lx.Analyze()
	require.NoError(t, err)
	eofLine, eofCol := lx.EOFPosition()
	p := parser.New("t.sl", lexs, diag.Pos{File: "t.sl", Line: eofLine, Col: eofCol}, lits, vars, symtab.NewBlockIDs())
	_, err = p.Parse()
	return lits, vars, err
}

func TestParseSimpleDeclarationAndAssignment(t *testing.T) {
	_, vars, err := parse(t, `int x = 5; x = x + 1;`)
	require.NoError(t, err)
	row := vars.Get(0)
	assert.Equal(t, "x", row.Name)
	assert.Equal(t, symtab.Int, row.Type)
	assert.Equal(t, 0, row.BlockLevel)
	assert.Equal(t, 0, row.BlockID)
}

func TestUsingBeforeDeclarationIsAnError(t *testing.T) {
	_, _, err := parse(t, `x = 5;`)
	require.Error(t, err)
	perr, ok := err.(*parser.Error)
	require.True(t, ok)
	assert.Equal(t, parser.KindUsingBeforeDeclaration, perr.Kind)
}

func TestDoubleDeclarationInSameBlockIsAnError(t *testing.T) {
	_, _, err := parse(t, `int x = 1; int x = 2;`)
	require.Error(t, err)
	perr, ok := err.(*parser.Error)
	require.True(t, ok)
	assert.Equal(t, parser.KindDoubleDeclaration, perr.Kind)
}

func TestSameNameInNestedBlockShadows(t *testing.T) {
	_, vars, err := parse(t, `int x = 1; { int x = 2; x = 3; }`)
	require.NoError(t, err)
	assert.Equal(t, 2, vars.Len())
	inner := vars.Get(1)
	assert.Equal(t, 1, inner.BlockLevel)
}

func TestAssigningToNonSubscriptableIsAnError(t *testing.T) {
	_, _, err := parse(t, `int x = 1; x[0] = 2;`)
	require.Error(t, err)
	perr, ok := err.(*parser.Error)
	require.True(t, ok)
	assert.Equal(t, parser.KindNotSubscriptable, perr.Kind)
}

func TestArrayDeclarationAndIndexAssignment(t *testing.T) {
	_, vars, err := parse(t, `int a[3]; a[0] = 1;`)
	require.NoError(t, err)
	row := vars.Get(0)
	assert.True(t, row.IsArray)
	assert.Equal(t, 3, row.ArraySize)
}

func TestBreakOutsideLoopIsAnError(t *testing.T) {
	_, _, err := parse(t, `break;`)
	require.Error(t, err)
}

func TestBreakInsideWhileIsFine(t *testing.T) {
	_, _, err := parse(t, `while (true) { break; }`)
	require.NoError(t, err)
}

// The ambiguous bool_term grammar (spec.md section 4.2.3) requires a
// backtracking window to distinguish a parenthesized comparison from a
// parenthesized boolean sub-expression, and another to tell apart a bare
// boolean identifier from the left operand of a comparison.
func TestAmbiguousParenthesizedComparisonVsBoolean(t *testing.T) {
	_, _, err := parse(t, `int x = 1; int y = 2; bool b = true; if ((x < y)) { print("y"); } if ((b)) { print("y"); }`)
	require.NoError(t, err)
}

func TestBareBoolIdentifierVsComparisonLeftOperand(t *testing.T) {
	_, _, err := parse(t, `bool flag = true; int x = 1; int y = 2; if (flag) { print("a"); } if (x < y) { print("b"); }`)
	require.NoError(t, err)
}

func TestMissingSemicolonIsExpectedError(t *testing.T) {
	_, _, err := parse(t, `int x = 1`)
	require.Error(t, err)
	perr, ok := err.(*parser.Error)
	require.True(t, ok)
	assert.Equal(t, parser.KindExpected, perr.Kind)
}
