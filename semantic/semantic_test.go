package semantic_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sl-translate/sltrans/diag"
	"github.com/sl-translate/sltrans/lexer"
	"github.com/sl-translate/sltrans/parser"
	"github.com/sl-translate/sltrans/semantic"
	"github.com/sl-translate/sltrans/symtab"
)

func run(t *testing.T, src string) error {
	t.Helper()
	lits := symtab.NewLiteralTable()
	vars := symtab.NewVariableTable()
	lx, err := lexer.New("t.sl", strings.NewReader(src), lits, vars)
	require.NoError(t, err)
	lexs, err := lx.Analyze()
	require.NoError(t, err)
	eofLine, eofCol := lx.EOFPosition()
	p := parser.New("t.sl", lexs, diag.Pos{File: "t.sl", Line: eofLine, Col: eofCol}, lits, vars, symtab.NewBlockIDs())
	tree, err := p.Parse()
	require.NoError(t, err)
	return semantic.Analyze("t.sl", tree, lits, vars)
}

func TestLiteralDivideByZeroIsCaught(t *testing.T) {
	err := run(t, `int x = 1 / 0;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Division by zero")
}

func TestLiteralDoubleDivideByZeroIsCaught(t *testing.T) {
	err := run(t, `double x = 1.0 / 0.0;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Division by zero")
}

func TestNonLiteralDivisorIsNotAStaticError(t *testing.T) {
	err := run(t, `int x = 0; int y = 1 / x;`)
	require.NoError(t, err)
}

func TestPercentOnDoubleLiteralIsCaught(t *testing.T) {
	err := run(t, `int x = 5 % 2.5;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Int expected")
}

func TestPercentOnDoubleIdentifierIsCaught(t *testing.T) {
	err := run(t, `double d = 2.5; int x = 5 % d;`)
	require.Error(t, err)
}

func TestPercentOnStoiResultShortCircuitsAsInt(t *testing.T) {
	err := run(t, `int x = 5 % stoi("2");`)
	require.NoError(t, err)
}

func TestPercentOnStodResultIsCaught(t *testing.T) {
	err := run(t, `int x = 5 % stod("2.5");`)
	require.Error(t, err)
}

func TestPercentOnIntOperandsIsFine(t *testing.T) {
	err := run(t, `int x = 5 % 2;`)
	require.NoError(t, err)
}
