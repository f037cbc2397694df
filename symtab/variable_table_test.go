package symtab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sl-translate/sltrans/symtab"
)

func TestPushPlaceholderReusesRowByName(t *testing.T) {
	tbl := symtab.NewVariableTable()
	a := tbl.PushPlaceholder("x")
	b := tbl.PushPlaceholder("x")
	assert.Equal(t, a, b)
	assert.Equal(t, 1, tbl.Len())
	assert.Equal(t, symtab.Unknown, tbl.Get(a).Type)
	assert.Equal(t, -1, tbl.Get(a).BlockLevel)
	assert.Equal(t, -1, tbl.Get(a).BlockID)
}

func TestFindInBlockOnlyMatchesSameBlock(t *testing.T) {
	tbl := symtab.NewVariableTable()
	idx := tbl.Append(&symtab.VariableRow{Name: "x", Type: symtab.Int, BlockLevel: 0, BlockID: 0})
	assert.Equal(t, idx, tbl.FindInBlock("x", 0))
	assert.Equal(t, -1, tbl.FindInBlock("x", 1))
	assert.Equal(t, -1, tbl.FindInBlock("y", 0))
}

func TestFindInScopeMatchesExactFrame(t *testing.T) {
	tbl := symtab.NewVariableTable()
	tbl.Append(&symtab.VariableRow{Name: "x", Type: symtab.Int, BlockLevel: 1, BlockID: 2})
	assert.NotEqual(t, -1, tbl.FindInScope("x", 1, 2))
	assert.Equal(t, -1, tbl.FindInScope("x", 1, 3))
}
