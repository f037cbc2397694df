package symtab_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"github.com/sl-translate/sltrans/symtab"
)

func TestScopeStackStartsAtFileScope(t *testing.T) {
	s := symtab.NewScopeStack(symtab.NewBlockIDs())
	top := s.Top()
	assert.Equal(t, 0, top.Level)
	assert.Equal(t, 0, top.BlockID)
}

func TestScopeStackBlockIDsStrictlyIncrease(t *testing.T) {
	s := symtab.NewScopeStack(symtab.NewBlockIDs())
	seen := map[int]bool{0: true}
	for i := 0; i < 5; i++ {
		f := s.Enter()
		assert.False(t, seen[f.BlockID], "block id %d reused", f.BlockID)
		seen[f.BlockID] = true
		s.Exit()
	}
}

func TestScopeStackSiblingBlocksGetDistinctIDs(t *testing.T) {
	s := symtab.NewScopeStack(symtab.NewBlockIDs())
	a := s.Enter()
	s.Exit()
	b := s.Enter()
	s.Exit()
	assert.NotEqual(t, a.BlockID, b.BlockID)
	assert.Equal(t, a.Level, b.Level)
}

func TestScopeStackFramesOrderedOutermostToInnermost(t *testing.T) {
	s := symtab.NewScopeStack(symtab.NewBlockIDs())
	s.Enter()
	s.Enter()
	frames := s.Frames()
	assert.Equal(t, 0, frames[0].Level)
	assert.Equal(t, 1, frames[1].Level)
	assert.Equal(t, 2, frames[2].Level)
}

// Two ScopeStacks sharing one BlockIDs allocator never hand out the same
// id - the invariant session mode depends on, since each REPL line
// builds its own ScopeStack against the same persisted allocator.
func TestSharedBlockIDsNeverCollideAcrossStacks(t *testing.T) {
	ids := symtab.NewBlockIDs()
	first := symtab.NewScopeStack(ids)
	a := first.Enter()
	first.Exit()

	second := symtab.NewScopeStack(ids)
	b := second.Enter()
	second.Exit()

	assert.NotEqual(t, a.BlockID, b.BlockID)
}

// For any number of Enter/Exit cycles on a single stack, every block id
// handed out is strictly greater than every id handed out before it.
func TestFreshBlockIDsAlwaysStrictlyIncrease(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("Enter never returns an id <= a previous one", prop.ForAll(
		func(cycles int) bool {
			s := symtab.NewScopeStack(symtab.NewBlockIDs())
			max := 0
			for i := 0; i < cycles; i++ {
				f := s.Enter()
				if f.BlockID <= max {
					return false
				}
				max = f.BlockID
				s.Exit()
			}
			return true
		},
		gen.IntRange(0, 50),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
