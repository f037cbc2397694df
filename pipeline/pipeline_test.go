package pipeline_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sl-translate/sltrans/pipeline"
	"github.com/sl-translate/sltrans/symtab"
)

func runProgram(t *testing.T, src string) (string, int, error) {
	t.Helper()
	var out bytes.Buffer
	result, err := pipeline.Run("t.sl", strings.NewReader(src), pipeline.NewTables(), &out, strings.NewReader(""))
	if err != nil {
		return out.String(), 0, err
	}
	return out.String(), result.ExitCode, nil
}

func TestArithmeticAndPrint(t *testing.T) {
	out, code, err := runProgram(t, `
		int x = 2 + 3 * 4;
		print(to_string(x));
	`)
	require.NoError(t, err)
	assert.Equal(t, "14", out)
	assert.Equal(t, 0, code)
}

func TestWhileLoopWithBreakAndContinue(t *testing.T) {
	out, _, err := runProgram(t, `
		int i = 0;
		int sum = 0;
		while (i < 10) {
			i = i + 1;
			if (i == 5) { continue; }
			if (i == 8) { break; }
			sum = sum + i;
		}
		print(to_string(sum));
	`)
	require.NoError(t, err)
	assert.Equal(t, "23", out) // 1+2+3+4+6+7
}

func TestIfElse(t *testing.T) {
	out, _, err := runProgram(t, `
		int x = 7;
		if (x % 2 == 0) { print("even"); } else { print("odd"); }
	`)
	require.NoError(t, err)
	assert.Equal(t, "odd", out)
}

func TestStringConcatenationAndStoi(t *testing.T) {
	out, _, err := runProgram(t, `
		string a = "foo";
		string b = a + "bar";
		print(b);
		int n = stoi("42") + 1;
		print(to_string(n));
	`)
	require.NoError(t, err)
	assert.Equal(t, "foobar43", out)
}

func TestArrayDeclarationAndIndexing(t *testing.T) {
	out, _, err := runProgram(t, `
		int a[3];
		a[0] = 10;
		a[1] = a[0] + 5;
		print(to_string(a[1]));
	`)
	require.NoError(t, err)
	assert.Equal(t, "15", out)
}

func TestExitStatementSetsExitCode(t *testing.T) {
	_, code, err := runProgram(t, `exit(3);`)
	require.NoError(t, err)
	assert.Equal(t, 3, code)
}

func TestRuntimeDivisionByZeroIsFatal(t *testing.T) {
	_, _, err := runProgram(t, `int x = 0; int y = 1 / x;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Division by zero")
}

func TestUninitializedReadYieldsNeutralElement(t *testing.T) {
	out, _, err := runProgram(t, `
		int x;
		print(to_string(x));
	`)
	require.NoError(t, err)
	assert.Equal(t, "0", out)
}

func TestScanReadsFromInjectedReader(t *testing.T) {
	var out bytes.Buffer
	result, err := pipeline.Run("t.sl", strings.NewReader(`
		string line = scan();
		print(line);
	`), pipeline.NewTables(), &out, strings.NewReader("hello world\n"))
	require.NoError(t, err)
	assert.Equal(t, "hello world", out.String())
	assert.Equal(t, 0, result.ExitCode)
}

// Declarations persist across successive Run calls sharing the same
// Tables, the property package session relies on to keep state across
// interactive lines.
func TestTablesPersistAcrossRuns(t *testing.T) {
	var out bytes.Buffer
	tables := pipeline.NewTables()
	_, err := pipeline.Run("t.sl", strings.NewReader(`int x = 10;`), tables, &out, nil)
	require.NoError(t, err)
	_, err = pipeline.Run("t.sl", strings.NewReader(`x = x + 5; print(to_string(x));`), tables, &out, nil)
	require.NoError(t, err)
	assert.Equal(t, "15", out.String())
}

// Two independent Run calls against the same Tables, each declaring a
// block-scoped variable of the same name, must not collide: block ids
// have to keep increasing across calls, not restart per call, or the
// second line's declare() wrongly finds the first line's already-exited
// row and reports DoubleDeclaration (spec.md section 4.2.1's "block ids
// never repeat for the program's lifetime", where lifetime in session
// mode means the Tables' lifetime).
func TestBlockIDsDoNotCollideAcrossRuns(t *testing.T) {
	var out bytes.Buffer
	tables := pipeline.NewTables()
	_, err := pipeline.Run("t.sl", strings.NewReader(`{ int x = 1; }`), tables, &out, nil)
	require.NoError(t, err)
	_, err = pipeline.Run("t.sl", strings.NewReader(`{ int x = 2; }`), tables, &out, nil)
	require.NoError(t, err)
}

// The literal table's full contents are easier to review as one
// field-by-field diff than as a run of individual testify assertions,
// one per row - go-cmp's sweet spot.
func TestLiteralTableContentsMatchExpected(t *testing.T) {
	var out bytes.Buffer
	tables := pipeline.NewTables()
	_, err := pipeline.Run("t.sl", strings.NewReader(`
		int x = 1;
		double y = 2.5;
		string s = "hi";
		string s2 = "hi";
	`), tables, &out, nil)
	require.NoError(t, err)

	want := []symtab.LiteralRow{
		{Kind: symtab.IntLiteral, Text: "1"},
		{Kind: symtab.DoubleLiteral, Text: "2.5"},
		{Kind: symtab.StringLiteral, Text: "hi"},
	}
	if diff := cmp.Diff(want, tables.Lits.Rows()); diff != "" {
		t.Errorf("literal table mismatch (-want +got):\n%s", diff)
	}
}
