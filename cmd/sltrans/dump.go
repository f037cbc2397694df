/*
File    : sltrans/cmd/sltrans/dump.go

The --dump-tables/--dump-tree debug switches are the one place this
repository does table/tree pretty-printing - spec.md section 1 names that
as an external collaborator of the core, so it lives here and nowhere
else.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/kylelemons/godebug/pretty"

	"github.com/sl-translate/sltrans/pipeline"
)

func translate(fname string, src io.Reader, out io.Writer, in io.Reader) (*pipeline.Result, error) {
	tables := pipeline.NewTables()
	return pipeline.Run(fname, src, tables, out, in)
}

func dumpSymbolTables(result *pipeline.Result) {
	fmt.Fprintln(os.Stdout, "-- literal table --")
	for i, row := range result.Tables.Lits.Rows() {
		fmt.Fprintf(os.Stdout, "%4d  %-6s %q\n", i, row.Kind, row.Text)
	}
	fmt.Fprintln(os.Stdout, "-- variable table --")
	fmt.Fprintln(os.Stdout, pretty.Sprint(result.Tables.Vars.Rows()))
}

func dumpSyntaxTree(result *pipeline.Result) {
	fmt.Fprintln(os.Stdout, "-- syntax tree --")
	fmt.Fprintln(os.Stdout, pretty.Sprint(result.Tree))
}
