/*
File    : sltrans/cmd/sltrans/main.go
*/

// Command sltrans is the translator's outer driver: the part spec.md
// section 1 calls out as an external collaborator of the core four
// subsystems (the program driver, I/O host, and table/tree
// pretty-printing). It never contains translator logic of its own - it
// only wires package pipeline to the process's argv, stdio, and exit
// status.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/juju/errors"
	"github.com/juju/loggo"
	"github.com/pborman/getopt"

	"github.com/sl-translate/sltrans/session"
)

var (
	errColor = color.New(color.FgRed, color.Bold)
	okColor  = color.New(color.FgGreen)
	logger   = loggo.GetLogger("sltrans")
)

const usage = "[--log-level LEVEL] [--dump-tables] [--dump-tree] [--no-color] <source-file>\n" +
	"       sltrans session [--log-level LEVEL] [--no-color]"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "session" {
		runSession(os.Args[2:])
		return
	}
	os.Exit(runFile(os.Args[1:]))
}

func runFile(argv []string) int {
	var (
		logLevel   = "WARNING"
		dumpTables bool
		dumpTree   bool
		noColor    bool
	)

	set := getopt.New()
	set.StringVarLong(&logLevel, "log-level", 0, "TRACE|DEBUG|INFO|WARNING")
	set.BoolVarLong(&dumpTables, "dump-tables", 0, "print the literal and variable tables after a successful run")
	set.BoolVarLong(&dumpTree, "dump-tree", 0, "print the annotated syntax tree after a successful run")
	set.BoolVarLong(&noColor, "no-color", 0, "disable colorized diagnostics")
	set.SetParameters("<source-file>")
	if err := set.Getopt(argv, nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		set.PrintUsage(os.Stderr)
		return 2
	}

	if noColor {
		color.NoColor = true
	}
	configureLogging(logLevel)

	args := set.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: sltrans "+usage)
		return 2
	}
	fname := args[0]

	f, err := os.Open(fname)
	if err != nil {
		reportDriverError(errors.Annotate(err, "opening source file"))
		return 2
	}
	defer f.Close()

	logger.Infof("translating %s", fname)
	result, runErr := translate(fname, f, os.Stdout, os.Stdin)
	if runErr != nil {
		reportError(fname, runErr)
		if result != nil && result.ExitCode != 0 {
			return result.ExitCode
		}
		return 1
	}

	if dumpTables {
		dumpSymbolTables(result)
	}
	if dumpTree {
		dumpSyntaxTree(result)
	}

	return result.ExitCode
}

func runSession(argv []string) {
	var (
		logLevel = "WARNING"
		noColor  bool
	)
	set := getopt.New()
	set.StringVarLong(&logLevel, "log-level", 0, "TRACE|DEBUG|INFO|WARNING")
	set.BoolVarLong(&noColor, "no-color", 0, "disable colorized output")
	if err := set.Getopt(argv, nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if noColor {
		color.NoColor = true
	}
	configureLogging(logLevel)

	repl := session.New()
	repl.Run(os.Stdin, os.Stdout)
}

func configureLogging(level string) {
	lvl, ok := loggo.ParseLevel(level)
	if !ok {
		lvl = loggo.WARNING
	}
	loggo.GetLogger("sltrans").SetLogLevel(lvl)
}

func reportError(fname string, err error) {
	errColor.Fprintln(os.Stderr, err.Error())
}

func reportDriverError(err error) {
	errColor.Fprintln(os.Stderr, errors.Details(err))
}
