/*
File    : sltrans/session/session.go

Package session implements the line-oriented interactive mode spec.md
section 9 adds alongside the one-shot file driver: each line the user
enters is a complete, self-contained slice of source, run through the
same package pipeline the file driver uses, against symbol tables that
persist for the life of the session. Because a variable's value lives in
its symtab.VariableRow rather than in the evaluator, reusing the tables
across lines is enough to make declarations and assignments from earlier
lines visible to later ones - no separate "REPL environment" is needed.
*/
package session

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/sl-translate/sltrans/pipeline"
)

const fname = "<session>"

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Session is an interactive sltrans prompt. Tables are created once and
// carried across every line entered, so declarations accumulate the way a
// program's file scope would.
type Session struct {
	Banner  string
	Version string
	Prompt  string
	Line    string

	tables *pipeline.Tables
}

// New returns a Session with the project's default banner, version, and
// prompt, and a fresh, empty pair of symbol tables.
func New() *Session {
	return &Session{
		Banner:  "sltrans - SL statement translator, interactive mode",
		Version: "0.1",
		Prompt:  "sl >>> ",
		Line:    strings.Repeat("-", 60),
		tables:  pipeline.NewTables(),
	}
}

func (s *Session) printBanner(w io.Writer) {
	blueColor.Fprintln(w, s.Line)
	greenColor.Fprintln(w, s.Banner)
	blueColor.Fprintln(w, s.Line)
	yellowColor.Fprintln(w, "version "+s.Version)
	cyanColor.Fprintln(w, "Enter one statement per line. Type '.exit' to quit.")
	blueColor.Fprintln(w, s.Line)
}

// Run drives the read-eval-print loop until the user types .exit or
// readline reports EOF or an interrupt. Lines are read through readline
// from the process's terminal; in is used only as the source for scan().
// Out receives both the banner/diagnostics and anything the evaluated
// program prints.
func (s *Session) Run(in io.Reader, out io.Writer) {
	s.printBanner(out)

	rl, err := readline.New(s.Prompt)
	if err != nil {
		redColor.Fprintf(out, "readline: %v\n", err)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(out, "Good Bye!")
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			fmt.Fprintln(out, "Good Bye!")
			return
		}
		rl.SaveHistory(line)

		s.eval(line, in, out)
	}
}

// eval runs one line of source against the session's persistent tables.
// A line that fails to lex, parse, or pass semantic analysis is reported
// and not evaluated, but its effects on the tables are not rolled back:
// placeholders the lexer registered stay, and declarations the parser had
// already made before the failure stay declared and are visible to later
// lines.
func (s *Session) eval(line string, in io.Reader, out io.Writer) {
	result, err := pipeline.Run(fname, strings.NewReader(line), s.tables, out, in)
	if err != nil {
		redColor.Fprintln(out, err.Error())
		return
	}
	if result.ExitCode != 0 {
		yellowColor.Fprintf(out, "[exit %d]\n", result.ExitCode)
	}
}
