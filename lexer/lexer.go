/*
File    : sltrans/lexer/lexer.go
*/
package lexer

import (
	"io"
	"strings"

	"github.com/sl-translate/sltrans/symtab"
)

type state int

const (
	stateStart state = iota
	stateIDOrKeyword
	stateNumber
	stateDelimiter
	stateOperator
	stateString
	stateOneLineComment
	stateEnd
)

const eof byte = 0

// Lexer drives the explicit character-level state machine described in
// spec.md section 4.1. It populates the literal and variable tables as a
// side effect of scanning, since the first occurrence of a numeric/string
// literal or an identifier-shaped word must be registered the moment it is
// recognized.
//
// line and col are always kept 1-based and always describe the position of
// ch, the character the lexer is currently looking at (not yet consumed).
type Lexer struct {
	fname string
	src   []byte
	pos   int
	ch    byte
	line  int
	col   int

	lits *symtab.LiteralTable
	vars *symtab.VariableTable
	lexs []Lexeme

	state  state
	buffer strings.Builder

	startLine, startCol int // position of the lexeme currently being accumulated
}

// New creates a Lexer for fname's content, read in full from r. If r also
// implements io.Closer, Close is called before New returns, once the
// content has been read, whether or not the read succeeded; Analyze then
// works on the in-memory copy.
func New(fname string, r io.Reader, lits *symtab.LiteralTable, vars *symtab.VariableTable) (*Lexer, error) {
	data, err := io.ReadAll(r)
	if closer, ok := r.(io.Closer); ok {
		closeErr := closer.Close()
		if err == nil {
			err = closeErr
		}
	}
	if err != nil {
		return nil, err
	}
	return &Lexer{fname: fname, src: data, lits: lits, vars: vars, line: 1}, nil
}

// Analyze drives the state machine to completion and returns the full
// lexeme stream, or the first LexicalError encountered.
func (l *Lexer) Analyze() ([]Lexeme, error) {
	l.readch()
	for {
		switch l.state {
		case stateStart:
			l.startState()
		case stateIDOrKeyword:
			l.idOrKeywordState()
		case stateNumber:
			if err := l.numberState(); err != nil {
				return nil, err
			}
		case stateDelimiter:
			l.delimiterState()
		case stateOperator:
			if err := l.operatorState(); err != nil {
				return nil, err
			}
		case stateString:
			if err := l.stringState(); err != nil {
				return nil, err
			}
		case stateOneLineComment:
			l.oneLineCommentState()
		case stateEnd:
			return l.lexs, nil
		}
	}
}

// ColumnAtEOF reports the column of the final line's end, defined as the
// count of characters on that line. The lexer's internal col counter
// always points one past the last character consumed, so this is col-1.
func (l *Lexer) ColumnAtEOF() int {
	return l.col - 1
}

// EOFPosition returns the line and column Analyze stopped at. Callers
// anchor "expected X" parser errors at end of input to this position.
func (l *Lexer) EOFPosition() (line, col int) {
	return l.line, l.col
}

// readch advances to the next source character. col increments for every
// character consumed; crossing a newline bumps line and resets col to 1,
// since the character read within this same call becomes that new line's
// first column.
func (l *Lexer) readch() {
	if l.ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	if l.pos < len(l.src) {
		l.ch = l.src[l.pos]
		l.pos++
	} else {
		l.ch = eof
	}
}

func isWhitespace(ch byte) bool { return ch == ' ' || ch == '\t' || ch == '\n' }
func isDigit(ch byte) bool      { return ch >= '0' && ch <= '9' }
func isLetter(ch byte) bool     { return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch == '_' }
func isAlnum(ch byte) bool      { return isLetter(ch) || isDigit(ch) }

func (l *Lexer) startState() {
	for isWhitespace(l.ch) {
		l.readch()
	}

	switch {
	case l.ch == eof:
		l.state = stateEnd
	case isLetter(l.ch):
		l.startLine, l.startCol = l.line, l.col
		l.state = stateIDOrKeyword
	case isDigit(l.ch) || l.ch == '.':
		l.startLine, l.startCol = l.line, l.col
		l.state = stateNumber
	case isDelimiterByte(l.ch):
		l.state = stateDelimiter
	case l.ch == '"':
		l.startLine, l.startCol = l.line, l.col
		l.state = stateString
	default:
		l.state = stateOperator
	}
}

func (l *Lexer) idOrKeywordState() {
	l.buffer.Reset()
	for isAlnum(l.ch) {
		l.buffer.WriteByte(l.ch)
		l.readch()
	}
	word := l.buffer.String()
	if kw, ok := LookupKeyword(word); ok {
		l.addKeyword(kw)
	} else {
		idx := l.vars.PushPlaceholder(word)
		l.addIdentifier(idx)
	}
	l.state = stateStart
}

func (l *Lexer) numberState() error {
	l.buffer.Reset()
	sawDot := false
	for isDigit(l.ch) || l.ch == '.' {
		if l.ch == '.' {
			if sawDot {
				return l.errorf(l.line, l.col, "too many decimal points")
			}
			sawDot = true
		}
		l.buffer.WriteByte(l.ch)
		l.readch()
	}

	if !isWhitespace(l.ch) && l.ch != eof && l.ch != ';' && l.ch != ')' && l.ch != ']' {
		if _, looksLikeOperator := operatorText[string(l.ch)]; !looksLikeOperator {
			return l.errorf(l.line, l.col, "wrong characters after a number")
		}
	}

	text := l.buffer.String()
	if sawDot {
		idx := l.lits.Push(text, symtab.DoubleLiteral)
		l.addNumber(CategoryDouble, idx)
	} else {
		idx := l.lits.Push(text, symtab.IntLiteral)
		l.addNumber(CategoryInt, idx)
	}
	l.state = stateStart
	return nil
}

func (l *Lexer) delimiterState() {
	l.addDelimiter(Delimiter(l.ch))
	l.readch()
	l.state = stateStart
}

var escapeTable = map[byte]byte{
	'a': '\a', 'b': '\b', 'f': '\f', 'n': '\n', 'r': '\r', 't': '\t', 'v': '\v',
	'\'': '\'', '"': '"', '\\': '\\',
}

func (l *Lexer) stringState() error {
	l.buffer.Reset()
	l.readch() // consume opening quote
	for l.ch != '"' {
		if l.ch == '\n' || l.ch == eof {
			return l.errorf(l.line, l.col, "missing terminating quote")
		}
		if l.ch == '\\' {
			backslashLine, backslashCol := l.line, l.col
			l.readch()
			escaped, ok := escapeTable[l.ch]
			if !ok {
				return l.errorf(backslashLine, backslashCol, "no such escape sequence")
			}
			l.buffer.WriteByte(escaped)
			l.readch()
			continue
		}
		l.buffer.WriteByte(l.ch)
		l.readch()
	}
	idx := l.lits.Push(l.buffer.String(), symtab.StringLiteral)
	l.addString(idx)
	l.readch() // consume closing quote
	l.state = stateStart
	return nil
}

func (l *Lexer) operatorState() error {
	first := l.ch
	firstLine, firstCol := l.line, l.col
	l.readch()
	window := string([]byte{first, l.ch})

	if window == "//" {
		l.readch()
		l.state = stateOneLineComment
		return nil
	}
	if op, ok := operatorText[window]; ok {
		l.readch()
		l.emitOperator(op, firstLine, firstCol)
		l.state = stateStart
		return nil
	}
	if op, ok := operatorText[string(first)]; ok {
		l.emitOperator(op, firstLine, firstCol)
		l.state = stateStart
		return nil
	}
	return l.errorf(firstLine, firstCol, "unknown character")
}

func (l *Lexer) oneLineCommentState() {
	for l.ch != '\n' && l.ch != eof {
		l.readch()
	}
	l.state = stateStart
}

func (l *Lexer) addKeyword(kw Keyword) {
	l.lexs = append(l.lexs, Lexeme{Category: CategoryKeyword, Keyword: kw, Line: l.startLine, Col: l.startCol})
}

func (l *Lexer) addIdentifier(idx int) {
	l.lexs = append(l.lexs, Lexeme{Category: CategoryIdentifier, Index: idx, Line: l.startLine, Col: l.startCol})
}

func (l *Lexer) addNumber(cat Category, idx int) {
	l.lexs = append(l.lexs, Lexeme{Category: cat, Index: idx, Line: l.startLine, Col: l.startCol})
}

func (l *Lexer) addString(idx int) {
	l.lexs = append(l.lexs, Lexeme{Category: CategoryString, Index: idx, Line: l.startLine, Col: l.startCol})
}

func (l *Lexer) addDelimiter(d Delimiter) {
	l.lexs = append(l.lexs, Lexeme{Category: CategoryDelimiter, Delimiter: d, Line: l.line, Col: l.col})
}

func (l *Lexer) emitOperator(op Operator, line, col int) {
	l.lexs = append(l.lexs, Lexeme{Category: CategoryOperator, Operator: op, Line: line, Col: col})
}
