/*
File    : sltrans/parser/error.go
*/
package parser

import (
	"fmt"

	"github.com/sl-translate/sltrans/diag"
)

// Kind selects which of the five ParseError variants spec.md section 4.2
// names an Error represents.
type Kind int

const (
	KindGeneric Kind = iota
	KindExpected
	KindUsingBeforeDeclaration
	KindDoubleDeclaration
	KindNotSubscriptable
)

// Error is the parser's single error type; Kind picks which rendering of
// What/Message applies. Keeping one struct (rather than five types) lets a
// caller inspect any variant with a single type assertion and a switch on
// Kind.
type Error struct {
	Pos     diag.Pos
	Kind    Kind
	What    string
	Message string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindExpected:
		return diag.Format(e.Pos, fmt.Sprintf("expected %s", e.What))
	case KindUsingBeforeDeclaration:
		return diag.Format(e.Pos, fmt.Sprintf("UsingBeforeDeclaration of variable %s", e.What))
	case KindDoubleDeclaration:
		return diag.Format(e.Pos, fmt.Sprintf("DoubleDeclaration of variable %s", e.What))
	case KindNotSubscriptable:
		return diag.Format(e.Pos, fmt.Sprintf("%s is not subscriptable", e.What))
	default:
		return diag.Format(e.Pos, e.Message)
	}
}

func (e *Error) Position() diag.Pos { return e.Pos }

func (p *Parser) errExpected(pos diag.Pos, what string) *Error {
	return &Error{Pos: pos, Kind: KindExpected, What: what}
}

func (p *Parser) errUsingBeforeDeclaration(pos diag.Pos, name string) *Error {
	return &Error{Pos: pos, Kind: KindUsingBeforeDeclaration, What: name}
}

func (p *Parser) errDoubleDeclaration(pos diag.Pos, name string) *Error {
	return &Error{Pos: pos, Kind: KindDoubleDeclaration, What: name}
}

func (p *Parser) errNotSubscriptable(pos diag.Pos, name string) *Error {
	return &Error{Pos: pos, Kind: KindNotSubscriptable, What: name}
}

func (p *Parser) errGeneric(pos diag.Pos, message string) *Error {
	return &Error{Pos: pos, Kind: KindGeneric, Message: message}
}
