/*
File    : sltrans/eval/values.go

Handles the leaf and keyword shapes of a Common node: literals, resolved
identifier uses, and the keyword-dispatched constructs of spec.md section
4.4 (control flow, I/O, coercions, exit).
*/
package eval

import (
	"io"
	"strconv"
	"strings"

	"github.com/sl-translate/sltrans/ast"
	"github.com/sl-translate/sltrans/lexer"
	"github.com/sl-translate/sltrans/value"
)

func (e *Evaluator) evalCommon(node *ast.Node) (value.Value, error) {
	lex := node.Lexeme
	switch lex.Category {
	case lexer.CategoryInt:
		n, _ := strconv.ParseInt(e.lits.Get(lex.Index).Text, 10, 64)
		return value.IntValue(n), nil
	case lexer.CategoryDouble:
		f, _ := strconv.ParseFloat(e.lits.Get(lex.Index).Text, 64)
		return value.DoubleValue(f), nil
	case lexer.CategoryString:
		return value.StringValue(e.lits.Get(lex.Index).Text), nil
	case lexer.CategoryIdentifier:
		return readVar(e.vars.Get(lex.Index)), nil
	case lexer.CategoryKeyword:
		return e.evalKeyword(node)
	case lexer.CategoryOperator:
		return e.evalOperator(node)
	}
	return nil, e.fatalError(lex, "unevaluable node")
}

func (e *Evaluator) evalKeyword(node *ast.Node) (value.Value, error) {
	lex := node.Lexeme
	switch lex.Keyword {
	case lexer.KwTrue:
		return value.BoolValue(true), nil
	case lexer.KwFalse:
		return value.BoolValue(false), nil

	case lexer.KwWhile:
		return e.evalWhile(node)
	case lexer.KwIf:
		return e.evalIf(node)

	case lexer.KwPrint:
		sv, err := e.eval(node.Children[0])
		if err != nil {
			return nil, err
		}
		s, ok := sv.(value.StringValue)
		if !ok {
			return nil, e.fatalError(lex, "print expects a string")
		}
		if _, err := io.WriteString(e.writer, string(s)); err != nil {
			return nil, e.fatalError(lex, err.Error())
		}
		return nil, nil

	case lexer.KwScan:
		line, err := e.reader.ReadString('\n')
		if err != nil && line == "" {
			return value.StringValue(""), nil
		}
		return value.StringValue(strings.TrimRight(line, "\r\n")), nil

	case lexer.KwToString:
		av, err := e.eval(node.Children[0])
		if err != nil {
			return nil, err
		}
		return value.StringValue(av.String()), nil

	case lexer.KwStoi:
		sv, err := e.eval(node.Children[0])
		if err != nil {
			return nil, err
		}
		s, ok := sv.(value.StringValue)
		if !ok {
			return nil, e.fatalError(lex, "stoi expects a string")
		}
		n, convErr := strconv.ParseInt(strings.TrimSpace(string(s)), 10, 64)
		if convErr != nil {
			return nil, e.fatalError(lex, "stoi: cannot convert "+strconv.Quote(string(s))+" to int")
		}
		return value.IntValue(n), nil

	case lexer.KwStod:
		sv, err := e.eval(node.Children[0])
		if err != nil {
			return nil, err
		}
		s, ok := sv.(value.StringValue)
		if !ok {
			return nil, e.fatalError(lex, "stod expects a string")
		}
		f, convErr := strconv.ParseFloat(strings.TrimSpace(string(s)), 64)
		if convErr != nil {
			return nil, e.fatalError(lex, "stod: cannot convert "+strconv.Quote(string(s))+" to double")
		}
		return value.DoubleValue(f), nil

	case lexer.KwExit:
		cv, err := e.eval(node.Children[0])
		if err != nil {
			return nil, err
		}
		code, ok := cv.(value.IntValue)
		if !ok {
			return nil, e.fatalError(lex, "exit expects an int")
		}
		return nil, exitSignal{Code: int(code)}

	case lexer.KwBreak:
		return nil, breakSignal{}
	case lexer.KwContinue:
		return nil, continueSignal{}

	default:
		// int/double/bool/string/void/nullptr type-name keywords never
		// appear outside a Declaration's documentary first child, which
		// eval never dispatches into; any keyword leaf that does reach
		// this default evaluates to the neutral int value, without error.
		return value.Neutral(value.Int), nil
	}
}

func (e *Evaluator) evalWhile(node *ast.Node) (value.Value, error) {
	cond := node.Children[0]
	var body *ast.Node
	if len(node.Children) > 1 {
		body = node.Children[1]
	}
	for {
		cv, err := e.eval(cond)
		if err != nil {
			return nil, err
		}
		b, ok := cv.(value.BoolValue)
		if !ok {
			return nil, e.fatalError(node.Lexeme, "while condition is not boolean")
		}
		if !bool(b) {
			return nil, nil
		}
		if body == nil {
			continue
		}
		if _, err := e.eval(body); err != nil {
			if _, isBreak := err.(breakSignal); isBreak {
				return nil, nil
			}
			if _, isContinue := err.(continueSignal); isContinue {
				continue
			}
			return nil, err
		}
	}
}

func (e *Evaluator) evalIf(node *ast.Node) (value.Value, error) {
	cond := node.Children[0]
	thenStmt := node.Children[1]
	var elseStmt *ast.Node
	if len(node.Children) > 2 {
		elseStmt = node.Children[2]
	}
	cv, err := e.eval(cond)
	if err != nil {
		return nil, err
	}
	b, ok := cv.(value.BoolValue)
	if !ok {
		return nil, e.fatalError(node.Lexeme, "if condition is not boolean")
	}
	if bool(b) {
		return e.eval(thenStmt)
	}
	if elseStmt != nil {
		return e.eval(elseStmt)
	}
	return nil, nil
}
