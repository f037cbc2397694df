/*
File    : sltrans/eval/operators.go

Implements the operator dispatch of spec.md section 4.4: assignment,
unary/binary arithmetic, string concatenation, comparisons, and
short-circuit && / ||. Int/double widening follows the host runtime's
float64, per the Design Notes' "widening rule implicit in the host
runtime" language - the spec deliberately leaves the numeric tower
unconstrained.
*/
package eval

import (
	"github.com/sl-translate/sltrans/ast"
	"github.com/sl-translate/sltrans/lexer"
	"github.com/sl-translate/sltrans/value"
)

func (e *Evaluator) evalOperator(node *ast.Node) (value.Value, error) {
	lex := node.Lexeme
	switch lex.Operator {
	case lexer.OpAssign:
		return e.evalAssign(node)
	case lexer.OpAnd:
		return e.evalAnd(node)
	case lexer.OpOr:
		return e.evalOr(node)
	case lexer.OpNot:
		v, err := e.eval(node.Children[0])
		if err != nil {
			return nil, err
		}
		b, ok := v.(value.BoolValue)
		if !ok {
			return nil, e.fatalError(lex, "'!' expects a bool operand")
		}
		return value.BoolValue(!bool(b)), nil
	case lexer.OpPlus, lexer.OpMinus:
		if len(node.Children) == 1 {
			return e.evalUnarySign(node)
		}
		return e.evalArithOrConcat(node)
	case lexer.OpAsterisk, lexer.OpSlash, lexer.OpPercent:
		return e.evalArithOrConcat(node)
	case lexer.OpEqual, lexer.OpNotEqual, lexer.OpLess, lexer.OpLessEqual, lexer.OpGreater, lexer.OpGreaterEqual:
		return e.evalComparison(node)
	}
	return nil, e.fatalError(lex, "unsupported operator")
}

func (e *Evaluator) evalAssign(node *ast.Node) (value.Value, error) {
	lhs, rhs := node.Children[0], node.Children[1]
	rv, err := e.eval(rhs)
	if err != nil {
		return nil, err
	}
	if err := e.assign(lhs, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (e *Evaluator) assign(lhs *ast.Node, v value.Value) error {
	switch lhs.Tag {
	case ast.Common:
		e.vars.Get(lhs.Lexeme.Index).Value = v
		return nil
	case ast.IndexAppeal:
		row := e.vars.Get(lhs.VarIndex)
		idxVal, err := e.eval(lhs.Children[0])
		if err != nil {
			return err
		}
		iv, ok := idxVal.(value.IntValue)
		if !ok {
			return e.fatalError(lhs.Lexeme, "array index must be an integer")
		}
		i := int(iv)
		if i < 0 || i >= row.ArraySize {
			return e.fatalError(lhs.Lexeme, "array index out of bounds")
		}
		ensureElements(row)
		row.Elements[i] = v
		return nil
	}
	return e.fatalError(lhs.Lexeme, "invalid assignment target")
}

func (e *Evaluator) evalAnd(node *ast.Node) (value.Value, error) {
	lv, err := e.eval(node.Children[0])
	if err != nil {
		return nil, err
	}
	lb, ok := lv.(value.BoolValue)
	if !ok {
		return nil, e.fatalError(node.Lexeme, "'&&' expects bool operands")
	}
	if !bool(lb) {
		return value.BoolValue(false), nil
	}
	rv, err := e.eval(node.Children[1])
	if err != nil {
		return nil, err
	}
	rb, ok := rv.(value.BoolValue)
	if !ok {
		return nil, e.fatalError(node.Lexeme, "'&&' expects bool operands")
	}
	return rb, nil
}

func (e *Evaluator) evalOr(node *ast.Node) (value.Value, error) {
	lv, err := e.eval(node.Children[0])
	if err != nil {
		return nil, err
	}
	lb, ok := lv.(value.BoolValue)
	if !ok {
		return nil, e.fatalError(node.Lexeme, "'||' expects bool operands")
	}
	if bool(lb) {
		return value.BoolValue(true), nil
	}
	rv, err := e.eval(node.Children[1])
	if err != nil {
		return nil, err
	}
	rb, ok := rv.(value.BoolValue)
	if !ok {
		return nil, e.fatalError(node.Lexeme, "'||' expects bool operands")
	}
	return rb, nil
}

func (e *Evaluator) evalUnarySign(node *ast.Node) (value.Value, error) {
	v, err := e.eval(node.Children[0])
	if err != nil {
		return nil, err
	}
	negate := node.Lexeme.Operator == lexer.OpMinus
	switch n := v.(type) {
	case value.IntValue:
		if negate {
			return value.IntValue(-n), nil
		}
		return n, nil
	case value.DoubleValue:
		if negate {
			return value.DoubleValue(-n), nil
		}
		return n, nil
	}
	return nil, e.fatalError(node.Lexeme, "unary sign expects a numeric operand")
}

func (e *Evaluator) evalArithOrConcat(node *ast.Node) (value.Value, error) {
	lv, err := e.eval(node.Children[0])
	if err != nil {
		return nil, err
	}
	rv, err := e.eval(node.Children[1])
	if err != nil {
		return nil, err
	}
	if node.Lexeme.Operator == lexer.OpPlus {
		if ls, ok := lv.(value.StringValue); ok {
			rs, ok := rv.(value.StringValue)
			if !ok {
				return nil, e.fatalError(node.Lexeme, "cannot concatenate a non-string value")
			}
			return value.StringValue(string(ls) + string(rs)), nil
		}
	}
	return e.arith(node.Lexeme, lv, rv)
}

func (e *Evaluator) arith(lex *lexer.Lexeme, left, right value.Value) (value.Value, error) {
	li, lIsInt := left.(value.IntValue)
	ri, rIsInt := right.(value.IntValue)
	if lIsInt && rIsInt {
		a, b := int64(li), int64(ri)
		switch lex.Operator {
		case lexer.OpPlus:
			return value.IntValue(a + b), nil
		case lexer.OpMinus:
			return value.IntValue(a - b), nil
		case lexer.OpAsterisk:
			return value.IntValue(a * b), nil
		case lexer.OpSlash:
			if b == 0 {
				return nil, e.fatalError(lex, "Division by zero")
			}
			return value.IntValue(a / b), nil
		case lexer.OpPercent:
			if b == 0 {
				return nil, e.fatalError(lex, "Division by zero")
			}
			return value.IntValue(a % b), nil
		}
	}

	if lex.Operator == lexer.OpPercent {
		return nil, e.fatalError(lex, "'%' requires integer operands")
	}

	lf, lOk := asFloat(left)
	rf, rOk := asFloat(right)
	if !lOk || !rOk {
		return nil, e.fatalError(lex, "invalid operand types for arithmetic operator")
	}
	switch lex.Operator {
	case lexer.OpPlus:
		return value.DoubleValue(lf + rf), nil
	case lexer.OpMinus:
		return value.DoubleValue(lf - rf), nil
	case lexer.OpAsterisk:
		return value.DoubleValue(lf * rf), nil
	case lexer.OpSlash:
		if rf == 0 {
			return nil, e.fatalError(lex, "Division by zero")
		}
		return value.DoubleValue(lf / rf), nil
	}
	return nil, e.fatalError(lex, "invalid operand types for arithmetic operator")
}

func (e *Evaluator) evalComparison(node *ast.Node) (value.Value, error) {
	lv, err := e.eval(node.Children[0])
	if err != nil {
		return nil, err
	}
	rv, err := e.eval(node.Children[1])
	if err != nil {
		return nil, err
	}
	lex := node.Lexeme

	if ls, ok := lv.(value.StringValue); ok {
		rs, ok := rv.(value.StringValue)
		if !ok {
			return nil, e.fatalError(lex, "comparison operand type mismatch")
		}
		return compareOrdered(lex.Operator, string(ls), string(rs), func(a, b string) int {
			switch {
			case a < b:
				return -1
			case a > b:
				return 1
			default:
				return 0
			}
		})
	}

	lf, lOk := asFloat(lv)
	rf, rOk := asFloat(rv)
	if !lOk || !rOk {
		return nil, e.fatalError(lex, "comparison operand type mismatch")
	}
	return compareOrdered(lex.Operator, lf, rf, func(a, b float64) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	})
}

// compareOrdered turns a three-way comparator into the boolean result for
// op, generic over the operand type so string and numeric comparisons
// share one switch.
func compareOrdered[T any](op lexer.Operator, a, b T, cmp func(T, T) int) (value.Value, error) {
	c := cmp(a, b)
	switch op {
	case lexer.OpEqual:
		return value.BoolValue(c == 0), nil
	case lexer.OpNotEqual:
		return value.BoolValue(c != 0), nil
	case lexer.OpLess:
		return value.BoolValue(c < 0), nil
	case lexer.OpLessEqual:
		return value.BoolValue(c <= 0), nil
	case lexer.OpGreater:
		return value.BoolValue(c > 0), nil
	case lexer.OpGreaterEqual:
		return value.BoolValue(c >= 0), nil
	}
	return nil, nil
}

func asFloat(v value.Value) (float64, bool) {
	switch n := v.(type) {
	case value.IntValue:
		return float64(n), true
	case value.DoubleValue:
		return float64(n), true
	}
	return 0, false
}
