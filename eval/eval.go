// Package eval computes the numeric value of a parsed expression tree.
package eval

import (
	"errors"
	"fmt"

	"go.creack.net/gocalc/ast"
	"go.creack.net/gocalc/lexer"
)

// Sentinel evaluation errors, matchable with errors.Is.
var (
	ErrDivisionByZero  = errors.New("division by zero")
	ErrUnknownNode     = errors.New("unknown expression node")
	ErrUnknownOperator = errors.New("unknown operator")
)

// Error reports an evaluation failure together with the offending
// subexpression.
type Error struct {
	Err  error
	Node ast.Expr
}

func (e *Error) Error() string {
	if e.Node == nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Node.Dump())
}

func (e *Error) Unwrap() error { return e.Err }

// Evaluate walks the expression tree and computes its value.
// Children are always evaluated left to right.
func Evaluate(node ast.Expr) (float64, error) {
	switch n := node.(type) {
	case ast.NumberExpr:
		return n.Value, nil

	case ast.UnaryExpr:
		value, err := Evaluate(n.Right)
		if err != nil {
			return 0, err
		}
		return -value, nil

	case ast.BinaryExpr:
		left, err := Evaluate(n.Left)
		if err != nil {
			return 0, err
		}
		right, err := Evaluate(n.Right)
		if err != nil {
			return 0, err
		}
		switch n.Operator.Type {
		case lexer.TokPlus:
			return left + right, nil
		case lexer.TokMinus:
			return left - right, nil
		case lexer.TokStar:
			return left * right, nil
		case lexer.TokSlash:
			if right == 0 {
				return 0, &Error{Err: ErrDivisionByZero, Node: n.Right}
			}
			return left / right, nil
		default:
			return 0, &Error{Err: ErrUnknownOperator, Node: n}
		}

	default:
		return 0, &Error{Err: ErrUnknownNode, Node: node}
	}
}
