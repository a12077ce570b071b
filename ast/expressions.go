package ast

import (
	"fmt"
	"strconv"

	"go.creack.net/gocalc/lexer"
)

// NumberExpr is a numeric literal.
type NumberExpr struct {
	Value float64
}

func (NumberExpr) expr() {}

func (n NumberExpr) Dump() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// UnaryExpr is a prefix operation, i.e. negation.
type UnaryExpr struct {
	Operator lexer.Token
	Right    Expr
}

func (UnaryExpr) expr() {}

func (u UnaryExpr) Dump() string {
	return fmt.Sprintf("(%s%s)", u.Operator.Value, u.Right.Dump())
}

// BinaryExpr is an infix operation between two subexpressions.
type BinaryExpr struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (BinaryExpr) expr() {}

func (b BinaryExpr) Dump() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.Dump(), b.Operator.Value, b.Right.Dump())
}
