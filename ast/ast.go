// Package ast defines the expression tree produced by the parser.
package ast

// Expr represents an arithmetic expression node. A node owns its
// children; the tree is built bottom-up by the parser and holds no
// reference back to the lexer state.
type Expr interface {
	// Dump returns a fully parenthesized rendering of the expression.
	Dump() string
	expr()
}
