// Package parser builds expression trees from the lexer's token
// stream using recursive descent.
package parser

import (
	"errors"
	"fmt"

	"go.creack.net/gocalc/ast"
	"go.creack.net/gocalc/eval"
	"go.creack.net/gocalc/lexer"
)

// maxNestingDepth bounds parseFactor recursion so hostile input hits
// ErrNestingTooDeep instead of exhausting the stack.
const maxNestingDepth = 1024

type parser struct {
	lex *lexer.Lexer

	curToken lexer.Token

	depth int
}

func newParser(lex *lexer.Lexer) *parser {
	return &parser{lex: lex}
}

// Parse consumes the whole token stream, up to and including TokEOF,
// and returns the expression tree.
func Parse(lex *lexer.Lexer) (ast.Expr, error) {
	p := newParser(lex)

	switch p.nextToken().Type {
	case lexer.TokError:
		return nil, p.lexError()
	case lexer.TokEOF:
		return nil, p.syntaxError(ErrEmptyExpression)
	}

	node, err := parseExpression(p)
	if err != nil {
		return nil, err
	}

	switch p.curToken.Type {
	case lexer.TokEOF:
		return node, nil
	case lexer.TokError:
		return nil, p.lexError()
	default:
		return nil, p.syntaxError(ErrTrailingTokens)
	}
}

// Run evaluates the given arithmetic expression, composing the
// lexing, parsing and evaluation stages. The first failure aborts the
// call; the returned error is wrapped with its originating stage.
func Run(input string) (float64, error) {
	node, err := Parse(lexer.New(input))
	if err != nil {
		var lexErr *lexer.Error
		if errors.As(err, &lexErr) {
			return 0, fmt.Errorf("lex: %w", err)
		}
		return 0, fmt.Errorf("parse: %w", err)
	}
	result, err := eval.Evaluate(node)
	if err != nil {
		return 0, fmt.Errorf("eval: %w", err)
	}
	return result, nil
}

func (p *parser) nextToken() lexer.Token {
	p.curToken = p.lex.NextToken()
	return p.curToken
}
