package parser

import (
	"strconv"

	"go.creack.net/gocalc/ast"
	"go.creack.net/gocalc/lexer"
)

// expression := term ( ('+' | '-') term )*
func parseExpression(p *parser) (ast.Expr, error) {
	left, err := parseTerm(p)
	if err != nil {
		return nil, err
	}

	// Left fold so that "a - b - c" groups as "(a - b) - c".
	for p.curToken.Type.IsOneOf(lexer.TokPlus, lexer.TokMinus) {
		operator := p.curToken
		p.nextToken()
		right, err := parseTerm(p)
		if err != nil {
			return nil, err
		}
		left = ast.BinaryExpr{
			Left:     left,
			Operator: operator,
			Right:    right,
		}
	}

	return left, nil
}

// term := factor ( ('*' | '/') factor )*
func parseTerm(p *parser) (ast.Expr, error) {
	left, err := parseFactor(p)
	if err != nil {
		return nil, err
	}

	for p.curToken.Type.IsOneOf(lexer.TokStar, lexer.TokSlash) {
		operator := p.curToken
		p.nextToken()
		right, err := parseFactor(p)
		if err != nil {
			return nil, err
		}
		left = ast.BinaryExpr{
			Left:     left,
			Operator: operator,
			Right:    right,
		}
	}

	return left, nil
}

// factor := NUMBER | '-' factor | '(' expression ')'
func parseFactor(p *parser) (ast.Expr, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxNestingDepth {
		return nil, p.syntaxError(ErrNestingTooDeep)
	}

	switch p.curToken.Type {
	case lexer.TokNumber:
		number, err := strconv.ParseFloat(p.curToken.Value, 64)
		if err != nil {
			return nil, p.syntaxError(ErrUnexpectedToken)
		}
		p.nextToken()
		return ast.NumberExpr{Value: number}, nil

	case lexer.TokMinus:
		// Unary minus. Recursing on factor makes "--3" nest two
		// negations and binds tighter than any binary operator.
		operator := p.curToken
		p.nextToken()
		right, err := parseFactor(p)
		if err != nil {
			return nil, err
		}
		return ast.UnaryExpr{Operator: operator, Right: right}, nil

	case lexer.TokParenLeft:
		p.nextToken()
		inner, err := parseExpression(p)
		if err != nil {
			return nil, err
		}
		switch p.curToken.Type {
		case lexer.TokParenRight:
			// The parens are structural only, the inner expression
			// is the result.
			p.nextToken()
			return inner, nil
		case lexer.TokEOF:
			return nil, p.syntaxError(ErrMissingCloseParen)
		case lexer.TokError:
			return nil, p.lexError()
		default:
			return nil, p.syntaxError(ErrUnexpectedToken)
		}

	case lexer.TokError:
		return nil, p.lexError()

	default:
		return nil, p.syntaxError(ErrUnexpectedToken)
	}
}
