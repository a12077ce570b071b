package parser

import (
	"errors"
	"fmt"

	"go.creack.net/gocalc/lexer"
)

// Sentinel parse errors, matchable with errors.Is.
var (
	ErrUnexpectedToken   = errors.New("unexpected token")
	ErrMissingCloseParen = errors.New("missing closing parenthesis")
	ErrEmptyExpression   = errors.New("empty expression")
	ErrTrailingTokens    = errors.New("trailing tokens after expression")
	ErrNestingTooDeep    = errors.New("expression nesting too deep")
)

// SyntaxError reports a grammar violation at a given token.
type SyntaxError struct {
	Err   error
	Token lexer.Token
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at offset %d (%s)", e.Err, e.Token.Pos, e.Token)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// syntaxError wraps err with the current token.
func (p *parser) syntaxError(err error) error {
	return &SyntaxError{Err: err, Token: p.curToken}
}

// lexError surfaces the lexer's typed error when the current token is
// TokError.
func (p *parser) lexError() error {
	if err := p.lex.Err(); err != nil {
		return err
	}
	return p.syntaxError(ErrUnexpectedToken)
}
