// Package lexer provides a simple lexical analyzer for arithmetic expressions.
package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Lexer turns an input string into a stream of tokens. Tokens are
// produced one at a time by NextToken; the stream is finite and
// cannot be restarted.
type Lexer struct {
	input string

	curToken Token

	atEOF bool

	pos   int // Current position in input.
	start int // Position of the start of the current token.

	err *Error
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// NextToken returns the next token in the input. Once TokEOF has been
// returned, every subsequent call returns TokEOF.
func (l *Lexer) NextToken() Token {
	l.curToken = Token{Type: TokEOF, Pos: l.pos}
	state := lexText
	for {
		state = state(l)
		if state == nil {
			return l.curToken
		}
	}
}

// Err returns the error recorded when a TokError token was emitted, if any.
func (l *Lexer) Err() error {
	if l.err == nil {
		return nil
	}
	return l.err
}

// Error reports a character the lexer doesn't recognize.
type Error struct {
	Pos  int
	Char rune
}

func (e *Error) Error() string {
	return fmt.Sprintf("unexpected character %q at offset %d", e.Char, e.Pos)
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.atEOF = true
		return 0
	}
	r, n := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += n
	return r
}

func (l *Lexer) backup() {
	// If we reached eof, we can't back up.
	// If we are at the beginning of the input, we can't back up.
	if l.atEOF || l.pos == 0 {
		return
	}
	_, n := utf8.DecodeLastRuneInString(l.input[:l.pos])
	l.pos -= n
}

func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *Lexer) acceptRun(valid string) bool {
	accepted := false
	for strings.ContainsRune(valid, l.next()) {
		accepted = true
	}
	l.backup()
	return accepted
}

func (l *Lexer) thisToken(tt TokenType) Token {
	t := Token{
		Type:  tt,
		Value: l.input[l.start:l.pos],
		Pos:   l.start,
	}
	l.start = l.pos
	return t
}

func (l *Lexer) emitToken(t Token) stateFn {
	l.curToken = t
	return nil
}

func (l *Lexer) emit(tt TokenType) stateFn {
	return l.emitToken(l.thisToken(tt))
}

func (l *Lexer) ignore() {
	l.start = l.pos
}

// errorf records the offending character and drains the remaining
// input so only TokError/TokEOF can follow.
func (l *Lexer) errorf(r rune) stateFn {
	l.err = &Error{Pos: l.start, Char: r}
	l.curToken = Token{
		Type:  TokError,
		Value: l.err.Error(),
		Pos:   l.start,
	}
	l.start = 0
	l.pos = 0
	l.input = l.input[:0]
	return nil
}
