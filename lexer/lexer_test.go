package lexer

import (
	"errors"
	"testing"
)

// Helper function to test the lexer.
func testLexer(t *testing.T, input string, expectedTokens []Token) {
	t.Helper()

	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokEOF {
			break
		}
	}
	if len(tokens) != len(expectedTokens) {
		t.Fatalf("Expected %d tokens, got %d: %v", len(expectedTokens), len(tokens), tokens)
	}
	for i, expectedToken := range expectedTokens {
		token := tokens[i]

		if token.Type != expectedToken.Type {
			t.Fatalf("tests[%d] - wrong type. expected=%q (%s), got=%q (%s)",
				i, expectedToken.Type, expectedToken, token.Type, token)
		}

		if token.Value != expectedToken.Value {
			t.Fatalf("tests[%d] - wrong value. expected=%q (%s), got=%q (%s)",
				i, expectedToken.Value, expectedToken, token.Value, token)
		}
	}
}

func TestTokenTypeString(t *testing.T) {
	if len(tokenTypeStrings) != int(FinalToken) {
		t.Fatalf("Expected %d token types in tokenTypeStrings, got %d", FinalToken, len(tokenTypeStrings))
	}
}

func TestLexerSingleNumber(t *testing.T) {
	input := "42"
	expectedTokens := []Token{
		{Type: TokNumber, Value: "42"},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerDecimalNumber(t *testing.T) {
	input := "3.14"
	expectedTokens := []Token{
		{Type: TokNumber, Value: "3.14"},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerSimpleExpression(t *testing.T) {
	input := "1 + 2"
	expectedTokens := []Token{
		{Type: TokNumber, Value: "1"},
		{Type: TokPlus, Value: "+"},
		{Type: TokNumber, Value: "2"},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerAllOperators(t *testing.T) {
	input := "1+2-3*4/5"
	expectedTokens := []Token{
		{Type: TokNumber, Value: "1"},
		{Type: TokPlus, Value: "+"},
		{Type: TokNumber, Value: "2"},
		{Type: TokMinus, Value: "-"},
		{Type: TokNumber, Value: "3"},
		{Type: TokStar, Value: "*"},
		{Type: TokNumber, Value: "4"},
		{Type: TokSlash, Value: "/"},
		{Type: TokNumber, Value: "5"},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerParens(t *testing.T) {
	input := "2 * (3 + 4)"
	expectedTokens := []Token{
		{Type: TokNumber, Value: "2"},
		{Type: TokStar, Value: "*"},
		{Type: TokParenLeft, Value: "("},
		{Type: TokNumber, Value: "3"},
		{Type: TokPlus, Value: "+"},
		{Type: TokNumber, Value: "4"},
		{Type: TokParenRight, Value: ")"},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerMinusIsNotPartOfNumber(t *testing.T) {
	// The sign is grammar, not lexing: "-3" is two tokens.
	input := "-3"
	expectedTokens := []Token{
		{Type: TokMinus, Value: "-"},
		{Type: TokNumber, Value: "3"},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerEdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "Empty input",
			input: "",
			expected: []Token{
				{Type: TokEOF, Value: ""},
			},
		},
		{
			name:  "Only whitespace",
			input: "   \t \r\n  ",
			expected: []Token{
				{Type: TokEOF, Value: ""},
			},
		},
		{
			name:  "Trailing dot number",
			input: "1.",
			expected: []Token{
				{Type: TokNumber, Value: "1."},
				{Type: TokEOF, Value: ""},
			},
		},
		{
			name:  "Second dot ends the number",
			input: "1.2.3",
			expected: []Token{
				{Type: TokNumber, Value: "1.2"},
				{Type: TokError, Value: `unexpected character '.' at offset 3`},
				{Type: TokEOF, Value: ""},
			},
		},
		{
			name:  "Lone dot",
			input: ".",
			expected: []Token{
				{Type: TokError, Value: `unexpected character '.' at offset 0`},
				{Type: TokEOF, Value: ""},
			},
		},
		{
			name:  "Unexpected character",
			input: "1 + $",
			expected: []Token{
				{Type: TokNumber, Value: "1"},
				{Type: TokPlus, Value: "+"},
				{Type: TokError, Value: `unexpected character '$' at offset 4`},
				{Type: TokEOF, Value: ""},
			},
		},
		{
			name:  "Nothing after the error",
			input: "@ 1 + 2",
			expected: []Token{
				{Type: TokError, Value: `unexpected character '@' at offset 0`},
				{Type: TokEOF, Value: ""},
			},
		},
		{
			name:  "Double unary minus",
			input: "--3",
			expected: []Token{
				{Type: TokMinus, Value: "-"},
				{Type: TokMinus, Value: "-"},
				{Type: TokNumber, Value: "3"},
				{Type: TokEOF, Value: ""},
			},
		},
		{
			name:  "No exponent syntax",
			input: "1e3",
			expected: []Token{
				{Type: TokNumber, Value: "1"},
				{Type: TokError, Value: `unexpected character 'e' at offset 1`},
				{Type: TokEOF, Value: ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testLexer(t, tt.input, tt.expected)
		})
	}
}

func TestLexerTokenPositions(t *testing.T) {
	input := "12 + (3 * 4)"
	expectedPos := []int{0, 3, 5, 6, 8, 10, 11, 12}

	l := New(input)
	for i, want := range expectedPos {
		tok := l.NextToken()
		if tok.Pos != want {
			t.Fatalf("tokens[%d] (%s) - wrong pos. expected=%d, got=%d", i, tok, want, tok.Pos)
		}
	}
}

func TestLexerEOFIsSticky(t *testing.T) {
	l := New("1")
	if tok := l.NextToken(); tok.Type != TokNumber {
		t.Fatalf("expected TokNumber, got %s", tok)
	}
	for i := 0; i < 3; i++ {
		if tok := l.NextToken(); tok.Type != TokEOF {
			t.Fatalf("expected TokEOF on call %d, got %s", i, tok)
		}
	}
}

func TestLexerErr(t *testing.T) {
	l := New("1 ? 2")
	if err := l.Err(); err != nil {
		t.Fatalf("expected no error before lexing, got %s", err)
	}

	var tok Token
	for tok = l.NextToken(); tok.Type != TokError && tok.Type != TokEOF; tok = l.NextToken() {
	}
	if tok.Type != TokError {
		t.Fatalf("expected TokError, got %s", tok)
	}

	var lexErr *Error
	if !errors.As(l.Err(), &lexErr) {
		t.Fatalf("expected *lexer.Error, got %T", l.Err())
	}
	if lexErr.Pos != 2 || lexErr.Char != '?' {
		t.Fatalf("wrong error details: pos=%d char=%q", lexErr.Pos, lexErr.Char)
	}
}
