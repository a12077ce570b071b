package lexer

type stateFn func(*Lexer) stateFn

func lexText(l *Lexer) stateFn {
	if l.atEOF {
		return l.emit(TokEOF)
	}

	// List of runes that just advance one and emit a token.
	singles := map[rune]TokenType{
		'+': TokPlus,
		'-': TokMinus,
		'*': TokStar,
		'/': TokSlash,
		'(': TokParenLeft,
		')': TokParenRight,
	}

	switch r := l.peek(); {
	case r == 0:
		return l.emit(TokEOF)
	case r == ' ' || r == '\t' || r == '\r' || r == '\n':
		l.acceptRun(" \t\r\n")
		l.ignore()
		return lexText
	case r >= '0' && r <= '9':
		return lexNumber
	default:
		if tok, ok := singles[r]; ok {
			l.next()
			return l.emit(tok)
		}
		l.next()
		return l.errorf(r)
	}
}

func lexNumber(l *Lexer) stateFn {
	const digits = "0123456789"
	l.acceptRun(digits)
	if l.peek() == '.' {
		l.next()
		l.acceptRun(digits)
	}
	return l.emit(TokNumber)
}
