/*
File    : svlex/lexer/number.go
Author  : svlex contributors
*/
package lexer

import "github.com/svlex/svlex/token"

var timeUnitSuffixes = []string{"fs", "ps", "ns", "us", "ms", "s"}

// lexNumber is the entry point for any token starting with a decimal
// digit: the plain-body scan, classified into INTEGER_LITERAL,
// REAL_LITERAL or TIME_LITERAL on exit.
func (l *Lexer) lexNumber(start int) token.Token {
	return l.lexPlainNumberBody(start)
}

// lexPlainNumberBody consumes a preprocessing-number body (digits,
// letters, underscores, '.'), extends it through a scientific-notation
// sign if one immediately follows an 'e'/'E', and classifies the
// result by the characters it saw.
func (l *Lexer) lexPlainNumberBody(start int) token.Token {
	sawDot := false
	sawExp := false

	for !l.atEnd() {
		b := l.current()
		if token.IsPreprocessingNumberBodyChar(b) {
			if b == '.' {
				sawDot = true
			}
			if (b == 'e' || b == 'E') && !sawExp {
				sawExp = true
				l.advance()
				if (l.current() == '+' || l.current() == '-') && token.IsDigit(l.peekAt(1)) {
					l.advance()
				}
				continue
			}
			l.advance()
			continue
		}
		break
	}

	spelling := string(l.src[start:l.cursor])
	kind := classifyNumberBody(spelling, sawDot, sawExp)
	t := tok(kind, start, l.cursor-start)
	t.Payload = spelling
	return t
}

func classifyNumberBody(spelling string, sawDot, sawExp bool) token.Kind {
	if suffix := trailingTimeUnit(spelling); suffix != "" {
		return token.TIME_LITERAL
	}
	if sawDot || sawExp {
		return token.REAL_LITERAL
	}
	return token.INTEGER_LITERAL
}

// trailingTimeUnit returns the time-unit suffix (fs, ps, ns, us, ms, s)
// that spelling ends with, or "" if it doesn't end with one.
func trailingTimeUnit(spelling string) string {
	for _, suffix := range timeUnitSuffixes {
		if len(spelling) > len(suffix) && spelling[len(spelling)-len(suffix):] == suffix {
			// Only the length is checked: at least one byte must precede
			// the suffix; what those bytes are is not inspected.
			return suffix
		}
	}
	return ""
}

// lexBaseFormat is entered on the apostrophe once '{' has been ruled
// out by the caller. It consumes an optional sign flag (s/S) then
// either an unbased-unsized value char or a base letter.
func (l *Lexer) lexBaseFormat(start int) token.Token {
	l.advance() // consume '\''

	if l.current() == 's' || l.current() == 'S' {
		// Sign flag: re-read the real base letter that follows it.
		l.advance()
	}

	b := l.current()
	switch b {
	case '0', '1', 'x', 'X', 'z', 'Z', '?':
		l.advance()
		t := tok(token.UNBASED_UNSIZED_LITERAL, start, l.cursor-start)
		t.Payload = string(l.src[start:l.cursor])
		return t
	default:
		if !l.atEnd() {
			l.advance()
		}
		t := tok(token.INTEGER_BASE, start, l.cursor-start)
		t.Payload = string(l.src[start:l.cursor])
		return t
	}
}
