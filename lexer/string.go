/*
File    : svlex/lexer/string.go
Author  : svlex contributors
*/
package lexer

import (
	"strings"

	"github.com/svlex/svlex/token"
)

// lexString decodes a "..." string literal. The token's Payload holds
// the decoded byte sequence, a separate allocation from the original
// source spelling (which remains recoverable via Location/Length).
func (l *Lexer) lexString(start int) token.Token {
	l.advance() // opening '"'

	var decoded strings.Builder
	for {
		if l.atEnd() {
			l.reportFatal(start, "unterminated string literal")
			return tok(token.STRING_LITERAL, start, l.cursor-start)
		}
		b := l.current()
		if b == '"' {
			l.advance()
			break
		}
		if b == '\\' {
			l.advance()
			decodeEscape(l, &decoded)
			continue
		}
		if b == '\n' {
			// A bare, un-escaped newline still ends the buffer scan for
			// an unterminated literal rather than looping forever.
			l.reportFatal(start, "unterminated string literal")
			return tok(token.STRING_LITERAL, start, l.cursor-start)
		}
		decoded.WriteByte(b)
		l.advance()
	}

	return token.Token{
		Kind:     token.STRING_LITERAL,
		Location: start,
		Length:   l.cursor - start,
		Payload:  decoded.String(),
	}
}

// decodeEscape handles one escape sequence, the backslash already
// consumed, writing its decoded form into decoded.
func decodeEscape(l *Lexer, decoded *strings.Builder) {
	if l.atEnd() {
		return
	}
	c := l.current()
	switch c {
	case 'n':
		decoded.WriteByte('\n')
		l.advance()
	case 't':
		decoded.WriteByte('\t')
		l.advance()
	case '\\':
		decoded.WriteByte('\\')
		l.advance()
	case '"':
		decoded.WriteByte('"')
		l.advance()
	case 'v':
		decoded.WriteByte('\v')
		l.advance()
	case 'f':
		decoded.WriteByte('\f')
		l.advance()
	case 'a':
		decoded.WriteByte('\a')
		l.advance()
	case '\n':
		// line continuation: both backslash and newline are dropped.
		l.advance()
	case '\r':
		l.advance()
		if l.current() == '\n' {
			l.advance()
		}
	case 'x':
		l.advance()
		decoded.WriteByte(decodeHexEscape(l))
	default:
		if token.IsOctalDigit(c) {
			decoded.WriteByte(decodeOctalEscape(l))
			return
		}
		// Unknown escape: implementation-defined — drop the backslash,
		// keep the character (spec.md Open Question, resolved this way).
		decoded.WriteByte(c)
		l.advance()
	}
}

// decodeOctalEscape consumes one to three octal digits and returns the
// single byte they encode.
func decodeOctalEscape(l *Lexer) byte {
	value := 0
	for i := 0; i < 3 && token.IsOctalDigit(l.current()); i++ {
		value = value*8 + int(l.current()-'0')
		l.advance()
	}
	return byte(value)
}

// decodeHexEscape consumes one or two hex digits and returns the
// single byte they encode.
func decodeHexEscape(l *Lexer) byte {
	value := 0
	for i := 0; i < 2 && token.IsHexDigit(l.current()); i++ {
		value = value*16 + hexDigitValue(l.current())
		l.advance()
	}
	return byte(value)
}

func hexDigitValue(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	}
	return 0
}
