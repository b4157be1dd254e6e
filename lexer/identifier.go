/*
File    : svlex/lexer/identifier.go
Author  : svlex contributors
*/
package lexer

import "github.com/svlex/svlex/token"

// lexIdentifier scans a simple identifier: [A-Za-z_][A-Za-z_0-9$]*.
func (l *Lexer) lexIdentifier(start int) token.Token {
	l.advance()
	for !l.atEnd() && token.IsIdentifierContinue(l.current()) {
		l.advance()
	}
	return token.Token{
		Kind:     token.IDENTIFIER,
		Location: start,
		Length:   l.cursor - start,
		Payload:  string(l.src[start:l.cursor]),
	}
}

// lexEscapedIdentifier scans a '\'-introduced escaped identifier: every
// printable non-whitespace byte up to (and including, as consumption,
// but not as logical content) the first whitespace byte.
func (l *Lexer) lexEscapedIdentifier(start int) token.Token {
	l.advance() // '\\'
	contentEnd := l.cursor
	for !l.atEnd() && token.IsPrintable(l.current()) {
		l.advance()
		contentEnd = l.cursor
	}
	if !l.atEnd() && token.IsWhitespace(l.current()) {
		l.advance()
	}
	return token.Token{
		Kind:     token.ESCAPED_IDENTIFIER,
		Location: start,
		Length:   l.cursor - start,
		Payload:  string(l.src[start:contentEnd]),
	}
}
