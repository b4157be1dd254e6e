/*
File    : svlex/token/charclass.go
Author  : svlex contributors
*/

// Package token defines the closed vocabulary this front-end operates
// over: byte-level character classes, the token kind enumeration, the
// compiler-directive kind enumeration and its spelling table, and the
// Token value record itself.
package token

// IsHorizontalWhitespace reports whether b is space, tab, form-feed or
// vertical-tab — the bytes skipped silently between tokens without ever
// ending a line.
func IsHorizontalWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\f', '\v':
		return true
	}
	return false
}

// IsVerticalWhitespace reports whether b ends a line: newline or
// carriage return. A bare '\r' (not followed by '\n') is still treated
// as vertical whitespace on its own.
func IsVerticalWhitespace(b byte) bool {
	return b == '\n' || b == '\r'
}

// IsWhitespace reports whether b is any whitespace byte, horizontal or
// vertical.
func IsWhitespace(b byte) bool {
	return IsHorizontalWhitespace(b) || IsVerticalWhitespace(b)
}

// IsDigit reports whether b is an ASCII decimal digit.
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// IsOctalDigit reports whether b is an ASCII octal digit.
func IsOctalDigit(b byte) bool {
	return b >= '0' && b <= '7'
}

// IsHexDigit reports whether b is an ASCII hexadecimal digit.
func IsHexDigit(b byte) bool {
	return IsDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// IsAlpha reports whether b is an ASCII letter.
func IsAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// IsIdentifierStart reports whether b may begin a simple identifier:
// a letter or underscore.
func IsIdentifierStart(b byte) bool {
	return IsAlpha(b) || b == '_'
}

// IsIdentifierContinue reports whether b may continue a simple
// identifier once started: letter, digit, underscore or dollar sign.
func IsIdentifierContinue(b byte) bool {
	return IsAlpha(b) || IsDigit(b) || b == '_' || b == '$'
}

// IsPrintable reports whether b is a printable, non-whitespace ASCII
// byte — the character class accepted inside an escaped identifier.
func IsPrintable(b byte) bool {
	return b > ' ' && b < 0x7f
}

// IsPreprocessingNumberBodyChar reports whether b may occur in the body
// of a numeric literal once the literal has started: digit, letter,
// underscore or '.'.
func IsPreprocessingNumberBodyChar(b byte) bool {
	return IsDigit(b) || IsAlpha(b) || b == '_' || b == '.'
}

// IsASCII reports whether b is a 7-bit ASCII byte.
func IsASCII(b byte) bool {
	return b < 0x80
}
