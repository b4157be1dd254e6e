/*
File    : svlex/token/token.go
Author  : svlex contributors
*/
package token

// Token is the value record produced by the Lexer: a classified span of
// the source buffer plus, for literal and identifier kinds, a payload.
//
// Fields:
//   - Kind: the token's category (always set before a Token is returned
//     to a caller).
//   - Location: byte offset of the token's first byte in the source
//     buffer the Lexer was constructed over.
//   - Length: non-negative byte count; Location+Length is one past the
//     token's last byte. Always 0 for EOF, always > 0 otherwise.
//   - Payload: interpretation depends solely on Kind — the original
//     spelling for numeric/identifier kinds, the decoded byte sequence
//     for STRING_LITERAL, and empty for pure punctuation and EOF.
type Token struct {
	Kind     Kind
	Location int
	Length   int
	Payload  string
}

// Zero is the uninitialized Token value: UNKNOWN kind, empty payload,
// zero length. Distinguishable from every token a Lexer ever emits.
var Zero = Token{Kind: UNKNOWN}

// End returns the offset one past the token's last byte.
func (t Token) End() int {
	return t.Location + t.Length
}

// IsEOF reports whether t is the terminal end-of-buffer token.
func (t Token) IsEOF() bool {
	return t.Kind == EOF
}
