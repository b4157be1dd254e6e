/*
File    : svlex/lexer/punctuation.go
Author  : svlex contributors
*/
package lexer

import "github.com/svlex/svlex/token"

// punctFunc resolves the longest legal punctuation spelling starting
// at start (the cursor is already positioned on the first byte);
// start has not yet been consumed when fn is invoked.
type punctFunc func(l *Lexer, start int) token.Token

// punctTable is the first-byte dispatch cascade described by the
// punctuation/operator table: each entry greedily matches the longest
// legal spelling with a fixed lookahead, never backtracking beyond
// bytes already peeked.
var punctTable = map[byte]punctFunc{
	'+': lexPlus,
	'-': lexMinus,
	'*': lexStar,
	'/': lexSlash,
	'%': lexPercent,
	'&': lexAmp,
	'|': lexPipe,
	'^': lexCaret,
	'~': lexTilde,
	'!': lexExclaim,
	'=': lexEqual,
	':': lexColon,
	'(': lexLParen,
	')': single(token.R_PAREN),
	'{': single(token.L_BRACE),
	'}': single(token.R_BRACE),
	'[': single(token.L_SQUARE),
	']': single(token.R_SQUARE),
	';': single(token.SEMI),
	'.': lexPeriod,
	'@': lexAt,
	'#': lexHash,
	'<': lexLess,
	'>': lexGreater,
	'?': single(token.QUESTION),
}

func tok(k token.Kind, start, length int) token.Token {
	return token.Token{Kind: k, Location: start, Length: length}
}

// single returns a punctFunc for a byte with no multi-character
// extension at all.
func single(k token.Kind) punctFunc {
	return func(l *Lexer, start int) token.Token {
		l.advance()
		return tok(k, start, 1)
	}
}

func lexPlus(l *Lexer, start int) token.Token {
	l.advance()
	switch l.current() {
	case '+':
		l.advance()
		return tok(token.PLUS_PLUS, start, 2)
	case '=':
		l.advance()
		return tok(token.PLUS_EQUAL, start, 2)
	case ':':
		l.advance()
		return tok(token.PLUS_COLON, start, 2)
	}
	return tok(token.PLUS, start, 1)
}

func lexMinus(l *Lexer, start int) token.Token {
	l.advance()
	switch l.current() {
	case '-':
		l.advance()
		return tok(token.MINUS_MINUS, start, 2)
	case '=':
		l.advance()
		return tok(token.MINUS_EQUAL, start, 2)
	case ':':
		l.advance()
		return tok(token.MINUS_COLON, start, 2)
	case '>':
		l.advance()
		if l.current() == '>' {
			l.advance()
			return tok(token.MINUS_GREATER_GREATER, start, 3)
		}
		return tok(token.ARROW, start, 2)
	}
	return tok(token.MINUS, start, 1)
}

func lexStar(l *Lexer, start int) token.Token {
	l.advance()
	switch l.current() {
	case '*':
		l.advance()
		return tok(token.STAR_STAR, start, 2)
	case '=':
		l.advance()
		return tok(token.STAR_EQUAL, start, 2)
	case '>':
		l.advance()
		return tok(token.STAR_GREATER, start, 2)
	case ')':
		l.advance()
		return tok(token.STAR_R_PAREN, start, 2)
	}
	return tok(token.STAR, start, 1)
}

func lexSlash(l *Lexer, start int) token.Token {
	// '//' and '/*' are handled by Lex before dispatch reaches here.
	l.advance()
	if l.current() == '=' {
		l.advance()
		return tok(token.SLASH_EQUAL, start, 2)
	}
	return tok(token.SLASH, start, 1)
}

func lexPercent(l *Lexer, start int) token.Token {
	l.advance()
	if l.current() == '=' {
		l.advance()
		return tok(token.PERCENT_EQUAL, start, 2)
	}
	return tok(token.PERCENT, start, 1)
}

func lexAmp(l *Lexer, start int) token.Token {
	l.advance()
	switch l.current() {
	case '&':
		l.advance()
		if l.current() == '&' {
			l.advance()
			return tok(token.AMP_AMP_AMP, start, 3)
		}
		return tok(token.AMP_AMP, start, 2)
	case '=':
		l.advance()
		return tok(token.AMP_EQUAL, start, 2)
	}
	return tok(token.AMP, start, 1)
}

func lexPipe(l *Lexer, start int) token.Token {
	l.advance()
	switch l.current() {
	case '|':
		l.advance()
		return tok(token.PIPE_PIPE, start, 2)
	case '-':
		if l.peekAt(1) == '>' {
			l.advance()
			l.advance()
			return tok(token.PIPE_MINUS_GREATER, start, 3)
		}
	case '=':
		if l.peekAt(1) == '>' {
			l.advance()
			l.advance()
			return tok(token.PIPE_EQUAL_GREATER, start, 3)
		}
		l.advance()
		return tok(token.PIPE_EQUAL, start, 2)
	}
	return tok(token.PIPE, start, 1)
}

func lexCaret(l *Lexer, start int) token.Token {
	l.advance()
	switch l.current() {
	case '~':
		l.advance()
		return tok(token.CARET_TILDE, start, 2)
	case '=':
		l.advance()
		return tok(token.CARET_EQUAL, start, 2)
	}
	return tok(token.CARET, start, 1)
}

func lexTilde(l *Lexer, start int) token.Token {
	l.advance()
	switch l.current() {
	case '&':
		l.advance()
		return tok(token.TILDE_AMP, start, 2)
	case '|':
		l.advance()
		return tok(token.TILDE_PIPE, start, 2)
	case '^':
		l.advance()
		return tok(token.TILDE_CARET, start, 2)
	}
	return tok(token.TILDE, start, 1)
}

func lexExclaim(l *Lexer, start int) token.Token {
	l.advance()
	if l.current() == '=' {
		l.advance()
		switch l.current() {
		case '=':
			l.advance()
			return tok(token.EXCLAIM_EQUAL_EQUAL, start, 3)
		case '?':
			l.advance()
			return tok(token.EXCLAIM_EQUAL_QUESTION, start, 3)
		}
		return tok(token.EXCLAIM_EQUAL, start, 2)
	}
	return tok(token.EXCLAIM, start, 1)
}

func lexEqual(l *Lexer, start int) token.Token {
	l.advance()
	if l.current() == '=' {
		l.advance()
		switch l.current() {
		case '=':
			l.advance()
			return tok(token.EQUAL_EQUAL_EQUAL, start, 3)
		case '?':
			l.advance()
			return tok(token.EQUAL_EQUAL_QUESTION, start, 3)
		}
		return tok(token.EQUAL_EQUAL, start, 2)
	}
	return tok(token.EQUAL, start, 1)
}

func lexColon(l *Lexer, start int) token.Token {
	l.advance()
	switch l.current() {
	case '=':
		l.advance()
		return tok(token.COLON_EQUAL, start, 2)
	case '/':
		l.advance()
		return tok(token.COLON_SLASH, start, 2)
	case ':':
		l.advance()
		return tok(token.COLON_COLON, start, 2)
	}
	return tok(token.COLON, start, 1)
}

func lexLParen(l *Lexer, start int) token.Token {
	l.advance()
	if l.current() == '*' {
		l.advance()
		return tok(token.L_PAREN_STAR, start, 2)
	}
	return tok(token.L_PAREN, start, 1)
}

func lexPeriod(l *Lexer, start int) token.Token {
	l.advance()
	if l.current() == '*' {
		l.advance()
		return tok(token.PERIOD_STAR, start, 2)
	}
	return tok(token.PERIOD, start, 1)
}

func lexAt(l *Lexer, start int) token.Token {
	l.advance()
	if l.current() == '@' {
		l.advance()
		return tok(token.AT_AT, start, 2)
	}
	return tok(token.AT, start, 1)
}

func lexHash(l *Lexer, start int) token.Token {
	l.advance()
	switch l.current() {
	case '#':
		l.advance()
		return tok(token.HASH_HASH, start, 2)
	case '-':
		if l.peekAt(1) == '#' {
			l.advance()
			l.advance()
			return tok(token.HASH_MINUS_HASH, start, 3)
		}
	case '=':
		if l.peekAt(1) == '#' {
			l.advance()
			l.advance()
			return tok(token.HASH_EQUAL_HASH, start, 3)
		}
	}
	return tok(token.HASH, start, 1)
}

// lexLess and lexGreater resolve the four-byte forms (<<<=, >>>=) by
// nesting one more level of lookahead than the other cascades.
func lexLess(l *Lexer, start int) token.Token {
	l.advance()
	switch l.current() {
	case '-':
		if l.peekAt(1) == '>' {
			l.advance()
			l.advance()
			return tok(token.LESS_MINUS_GREATER, start, 3)
		}
	case '<':
		l.advance()
		switch l.current() {
		case '<':
			l.advance()
			if l.current() == '=' {
				l.advance()
				return tok(token.LESS_LESS_LESS_EQUAL, start, 4)
			}
			return tok(token.LESS_LESS_LESS, start, 3)
		case '=':
			l.advance()
			return tok(token.LESS_LESS_EQUAL, start, 3)
		}
		return tok(token.LESS_LESS, start, 2)
	case '=':
		l.advance()
		return tok(token.LESS_EQUAL, start, 2)
	}
	return tok(token.LESS, start, 1)
}

func lexGreater(l *Lexer, start int) token.Token {
	l.advance()
	switch l.current() {
	case '>':
		l.advance()
		switch l.current() {
		case '>':
			l.advance()
			if l.current() == '=' {
				l.advance()
				return tok(token.GREATER_GREATER_GREATER_EQUAL, start, 4)
			}
			return tok(token.GREATER_GREATER_GREATER, start, 3)
		case '=':
			l.advance()
			return tok(token.GREATER_GREATER_EQUAL, start, 3)
		}
		return tok(token.GREATER_GREATER, start, 2)
	case '=':
		l.advance()
		return tok(token.GREATER_EQUAL, start, 2)
	}
	return tok(token.GREATER, start, 1)
}

// lexDollar resolves a bare '$' (DOLLAR) vs a system task/function
// identifier ('$' followed by an identifier-start byte).
func lexDollar(l *Lexer, start int) token.Token {
	l.advance()
	if token.IsIdentifierStart(l.current()) {
		for !l.atEnd() && token.IsIdentifierContinue(l.current()) {
			l.advance()
		}
		return token.Token{
			Kind:     token.SYSTEM_TF_IDENTIFIER,
			Location: start,
			Length:   l.cursor - start,
			Payload:  string(l.src[start:l.cursor]),
		}
	}
	return tok(token.DOLLAR, start, 1)
}

// lexBaseFormatOrApostropheBrace resolves the leading apostrophe: '{'
// (an aggregate literal opener) vs the base-format sub-lexer.
func lexBaseFormatOrApostropheBrace(l *Lexer, start int) token.Token {
	if l.peekAt(1) == '{' {
		l.advance()
		l.advance()
		return tok(token.APOSTROPHE_L_BRACE, start, 2)
	}
	return l.lexBaseFormat(start)
}
