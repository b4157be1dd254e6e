/*
File    : svlex/lexer/lexer.go
Author  : svlex contributors
*/

// Package lexer implements the tokenizer state machine: a byte cursor
// over an immutable source buffer that produces one token per call,
// dispatching on punctuation, numeric/time/real literals, string
// literals and the three identifier varieties.
package lexer

import "github.com/svlex/svlex/token"

// Lexer is a stateful cursor over a source buffer. The zero value is
// not usable; construct with NewLexer.
type Lexer struct {
	src      []byte
	cursor   int
	lastKind token.Kind

	// lineStarts[i] is the byte offset where line i+1 begins; used to
	// translate an offset back into line:column lazily, on demand.
	lineStarts []int

	diag DiagnosticFunc

	// pending holds a single token pushed back via Unget, returned by
	// the next call to Next before any new lexing happens. This is the
	// one-token lookahead buffer the Preprocessor needs to implement
	// the `define` collection algorithm's lookahead decisions.
	pending *token.Token
}

// NewLexer constructs a Lexer over src. src must outlive every token
// the Lexer produces, since Token.Location/Length reference it.
func NewLexer(src []byte) *Lexer {
	return &Lexer{
		src:        src,
		lastKind:   token.UNKNOWN,
		lineStarts: []int{0},
	}
}

// Source returns the immutable buffer the Lexer was constructed over.
func (l *Lexer) Source() []byte { return l.src }

// LastKind returns the most recently emitted token's kind, the single
// piece of cross-token state the lexer carries (used by the caller to
// understand why a digit-letter run was reclassified, see §4.5).
func (l *Lexer) LastKind() token.Kind { return l.lastKind }

func (l *Lexer) atEnd() bool { return l.cursor >= len(l.src) }

func (l *Lexer) current() byte {
	if l.atEnd() {
		return 0
	}
	return l.src[l.cursor]
}

func (l *Lexer) peekAt(offset int) byte {
	i := l.cursor + offset
	if i < 0 || i >= len(l.src) {
		return 0
	}
	return l.src[i]
}

// advance consumes the current byte and returns it, tracking line
// starts for later line:column translation.
func (l *Lexer) advance() byte {
	b := l.src[l.cursor]
	l.cursor++
	if b == '\n' {
		l.lineStarts = append(l.lineStarts, l.cursor)
	}
	return b
}

// LineColumn translates a byte offset into a 1-based line:column pair.
func (l *Lexer) LineColumn(offset int) (line, column int) {
	if offset > l.cursor {
		// Not yet scanned: count the newlines between the cursor and offset.
		line = len(l.lineStarts)
		lineStart := l.lineStarts[line-1]
		for i := l.cursor; i < offset && i < len(l.src); i++ {
			if l.src[i] == '\n' {
				line++
				lineStart = i + 1
			}
		}
		return line, offset - lineStart + 1
	}
	for i := len(l.lineStarts) - 1; i >= 0; i-- {
		if l.lineStarts[i] <= offset {
			return i + 1, offset - l.lineStarts[i] + 1
		}
	}
	return 1, offset + 1
}

func (l *Lexer) skipHorizontalWhitespace() {
	for !l.atEnd() && token.IsHorizontalWhitespace(l.current()) {
		l.advance()
	}
}

func (l *Lexer) skipVerticalWhitespace() {
	b := l.current()
	l.advance()
	if b == '\r' && l.current() == '\n' {
		l.advance()
	}
}

func (l *Lexer) skipLineComment() {
	for !l.atEnd() && l.current() != '\n' && l.current() != '\r' {
		l.advance()
	}
}

// skipBlockComment consumes a /* ... */ comment, having already
// confirmed the opening "/*". Returns false if the buffer ended before
// the closing */ was found (fatal, per the error-handling design).
func (l *Lexer) skipBlockComment() (terminated bool) {
	l.advance() // '/'
	l.advance() // '*'
	for {
		if l.atEnd() {
			return false
		}
		if l.current() == '*' && l.peekAt(1) == '/' {
			l.advance()
			l.advance()
			return true
		}
		l.advance()
	}
}

// Lex fills out with exactly one token and reports whether a token was
// actually produced. false means "retry" — whitespace or a comment was
// consumed and no token resulted; the caller should call Lex again.
// Once EOF is produced, all further calls return a fresh EOF token
// (idempotent terminal state).
func (l *Lexer) Lex(out *token.Token) bool {
	if l.atEnd() {
		*out = token.Token{Kind: token.EOF, Location: len(l.src), Length: 0}
		l.lastKind = token.EOF
		return true
	}

	b := l.current()

	switch {
	case token.IsHorizontalWhitespace(b):
		l.skipHorizontalWhitespace()
		return false
	case token.IsVerticalWhitespace(b):
		l.skipVerticalWhitespace()
		return false
	case b == '/' && l.peekAt(1) == '/':
		l.skipLineComment()
		return false
	case b == '/' && l.peekAt(1) == '*':
		start := l.cursor
		if !l.skipBlockComment() {
			l.reportFatal(start, "unterminated block comment")
		}
		return false
	}

	start := l.cursor

	// Base-digit reclassification: after an INTEGER_BASE token, a run
	// that looks like an identifier (hex digit or one of x X z Z ?) is
	// actually the literal's digit run, not an identifier. The run takes
	// number-body bytes and '?' and is always an INTEGER_LITERAL.
	if l.lastKind == token.INTEGER_BASE && isBaseDigitRunStart(b) {
		for !l.atEnd() && (token.IsPreprocessingNumberBodyChar(l.current()) || l.current() == '?') {
			l.advance()
		}
		*out = token.Token{
			Kind:     token.INTEGER_LITERAL,
			Location: start,
			Length:   l.cursor - start,
			Payload:  string(l.src[start:l.cursor]),
		}
		l.lastKind = out.Kind
		return true
	}

	switch {
	case token.IsDigit(b):
		*out = l.lexNumber(start)
	case b == '"':
		*out = l.lexString(start)
	case b == '\\':
		*out = l.lexEscapedIdentifier(start)
	case b == '$':
		*out = lexDollar(l, start)
	case token.IsIdentifierStart(b):
		*out = l.lexIdentifier(start)
	case b == '\'':
		*out = lexBaseFormatOrApostropheBrace(l, start)
	default:
		if fn, ok := punctTable[b]; ok {
			*out = fn(l, start)
		} else {
			l.advance()
			*out = token.Token{Kind: token.UNKNOWN, Location: start, Length: l.cursor - start}
		}
	}

	l.lastKind = out.Kind
	return true
}

// Next repeatedly calls Lex until a token is actually produced, hiding
// the internal whitespace/comment retry loop. This is the entry point
// most callers (including the Preprocessor) use.
func (l *Lexer) Next() token.Token {
	if l.pending != nil {
		t := *l.pending
		l.pending = nil
		return t
	}
	var t token.Token
	for !l.Lex(&t) {
	}
	return t
}

// Unget pushes t back so the next call to Next returns it instead of
// lexing further. Only one token of pushback is supported at a time.
func (l *Lexer) Unget(t token.Token) {
	l.pending = &t
}

// SkipToEndOfLine discards bytes up to (but not including) the next
// vertical-whitespace byte or end of buffer. Used when recovering from
// an unknown directive or a malformed macro definition.
func (l *Lexer) SkipToEndOfLine() {
	l.pending = nil
	for !l.atEnd() && !token.IsVerticalWhitespace(l.current()) {
		l.advance()
	}
}

func isBaseDigitRunStart(b byte) bool {
	return token.IsHexDigit(b) || b == 'x' || b == 'X' || b == 'z' || b == 'Z' || b == '?'
}

// DiagnosticFunc receives fatal/recoverable lexer diagnostics. Nil by
// default (diagnostics silently dropped); the Preprocessor installs a
// DiagnosticSink-backed adapter via SetDiagnosticFunc.
type DiagnosticFunc func(offset int, message string)

func (l *Lexer) reportFatal(offset int, message string) {
	if l.diag != nil {
		l.diag(offset, message)
	}
}

// SetDiagnosticFunc installs fn as the sink for fatal/recoverable lexer
// diagnostics (unterminated string/comment).
func (l *Lexer) SetDiagnosticFunc(fn DiagnosticFunc) { l.diag = fn }
