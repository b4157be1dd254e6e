/*
File    : svlex/lexer/lexer_test.go
Author  : svlex contributors
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svlex/svlex/token"
)

// lexAll drains l until (and including) the terminal EOF token.
func lexAll(t *testing.T, src string) []token.Token {
	t.Helper()
	l := NewLexer([]byte(src))
	var out []token.Token
	for i := 0; i < 10000; i++ {
		tok := l.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
	t.Fatalf("lexer did not terminate within 10000 tokens for %q", src)
	return nil
}

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, tok := range toks {
		ks[i] = tok.Kind
	}
	return ks
}

func TestLexEmptySourceProducesEOF(t *testing.T) {
	l := NewLexer([]byte(""))
	tok := l.Next()
	assert.Equal(t, token.EOF, tok.Kind)
	assert.Equal(t, 0, tok.Location)
	assert.Equal(t, 0, tok.Length)

	// Idempotent terminal state.
	again := l.Next()
	assert.Equal(t, token.EOF, again.Kind)
}

func TestLexSkipsWhitespaceAndComments(t *testing.T) {
	src := "  // line comment\n/* block\ncomment */  foo"
	toks := lexAll(t, src)
	require.Len(t, toks, 2)
	assert.Equal(t, token.IDENTIFIER, toks[0].Kind)
	assert.Equal(t, "foo", toks[0].Payload)
	assert.Equal(t, token.EOF, toks[1].Kind)
}

func TestUnterminatedBlockCommentReportsFatal(t *testing.T) {
	var reported []string
	l := NewLexer([]byte("/* never closed"))
	l.SetDiagnosticFunc(func(offset int, message string) {
		reported = append(reported, message)
	})
	tok := l.Next()
	assert.Equal(t, token.EOF, tok.Kind)
	assert.Len(t, reported, 1)
}

func TestPunctuationLongestMatch(t *testing.T) {
	cases := []struct {
		src  string
		kind token.Kind
		len  int
	}{
		{"<", token.LESS, 1},
		{"<=", token.LESS_EQUAL, 2},
		{"<<", token.LESS_LESS, 2},
		{"<<<", token.LESS_LESS_LESS, 3},
		{"<<=", token.LESS_LESS_EQUAL, 3},
		{"<<<=", token.LESS_LESS_LESS_EQUAL, 4},
		{"<->", token.LESS_MINUS_GREATER, 3},
		{">", token.GREATER, 1},
		{">=", token.GREATER_EQUAL, 2},
		{">>", token.GREATER_GREATER, 2},
		{">>>", token.GREATER_GREATER_GREATER, 3},
		{">>=", token.GREATER_GREATER_EQUAL, 3},
		{">>>=", token.GREATER_GREATER_GREATER_EQUAL, 4},
		{"->", token.ARROW, 2},
		{"->>", token.MINUS_GREATER_GREATER, 3},
		{"|", token.PIPE, 1},
		{"||", token.PIPE_PIPE, 2},
		{"|->", token.PIPE_MINUS_GREATER, 3},
		{"|=>", token.PIPE_EQUAL_GREATER, 3},
		{"|=", token.PIPE_EQUAL, 2},
		{"#", token.HASH, 1},
		{"##", token.HASH_HASH, 2},
		{"#-#", token.HASH_MINUS_HASH, 3},
		{"#=#", token.HASH_EQUAL_HASH, 3},
		{"*)", token.STAR_R_PAREN, 2},
		{"(*", token.L_PAREN_STAR, 2},
		{"'{", token.APOSTROPHE_L_BRACE, 2},
		{"!=?", token.EXCLAIM_EQUAL_QUESTION, 3},
		{"==?", token.EQUAL_EQUAL_QUESTION, 3},
	}
	for _, c := range cases {
		toks := lexAll(t, c.src)
		require.Len(t, toks, 2, c.src)
		assert.Equal(t, c.kind, toks[0].Kind, c.src)
		assert.Equal(t, c.len, toks[0].Length, c.src)
		assert.Equal(t, token.EOF, toks[1].Kind, c.src)
	}
}

func TestPunctuationRoundTripAllKinds(t *testing.T) {
	for _, k := range token.PunctuationKinds() {
		spelling, ok := token.Spelling(k)
		require.True(t, ok)
		toks := lexAll(t, spelling)
		require.Len(t, toks, 2, spelling)
		assert.Equal(t, k, toks[0].Kind, spelling)
		assert.Equal(t, len(spelling), toks[0].Length, spelling)
		assert.Equal(t, len(spelling), toks[0].End(), spelling)
	}
}

func TestNumericLiteralClassification(t *testing.T) {
	cases := []struct {
		src  string
		kind token.Kind
	}{
		{"123", token.INTEGER_LITERAL},
		{"123.456", token.REAL_LITERAL},
		{"1e10", token.REAL_LITERAL},
		{"1e+10", token.REAL_LITERAL},
		{"1e-10", token.REAL_LITERAL},
		{"10ns", token.TIME_LITERAL},
		{"1.5ms", token.TIME_LITERAL},
		{"5s", token.TIME_LITERAL},
		{"3fs", token.TIME_LITERAL},
	}
	for _, c := range cases {
		toks := lexAll(t, c.src)
		require.Len(t, toks, 2, c.src)
		assert.Equal(t, c.kind, toks[0].Kind, c.src)
		assert.Equal(t, len(c.src), toks[0].Length, c.src)
	}
}

func TestUnbasedUnsizedLiteral(t *testing.T) {
	for _, src := range []string{"'0", "'1", "'x", "'X", "'z", "'Z", "'?"} {
		toks := lexAll(t, src)
		require.Len(t, toks, 2, src)
		assert.Equal(t, token.UNBASED_UNSIZED_LITERAL, toks[0].Kind, src)
	}
}

func TestBaseFormatAndDigitRunReclassification(t *testing.T) {
	toks := lexAll(t, "'habc")
	require.Len(t, toks, 3)
	assert.Equal(t, token.INTEGER_BASE, toks[0].Kind)
	assert.Equal(t, "'h", string([]byte("'habc")[toks[0].Location:toks[0].End()]))
	assert.Equal(t, token.INTEGER_LITERAL, toks[1].Kind)
	assert.Equal(t, "abc", string([]byte("'habc")[toks[1].Location:toks[1].End()]))
	assert.Equal(t, token.EOF, toks[2].Kind)
}

func TestSignedBaseFormat(t *testing.T) {
	toks := lexAll(t, "'sh")
	require.Len(t, toks, 2)
	assert.Equal(t, token.INTEGER_BASE, toks[0].Kind)
	assert.Equal(t, 3, toks[0].Length)
}

func TestStringLiteralEscapeDecoding(t *testing.T) {
	cases := []struct {
		src     string
		decoded string
	}{
		{`"plain"`, "plain"},
		{`"a\nb"`, "a\nb"},
		{`"a\tb"`, "a\tb"},
		{`"quote:\""`, `quote:"`},
		{`"back:\\"`, `back:\`},
		{"\"a\\101\"", "aA"},
		{`"a\x41"`, "aA"},
		{"\"line\\\ncont\"", "linecont"},
		{`"unknown:\c"`, "unknown:c"},
	}
	for _, c := range cases {
		toks := lexAll(t, c.src)
		require.Len(t, toks, 2, c.src)
		assert.Equal(t, token.STRING_LITERAL, toks[0].Kind, c.src)
		assert.Equal(t, c.decoded, toks[0].Payload, c.src)
	}
}

func TestUnterminatedStringReportsFatal(t *testing.T) {
	var reported []string
	l := NewLexer([]byte(`"never closed`))
	l.SetDiagnosticFunc(func(offset int, message string) {
		reported = append(reported, message)
	})
	tok := l.Next()
	assert.Equal(t, token.STRING_LITERAL, tok.Kind)
	assert.Len(t, reported, 1)
}

func TestEscapedIdentifier(t *testing.T) {
	toks := lexAll(t, `\foo\bar baz`)
	require.Len(t, toks, 3)
	assert.Equal(t, token.ESCAPED_IDENTIFIER, toks[0].Kind)
	assert.Equal(t, `\foo\bar`, toks[0].Payload)
	assert.Equal(t, token.IDENTIFIER, toks[1].Kind)
	assert.Equal(t, "baz", toks[1].Payload)
}

func TestSystemTFIdentifierVsBareDollar(t *testing.T) {
	toks := lexAll(t, "$display")
	require.Len(t, toks, 2)
	assert.Equal(t, token.SYSTEM_TF_IDENTIFIER, toks[0].Kind)
	assert.Equal(t, "$display", toks[0].Payload)

	toks = lexAll(t, "$ 1")
	require.Len(t, toks, 3)
	assert.Equal(t, token.DOLLAR, toks[0].Kind)
	assert.Equal(t, token.INTEGER_LITERAL, toks[1].Kind)
}

func TestSimpleIdentifierAllowsDollarAndDigitsAfterStart(t *testing.T) {
	toks := lexAll(t, "foo$bar_1")
	require.Len(t, toks, 2)
	assert.Equal(t, token.IDENTIFIER, toks[0].Kind)
	assert.Equal(t, "foo$bar_1", toks[0].Payload)
}

func TestLexIsMonotonicTerminatingAndIdempotentAtEOF(t *testing.T) {
	src := "module top; wire [7:0] a = 8'hFF; endmodule // trailing\n"
	l := NewLexer([]byte(src))
	prevLocation := -1
	for i := 0; i < 10000; i++ {
		tok := l.Next()
		assert.GreaterOrEqual(t, tok.Location, prevLocation) // tokens never move backward
		prevLocation = tok.Location
		if tok.Kind == token.EOF {
			// idempotent: keep calling, must keep returning EOF
			for j := 0; j < 3; j++ {
				again := l.Next()
				assert.Equal(t, token.EOF, again.Kind)
			}
			return
		}
	}
	t.Fatal("lexer did not reach EOF")
}

func TestLineColumnTranslation(t *testing.T) {
	src := "a\nbb\nccc"
	l := NewLexer([]byte(src))
	line, col := l.LineColumn(0)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)

	line, col = l.LineColumn(2) // 'b' of "bb", start of line 2
	assert.Equal(t, 2, line)
	assert.Equal(t, 1, col)

	line, col = l.LineColumn(7) // last 'c' of "ccc"
	assert.Equal(t, 3, line)
	assert.Equal(t, 3, col)
}

func TestUngetPushesBackExactlyOneToken(t *testing.T) {
	l := NewLexer([]byte("a b"))
	first := l.Next()
	assert.Equal(t, "a", first.Payload)
	l.Unget(first)
	replayed := l.Next()
	assert.Equal(t, first, replayed)
	second := l.Next()
	assert.Equal(t, "b", second.Payload)
}

func TestSkipToEndOfLineStopsBeforeNewline(t *testing.T) {
	l := NewLexer([]byte("junk here\nfoo"))
	l.SkipToEndOfLine()
	tok := l.Next()
	assert.Equal(t, token.IDENTIFIER, tok.Kind)
	assert.Equal(t, "foo", tok.Payload)
}

func TestSequenceOfMixedTokensKindsInOrder(t *testing.T) {
	src := "wire [3:0] a; assign a = 4'b1010;"
	toks := lexAll(t, src)
	got := kinds(toks)
	want := []token.Kind{
		token.IDENTIFIER, token.L_SQUARE, token.INTEGER_LITERAL, token.COLON, token.INTEGER_LITERAL,
		token.R_SQUARE, token.IDENTIFIER, token.SEMI,
		token.IDENTIFIER, token.IDENTIFIER, token.EQUAL,
		token.INTEGER_LITERAL, token.INTEGER_BASE, token.INTEGER_LITERAL, token.SEMI,
		token.EOF,
	}
	assert.Equal(t, want, got)
}
