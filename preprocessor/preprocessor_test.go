/*
File    : svlex/preprocessor/preprocessor_test.go
Author  : svlex contributors
*/
package preprocessor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svlex/svlex/token"
)

func newPreprocessor(src string) *Preprocessor {
	p := NewPreprocessor()
	p.EnterMainSourceFile([]byte(src))
	return p
}

func lexAllPP(t *testing.T, p *Preprocessor) []token.Token {
	t.Helper()
	var out []token.Token
	for i := 0; i < 10000; i++ {
		tok := p.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
	t.Fatal("preprocessor did not terminate")
	return nil
}

func TestUnrecognizedDirectiveIsSkippedAndReportedRecoverable(t *testing.T) {
	var diags []Diagnostic
	p := newPreprocessor("`bogus foo")
	p.SetDiagnosticSink(CollectingSink(&diags))

	toks := lexAllPP(t, p)
	require.Len(t, toks, 1) // just EOF: the whole line was skipped
	assert.Equal(t, token.EOF, toks[0].Kind)

	require.Len(t, diags, 1)
	assert.Equal(t, SeverityRecoverable, diags[0].Severity)
}

func TestRecognizedNonDefineDirectiveIsSkippedSilently(t *testing.T) {
	p := newPreprocessor("`timescale 1ns/1ps\nfoo")
	toks := lexAllPP(t, p)
	require.Len(t, toks, 2)
	assert.Equal(t, token.IDENTIFIER, toks[0].Kind)
	assert.Equal(t, "foo", toks[0].Payload)
}

func TestDefineNeverAppearsInOutputStream(t *testing.T) {
	p := newPreprocessor("`define WIDTH 8\nwire [WIDTH-1:0] bus;")
	toks := lexAllPP(t, p)
	for _, tok := range toks {
		assert.NotEqual(t, "define", tok.Payload)
	}
	assert.Equal(t, token.IDENTIFIER, toks[0].Kind)
	assert.Equal(t, "wire", toks[0].Payload)
}

func TestObjectLikeMacroCollection(t *testing.T) {
	p := newPreprocessor("`define WIDTH 8\nrest")
	_ = lexAllPP(t, p)

	m, ok := p.Macro("WIDTH")
	require.True(t, ok)
	assert.False(t, m.IsFunctionLike)
	assert.Empty(t, m.FormalArguments)
	require.Len(t, m.BodyTokens, 1)
	assert.Equal(t, token.INTEGER_LITERAL, m.BodyTokens[0].Kind)
	assert.Equal(t, "8", m.BodyTokens[0].Payload)
}

func TestFunctionLikeMacroRequiresZeroGapParen(t *testing.T) {
	// Zero-gap '(' immediately after the name: function-like.
	p := newPreprocessor("`define MAX(a, b) a\nrest")
	_ = lexAllPP(t, p)
	m, ok := p.Macro("MAX")
	require.True(t, ok)
	assert.True(t, m.IsFunctionLike)
	require.Len(t, m.FormalArguments, 2)
	assert.Equal(t, "a", m.FormalArguments[0].Name.Payload)
	assert.Equal(t, "b", m.FormalArguments[1].Name.Payload)

	// A gap before '(' makes it object-like, with the '(' as the first
	// body token.
	p2 := newPreprocessor("`define MAX (a, b) a\nrest")
	_ = lexAllPP(t, p2)
	m2, ok := p2.Macro("MAX")
	require.True(t, ok)
	assert.False(t, m2.IsFunctionLike)
	require.NotEmpty(t, m2.BodyTokens)
	assert.Equal(t, token.L_PAREN, m2.BodyTokens[0].Kind)
}

func TestFunctionLikeMacroWithDefaultArgumentText(t *testing.T) {
	p := newPreprocessor("`define ADD(a, b=1) (a+b)\nrest")
	_ = lexAllPP(t, p)
	m, ok := p.Macro("ADD")
	require.True(t, ok)
	require.Len(t, m.FormalArguments, 2)
	assert.Empty(t, m.FormalArguments[0].DefaultText)
	require.Len(t, m.FormalArguments[1].DefaultText, 1)
	assert.Equal(t, token.INTEGER_LITERAL, m.FormalArguments[1].DefaultText[0].Kind)
	assert.Equal(t, "1", m.FormalArguments[1].DefaultText[0].Payload)
}

func TestEmptyFunctionLikeArgumentList(t *testing.T) {
	p := newPreprocessor("`define NOW() 1\nrest")
	_ = lexAllPP(t, p)
	m, ok := p.Macro("NOW")
	require.True(t, ok)
	assert.True(t, m.IsFunctionLike)
	assert.Empty(t, m.FormalArguments)
}

func TestMacroBodyLineContinuation(t *testing.T) {
	p := newPreprocessor("`define LONG a \\\n+ b\nrest")
	_ = lexAllPP(t, p)
	m, ok := p.Macro("LONG")
	require.True(t, ok)
	got := make([]token.Kind, len(m.BodyTokens))
	for i, tok := range m.BodyTokens {
		got[i] = tok.Kind
	}
	assert.Equal(t, []token.Kind{token.IDENTIFIER, token.PLUS, token.IDENTIFIER}, got)
}

func TestMacroBodyStopsAtRealEndOfLine(t *testing.T) {
	p := newPreprocessor("`define A x\ny")
	toks := lexAllPP(t, p)
	m, ok := p.Macro("A")
	require.True(t, ok)
	require.Len(t, m.BodyTokens, 1)
	assert.Equal(t, "x", m.BodyTokens[0].Payload)

	// y must still be lexed as a normal token afterward.
	assert.Equal(t, "y", toks[0].Payload)
}

func TestMacroRedefinitionSilentlyReplaces(t *testing.T) {
	p := newPreprocessor("`define X 1\n`define X 2\nrest")
	_ = lexAllPP(t, p)
	m, ok := p.Macro("X")
	require.True(t, ok)
	require.Len(t, m.BodyTokens, 1)
	assert.Equal(t, "2", m.BodyTokens[0].Payload)
}

func TestMalformedDefineMissingNameRecovers(t *testing.T) {
	var diags []Diagnostic
	p := newPreprocessor("`define 123 body\nrest")
	p.SetDiagnosticSink(CollectingSink(&diags))
	toks := lexAllPP(t, p)
	require.NotEmpty(t, diags)
	assert.Equal(t, SeverityRecoverable, diags[0].Severity)
	require.Len(t, toks, 2)
	assert.Equal(t, "rest", toks[0].Payload)
}

func TestCommaIsRecognizedInArgumentListWithoutItsOwnKind(t *testing.T) {
	p := newPreprocessor("`define F(a,b,c) a\nrest")
	_ = lexAllPP(t, p)
	m, ok := p.Macro("F")
	require.True(t, ok)
	require.Len(t, m.FormalArguments, 3)
}

func TestDumpTokenIncludesKindSpellingAndPosition(t *testing.T) {
	p := newPreprocessor("foo")
	tok := p.Next()

	var buf stringWriter
	p.DumpToken(&buf, tok)
	out := buf.String()
	assert.Contains(t, out, "IDENTIFIER")
	assert.Contains(t, out, "foo")
	assert.Contains(t, out, "Line:1")
	assert.Contains(t, out, "Col:1")
}

func TestDumpTokenReprIncludesTypeName(t *testing.T) {
	p := newPreprocessor("foo")
	tok := p.Next()

	var buf stringWriter
	p.DumpTokenRepr(&buf, tok)
	assert.Contains(t, buf.String(), "Token")
}

func TestDumpDiagnosticIncludesSeverityAndMessage(t *testing.T) {
	d := Diagnostic{Severity: SeverityFatal, Message: "boom", Line: 3, Column: 5}
	var buf stringWriter
	DumpDiagnostic(&buf, d)
	out := buf.String()
	assert.Contains(t, out, "fatal")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "3:5")
}

// stringWriter is a minimal io.Writer accumulating bytes, avoiding a
// bytes.Buffer import purely for these small assertions.
type stringWriter struct {
	data []byte
}

func (w *stringWriter) Write(p []byte) (int, error) {
	w.data = append(w.data, p...)
	return len(p), nil
}

func (w *stringWriter) String() string { return string(w.data) }
