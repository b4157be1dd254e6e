/*
File    : svlex/preprocessor/preprocessor.go
Author  : svlex contributors
*/
package preprocessor

import (
	"fmt"

	"github.com/svlex/svlex/lexer"
	"github.com/svlex/svlex/token"
)

// Preprocessor is the thin façade over a Lexer: it forwards Lex calls,
// detects the grave-accent directive introducer and dispatches by
// directive kind, collects `define` macros into an arena-backed macro
// table, and offers a debug dump formatter. It owns the arena from which
// MacroFormalArgument records are allocated for its lifetime; MacroInfo
// records themselves are ordinary heap allocations held in the table.
type Preprocessor struct {
	lex      *lexer.Lexer
	macros   map[string]*MacroInfo
	argArena *formalArgumentArena
	sink     DiagnosticSink
	fatal    bool
}

// NewPreprocessor constructs a Preprocessor with no source loaded yet.
// Call EnterMainSourceFile before the first Lex call.
func NewPreprocessor() *Preprocessor {
	return &Preprocessor{}
}

// SetDiagnosticSink installs sink to receive fatal/recoverable
// diagnostics. Nil (the default) silently drops them.
func (p *Preprocessor) SetDiagnosticSink(sink DiagnosticSink) {
	p.sink = sink
}

// EnterMainSourceFile constructs the underlying Lexer over src and
// resets the macro table and arena. Named after
// Preprocessor::enterMainSourceFile, the two-phase construct-then-enter
// lifecycle the underlying model specifies.
func (p *Preprocessor) EnterMainSourceFile(src []byte) {
	p.lex = lexer.NewLexer(src)
	p.macros = make(map[string]*MacroInfo)
	p.argArena = newFormalArgumentArena()
	p.fatal = false
	p.lex.SetDiagnosticFunc(func(offset int, message string) {
		p.fatal = true
		p.report(SeverityFatal, offset, message)
	})
}

// Lexer exposes the underlying Lexer for callers (the participle
// adapter, tests) that need direct access to source/line-column
// translation.
func (p *Preprocessor) Lexer() *lexer.Lexer { return p.lex }

// Macro looks up a previously `define`d macro by name.
func (p *Preprocessor) Macro(name string) (*MacroInfo, bool) {
	m, ok := p.macros[name]
	return m, ok
}

// Macros returns every collected macro, keyed by name. The returned map
// must not be mutated by the caller.
func (p *Preprocessor) Macros() map[string]*MacroInfo {
	return p.macros
}

// Lex fills out with exactly one token, the same retry-hiding contract
// as Lexer.Lex but with directive sequences fully consumed: a `define
// (or any other recognized directive) never itself appears in the
// output stream, only the tokens that follow it.
func (p *Preprocessor) Lex(out *token.Token) bool {
	if p.fatal {
		*out = token.Token{Kind: token.EOF, Location: len(p.lex.Source())}
		return true
	}

	t := p.lex.Next()
	if t.Kind == token.UNKNOWN && p.isGraveAccent(t) {
		return p.handleCompilerDirective(out)
	}
	*out = t
	return true
}

// Next is the hidden-retry convenience wrapper over Lex, mirroring
// Lexer.Next.
func (p *Preprocessor) Next() token.Token {
	var t token.Token
	for !p.Lex(&t) {
	}
	return t
}

func (p *Preprocessor) isGraveAccent(t token.Token) bool {
	src := p.lex.Source()
	return t.Length == 1 && t.Location < len(src) && src[t.Location] == '`'
}

// handleCompilerDirective is entered once the grave-accent token has
// already been consumed. It reads the directive name, looks it up, and
// dispatches; only `define` has a semantic effect, matching
// Preprocessor::handleCompilerDirective's switch (every other case is
// recognized and explicitly a no-op beyond skip-to-end-of-line).
func (p *Preprocessor) handleCompilerDirective(out *token.Token) bool {
	nameTok := p.lex.Next()
	if nameTok.Kind != token.IDENTIFIER {
		p.reportRecoverable(nameTok.Location, "expected directive name after '`'")
		p.lex.SkipToEndOfLine()
		return p.Lex(out)
	}

	kind, ok := token.LookupDirective(nameTok.Payload)
	if !ok {
		p.reportRecoverable(nameTok.Location, fmt.Sprintf("unknown compiler directive `%s", nameTok.Payload))
		p.lex.SkipToEndOfLine()
		return p.Lex(out)
	}

	switch kind {
	case token.DirectiveDefine:
		p.collectDefine()
	case token.DirectiveUndef, token.DirectiveIfdef, token.DirectiveIfndef,
		token.DirectiveElse, token.DirectiveElsif, token.DirectiveEndif,
		token.DirectiveInclude, token.DirectiveTimescale, token.DirectiveResetall,
		token.DirectiveCelldefine, token.DirectiveEndcelldefine, token.DirectiveDefaultNettype,
		token.DirectiveLine, token.DirectivePragma, token.DirectiveBeginKeywords,
		token.DirectiveEndKeywords, token.DirectiveFile, token.DirectiveLineMacro:
		// Recognized, but this front-end does not implement their
		// semantics (no include resolution, no conditional compilation);
		// consume the rest of the line and continue.
		p.lex.SkipToEndOfLine()
	default:
		p.lex.SkipToEndOfLine()
	}

	return p.Lex(out)
}

func (p *Preprocessor) report(sev Severity, offset int, message string) {
	if p.sink == nil {
		return
	}
	line, col := p.lex.LineColumn(offset)
	p.sink(Diagnostic{Severity: sev, Message: message, Location: offset, Line: line, Column: col})
}

func (p *Preprocessor) reportRecoverable(offset int, message string) {
	p.report(SeverityRecoverable, offset, message)
}
