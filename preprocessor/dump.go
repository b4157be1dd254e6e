/*
File    : svlex/preprocessor/dump.go
Author  : svlex contributors
*/
package preprocessor

import (
	"fmt"
	"io"

	"github.com/alecthomas/repr"
	"github.com/fatih/color"

	"github.com/svlex/svlex/token"
)

// spellingOf reconstructs a token's original source spelling from its
// Location/Length, the same "backtick-quoted spelling reconstructed
// from location/length" DumpToken describes.
func (p *Preprocessor) spellingOf(t token.Token) string {
	src := p.lex.Source()
	end := t.End()
	if t.Location < 0 || end > len(src) || t.Location > end {
		return ""
	}
	return string(src[t.Location:end])
}

// DumpToken writes one diagnostic line to w: the token-kind name, a
// backtick-quoted reconstructed spelling, a tab, and the 1-based
// line:column of the token's first byte. A debugging aid only, not
// part of the semantic contract.
func (p *Preprocessor) DumpToken(w io.Writer, t token.Token) {
	line, col := p.lex.LineColumn(t.Location)
	fmt.Fprintf(w, "%s\t`%s`\tLine:%d\tCol:%d\n", t.Kind, p.spellingOf(t), line, col)
}

// DumpTokenColor is DumpToken with ANSI coloring: UNKNOWN in yellow
// (the recoverable-diagnostic color), EOF in cyan, everything else in
// white. This mirrors the teacher's red/yellow/cyan severity split in
// its own file-mode output.
func (p *Preprocessor) DumpTokenColor(w io.Writer, t token.Token) {
	line, col := p.lex.LineColumn(t.Location)
	c := color.New(color.FgWhite)
	switch t.Kind {
	case token.UNKNOWN:
		c = color.New(color.FgYellow)
	case token.EOF:
		c = color.New(color.FgCyan)
	}
	c.Fprintf(w, "%s\t`%s`\tLine:%d\tCol:%d\n", t.Kind, p.spellingOf(t), line, col)
}

// DumpTokenRepr renders t with alecthomas/repr's structured dump
// format, exercising the same debug-formatting dependency lukeod/gosmi
// uses for parsed values.
func (p *Preprocessor) DumpTokenRepr(w io.Writer, t token.Token) {
	fmt.Fprintln(w, repr.String(t, repr.Indent("  ")))
}

// DumpDiagnostic writes one colored diagnostic line: red for fatal,
// yellow for recoverable.
func DumpDiagnostic(w io.Writer, d Diagnostic) {
	c := color.New(color.FgYellow)
	if d.Severity == SeverityFatal {
		c = color.New(color.FgRed)
	}
	c.Fprintln(w, d.String())
}
