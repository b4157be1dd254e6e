/*
File    : svlex/token/directive.go
Author  : svlex contributors
*/
package token

import "sync"

// DirectiveKind is the closed enumeration of compiler-directive kinds
// recognized after a grave-accent introducer. Only DirectiveDefine is
// handled semantically by the Preprocessor; the rest are recognized and
// skipped (original_source's handleCompilerDirective switches on all of
// them but its non-define cases are empty — this module keeps that
// shape: every kind below is an explicit case in the dispatch switch).
type DirectiveKind int

const (
	DirectiveUnknown DirectiveKind = iota
	DirectiveDefine
	DirectiveUndef
	DirectiveIfdef
	DirectiveIfndef
	DirectiveElse
	DirectiveElsif
	DirectiveEndif
	DirectiveInclude
	DirectiveTimescale
	DirectiveResetall
	DirectiveCelldefine
	DirectiveEndcelldefine
	DirectiveDefaultNettype
	DirectiveLine
	DirectivePragma
	DirectiveBeginKeywords
	DirectiveEndKeywords
	DirectiveFile
	DirectiveLineMacro
)

// directiveSpellings is the X-macro-style table (directive spelling,
// without the leading backtick, to DirectiveKind) described by
// SyntaxIdentifierTable.cpp's COMPILER_DIRECTIVE(X) expansion.
var directiveSpellings = map[string]DirectiveKind{
	"define":           DirectiveDefine,
	"undef":            DirectiveUndef,
	"ifdef":            DirectiveIfdef,
	"ifndef":           DirectiveIfndef,
	"else":             DirectiveElse,
	"elsif":            DirectiveElsif,
	"endif":            DirectiveEndif,
	"include":          DirectiveInclude,
	"timescale":        DirectiveTimescale,
	"resetall":         DirectiveResetall,
	"celldefine":       DirectiveCelldefine,
	"endcelldefine":    DirectiveEndcelldefine,
	"default_nettype":  DirectiveDefaultNettype,
	"line":             DirectiveLine,
	"pragma":           DirectivePragma,
	"begin_keywords":   DirectiveBeginKeywords,
	"end_keywords":     DirectiveEndKeywords,
	"__FILE__":         DirectiveFile,
	"__LINE__":         DirectiveLineMacro,
}

var (
	directiveTableOnce sync.Once
	directiveTable     map[string]DirectiveKind
)

// CompilerDirectivesTable returns the read-only directive-spelling to
// DirectiveKind mapping, built once at first use.
func CompilerDirectivesTable() map[string]DirectiveKind {
	directiveTableOnce.Do(func() {
		directiveTable = make(map[string]DirectiveKind, len(directiveSpellings))
		for spelling, kind := range directiveSpellings {
			directiveTable[spelling] = kind
		}
	})
	return directiveTable
}

// LookupDirective resolves a directive spelling (without the leading
// backtick) to its DirectiveKind. ok is false for unrecognized spellings.
func LookupDirective(spelling string) (kind DirectiveKind, ok bool) {
	kind, ok = CompilerDirectivesTable()[spelling]
	return kind, ok
}
