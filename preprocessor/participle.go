/*
File    : svlex/preprocessor/participle.go
Author  : svlex contributors
*/
package preprocessor

import (
	"io"
	"sync"

	plexer "github.com/alecthomas/participle/v2/lexer"

	"github.com/svlex/svlex/token"
)

// ParticipleDefinition adapts this module's Preprocessor onto
// participle/v2's lexer.Definition contract, the same wrapping
// lukeod/gosmi's parser/lexer package does for its own hand-written
// scanner: it is how the token stream this front-end produces becomes
// "suitable for consumption by a downstream parser" without that
// parser writing its own adapter.
type ParticipleDefinition struct {
	symbolsOnce sync.Once
	symbols     map[string]plexer.TokenType
}

// NewParticipleDefinition constructs a ready-to-use Definition.
func NewParticipleDefinition() *ParticipleDefinition {
	return &ParticipleDefinition{}
}

// Symbols returns the mapping from token-kind name to participle
// TokenType, built once and cached, the same laziness gosmi's
// LexerDefinition.Symbols() uses.
func (d *ParticipleDefinition) Symbols() map[string]plexer.TokenType {
	d.symbolsOnce.Do(func() {
		d.symbols = map[string]plexer.TokenType{
			"EOF": plexer.EOF,
		}
		for kind, name := range kindNamesForParticiple() {
			d.symbols[name] = plexer.TokenType(kind)
		}
	})
	return d.symbols
}

func kindNamesForParticiple() map[token.Kind]string {
	names := make(map[token.Kind]string)
	for _, k := range append(token.PunctuationKinds(),
		token.UNKNOWN, token.INTEGER_LITERAL, token.REAL_LITERAL, token.TIME_LITERAL,
		token.STRING_LITERAL, token.INTEGER_BASE, token.UNBASED_UNSIZED_LITERAL,
		token.IDENTIFIER, token.ESCAPED_IDENTIFIER, token.SYSTEM_TF_IDENTIFIER) {
		names[k] = k.String()
	}
	return names
}

// Lex implements lexer.Definition by draining r and delegating to
// LexBytes.
func (d *ParticipleDefinition) Lex(filename string, r io.Reader) (plexer.Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return d.LexBytes(filename, data)
}

// LexString implements lexer.StringDefinition, avoiding the []byte
// round-trip io.Reader forces.
func (d *ParticipleDefinition) LexString(filename, input string) (plexer.Lexer, error) {
	return d.LexBytes(filename, []byte(input))
}

// LexBytes implements lexer.BytesDefinition: constructs a fresh
// Preprocessor over input and wraps it as a participle lexer.Lexer.
func (d *ParticipleDefinition) LexBytes(filename string, input []byte) (plexer.Lexer, error) {
	pp := NewPreprocessor()
	pp.EnterMainSourceFile(input)
	return &participleLexer{pp: pp, filename: filename}, nil
}

// participleLexer adapts *Preprocessor's pull-based Next() onto
// participle/v2's lexer.Lexer interface.
type participleLexer struct {
	pp       *Preprocessor
	filename string
}

// Next implements lexer.Lexer.
func (l *participleLexer) Next() (plexer.Token, error) {
	t := l.pp.Next()

	typ := plexer.TokenType(t.Kind)
	if t.Kind == token.EOF {
		typ = plexer.EOF
	}

	value := t.Payload
	if value == "" {
		value = l.pp.spellingOf(t)
	}

	line, col := l.pp.Lexer().LineColumn(t.Location)
	return plexer.Token{
		Type:  typ,
		Value: value,
		Pos: plexer.Position{
			Filename: l.filename,
			Offset:   t.Location,
			Line:     line,
			Column:   col,
		},
	}, nil
}
