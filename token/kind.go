/*
File    : svlex/token/kind.go
Author  : svlex contributors
*/
package token

// Kind identifies the lexical category of a Token. It is a closed
// enumeration: every Kind a Lexer can emit is listed in this file.
type Kind int

// Kind constants, grouped by category. The grouping mirrors the
// punctuation dispatch table of the lexer: each run of related
// operators is kept together.
const (
	// Structural
	UNKNOWN Kind = iota
	EOF

	// Literals
	INTEGER_LITERAL
	REAL_LITERAL
	TIME_LITERAL
	STRING_LITERAL
	INTEGER_BASE
	UNBASED_UNSIZED_LITERAL

	// Identifiers
	IDENTIFIER
	ESCAPED_IDENTIFIER
	SYSTEM_TF_IDENTIFIER

	// Arithmetic / increment-decrement
	PLUS
	PLUS_PLUS
	PLUS_EQUAL
	PLUS_COLON
	MINUS
	MINUS_MINUS
	MINUS_EQUAL
	MINUS_COLON
	ARROW
	MINUS_GREATER_GREATER
	STAR
	STAR_STAR
	STAR_EQUAL
	STAR_GREATER
	STAR_R_PAREN
	SLASH
	SLASH_EQUAL
	PERCENT
	PERCENT_EQUAL

	// Bitwise / boolean
	AMP
	AMP_AMP
	AMP_AMP_AMP
	AMP_EQUAL
	PIPE
	PIPE_PIPE
	PIPE_MINUS_GREATER
	PIPE_EQUAL_GREATER
	PIPE_EQUAL
	CARET
	CARET_TILDE
	CARET_EQUAL
	TILDE
	TILDE_AMP
	TILDE_PIPE
	TILDE_CARET

	// Relational / shift
	LESS
	LESS_EQUAL
	LESS_MINUS_GREATER
	LESS_LESS
	LESS_LESS_LESS
	LESS_LESS_EQUAL
	LESS_LESS_LESS_EQUAL
	GREATER
	GREATER_EQUAL
	GREATER_GREATER
	GREATER_GREATER_GREATER
	GREATER_GREATER_EQUAL
	GREATER_GREATER_GREATER_EQUAL

	// Equality / negation
	EXCLAIM
	EXCLAIM_EQUAL
	EXCLAIM_EQUAL_EQUAL
	EXCLAIM_EQUAL_QUESTION
	EQUAL
	EQUAL_EQUAL
	EQUAL_EQUAL_EQUAL
	EQUAL_EQUAL_QUESTION

	// Colon family
	COLON
	COLON_EQUAL
	COLON_SLASH
	COLON_COLON

	// Grouping / structural punctuation
	APOSTROPHE_L_BRACE
	L_PAREN
	L_PAREN_STAR
	R_PAREN
	L_BRACE
	R_BRACE
	L_SQUARE
	R_SQUARE

	// Misc single/double-byte punctuation
	AT
	AT_AT
	SEMI
	HASH
	HASH_HASH
	HASH_MINUS_HASH
	HASH_EQUAL_HASH
	PERIOD
	PERIOD_STAR
	DOLLAR
	QUESTION
)

var kindNames = map[Kind]string{
	UNKNOWN:                        "UNKNOWN",
	EOF:                            "EOF",
	INTEGER_LITERAL:                "INTEGER_LITERAL",
	REAL_LITERAL:                   "REAL_LITERAL",
	TIME_LITERAL:                   "TIME_LITERAL",
	STRING_LITERAL:                 "STRING_LITERAL",
	INTEGER_BASE:                   "INTEGER_BASE",
	UNBASED_UNSIZED_LITERAL:        "UNBASED_UNSIZED_LITERAL",
	IDENTIFIER:                     "IDENTIFIER",
	ESCAPED_IDENTIFIER:             "ESCAPED_IDENTIFIER",
	SYSTEM_TF_IDENTIFIER:           "SYSTEM_TF_IDENTIFIER",
	PLUS:                           "PLUS",
	PLUS_PLUS:                      "PLUS_PLUS",
	PLUS_EQUAL:                     "PLUS_EQUAL",
	PLUS_COLON:                     "PLUS_COLON",
	MINUS:                          "MINUS",
	MINUS_MINUS:                    "MINUS_MINUS",
	MINUS_EQUAL:                    "MINUS_EQUAL",
	MINUS_COLON:                    "MINUS_COLON",
	ARROW:                          "ARROW",
	MINUS_GREATER_GREATER:          "MINUS_GREATER_GREATER",
	STAR:                           "STAR",
	STAR_STAR:                      "STAR_STAR",
	STAR_EQUAL:                     "STAR_EQUAL",
	STAR_GREATER:                   "STAR_GREATER",
	STAR_R_PAREN:                   "STAR_R_PAREN",
	SLASH:                          "SLASH",
	SLASH_EQUAL:                    "SLASH_EQUAL",
	PERCENT:                        "PERCENT",
	PERCENT_EQUAL:                  "PERCENT_EQUAL",
	AMP:                            "AMP",
	AMP_AMP:                        "AMP_AMP",
	AMP_AMP_AMP:                    "AMP_AMP_AMP",
	AMP_EQUAL:                      "AMP_EQUAL",
	PIPE:                           "PIPE",
	PIPE_PIPE:                      "PIPE_PIPE",
	PIPE_MINUS_GREATER:             "PIPE_MINUS_GREATER",
	PIPE_EQUAL_GREATER:             "PIPE_EQUAL_GREATER",
	PIPE_EQUAL:                     "PIPE_EQUAL",
	CARET:                          "CARET",
	CARET_TILDE:                    "CARET_TILDE",
	CARET_EQUAL:                    "CARET_EQUAL",
	TILDE:                          "TILDE",
	TILDE_AMP:                      "TILDE_AMP",
	TILDE_PIPE:                     "TILDE_PIPE",
	TILDE_CARET:                    "TILDE_CARET",
	LESS:                           "LESS",
	LESS_EQUAL:                     "LESS_EQUAL",
	LESS_MINUS_GREATER:             "LESS_MINUS_GREATER",
	LESS_LESS:                      "LESS_LESS",
	LESS_LESS_LESS:                 "LESS_LESS_LESS",
	LESS_LESS_EQUAL:                "LESS_LESS_EQUAL",
	LESS_LESS_LESS_EQUAL:           "LESS_LESS_LESS_EQUAL",
	GREATER:                        "GREATER",
	GREATER_EQUAL:                  "GREATER_EQUAL",
	GREATER_GREATER:                "GREATER_GREATER",
	GREATER_GREATER_GREATER:        "GREATER_GREATER_GREATER",
	GREATER_GREATER_EQUAL:          "GREATER_GREATER_EQUAL",
	GREATER_GREATER_GREATER_EQUAL:  "GREATER_GREATER_GREATER_EQUAL",
	EXCLAIM:                        "EXCLAIM",
	EXCLAIM_EQUAL:                  "EXCLAIM_EQUAL",
	EXCLAIM_EQUAL_EQUAL:            "EXCLAIM_EQUAL_EQUAL",
	EXCLAIM_EQUAL_QUESTION:         "EXCLAIM_EQUAL_QUESTION",
	EQUAL:                          "EQUAL",
	EQUAL_EQUAL:                    "EQUAL_EQUAL",
	EQUAL_EQUAL_EQUAL:              "EQUAL_EQUAL_EQUAL",
	EQUAL_EQUAL_QUESTION:           "EQUAL_EQUAL_QUESTION",
	COLON:                          "COLON",
	COLON_EQUAL:                    "COLON_EQUAL",
	COLON_SLASH:                    "COLON_SLASH",
	COLON_COLON:                    "COLON_COLON",
	APOSTROPHE_L_BRACE:             "APOSTROPHE_L_BRACE",
	L_PAREN:                        "L_PAREN",
	L_PAREN_STAR:                   "L_PAREN_STAR",
	R_PAREN:                        "R_PAREN",
	L_BRACE:                        "L_BRACE",
	R_BRACE:                        "R_BRACE",
	L_SQUARE:                       "L_SQUARE",
	R_SQUARE:                       "R_SQUARE",
	AT:                             "AT",
	AT_AT:                          "AT_AT",
	SEMI:                           "SEMI",
	HASH:                           "HASH",
	HASH_HASH:                      "HASH_HASH",
	HASH_MINUS_HASH:                "HASH_MINUS_HASH",
	HASH_EQUAL_HASH:                "HASH_EQUAL_HASH",
	PERIOD:                         "PERIOD",
	PERIOD_STAR:                    "PERIOD_STAR",
	DOLLAR:                         "DOLLAR",
	QUESTION:                       "QUESTION",
}

// String implements fmt.Stringer, returning the contract name of k (the
// same spelling used in the closed token-kind set) or "KIND(?)" for an
// out-of-range value.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "KIND(?)"
}

// spellings maps each single-spelling punctuation Kind to its canonical
// source spelling, exposed through Spelling and PunctuationKinds (the
// round-trip tests use both).
var spellings = map[Kind]string{
	PLUS: "+", PLUS_PLUS: "++", PLUS_EQUAL: "+=", PLUS_COLON: "+:",
	MINUS: "-", MINUS_MINUS: "--", MINUS_EQUAL: "-=", MINUS_COLON: "-:",
	ARROW: "->", MINUS_GREATER_GREATER: "->>",
	STAR: "*", STAR_STAR: "**", STAR_EQUAL: "*=", STAR_GREATER: "*>", STAR_R_PAREN: "*)",
	SLASH: "/", SLASH_EQUAL: "/=",
	PERCENT: "%", PERCENT_EQUAL: "%=",
	AMP: "&", AMP_AMP: "&&", AMP_AMP_AMP: "&&&", AMP_EQUAL: "&=",
	PIPE: "|", PIPE_PIPE: "||", PIPE_MINUS_GREATER: "|->", PIPE_EQUAL_GREATER: "|=>", PIPE_EQUAL: "|=",
	CARET: "^", CARET_TILDE: "^~", CARET_EQUAL: "^=",
	TILDE: "~", TILDE_AMP: "~&", TILDE_PIPE: "~|", TILDE_CARET: "~^",
	LESS: "<", LESS_EQUAL: "<=", LESS_MINUS_GREATER: "<->",
	LESS_LESS: "<<", LESS_LESS_LESS: "<<<", LESS_LESS_EQUAL: "<<=", LESS_LESS_LESS_EQUAL: "<<<=",
	GREATER: ">", GREATER_EQUAL: ">=",
	GREATER_GREATER: ">>", GREATER_GREATER_GREATER: ">>>",
	GREATER_GREATER_EQUAL: ">>=", GREATER_GREATER_GREATER_EQUAL: ">>>=",
	EXCLAIM: "!", EXCLAIM_EQUAL: "!=", EXCLAIM_EQUAL_EQUAL: "!==", EXCLAIM_EQUAL_QUESTION: "!=?",
	EQUAL: "=", EQUAL_EQUAL: "==", EQUAL_EQUAL_EQUAL: "===", EQUAL_EQUAL_QUESTION: "==?",
	COLON: ":", COLON_EQUAL: ":=", COLON_SLASH: ":/", COLON_COLON: "::",
	APOSTROPHE_L_BRACE: "'{",
	L_PAREN:            "(", L_PAREN_STAR: "(*", R_PAREN: ")",
	L_BRACE: "{", R_BRACE: "}",
	L_SQUARE: "[", R_SQUARE: "]",
	AT: "@", AT_AT: "@@",
	SEMI: ";",
	HASH: "#", HASH_HASH: "##", HASH_MINUS_HASH: "#-#", HASH_EQUAL_HASH: "#=#",
	PERIOD: ".", PERIOD_STAR: ".*",
	DOLLAR:   "$",
	QUESTION: "?",
}

// Spelling returns the canonical source spelling for a fixed-spelling
// punctuation Kind, and ok=false for kinds whose spelling varies with
// the source text (literals, identifiers, EOF, UNKNOWN).
func Spelling(k Kind) (s string, ok bool) {
	s, ok = spellings[k]
	return s, ok
}

// PunctuationKinds returns every Kind with a fixed spelling, in
// unspecified order — used by property tests that round-trip every
// punctuation spelling through the lexer.
func PunctuationKinds() []Kind {
	kinds := make([]Kind, 0, len(spellings))
	for k := range spellings {
		kinds = append(kinds, k)
	}
	return kinds
}
