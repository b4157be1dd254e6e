/*
File    : svlex/preprocessor/define.go
Author  : svlex contributors
*/
package preprocessor

import "github.com/svlex/svlex/token"

// collectDefine implements the five-step `define collection algorithm:
// name, function-like detection, formal arguments, body tokens,
// storage. The grave accent and the "define" directive identifier
// token have already been consumed by the caller.
func (p *Preprocessor) collectDefine() {
	nameTok := p.lex.Next()
	if nameTok.Kind != token.IDENTIFIER {
		p.reportRecoverable(nameTok.Location, "malformed macro definition: expected identifier after `define")
		p.lex.SkipToEndOfLine()
		return
	}

	macro := &MacroInfo{Name: nameTok}
	bodyBaseline := nameTok

	next := p.lex.Next()
	if next.Kind == token.L_PAREN && next.Location == nameTok.End() {
		macro.IsFunctionLike = true
		args, closeParen, ok := p.parseFormalArguments()
		if !ok {
			return // already reported and skipped to end of line
		}
		macro.FormalArguments = p.argArena.allocate(args)
		bodyBaseline = closeParen
	} else {
		p.lex.Unget(next)
	}

	macro.BodyTokens = p.collectBodyTokens(bodyBaseline)
	p.macros[nameTok.Payload] = macro
}

// parseFormalArguments parses a comma-separated formal-argument list up
// to the matching ')'. Returns ok=false (already reported and
// recovered to end-of-line) on any malformed shape.
func (p *Preprocessor) parseFormalArguments() (args []MacroFormalArgument, closeParen token.Token, ok bool) {
	// Empty argument list: `define FOO() body
	first := p.lex.Next()
	if first.Kind == token.R_PAREN {
		return nil, first, true
	}
	p.lex.Unget(first)

	for {
		nameTok := p.lex.Next()
		if nameTok.Kind != token.IDENTIFIER {
			p.reportRecoverable(nameTok.Location, "malformed macro definition: expected formal argument identifier")
			p.lex.SkipToEndOfLine()
			return nil, token.Token{}, false
		}
		arg := MacroFormalArgument{Name: nameTok}

		separator := p.lex.Next()
		if separator.Kind == token.EQUAL {
			body, terminator, ok := p.collectDefaultText()
			if !ok {
				return nil, token.Token{}, false
			}
			arg.DefaultText = body
			separator = terminator
		}

		args = append(args, arg)

		switch {
		case separator.Kind == token.R_PAREN:
			return args, separator, true
		case p.isCommaByte(separator):
			continue
		default:
			p.reportRecoverable(separator.Location, "malformed macro definition: expected ',' or ')' in argument list")
			p.lex.SkipToEndOfLine()
			return nil, token.Token{}, false
		}
	}
}

// collectDefaultText collects the default-text token sequence following
// a formal argument's '=', terminated by ',' or ')' at nesting depth 0.
func (p *Preprocessor) collectDefaultText() (body []token.Token, terminator token.Token, ok bool) {
	depth := 0
	for {
		t := p.lex.Next()
		switch {
		case t.Kind == token.EOF:
			p.reportRecoverable(t.Location, "malformed macro definition: unterminated argument list")
			p.lex.SkipToEndOfLine()
			return nil, token.Token{}, false
		case depth == 0 && (t.Kind == token.R_PAREN || p.isCommaByte(t)):
			return body, t, true
		case t.Kind == token.L_PAREN:
			depth++
			body = append(body, t)
		case t.Kind == token.R_PAREN:
			depth--
			body = append(body, t)
		default:
			body = append(body, t)
		}
	}
}

// collectBodyTokens collects replacement-text tokens until end-of-line,
// with line-continuation (backslash immediately followed by a newline)
// extending collection onto the next physical line. baseline is the
// last token already consumed before the body (the macro name for
// object-like macros, the closing ')' for function-like ones) and fixes
// the line the body is initially allowed to continue on.
func (p *Preprocessor) collectBodyTokens(baseline token.Token) []token.Token {
	allowedLine := p.lineOf(baseline)

	var body []token.Token
	for {
		t := p.lex.Next()
		if t.Kind == token.EOF {
			break
		}
		if isLineContinuationMarker(t) {
			allowedLine = p.lineOf(t) + 1
			continue
		}
		line := p.lineOf(t)
		if line > allowedLine {
			p.lex.Unget(t)
			break
		}
		allowedLine = line
		body = append(body, t)
	}
	return body
}

func (p *Preprocessor) lineOf(t token.Token) int {
	line, _ := p.lex.LineColumn(t.Location)
	return line
}

// isCommaByte reports whether t is the single raw source byte ',' —
// comma has no punctuation Kind of its own (it is outside the closed
// token-kind set), so its recognition here reads the source byte
// directly rather than switching on Kind.
func (p *Preprocessor) isCommaByte(t token.Token) bool {
	src := p.lex.Source()
	return t.Length == 1 && t.Location < len(src) && src[t.Location] == ','
}

// isLineContinuationMarker reports whether t is the synthetic
// zero-content ESCAPED_IDENTIFIER the lexer produces for a bare
// backslash immediately followed by a newline: the macro-body
// line-continuation marker, not a real escaped identifier.
func isLineContinuationMarker(t token.Token) bool {
	if t.Kind != token.ESCAPED_IDENTIFIER {
		return false
	}
	return t.Payload == "\\"
}
