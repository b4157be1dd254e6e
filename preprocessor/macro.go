/*
File    : svlex/preprocessor/macro.go
Author  : svlex contributors
*/
package preprocessor

import "github.com/svlex/svlex/token"

// MacroFormalArgument is one formal parameter of a function-like
// macro: a simple identifier optionally followed by default text.
type MacroFormalArgument struct {
	Name        token.Token
	DefaultText []token.Token
}

// MacroInfo records one `define`d macro: its name, whether it is
// function-like, its formal arguments (empty for object-like macros),
// and the collected (not expanded) body token sequence.
type MacroInfo struct {
	Name            token.Token
	IsFunctionLike  bool
	FormalArguments []MacroFormalArgument
	BodyTokens      []token.Token
}
