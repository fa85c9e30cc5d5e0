package parser

import (
	"fmt"

	"github.com/metaphox/monkey-lang/ast"
)

// ErrorKind classifies a syntax error.
type ErrorKind int

const (
	// UnexpectedToken means a specific token type was required next and a
	// different one was found.
	UnexpectedToken ErrorKind = iota + 1
	// NoPrefixParseFn means a token that cannot begin an expression appeared
	// where an expression was expected.
	NoPrefixParseFn
	// InvalidInteger means an integer literal does not fit in an int64.
	InvalidInteger
	// MissingSemicolon is only reported in strict mode, for a let or return
	// statement that is not terminated by ';'.
	MissingSemicolon
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "unexpected token"
	case NoPrefixParseFn:
		return "no prefix parse function"
	case InvalidInteger:
		return "invalid integer"
	case MissingSemicolon:
		return "missing semicolon"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is a single syntax error recorded by the parser.
//
// Msg is the bare message ("expected next token to be =, got INT instead");
// Error() prefixes it with the position.
type Error struct {
	Kind ErrorKind
	Pos  ast.Pos
	Msg  string
}

func (e *Error) Error() string {
	return e.Pos.String() + ": " + e.Msg
}
