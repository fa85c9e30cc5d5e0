// Package ast defines the token types and the Token struct used by the Monkey
// lexer and parser, along with the syntax tree the parser builds from them.
//
// Tokens are the smallest meaningful units of a Monkey source file. Every token
// carries its type, the exact literal text it was scanned from, and its source
// position (line + column). Position is 1-based: the first character of a file
// is Line 1, Col 1.
package ast

import "fmt"

// TokenType identifies the category of a scanned token.
type TokenType int

const (
	// ── Special ────────────────────────────────────────────────────────────────

	// ILLEGAL represents a character the lexer could not recognise.
	// The offending character is kept as the token literal.
	ILLEGAL TokenType = iota
	// EOF marks the end of the input stream. The lexer keeps returning EOF
	// once the input is exhausted.
	EOF

	// ── Literals ───────────────────────────────────────────────────────────────

	// IDENT is an identifier: [a-zA-Z_][a-zA-Z0-9_]*
	IDENT
	// INT is a decimal integer literal with no sign, e.g. 0, 42, 838383.
	// Range checking happens in the parser, not the lexer.
	INT

	// ── Operators ──────────────────────────────────────────────────────────────

	ASSIGN   // =
	PLUS     // +
	MINUS    // -  (also unary negation)
	BANG     // !  (unary not)
	ASTERISK // *
	SLASH    // /
	LT       // <
	GT       // >
	EQ       // ==
	NEQ      // !=

	// ── Delimiters ─────────────────────────────────────────────────────────────

	COMMA     // ,
	SEMICOLON // ;
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }

	// ── Keywords ───────────────────────────────────────────────────────────────

	// FUNCTION introduces a function literal: fn(x, y) { x + y }
	FUNCTION
	// LET introduces a binding: let x = 5;
	LET
	TRUE
	FALSE
	// IF begins a conditional expression: if (x < y) { x } else { y }
	IF
	ELSE
	// RETURN returns a value from the enclosing function: return x;
	RETURN
)

// tokenNames holds the display name of every TokenType. Operators and
// delimiters are shown as their source text so that error messages read
// naturally ("expected next token to be =, got INT instead").
var tokenNames = [...]string{
	ILLEGAL:   "ILLEGAL",
	EOF:       "EOF",
	IDENT:     "IDENT",
	INT:       "INT",
	ASSIGN:    "=",
	PLUS:      "+",
	MINUS:     "-",
	BANG:      "!",
	ASTERISK:  "*",
	SLASH:     "/",
	LT:        "<",
	GT:        ">",
	EQ:        "==",
	NEQ:       "!=",
	COMMA:     ",",
	SEMICOLON: ";",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACE:    "{",
	RBRACE:    "}",
	FUNCTION:  "FUNCTION",
	LET:       "LET",
	TRUE:      "TRUE",
	FALSE:     "FALSE",
	IF:        "IF",
	ELSE:      "ELSE",
	RETURN:    "RETURN",
}

// String returns the display name of tt.
func (tt TokenType) String() string {
	if tt >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// keywords maps the literal text of every Monkey keyword to its TokenType.
// The lexer consults this map when it finishes scanning an identifier.
var keywords = map[string]TokenType{
	"fn":     FUNCTION,
	"let":    LET,
	"true":   TRUE,
	"false":  FALSE,
	"if":     IF,
	"else":   ELSE,
	"return": RETURN,
}

// LookupIdent checks whether ident is a reserved keyword and returns the
// corresponding TokenType. If ident is not a keyword, IDENT is returned.
func LookupIdent(ident string) TokenType {
	if tt, ok := keywords[ident]; ok {
		return tt
	}
	return IDENT
}

// Pos is a 1-based source position. The zero value means "unknown".
type Pos struct {
	Line int
	Col  int
}

// String formats the position as "line:col".
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// IsValid reports whether p refers to a real source location.
func (p Pos) IsValid() bool { return p.Line > 0 }

// Token is a single lexical unit produced by the Monkey lexer.
//
// Fields:
//   - Type    — the category of this token (see TokenType constants)
//   - Literal — the exact source text that was scanned ("" for EOF)
//   - Line    — 1-based source line number
//   - Col     — 1-based column of the first character of this token
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Col     int
}

// Pos returns the position of the first character of the token.
func (t Token) Pos() Pos { return Pos{Line: t.Line, Col: t.Col} }

// String returns the literal text of the token.
func (t Token) String() string {
	return t.Literal
}
