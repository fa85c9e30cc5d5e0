// Package lexer implements the Monkey language lexer (tokeniser).
//
// The lexer converts a Monkey source string into a flat stream of [ast.Token]
// values. Call [New] to create a lexer and then call [Lexer.NextToken]
// repeatedly until you receive a token with Type == [ast.EOF].
//
// Design notes:
//   - Single-pass, character-by-character scanning using a read position cursor.
//   - No global state; every [Lexer] is independent.
//   - Line and column numbers are tracked for every token (1-based).
//   - Identifiers are scanned first and then classified as keywords via
//     [ast.LookupIdent]; this keeps the main switch statement small.
//   - The two-character operators (==, !=) need one character of look-ahead
//     and are handled by peekChar.
//   - The lexer never fails. Anything it does not recognise becomes an
//     [ast.ILLEGAL] token and is left for the parser to report.
package lexer

import (
	"unicode/utf8"

	"github.com/metaphox/monkey-lang/ast"
)

// Lexer holds all state required to tokenise a single Monkey source string.
// Create one with [New]; never copy a Lexer after first use.
type Lexer struct {
	input   string // the full source text
	pos     int    // current read position (index of ch)
	readPos int    // next read position (pos + 1)
	ch      byte   // current character under examination

	line int // current 1-based line number
	col  int // 1-based column of ch
}

// New creates a [Lexer] that tokenises the given input string.
func New(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		col:   0,
	}
	l.readChar() // prime: set l.ch = input[0]
	return l
}

// Tokenize scans the whole input and returns every token up to and including
// the first EOF.
func Tokenize(input string) []ast.Token {
	l := New(input)
	var toks []ast.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == ast.EOF {
			return toks
		}
	}
}

// NextToken returns the next token from the input.
//
// Whitespace (spaces, tabs, carriage returns, newlines) is skipped before each
// token. When the input is exhausted, NextToken returns a token with
// Type == [ast.EOF] on every subsequent call.
func (l *Lexer) NextToken() ast.Token {
	l.skipWhitespace()

	if l.atEOF() {
		return l.makeToken(ast.EOF, "")
	}

	var tok ast.Token

	switch l.ch {
	// ── Single-character operators and delimiters ───────────────────────────
	case '+':
		tok = l.makeToken(ast.PLUS, "+")
	case '-':
		tok = l.makeToken(ast.MINUS, "-")
	case '*':
		tok = l.makeToken(ast.ASTERISK, "*")
	case '/':
		tok = l.makeToken(ast.SLASH, "/")
	case '<':
		tok = l.makeToken(ast.LT, "<")
	case '>':
		tok = l.makeToken(ast.GT, ">")
	case ',':
		tok = l.makeToken(ast.COMMA, ",")
	case ';':
		tok = l.makeToken(ast.SEMICOLON, ";")
	case '(':
		tok = l.makeToken(ast.LPAREN, "(")
	case ')':
		tok = l.makeToken(ast.RPAREN, ")")
	case '{':
		tok = l.makeToken(ast.LBRACE, "{")
	case '}':
		tok = l.makeToken(ast.RBRACE, "}")

	// ── Operators that may be one or two characters ─────────────────────────
	case '=':
		if l.peekChar() == '=' {
			tok = l.makeToken(ast.EQ, "==")
			l.readChar()
		} else {
			tok = l.makeToken(ast.ASSIGN, "=")
		}
	case '!':
		if l.peekChar() == '=' {
			tok = l.makeToken(ast.NEQ, "!=")
			l.readChar()
		} else {
			tok = l.makeToken(ast.BANG, "!")
		}

	// ── Identifiers, keywords, integers ─────────────────────────────────────
	default:
		if isLetter(l.ch) {
			return l.readIdentifier()
		} else if isDigit(l.ch) {
			return l.readNumber()
		}
		return l.readIllegal()
	}

	l.readChar() // advance past the last character of this token
	return tok
}

// ── Internal helpers ──────────────────────────────────────────────────────────

// readChar advances the lexer by one character.
// When the input is exhausted l.ch is set to 0 and atEOF reports true.
// Line and column counters are updated here; col is 1-based.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++

	// A newline belongs to the line it ends; the character after it is col 1
	// of the next line.
	if l.pos > 0 && l.pos <= len(l.input) && l.input[l.pos-1] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
}

// atEOF reports whether the cursor has moved past the last character.
// An embedded NUL byte is not end of input; it is scanned as ILLEGAL.
func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.input)
}

// peekChar returns the next character without consuming it.
// Returns 0 when the end of input has been reached.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// makeToken constructs a token at the current source position.
// It does NOT advance the cursor.
func (l *Lexer) makeToken(tt ast.TokenType, literal string) ast.Token {
	return ast.Token{Type: tt, Literal: literal, Line: l.line, Col: l.col}
}

// skipWhitespace advances past spaces, tabs, carriage returns and newlines.
func (l *Lexer) skipWhitespace() {
	for !l.atEOF() {
		switch l.ch {
		case ' ', '\t', '\r', '\n':
			l.readChar()
		default:
			return
		}
	}
}

// readIdentifier scans an identifier or keyword starting at the current
// position. It leaves the cursor on the first character after the identifier,
// so NextToken returns its result without the trailing readChar.
func (l *Lexer) readIdentifier() ast.Token {
	tok := l.makeToken(ast.IDENT, "")
	start := l.pos

	for !l.atEOF() && (isLetter(l.ch) || isDigit(l.ch)) {
		l.readChar()
	}

	tok.Literal = l.input[start:l.pos]
	tok.Type = ast.LookupIdent(tok.Literal)
	return tok
}

// readNumber scans a run of decimal digits. Like readIdentifier it leaves the
// cursor on the first non-digit character.
func (l *Lexer) readNumber() ast.Token {
	tok := l.makeToken(ast.INT, "")
	start := l.pos

	for !l.atEOF() && isDigit(l.ch) {
		l.readChar()
	}

	tok.Literal = l.input[start:l.pos]
	return tok
}

// readIllegal consumes one unrecognised character. A byte that starts a valid
// UTF-8 sequence takes the whole sequence with it so the literal is a complete
// character; an invalid byte is taken on its own.
func (l *Lexer) readIllegal() ast.Token {
	tok := l.makeToken(ast.ILLEGAL, "")
	_, size := utf8.DecodeRuneInString(l.input[l.pos:])
	tok.Literal = l.input[l.pos : l.pos+size]
	for i := 0; i < size; i++ {
		l.readChar()
	}
	return tok
}

// isLetter reports whether b may start or continue an identifier.
// Monkey identifiers follow the pattern [a-zA-Z_][a-zA-Z0-9_]*.
func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		b == '_'
}

// isDigit reports whether b is an ASCII decimal digit (0–9).
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
