// Package parser implements the Monkey recursive-descent parser.
//
// The parser reads a token stream from a [lexer.Lexer] and builds an
// [ast.Program]. Statements are parsed by plain recursive descent; expression
// parsing uses Pratt (top-down operator precedence) so that precedence rules
// are encoded in a small table rather than a tangle of grammar rules.
//
// Usage:
//
//	l := lexer.New(source)
//	p := parser.New(l)
//	prog := p.ParseProgram()
//	if errs := p.Errors(); len(errs) != 0 { ... }
//
// Error recovery: the parser collects errors and continues so that multiple
// problems can be reported in a single pass. On a failed statement it skips to
// the next statement boundary: a ';', the '}' closing the enclosing block, the
// start of a let or return statement, or EOF.
package parser

import (
	"fmt"
	"log/slog"

	"github.com/metaphox/monkey-lang/ast"
	"github.com/metaphox/monkey-lang/lexer"
)

// ── Operator precedence ───────────────────────────────────────────────────────

// Precedence levels, ordered from lowest to highest.
const (
	precLowest      = iota // starting point
	precEquals             // == !=
	precLessGreater        // < >
	precSum                // + -
	precProduct            // * /
	precPrefix             // -x  !x
	precCall               // f(...)
)

// tokenPrecedence maps an infix TokenType to its precedence level.
// Tokens not in this map have precLowest. The table is never written after
// package initialisation.
var tokenPrecedence = map[ast.TokenType]int{
	ast.EQ:       precEquals,
	ast.NEQ:      precEquals,
	ast.LT:       precLessGreater,
	ast.GT:       precLessGreater,
	ast.PLUS:     precSum,
	ast.MINUS:    precSum,
	ast.ASTERISK: precProduct,
	ast.SLASH:    precProduct,
	ast.LPAREN:   precCall,
}

// ── Parser ────────────────────────────────────────────────────────────────────

// prefixParseFn parses an expression that starts with the current token.
// It returns nil when the expression is malformed; the error is already
// recorded.
type prefixParseFn func() ast.Expression

// infixParseFn parses an infix expression given the already-parsed left-hand
// side. The current token is the operator.
type infixParseFn func(left ast.Expression) ast.Expression

// Parser holds all state needed to parse one Monkey source text.
// Create one with [New] and call [Parser.ParseProgram]. A Parser is not safe
// for concurrent use.
type Parser struct {
	l      *lexer.Lexer
	cur    ast.Token // current token (the one being examined)
	peek   ast.Token // next token (one-token look-ahead)
	errors []*Error  // accumulated syntax errors, in source order

	strict bool         // require ';' after let and return
	log    *slog.Logger // nil disables tracing
	depth  int          // trace nesting

	prefixFns map[ast.TokenType]prefixParseFn
	infixFns  map[ast.TokenType]infixParseFn
}

// Option configures a Parser.
type Option func(*Parser)

// WithStrictSemicolons makes a missing ';' after a let or return statement a
// syntax error. By default the semicolon is optional everywhere.
func WithStrictSemicolons() Option {
	return func(p *Parser) { p.strict = true }
}

// WithLogger enables debug tracing of the parse through log. Every recorded
// error is also logged.
func WithLogger(log *slog.Logger) Option {
	return func(p *Parser) { p.log = log }
}

// New creates a Parser that reads tokens from l.
// It primes the two-token lookahead and registers all parse functions.
func New(l *lexer.Lexer, opts ...Option) *Parser {
	p := &Parser{
		l:         l,
		prefixFns: make(map[ast.TokenType]prefixParseFn),
		infixFns:  make(map[ast.TokenType]infixParseFn),
	}
	for _, opt := range opts {
		opt(p)
	}

	// ── Prefix (nud) functions ────────────────────────────────────────────────
	p.registerPrefix(ast.IDENT, p.parseIdentifier)
	p.registerPrefix(ast.INT, p.parseIntLiteral)
	p.registerPrefix(ast.TRUE, p.parseBoolLiteral)
	p.registerPrefix(ast.FALSE, p.parseBoolLiteral)
	p.registerPrefix(ast.BANG, p.parsePrefixExpression)
	p.registerPrefix(ast.MINUS, p.parsePrefixExpression)
	p.registerPrefix(ast.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(ast.IF, p.parseIfExpression)
	p.registerPrefix(ast.FUNCTION, p.parseFnLiteral)

	// ── Infix (led) functions ─────────────────────────────────────────────────
	for _, tt := range []ast.TokenType{
		ast.PLUS, ast.MINUS, ast.ASTERISK, ast.SLASH,
		ast.EQ, ast.NEQ, ast.LT, ast.GT,
	} {
		p.registerInfix(tt, p.parseInfixExpression)
	}
	p.registerInfix(ast.LPAREN, p.parseCallExpression)

	// Prime the lookahead: after two advances, cur = first token, peek = second.
	p.advance()
	p.advance()

	return p
}

// Parse is a convenience wrapper that lexes and parses src in one call.
// The returned program is never nil.
func Parse(src string, opts ...Option) (*ast.Program, []*Error) {
	p := New(lexer.New(src), opts...)
	prog := p.ParseProgram()
	return prog, p.Diagnostics()
}

// Errors returns the messages of all errors collected by ParseProgram, in the
// order they were found.
func (p *Parser) Errors() []string {
	msgs := make([]string, len(p.errors))
	for i, e := range p.errors {
		msgs[i] = e.Msg
	}
	return msgs
}

// Diagnostics returns the collected errors with their kind and position.
func (p *Parser) Diagnostics() []*Error {
	return p.errors
}

// ParseProgram builds and returns the AST for the whole input. It always
// returns a program; statements that failed to parse are left out of it and
// the reason is available from Errors.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.curIs(ast.EOF) {
		if s := p.parseStatement(); s != nil {
			prog.Statements = append(prog.Statements, s)
		} else {
			p.synchronize()
		}
		p.advance()
	}
	return prog
}

// ── Internal token management ─────────────────────────────────────────────────

// advance consumes one token from the lexer, shifting peek into cur.
func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

// expect checks that the peek token matches tt. If so it advances and returns
// true; otherwise it records an error and returns false (no advance).
func (p *Parser) expect(tt ast.TokenType) bool {
	if p.peek.Type == tt {
		p.advance()
		return true
	}
	p.peekError(UnexpectedToken, tt)
	return false
}

// curIs reports whether the current token has the given type.
func (p *Parser) curIs(tt ast.TokenType) bool { return p.cur.Type == tt }

// peekIs reports whether the peek token has the given type.
func (p *Parser) peekIs(tt ast.TokenType) bool { return p.peek.Type == tt }

// curPrec returns the precedence of the current token.
func (p *Parser) curPrec() int {
	if p, ok := tokenPrecedence[p.cur.Type]; ok {
		return p
	}
	return precLowest
}

// peekPrec returns the precedence of the peek token.
func (p *Parser) peekPrec() int {
	if p, ok := tokenPrecedence[p.peek.Type]; ok {
		return p
	}
	return precLowest
}

// synchronize skips tokens after a failed statement so that the caller's
// advance lands on the start of the next statement.
func (p *Parser) synchronize() {
	for !p.curIs(ast.SEMICOLON) && !p.curIs(ast.EOF) {
		switch p.peek.Type {
		case ast.RBRACE, ast.EOF, ast.LET, ast.RETURN:
			return
		}
		p.advance()
	}
}

// record appends a syntax error.
func (p *Parser) record(kind ErrorKind, pos ast.Pos, format string, args ...any) {
	e := &Error{Kind: kind, Pos: pos, Msg: fmt.Sprintf(format, args...)}
	p.errors = append(p.errors, e)
	if p.log != nil {
		p.log.Debug("syntax error", "pos", e.Pos.String(), "kind", e.Kind.String(), "msg", e.Msg)
	}
}

// peekError records that tt was expected as the next token.
func (p *Parser) peekError(kind ErrorKind, tt ast.TokenType) {
	p.record(kind, p.peek.Pos(), "expected next token to be %s, got %s instead", tt, p.peek.Type)
}

// noPrefixFnError records an error for a token that cannot start an expression.
func (p *Parser) noPrefixFnError(tt ast.TokenType) {
	p.record(NoPrefixParseFn, p.cur.Pos(), "no prefix parse function for %s found", tt)
}

// registerPrefix registers a prefix parse function for a token type.
func (p *Parser) registerPrefix(tt ast.TokenType, fn prefixParseFn) {
	p.prefixFns[tt] = fn
}

// registerInfix registers an infix parse function for a token type.
func (p *Parser) registerInfix(tt ast.TokenType, fn infixParseFn) {
	p.infixFns[tt] = fn
}

// trace logs entry into a parse function and returns the matching exit call:
//
//	defer p.trace("parseStatement")()
func (p *Parser) trace(fn string) func() {
	if p.log == nil {
		return func() {}
	}
	p.log.Debug("begin "+fn, "depth", p.depth, "tok", p.cur.Type.String(), "literal", p.cur.Literal, "pos", p.cur.Pos().String())
	p.depth++
	return func() {
		p.depth--
		p.log.Debug("end "+fn, "depth", p.depth)
	}
}
