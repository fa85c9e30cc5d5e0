package parser

import "github.com/metaphox/monkey-lang/ast"

// ── Statement parsing ─────────────────────────────────────────────────────────

// parseStatement dispatches on the current token. It returns nil when the
// statement is malformed; the error has already been recorded and the caller
// is expected to synchronize.
//
// On success the current token is the last token of the statement.
func (p *Parser) parseStatement() ast.Statement {
	defer p.trace("parseStatement")()

	switch p.cur.Type {
	case ast.LET:
		return p.parseLetStatement()
	case ast.RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseLetStatement parses `let name = expr [;]`.
func (p *Parser) parseLetStatement() ast.Statement {
	stmt := &ast.LetStmt{Token: p.cur}

	if !p.expect(ast.IDENT) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.cur, Name: p.cur.Literal}

	if !p.expect(ast.ASSIGN) {
		return nil
	}
	p.advance() // move past '='

	value := p.parseExpression(precLowest)
	if value == nil {
		return nil
	}
	stmt.Value = value

	p.terminator(true)
	return stmt
}

// parseReturnStatement parses `return expr [;]`.
func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStmt{Token: p.cur}
	p.advance() // move past 'return'

	value := p.parseExpression(precLowest)
	if value == nil {
		return nil
	}
	stmt.Value = value

	p.terminator(true)
	return stmt
}

// parseExpressionStatement parses a bare expression. The trailing ';' is
// always optional so that single expressions can be parsed on their own.
func (p *Parser) parseExpressionStatement() ast.Statement {
	tok := p.cur
	expr := p.parseExpression(precLowest)
	if expr == nil {
		return nil
	}

	p.terminator(false)
	return &ast.ExprStmt{Token: tok, Expr: expr}
}

// terminator consumes an optional ';'. In strict mode a statement that may
// require one records an error when it is missing; the statement is still
// kept.
func (p *Parser) terminator(required bool) {
	if p.peekIs(ast.SEMICOLON) {
		p.advance()
		return
	}
	if required && p.strict {
		p.peekError(MissingSemicolon, ast.SEMICOLON)
	}
}

// parseBlockStatement parses `{ stmt* }`. The current token is '{' on entry
// and the matching '}' on return. Hitting EOF first records an error and
// returns nil.
func (p *Parser) parseBlockStatement() *ast.BlockStmt {
	defer p.trace("parseBlockStatement")()

	block := &ast.BlockStmt{Token: p.cur}
	p.advance() // move past '{'

	for !p.curIs(ast.RBRACE) {
		if p.curIs(ast.EOF) {
			p.record(UnexpectedToken, p.cur.Pos(), "expected next token to be %s, got %s instead", ast.RBRACE, ast.EOF)
			return nil
		}
		if s := p.parseStatement(); s != nil {
			block.Stmts = append(block.Stmts, s)
		} else {
			p.synchronize()
		}
		p.advance()
	}
	return block
}
