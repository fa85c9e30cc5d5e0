package parser

import (
	"strconv"

	"github.com/metaphox/monkey-lang/ast"
)

// ── Expression parsing (Pratt) ────────────────────────────────────────────────

// parseExpression parses an expression whose operators all bind tighter than
// prec. The current token must be the first token of the expression; on
// return it is the last token of the expression.
//
// Equal precedence stops the loop, so a chain like a - b - c folds to the
// left: the right operand of the first '-' is parsed at precSum and returns
// before the second '-'.
func (p *Parser) parseExpression(prec int) ast.Expression {
	defer p.trace("parseExpression")()

	prefix := p.prefixFns[p.cur.Type]
	if prefix == nil {
		p.noPrefixFnError(p.cur.Type)
		return nil
	}

	left := prefix()
	if left == nil {
		return nil
	}

	for !p.peekIs(ast.SEMICOLON) && prec < p.peekPrec() {
		infix := p.infixFns[p.peek.Type]
		if infix == nil {
			return left
		}
		p.advance()
		left = infix(left)
		if left == nil {
			return nil
		}
	}

	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.cur, Name: p.cur.Literal}
}

// parseIntLiteral converts the literal to an int64. Literals that overflow
// are a syntax error here rather than a runtime surprise later.
func (p *Parser) parseIntLiteral() ast.Expression {
	tok := p.cur
	val, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		p.record(InvalidInteger, tok.Pos(), "could not parse %s as integer", tok.Literal)
		return nil
	}
	return &ast.IntLiteral{Token: tok, Value: val}
}

func (p *Parser) parseBoolLiteral() ast.Expression {
	return &ast.BoolLiteral{Token: p.cur, Value: p.curIs(ast.TRUE)}
}

// parsePrefixExpression parses `!x` and `-x`. The operand is parsed at
// precPrefix so that -a * b groups as (-a) * b.
func (p *Parser) parsePrefixExpression() ast.Expression {
	expr := &ast.PrefixExpr{Token: p.cur, Operator: p.cur.Literal}
	p.advance()

	right := p.parseExpression(precPrefix)
	if right == nil {
		return nil
	}
	expr.Right = right
	return expr
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expr := &ast.InfixExpr{Token: p.cur, Left: left, Operator: p.cur.Literal}
	prec := p.curPrec()
	p.advance()

	right := p.parseExpression(prec)
	if right == nil {
		return nil
	}
	expr.Right = right
	return expr
}

// parseGroupedExpression parses `( expr )`. Grouping leaves no node of its
// own in the tree.
func (p *Parser) parseGroupedExpression() ast.Expression {
	p.advance() // move past '('

	expr := p.parseExpression(precLowest)
	if expr == nil {
		return nil
	}
	if !p.expect(ast.RPAREN) {
		return nil
	}
	return expr
}

// parseIfExpression parses `if ( cond ) { ... } [else { ... }]`.
func (p *Parser) parseIfExpression() ast.Expression {
	expr := &ast.IfExpr{Token: p.cur}

	if !p.expect(ast.LPAREN) {
		return nil
	}
	p.advance() // move to condition

	cond := p.parseExpression(precLowest)
	if cond == nil {
		return nil
	}
	expr.Condition = cond

	if !p.expect(ast.RPAREN) || !p.expect(ast.LBRACE) {
		return nil
	}
	if expr.Consequence = p.parseBlockStatement(); expr.Consequence == nil {
		return nil
	}

	if p.peekIs(ast.ELSE) {
		p.advance() // consume 'else'
		if !p.expect(ast.LBRACE) {
			return nil
		}
		if expr.Alternative = p.parseBlockStatement(); expr.Alternative == nil {
			return nil
		}
	}

	return expr
}

// parseFnLiteral parses `fn ( params ) { body }`.
func (p *Parser) parseFnLiteral() ast.Expression {
	fn := &ast.FnLiteral{Token: p.cur}

	if !p.expect(ast.LPAREN) {
		return nil
	}
	params, ok := p.parseFnParams()
	if !ok {
		return nil
	}
	fn.Params = params

	if !p.expect(ast.LBRACE) {
		return nil
	}
	if fn.Body = p.parseBlockStatement(); fn.Body == nil {
		return nil
	}
	return fn
}

// parseFnParams parses a comma-separated identifier list. The current token
// is '(' on entry and ')' on successful return.
func (p *Parser) parseFnParams() ([]*ast.Identifier, bool) {
	params := []*ast.Identifier{}

	if p.peekIs(ast.RPAREN) {
		p.advance()
		return params, true
	}

	if !p.expect(ast.IDENT) {
		return nil, false
	}
	params = append(params, &ast.Identifier{Token: p.cur, Name: p.cur.Literal})

	for p.peekIs(ast.COMMA) {
		p.advance() // consume ','
		if !p.expect(ast.IDENT) {
			return nil, false
		}
		params = append(params, &ast.Identifier{Token: p.cur, Name: p.cur.Literal})
	}

	if !p.expect(ast.RPAREN) {
		return nil, false
	}
	return params, true
}

// parseCallExpression is the infix rule for '('. fn is the callee.
func (p *Parser) parseCallExpression(fn ast.Expression) ast.Expression {
	call := &ast.CallExpr{Token: p.cur, Function: fn}

	args, ok := p.parseArgList()
	if !ok {
		return nil
	}
	call.Args = args
	return call
}

// parseArgList parses comma-separated argument expressions up to ')'.
func (p *Parser) parseArgList() ([]ast.Expression, bool) {
	args := []ast.Expression{}

	if p.peekIs(ast.RPAREN) {
		p.advance()
		return args, true
	}

	p.advance() // move to first argument
	arg := p.parseExpression(precLowest)
	if arg == nil {
		return nil, false
	}
	args = append(args, arg)

	for p.peekIs(ast.COMMA) {
		p.advance() // consume ','
		p.advance() // move to next argument
		arg := p.parseExpression(precLowest)
		if arg == nil {
			return nil, false
		}
		args = append(args, arg)
	}

	if !p.expect(ast.RPAREN) {
		return nil, false
	}
	return args, true
}
