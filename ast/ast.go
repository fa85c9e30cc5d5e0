// The node hierarchy is:
//
//	Node (interface)
//	  Statement (interface)
//	    LetStmt, ReturnStmt, ExprStmt, BlockStmt
//	  Expression (interface)
//	    Identifier, IntLiteral, BoolLiteral
//	    PrefixExpr, InfixExpr
//	    IfExpr, FnLiteral, CallExpr
//
// Positional information (line + column) is stored on the Token field present
// in every node. Callers should use node.Pos() to obtain position.

package ast

import "strings"

// ── Interfaces ────────────────────────────────────────────────────────────────

// Node is the root interface for every element in the Monkey AST.
// Every node carries the token at which it starts (for error reporting).
type Node interface {
	// TokenLiteral returns the literal string of the token that began this node.
	TokenLiteral() string
	// String returns the canonical, fully parenthesised rendering of the node.
	// Two trees with equal String output have the same shape.
	String() string
	// Pos returns the source position of the node's first token.
	Pos() Pos
}

// Statement is a Node that appears in statement position.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that evaluates to a value.
type Expression interface {
	Node
	expressionNode()
}

// ── Top-level program ─────────────────────────────────────────────────────────

// Program is the root AST node produced by the parser.
type Program struct {
	Statements []Statement
}

// TokenLiteral returns the literal of the first statement's starting token,
// or "" for an empty program.
func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

// Pos returns the position of the first statement, or the zero Pos.
func (p *Program) Pos() Pos {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return Pos{}
}

// String returns all statements concatenated, useful for snapshot testing.
func (p *Program) String() string {
	var b strings.Builder
	for _, s := range p.Statements {
		b.WriteString(s.String())
	}
	return b.String()
}

// ── Statements ────────────────────────────────────────────────────────────────

// LetStmt binds a name to a value.
//
//	let x = 5;
type LetStmt struct {
	Token Token // the 'let' token
	Name  *Identifier
	Value Expression
}

func (s *LetStmt) statementNode()       {}
func (s *LetStmt) TokenLiteral() string { return s.Token.Literal }
func (s *LetStmt) Pos() Pos             { return s.Token.Pos() }
func (s *LetStmt) String() string {
	return s.Token.Literal + " " + s.Name.String() + " = " + s.Value.String() + ";"
}

// ReturnStmt returns a value from the enclosing function.
//
//	return x + 1;
type ReturnStmt struct {
	Token Token // the 'return' token
	Value Expression
}

func (s *ReturnStmt) statementNode()       {}
func (s *ReturnStmt) TokenLiteral() string { return s.Token.Literal }
func (s *ReturnStmt) Pos() Pos             { return s.Token.Pos() }
func (s *ReturnStmt) String() string {
	return s.Token.Literal + " " + s.Value.String() + ";"
}

// ExprStmt wraps an expression that appears in statement position.
type ExprStmt struct {
	Token Token // the first token of the expression
	Expr  Expression
}

func (s *ExprStmt) statementNode()       {}
func (s *ExprStmt) TokenLiteral() string { return s.Token.Literal }
func (s *ExprStmt) Pos() Pos             { return s.Token.Pos() }
func (s *ExprStmt) String() string       { return s.Expr.String() }

// BlockStmt is a brace-delimited sequence of statements. It is used as the
// body of function literals and the branches of if expressions.
//
//	{ let y = x * 2; y }
type BlockStmt struct {
	Token Token // the '{' token
	Stmts []Statement
}

func (s *BlockStmt) statementNode()       {}
func (s *BlockStmt) TokenLiteral() string { return s.Token.Literal }
func (s *BlockStmt) Pos() Pos             { return s.Token.Pos() }
func (s *BlockStmt) String() string {
	parts := make([]string, len(s.Stmts))
	for i, st := range s.Stmts {
		parts[i] = st.String()
	}
	if len(parts) == 0 {
		return "{ }"
	}
	return "{ " + strings.Join(parts, " ") + " }"
}

// ── Expressions ───────────────────────────────────────────────────────────────

// Identifier is a reference to a named binding.
type Identifier struct {
	Token Token
	Name  string
}

func (e *Identifier) expressionNode()      {}
func (e *Identifier) TokenLiteral() string { return e.Token.Literal }
func (e *Identifier) Pos() Pos             { return e.Token.Pos() }
func (e *Identifier) String() string       { return e.Name }

// IntLiteral is a decimal integer literal value.
type IntLiteral struct {
	Token Token
	Value int64
}

func (e *IntLiteral) expressionNode()      {}
func (e *IntLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *IntLiteral) Pos() Pos             { return e.Token.Pos() }
func (e *IntLiteral) String() string       { return e.Token.Literal }

// BoolLiteral is the boolean literal true or false.
type BoolLiteral struct {
	Token Token
	Value bool
}

func (e *BoolLiteral) expressionNode()      {}
func (e *BoolLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *BoolLiteral) Pos() Pos             { return e.Token.Pos() }
func (e *BoolLiteral) String() string       { return e.Token.Literal }

// PrefixExpr is a unary prefix expression: !ok  or  -5.
type PrefixExpr struct {
	Token    Token  // the operator token
	Operator string // "!" or "-"
	Right    Expression
}

func (e *PrefixExpr) expressionNode()      {}
func (e *PrefixExpr) TokenLiteral() string { return e.Token.Literal }
func (e *PrefixExpr) Pos() Pos             { return e.Token.Pos() }
func (e *PrefixExpr) String() string {
	return "(" + e.Operator + e.Right.String() + ")"
}

// InfixExpr is a binary infix expression: left op right.
type InfixExpr struct {
	Token    Token // the operator token
	Left     Expression
	Operator string // "+", "-", "*", "/", "<", ">", "==", "!="
	Right    Expression
}

func (e *InfixExpr) expressionNode()      {}
func (e *InfixExpr) TokenLiteral() string { return e.Token.Literal }
func (e *InfixExpr) Pos() Pos             { return e.Left.Pos() }
func (e *InfixExpr) String() string {
	return "(" + e.Left.String() + " " + e.Operator + " " + e.Right.String() + ")"
}

// IfExpr is a conditional expression.
// Alternative is nil when there is no else branch.
//
//	if (x < y) { x } else { y }
type IfExpr struct {
	Token       Token // the 'if' token
	Condition   Expression
	Consequence *BlockStmt
	Alternative *BlockStmt
}

func (e *IfExpr) expressionNode()      {}
func (e *IfExpr) TokenLiteral() string { return e.Token.Literal }
func (e *IfExpr) Pos() Pos             { return e.Token.Pos() }
func (e *IfExpr) String() string {
	out := "if " + e.Condition.String() + " " + e.Consequence.String()
	if e.Alternative != nil {
		out += " else " + e.Alternative.String()
	}
	return out
}

// FnLiteral is an anonymous function.
//
//	fn(x, y) { x + y; }
type FnLiteral struct {
	Token  Token // the 'fn' token
	Params []*Identifier
	Body   *BlockStmt
}

func (e *FnLiteral) expressionNode()      {}
func (e *FnLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *FnLiteral) Pos() Pos             { return e.Token.Pos() }
func (e *FnLiteral) String() string {
	params := make([]string, len(e.Params))
	for i, p := range e.Params {
		params[i] = p.String()
	}
	return e.Token.Literal + "(" + strings.Join(params, ", ") + ") " + e.Body.String()
}

// CallExpr is a function call. Function is any expression that produced a
// callable value: an identifier, a function literal or another call.
//
//	add(1, 2 * 3)
type CallExpr struct {
	Token    Token // the '(' token
	Function Expression
	Args     []Expression
}

func (e *CallExpr) expressionNode()      {}
func (e *CallExpr) TokenLiteral() string { return e.Token.Literal }
func (e *CallExpr) Pos() Pos             { return e.Function.Pos() }
func (e *CallExpr) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.String()
	}
	return e.Function.String() + "(" + strings.Join(args, ", ") + ")"
}
