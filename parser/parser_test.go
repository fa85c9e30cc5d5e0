// Package parser_test contains tests for the Monkey parser.
//
// Each test parses a snippet, inspects the returned AST via type assertions,
// and fails with a descriptive message on mismatch.
//
// Test categories:
//   - Statements:   let, return, expression statements, semicolons
//   - Expressions:  literals, prefix, infix (with precedence), grouping, if,
//                   fn literal, call
//   - Errors:       expected-token errors, missing prefix rules, recovery
//   - Properties:   idempotence, termination on malformed input
package parser_test

import (
	"reflect"
	"testing"

	"github.com/metaphox/monkey-lang/ast"
	"github.com/metaphox/monkey-lang/lexer"
	"github.com/metaphox/monkey-lang/parser"
)

// ── Helpers ───────────────────────────────────────────────────────────────────

// parse runs the full parser on input and fails the test if any parse errors
// were collected or if the number of top-level statements doesn't match want.
func parse(t *testing.T, input string, wantStmts int) *ast.Program {
	t.Helper()
	l := lexer.New(input)
	p := parser.New(l)
	prog := p.ParseProgram()

	errs := p.Errors()
	if len(errs) > 0 {
		t.Errorf("parser produced %d error(s):", len(errs))
		for _, e := range errs {
			t.Errorf("  %s", e)
		}
		t.FailNow()
	}
	if len(prog.Statements) != wantStmts {
		t.Fatalf("expected %d statements, got %d", wantStmts, len(prog.Statements))
	}
	return prog
}

// firstStmt is a convenience wrapper that returns the first statement after
// calling parse with wantStmts=1.
func firstStmt(t *testing.T, input string) ast.Statement {
	t.Helper()
	return parse(t, input, 1).Statements[0]
}

// parseErrors parses input and returns the error messages, failing the test
// if there are none.
func parseErrors(t *testing.T, input string, opts ...parser.Option) (*ast.Program, []string) {
	t.Helper()
	p := parser.New(lexer.New(input), opts...)
	prog := p.ParseProgram()
	errs := p.Errors()
	if len(errs) == 0 {
		t.Fatalf("expected parse errors for %q, got none (program: %s)", input, prog.String())
	}
	return prog, errs
}

// exprOf extracts the Expression from an ExprStmt, failing the test otherwise.
func exprOf(t *testing.T, stmt ast.Statement) ast.Expression {
	t.Helper()
	es, ok := stmt.(*ast.ExprStmt)
	if !ok {
		t.Fatalf("expected *ast.ExprStmt, got %T", stmt)
	}
	return es.Expr
}

// assertIdent checks that expr is an *ast.Identifier with the given name.
func assertIdent(t *testing.T, expr ast.Expression, name string) {
	t.Helper()
	id, ok := expr.(*ast.Identifier)
	if !ok {
		t.Fatalf("expected *ast.Identifier, got %T", expr)
	}
	if id.Name != name {
		t.Fatalf("identifier name: got %q, want %q", id.Name, name)
	}
	if id.TokenLiteral() != name {
		t.Fatalf("identifier token literal: got %q, want %q", id.TokenLiteral(), name)
	}
}

// assertIntLit checks that expr is an *ast.IntLiteral with the given value.
func assertIntLit(t *testing.T, expr ast.Expression, val int64) {
	t.Helper()
	lit, ok := expr.(*ast.IntLiteral)
	if !ok {
		t.Fatalf("expected *ast.IntLiteral, got %T", expr)
	}
	if lit.Value != val {
		t.Fatalf("IntLiteral value: got %d, want %d", lit.Value, val)
	}
}

// assertBoolLit checks that expr is an *ast.BoolLiteral with the given value.
func assertBoolLit(t *testing.T, expr ast.Expression, val bool) {
	t.Helper()
	lit, ok := expr.(*ast.BoolLiteral)
	if !ok {
		t.Fatalf("expected *ast.BoolLiteral, got %T", expr)
	}
	if lit.Value != val {
		t.Fatalf("BoolLiteral value: got %t, want %t", lit.Value, val)
	}
}

// assertLiteral dispatches on the Go type of want.
func assertLiteral(t *testing.T, expr ast.Expression, want any) {
	t.Helper()
	switch v := want.(type) {
	case int:
		assertIntLit(t, expr, int64(v))
	case int64:
		assertIntLit(t, expr, v)
	case string:
		assertIdent(t, expr, v)
	case bool:
		assertBoolLit(t, expr, v)
	default:
		t.Fatalf("unsupported literal %T", want)
	}
}

// assertInfix checks that expr is an *ast.InfixExpr with the given operator
// and literal operands.
func assertInfix(t *testing.T, expr ast.Expression, left any, op string, right any) {
	t.Helper()
	inf, ok := expr.(*ast.InfixExpr)
	if !ok {
		t.Fatalf("expected *ast.InfixExpr, got %T", expr)
	}
	if inf.Operator != op {
		t.Fatalf("infix operator: got %q, want %q", inf.Operator, op)
	}
	assertLiteral(t, inf.Left, left)
	assertLiteral(t, inf.Right, right)
}

// ── Let statements ────────────────────────────────────────────────────────────

func TestParser_LetStatement(t *testing.T) {
	s := firstStmt(t, `let x = 5;`)
	ls, ok := s.(*ast.LetStmt)
	if !ok {
		t.Fatalf("expected *ast.LetStmt, got %T", s)
	}
	if ls.TokenLiteral() != "let" {
		t.Errorf("token literal: got %q", ls.TokenLiteral())
	}
	if ls.Name.Name != "x" {
		t.Errorf("name: got %q, want %q", ls.Name.Name, "x")
	}
	assertIntLit(t, ls.Value, 5)
}

func TestParser_LetStatements(t *testing.T) {
	tests := []struct {
		input string
		name  string
		value any
	}{
		{"let x = 5;", "x", 5},
		{"let y = true;", "y", true},
		{"let foobar = y;", "foobar", "y"},
		{"let foobar = 838383", "foobar", 838383},
	}
	for _, tt := range tests {
		ls, ok := firstStmt(t, tt.input).(*ast.LetStmt)
		if !ok {
			t.Fatalf("%q: expected *ast.LetStmt", tt.input)
		}
		if ls.Name.Name != tt.name {
			t.Errorf("%q: name got %q, want %q", tt.input, ls.Name.Name, tt.name)
		}
		assertLiteral(t, ls.Value, tt.value)
	}
}

// ── Return statements ─────────────────────────────────────────────────────────

func TestParser_ReturnStatements(t *testing.T) {
	tests := []struct {
		input string
		value any
	}{
		{"return 5;", 5},
		{"return true;", true},
		{"return foobar;", "foobar"},
		{"return x", "x"},
	}
	for _, tt := range tests {
		rs, ok := firstStmt(t, tt.input).(*ast.ReturnStmt)
		if !ok {
			t.Fatalf("%q: expected *ast.ReturnStmt", tt.input)
		}
		if rs.TokenLiteral() != "return" {
			t.Errorf("token literal: got %q", rs.TokenLiteral())
		}
		assertLiteral(t, rs.Value, tt.value)
	}
}

// ── Literals and prefix ───────────────────────────────────────────────────────

func TestParser_IdentifierExpression(t *testing.T) {
	assertIdent(t, exprOf(t, firstStmt(t, "foobar;")), "foobar")
}

func TestParser_IntegerLiteral(t *testing.T) {
	assertIntLit(t, exprOf(t, firstStmt(t, "5;")), 5)
	assertIntLit(t, exprOf(t, firstStmt(t, "9223372036854775807")), 9223372036854775807)
}

func TestParser_BooleanLiterals(t *testing.T) {
	assertBoolLit(t, exprOf(t, firstStmt(t, "true;")), true)
	assertBoolLit(t, exprOf(t, firstStmt(t, "false")), false)
}

func TestParser_PrefixExpressions(t *testing.T) {
	tests := []struct {
		input string
		op    string
		value any
	}{
		{"!5;", "!", 5},
		{"-15;", "-", 15},
		{"!foobar;", "!", "foobar"},
		{"-foobar;", "-", "foobar"},
		{"!true;", "!", true},
		{"!false;", "!", false},
	}
	for _, tt := range tests {
		pe, ok := exprOf(t, firstStmt(t, tt.input)).(*ast.PrefixExpr)
		if !ok {
			t.Fatalf("%q: expected *ast.PrefixExpr", tt.input)
		}
		if pe.Operator != tt.op {
			t.Errorf("%q: operator got %q, want %q", tt.input, pe.Operator, tt.op)
		}
		assertLiteral(t, pe.Right, tt.value)
	}
}

// ── Infix and precedence ──────────────────────────────────────────────────────

func TestParser_InfixExpressions(t *testing.T) {
	tests := []struct {
		input string
		left  any
		op    string
		right any
	}{
		{"5 + 5;", 5, "+", 5},
		{"5 - 5;", 5, "-", 5},
		{"5 * 5;", 5, "*", 5},
		{"5 / 5;", 5, "/", 5},
		{"5 > 5;", 5, ">", 5},
		{"5 < 5;", 5, "<", 5},
		{"5 == 5;", 5, "==", 5},
		{"5 != 5;", 5, "!=", 5},
		{"alice * bob", "alice", "*", "bob"},
		{"true == true", true, "==", true},
		{"true != false", true, "!=", false},
	}
	for _, tt := range tests {
		assertInfix(t, exprOf(t, firstStmt(t, tt.input)), tt.left, tt.op, tt.right)
	}
}

// TestParser_ProductBindsTighterThanSum checks 1 + 2 * 3 structurally.
func TestParser_ProductBindsTighterThanSum(t *testing.T) {
	expr := exprOf(t, firstStmt(t, "1 + 2 * 3;"))
	inf, ok := expr.(*ast.InfixExpr)
	if !ok || inf.Operator != "+" {
		t.Fatalf("expected top-level '+', got %s", expr.String())
	}
	assertIntLit(t, inf.Left, 1)
	assertInfix(t, inf.Right, 2, "*", 3)
}

// TestParser_UnaryBindsTighterThanProduct checks -a * b structurally.
func TestParser_UnaryBindsTighterThanProduct(t *testing.T) {
	expr := exprOf(t, firstStmt(t, "-a * b"))
	inf, ok := expr.(*ast.InfixExpr)
	if !ok || inf.Operator != "*" {
		t.Fatalf("expected top-level '*', got %s", expr.String())
	}
	pe, ok := inf.Left.(*ast.PrefixExpr)
	if !ok || pe.Operator != "-" {
		t.Fatalf("expected left operand (-a), got %s", inf.Left.String())
	}
	assertIdent(t, pe.Right, "a")
	assertIdent(t, inf.Right, "b")
}

func TestParser_OperatorPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"-a * b", "((-a) * b)"},
		{"!-a", "(!(-a))"},
		{"a + b + c", "((a + b) + c)"},
		{"a + b - c", "((a + b) - c)"},
		{"a * b * c", "((a * b) * c)"},
		{"a * b / c", "((a * b) / c)"},
		{"a + b / c", "(a + (b / c))"},
		{"a + b * c + d / e - f", "(((a + (b * c)) + (d / e)) - f)"},
		{"3 + 4; -5 * 5", "(3 + 4)((-5) * 5)"},
		{"5 > 4 == 3 < 4", "((5 > 4) == (3 < 4))"},
		{"5 < 4 != 3 > 4", "((5 < 4) != (3 > 4))"},
		{"3 + 4 * 5 == 3 * 1 + 4 * 5", "((3 + (4 * 5)) == ((3 * 1) + (4 * 5)))"},
		{"true", "true"},
		{"3 > 5 == false", "((3 > 5) == false)"},
		{"1 + (2 + 3) + 4", "((1 + (2 + 3)) + 4)"},
		{"(5 + 5) * 2", "((5 + 5) * 2)"},
		{"2 / (5 + 5)", "(2 / (5 + 5))"},
		{"-(5 + 5)", "(-(5 + 5))"},
		{"!(true == true)", "(!(true == true))"},
		{"a + add(b * c) + d", "((a + add((b * c))) + d)"},
		{"add(a, b, 1, 2 * 3, 4 + 5, add(6, 7 * 8))", "add(a, b, 1, (2 * 3), (4 + 5), add(6, (7 * 8)))"},
		{"add(a + b + c * d / f + g)", "add((((a + b) + ((c * d) / f)) + g))"},
		{"f(1)(2)", "f(1)(2)"},
	}
	for _, tt := range tests {
		p := parser.New(lexer.New(tt.input))
		prog := p.ParseProgram()
		if errs := p.Errors(); len(errs) != 0 {
			t.Fatalf("%q: unexpected errors %v", tt.input, errs)
		}
		if got := prog.String(); got != tt.want {
			t.Errorf("%q: got %q, want %q", tt.input, got, tt.want)
		}
	}
}

// ── If expressions ────────────────────────────────────────────────────────────

func TestParser_IfExpression(t *testing.T) {
	ie, ok := exprOf(t, firstStmt(t, "if (x < y) { x }")).(*ast.IfExpr)
	if !ok {
		t.Fatal("expected *ast.IfExpr")
	}
	assertInfix(t, ie.Condition, "x", "<", "y")
	if len(ie.Consequence.Stmts) != 1 {
		t.Fatalf("consequence: got %d statements, want 1", len(ie.Consequence.Stmts))
	}
	assertIdent(t, exprOf(t, ie.Consequence.Stmts[0]), "x")
	if ie.Alternative != nil {
		t.Errorf("alternative: got %s, want nil", ie.Alternative.String())
	}
}

func TestParser_IfElseExpression(t *testing.T) {
	ie, ok := exprOf(t, firstStmt(t, "if (x < y) { x } else { y }")).(*ast.IfExpr)
	if !ok {
		t.Fatal("expected *ast.IfExpr")
	}
	assertInfix(t, ie.Condition, "x", "<", "y")
	if len(ie.Consequence.Stmts) != 1 {
		t.Fatalf("consequence: got %d statements, want 1", len(ie.Consequence.Stmts))
	}
	assertIdent(t, exprOf(t, ie.Consequence.Stmts[0]), "x")
	if ie.Alternative == nil {
		t.Fatal("alternative: got nil")
	}
	if len(ie.Alternative.Stmts) != 1 {
		t.Fatalf("alternative: got %d statements, want 1", len(ie.Alternative.Stmts))
	}
	assertIdent(t, exprOf(t, ie.Alternative.Stmts[0]), "y")
}

func TestParser_IfEmptyBlocks(t *testing.T) {
	ie := exprOf(t, firstStmt(t, "if (true) {} else {};")).(*ast.IfExpr)
	if len(ie.Consequence.Stmts) != 0 || ie.Alternative == nil || len(ie.Alternative.Stmts) != 0 {
		t.Fatalf("expected two empty blocks, got %s", ie.String())
	}
}

// ── Function literals ─────────────────────────────────────────────────────────

func TestParser_FnLiteral(t *testing.T) {
	fn, ok := exprOf(t, firstStmt(t, "fn(x, y) { x + y; }")).(*ast.FnLiteral)
	if !ok {
		t.Fatal("expected *ast.FnLiteral")
	}
	if len(fn.Params) != 2 {
		t.Fatalf("params: got %d, want 2", len(fn.Params))
	}
	assertIdent(t, fn.Params[0], "x")
	assertIdent(t, fn.Params[1], "y")
	if len(fn.Body.Stmts) != 1 {
		t.Fatalf("body: got %d statements, want 1", len(fn.Body.Stmts))
	}
	assertInfix(t, exprOf(t, fn.Body.Stmts[0]), "x", "+", "y")
}

func TestParser_FnParameters(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"fn() {};", []string{}},
		{"fn(x) {};", []string{"x"}},
		{"fn(x, y, z) {};", []string{"x", "y", "z"}},
	}
	for _, tt := range tests {
		fn := exprOf(t, firstStmt(t, tt.input)).(*ast.FnLiteral)
		if len(fn.Params) != len(tt.want) {
			t.Fatalf("%q: got %d params, want %d", tt.input, len(fn.Params), len(tt.want))
		}
		for i, name := range tt.want {
			assertIdent(t, fn.Params[i], name)
		}
	}
}

func TestParser_FnWithReturnAndLet(t *testing.T) {
	s := firstStmt(t, `let add = fn(a, b) { let s = a + b; return s; };`)
	ls := s.(*ast.LetStmt)
	fn, ok := ls.Value.(*ast.FnLiteral)
	if !ok {
		t.Fatalf("expected *ast.FnLiteral, got %T", ls.Value)
	}
	if len(fn.Body.Stmts) != 2 {
		t.Fatalf("body: got %d statements, want 2", len(fn.Body.Stmts))
	}
	if _, ok := fn.Body.Stmts[0].(*ast.LetStmt); !ok {
		t.Errorf("body[0]: got %T, want *ast.LetStmt", fn.Body.Stmts[0])
	}
	if _, ok := fn.Body.Stmts[1].(*ast.ReturnStmt); !ok {
		t.Errorf("body[1]: got %T, want *ast.ReturnStmt", fn.Body.Stmts[1])
	}
}

// ── Call expressions ──────────────────────────────────────────────────────────

func TestParser_CallExpression(t *testing.T) {
	call, ok := exprOf(t, firstStmt(t, "add(1, 2 * 3)")).(*ast.CallExpr)
	if !ok {
		t.Fatal("expected *ast.CallExpr")
	}
	assertIdent(t, call.Function, "add")
	if len(call.Args) != 2 {
		t.Fatalf("args: got %d, want 2", len(call.Args))
	}
	assertIntLit(t, call.Args[0], 1)
	assertInfix(t, call.Args[1], 2, "*", 3)
}

func TestParser_CallNoArgs(t *testing.T) {
	call := exprOf(t, firstStmt(t, "now();")).(*ast.CallExpr)
	if len(call.Args) != 0 {
		t.Fatalf("args: got %d, want 0", len(call.Args))
	}
}

func TestParser_CallFnLiteral(t *testing.T) {
	call := exprOf(t, firstStmt(t, "fn(x) { x }(5)")).(*ast.CallExpr)
	if _, ok := call.Function.(*ast.FnLiteral); !ok {
		t.Fatalf("function: got %T, want *ast.FnLiteral", call.Function)
	}
	assertIntLit(t, call.Args[0], 5)
}

// ── Programs ──────────────────────────────────────────────────────────────────

func TestParser_Program(t *testing.T) {
	input := `
let fib = fn(n) {
  if (n < 2) { return n; }
  fib(n - 1) + fib(n - 2)
};
let result = fib(10);
result
`
	prog := parse(t, input, 3)
	want := "let fib = fn(n) { if (n < 2) { return n; } (fib((n - 1)) + fib((n - 2))) };" +
		"let result = fib(10);" +
		"result"
	if got := prog.String(); got != want {
		t.Errorf("program:\n got %q\nwant %q", got, want)
	}
}

// ── Semicolons ────────────────────────────────────────────────────────────────

func TestParser_OptionalSemicolons(t *testing.T) {
	parse(t, "let a = 1 let b = 2 return a b", 4)
}

func TestParser_StrictSemicolons(t *testing.T) {
	p := parser.New(lexer.New("let a = 1; return a"), parser.WithStrictSemicolons())
	prog := p.ParseProgram()
	if len(prog.Statements) != 2 {
		t.Fatalf("expected both statements kept, got %d", len(prog.Statements))
	}
	diags := p.Diagnostics()
	if len(diags) != 1 {
		t.Fatalf("expected 1 error, got %v", p.Errors())
	}
	if diags[0].Kind != parser.MissingSemicolon {
		t.Errorf("kind: got %s", diags[0].Kind)
	}
	if diags[0].Msg != "expected next token to be ;, got EOF instead" {
		t.Errorf("msg: got %q", diags[0].Msg)
	}

	// Expression statements never need one.
	p = parser.New(lexer.New("a + b"), parser.WithStrictSemicolons())
	p.ParseProgram()
	if errs := p.Errors(); len(errs) != 0 {
		t.Errorf("expression statement in strict mode: unexpected errors %v", errs)
	}
}

// ── Errors ────────────────────────────────────────────────────────────────────

func TestParser_LetMissingAssign(t *testing.T) {
	_, errs := parseErrors(t, "let x 5;")
	if errs[0] != "expected next token to be =, got INT instead" {
		t.Errorf("error: got %q", errs[0])
	}
}

func TestParser_ErrorMessages(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"let = 10;", "expected next token to be IDENT, got = instead"},
		{"let 838383;", "expected next token to be IDENT, got INT instead"},
		{"let x = ;", "no prefix parse function for ; found"},
		{"(1 + 2", "expected next token to be ), got EOF instead"},
		{"if x { 1 }", "expected next token to be (, got IDENT instead"},
		{"if (x) 1", "expected next token to be {, got INT instead"},
		{"fn(x, 1) {}", "expected next token to be IDENT, got INT instead"},
		{"fn(x) { x", "expected next token to be }, got EOF instead"},
		{"add(1, 2", "expected next token to be ), got EOF instead"},
		{"@", "no prefix parse function for ILLEGAL found"},
		{"}", "no prefix parse function for } found"},
		{"9223372036854775808", "could not parse 9223372036854775808 as integer"},
	}
	for _, tt := range tests {
		_, errs := parseErrors(t, tt.input)
		if errs[0] != tt.want {
			t.Errorf("%q: first error got %q, want %q", tt.input, errs[0], tt.want)
		}
	}
}

func TestParser_DiagnosticPositions(t *testing.T) {
	p := parser.New(lexer.New("let a = 1;\nlet b 2;\nlet = 3;"))
	p.ParseProgram()
	diags := p.Diagnostics()
	if len(diags) != 2 {
		t.Fatalf("expected 2 errors, got %v", p.Errors())
	}
	if got := diags[0].Pos; got != (ast.Pos{Line: 2, Col: 7}) {
		t.Errorf("first error pos: got %s, want 2:7", got)
	}
	if diags[0].Kind != parser.UnexpectedToken {
		t.Errorf("first error kind: got %s", diags[0].Kind)
	}
	if got := diags[1].Error(); got != "3:5: expected next token to be IDENT, got = instead" {
		t.Errorf("second error: got %q", got)
	}
}

// TestParser_Recovery checks that a bad statement does not hide the good
// ones around it, and that every independent mistake is reported.
func TestParser_Recovery(t *testing.T) {
	input := `
let x 5;
let y = 10;
let = 3;
let z = y * 2;
`
	prog, errs := parseErrors(t, input)
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(errs), errs)
	}
	if got := prog.String(); got != "let y = 10;let z = (y * 2);" {
		t.Errorf("recovered program: got %q", got)
	}
}

func TestParser_RecoveryInsideBlock(t *testing.T) {
	input := `fn(a) { let = 1; let b = a; b }; after`
	prog, errs := parseErrors(t, input)
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
	if len(prog.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d (%s)", len(prog.Statements), prog.String())
	}
	fn := exprOf(t, prog.Statements[0]).(*ast.FnLiteral)
	if len(fn.Body.Stmts) != 2 {
		t.Errorf("body: got %d statements, want 2", len(fn.Body.Stmts))
	}
	assertIdent(t, exprOf(t, prog.Statements[1]), "after")
}

// TestParser_MalformedTerminates feeds inputs that stop mid-construct and
// checks that parsing returns with errors instead of hanging or panicking.
func TestParser_MalformedTerminates(t *testing.T) {
	inputs := []string{
		"let",
		"let x",
		"let x =",
		"return",
		"if",
		"if (",
		"if (x",
		"if (x)",
		"if (x) {",
		"if (x) { y } else",
		"if (x) { y } else {",
		"fn",
		"fn(",
		"fn(x,",
		"fn(x)",
		"f(",
		"f(1,",
		"-",
		"!",
		"1 +",
		"(((",
		")))",
		"}}}",
		"{",
		"let x = fn(a) { if (a) { return",
	}
	for _, input := range inputs {
		prog, _ := parseErrors(t, input)
		if prog == nil {
			t.Fatalf("%q: nil program", input)
		}
	}
}

// ── Properties ────────────────────────────────────────────────────────────────

func TestParser_Idempotent(t *testing.T) {
	input := `let add = fn(a, b) { a + b }; if (add(1, 2) > 2) { true } else { !false }; let x 5;`
	prog1, errs1 := parser.Parse(input)
	prog2, errs2 := parser.Parse(input)

	if !reflect.DeepEqual(prog1, prog2) {
		t.Errorf("trees differ:\n%s\n%s", prog1.String(), prog2.String())
	}
	if !reflect.DeepEqual(errs1, errs2) {
		t.Errorf("errors differ: %v vs %v", errs1, errs2)
	}
}

func TestParse_Convenience(t *testing.T) {
	prog, errs := parser.Parse("let x = 5;")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(prog.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Statements))
	}

	prog, errs = parser.Parse("")
	if prog == nil || len(prog.Statements) != 0 || len(errs) != 0 {
		t.Fatalf("empty input: got %v, %v", prog, errs)
	}
}
