package ast

// Inspect traverses the tree rooted at node in depth-first pre-order, calling
// f for each node. If f returns false, the children of that node are skipped.
// Children are visited in source order. Nil nodes are never passed to f.
func Inspect(node Node, f func(Node) bool) {
	if isNil(node) || !f(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Statements {
			Inspect(s, f)
		}
	case *LetStmt:
		Inspect(n.Name, f)
		Inspect(n.Value, f)
	case *ReturnStmt:
		Inspect(n.Value, f)
	case *ExprStmt:
		Inspect(n.Expr, f)
	case *BlockStmt:
		for _, s := range n.Stmts {
			Inspect(s, f)
		}
	case *PrefixExpr:
		Inspect(n.Right, f)
	case *InfixExpr:
		Inspect(n.Left, f)
		Inspect(n.Right, f)
	case *IfExpr:
		Inspect(n.Condition, f)
		Inspect(n.Consequence, f)
		Inspect(n.Alternative, f)
	case *FnLiteral:
		for _, p := range n.Params {
			Inspect(p, f)
		}
		Inspect(n.Body, f)
	case *CallExpr:
		Inspect(n.Function, f)
		for _, a := range n.Args {
			Inspect(a, f)
		}
	}
}

// isNil reports whether node is nil, including a typed nil pointer stored in
// the interface (an absent else branch is a nil *BlockStmt).
func isNil(node Node) bool {
	switch n := node.(type) {
	case nil:
		return true
	case *Program:
		return n == nil
	case *BlockStmt:
		return n == nil
	case *Identifier:
		return n == nil
	}
	return false
}
