package ast

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// Dump converts the tree rooted at node into plain maps and slices so it can
// be handed to any encoder. Every node becomes a map with a "node" key naming
// its type and a "pos" key holding "line:col"; children appear under
// field-named keys. A nil node dumps as nil.
func Dump(node Node) any {
	if isNil(node) {
		return nil
	}

	switch n := node.(type) {
	case *Program:
		return map[string]any{
			"node":       "Program",
			"statements": dumpStmts(n.Statements),
		}

	case *LetStmt:
		return dumpNode(n, "LetStmt", map[string]any{
			"name":  n.Name.Name,
			"value": Dump(n.Value),
		})

	case *ReturnStmt:
		return dumpNode(n, "ReturnStmt", map[string]any{
			"value": Dump(n.Value),
		})

	case *ExprStmt:
		return dumpNode(n, "ExprStmt", map[string]any{
			"expr": Dump(n.Expr),
		})

	case *BlockStmt:
		return dumpNode(n, "BlockStmt", map[string]any{
			"statements": dumpStmts(n.Stmts),
		})

	case *Identifier:
		return dumpNode(n, "Identifier", map[string]any{"name": n.Name})

	case *IntLiteral:
		return dumpNode(n, "IntLiteral", map[string]any{"value": n.Value})

	case *BoolLiteral:
		return dumpNode(n, "BoolLiteral", map[string]any{"value": n.Value})

	case *PrefixExpr:
		return dumpNode(n, "PrefixExpr", map[string]any{
			"operator": n.Operator,
			"right":    Dump(n.Right),
		})

	case *InfixExpr:
		return dumpNode(n, "InfixExpr", map[string]any{
			"operator": n.Operator,
			"left":     Dump(n.Left),
			"right":    Dump(n.Right),
		})

	case *IfExpr:
		m := map[string]any{
			"condition":   Dump(n.Condition),
			"consequence": Dump(n.Consequence),
		}
		if n.Alternative != nil {
			m["alternative"] = Dump(n.Alternative)
		}
		return dumpNode(n, "IfExpr", m)

	case *FnLiteral:
		params := make([]any, len(n.Params))
		for i, p := range n.Params {
			params[i] = p.Name
		}
		return dumpNode(n, "FnLiteral", map[string]any{
			"params": params,
			"body":   Dump(n.Body),
		})

	case *CallExpr:
		args := make([]any, len(n.Args))
		for i, a := range n.Args {
			args[i] = Dump(a)
		}
		return dumpNode(n, "CallExpr", map[string]any{
			"function":  Dump(n.Function),
			"arguments": args,
		})
	}
	return nil
}

func dumpNode(n Node, kind string, fields map[string]any) map[string]any {
	fields["node"] = kind
	fields["pos"] = n.Pos().String()
	return fields
}

func dumpStmts(stmts []Statement) []any {
	out := make([]any, len(stmts))
	for i, s := range stmts {
		out[i] = Dump(s)
	}
	return out
}

// FprintYAML writes a YAML representation of the tree to w.
func FprintYAML(w io.Writer, node Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Dump(node)); err != nil {
		return err
	}
	return enc.Close()
}

// FprintJSON writes an indented JSON representation of the tree to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Dump(node))
}
