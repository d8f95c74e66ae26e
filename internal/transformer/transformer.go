// Package transformer rewrites the S-expression syntax tree into the C-style
// target tree.
//
// The traversal is depth-first and pre-order. Each visited node appends its
// translation to the destination slice it was handed, then hands its own
// child slot (a call's Arguments) down to its children. The source tree is
// never modified.
package transformer

import (
	"fmt"

	"github.com/HicaroD/sexpc/internal/ast"
	"github.com/HicaroD/sexpc/internal/diagnostics"
	"github.com/HicaroD/sexpc/internal/target"
)

func Transform(program *ast.Program) (*target.Program, error) {
	if program == nil {
		return nil, &diagnostics.TransformError{Node: describe(nil)}
	}

	out := &target.Program{Body: make([]target.Node, 0, len(program.Body))}
	err := traverseArray(program.Body, program, &out.Body)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func traverseArray(nodes []ast.Node, parent ast.Node, dst *[]target.Node) error {
	for _, node := range nodes {
		err := traverseNode(node, parent, dst)
		if err != nil {
			return err
		}
	}
	return nil
}

func traverseNode(node ast.Node, parent ast.Node, dst *[]target.Node) error {
	switch n := node.(type) {
	case *ast.NumberLiteral:
		if n == nil {
			return &diagnostics.TransformError{Node: describe(node)}
		}
		*dst = append(*dst, &target.NumberLiteral{Value: n.Value})
		return nil
	case *ast.CallExpression:
		if n == nil {
			return &diagnostics.TransformError{Node: describe(node)}
		}
		call := &target.CallExpression{
			Callee:    &target.Identifier{Name: n.Name},
			Arguments: make([]target.Node, 0, len(n.Params)),
		}
		if _, nested := parent.(*ast.CallExpression); nested {
			*dst = append(*dst, call)
		} else {
			*dst = append(*dst, &target.ExpressionStatement{Expression: call})
		}
		return traverseArray(n.Params, n, &call.Arguments)
	default:
		// Includes a Program anywhere but the root.
		return &diagnostics.TransformError{Node: describe(node)}
	}
}

func describe(node ast.Node) string {
	if node == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T", node)
}
