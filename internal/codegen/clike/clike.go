// Package clike renders the target tree as C-style function call syntax.
package clike

import (
	"fmt"
	"strings"

	"github.com/HicaroD/sexpc/internal/diagnostics"
	"github.com/HicaroD/sexpc/internal/target"
)

// Generate renders node and everything below it. Number literals are copied
// verbatim, they are never parsed.
func Generate(node target.Node) (string, error) {
	switch n := node.(type) {
	case *target.Program:
		if n == nil {
			return "", nilNode(node)
		}
		return generateProgram(n)
	case *target.ExpressionStatement:
		if n == nil {
			return "", nilNode(node)
		}
		expr, err := generateCall(n.Expression)
		if err != nil {
			return "", err
		}
		return expr + ";", nil
	case *target.CallExpression:
		return generateCall(n)
	case *target.Identifier:
		if n == nil {
			return "", nilNode(node)
		}
		return n.Name, nil
	case *target.NumberLiteral:
		if n == nil {
			return "", nilNode(node)
		}
		return n.Value, nil
	default:
		return "", diagnostics.NewGenerateError("unrecognized node %s", describe(node))
	}
}

func generateProgram(program *target.Program) (string, error) {
	stmts := make([]string, 0, len(program.Body))
	for _, node := range program.Body {
		stmt, err := Generate(node)
		if err != nil {
			return "", err
		}
		stmts = append(stmts, stmt)
	}
	return strings.Join(stmts, "\n"), nil
}

func generateCall(call *target.CallExpression) (string, error) {
	if call == nil {
		return "", nilNode(call)
	}

	callee, err := Generate(call.Callee)
	if err != nil {
		return "", err
	}

	args := make([]string, 0, len(call.Arguments))
	for _, arg := range call.Arguments {
		rendered, err := Generate(arg)
		if err != nil {
			return "", err
		}
		args = append(args, rendered)
	}

	return fmt.Sprintf("%s(%s)", callee, strings.Join(args, ", ")), nil
}

func nilNode(node target.Node) error {
	return diagnostics.NewGenerateError("nil %s", describe(node))
}

func describe(node target.Node) string {
	if node == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T", node)
}
