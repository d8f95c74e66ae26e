// Package ast defines the syntax tree the parser builds from S-expressions.
package ast

import (
	"fmt"
	"strings"
)

type NodeKind int

const (
	KIND_PROGRAM NodeKind = iota
	KIND_CALL_EXPR
	KIND_NUMBER_LITERAL
)

func (kind NodeKind) String() string {
	switch kind {
	case KIND_PROGRAM:
		return "Program"
	case KIND_CALL_EXPR:
		return "CallExpression"
	case KIND_NUMBER_LITERAL:
		return "NumberLiteral"
	default:
		return fmt.Sprintf("Unknown Node Kind: %d", int(kind))
	}
}

// Node is implemented only by the types in this package.
type Node interface {
	Kind() NodeKind
	String() string
	sourceNode()
}

type Program struct {
	Body []Node
}

func (p *Program) Kind() NodeKind { return KIND_PROGRAM }
func (p *Program) sourceNode()    {}

func (p *Program) String() string {
	exprs := make([]string, 0, len(p.Body))
	for _, node := range p.Body {
		exprs = append(exprs, nodeString(node))
	}
	return strings.Join(exprs, "\n")
}

type CallExpression struct {
	Name   string
	Params []Node
}

func (c *CallExpression) Kind() NodeKind { return KIND_CALL_EXPR }
func (c *CallExpression) sourceNode()    {}

func (c *CallExpression) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(c.Name)
	for _, param := range c.Params {
		sb.WriteByte(' ')
		sb.WriteString(nodeString(param))
	}
	sb.WriteByte(')')
	return sb.String()
}

type NumberLiteral struct {
	Value string
}

func (n *NumberLiteral) Kind() NodeKind { return KIND_NUMBER_LITERAL }
func (n *NumberLiteral) sourceNode()    {}
func (n *NumberLiteral) String() string { return n.Value }

func nodeString(node Node) string {
	if node == nil {
		return "<nil>"
	}
	return node.String()
}
