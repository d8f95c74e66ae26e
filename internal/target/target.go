// Package target defines the C-style syntax tree the transformer produces and
// the generators consume.
package target

import "fmt"

type NodeKind int

const (
	KIND_PROGRAM NodeKind = iota
	KIND_EXPR_STMT
	KIND_CALL_EXPR
	KIND_IDENTIFIER
	KIND_NUMBER_LITERAL
)

func (kind NodeKind) String() string {
	switch kind {
	case KIND_PROGRAM:
		return "Program"
	case KIND_EXPR_STMT:
		return "ExpressionStatement"
	case KIND_CALL_EXPR:
		return "CallExpression"
	case KIND_IDENTIFIER:
		return "Identifier"
	case KIND_NUMBER_LITERAL:
		return "NumberLiteral"
	default:
		return fmt.Sprintf("Unknown Node Kind: %d", int(kind))
	}
}

type Node interface {
	Kind() NodeKind
	targetNode()
}

type Program struct {
	Body []Node
}

func (p *Program) Kind() NodeKind { return KIND_PROGRAM }
func (p *Program) targetNode()    {}

// ExpressionStatement wraps a call whose source parent was the program.
type ExpressionStatement struct {
	Expression *CallExpression
}

func (e *ExpressionStatement) Kind() NodeKind { return KIND_EXPR_STMT }
func (e *ExpressionStatement) targetNode()    {}

type CallExpression struct {
	Callee    *Identifier
	Arguments []Node
}

func (c *CallExpression) Kind() NodeKind { return KIND_CALL_EXPR }
func (c *CallExpression) targetNode()    {}

type Identifier struct {
	Name string
}

func (i *Identifier) Kind() NodeKind { return KIND_IDENTIFIER }
func (i *Identifier) targetNode()    {}

type NumberLiteral struct {
	Value string
}

func (n *NumberLiteral) Kind() NodeKind { return KIND_NUMBER_LITERAL }
func (n *NumberLiteral) targetNode()    {}

func NewCall(name string, args ...Node) *CallExpression {
	return &CallExpression{
		Callee:    &Identifier{Name: name},
		Arguments: args,
	}
}
