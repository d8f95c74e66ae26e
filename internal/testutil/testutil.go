package testutil

import (
	"github.com/HicaroD/sexpc/internal/ast"
	"github.com/HicaroD/sexpc/internal/lexer/token"
	"github.com/HicaroD/sexpc/internal/target"
)

const DefaultFilename = "test.sexp"

const (
	NestedCallInput  = "(add 2 (subtract 4 2))"
	NestedCallOutput = "add(2, subtract(4, 2));"
)

func NewToken(kind token.Kind, lexeme string) *token.Token {
	return token.New(lexeme, kind, token.Pos{})
}

func Paren(lexeme string) *token.Token  { return NewToken(token.PAREN, lexeme) }
func Number(lexeme string) *token.Token { return NewToken(token.NUMBER, lexeme) }
func Name(lexeme string) *token.Token   { return NewToken(token.NAME, lexeme) }

func NewProgram(body ...ast.Node) *ast.Program {
	return &ast.Program{Body: body}
}

func NewCall(name string, params ...ast.Node) *ast.CallExpression {
	return &ast.CallExpression{Name: name, Params: params}
}

func NewNumber(value string) *ast.NumberLiteral {
	return &ast.NumberLiteral{Value: value}
}

func NewTargetProgram(body ...target.Node) *target.Program {
	return &target.Program{Body: body}
}

func NewStmt(call *target.CallExpression) *target.ExpressionStatement {
	return &target.ExpressionStatement{Expression: call}
}

func NewTargetCall(name string, args ...target.Node) *target.CallExpression {
	return target.NewCall(name, args...)
}

func NewTargetNumber(value string) *target.NumberLiteral {
	return &target.NumberLiteral{Value: value}
}

// NestedCallTokens is the token stream of NestedCallInput.
func NestedCallTokens() []*token.Token {
	return []*token.Token{
		Paren("("),
		Name("add"),
		Number("2"),
		Paren("("),
		Name("subtract"),
		Number("4"),
		Number("2"),
		Paren(")"),
		Paren(")"),
	}
}

func NestedCallSource() *ast.Program {
	return NewProgram(
		NewCall("add",
			NewNumber("2"),
			NewCall("subtract", NewNumber("4"), NewNumber("2")),
		),
	)
}

func NestedCallTarget() *target.Program {
	return NewTargetProgram(
		NewStmt(NewTargetCall("add",
			NewTargetNumber("2"),
			NewTargetCall("subtract", NewTargetNumber("4"), NewTargetNumber("2")),
		)),
	)
}
