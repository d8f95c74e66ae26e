package parser

import (
	"github.com/HicaroD/sexpc/internal/ast"
	"github.com/HicaroD/sexpc/internal/diagnostics"
	"github.com/HicaroD/sexpc/internal/lexer/token"
)

// Grammar:
//
//	Program := Expr*
//	Expr    := Number | Call
//	Call    := "(" Name Expr* ")"
type Parser struct {
	cursor *cursor
}

func New(tokens []*token.Token) *Parser {
	parser := new(Parser)
	parser.cursor = newCursor(tokens)
	return parser
}

func Parse(tokens []*token.Token) (*ast.Program, error) {
	return New(tokens).Parse()
}

func (p *Parser) Parse() (*ast.Program, error) {
	program := &ast.Program{Body: make([]ast.Node, 0)}

	for !p.cursor.isOutOfBound() {
		node, err := p.walk()
		if err != nil {
			return nil, err
		}
		program.Body = append(program.Body, node)
	}

	return program, nil
}

func (p *Parser) walk() (ast.Node, error) {
	tok, ok := p.cursor.peek()
	if !ok {
		return nil, diagnostics.NewParseError(token.Pos{}, "unexpected end of input, expected an expression")
	}

	switch {
	case tok.Kind == token.NUMBER:
		p.cursor.skip()
		return &ast.NumberLiteral{Value: tok.Lexeme}, nil
	case tok.IsOpenParen():
		return p.parseCall()
	}

	return nil, diagnostics.NewParseError(tok.Pos, "unexpected token %s", tok)
}

func (p *Parser) parseCall() (*ast.CallExpression, error) {
	p.cursor.skip() // (

	name, err := p.expect(token.NAME)
	if err != nil {
		return nil, err
	}

	call := &ast.CallExpression{Name: name.Lexeme, Params: make([]ast.Node, 0)}
	for {
		tok, ok := p.cursor.peek()
		if !ok {
			return nil, diagnostics.NewParseError(token.Pos{}, "unexpected end of input, call to %q is missing ')'", call.Name)
		}
		if tok.IsCloseParen() {
			p.cursor.skip() // )
			return call, nil
		}

		param, err := p.walk()
		if err != nil {
			return nil, err
		}
		call.Params = append(call.Params, param)
	}
}

func (p *Parser) expect(expectedKind token.Kind) (*token.Token, error) {
	tok, ok := p.cursor.next()
	if !ok {
		return nil, diagnostics.NewParseError(token.Pos{}, "unexpected end of input, expected %s", expectedKind)
	}
	if tok.Kind != expectedKind {
		return nil, diagnostics.NewParseError(tok.Pos, "expected %s after '(', but got %s", expectedKind, tok)
	}
	return tok, nil
}
