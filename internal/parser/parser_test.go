package parser

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/HicaroD/sexpc/internal/ast"
	"github.com/HicaroD/sexpc/internal/diagnostics"
	"github.com/HicaroD/sexpc/internal/lexer"
	"github.com/HicaroD/sexpc/internal/lexer/token"
	"github.com/HicaroD/sexpc/internal/testutil"
)

func TestParseNestedCall(t *testing.T) {
	program, err := Parse(testutil.NestedCallTokens())
	require.NoError(t, err)

	if diff := cmp.Diff(testutil.NestedCallSource(), program, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("unexpected AST (-want +got):\n%s", diff)
	}
}

func TestParseExpressions(t *testing.T) {
	tests := []struct {
		input string
		check func(t *testing.T, program *ast.Program)
	}{
		{
			input: "",
			check: func(t *testing.T, program *ast.Program) {
				if len(program.Body) != 0 {
					t.Errorf("expected empty body, got %d nodes", len(program.Body))
				}
			},
		},
		{
			input: "42",
			check: func(t *testing.T, program *ast.Program) {
				lit, ok := program.Body[0].(*ast.NumberLiteral)
				if !ok {
					t.Fatalf("expected *ast.NumberLiteral, got %T", program.Body[0])
				}
				if lit.Value != "42" {
					t.Errorf("expected value '42', got %s", lit.Value)
				}
			},
		},
		{
			input: "(now)",
			check: func(t *testing.T, program *ast.Program) {
				call := program.Body[0].(*ast.CallExpression)
				if call.Name != "now" {
					t.Errorf("expected name 'now', got %s", call.Name)
				}
				if len(call.Params) != 0 {
					t.Errorf("expected no params, got %v", call.Params)
				}
			},
		},
		{
			input: "(add 1 2)(subtract 3 1)",
			check: func(t *testing.T, program *ast.Program) {
				if len(program.Body) != 2 {
					t.Fatalf("expected 2 top-level nodes, got %d", len(program.Body))
				}
				if program.Body[0].(*ast.CallExpression).Name != "add" {
					t.Errorf("expected first call to be 'add'")
				}
				if program.Body[1].(*ast.CallExpression).Name != "subtract" {
					t.Errorf("expected second call to be 'subtract'")
				}
			},
		},
		{
			input: "(a (b (c 1) 2) (d))",
			check: func(t *testing.T, program *ast.Program) {
				call := program.Body[0].(*ast.CallExpression)
				if len(call.Params) != 2 {
					t.Fatalf("expected 2 params, got %d", len(call.Params))
				}
				b := call.Params[0].(*ast.CallExpression)
				if b.Name != "b" || len(b.Params) != 2 {
					t.Errorf("unexpected call %s", b)
				}
				if program.String() != "(a (b (c 1) 2) (d))" {
					t.Errorf("expected program to print back as its input, got %s", program)
				}
			},
		},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("TestParse(%q)", test.input), func(t *testing.T) {
			program, err := Parse(lexer.Tokenize(test.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			test.check(t, program)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		pos   token.Pos
	}{
		// truncated
		{input: "(add 2", pos: token.Pos{}},
		{input: "(add 2 (subtract 4 2)", pos: token.Pos{}},
		{input: "(", pos: token.Pos{}},
		// name missing after '('
		{input: "(2 3)", pos: token.Pos{Line: 1, Column: 2}},
		{input: "(()", pos: token.Pos{Line: 1, Column: 2}},
		// expression starting on something other than a number or '('
		{input: ")", pos: token.Pos{Line: 1, Column: 1}},
		{input: "add", pos: token.Pos{Line: 1, Column: 1}},
		{input: "(add x)", pos: token.Pos{Line: 1, Column: 6}},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("TestParseError(%q)", test.input), func(t *testing.T) {
			program, err := Parse(lexer.Tokenize(test.input))
			require.Nil(t, program)

			var parseErr *diagnostics.ParseError
			require.True(t, errors.As(err, &parseErr), "expected *diagnostics.ParseError, got %T", err)
			require.Equal(t, test.pos, parseErr.Pos)
			require.Equal(t, diagnostics.STAGE_PARSE, parseErr.Stage())
			require.Contains(t, parseErr.Error(), "parse error")
		})
	}
}
