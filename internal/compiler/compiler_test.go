package compiler

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/HicaroD/sexpc/internal/ast"
	"github.com/HicaroD/sexpc/internal/config"
	"github.com/HicaroD/sexpc/internal/diagnostics"
	"github.com/HicaroD/sexpc/internal/lexer"
	tu "github.com/HicaroD/sexpc/internal/testutil"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{tu.NestedCallInput, tu.NestedCallOutput},
		{"(add 10 (subtract 10 6))", "add(10, subtract(10, 6));"},
		{"(add 1 2)(subtract 3 1)", "add(1, 2);\nsubtract(3, 1);"},
		{"(add 1 2) (subtract 3 1)", "add(1, 2);\nsubtract(3, 1);"},
		{"(now)", "now();"},
		{"(add  2 3)", "add(2, 3);"},
		{"", ""},
		{"(add 2 3)\n(this is dropped", "add(2, 3);"},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("TestCompile(%q)", test.input), func(t *testing.T) {
			out, err := Compile(test.input)
			require.NoError(t, err)
			require.Equal(t, test.expected, out)
		})
	}
}

func TestCompileIsDeterministic(t *testing.T) {
	input := "(mul (add 1 2) (subtract 9 (div 8 2)))(now)"
	first, err := Compile(input)
	require.NoError(t, err)
	second, err := Compile(input)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestCompileErrorsPropagate(t *testing.T) {
	tests := []string{"(add 2", ")", "(2 3)", "(add (sub 1)"}

	for _, input := range tests {
		t.Run(fmt.Sprintf("TestCompileError(%q)", input), func(t *testing.T) {
			out, err := Compile(input)
			require.Empty(t, out)

			var parseErr *diagnostics.ParseError
			require.True(t, errors.As(err, &parseErr), "expected *diagnostics.ParseError, got %T", err)
			require.True(t, strings.HasPrefix(err.Error(), "parse error"))
		})
	}
}

func TestCompileStrictPolicy(t *testing.T) {
	c := New(Options{Policy: lexer.STRICT})

	_, err := c.Compile(ast.InlineLoc("strict.sexp"), "(add 2 3)\n")
	var lexErr *diagnostics.LexError
	require.True(t, errors.As(err, &lexErr), "expected *diagnostics.LexError, got %T", err)
	require.Equal(t, "strict.sexp", lexErr.Pos.Filename)
	require.Equal(t, 1, lexErr.Pos.Line)
	require.Equal(t, 10, lexErr.Pos.Column)
	require.Equal(t, byte('\n'), lexErr.Char)
}

func TestCompileAnyWhitespace(t *testing.T) {
	c := New(Options{Whitespace: lexer.ANY_WHITESPACE, Policy: lexer.STRICT})

	out, err := c.Compile(nil, "(add 1\n\t(subtract 3 1))\n(now)\n")
	require.NoError(t, err)
	require.Equal(t, "add(1, subtract(3, 1));\nnow();", out)
}

func TestCompileLLVMBackend(t *testing.T) {
	tests := []struct {
		loc    *ast.Loc
		module string
	}{
		{nil, "; ModuleID = 'main'"},
		{ast.InlineLoc("nested.sexp"), "; ModuleID = 'nested'"},
	}

	c := New(Options{Backend: config.BACKEND_LLVM})
	for _, test := range tests {
		t.Run(fmt.Sprintf("TestCompileLLVMBackend(%q)", test.module), func(t *testing.T) {
			out, err := c.Compile(test.loc, tu.NestedCallInput)
			require.NoError(t, err)
			require.Contains(t, out, test.module)
			require.Contains(t, out, "declare i64 @add(i64, i64)")
			require.Contains(t, out, "define i32 @main()")
		})
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.sexp")
	require.NoError(t, os.WriteFile(path, []byte(tu.NestedCallInput), 0644))

	loc, src, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "prog.sexp", loc.Name)
	require.Equal(t, path, loc.String())
	require.Equal(t, tu.NestedCallInput, src)

	_, _, err = ReadFile(filepath.Dir(path))
	require.Error(t, err)
	_, _, err = ReadFile(filepath.Join(t.TempDir(), "missing.sexp"))
	require.Error(t, err)
}

func TestNewFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Policy = lexer.STRICT
	cfg.Backend = config.BACKEND_LLVM

	opts := NewFromConfig(cfg).Options()
	assert.Equal(t, lexer.STRICT, opts.Policy)
	assert.Equal(t, config.BACKEND_LLVM, opts.Backend)
	assert.Equal(t, lexer.SPACE_ONLY, opts.Whitespace)
}

func TestFrontendReturnsBothTrees(t *testing.T) {
	source, program, err := New(Options{}).Frontend(nil, tu.NestedCallInput)
	require.NoError(t, err)
	require.Equal(t, tu.NestedCallInput, source.String())
	require.Len(t, program.Body, 1)
}

func TestCompileConcurrently(t *testing.T) {
	c := New(Options{})

	var g errgroup.Group
	outputs := make([]string, 32)
	for i := range outputs {
		g.Go(func() error {
			input := fmt.Sprintf("(add %d (subtract %d 1))", i, i)
			out, err := c.Compile(nil, input)
			outputs[i] = out
			return err
		})
	}
	require.NoError(t, g.Wait())

	for i, out := range outputs {
		require.Equal(t, fmt.Sprintf("add(%d, subtract(%d, 1));", i, i), out)
	}
}
