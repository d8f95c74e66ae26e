package integration

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/HicaroD/sexpc/internal/ast"
	"github.com/HicaroD/sexpc/internal/compiler"
	"github.com/HicaroD/sexpc/internal/diagnostics"
)

func compileFile(t *testing.T, path string) (string, error) {
	t.Helper()
	loc, err := ast.LocFromPath(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return compiler.New(compiler.Options{}).Compile(loc, string(src))
}

func TestCompileGoldenFiles(t *testing.T) {
	inputs, err := filepath.Glob("testdata/*.sexp")
	if err != nil {
		t.Fatal(err)
	}
	if len(inputs) == 0 {
		t.Fatal("no test programs found")
	}

	for _, input := range inputs {
		t.Run(filepath.Base(input), func(t *testing.T) {
			expected, err := os.ReadFile(strings.TrimSuffix(input, ".sexp") + ".c")
			if err != nil {
				t.Fatalf("missing golden file: %v", err)
			}

			output, err := compileFile(t, input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if output+"\n" != string(expected) {
				t.Errorf("expected %q, got %q", expected, output+"\n")
			}
		})
	}
}

func TestCompileBadSyntax(t *testing.T) {
	inputs, err := filepath.Glob("testdata/errors/*.sexp")
	if err != nil {
		t.Fatal(err)
	}

	for _, input := range inputs {
		t.Run(filepath.Base(input), func(t *testing.T) {
			output, err := compileFile(t, input)
			if err == nil {
				t.Fatalf("expected errors, got output %q", output)
			}
			var parseErr *diagnostics.ParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("expected a parse error, got %T: %v", err, err)
			}
			if output != "" {
				t.Errorf("expected no output, got %q", output)
			}
		})
	}
}
