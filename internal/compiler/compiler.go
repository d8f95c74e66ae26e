// Package compiler wires the lexer, parser, transformer and a code generator
// into a single source-to-source pipeline.
//
// A Compiler holds only its options, so one value may be shared by any number
// of goroutines.
package compiler

import (
	"os"
	"time"

	"github.com/HicaroD/sexpc/internal/ast"
	"github.com/HicaroD/sexpc/internal/codegen/clike"
	"github.com/HicaroD/sexpc/internal/codegen/llvm"
	"github.com/HicaroD/sexpc/internal/config"
	"github.com/HicaroD/sexpc/internal/lexer"
	"github.com/HicaroD/sexpc/internal/lexer/token"
	"github.com/HicaroD/sexpc/internal/logger"
	"github.com/HicaroD/sexpc/internal/parser"
	"github.com/HicaroD/sexpc/internal/target"
	"github.com/HicaroD/sexpc/internal/transformer"
)

type Options struct {
	Backend    config.Backend
	Policy     lexer.Policy
	Whitespace lexer.Whitespace
}

type Compiler struct {
	opts Options
}

func New(opts Options) *Compiler {
	return &Compiler{opts: opts}
}

func NewFromConfig(cfg *config.Config) *Compiler {
	return New(Options{
		Backend:    cfg.Backend,
		Policy:     cfg.Policy,
		Whitespace: cfg.Whitespace,
	})
}

// Compile translates src with the default options: C-style output, space-only
// whitespace and silent truncation on unrecognized characters.
func Compile(src string) (string, error) {
	return New(Options{}).Compile(ast.InlineLoc(""), src)
}

func (c *Compiler) Options() Options { return c.opts }

// ReadFile loads a program from disk along with the location naming it.
func ReadFile(path string) (*ast.Loc, string, error) {
	loc, err := ast.LocFromPath(path)
	if err != nil {
		return nil, "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	return loc, string(data), nil
}

// Compile runs every stage in order. The first failing stage aborts the
// pipeline and its error is returned unchanged.
func (c *Compiler) Compile(loc *ast.Loc, src string) (string, error) {
	loc = orInline(loc)
	start := time.Now()
	source := loc.String()

	_, program, err := c.Frontend(loc, src)
	if err != nil {
		logger.LogCompilerComplete(source, false, time.Since(start).String())
		return "", err
	}

	out, err := c.Generate(loc, program)
	if err != nil {
		logger.LogError(source, "generate", err)
		logger.LogCompilerComplete(source, false, time.Since(start).String())
		return "", err
	}

	logger.LogCompilerComplete(source, true, time.Since(start).String())
	return out, nil
}

func (c *Compiler) Tokenize(loc *ast.Loc, src string) ([]*token.Token, error) {
	loc = orInline(loc)
	logger.LogPhase(loc.String(), "lex")

	lex := lexer.New(loc.Name, []byte(src))
	lex.Policy = c.opts.Policy
	lex.Whitespace = c.opts.Whitespace

	tokens, err := lex.Tokenize()
	if err != nil {
		logger.LogError(loc.String(), "lex", err)
		return nil, err
	}
	logger.LogLexing(loc.String(), len(tokens))
	return tokens, nil
}

// Frontend runs the stages shared by every back end and returns both trees.
func (c *Compiler) Frontend(loc *ast.Loc, src string) (*ast.Program, *target.Program, error) {
	loc = orInline(loc)
	source := loc.String()

	tokens, err := c.Tokenize(loc, src)
	if err != nil {
		return nil, nil, err
	}

	logger.LogPhase(source, "parse")
	sourceProgram, err := parser.Parse(tokens)
	if err != nil {
		logger.LogError(source, "parse", err)
		return nil, nil, err
	}
	logger.LogParsing(source, len(sourceProgram.Body))

	logger.LogPhase(source, "transform")
	targetProgram, err := transformer.Transform(sourceProgram)
	if err != nil {
		logger.LogError(source, "transform", err)
		return nil, nil, err
	}
	logger.LogTransform(source, len(targetProgram.Body))

	return sourceProgram, targetProgram, nil
}

func (c *Compiler) Generate(loc *ast.Loc, program *target.Program) (string, error) {
	loc = orInline(loc)
	logger.LogPhase(loc.String(), "generate")

	var out string
	var err error
	switch c.opts.Backend {
	case config.BACKEND_LLVM:
		moduleName := loc.Stem()
		if moduleName == "" {
			moduleName = "main"
		}
		out, err = llvm.Generate(moduleName, program)
	default:
		out, err = clike.Generate(program)
	}
	if err != nil {
		return "", err
	}

	logger.LogCodeGen(loc.String(), c.opts.Backend.String(), len(out))
	return out, nil
}

func orInline(loc *ast.Loc) *ast.Loc {
	if loc == nil {
		return ast.InlineLoc("")
	}
	return loc
}
