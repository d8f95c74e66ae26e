package main

import (
	"bytes"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/HicaroD/sexpc/internal/ast"
	"github.com/HicaroD/sexpc/internal/compiler"
	"github.com/HicaroD/sexpc/internal/config"
	"github.com/HicaroD/sexpc/internal/diagnostics"
	"github.com/HicaroD/sexpc/internal/lexer"
	"github.com/HicaroD/sexpc/internal/logger"
)

// Compiled when no input is given.
const DEFAULT_PROGRAM = "(add 10 (subtract 10 6))"

var ERR_BUILD_FAILED = errors.New("build failed")

type source struct {
	loc *ast.Loc
	src string
}

type runner struct {
	stdin io.Reader
	cfg   *config.Config
}

var inputFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "expr",
		Aliases: []string{"e"},
		Usage:   "compile `PROGRAM` given inline instead of reading files",
	},
	&cli.StringFlag{
		Name:  "backend",
		Usage: "code generator to use: c or llvm",
	},
	&cli.BoolFlag{
		Name:  "strict",
		Usage: "fail on unrecognized characters instead of ignoring the rest of the input",
	},
	&cli.StringFlag{
		Name:  "whitespace",
		Usage: "characters skipped between tokens: space or any",
	},
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	r := &runner{stdin: stdin}

	return &cli.App{
		Name:      "sexpc",
		Usage:     "compile S-expression calls into C-style calls",
		UsageText: "sexpc <command> [options] [file.sexp ...]\n\nUse - as a file name to read from standard input.",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log every compilation phase",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Value: "text",
				Usage: "log output format: text or json",
			},
		},
		Before: r.setup,
		Commands: []*cli.Command{
			{
				Name:      "build",
				Usage:     "compile programs and print the generated code",
				ArgsUsage: "[file.sexp ...]",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "write the generated code to `FILE`",
					},
				}, inputFlags...),
				Action: r.build,
			},
			{
				Name:      "tokens",
				Usage:     "print the token stream of a program",
				ArgsUsage: "[file.sexp ...]",
				Flags:     inputFlags,
				Action:    r.tokens,
			},
			{
				Name:      "ast",
				Usage:     "dump the source and target syntax trees of a program",
				ArgsUsage: "[file.sexp ...]",
				Flags:     inputFlags,
				Action:    r.dump,
			},
			{
				Name:   "env",
				Usage:  "show the effective configuration",
				Action: r.env,
			},
		},
	}
}

func (r *runner) setup(cCtx *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	r.cfg = cfg

	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	logCfg.Format = cCtx.String("log-format")
	logCfg.Output = cCtx.App.ErrWriter
	if cCtx.Bool("verbose") {
		logCfg.Level = logger.LevelDebug
	}
	logger.Init(logCfg)
	return nil
}

// compiler applies the command's flags on top of the loaded configuration.
func (r *runner) compiler(cCtx *cli.Context) (*compiler.Compiler, error) {
	cfg := *r.cfg

	if name := cCtx.String("backend"); name != "" {
		backend, err := config.ParseBackend(name)
		if err != nil {
			return nil, err
		}
		cfg.Backend = backend
	}
	if cCtx.IsSet("strict") {
		cfg.Policy = lexer.TRUNCATE
		if cCtx.Bool("strict") {
			cfg.Policy = lexer.STRICT
		}
	}
	switch cCtx.String("whitespace") {
	case "":
	case "space":
		cfg.Whitespace = lexer.SPACE_ONLY
	case "any":
		cfg.Whitespace = lexer.ANY_WHITESPACE
	default:
		return nil, errors.Errorf("unknown whitespace %q, expected space or any", cCtx.String("whitespace"))
	}

	return compiler.NewFromConfig(&cfg), nil
}

func (r *runner) sources(cCtx *cli.Context) ([]source, error) {
	if cCtx.IsSet("expr") {
		return []source{{loc: ast.InlineLoc("<expr>"), src: cCtx.String("expr")}}, nil
	}

	if cCtx.NArg() == 0 {
		return []source{{loc: ast.InlineLoc("<default>"), src: DEFAULT_PROGRAM}}, nil
	}

	sources := make([]source, 0, cCtx.NArg())
	for _, path := range cCtx.Args().Slice() {
		if path == "-" {
			data, err := io.ReadAll(r.stdin)
			if err != nil {
				return nil, errors.Wrap(err, "reading standard input")
			}
			sources = append(sources, source{loc: ast.InlineLoc("<stdin>"), src: string(data)})
			continue
		}

		loc, src, err := compiler.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", path)
		}
		sources = append(sources, source{loc: loc, src: src})
	}
	return sources, nil
}

func (r *runner) build(cCtx *cli.Context) error {
	c, err := r.compiler(cCtx)
	if err != nil {
		return err
	}
	sources, err := r.sources(cCtx)
	if err != nil {
		return err
	}

	output := cCtx.String("output")
	if output != "" && len(sources) > 1 {
		return errors.New("-o can only be used with a single input")
	}

	collector := diagnostics.NewWithWriter(cCtx.App.ErrWriter)
	results := make([]string, len(sources))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, s := range sources {
		g.Go(func() error {
			out, err := c.Compile(s.loc, s.src)
			if err != nil {
				collector.Report(s.loc.String(), err)
				return nil
			}
			results[i] = out
			return nil
		})
	}
	_ = g.Wait()

	if collector.HasErrors() {
		logger.LogError("build", "build", collector.Err())
		return errors.Wrapf(ERR_BUILD_FAILED, "%d of %d inputs", len(collector.Diags), len(sources))
	}

	if output != "" {
		err := os.WriteFile(output, []byte(results[0]+"\n"), 0644)
		return errors.Wrapf(err, "writing %s", output)
	}

	for i, out := range results {
		if out == "" {
			logger.Warn("input produced no code", logrus.Fields{"source": sources[i].loc.String()})
			continue
		}
		_, err := io.WriteString(cCtx.App.Writer, out+"\n")
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *runner) tokens(cCtx *cli.Context) error {
	c, err := r.compiler(cCtx)
	if err != nil {
		return err
	}
	sources, err := r.sources(cCtx)
	if err != nil {
		return err
	}

	for _, s := range sources {
		tokens, err := c.Tokenize(s.loc, s.src)
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(cCtx.App.Writer)
		table.SetHeader([]string{"#", "Kind", "Lexeme", "Position"})
		for i, tok := range tokens {
			table.Append([]string{strconv.Itoa(i), tok.Kind.String(), tok.Lexeme, tok.Pos.String()})
		}
		table.Render()
	}
	return nil
}

func (r *runner) dump(cCtx *cli.Context) error {
	c, err := r.compiler(cCtx)
	if err != nil {
		return err
	}
	sources, err := r.sources(cCtx)
	if err != nil {
		return err
	}

	dumper := spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		DisableMethods:          true,
	}

	for _, s := range sources {
		sourceProgram, targetProgram, err := c.Frontend(s.loc, s.src)
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		buf.WriteString("# " + s.loc.String() + "\n")
		buf.WriteString("## source: " + strings.ReplaceAll(sourceProgram.String(), "\n", " ") + "\n")
		dumper.Fdump(&buf, sourceProgram)
		buf.WriteString("## target\n")
		dumper.Fdump(&buf, targetProgram)

		_, err = cCtx.App.Writer.Write(buf.Bytes())
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *runner) env(cCtx *cli.Context) error {
	r.cfg.ShowAll(cCtx.App.Writer)
	return nil
}
