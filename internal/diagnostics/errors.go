package diagnostics

import (
	"fmt"

	"github.com/HicaroD/sexpc/internal/lexer/token"
)

type Stage int

const (
	STAGE_LEX Stage = iota
	STAGE_PARSE
	STAGE_TRANSFORM
	STAGE_GENERATE
)

func (stage Stage) String() string {
	switch stage {
	case STAGE_LEX:
		return "lex"
	case STAGE_PARSE:
		return "parse"
	case STAGE_TRANSFORM:
		return "transform"
	case STAGE_GENERATE:
		return "generate"
	}
	return "unknown"
}

// StageError is implemented by every error a pipeline stage can fail with.
type StageError interface {
	error
	Stage() Stage
}

// LexError is only produced when the lexer runs with the strict policy.
type LexError struct {
	Pos  token.Pos
	Char byte
}

func (e *LexError) Stage() Stage { return STAGE_LEX }

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error: %s: unrecognized character %q", e.Pos, e.Char)
}

type ParseError struct {
	// Zero when the token stream ran out.
	Pos     token.Pos
	Message string
}

func NewParseError(pos token.Pos, format string, args ...any) *ParseError {
	return &ParseError{Pos: pos, Message: fmt.Sprintf(format, args...)}
}

func (e *ParseError) Stage() Stage { return STAGE_PARSE }

func (e *ParseError) Error() string {
	if e.Pos.IsZero() {
		return fmt.Sprintf("parse error: %s", e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Pos, e.Message)
}

type TransformError struct {
	Node string
}

func (e *TransformError) Stage() Stage { return STAGE_TRANSFORM }

func (e *TransformError) Error() string {
	return fmt.Sprintf("transform error: unrecognized node %s", e.Node)
}

type GenerateError struct {
	Message string
}

func NewGenerateError(format string, args ...any) *GenerateError {
	return &GenerateError{Message: fmt.Sprintf(format, args...)}
}

func (e *GenerateError) Stage() Stage { return STAGE_GENERATE }

func (e *GenerateError) Error() string {
	return fmt.Sprintf("generate error: %s", e.Message)
}
