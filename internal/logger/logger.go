// Package logger provides the compiler's structured logging.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var defaultLogger = newSilent()

type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

type Config struct {
	Level  LogLevel
	Format string // "text" or "json"
	Output io.Writer
}

func DefaultConfig() Config {
	return Config{
		Level:  LevelWarn,
		Format: "text",
		Output: os.Stderr,
	}
}

// Init replaces the package logger. Until it is called nothing is logged.
func Init(cfg Config) {
	l := logrus.New()
	l.SetLevel(toLogrusLevel(cfg.Level))
	if cfg.Output != nil {
		l.SetOutput(cfg.Output)
	}
	if cfg.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	defaultLogger = l
}

func newSilent() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

func toLogrusLevel(level LogLevel) logrus.Level {
	switch level {
	case LevelDebug:
		return logrus.DebugLevel
	case LevelInfo:
		return logrus.InfoLevel
	case LevelWarn:
		return logrus.WarnLevel
	case LevelError:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

func Debug(msg string, fields logrus.Fields) { defaultLogger.WithFields(fields).Debug(msg) }
func Info(msg string, fields logrus.Fields)  { defaultLogger.WithFields(fields).Info(msg) }
func Warn(msg string, fields logrus.Fields)  { defaultLogger.WithFields(fields).Warn(msg) }
func Error(msg string, fields logrus.Fields) { defaultLogger.WithFields(fields).Error(msg) }

func LogPhase(source, phase string) {
	Debug("starting compilation phase", logrus.Fields{"source": source, "phase": phase})
}

func LogLexing(source string, tokenCount int) {
	Debug("lexing complete", logrus.Fields{"source": source, "tokens": tokenCount})
}

func LogParsing(source string, exprCount int) {
	Debug("parsing complete", logrus.Fields{"source": source, "exprs": exprCount})
}

func LogTransform(source string, stmtCount int) {
	Debug("transform complete", logrus.Fields{"source": source, "stmts": stmtCount})
}

func LogCodeGen(source, backend string, size int) {
	Debug("code generation complete", logrus.Fields{"source": source, "backend": backend, "bytes": size})
}

func LogError(source, phase string, err error) {
	Error("compilation error", logrus.Fields{"source": source, "phase": phase, "error": err})
}

func LogCompilerComplete(source string, success bool, duration string) {
	fields := logrus.Fields{"source": source, "duration": duration}
	if success {
		Info("compilation successful", fields)
	} else {
		Warn("compilation failed", fields)
	}
}
