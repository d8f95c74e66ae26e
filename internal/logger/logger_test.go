package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: LevelDebug, Format: "json", Output: &buf})
	t.Cleanup(func() { defaultLogger = newSilent() })

	LogLexing("test.sexp", 9)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "lexing complete", entry["msg"])
	require.Equal(t, "test.sexp", entry["source"])
	require.EqualValues(t, 9, entry["tokens"])
}

func TestLogLevelString(t *testing.T) {
	require.Equal(t, "debug", LevelDebug.String())
	require.Equal(t, "info", LevelInfo.String())
	require.Equal(t, "warn", LevelWarn.String())
	require.Equal(t, "error", LevelError.String())
	require.Equal(t, "unknown", LogLevel(42).String())
}

func TestLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: LevelInfo, Format: "text", Output: &buf})
	t.Cleanup(func() { defaultLogger = newSilent() })

	LogPhase("test.sexp", "parse")
	require.Empty(t, buf.String())

	LogCompilerComplete("test.sexp", true, "1ms")
	require.True(t, strings.Contains(buf.String(), "compilation successful"))
}
