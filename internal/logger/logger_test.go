package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesRoleAndMessage(t *testing.T) {
	var buf bytes.Buffer
	l := New("test-role", &buf)

	l.Info().Str("key", "value").Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "test-role", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "value", entry["key"])
	assert.NotEmpty(t, entry["time"])
	assert.NotEmpty(t, entry["func"])
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	// must not panic and must not write anywhere
	l.Error().Msg("should vanish")
}

func TestChild_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := New("parent", &buf)

	child := parent.Child()
	child.Info().Msg("from child")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "parent", entry["role"])
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	l := New("ctx-role", &buf)

	ctx := l.WithContext(context.Background())
	got := FromContext(ctx)
	got.Info().Msg("via context")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ctx-role", entry["role"])
}

func TestNewCLI_LevelDependsOnVerbose(t *testing.T) {
	quiet := NewCLI(false)
	assert.Equal(t, zerolog.WarnLevel, quiet.GetLevel())

	verbose := NewCLI(true)
	assert.Equal(t, zerolog.DebugLevel, verbose.GetLevel())
}
