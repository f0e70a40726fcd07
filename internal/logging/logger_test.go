package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRedaction(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core))

	l.Info("register",
		"email", "ana@example.com",
		"password", "hunter2",
		"passwordHash", "$2a$10$abc",
		"apiKey", "sk-123",
		"profile", map[string]any{"name": "Ana", "accessCode": "ImproveSkills"},
	)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()

	assert.Equal(t, "ana@example.com", fields["email"])
	assert.Equal(t, redacted, fields["password"])
	assert.Equal(t, redacted, fields["passwordHash"])
	assert.Equal(t, redacted, fields["apiKey"])

	profile, ok := fields["profile"].(map[string]any)
	require.True(t, ok, "profile field type %T", fields["profile"])
	assert.Equal(t, "Ana", profile["name"])
	assert.Equal(t, redacted, profile["accessCode"])
}

func TestWithRedacts(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core)).With("token", "abc")

	l.Warn("x")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, redacted, logs.All()[0].ContextMap()["token"])
}

func TestOddKeyValues(t *testing.T) {
	got := sanitizeKVs([]any{"user", "u1", "dangling"})
	assert.Equal(t, []any{"user", "u1", "dangling"}, got)
}

func TestNewLevels(t *testing.T) {
	l, err := New("dev", "")
	require.NoError(t, err)
	assert.False(t, l.SugaredLogger.Desugar().Core().Enabled(zapcore.InfoLevel))

	l, err = New("production", "debug")
	require.NoError(t, err)
	assert.True(t, l.SugaredLogger.Desugar().Core().Enabled(zapcore.DebugLevel))

	_, err = New("dev", "loud")
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Error("ignored", "password", "x")
	l.Sync()
}
