package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the default config location at an empty directory and
// clears provider keys picked up by discovery.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Auth, cfg.Auth)
	assert.Equal(t, 30*time.Second, cfg.Assessment.Timeout)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.False(t, cfg.LLM.Enabled())
}

func TestLoad_File(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
db:
  path: /tmp/impa-test.db
log:
  level: debug
auth:
  bcryptCost: 12
  mentorAccessCode: LetMeIn
assessment:
  timeout: 5s
  maxTokens: 800
llm:
  provider: mock
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/impa-test.db", cfg.DB.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, "LetMeIn", cfg.Auth.MentorAccessCode)
	// Untouched keys keep their defaults.
	assert.Equal(t, 6, cfg.Auth.MinPasswordLength)
	assert.Equal(t, 5*time.Second, cfg.Assessment.Timeout)
	assert.Equal(t, 800, cfg.Assessment.MaxTokens)
	assert.Equal(t, 0.7, cfg.Assessment.Temperature)
	assert.Equal(t, "mock", cfg.LLM.Provider)
}

func TestLoad_DefaultLocation(t *testing.T) {
	isolate(t)
	dir := os.Getenv("XDG_CONFIG_HOME")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "impa"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "impa", "config.yaml"), []byte("log:\n  mode: prod\n"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Log.Mode)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "auth:\n  bcryptCost: 12\n")
	t.Setenv("IMPA_AUTH__BCRYPTCOST", "8")
	t.Setenv("IMPA_ASSESSMENT__TIMEOUT", "2s")
	t.Setenv("IMPA_AUTH__MENTORACCESSCODE", "FromEnv")
	t.Setenv("IMPA_DB", "/ignored/by/config.db")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Auth.BcryptCost)
	assert.Equal(t, 2*time.Second, cfg.Assessment.Timeout)
	assert.Equal(t, "FromEnv", cfg.Auth.MentorAccessCode)
	assert.Equal(t, "", cfg.DB.Path)
}

func TestLoad_DiscoversProviderKey(t *testing.T) {
	isolate(t)
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, "sk-ant-test", cfg.LLM.Anthropic.APIKey)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bcrypt cost", "auth:\n  bcryptCost: 2\n"},
		{"empty access code", "auth:\n  mentorAccessCode: \"\"\n"},
		{"log level", "log:\n  level: chatty\n"},
		{"timeout", "assessment:\n  timeout: 0s\n"},
		{"temperature", "assessment:\n  temperature: 3\n"},
		{"provider without key", "llm:\n  provider: openai\n"},
		{"unknown provider", "llm:\n  provider: skynet\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
		})
	}
}

func TestEnvKey(t *testing.T) {
	existing := map[string]any{
		"auth": map[string]any{"bcryptCost": 12},
		"llm":  map[string]any{"openai": map[string]any{"apiKey": "x"}},
	}
	tests := []struct {
		raw  string
		want string
	}{
		{"IMPA_AUTH__BCRYPTCOST", "auth.bcryptCost"},
		{"IMPA_LLM__OPENAI__APIKEY", "llm.openai.apiKey"},
		{"IMPA_LLM__GEMINI__MODEL", "llm.gemini.model"},
		{"IMPA_LOG__LEVEL", "log.level"},
		{"IMPA_DB", ""},
	}
	for _, tt := range tests {
		if got := envKey(tt.raw, existing); got != tt.want {
			t.Errorf("envKey(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
