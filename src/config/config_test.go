package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultAPIBaseURL, cfg.API.BaseURL)
	assert.Equal(t, DefaultChatModel, cfg.Models.Chat)
	assert.Equal(t, DefaultTranscriptionModel, cfg.Models.Transcription)
	assert.Equal(t, DefaultPriceBaseURL, cfg.Price.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Price.Timeout)
	assert.Equal(t, "Gold", cfg.Chat.InvestmentType)
	assert.Equal(t, "Vietnamese", cfg.Chat.TargetLanguage)
	assert.Equal(t, 8, cfg.Chat.MaxTurns)

	require.NoError(t, NewValidator().Validate(cfg))
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"models": {"chat": "gpt-4o-mini"},
		"chat": {"target_language": "French", "max_turns": 4}
	}`), 0o644))

	loader := NewLoader(path, filepath.Join(dir, "nonexistent.env"))
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o-mini", cfg.Models.Chat)
	assert.Equal(t, "French", cfg.Chat.TargetLanguage)
	assert.Equal(t, 4, cfg.Chat.MaxTurns)
	// Untouched fields keep defaults.
	assert.Equal(t, DefaultAPIBaseURL, cfg.API.BaseURL)
	assert.Equal(t, "Gold", cfg.Chat.InvestmentType)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	loader := NewLoader(filepath.Join(dir, "missing.json"), filepath.Join(dir, "missing.env"))

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultChatModel, cfg.Models.Chat)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))

	loader := NewLoader(path, filepath.Join(dir, "missing.env"))
	_, err := loader.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse JSON")
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test-123")
	t.Setenv("METALPRICE_API_KEY", "mp-test-456")
	t.Setenv("AUREUS_LANGUAGE", "Japanese")

	dir := t.TempDir()
	loader := NewLoader(filepath.Join(dir, "missing.json"), filepath.Join(dir, "missing.env"))

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "sk-test-123", cfg.API.APIKey)
	assert.Equal(t, "mp-test-456", cfg.Price.APIKey)
	assert.Equal(t, "Japanese", cfg.Chat.TargetLanguage)
}

func TestDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("METALPRICE_API_KEY=from-dotenv\n"), 0o644))

	t.Setenv("METALPRICE_API_KEY", "")
	os.Unsetenv("METALPRICE_API_KEY")

	loader := NewLoader(filepath.Join(dir, "missing.json"), envFile)
	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.Price.APIKey)
}

func TestValidateRejectsBadValues(t *testing.T) {
	v := NewValidator()

	cfg := DefaultConfig()
	cfg.Logging.Level = "loud"
	err := v.Validate(cfg)
	require.Error(t, err)

	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Level", verr.Field)

	cfg = DefaultConfig()
	cfg.Chat.InvestmentType = "tulips"
	require.Error(t, v.Validate(cfg))

	cfg = DefaultConfig()
	cfg.API.BaseURL = "not a url"
	require.Error(t, v.Validate(cfg))
}

func TestSaveFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.json")

	cfg := DefaultConfig()
	cfg.Models.Chat = "gpt-4o-mini"

	loader := NewLoader(path, filepath.Join(dir, "missing.env"))
	require.NoError(t, loader.SaveFile(cfg, path))

	loaded, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", loaded.Models.Chat)
}
