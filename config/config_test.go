package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  serviceName: madr-test
  log:
    level: info
http:
  port: 9000
auth:
  secretKey: from-yaml
  accessTokenTTL: 30m
events:
  enabled: false
  brokers:
    - localhost:9092
`

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, testConfigYAML)
	t.Chdir(dir)

	t.Setenv("AUTH_ACCESSTOKENTTL", "15m")
	t.Setenv("HTTP_PORT", "9100")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "madr-test", cfg.Env.ServiceName)
	assert.Equal(t, 9100, cfg.HTTP.Port)
	assert.Equal(t, "from-yaml", cfg.Auth.SecretKey)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
	require.NotNil(t, cfg.Events)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Events.Brokers)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file config.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{
		Auth:       AuthConfig{SecretKey: "secret"},
		Migrations: &MigrationsConfig{Enabled: true},
		Events:     &EventsConfig{},
		Search:     &SearchConfig{},
	}

	require.NoError(t, cfg.applyDefaults())

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "HS256", cfg.Auth.Algorithm)
	assert.Equal(t, 60*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, "postgres", cfg.Migrations.Dialect)
	assert.Equal(t, defaultEventsTopic, cfg.Events.Topic)
	assert.Equal(t, defaultPublishTimeout, cfg.Events.PublishTimeout)
	assert.Equal(t, defaultSearchIndex, cfg.Search.Index)
}

func TestApplyDefaults_RequiresSecret(t *testing.T) {
	cfg := &Config{}

	err := cfg.applyDefaults()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth.secretKey must be provided")
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("MADR_DOTENV_CHECK=loaded\n"), 0o600))

	// Registers cleanup so the variable does not leak into other tests.
	t.Setenv("MADR_DOTENV_CHECK", "")
	require.NoError(t, os.Unsetenv("MADR_DOTENV_CHECK"))

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "loaded", os.Getenv("MADR_DOTENV_CHECK"))

	require.NoError(t, loadDotEnv(filepath.Join(dir, "missing.env")))
}
