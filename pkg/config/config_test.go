package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blockstor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 20*time.Second, cfg.Timeout)
	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.Empty(t, cfg.Controller)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfigFile(t, `
controller: plain-controller://10.0.0.1
timeout: 5s
logging:
  level: DEBUG
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "plain-controller://10.0.0.1", cfg.Controller)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "DEBUG", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	// Unset keys keep their defaults.
	assert.Equal(t, "stderr", cfg.Logging.Output)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
controller: plain-controller://10.0.0.1
`)

	t.Setenv("BLOCKSTOR_TIMEOUT", "90s")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, cfg.Timeout)
}

func TestLoadMissingController(t *testing.T) {
	path := writeConfigFile(t, `
timeout: 5s
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Controller")
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	path := writeConfigFile(t, `
controller: plain-controller://10.0.0.1
logging:
  level: LOUD
`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidateRejectsZeroTimeout(t *testing.T) {
	cfg := Default()
	cfg.Controller = "plain-controller://10.0.0.1"
	cfg.Timeout = 0

	require.Error(t, cfg.Validate())
}

func TestBuildTLSConfig(t *testing.T) {
	t.Run("EmptyYieldsNil", func(t *testing.T) {
		cfg := Default()
		tlsCfg, err := cfg.BuildTLSConfig()
		require.NoError(t, err)
		assert.Nil(t, tlsCfg)
	})

	t.Run("InsecureSkipVerify", func(t *testing.T) {
		cfg := Default()
		cfg.TLS.InsecureSkipVerify = true

		tlsCfg, err := cfg.BuildTLSConfig()
		require.NoError(t, err)
		require.NotNil(t, tlsCfg)
		assert.True(t, tlsCfg.InsecureSkipVerify)
	})

	t.Run("BadCAFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ca.pem")
		require.NoError(t, os.WriteFile(path, []byte("not a certificate"), 0644))

		cfg := Default()
		cfg.TLS.CAFile = path

		_, err := cfg.BuildTLSConfig()
		require.Error(t, err)
	})
}
