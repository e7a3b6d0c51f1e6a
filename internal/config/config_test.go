package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.Blockfrost.BaseURL)
	assert.Equal(t, DefaultProjectIDEnv, cfg.Blockfrost.ProjectIDEnv)
	assert.Equal(t, 30*time.Second, cfg.Blockfrost.RequestTimeout.Std())
	assert.Equal(t, 10, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, time.Second, cfg.PageDelay.Std())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
blockfrost:
  base_url: https://cardano-preprod.blockfrost.io/api/v0
  project_id_env: PREPROD_KEY
rate_limit:
  requests_per_second: 5
page_delay: 500ms
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://cardano-preprod.blockfrost.io/api/v0", cfg.Blockfrost.BaseURL)
	assert.Equal(t, "PREPROD_KEY", cfg.Blockfrost.ProjectIDEnv)
	assert.Equal(t, 5, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 500*time.Millisecond, cfg.PageDelay.Std())

	// unset fields keep their defaults
	assert.Equal(t, 30*time.Second, cfg.Blockfrost.RequestTimeout.Std())
	assert.Equal(t, 10, cfg.RateLimit.BurstSize)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestProjectID(t *testing.T) {
	cfg := Default()
	cfg.Blockfrost.ProjectIDEnv = "CARDANO_LENS_TEST_KEY"

	t.Setenv("CARDANO_LENS_TEST_KEY", "secret")
	key, err := cfg.ProjectID()
	require.NoError(t, err)
	assert.Equal(t, "secret", key)

	t.Setenv("CARDANO_LENS_TEST_KEY", "")
	_, err = cfg.ProjectID()
	assert.Error(t, err)
}
