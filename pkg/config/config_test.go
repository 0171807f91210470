package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/api/v1", cfg.APIPrefix)
	assert.Equal(t, DatasetSourceStatic, cfg.Datasets.Source)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Dashboard.CacheTTL)
	assert.Equal(t, 24*time.Hour, cfg.Exports.SignedURLTTL)
	assert.Equal(t, 10, cfg.Exports.BatchSize)
	assert.Nil(t, cfg.CORS.AllowedOrigins)
}

func TestLoadFromEnvironment(t *testing.T) {
	chdirTemp(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DATASET_SOURCE", "Postgres")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("EXPORTS_SIGNED_URL_TTL", "not-a-duration")
	t.Setenv("DASHBOARD_CACHE_TTL", "90s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, DatasetSourcePostgres, cfg.Datasets.Source)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 24*time.Hour, cfg.Exports.SignedURLTTL)
	assert.Equal(t, 90*time.Second, cfg.Dashboard.CacheTTL)
}

func TestUnknownDatasetSourceFallsBackToStatic(t *testing.T) {
	chdirTemp(t)
	t.Setenv("DATASET_SOURCE", "mongodb")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DatasetSourceStatic, cfg.Datasets.Source)
}
