package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"empleos-scraper/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
scrape:
  base_url: "https://empleos.net"
  max_pages: 10
  requests_per_second: 0.25
export:
  json_file: "jobs.json"
`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://empleos.net", cfg.Scrape.BaseURL)
	assert.Equal(t, 10, cfg.Scrape.MaxPages)
	assert.Equal(t, 0.25, cfg.Scrape.RequestsPerSecond)
	assert.Equal(t, "jobs.json", cfg.Export.JSONFile)
}

func TestNormalizeAndValidate_Defaults(t *testing.T) {
	cfg, res := config.NormalizeAndValidate(config.Config{})
	require.True(t, res.OK(), "empty config should normalize to valid defaults: %v", res.Errors)

	assert.Equal(t, "https://empleos.net", cfg.Scrape.BaseURL)
	assert.Equal(t, "https://empleos.net/buscar_vacantes.php", cfg.Scrape.SearchURL)
	assert.Equal(t, "1", cfg.Scrape.Country)
	assert.Equal(t, 44, cfg.Scrape.MaxPages)
	assert.Equal(t, 4, cfg.Scrape.Workers)
	assert.Equal(t, "costa_rica_jobs_full.json", cfg.Export.JSONFile)
	assert.Equal(t, "costa_rica_jobs_full.csv", cfg.Export.CSVFile)
}

func TestNormalizeAndValidate_BadURL(t *testing.T) {
	var in config.Config
	in.Scrape.BaseURL = "not-a-url"
	_, res := config.NormalizeAndValidate(in)
	assert.False(t, res.OK())
}

func TestNormalizeAndValidate_Warnings(t *testing.T) {
	var in config.Config
	in.Scrape.RequestsPerSecond = 10
	in.Scrape.Workers = 32
	_, res := config.NormalizeAndValidate(in)
	assert.True(t, res.OK())
	assert.Len(t, res.Warnings, 2)
}

func TestEnsureUserConfig(t *testing.T) {
	dataDir := t.TempDir()
	def := filepath.Join(t.TempDir(), "default.yml")
	require.NoError(t, os.WriteFile(def, []byte("scrape:\n  max_pages: 7\n"), 0o644))

	path, err := config.EnsureUserConfig(dataDir, def)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataDir, "config.yml"), path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Scrape.MaxPages)

	// second call keeps the existing user copy
	require.NoError(t, os.WriteFile(path, []byte("scrape:\n  max_pages: 9\n"), 0o644))
	again, err := config.EnsureUserConfig(dataDir, def)
	require.NoError(t, err)
	cfg, err = config.Load(again)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Scrape.MaxPages)
}
