package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_NoPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_YAMLFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	contents := `
join:
  field_remove_ratio: 0.3
  output_size: 50
logging:
  level: debug
  format: json
concurrency:
  workers: 8
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.InDelta(t, 0.3, cfg.Join.FieldRemoveRatio, 1e-9)
	require.Equal(t, 50, cfg.Join.OutputSize)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "json", cfg.Logging.Format)
	require.Equal(t, 8, cfg.Concurrency.Workers)
}

func TestLoad_MissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
}

func TestLoad_EnvOverridesDefault(t *testing.T) {
	t.Setenv("DEBUGBLOCKER_JOIN_OUTPUT_SIZE", "7")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Join.OutputSize)
}

func TestConfig_YAMLRoundTripsFieldNames(t *testing.T) {
	out, err := Default().YAML()
	require.NoError(t, err)

	require.Contains(t, string(out), "field_remove_ratio: 0.5")
	require.Contains(t, string(out), "output_size: 100")
	require.Contains(t, string(out), "workers: 4")
}
