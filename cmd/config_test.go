package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	require.True(t, config.Analyzers.CloserType.Enabled)
	require.True(t, config.Analyzers.CloseFields.Enabled)
	require.True(t, config.Analyzers.Finalizer.Enabled)
	require.True(t, config.Analyzers.NativeHandle.Enabled)
	require.True(t, config.Analyzers.ParamCount.Enabled)

	require.Equal(t, 5, config.Thresholds.MaxParameters)
	require.Equal(t, 3, config.Thresholds.MaxReturnValues)

	require.False(t, config.Bundle.Staticcheck)
	require.False(t, config.Bundle.Bodyclose)
	require.False(t, config.Bundle.Decorder)
}

func TestLoadConfigYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "relguard.yaml")
	content := `
analyzers:
  finalizer:
    enabled: false
  param_count:
    enabled: true
thresholds:
  max_parameters: 8
  max_return_values: 2
bundle:
  bodyclose: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	require.False(t, config.Analyzers.Finalizer.Enabled)
	require.True(t, config.Analyzers.ParamCount.Enabled)
	require.Equal(t, 8, config.Thresholds.MaxParameters)
	require.Equal(t, 2, config.Thresholds.MaxReturnValues)
	require.True(t, config.Bundle.Bodyclose)
	require.False(t, config.Bundle.Staticcheck)
}

func TestLoadConfigJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "relguard.json")
	content := `{
  "analyzers": {
    "closer_type": {"enabled": true, "severity": "high"},
    "native_handle": {"enabled": false}
  },
  "thresholds": {"max_parameters": 4}
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	require.True(t, config.Analyzers.CloserType.Enabled)
	require.Equal(t, "high", config.Analyzers.CloserType.Severity)
	require.False(t, config.Analyzers.NativeHandle.Enabled)
	require.Equal(t, 4, config.Thresholds.MaxParameters)
}

func TestLoadConfigUnknownExtensionFallsBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "relguard.conf")
	content := `
analyzers:
  close_fields:
    enabled: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	require.False(t, config.Analyzers.CloseFields.Enabled)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), config)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("analyzers: [not a map"), 0644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestGetAnalyzerConfig(t *testing.T) {
	config := DefaultConfig()
	config.Analyzers.Finalizer.Enabled = false
	config.Analyzers.Finalizer.Severity = "low"

	cfg := config.GetAnalyzerConfig("finalizer")
	require.False(t, cfg.Enabled)
	require.Equal(t, "low", cfg.Severity)

	// Unknown analyzers default to enabled so bundle additions still run.
	require.True(t, config.GetAnalyzerConfig("bodyclose").Enabled)
}

func TestBuildEnabledAnalyzers(t *testing.T) {
	config := DefaultConfig()
	config.Analyzers.NativeHandle.Enabled = false

	enabled := buildEnabledAnalyzers(config)
	require.Len(t, enabled, 5)
	require.False(t, enabled["nativehandle"])
	require.True(t, enabled["closertype"])
}
