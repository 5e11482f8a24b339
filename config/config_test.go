package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/clemensw/pagemap/config"

	"github.com/stretchr/testify/require"
)

func parseConfig(t *testing.T, data string) (*config.Config, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	return config.Parse(path)
}

func TestParse(t *testing.T) {
	t.Setenv("DOCUMENTINTELLIGENCE_API_KEY", "secret")

	cfg, err := parseConfig(t, `
address: ":9090"

analyzers:
  azure:
    type: azure
    url: https://example.cognitiveservices.azure.com
    token: ${DOCUMENTINTELLIGENCE_API_KEY}
    interval: 1s
    limit: 3
`)

	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.Address)

	p, err := cfg.Analyzer("azure")
	require.NoError(t, err)
	require.NotNil(t, p)

	// first registered analyzer doubles as default
	d, err := cfg.Analyzer("")
	require.NoError(t, err)
	require.Equal(t, p, d)

	_, err = cfg.Analyzer("missing")
	require.Error(t, err)
}

func TestParseDefaults(t *testing.T) {
	cfg, err := parseConfig(t, `
analyzers:
  azure:
    type: azure
    url: https://example.cognitiveservices.azure.com
`)

	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Address)
}

func TestParseInvalidType(t *testing.T) {
	_, err := parseConfig(t, `
analyzers:
  broken:
    type: acme
    url: https://example.com
`)

	require.ErrorContains(t, err, "invalid analyzer type")
}

func TestParseUnknownField(t *testing.T) {
	_, err := parseConfig(t, `
listen: ":8080"
`)

	require.Error(t, err)
}

func TestParseInvalidInterval(t *testing.T) {
	_, err := parseConfig(t, `
analyzers:
  azure:
    type: azure
    url: https://example.cognitiveservices.azure.com
    interval: soon
`)

	require.Error(t, err)
}
