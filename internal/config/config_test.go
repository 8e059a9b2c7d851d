package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	termerrors "github.com/standardbeagle/termbridge/internal/errors"
	"github.com/standardbeagle/termbridge/internal/lookup"
	"github.com/standardbeagle/termbridge/internal/similarity"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, lookup.DefaultThreshold, cfg.Threshold)
	assert.Equal(t, similarity.DefaultSeparator, cfg.Separator)
	assert.Empty(t, cfg.Terminology)
	assert.Empty(t, cfg.Categories)
}

func TestLoadFullConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".termbridge.toml")
	content := `
threshold = 0.7
separator = "/"
terminology = ["translations/**/*.xlf", "extra/*.xlf"]

[categories]
UI = ["screen", "form", "dialog"]
Report = ["report", "analysis"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.7, cfg.Threshold)
	assert.Equal(t, "/", cfg.Separator)
	assert.Equal(t, []string{"translations/**/*.xlf", "extra/*.xlf"}, cfg.Terminology)
	assert.Equal(t, []string{"screen", "form", "dialog"}, cfg.Categories["UI"])
	assert.Equal(t, []string{"report", "analysis"}, cfg.Categories["Report"])
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".termbridge.toml")
	require.NoError(t, os.WriteFile(path, []byte(`terminology = ["*.xlf"]`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, lookup.DefaultThreshold, cfg.Threshold)
	assert.Equal(t, similarity.DefaultSeparator, cfg.Separator)
	assert.Equal(t, []string{"*.xlf"}, cfg.Terminology)
}

func TestLoadInvalidThreshold(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".termbridge.toml")
	require.NoError(t, os.WriteFile(path, []byte(`threshold = 1.5`), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, termerrors.ErrInvalidThreshold)

	var cfgErr *termerrors.ConfigError
	require.True(t, stderrors.As(err, &cfgErr))
	assert.Equal(t, "threshold", cfgErr.Field)
}

func TestLoadMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".termbridge.toml")
	require.NoError(t, os.WriteFile(path, []byte(`threshold = [`), 0o644))

	_, err := Load(path)
	require.Error(t, err)

	var cfgErr *termerrors.ConfigError
	require.True(t, stderrors.As(err, &cfgErr))
	assert.Equal(t, path, cfgErr.Path)
}

func TestValidateFillsSeparator(t *testing.T) {
	cfg := &Config{Threshold: 0.5}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, similarity.DefaultSeparator, cfg.Separator)
}
