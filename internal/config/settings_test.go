package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLoadSettingsMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadSettings(filepath.Join(t.TempDir(), "none.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), cfg)
	assert.Equal(t, language.AmericanEnglish, cfg.Language())
}

func TestLoadSettingsFromFile(t *testing.T) {
	cfg, err := LoadSettings("testdata/settings.toml")
	require.NoError(t, err)
	assert.Equal(t, "/srv/ecomet/snapshot.yaml", cfg.General.DataFile)
	assert.Equal(t, "json", cfg.General.Format)
	assert.Equal(t, language.MustParse("de-DE"), cfg.Language())
}

func TestLoadSettingsEnvOverrides(t *testing.T) {
	t.Setenv("ECOMET_FORMAT", "csv")
	t.Setenv("ECOMET_LOCALE", "en-GB")

	cfg, err := LoadSettings("testdata/settings.toml")
	require.NoError(t, err)
	assert.Equal(t, "csv", cfg.General.Format)
	assert.Equal(t, "en-GB", cfg.Display.Locale)
	assert.Equal(t, "/srv/ecomet/snapshot.yaml", cfg.General.DataFile, "unset variables leave file values alone")
}

func TestLoadSettingsRejectsBadLocale(t *testing.T) {
	t.Setenv("ECOMET_LOCALE", "not a locale!")
	_, err := LoadSettings(filepath.Join(t.TempDir(), "none.toml"))
	assert.Error(t, err)
}

func TestSaveSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	want := DefaultSettings()
	want.General.DataFile = "data.json"

	require.NoError(t, SaveSettings(path, want))
	got, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSettingsPathHonorsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	assert.Equal(t, filepath.Join(dir, "ecomet", "config.toml"), SettingsPath())
}
