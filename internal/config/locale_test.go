package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLocaleFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "locale.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadLocaleEmptyPathReturnsDefaults(t *testing.T) {
	locale, err := LoadLocale("")
	require.NoError(t, err)
	assert.Equal(t, "2006-01-02", locale.DateFormat)
	assert.Equal(t, "EUR", locale.Currency)
	assert.Equal(t, "UTC", locale.Timezone)
}

func TestLoadLocaleOverridesDefaults(t *testing.T) {
	path := writeLocaleFile(t, `
date_format = "02.01.2006"
currency = "RSD"
currency_symbol = "din"
timezone = "Europe/Belgrade"
`)

	locale, err := LoadLocale(path)
	require.NoError(t, err)
	assert.Equal(t, "02.01.2006", locale.DateFormat)
	assert.Equal(t, "RSD", locale.Currency)
	assert.Equal(t, "din", locale.CurrencySymbol)
	assert.Equal(t, "Europe/Belgrade", locale.Timezone)
	// Unset fields keep defaults.
	assert.Equal(t, "15:04", locale.TimeFormat)
}

func TestLoadLocaleRejectsEmptyCurrency(t *testing.T) {
	path := writeLocaleFile(t, `currency = ""`)

	_, err := LoadLocale(path)
	assert.Error(t, err)
}

func TestLoadLocaleMissingFile(t *testing.T) {
	_, err := LoadLocale("/nonexistent/locale.toml")
	assert.Error(t, err)
}

func TestLoadLocaleBadToml(t *testing.T) {
	path := writeLocaleFile(t, `date_format = [not toml`)

	_, err := LoadLocale(path)
	assert.Error(t, err)
}
