package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Locale describes the display conventions the API reports to clients.
// Dates and amounts are stored canonically; clients use these hints
// only for rendering.
type Locale struct {
	DateFormat     string `toml:"date_format" json:"date_format"`
	TimeFormat     string `toml:"time_format" json:"time_format"`
	Currency       string `toml:"currency" json:"currency"`
	CurrencySymbol string `toml:"currency_symbol" json:"currency_symbol"`
	Timezone       string `toml:"timezone" json:"timezone"`
}

// DefaultLocale is used when no locale file is configured.
func DefaultLocale() *Locale {
	return &Locale{
		DateFormat:     "2006-01-02",
		TimeFormat:     "15:04",
		Currency:       "EUR",
		CurrencySymbol: "€",
		Timezone:       "UTC",
	}
}

// LoadLocale reads the locale TOML file at path. Fields missing from
// the file keep their defaults. An empty path returns the defaults.
func LoadLocale(path string) (*Locale, error) {
	locale := DefaultLocale()
	if path == "" {
		return locale, nil
	}

	if _, err := toml.DecodeFile(path, locale); err != nil {
		return nil, fmt.Errorf("failed to load locale file %s: %w", path, err)
	}

	if locale.Currency == "" {
		return nil, fmt.Errorf("locale file %s: currency must not be empty", path)
	}

	return locale, nil
}
