package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigFor(t *testing.T) {
	tests := []struct {
		country  string
		currency string
		symbol   string
	}{
		{"CO", "COP", "$"},
		{"DE", "EUR", "€"},
		{"BR", "BRL", "R$"},
		{"JP", "JPY", "¥"},
		{"US", "USD", "$"},
	}

	for _, tt := range tests {
		t.Run(tt.country, func(t *testing.T) {
			cfg := ConfigFor(tt.country)
			assert.Equal(t, tt.currency, cfg.CurrencyCode)
			assert.Equal(t, tt.symbol, cfg.Symbol)
			assert.NotEmpty(t, cfg.Locale)
		})
	}

	t.Run("unknown country gets the default", func(t *testing.T) {
		cfg := ConfigFor("XX")
		assert.Equal(t, DefaultConfig, cfg)
	})

	t.Run("empty country gets the default", func(t *testing.T) {
		assert.Equal(t, DefaultConfig, ConfigFor(""))
	})
}

func TestFallbackTableIsACopy(t *testing.T) {
	a := FallbackTable()
	b := FallbackTable()

	a.Rates["EUR"] = 999

	assert.NotEqual(t, a.Rates["EUR"], b.Rates["EUR"])
	assert.Equal(t, SourceFallback, b.Source)
}
